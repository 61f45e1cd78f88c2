package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/ventureos/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// loginView wraps the simulated sign-in form. Once both fields are filled
// it hands the credentials to the appModel and shows a pending state.
type loginView struct {
	state    *SharedState
	form     *huh.Form
	email    string
	password string
	pending  bool
}

func newLoginView(state *SharedState) *loginView {
	v := &loginView{state: state}
	v.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("founder@startup.io").
				Value(&v.email).
				Validate(requiredField("email")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&v.password).
				Validate(requiredField("password")),
		),
	).WithTheme(ventureHuhTheme()).WithShowHelp(false)
	return v
}

func requiredField(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(name + " is required")
		}
		return nil
	}
}

func (v *loginView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *loginView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if v.pending {
		return v, nil
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		v.pending = true
		email, password := v.email, v.password
		return v, tea.Batch(cmd, func() tea.Msg {
			return loginSubmitMsg{email: email, password: password}
		})
	}
	return v, cmd
}

func (v *loginView) View() string {
	if v.pending {
		return formatter.RenderBox("Sign in", formatter.Dim("Authenticating..."))
	}
	return formatter.RenderBox("Sign in", v.form.View())
}

func (v *loginView) ID() ViewID    { return ViewLogin }
func (v *loginView) Title() string { return "Login" }

func (v *loginView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ventureHuhTheme styles huh forms with the neon palette.
func ventureHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorAccent).Bold(true)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorAccent)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorAccent)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
