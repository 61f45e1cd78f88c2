package cli

import (
	"strings"

	"github.com/alexanderramin/ventureos/internal/cli/formatter"
	"github.com/alexanderramin/ventureos/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const ideaPlaceholder = "Describe your idea (e.g. Airbnb for camping)..."

// blankIdeaHint is shown when enter is pressed on an empty input.
const blankIdeaHint = "Describe your startup idea first."

// landingView is the Input phase: hero copy, the idea prompt and the
// product's own comparison and pricing sections.
type landingView struct {
	state *SharedState
	input textinput.Model
	hint  string
}

func newLandingView(state *SharedState, prefill string) *landingView {
	ti := textinput.New()
	ti.Placeholder = ideaPlaceholder
	ti.Prompt = formatter.StyleAccent.Render("> ")
	ti.CharLimit = 280
	ti.Width = 60
	if prefill != "" {
		ti.SetValue(prefill)
		ti.CursorEnd()
	}
	ti.Focus()
	return &landingView{state: state, input: ti}
}

func (v *landingView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *landingView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	switch keyMsg.String() {
	case "enter":
		return v, v.submit()
	case "ctrl+l":
		return v, v.openLogin()
	case "tab":
		if v.input.Focused() {
			v.input.Blur()
			return v, nil
		}
		return v, v.input.Focus()
	}

	if !v.input.Focused() {
		switch keyMsg.String() {
		case "l":
			return v, v.openLogin()
		case "h":
			return v, pushView(newHistoryView(v.state))
		case "i":
			return v, v.input.Focus()
		}
		return v, nil
	}

	v.hint = ""
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// submit rejects blank input here so the controller never sees it.
func (v *landingView) submit() tea.Cmd {
	idea, err := domain.NormalizeIdea(v.input.Value())
	if err != nil {
		v.hint = blankIdeaHint
		return nil
	}
	v.hint = ""
	return func() tea.Msg { return initiateMsg{idea: idea} }
}

func (v *landingView) openLogin() tea.Cmd {
	if v.state.User != nil {
		return nil
	}
	return pushView(newLoginView(v.state))
}

func (v *landingView) View() string {
	var b strings.Builder
	b.WriteString(formatter.FormatHero())
	b.WriteString("\n\n")
	b.WriteString(v.input.View())
	b.WriteString("  ")
	b.WriteString(formatter.Badge("initiate architecture", formatter.ColorAccent))
	b.WriteString("\n")
	if v.hint != "" {
		b.WriteString(formatter.StyleYellow.Render("  " + v.hint))
	}
	b.WriteString("\n\n")
	b.WriteString(formatter.FormatUpgrade())
	b.WriteString("\n\n")
	b.WriteString(formatter.FormatPlans())
	return b.String()
}

func (v *landingView) CapturesInput() bool { return v.input.Focused() }

func (v *landingView) ID() ViewID    { return ViewLanding }
func (v *landingView) Title() string { return "" }

func (v *landingView) ShortHelp() []key.Binding {
	if v.input.Focused() {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "initiate")),
			key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "login")),
			key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "menu")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab", "i"), key.WithHelp("tab", "edit idea")),
		key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "login")),
		key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}
