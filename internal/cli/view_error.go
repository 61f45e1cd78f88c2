package cli

import (
	"github.com/alexanderramin/ventureos/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// errorView is the Error phase. Retry returns to the landing view with the
// last idea prefilled.
type errorView struct {
	state  *SharedState
	reason string
	idea   string
}

func newErrorView(state *SharedState) *errorView {
	return &errorView{
		state:  state,
		reason: state.Controller.Failure(),
		idea:   state.Controller.Idea(),
	}
}

func (v *errorView) Init() tea.Cmd { return nil }

func (v *errorView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "r", "enter":
			return v, func() tea.Msg { return resetMsg{keepIdea: true} }
		case "n":
			return v, func() tea.Msg { return resetMsg{} }
		}
	}
	return v, nil
}

func (v *errorView) View() string {
	reason := v.reason
	if reason == "" {
		reason = "unknown error"
	}
	body := formatter.StyleRed.Render("✗ "+reason) + "\n\n" +
		formatter.Dim("Idea: ") + v.idea + "\n\n" +
		formatter.Dim("Press r to retry with the same idea.")
	return formatter.RenderBox("System Failure", body)
}

func (v *errorView) ID() ViewID    { return ViewError }
func (v *errorView) Title() string { return "Error" }

func (v *errorView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new idea")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}
