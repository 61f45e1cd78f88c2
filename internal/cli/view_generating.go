package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ventureos/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// generatingView renders the build log while the generation runs.
// It reads the revealed lines from the controller on every render.
type generatingView struct {
	state   *SharedState
	spinner spinner.Model
}

func newGeneratingView(state *SharedState) *generatingView {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StyleAccent
	return &generatingView{state: state, spinner: sp}
}

func (v *generatingView) Init() tea.Cmd {
	return v.spinner.Tick
}

func (v *generatingView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return v, func() tea.Msg { return abortMsg{} }
		}
		return v, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *generatingView) View() string {
	ctrl := v.state.Controller
	logs := ctrl.Logs()
	total := 0
	if v.state.App.Simulator != nil {
		total = v.state.App.Simulator.Len()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s %s\n\n",
		v.spinner.View(),
		formatter.Bold("Architecting"),
		formatter.Accent(fmt.Sprintf("%q", ctrl.Idea()))))
	b.WriteString(formatter.RenderProgress(len(logs), total, 30))
	switch {
	case ctrl.ScriptDone() && !ctrl.DataReady():
		b.WriteString("  " + formatter.Dim("waiting for the model..."))
	case ctrl.DataReady() && !ctrl.ScriptDone():
		b.WriteString("  " + formatter.Dim("venture received, finishing build..."))
	case !ctrl.ScriptDone() && v.state.Build != nil:
		eta := v.state.Build.Remaining(v.state.App.now())
		b.WriteString("  " + formatter.Dim(fmt.Sprintf("~%.1fs left", eta.Seconds())))
	}
	b.WriteString("\n\n")
	b.WriteString(formatter.RenderTerminal("venture-kernel build", logs, min(v.state.ContentWidth(), 100)))
	return b.String()
}

func (v *generatingView) ID() ViewID    { return ViewGenerating }
func (v *generatingView) Title() string { return "Generating" }

func (v *generatingView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "abort")),
	}
}
