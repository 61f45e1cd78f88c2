package cli

import (
	"fmt"

	"github.com/alexanderramin/ventureos/internal/cli/formatter"
	"github.com/alexanderramin/ventureos/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const historyLimit = 20

// historyView lists the ventures archived this session.
type historyView struct {
	state   *SharedState
	items   []domain.ArchivedVenture
	total   int
	loaded  bool
	loadErr error
}

func newHistoryView(state *SharedState) *historyView {
	return &historyView{state: state}
}

func (v *historyView) Init() tea.Cmd {
	if v.state.App.Archive == nil {
		v.loaded = true
		return nil
	}
	return loadHistoryCmd(v.state.App.Archive, historyLimit)
}

func (v *historyView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(historyLoadedMsg); ok {
		v.loaded = true
		v.loadErr = msg.err
		v.total = msg.total
		v.items = v.items[:0]
		for _, it := range msg.items {
			v.items = append(v.items, *it)
		}
	}
	return v, nil
}

func (v *historyView) View() string {
	var body string
	switch {
	case !v.loaded:
		body = formatter.Dim("Loading...")
	case v.loadErr != nil:
		body = formatter.StyleRed.Render(v.loadErr.Error())
	case v.state.App.Archive == nil:
		body = formatter.Dim("History is not available.")
	default:
		body = formatter.FormatHistory(v.items, v.state.App.now())
		if v.total > 0 {
			body = formatter.Dim(fmt.Sprintf("Showing %d of %d ventures", len(v.items), v.total)) + "\n\n" + body
		}
	}
	return formatter.RenderBox("History", body)
}

func (v *historyView) ID() ViewID    { return ViewHistory }
func (v *historyView) Title() string { return "History" }

func (v *historyView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}
