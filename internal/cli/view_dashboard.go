package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ventureos/internal/cli/formatter"
	"github.com/alexanderramin/ventureos/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type dashboardTab int

const (
	tabOverview dashboardTab = iota
	tabConfig
	tabPricing
	tabSchema
	tabDeck
	tabPrototype
)

var dashboardTabs = []string{"Overview", "Config", "Pricing", "Schema", "Deck", "Prototype"}

// dashboardHeaderLines is the summary plus the tab bar above the viewport.
const dashboardHeaderLines = 4

// dashboardView shows the generated venture. The record is copied out of
// the controller once, when the Dashboard phase is entered.
type dashboardView struct {
	state *SharedState
	data  domain.VentureData
	tab   dashboardTab
	vp    viewport.Model
}

func newDashboardView(state *SharedState) *dashboardView {
	vp := viewport.New(state.ContentWidth(), state.ContentHeight()-dashboardHeaderLines)
	vp.MouseWheelEnabled = true
	v := &dashboardView{state: state, data: state.Controller.Data(), vp: vp}
	v.refresh()
	return v
}

func (v *dashboardView) Init() tea.Cmd { return nil }

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = v.state.ContentWidth()
		v.vp.Height = max(v.state.ContentHeight()-dashboardHeaderLines, 3)
		v.refresh()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "right", "tab", "l":
			v.setTab((v.tab + 1) % dashboardTab(len(dashboardTabs)))
			return v, nil
		case "left", "shift+tab":
			v.setTab((v.tab + dashboardTab(len(dashboardTabs)) - 1) % dashboardTab(len(dashboardTabs)))
			return v, nil
		case "1", "2", "3", "4", "5", "6":
			v.setTab(dashboardTab(msg.String()[0] - '1'))
			return v, nil
		case "n":
			return v, func() tea.Msg { return resetMsg{} }
		case "e":
			if v.state.App.Export == nil {
				v.state.Status = formatter.Dim("Export is not configured.")
				return v, nil
			}
			v.state.Status = formatter.Dim("Exporting...")
			return v, exportCmd(v.state.App.Export, v.data)
		case "h":
			return v, pushView(newHistoryView(v.state))
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *dashboardView) setTab(t dashboardTab) {
	v.tab = t
	v.refresh()
	v.vp.GotoTop()
}

func (v *dashboardView) refresh() {
	v.vp.SetContent(v.renderTab())
}

func (v *dashboardView) renderTab() string {
	switch v.tab {
	case tabConfig:
		return formatter.FormatConfigJSON(v.data)
	case tabPricing:
		return formatter.FormatPricing(v.data.Config.PricingModel)
	case tabSchema:
		return formatter.FormatSchema(v.data.Config.DatabaseSchema)
	case tabDeck:
		return formatter.FormatDeck(v.data.Deck)
	case tabPrototype:
		return formatter.FormatPrototype(v.data.Config)
	default:
		return formatter.FormatOverview(v.data)
	}
}

func (v *dashboardView) renderTabBar() string {
	active := lipgloss.NewStyle().Foreground(formatter.ColorPanel).Background(formatter.ColorAccent).Bold(true).Padding(0, 1)
	inactive := lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	parts := make([]string, len(dashboardTabs))
	for i, name := range dashboardTabs {
		label := fmt.Sprintf("%d %s", i+1, name)
		if dashboardTab(i) == v.tab {
			parts[i] = active.Render(label)
		} else {
			parts[i] = inactive.Render(label)
		}
	}
	return strings.Join(parts, " ")
}

func (v *dashboardView) View() string {
	return formatter.FormatVentureSummary(v.data) + "\n" + v.renderTabBar() + "\n\n" + v.vp.View()
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return v.data.Config.ProjectName }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "tab")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new project")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export yaml")),
		key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
	}
}
