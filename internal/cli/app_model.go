package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/alexanderramin/ventureos/internal/cli/formatter"
	"github.com/alexanderramin/ventureos/internal/domain"
	"github.com/alexanderramin/ventureos/internal/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// activeGeneration is the simulator run and generation call belonging to
// the controller's current ticket.
type activeGeneration struct {
	ticket session.Ticket
	run    *session.Run
	cancel context.CancelFunc
}

// appModel is the root bubbletea Model for the TUI.
// The bottom of the view stack is always the view for the controller's
// phase; login and history are pushed on top of it.
type appModel struct {
	ctx       context.Context
	state     *SharedState
	viewStack []View
	gen       *activeGeneration
	quitting  bool
}

func newAppModel(ctx context.Context, app *App) appModel {
	state := &SharedState{
		App:        app,
		Controller: app.NewController(),
	}
	return appModel{
		ctx:       ctx,
		state:     state,
		viewStack: []View{newLandingView(state, "")},
	}
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case initiateMsg:
		cmd := m.initiate(msg.idea)
		return m, cmd

	case abortMsg:
		cmd := m.abort()
		return m, cmd

	case resetMsg:
		cmd := m.reset(msg.keepIdea)
		return m, cmd

	case simEventMsg:
		cmd := m.handleSimEvent(msg)
		return m, cmd

	case generationDoneMsg:
		cmd := m.handleGenerationDone(msg)
		return m, cmd

	case loginSubmitMsg:
		auth := m.state.App.Auth
		if auth == nil {
			auth = session.SimulatedLogin{}
		}
		return m, loginCmd(auth, msg.email, msg.password)

	case loginDoneMsg:
		if v := m.activeView(); v != nil && v.ID() == ViewLogin {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		if msg.err != nil {
			m.state.Status = formatter.StyleRed.Render("Login failed: " + msg.err.Error())
			return m, nil
		}
		user := msg.user
		m.state.User = &user
		m.state.Status = formatter.StyleGreen.Render("Signed in as " + user.Name)
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.state.Status = formatter.StyleRed.Render("Export failed: " + msg.err.Error())
		} else {
			m.state.Status = formatter.StyleGreen.Render("Exported to " + msg.path)
		}
		return m, nil

	case archivedMsg:
		if msg.err != nil {
			m.state.App.logger().Warn("archive_failed", "error", msg.err)
		}
		return m, nil
	}

	// Forward other messages (spinner ticks, cursor blink, history loads).
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.stopGeneration()
		m.quitting = true
		return m, tea.Quit
	}

	m.state.Status = ""

	if msg.Type == tea.KeyEsc && len(m.viewStack) > 1 {
		m.viewStack = m.viewStack[:len(m.viewStack)-1]
		return m, nil
	}

	// Views with a focused text input receive every character.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	if msg.String() == "q" {
		m.stopGeneration()
		m.quitting = true
		return m, tea.Quit
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

// ── phase handling ───────────────────────────────────────────────────────────

func (m *appModel) initiate(idea string) tea.Cmd {
	ctrl := m.state.Controller
	prev := ctrl.Phase()
	ticket, err := ctrl.Initiate(idea)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyIdea) {
			m.state.Status = formatter.StyleYellow.Render(blankIdeaHint)
		} else {
			m.state.App.logger().Warn("initiate_rejected", "error", err)
		}
		return nil
	}

	genCtx, cancel := context.WithCancel(m.ctx)
	run := m.state.App.Simulator.Start(genCtx)
	m.gen = &activeGeneration{ticket: ticket, run: run, cancel: cancel}
	m.state.Build = run

	return tea.Batch(
		m.syncPhase(prev, false),
		waitForSim(run),
		generateCmd(genCtx, m.state.App.Generator, ticket),
	)
}

func (m *appModel) abort() tea.Cmd {
	ctrl := m.state.Controller
	prev := ctrl.Phase()
	if err := ctrl.Abort(ctrl.Ticket(), "cancelled by user"); err != nil {
		return nil
	}
	return m.syncPhase(prev, false)
}

func (m *appModel) reset(keepIdea bool) tea.Cmd {
	ctrl := m.state.Controller
	prev := ctrl.Phase()
	if err := ctrl.Reset(); err != nil {
		m.state.App.logger().Debug("reset_ignored", "error", err)
		return nil
	}
	return m.syncPhase(prev, keepIdea)
}

func (m *appModel) handleSimEvent(msg simEventMsg) tea.Cmd {
	if m.gen == nil || msg.runID != m.gen.run.ID || msg.closed {
		return nil
	}
	ctrl := m.state.Controller
	switch msg.event.Kind {
	case session.EventReveal:
		if err := ctrl.AppendLog(m.gen.ticket, msg.event.Line); err != nil {
			return nil
		}
		return waitForSim(m.gen.run)
	case session.EventDone:
		prev := ctrl.Phase()
		if err := ctrl.CompleteSimulation(m.gen.ticket); err != nil {
			return nil
		}
		return m.syncPhase(prev, false)
	}
	return nil
}

func (m *appModel) handleGenerationDone(msg generationDoneMsg) tea.Cmd {
	ctrl := m.state.Controller
	prev := ctrl.Phase()
	if err := ctrl.Resolve(msg.ticket, msg.outcome); err != nil {
		if errors.Is(err, session.ErrStaleTicket) {
			m.state.App.logger().Debug("stale_result_dropped", "ticket", msg.ticket.ID)
		} else {
			m.state.App.logger().Warn("resolve_failed", "error", err)
		}
		return nil
	}
	return m.syncPhase(prev, false)
}

// syncPhase rebuilds the view stack when the controller's phase changed.
// Leaving Generating stops the simulator run and cancels the generation call.
func (m *appModel) syncPhase(prev domain.ViewMode, keepIdea bool) tea.Cmd {
	ctrl := m.state.Controller
	phase := ctrl.Phase()
	if phase == prev {
		return nil
	}
	if prev == domain.ViewGenerating {
		m.stopGeneration()
	}

	var (
		v     View
		extra tea.Cmd
	)
	switch phase {
	case domain.ViewGenerating:
		v = newGeneratingView(m.state)
	case domain.ViewDashboard:
		v = newDashboardView(m.state)
		if m.state.App.Archive != nil {
			extra = archiveCmd(m.state.App.Archive, ctrl.Idea(), ctrl.Data())
		}
	case domain.ViewError:
		v = newErrorView(m.state)
	default:
		prefill := ""
		if keepIdea {
			prefill = ctrl.Idea()
		}
		v = newLandingView(m.state, prefill)
	}

	m.viewStack = []View{v}
	return tea.Batch(v.Init(), extra)
}

// stopGeneration cancels the generation context and waits for the simulator
// goroutine to exit. Safe to call when nothing is running.
func (m *appModel) stopGeneration() {
	if m.gen == nil {
		return
	}
	m.gen.cancel()
	m.gen.run.Cancel()
	m.gen = nil
	m.state.Build = nil
}

// ── rendering ────────────────────────────────────────────────────────────────

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.renderStatusBar())
	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

func (m *appModel) renderHeader() string {
	title := lipgloss.NewStyle().Foreground(formatter.ColorAccent).Bold(true).Render("VENTURE-OS")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	header := title
	if len(crumbs) > 0 {
		header += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	if u := m.state.User; u != nil {
		header += "  " + formatter.Badge(u.Initials, formatter.ColorViolet) + " " + u.Name
	} else {
		header += "  " + formatter.Dim("not signed in")
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if len(m.viewStack) > 1 {
		hints = append(hints, formatter.Dim("esc: back"))
	}
	hints = append(hints, formatter.Dim("ctrl+c: quit"))

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return m.state.Status + "\n" + sep + "\n" + strings.Join(hints, "  ")
}
