package cli

import (
	"context"

	"github.com/alexanderramin/ventureos/internal/domain"
	"github.com/alexanderramin/ventureos/internal/service"
	"github.com/alexanderramin/ventureos/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

// initiateMsg asks the appModel to start a generation for idea.
type initiateMsg struct {
	idea string
}

// abortMsg abandons the running generation.
type abortMsg struct{}

// resetMsg returns to the landing view. keepIdea prefills the last idea (retry).
type resetMsg struct {
	keepIdea bool
}

// simEventMsg carries one simulator event, or closed when the run's channel ended.
type simEventMsg struct {
	runID  uint64
	event  session.Event
	closed bool
}

// generationDoneMsg carries a generation outcome with the ticket it was issued for.
type generationDoneMsg struct {
	ticket  session.Ticket
	outcome session.Outcome
}

// loginSubmitMsg is sent by the login form once both fields are filled.
type loginSubmitMsg struct {
	email    string
	password string
}

// loginDoneMsg carries the result of the simulated login.
type loginDoneMsg struct {
	user domain.User
	err  error
}

type exportDoneMsg struct {
	path string
	err  error
}

type archivedMsg struct {
	venture *domain.ArchivedVenture
	err     error
}

type historyLoadedMsg struct {
	items []*domain.ArchivedVenture
	total int
	err   error
}

// waitForSim blocks on the next event of run. The appModel re-issues it after
// every reveal, so exactly one receive is pending per active run.
func waitForSim(run *session.Run) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-run.Events()
		if !ok {
			return simEventMsg{runID: run.ID, closed: true}
		}
		return simEventMsg{runID: run.ID, event: ev}
	}
}

// generateCmd runs the generator for ticket. ctx is cancelled when the
// controller leaves Generating.
func generateCmd(ctx context.Context, gen session.Generator, ticket session.Ticket) tea.Cmd {
	return func() tea.Msg {
		return generationDoneMsg{ticket: ticket, outcome: session.Generate(ctx, gen, ticket)}
	}
}

func loginCmd(auth session.Authenticator, email, password string) tea.Cmd {
	return func() tea.Msg {
		user, err := auth.Login(context.Background(), email, password)
		return loginDoneMsg{user: user, err: err}
	}
}

func exportCmd(exp service.ExportService, data domain.VentureData) tea.Cmd {
	return func() tea.Msg {
		path, err := exp.Export(context.Background(), data)
		return exportDoneMsg{path: path, err: err}
	}
}

func archiveCmd(archive service.ArchiveService, idea string, data domain.VentureData) tea.Cmd {
	return func() tea.Msg {
		v, err := archive.Record(context.Background(), idea, data)
		return archivedMsg{venture: v, err: err}
	}
}

func loadHistoryCmd(archive service.ArchiveService, limit int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		items, err := archive.Recent(ctx, limit)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		total, err := archive.Total(ctx)
		return historyLoadedMsg{items: items, total: total, err: err}
	}
}
