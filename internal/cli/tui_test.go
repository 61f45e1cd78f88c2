package cli

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/ventureos/internal/domain"
	"github.com/alexanderramin/ventureos/internal/llm"
	"github.com/alexanderramin/ventureos/internal/service"
	"github.com/alexanderramin/ventureos/internal/session"
	"github.com/alexanderramin/ventureos/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_StartsOnLanding(t *testing.T) {
	d := NewTestDriver(t, testApp(t, pawPathGenerator()))

	assert.Equal(t, ViewLanding, d.ActiveViewID())
	assert.Equal(t, domain.ViewInput, d.Phase())
	view := d.View()
	assert.Contains(t, view, "The Operating System for")
	assert.Contains(t, view, "CHOOSE YOUR ARCHITECTURE")
	assert.Contains(t, view, "not signed in")
}

func TestTUI_DogWalkingAppReachesDashboard(t *testing.T) {
	app := testApp(t, pawPathGenerator())
	d := NewTestDriver(t, app)

	d.Initiate("dog walking app")

	require.Equal(t, domain.ViewDashboard, d.Phase())
	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	data := d.Controller().Data()
	assert.Equal(t, "PawPath", data.Config.ProjectName)
	assert.NotEqual(t, domain.PlaceholderProjectName, data.Config.ProjectName)
	assert.Contains(t, d.View(), "PawPath")
	assert.Contains(t, d.View(), "LIVE ENVIRONMENT")

	history, err := app.Archive.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "dog walking app", history[0].Idea)
}

func TestTUI_BlankIdeaShowsHint(t *testing.T) {
	gen := pawPathGenerator()
	d := NewTestDriver(t, testApp(t, gen))

	d.Type("   ")
	d.PressEnter()

	assert.Equal(t, domain.ViewInput, d.Phase())
	assert.Contains(t, d.View(), blankIdeaHint)
	assert.Empty(t, gen.Ideas())

	d.Type("x")
	assert.NotContains(t, d.View(), blankIdeaHint)
}

func TestTUI_GenerationFailureShowsError(t *testing.T) {
	d := NewTestDriver(t, testApp(t, &testutil.StubGenerator{Err: llm.ErrOllamaUnavailable}))

	d.Initiate("dog walking app")

	require.Equal(t, domain.ViewError, d.Phase())
	assert.Equal(t, ViewError, d.ActiveViewID())
	assert.Contains(t, d.View(), "SYSTEM FAILURE")
	assert.Contains(t, d.View(), "model server unavailable")
	assert.Equal(t, domain.PlaceholderProjectName, d.Controller().Data().Config.ProjectName)
}

func TestTUI_AbortThenRetryPrefillsIdea(t *testing.T) {
	gen := &testutil.StubGenerator{Gate: make(chan struct{})}
	d := NewTestDriver(t, testApp(t, gen))

	d.Initiate("dog walking app")
	require.Equal(t, domain.ViewGenerating, d.Phase())
	assert.True(t, d.Controller().ScriptDone())
	assert.Contains(t, d.View(), "Finalizing Build...")
	assert.Contains(t, d.View(), "waiting for the model")

	d.PressEsc()
	require.Equal(t, domain.ViewError, d.Phase())
	assert.Contains(t, d.View(), "cancelled by user")
	assert.Nil(t, d.appModel().gen, "leaving Generating stops the run")

	d.PressKey('r')
	require.Equal(t, domain.ViewInput, d.Phase())
	assert.Equal(t, "dog walking app", d.LandingInput())
}

func TestTUI_StaleResultIsDropped(t *testing.T) {
	gen := &testutil.StubGenerator{Gate: make(chan struct{})}
	d := NewTestDriver(t, testApp(t, gen))

	d.Initiate("idea A")
	ticketA := d.Controller().Ticket()
	require.False(t, ticketA.IsZero())

	d.PressEsc()
	d.PressKey('r')
	d.PressEnter()
	require.Equal(t, domain.ViewGenerating, d.Phase())
	ticketB := d.Controller().Ticket()
	require.NotEqual(t, ticketA.ID, ticketB.ID)

	ghost := testutil.NewTestVenture("Ghost")
	d.Send(generationDoneMsg{ticket: ticketA, outcome: session.Succeeded(ghost)})
	assert.Equal(t, domain.ViewGenerating, d.Phase(), "late result for A must not resolve B")

	paw := testutil.NewTestVenture("PawPath")
	d.Send(generationDoneMsg{ticket: ticketB, outcome: session.Succeeded(paw)})
	require.Equal(t, domain.ViewDashboard, d.Phase())
	assert.Equal(t, "PawPath", d.Controller().Data().Config.ProjectName)

	d.Send(generationDoneMsg{ticket: ticketA, outcome: session.Succeeded(ghost)})
	assert.Equal(t, "PawPath", d.Controller().Data().Config.ProjectName)
}

func TestTUI_StaleSimulatorEventIgnored(t *testing.T) {
	gen := &testutil.StubGenerator{Gate: make(chan struct{})}
	d := NewTestDriver(t, testApp(t, gen))

	d.Initiate("dog walking app")
	logs := len(d.Controller().Logs())

	d.Send(simEventMsg{runID: 9999, event: session.Event{Kind: session.EventReveal, Line: "[00:00:00] bogus"}})
	assert.Len(t, d.Controller().Logs(), logs)
}

func TestTUI_DashboardTabsAndExport(t *testing.T) {
	app := testApp(t, pawPathGenerator())
	exportDir := t.TempDir()
	app.Export = service.NewFileExportService(exportDir)
	d := NewTestDriver(t, app)
	d.Initiate("dog walking app")
	require.Equal(t, ViewDashboard, d.ActiveViewID())

	assert.Contains(t, d.View(), "EXECUTIVE STRATEGY")

	d.PressKey('3')
	assert.Contains(t, d.View(), "STARTER")
	assert.Contains(t, d.View(), "PREMIUM")

	d.SendKey(tea.KeyMsg{Type: tea.KeyRight})
	assert.Contains(t, d.View(), "bookings")

	d.PressKey('2')
	assert.Contains(t, d.View(), `"projectName": "PawPath"`)

	d.PressKey('e')
	assert.Contains(t, d.State().Status, "Exported to ")
	files, err := filepath.Glob(filepath.Join(exportDir, "pawpath-*.yaml"))
	require.NoError(t, err)
	assert.Len(t, files, 1)

	d.PressKey('n')
	require.Equal(t, domain.ViewInput, d.Phase())
	assert.Empty(t, d.LandingInput())
}

func TestTUI_HistoryOverlay(t *testing.T) {
	d := NewTestDriver(t, testApp(t, pawPathGenerator()))
	d.Initiate("dog walking app")

	d.PressKey('h')
	require.Equal(t, ViewHistory, d.ActiveViewID())
	assert.Equal(t, 2, d.ViewStackLen())
	assert.Contains(t, d.View(), "PawPath")
	assert.Contains(t, d.View(), "Showing 1 of 1 ventures")

	d.PressEsc()
	assert.Equal(t, ViewDashboard, d.ActiveViewID())
}

func TestTUI_LoginSetsUser(t *testing.T) {
	d := NewTestDriver(t, testApp(t, pawPathGenerator()))

	d.SendKey(tea.KeyMsg{Type: tea.KeyCtrlL})
	require.Equal(t, ViewLogin, d.ActiveViewID())

	d.Send(loginSubmitMsg{email: "jane.doe@startup.io", password: "secret"})
	assert.Equal(t, ViewLanding, d.ActiveViewID())
	require.NotNil(t, d.State().User)
	assert.Equal(t, "Jane Doe", d.State().User.Name)
	assert.Contains(t, d.View(), "[JD]")
}

func TestTUI_LoginRejectsBlankPassword(t *testing.T) {
	d := NewTestDriver(t, testApp(t, pawPathGenerator()))

	d.SendKey(tea.KeyMsg{Type: tea.KeyCtrlL})
	d.Send(loginSubmitMsg{email: "jane@startup.io"})

	assert.Nil(t, d.State().User)
	assert.Contains(t, d.State().Status, "Login failed")
	assert.Equal(t, ViewLanding, d.ActiveViewID())
}

func TestTUI_QuitKeys(t *testing.T) {
	d := NewTestDriver(t, testApp(t, pawPathGenerator()))

	d.PressKey('q')
	assert.False(t, d.Quitting, "q types into the focused idea input")
	assert.Equal(t, "q", d.LandingInput())

	d.SendKey(tea.KeyMsg{Type: tea.KeyTab})
	d.PressKey('q')
	assert.True(t, d.Quitting)
}

func TestTUI_CtrlCDuringGenerationStopsRun(t *testing.T) {
	gen := &testutil.StubGenerator{Gate: make(chan struct{})}
	d := NewTestDriver(t, testApp(t, gen))

	d.Initiate("dog walking app")
	require.NotNil(t, d.appModel().gen)

	d.PressCtrlC()
	assert.True(t, d.Quitting)
	assert.Nil(t, d.appModel().gen)
}

func TestTUI_GeneratingShowsTimeLeft(t *testing.T) {
	app := testApp(t, &testutil.StubGenerator{Gate: make(chan struct{})})
	slow := session.Timing{MinStep: time.Second, MaxStep: time.Second, Tail: time.Second}
	app.Simulator = session.NewSimulator(nil, slow)
	d := NewTestDriver(t, app)

	d.Initiate("dog walking app")
	require.Equal(t, domain.ViewGenerating, d.Phase())
	require.NotNil(t, d.State().Build)
	assert.Equal(t, 10*time.Second, d.State().Build.Duration())
	assert.Contains(t, d.View(), "s left")
	assert.Contains(t, d.View(), "0/9")

	d.PressEsc()
	assert.Nil(t, d.State().Build)
}
