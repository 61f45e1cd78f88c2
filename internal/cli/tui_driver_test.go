package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/ventureos/internal/config"
	"github.com/alexanderramin/ventureos/internal/domain"
	"github.com/alexanderramin/ventureos/internal/repository"
	"github.com/alexanderramin/ventureos/internal/service"
	"github.com/alexanderramin/ventureos/internal/session"
	"github.com/alexanderramin/ventureos/internal/teatest"
	"github.com/alexanderramin/ventureos/internal/testutil"
)

var fastTiming = session.Timing{MinStep: 0, MaxStep: time.Millisecond, Tail: 0}

// testApp wires a full App backed by an in-memory DB, a fast seeded
// simulator and gen as the generator.
func testApp(t *testing.T, gen session.Generator) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	cfg := config.Default()
	cfg.Simulation = fastTiming
	cfg.Seed = 7

	return &App{
		Config:    cfg,
		Simulator: session.NewSimulator(nil, fastTiming, session.WithSeed(7)),
		Generator: gen,
		Auth:      session.SimulatedLogin{},
		Archive:   service.NewArchiveService(repository.NewSQLiteVentureRepo(database)),
		Export:    service.NewFileExportService(t.TempDir()),
	}
}

func pawPathGenerator() *testutil.StubGenerator {
	data := testutil.NewTestVenture("PawPath")
	return &testutil.StubGenerator{Data: &data}
}

// TestDriver wraps teatest.Driver with appModel inspection methods.
type TestDriver struct {
	*teatest.Driver
}

// tuiCmdTimeout covers one fast simulator step or stub generation. Every
// typed key returns a cursor blink Cmd that waits out this timeout, so it
// stays short.
const tuiCmdTimeout = 40 * time.Millisecond

// NewTestDriver constructs the appModel, sets terminal size, and drains Init().
// A generation that blocks longer than tuiCmdTimeout is skipped and resolved
// by the test itself.
func NewTestDriver(t *testing.T, app *App, opts ...teatest.Option) *TestDriver {
	t.Helper()
	opts = append([]teatest.Option{teatest.WithSize(120, 40), teatest.WithCmdTimeout(tuiCmdTimeout)}, opts...)
	d := teatest.New(t, newAppModel(context.Background(), app), opts...)
	d.DrainInit()
	t.Cleanup(func() {
		if m, ok := d.Model.(appModel); ok {
			m.stopGeneration()
		}
	})
	return &TestDriver{Driver: d}
}

// Initiate types idea on the landing view and presses Enter.
func (d *TestDriver) Initiate(idea string) {
	d.T.Helper()
	d.Type(idea)
	d.PressEnter()
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

func (d *TestDriver) Controller() *session.Controller {
	return d.appModel().state.Controller
}

func (d *TestDriver) Phase() domain.ViewMode {
	return d.Controller().Phase()
}

func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// LandingInput returns the idea input's current value.
func (d *TestDriver) LandingInput() string {
	m := d.appModel()
	lv, ok := m.activeView().(*landingView)
	if !ok {
		d.T.Fatalf("active view is %d, not landing", d.ActiveViewID())
	}
	return lv.input.Value()
}
