package session

import (
	"fmt"

	"github.com/alexanderramin/ventureos/internal/domain"
	"github.com/google/uuid"
)

// Ticket identifies one generation request. Events carrying a ticket other
// than the controller's current one are stale.
type Ticket struct {
	ID   string
	Idea string
}

// IsZero reports whether the ticket was never issued.
func (t Ticket) IsZero() bool { return t.ID == "" }

var allowedTransitions = map[domain.ViewMode][]domain.ViewMode{
	domain.ViewInput:      {domain.ViewGenerating},
	domain.ViewGenerating: {domain.ViewDashboard, domain.ViewError},
	domain.ViewDashboard:  {domain.ViewInput},
	domain.ViewError:      {domain.ViewInput},
}

// Controller owns the view phase and the venture record shown in it.
//
// It enters Dashboard only once both the log script has finished and a
// successful outcome has arrived, in either order. It is not safe for
// concurrent use; a single event loop drives it.
type Controller struct {
	phase      domain.ViewMode
	data       domain.VentureData
	idea       string
	ticket     Ticket
	scriptDone bool
	dataReady  bool
	logs       []string
	failure    string
	observer   TransitionObserver
}

// Option configures a Controller.
type Option func(*Controller)

// WithObserver reports every phase change to obs.
func WithObserver(obs TransitionObserver) Option {
	return func(c *Controller) {
		if obs != nil {
			c.observer = obs
		}
	}
}

// NewController returns a controller in the Input phase holding the placeholder record.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		phase:    domain.ViewInput,
		data:     domain.Placeholder(),
		observer: noopTransitionObserver{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Phase is the view the controller is currently in.
func (c *Controller) Phase() domain.ViewMode { return c.phase }

// Data returns a copy of the current record.
func (c *Controller) Data() domain.VentureData { return c.data.Clone() }

// Idea is the most recently initiated idea. It survives Reset so a retry can prefill it.
func (c *Controller) Idea() string { return c.idea }

// Ticket is the current generation ticket, zero outside Generating.
func (c *Controller) Ticket() Ticket { return c.ticket }

// Logs returns the lines revealed so far in the current generation.
func (c *Controller) Logs() []string {
	out := make([]string, len(c.logs))
	copy(out, c.logs)
	return out
}

// Failure is the reason shown in the Error phase.
func (c *Controller) Failure() string { return c.failure }

// ScriptDone reports whether the build log of the current generation has finished.
func (c *Controller) ScriptDone() bool { return c.scriptDone }

// DataReady reports whether the current generation has produced its record.
func (c *Controller) DataReady() bool { return c.dataReady }

// Initiate starts a generation for idea and enters Generating.
func (c *Controller) Initiate(idea string) (Ticket, error) {
	trimmed, err := domain.NormalizeIdea(idea)
	if err != nil {
		return Ticket{}, err
	}
	if c.phase != domain.ViewInput {
		return Ticket{}, fmt.Errorf("%w: cannot initiate from %s", ErrInvalidTransition, c.phase)
	}

	c.idea = trimmed
	c.data = domain.Placeholder()
	c.logs = nil
	c.failure = ""
	c.scriptDone = false
	c.dataReady = false
	c.ticket = Ticket{ID: uuid.NewString(), Idea: trimmed}

	if err := c.transition(domain.ViewGenerating, ""); err != nil {
		return Ticket{}, err
	}
	return c.ticket, nil
}

// AppendLog adds a revealed line to the current generation's log.
func (c *Controller) AppendLog(t Ticket, line string) error {
	if err := c.checkCurrent(t); err != nil {
		return err
	}
	c.logs = append(c.logs, line)
	return nil
}

// CompleteSimulation marks the log script as finished.
func (c *Controller) CompleteSimulation(t Ticket) error {
	if err := c.checkCurrent(t); err != nil {
		return err
	}
	c.scriptDone = true
	return c.maybeFinish()
}

// Resolve applies the outcome of the generation identified by t.
// A stale ticket returns ErrStaleTicket and changes nothing.
func (c *Controller) Resolve(t Ticket, o Outcome) error {
	if err := c.checkCurrent(t); err != nil {
		return err
	}
	switch o.Kind {
	case OutcomeSuccess:
		data := o.Data.Clone()
		data.Normalize()
		c.data = data
		c.dataReady = true
		return c.maybeFinish()
	case OutcomeFailure:
		return c.fail(o.Reason())
	default:
		return fmt.Errorf("unknown outcome kind %d", o.Kind)
	}
}

// Abort abandons the running generation and enters Error. A late outcome
// for t is stale afterwards.
func (c *Controller) Abort(t Ticket, reason string) error {
	if err := c.checkCurrent(t); err != nil {
		return err
	}
	if reason == "" {
		reason = "cancelled"
	}
	return c.fail(reason)
}

// Reset returns to Input from Dashboard ("new project") or Error ("retry").
// The record goes back to the placeholder; the last idea is kept.
func (c *Controller) Reset() error {
	if c.phase != domain.ViewDashboard && c.phase != domain.ViewError {
		return fmt.Errorf("%w: cannot reset from %s", ErrInvalidTransition, c.phase)
	}
	c.data = domain.Placeholder()
	c.failure = ""
	return c.transition(domain.ViewInput, "")
}

func (c *Controller) checkCurrent(t Ticket) error {
	if t.IsZero() || t.ID != c.ticket.ID {
		return ErrStaleTicket
	}
	if c.phase != domain.ViewGenerating {
		return fmt.Errorf("%w: not generating (%s)", ErrInvalidTransition, c.phase)
	}
	return nil
}

func (c *Controller) maybeFinish() error {
	if !c.scriptDone || !c.dataReady {
		return nil
	}
	return c.transition(domain.ViewDashboard, "")
}

func (c *Controller) fail(reason string) error {
	c.failure = reason
	c.data = domain.Placeholder()
	return c.transition(domain.ViewError, reason)
}

func (c *Controller) transition(to domain.ViewMode, reason string) error {
	from := c.phase
	allowed := false
	for _, next := range allowedTransitions[from] {
		if next == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	ticket := c.ticket
	c.phase = to
	if from == domain.ViewGenerating {
		// Leaving Generating retires the ticket and its log.
		c.ticket = Ticket{}
		c.logs = nil
	}
	c.observer.OnTransition(Transition{From: from, To: to, Ticket: ticket, Reason: reason})
	return nil
}
