package session

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultScript is the build log revealed while a venture is generated.
var DefaultScript = []string{
	"Initializing Venture-OS Core...",
	"Connecting to Neural Architecture Grid...",
	"Parsing Input Vector...",
	"Analyzing Competitor Landscape...",
	"Structuring Relational Database...",
	"Generating React Native Interfaces...",
	"Syncing Financial Projections...",
	"Compiling Investor Assets...",
	"Finalizing Build...",
}

// Timing controls the reveal cadence. Each increment is drawn uniformly
// from [MinStep, MaxStep); Tail is the pause between the last line and done.
type Timing struct {
	MinStep time.Duration
	MaxStep time.Duration
	Tail    time.Duration
}

// DefaultTiming matches the pacing of the hosted demo.
var DefaultTiming = Timing{
	MinStep: 400 * time.Millisecond,
	MaxStep: 1200 * time.Millisecond,
	Tail:    1000 * time.Millisecond,
}

// Normalized clamps negative values and swaps an inverted range.
func (t Timing) Normalized() Timing {
	if t.MinStep < 0 {
		t.MinStep = 0
	}
	if t.MaxStep < 0 {
		t.MaxStep = 0
	}
	if t.MaxStep < t.MinStep {
		t.MinStep, t.MaxStep = t.MaxStep, t.MinStep
	}
	if t.Tail < 0 {
		t.Tail = 0
	}
	return t
}

// Step is one scheduled reveal, At measured from the start of the run.
type Step struct {
	Index   int
	Message string
	At      time.Duration
}

// Plan schedules every line of script. Offsets are cumulative so they never
// decrease, and reveal order equals script order for every draw.
func Plan(script []string, timing Timing, rng *rand.Rand) []Step {
	timing = timing.Normalized()
	steps := make([]Step, len(script))
	var at time.Duration
	for i, msg := range script {
		at += timing.MinStep
		if span := timing.MaxStep - timing.MinStep; span > 0 {
			at += time.Duration(rng.Int64N(int64(span)))
		}
		steps[i] = Step{Index: i, Message: msg, At: at}
	}
	return steps
}

// PlanDuration is when the done event fires for a plan.
func PlanDuration(steps []Step, timing Timing) time.Duration {
	var last time.Duration
	if n := len(steps); n > 0 {
		last = steps[n-1].At
	}
	return last + timing.Normalized().Tail
}

// EventKind distinguishes simulator events.
type EventKind int

const (
	EventReveal EventKind = iota + 1
	EventDone
)

// Event is emitted by a Run. Line is the timestamped log line for reveals.
type Event struct {
	RunID uint64
	Kind  EventKind
	Step  Step
	Line  string
}

// Simulator produces timed build-log runs.
type Simulator struct {
	script []string
	timing Timing
	seed   uint64
	now    func() time.Time
	nextID atomic.Uint64
}

// SimulatorOption configures a Simulator.
type SimulatorOption func(*Simulator)

// WithSeed fixes the random source. Run n uses seed+n, so repeated runs still differ.
// Zero keeps the default random seeding.
func WithSeed(seed uint64) SimulatorOption {
	return func(s *Simulator) { s.seed = seed }
}

// WithClock overrides the clock used to stamp log lines.
func WithClock(now func() time.Time) SimulatorOption {
	return func(s *Simulator) { s.now = now }
}

// NewSimulator creates a Simulator. A nil script uses DefaultScript.
func NewSimulator(script []string, timing Timing, opts ...SimulatorOption) *Simulator {
	if script == nil {
		script = DefaultScript
	}
	s := &Simulator{
		script: append([]string(nil), script...),
		timing: timing.Normalized(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Len is the number of reveals per run.
func (s *Simulator) Len() int { return len(s.script) }

// Start schedules a new run. Events arrive in order on Run.Events, which
// closes after EventDone or cancellation.
func (s *Simulator) Start(ctx context.Context) *Run {
	id := s.nextID.Add(1)
	ctx, cancel := context.WithCancel(ctx)
	steps := Plan(s.script, s.timing, s.rng(id))
	r := &Run{
		ID:       id,
		events:   make(chan Event),
		cancel:   cancel,
		done:     make(chan struct{}),
		started:  time.Now(),
		duration: PlanDuration(steps, s.timing),
	}
	go r.loop(ctx, steps, s.now)
	return r
}

func (s *Simulator) rng(runID uint64) *rand.Rand {
	if s.seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(s.seed, runID))
}

// Run is one in-flight reveal sequence.
type Run struct {
	ID     uint64
	events chan Event
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once

	started  time.Time
	duration time.Duration
}

// Events delivers this run's events. Consumers must keep receiving until it closes
// or call Cancel.
func (r *Run) Events() <-chan Event { return r.events }

// Cancel stops the run and waits for its goroutine. No event is delivered after Cancel returns.
func (r *Run) Cancel() {
	r.once.Do(r.cancel)
	<-r.done
}

// Done is closed once the run's goroutine has exited.
func (r *Run) Done() <-chan struct{} { return r.done }

// Duration is the offset of the done event from the start of the run.
func (r *Run) Duration() time.Duration { return r.duration }

// Remaining is how long until the done event is due at now, never negative.
func (r *Run) Remaining(now time.Time) time.Duration {
	return max(r.duration-now.Sub(r.started), 0)
}

func (r *Run) loop(ctx context.Context, steps []Step, now func() time.Time) {
	defer close(r.done)
	defer close(r.events)
	defer r.once.Do(r.cancel)

	start := r.started
	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	wait := func(at time.Duration) bool {
		timer.Reset(time.Until(start.Add(at)))
		select {
		case <-ctx.Done():
			return false
		case <-timer.C:
			return ctx.Err() == nil
		}
	}
	send := func(ev Event) bool {
		select {
		case <-ctx.Done():
			return false
		case r.events <- ev:
			return true
		}
	}

	for _, st := range steps {
		if !wait(st.At) {
			return
		}
		line := FormatLine(now(), st.Message)
		if !send(Event{RunID: r.ID, Kind: EventReveal, Step: st, Line: line}) {
			return
		}
	}
	if !wait(r.duration) {
		return
	}
	send(Event{RunID: r.ID, Kind: EventDone})
}

// FormatLine stamps a log message the way the terminal panel displays it.
func FormatLine(t time.Time, msg string) string {
	return fmt.Sprintf("[%s] %s", t.Format("15:04:05"), msg)
}
