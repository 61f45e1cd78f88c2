package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/ventureos/internal/domain"
)

// Runner drives one controller headlessly: it starts the simulator and the
// generator together and feeds both into the controller from a single loop.
type Runner struct {
	Controller *Controller
	Simulator  *Simulator
	Generator  Generator
	// OnLog, when set, receives each revealed line as it is appended.
	OnLog func(line string)
}

type generationResult struct {
	ticket  Ticket
	outcome Outcome
}

// Run initiates idea and blocks until the controller reaches Dashboard or Error.
// Cancelling ctx aborts the generation and returns an error wrapping ErrCancelled.
func (r *Runner) Run(ctx context.Context, idea string) (domain.VentureData, error) {
	c := r.Controller
	ticket, err := c.Initiate(idea)
	if err != nil {
		return domain.VentureData{}, err
	}

	genCtx, cancelGen := context.WithCancel(ctx)
	defer cancelGen()
	results := make(chan generationResult, 1)
	go func() {
		results <- generationResult{ticket: ticket, outcome: Generate(genCtx, r.Generator, ticket)}
	}()

	run := r.Simulator.Start(ctx)
	defer run.Cancel()
	events := run.Events()

	for c.Phase() == domain.ViewGenerating {
		select {
		case <-ctx.Done():
			if err := c.Abort(ticket, "cancelled"); err != nil {
				return domain.VentureData{}, err
			}
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if err := r.applyEvent(ticket, ev); err != nil && !errors.Is(err, ErrStaleTicket) {
				return domain.VentureData{}, err
			}
		case res := <-results:
			if err := c.Resolve(res.ticket, res.outcome); err != nil && !errors.Is(err, ErrStaleTicket) {
				return domain.VentureData{}, err
			}
		}
	}

	if c.Phase() == domain.ViewError {
		if ctx.Err() != nil {
			return domain.VentureData{}, fmt.Errorf("%w: %v", ErrCancelled, ctx.Err())
		}
		return domain.VentureData{}, fmt.Errorf("generation failed: %s", c.Failure())
	}
	return c.Data(), nil
}

func (r *Runner) applyEvent(ticket Ticket, ev Event) error {
	switch ev.Kind {
	case EventReveal:
		if err := r.Controller.AppendLog(ticket, ev.Line); err != nil {
			return err
		}
		if r.OnLog != nil {
			r.OnLog(ev.Line)
		}
		return nil
	case EventDone:
		return r.Controller.CompleteSimulation(ticket)
	default:
		return nil
	}
}
