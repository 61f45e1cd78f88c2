package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/ventureos/internal/domain"
	"github.com/alexanderramin/ventureos/internal/llm"
)

// OutcomeKind tags the result of a generation call.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota + 1
	OutcomeFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Outcome is the tagged result of one generation call.
// Exactly one of Data (success) or Err (failure) is meaningful.
type Outcome struct {
	Kind OutcomeKind
	Data domain.VentureData
	Err  error
}

// Succeeded wraps a generated record.
func Succeeded(data domain.VentureData) Outcome {
	return Outcome{Kind: OutcomeSuccess, Data: data}
}

// Failed wraps a generation error. A nil error still produces a failure.
func Failed(err error) Outcome {
	if err == nil {
		err = errors.New("generation failed")
	}
	return Outcome{Kind: OutcomeFailure, Err: err}
}

// Reason is the human-readable failure message shown on the error screen.
func (o Outcome) Reason() string {
	if o.Kind != OutcomeFailure || o.Err == nil {
		return ""
	}
	switch {
	case errors.Is(o.Err, ErrCancelled), errors.Is(o.Err, context.Canceled), errors.Is(o.Err, llm.ErrCancelled):
		return "cancelled"
	case errors.Is(o.Err, llm.ErrTimeout), errors.Is(o.Err, context.DeadlineExceeded):
		return "generation timed out"
	case errors.Is(o.Err, llm.ErrOllamaUnavailable):
		return "model server unavailable"
	case errors.Is(o.Err, llm.ErrInvalidOutput):
		return "model returned an unusable venture"
	default:
		return o.Err.Error()
	}
}

// Generator produces venture records. intelligence.VentureService satisfies it.
type Generator interface {
	Generate(ctx context.Context, idea string) (*domain.VentureData, error)
}

// Generate runs one generation for ticket and converts the result into an Outcome.
func Generate(ctx context.Context, gen Generator, ticket Ticket) Outcome {
	data, err := gen.Generate(ctx, ticket.Idea)
	switch {
	case ctx.Err() != nil:
		return Failed(fmt.Errorf("%w: %v", ErrCancelled, ctx.Err()))
	case err != nil:
		return Failed(err)
	case data == nil:
		return Failed(errors.New("generator returned no venture"))
	}
	return Succeeded(data.Clone())
}
