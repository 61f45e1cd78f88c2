package session

import (
	"log/slog"

	"github.com/alexanderramin/ventureos/internal/domain"
)

// Transition describes one phase change.
type Transition struct {
	From   domain.ViewMode
	To     domain.ViewMode
	Ticket Ticket
	Reason string
}

// TransitionObserver is notified after every phase change.
type TransitionObserver interface {
	OnTransition(t Transition)
}

// LogTransitionObserver logs transitions through slog.
type LogTransitionObserver struct {
	Logger *slog.Logger
}

func (o LogTransitionObserver) OnTransition(t Transition) {
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}
	attrs := []any{
		"from", string(t.From),
		"to", string(t.To),
	}
	if t.Ticket.ID != "" {
		attrs = append(attrs, "ticket", t.Ticket.ID)
	}
	if t.Reason != "" {
		attrs = append(attrs, "reason", t.Reason)
	}
	logger.Info("view_transition", attrs...)
}

type noopTransitionObserver struct{}

func (noopTransitionObserver) OnTransition(Transition) {}
