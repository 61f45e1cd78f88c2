package cli

import (
	"github.com/alexanderramin/ventureos/internal/domain"
	"github.com/alexanderramin/ventureos/internal/session"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App        *App
	Controller *session.Controller

	// Build is the simulator run of the current generation, nil when idle.
	Build *session.Run

	// User is set after the simulated login.
	User *domain.User

	// Status is a transient one-line message shown above the key hints.
	Status string

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and the
// status bar (3 lines: status, separator, hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 5 {
		return 5
	}
	return h
}

// ContentWidth is the terminal width with a floor for unsized test models.
func (s *SharedState) ContentWidth() int {
	if s.Width < 40 {
		return 80
	}
	return s.Width
}
