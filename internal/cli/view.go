package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewLanding ViewID = iota
	ViewGenerating
	ViewDashboard
	ViewError
	ViewLogin
	ViewHistory
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// inputCapturer is implemented by views that own a focused text input and
// need every key, including q and the digits.
type inputCapturer interface {
	CapturesInput() bool
}

// viewCapturesInput returns true if the active view should receive all key
// events, bypassing the global q binding.
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	if v.ID() == ViewLogin {
		return true
	}
	if c, ok := v.(inputCapturer); ok {
		return c.CapturesInput()
	}
	return false
}
