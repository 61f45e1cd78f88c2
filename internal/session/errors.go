package session

import "errors"

var (
	// ErrInvalidTransition is returned when an operation is not allowed in the current phase.
	ErrInvalidTransition = errors.New("invalid view transition")

	// ErrStaleTicket is returned when an event belongs to a generation that is no longer current.
	ErrStaleTicket = errors.New("stale generation ticket")

	// ErrCancelled marks a generation that was abandoned before it finished.
	ErrCancelled = errors.New("generation cancelled")

	// ErrInvalidCredentials is returned by a login with a blank email or password.
	ErrInvalidCredentials = errors.New("email and password are required")
)
