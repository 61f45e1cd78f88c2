package session

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/ventureos/internal/domain"
)

// Authenticator signs a user in.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (domain.User, error)
}

// DefaultLoginDelay is how long the simulated login pretends to work.
const DefaultLoginDelay = time.Second

// SimulatedLogin accepts any non-blank credentials after Delay.
// No identity provider is contacted.
type SimulatedLogin struct {
	Delay time.Duration
}

func (s SimulatedLogin) Login(ctx context.Context, email, password string) (domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.User{}, ErrInvalidCredentials
	}

	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return domain.User{}, ctx.Err()
		case <-timer.C:
		}
	}

	return domain.NewUser(domain.NameFromEmail(email)), nil
}
