package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/ventureos/internal/domain"
)

// ErrNotFound is wrapped by every lookup that matches no row.
var ErrNotFound = errors.New("not found")

// VentureRepo persists generated ventures for the session history.
type VentureRepo interface {
	Create(ctx context.Context, v *domain.ArchivedVenture) error
	GetByID(ctx context.Context, id string) (*domain.ArchivedVenture, error)
	// List returns the newest ventures first. A non-positive limit returns all.
	List(ctx context.Context, limit int) ([]*domain.ArchivedVenture, error)
	// Count returns the number of archived ventures.
	Count(ctx context.Context) (int, error)
}
