package service

import (
	"context"

	"github.com/alexanderramin/ventureos/internal/domain"
)

// ArchiveService keeps the history of ventures generated in this session.
type ArchiveService interface {
	Record(ctx context.Context, idea string, data domain.VentureData) (*domain.ArchivedVenture, error)
	Recent(ctx context.Context, n int) ([]*domain.ArchivedVenture, error)
	Get(ctx context.Context, id string) (*domain.ArchivedVenture, error)
	// Total counts every archived venture, regardless of any listing limit.
	Total(ctx context.Context) (int, error)
}

// ExportService writes a venture to disk for use outside the app.
type ExportService interface {
	Export(ctx context.Context, data domain.VentureData) (path string, err error)
}
