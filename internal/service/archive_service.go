package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/ventureos/internal/domain"
	"github.com/alexanderramin/ventureos/internal/repository"
)

type archiveService struct {
	ventures repository.VentureRepo
	observer UseCaseObserver
}

// NewArchiveService creates an ArchiveService over repo.
func NewArchiveService(repo repository.VentureRepo, observers ...UseCaseObserver) ArchiveService {
	return &archiveService{
		ventures: repo,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *archiveService) Record(ctx context.Context, idea string, data domain.VentureData) (v *domain.ArchivedVenture, err error) {
	fields := map[string]any{"project": data.Config.ProjectName}
	defer observe(ctx, s.observer, "archive-record", time.Now().UTC(), fields, &err)

	idea, err = domain.NormalizeIdea(idea)
	if err != nil {
		return nil, err
	}
	if err = data.Validate(); err != nil {
		return nil, fmt.Errorf("refusing to archive invalid venture: %w", err)
	}

	v = &domain.ArchivedVenture{
		Idea:        idea,
		ProjectName: data.Config.ProjectName,
		Data:        data.Clone(),
	}
	if err = s.ventures.Create(ctx, v); err != nil {
		return nil, err
	}
	fields["id"] = v.ID
	return v, nil
}

func (s *archiveService) Recent(ctx context.Context, n int) (list []*domain.ArchivedVenture, err error) {
	fields := map[string]any{"limit": n}
	defer observe(ctx, s.observer, "archive-recent", time.Now().UTC(), fields, &err)

	list, err = s.ventures.List(ctx, n)
	if err != nil {
		return nil, err
	}
	fields["count"] = len(list)
	return list, nil
}

func (s *archiveService) Get(ctx context.Context, id string) (v *domain.ArchivedVenture, err error) {
	defer observe(ctx, s.observer, "archive-get", time.Now().UTC(), map[string]any{"id": id}, &err)
	return s.ventures.GetByID(ctx, id)
}

func (s *archiveService) Total(ctx context.Context) (n int, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "archive-total", time.Now().UTC(), fields, &err)

	n, err = s.ventures.Count(ctx)
	if err != nil {
		return 0, err
	}
	fields["count"] = n
	return n, nil
}
