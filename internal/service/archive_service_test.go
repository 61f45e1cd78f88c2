package service

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/alexanderramin/ventureos/internal/domain"
	"github.com/alexanderramin/ventureos/internal/repository"
	"github.com/alexanderramin/ventureos/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureUseCaseObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *captureUseCaseObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *captureUseCaseObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

func newArchive(t *testing.T, obs UseCaseObserver) ArchiveService {
	t.Helper()
	return NewArchiveService(repository.NewSQLiteVentureRepo(testutil.NewTestDB(t)), obs)
}

func TestArchiveService_RecordAndRecent(t *testing.T) {
	obs := &captureUseCaseObserver{}
	svc := newArchive(t, obs)
	ctx := context.Background()

	v, err := svc.Record(ctx, "  dog walking app ", testutil.NewTestVenture("PawPath"))
	require.NoError(t, err)
	assert.Equal(t, "dog walking app", v.Idea)
	assert.Equal(t, "PawPath", v.ProjectName)

	ev := obs.last()
	assert.Equal(t, "archive-record", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, v.ID, ev.Fields["id"])

	_, err = svc.Record(ctx, "meal kits", testutil.NewTestVenture("Mealr"))
	require.NoError(t, err)

	recent, err := svc.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "Mealr", recent[0].ProjectName)
	assert.Equal(t, 2, obs.last().Fields["count"])

	got, err := svc.Get(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "PawPath", got.Data.Config.ProjectName)
}

func TestArchiveService_TotalIgnoresListLimit(t *testing.T) {
	obs := &captureUseCaseObserver{}
	svc := newArchive(t, obs)
	ctx := context.Background()

	n, err := svc.Total(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	for _, name := range []string{"PawPath", "Mealr", "CampNest"} {
		_, err := svc.Record(ctx, "idea for "+name, testutil.NewTestVenture(name))
		require.NoError(t, err)
	}
	recent, err := svc.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)

	n, err = svc.Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "archive-total", obs.last().Name)
	assert.Equal(t, 3, obs.last().Fields["count"])
}

func TestArchiveService_RecordRejectsInvalid(t *testing.T) {
	obs := &captureUseCaseObserver{}
	svc := newArchive(t, obs)

	_, err := svc.Record(context.Background(), "", testutil.NewTestVenture("X"))
	assert.ErrorIs(t, err, domain.ErrEmptyIdea)

	bad := testutil.NewTestVenture("")
	_, err = svc.Record(context.Background(), "idea", bad)
	require.Error(t, err)
	assert.False(t, obs.last().Success)
	assert.Equal(t, err, obs.last().Err)
}

func TestArchiveService_GetMissing(t *testing.T) {
	svc := newArchive(t, nil)
	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestLogUseCaseObserver_WritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(slog.New(slog.NewTextHandler(&buf, nil)))
	svc := NewArchiveService(repository.NewSQLiteVentureRepo(testutil.NewTestDB(t)), obs)

	_, err := svc.Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "use_case=archive-recent")
	assert.Contains(t, buf.String(), "success=true")
}

func TestNewLogUseCaseObserver_NilLogger(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
