package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/alexanderramin/ventureos/internal/domain"
)

// NewTestVenture builds a fully populated record named projectName.
func NewTestVenture(projectName string) domain.VentureData {
	data := domain.Placeholder()
	data.Config.ProjectName = projectName
	data.Config.Tagline = projectName + " does it for you"
	data.Config.PricingModel = domain.PricingModel{
		Type:              domain.PricingCommission,
		BasePrice:         15,
		PremiumMultiplier: 3,
		CurrencySymbol:    "$",
	}
	data.Config.DatabaseSchema.Tables = []domain.Table{
		{Name: "users", Columns: []string{"id", "email"}},
		{Name: "bookings", Columns: []string{"id", "user_id", "starts_at"}},
	}
	data.Config.FeatureFlags = domain.FeatureFlags{MVP: []string{"Booking"}, V2: []string{"Tips"}}
	data.Strategy = domain.ExecutiveStrategy{
		ProblemStatement:     "Owners are busy",
		SolutionDescription:  "On-demand walkers",
		MonetizationStrategy: "Commission per walk",
	}
	data.Deck.Slide4BusinessModel = domain.BusinessModelSlide{Title: "Model", Points: []string{"15% take rate"}, ProjectedRevenueYear1: "$1.2M"}
	data.Deck.Slide7TheAsk = domain.AskSlide{Amount: "$500k", Equity: "10%", RunwayMonths: 18, UseOfFunds: []string{"Growth"}}
	return data
}

// ArchivedVenture options
type ArchivedOption func(*domain.ArchivedVenture)

func WithCreatedAt(t time.Time) ArchivedOption {
	return func(v *domain.ArchivedVenture) {
		v.CreatedAt = t
	}
}

func WithID(id string) ArchivedOption {
	return func(v *domain.ArchivedVenture) {
		v.ID = id
	}
}

func NewTestArchivedVenture(idea, projectName string, opts ...ArchivedOption) *domain.ArchivedVenture {
	v := &domain.ArchivedVenture{
		Idea:        idea,
		ProjectName: projectName,
		Data:        NewTestVenture(projectName),
		CreatedAt:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// StubGenerator returns a fixed record or error and counts calls.
// When Gate is non-nil, Generate blocks until it is closed or ctx ends.
type StubGenerator struct {
	Data *domain.VentureData
	Err  error
	Gate chan struct{}

	mu    sync.Mutex
	ideas []string
}

func (s *StubGenerator) Generate(ctx context.Context, idea string) (*domain.VentureData, error) {
	s.mu.Lock()
	s.ideas = append(s.ideas, idea)
	s.mu.Unlock()

	if s.Gate != nil {
		select {
		case <-s.Gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Data == nil {
		return nil, nil
	}
	out := s.Data.Clone()
	return &out, nil
}

// Ideas returns every idea passed to Generate, in call order.
func (s *StubGenerator) Ideas() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.ideas...)
}
