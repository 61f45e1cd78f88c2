package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/ventureos/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleVenture() domain.VentureData {
	v := domain.Placeholder()
	v.Config.ProjectName = "PawPath"
	v.Config.Tagline = "Walks on demand"
	v.Config.PricingModel = domain.PricingModel{
		Type:              domain.PricingCommission,
		BasePrice:         20,
		PremiumMultiplier: 3,
		CurrencySymbol:    "$",
	}
	v.Config.DatabaseSchema.Tables = []domain.Table{
		{Name: "users", Columns: []string{"id", "email"}},
		{Name: "dogs", Columns: []string{"id", "owner_id", "breed"}},
	}
	v.Config.FeatureFlags.MVP = []string{"Booking", "GPS tracking"}
	v.Config.FeatureFlags.V2 = []string{"Dog social feed"}
	v.Strategy.ProblemStatement = "Owners lack time."
	v.Deck.Slide4BusinessModel.Points = []string{"20% take rate"}
	v.Deck.Slide7TheAsk.Amount = "$500k"
	v.Deck.Slide7TheAsk.UseOfFunds = []string{"Hiring"}
	return v
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Free"},
		{29, "$29"},
		{4.99, "$4.99"},
		{159.5, "$159.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice("$", tt.amount))
	}
}

func TestHumanTimestamp(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "Just now", HumanTimestamp(now.Add(-10*time.Second), now))
	assert.Equal(t, "5m ago", HumanTimestamp(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h ago", HumanTimestamp(now.Add(-3*time.Hour), now))
	assert.Equal(t, "Feb 20 12:00", HumanTimestamp(now.Add(-9*24*time.Hour), now))
}

func TestRenderProgress_Clamps(t *testing.T) {
	assert.Contains(t, RenderProgress(4, 9, 9), "4/9")
	assert.Contains(t, RenderProgress(12, 9, 9), "9/9")
	assert.Contains(t, RenderProgress(-1, 9, 9), "0/9")
	assert.Contains(t, RenderProgress(0, 0, 9), "0/1")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "B"}, [][]string{{"long-cell", "x"}, {"s", "y"}})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Index(lines[2], "x"), strings.Index(lines[3], "y"))
	assert.Empty(t, RenderTable(nil, nil))
}

func TestSwatch_InvalidColorFallsBackToText(t *testing.T) {
	assert.Contains(t, Swatch("#00f0ff"), "#00f0ff")
	assert.Equal(t, Dim("teal"), Swatch("teal"))
}

func TestFormatPricing_ShowsThreeTiers(t *testing.T) {
	v := sampleVenture()
	out := FormatPricing(v.Config.PricingModel)
	for _, want := range []string{"STARTER", "GROWTH", "PREMIUM", "$20", "$40", "$60", "Commission"} {
		assert.Contains(t, out, want)
	}

	free := FormatPricing(domain.PricingModel{Type: domain.PricingFreemium, BasePrice: 10, PremiumMultiplier: 2, CurrencySymbol: "€"})
	assert.Contains(t, free, "Free")
	assert.Contains(t, free, "€20")
}

func TestFormatSchema(t *testing.T) {
	out := FormatSchema(sampleVenture().Config.DatabaseSchema)
	assert.Contains(t, out, "users")
	assert.Contains(t, out, "owner_id, breed")
	assert.Contains(t, FormatSchema(domain.DatabaseSchema{}), "No tables generated.")
}

func TestFormatConfigJSON_UsesWireKeys(t *testing.T) {
	out := FormatConfigJSON(sampleVenture())
	assert.Contains(t, out, `"projectName": "PawPath"`)
	assert.Contains(t, out, `"premiumMultiplier": 3`)
}

func TestFormatOverview_ListsRoadmap(t *testing.T) {
	out := FormatOverview(sampleVenture())
	assert.Contains(t, out, "Owners lack time.")
	assert.Contains(t, out, "GPS tracking")
	assert.Contains(t, out, "Dog social feed")
	assert.Contains(t, out, "(not generated)")
}

func TestFormatDeck(t *testing.T) {
	out := FormatDeck(sampleVenture().Deck)
	assert.Contains(t, out, "20% take rate")
	assert.Contains(t, out, "$500k")
	assert.Contains(t, out, "18 months")
	assert.Contains(t, out, "Hiring")
}

func TestFormatPrototype_UsesProjectIdentity(t *testing.T) {
	out := FormatPrototype(sampleVenture().Config)
	assert.Contains(t, out, "PawPath")
	assert.Contains(t, out, "Walks on demand")
	assert.Contains(t, out, "Get Started")
	assert.Contains(t, out, "#00f0ff")
}

func TestFormatHistory(t *testing.T) {
	now := time.Now()
	assert.Contains(t, FormatHistory(nil, now), "No ventures generated yet.")

	v := sampleVenture()
	out := FormatHistory([]domain.ArchivedVenture{{
		ID:          "0123456789abcdef",
		Idea:        "dog walking app",
		ProjectName: "PawPath",
		Data:        v,
		CreatedAt:   now,
	}}, now)
	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "89abcdef")
	assert.Contains(t, out, "PawPath")
	assert.Contains(t, out, "Just now")
}

func TestLandingSections(t *testing.T) {
	assert.Contains(t, FormatHero(), "SYSTEM ONLINE v2.5")
	assert.Contains(t, FormatUpgrade(), "Disconnected ChatGPT prompts")
	plansOut := FormatPlans()
	assert.Contains(t, plansOut, "FOUNDER")
	assert.Contains(t, plansOut, "Cheaper than one hour with a CTO.")
}
