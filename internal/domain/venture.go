package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrEmptyIdea is returned when an idea is blank after trimming.
var ErrEmptyIdea = errors.New("idea must not be empty")

type BrandColors struct {
	Primary    string `json:"primary" yaml:"primary"`
	Secondary  string `json:"secondary" yaml:"secondary"`
	Background string `json:"background" yaml:"background"`
}

type PricingModel struct {
	Type              PricingType `json:"type" yaml:"type"`
	BasePrice         float64     `json:"basePrice" yaml:"basePrice"`
	PremiumMultiplier float64     `json:"premiumMultiplier" yaml:"premiumMultiplier"`
	CurrencySymbol    string      `json:"currencySymbol" yaml:"currencySymbol"`
}

// PremiumPrice is the price of the top tier.
func (p PricingModel) PremiumPrice() float64 {
	return p.BasePrice * p.PremiumMultiplier
}

// Tier is one column of the generated pricing page.
type Tier struct {
	Name  string
	Price float64
}

// Tiers derives the three pricing-page tiers from the base price and multiplier.
// A freemium entry tier is free.
func (p PricingModel) Tiers() []Tier {
	starter := p.BasePrice
	if p.Type == PricingFreemium {
		starter = 0
	}
	return []Tier{
		{Name: "Starter", Price: starter},
		{Name: "Growth", Price: p.BasePrice * (1 + p.PremiumMultiplier) / 2},
		{Name: "Premium", Price: p.PremiumPrice()},
	}
}

type Table struct {
	Name    string   `json:"name" yaml:"name"`
	Columns []string `json:"columns" yaml:"columns"`
}

type DatabaseSchema struct {
	Tables []Table `json:"tables" yaml:"tables"`
}

type FeatureFlags struct {
	MVP []string `json:"mvp" yaml:"mvp"`
	V2  []string `json:"v2" yaml:"v2"`
}

type VentureConfig struct {
	ProjectName    string         `json:"projectName" yaml:"projectName"`
	Tagline        string         `json:"tagline" yaml:"tagline"`
	BrandColors    BrandColors    `json:"brandColors" yaml:"brandColors"`
	PricingModel   PricingModel   `json:"pricingModel" yaml:"pricingModel"`
	DatabaseSchema DatabaseSchema `json:"databaseSchema" yaml:"databaseSchema"`
	FeatureFlags   FeatureFlags   `json:"featureFlags" yaml:"featureFlags"`
}

type ExecutiveStrategy struct {
	ProblemStatement     string `json:"problemStatement" yaml:"problemStatement"`
	SolutionDescription  string `json:"solutionDescription" yaml:"solutionDescription"`
	MonetizationStrategy string `json:"monetizationStrategy" yaml:"monetizationStrategy"`
}

type BusinessModelSlide struct {
	Title                 string   `json:"title" yaml:"title"`
	Points                []string `json:"points" yaml:"points"`
	ProjectedRevenueYear1 string   `json:"projectedRevenueYear1" yaml:"projectedRevenueYear1"`
}

type AskSlide struct {
	Amount       string   `json:"amount" yaml:"amount"`
	Equity       string   `json:"equity" yaml:"equity"`
	RunwayMonths int      `json:"runwayMonths" yaml:"runwayMonths"`
	UseOfFunds   []string `json:"useOfFunds" yaml:"useOfFunds"`
}

type InvestorDeck struct {
	Slide4BusinessModel BusinessModelSlide `json:"slide4BusinessModel" yaml:"slide4BusinessModel"`
	Slide7TheAsk        AskSlide           `json:"slide7TheAsk" yaml:"slide7TheAsk"`
}

// VentureData is the generated bundle shown on the dashboard.
// A record obtained from Placeholder or passed through Normalize has no nil
// slices, so renderers never need to guard against missing fields.
type VentureData struct {
	Config   VentureConfig     `json:"config" yaml:"config"`
	Strategy ExecutiveStrategy `json:"strategy" yaml:"strategy"`
	Deck     InvestorDeck      `json:"deck" yaml:"deck"`
}

// PlaceholderProjectName is the project name shown before any generation resolves.
const PlaceholderProjectName = "Venture-OS"

// Placeholder returns the static record displayed until a generation call resolves.
func Placeholder() VentureData {
	return VentureData{
		Config: VentureConfig{
			ProjectName: PlaceholderProjectName,
			Tagline:     "Synchronized Startup Architect",
			BrandColors: BrandColors{Primary: "#00f0ff", Secondary: "#7000ff", Background: "#0a0a0f"},
			PricingModel: PricingModel{
				Type:              PricingSubscription,
				BasePrice:         29,
				PremiumMultiplier: 10,
				CurrencySymbol:    "$",
			},
			DatabaseSchema: DatabaseSchema{Tables: []Table{}},
			FeatureFlags:   FeatureFlags{MVP: []string{}, V2: []string{}},
		},
		Deck: InvestorDeck{
			Slide4BusinessModel: BusinessModelSlide{Points: []string{}},
			Slide7TheAsk:        AskSlide{RunwayMonths: 18, UseOfFunds: []string{}},
		},
	}
}

// Normalize fills absent fields so the record is fully populated.
// Missing scalars fall back to the placeholder values; nil lists become empty.
func (v *VentureData) Normalize() {
	def := Placeholder()

	v.Config.ProjectName = strings.TrimSpace(v.Config.ProjectName)
	v.Config.BrandColors.Primary = CoalesceStr(v.Config.BrandColors.Primary, def.Config.BrandColors.Primary)
	v.Config.BrandColors.Secondary = CoalesceStr(v.Config.BrandColors.Secondary, def.Config.BrandColors.Secondary)
	v.Config.BrandColors.Background = CoalesceStr(v.Config.BrandColors.Background, def.Config.BrandColors.Background)

	pm := &v.Config.PricingModel
	if pm.Type == "" {
		pm.Type = def.Config.PricingModel.Type
	}
	pm.CurrencySymbol = CoalesceStr(pm.CurrencySymbol, def.Config.PricingModel.CurrencySymbol)
	pm.PremiumMultiplier = CoalesceFloat(pm.PremiumMultiplier, 1)

	if v.Config.DatabaseSchema.Tables == nil {
		v.Config.DatabaseSchema.Tables = []Table{}
	}
	for i := range v.Config.DatabaseSchema.Tables {
		v.Config.DatabaseSchema.Tables[i].Columns = nonNil(v.Config.DatabaseSchema.Tables[i].Columns)
	}
	v.Config.FeatureFlags.MVP = nonNil(v.Config.FeatureFlags.MVP)
	v.Config.FeatureFlags.V2 = nonNil(v.Config.FeatureFlags.V2)

	v.Deck.Slide4BusinessModel.Points = nonNil(v.Deck.Slide4BusinessModel.Points)
	v.Deck.Slide7TheAsk.UseOfFunds = nonNil(v.Deck.Slide7TheAsk.UseOfFunds)
	v.Deck.Slide7TheAsk.RunwayMonths = CoalesceInt(v.Deck.Slide7TheAsk.RunwayMonths, def.Deck.Slide7TheAsk.RunwayMonths)
}

// Validate checks the fields a generated record cannot do without.
func (v VentureData) Validate() error {
	if strings.TrimSpace(v.Config.ProjectName) == "" {
		return fmt.Errorf("config.projectName is required")
	}
	if !ValidPricingTypes[v.Config.PricingModel.Type] {
		return fmt.Errorf("config.pricingModel.type must be Subscription, Commission or Freemium, got %q", v.Config.PricingModel.Type)
	}
	if v.Config.PricingModel.BasePrice < 0 {
		return fmt.Errorf("config.pricingModel.basePrice must not be negative")
	}
	for i, t := range v.Config.DatabaseSchema.Tables {
		if strings.TrimSpace(t.Name) == "" {
			return fmt.Errorf("config.databaseSchema.tables[%d].name is required", i)
		}
	}
	return nil
}

// Clone returns a deep copy so callers can't mutate the original through shared slices.
func (v VentureData) Clone() VentureData {
	out := v
	out.Config.DatabaseSchema.Tables = make([]Table, len(v.Config.DatabaseSchema.Tables))
	for i, t := range v.Config.DatabaseSchema.Tables {
		out.Config.DatabaseSchema.Tables[i] = Table{Name: t.Name, Columns: cloneStrings(t.Columns)}
	}
	out.Config.FeatureFlags.MVP = cloneStrings(v.Config.FeatureFlags.MVP)
	out.Config.FeatureFlags.V2 = cloneStrings(v.Config.FeatureFlags.V2)
	out.Deck.Slide4BusinessModel.Points = cloneStrings(v.Deck.Slide4BusinessModel.Points)
	out.Deck.Slide7TheAsk.UseOfFunds = cloneStrings(v.Deck.Slide7TheAsk.UseOfFunds)
	return out
}

// ArchivedVenture is a generated record kept in the session archive.
type ArchivedVenture struct {
	ID          string
	Idea        string
	ProjectName string
	Data        VentureData
	CreatedAt   time.Time
}

// NormalizeIdea trims an idea and rejects blank input.
func NormalizeIdea(idea string) (string, error) {
	trimmed := strings.TrimSpace(idea)
	if trimmed == "" {
		return "", ErrEmptyIdea
	}
	return trimmed, nil
}
