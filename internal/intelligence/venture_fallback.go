package intelligence

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"unicode"

	"github.com/alexanderramin/ventureos/internal/domain"
)

// fallbackVentureService builds a venture from the idea's own words.
// The result depends only on the idea, so demos and tests run offline.
type fallbackVentureService struct{}

// NewFallbackVentureService returns the offline VentureService used when the LLM is disabled.
func NewFallbackVentureService() VentureService {
	return fallbackVentureService{}
}

var ideaStopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "for": true,
	"of": true, "to": true, "in": true, "on": true, "with": true, "that": true,
	"my": true, "your": true, "app": true, "apps": true, "platform": true,
	"service": true, "startup": true, "tool": true, "website": true, "like": true,
}

var nameSuffixes = []string{"Path", "Hub", "ly", "Nest", "Flow", "Loop", "Pilot", "Base"}

var brandPalettes = []domain.BrandColors{
	{Primary: "#00f0ff", Secondary: "#7000ff", Background: "#0a0a0f"},
	{Primary: "#39ff14", Secondary: "#00b3ff", Background: "#05080a"},
	{Primary: "#ff2e88", Secondary: "#ffb400", Background: "#0d0610"},
	{Primary: "#f5f500", Secondary: "#ff5f1f", Background: "#0b0b0b"},
}

var askAmounts = []string{"$250k", "$500k", "$750k", "$1M"}

var (
	commissionWords = []string{"market", "booking", "book", "deliver", "walk", "ride", "rent", "hire", "freelanc", "tutor", "sitter", "clean"}
	freemiumWords   = []string{"social", "game", "community", "chat", "fitness", "habit", "journal", "music", "photo"}
)

func (fallbackVentureService) Generate(ctx context.Context, idea string) (*domain.VentureData, error) {
	idea, err := domain.NormalizeIdea(idea)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	words := significantWords(idea)
	h := ideaHash(idea)
	subject := "Nova"
	if len(words) > 0 {
		subject = titleWord(words[0])
	}

	data := domain.Placeholder()
	cfg := &data.Config
	cfg.ProjectName = subject + nameSuffixes[h%uint32(len(nameSuffixes))]
	cfg.Tagline = fmt.Sprintf("%s, reimagined for people who hate waiting.", capitalize(idea))
	cfg.BrandColors = brandPalettes[h%uint32(len(brandPalettes))]
	cfg.PricingModel = pricingFor(words)
	cfg.DatabaseSchema = schemaFor(words, cfg.PricingModel.Type)
	cfg.FeatureFlags = featuresFor(subject, cfg.PricingModel.Type)

	data.Strategy = domain.ExecutiveStrategy{
		ProblemStatement:     fmt.Sprintf("People who want %s juggle spreadsheets, group chats and guesswork.", strings.ToLower(idea)),
		SolutionDescription:  fmt.Sprintf("%s puts %s in one place with instant matching, scheduling and payments.", cfg.ProjectName, strings.ToLower(idea)),
		MonetizationStrategy: monetizationFor(cfg.PricingModel),
	}

	data.Deck = domain.InvestorDeck{
		Slide4BusinessModel: domain.BusinessModelSlide{
			Title: "Business Model",
			Points: []string{
				fmt.Sprintf("%s pricing starting at %s%.2f", cfg.PricingModel.Type, cfg.PricingModel.CurrencySymbol, cfg.PricingModel.BasePrice),
				fmt.Sprintf("Premium tier at %s%.2f", cfg.PricingModel.CurrencySymbol, cfg.PricingModel.PremiumPrice()),
				"Low acquisition cost through local referral loops",
			},
			ProjectedRevenueYear1: fmt.Sprintf("$%d.%dM", 1+h%3, h%10),
		},
		Slide7TheAsk: domain.AskSlide{
			Amount:       askAmounts[h%uint32(len(askAmounts))],
			Equity:       "10%",
			RunwayMonths: 18,
			UseOfFunds:   []string{"Product engineering (50%)", "Growth marketing (30%)", "Operations (20%)"},
		},
	}

	data.Normalize()
	return &data, nil
}

func significantWords(idea string) []string {
	fields := strings.FieldsFunc(strings.ToLower(idea), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if !ideaStopwords[f] {
			out = append(out, f)
		}
	}
	return out
}

func ideaHash(idea string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(idea)))
	return h.Sum32()
}

func pricingFor(words []string) domain.PricingModel {
	switch {
	case containsAny(words, commissionWords):
		return domain.PricingModel{Type: domain.PricingCommission, BasePrice: 12, PremiumMultiplier: 3, CurrencySymbol: "$"}
	case containsAny(words, freemiumWords):
		return domain.PricingModel{Type: domain.PricingFreemium, BasePrice: 4.99, PremiumMultiplier: 4, CurrencySymbol: "$"}
	default:
		return domain.PricingModel{Type: domain.PricingSubscription, BasePrice: 19, PremiumMultiplier: 5, CurrencySymbol: "$"}
	}
}

func schemaFor(words []string, pricing domain.PricingType) domain.DatabaseSchema {
	tables := []domain.Table{
		{Name: "users", Columns: []string{"id", "email", "name", "created_at"}},
	}
	if len(words) > 0 {
		tables = append(tables, domain.Table{
			Name:    plural(words[0]),
			Columns: []string{"id", "owner_id", "name", "details", "created_at"},
		})
	}
	switch pricing {
	case domain.PricingCommission:
		tables = append(tables,
			domain.Table{Name: "bookings", Columns: []string{"id", "user_id", "provider_id", "starts_at", "status", "amount"}},
			domain.Table{Name: "payouts", Columns: []string{"id", "provider_id", "amount", "paid_at"}},
		)
	case domain.PricingFreemium:
		tables = append(tables, domain.Table{Name: "upgrades", Columns: []string{"id", "user_id", "tier", "started_at"}})
	default:
		tables = append(tables, domain.Table{Name: "subscriptions", Columns: []string{"id", "user_id", "plan", "renews_at", "status"}})
	}
	tables = append(tables, domain.Table{Name: "reviews", Columns: []string{"id", "user_id", "rating", "comment", "created_at"}})
	return domain.DatabaseSchema{Tables: tables}
}

func featuresFor(subject string, pricing domain.PricingType) domain.FeatureFlags {
	mvp := []string{"Email sign-up and onboarding", subject + " profiles", "In-app notifications"}
	switch pricing {
	case domain.PricingCommission:
		mvp = append(mvp, "Booking calendar", "Card payments with automatic payouts")
	case domain.PricingFreemium:
		mvp = append(mvp, "Free tier with premium unlock")
	default:
		mvp = append(mvp, "Monthly and annual plans")
	}
	return domain.FeatureFlags{
		MVP: mvp,
		V2:  []string{"AI-powered recommendations", "Referral rewards", "Team accounts"},
	}
}

func monetizationFor(p domain.PricingModel) string {
	switch p.Type {
	case domain.PricingCommission:
		return fmt.Sprintf("Take a %s%.0f fee per completed booking, with a premium plan for power users.", p.CurrencySymbol, p.BasePrice)
	case domain.PricingFreemium:
		return fmt.Sprintf("Free core product, premium features at %s%.2f per month.", p.CurrencySymbol, p.BasePrice)
	default:
		return fmt.Sprintf("Recurring subscription from %s%.0f per month, enterprise tier at %s%.0f.", p.CurrencySymbol, p.BasePrice, p.CurrencySymbol, p.PremiumPrice())
	}
}

func containsAny(words, stems []string) bool {
	for _, w := range words {
		for _, s := range stems {
			if strings.HasPrefix(w, s) {
				return true
			}
		}
	}
	return false
}

func plural(w string) string {
	switch {
	case strings.HasSuffix(w, "s"):
		return w
	case strings.HasSuffix(w, "y") && len(w) > 1:
		return w[:len(w)-1] + "ies"
	default:
		return w + "s"
	}
}

func titleWord(w string) string {
	r := []rune(w)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return titleWord(s)
}
