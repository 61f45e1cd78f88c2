package domain

// ViewMode is the phase of the user journey. Exactly one is active at a time.
type ViewMode string

const (
	ViewInput      ViewMode = "input"
	ViewGenerating ViewMode = "generating"
	ViewDashboard  ViewMode = "dashboard"
	ViewError      ViewMode = "error"
)

// ValidViewModes is the canonical set of phases.
var ValidViewModes = map[ViewMode]bool{
	ViewInput: true, ViewGenerating: true, ViewDashboard: true, ViewError: true,
}

type PricingType string

const (
	PricingSubscription PricingType = "Subscription"
	PricingCommission   PricingType = "Commission"
	PricingFreemium     PricingType = "Freemium"
)

// ValidPricingTypes is the canonical set of accepted pricing model types.
var ValidPricingTypes = map[PricingType]bool{
	PricingSubscription: true,
	PricingCommission:   true,
	PricingFreemium:     true,
}
