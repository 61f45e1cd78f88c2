package formatter

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/ventureos/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// FormatOverview renders the executive strategy with the roadmap.
func FormatOverview(v domain.VentureData) string {
	var b strings.Builder
	b.WriteString(Header("Executive Strategy"))
	b.WriteString("\n\n")
	b.WriteString(labeled("Problem", v.Strategy.ProblemStatement))
	b.WriteString(labeled("Solution", v.Strategy.SolutionDescription))
	b.WriteString(labeled("Monetization", v.Strategy.MonetizationStrategy))

	b.WriteString(Header("Roadmap"))
	b.WriteString("\n\n")
	b.WriteString(StyleGreen.Render("MVP"))
	b.WriteString("\n")
	b.WriteString(Bullets(v.Config.FeatureFlags.MVP, StyleGreen))
	b.WriteString("\n\n")
	b.WriteString(StyleViolet.Render("V2"))
	b.WriteString("\n")
	b.WriteString(Bullets(v.Config.FeatureFlags.V2, StyleViolet))
	return b.String()
}

func labeled(label, text string) string {
	if strings.TrimSpace(text) == "" {
		text = Dim("(not generated)")
	}
	return StyleAccent.Render(label) + "\n" + "  " + text + "\n\n"
}

// FormatConfigJSON renders the config block as indented JSON, the way the
// dashboard's code view shows venture.config.json.
func FormatConfigJSON(v domain.VentureData) string {
	raw, err := json.MarshalIndent(v.Config, "", "  ")
	if err != nil {
		return StyleRed.Render(fmt.Sprintf("cannot encode config: %v", err))
	}
	return Dim("// venture.config.json") + "\n" + StyleGreen.Render(string(raw))
}

// FormatPricing renders the three pricing tiers side by side.
func FormatPricing(p domain.PricingModel) string {
	tiers := p.Tiers()
	cards := make([]string, 0, len(tiers))
	for i, t := range tiers {
		border := ColorDim
		if i == 1 {
			border = ColorAccent
		}
		price := FormatPrice(p.CurrencySymbol, t.Price)
		if t.Price > 0 && p.Type == domain.PricingSubscription {
			price += Dim("/mo")
		}
		body := StyleBold.Render(strings.ToUpper(t.Name)) + "\n\n" + StyleAccent.Render(price)
		if i == 1 {
			body += "\n\n" + Badge("recommended", ColorAccent)
		}
		card := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2).
			Width(22).
			Render(body)
		cards = append(cards, card)
	}
	header := Header("Pricing") + "\n" + Dim(fmt.Sprintf("Model: %s · x%g premium multiplier", p.Type, p.PremiumMultiplier))
	return header + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// FormatSchema renders the database tables.
func FormatSchema(s domain.DatabaseSchema) string {
	if len(s.Tables) == 0 {
		return Header("Database Schema") + "\n\n" + Dim("No tables generated.")
	}
	rows := make([][]string, 0, len(s.Tables))
	for _, t := range s.Tables {
		rows = append(rows, []string{StyleAccent.Render(t.Name), strings.Join(t.Columns, ", ")})
	}
	return Header("Database Schema") + "\n\n" + RenderTable([]string{"TABLE", "COLUMNS"}, rows)
}

// FormatDeck renders slides 4 and 7 of the investor deck.
func FormatDeck(d domain.InvestorDeck) string {
	bm := d.Slide4BusinessModel
	title := bm.Title
	if title == "" {
		title = "Business Model"
	}
	slide4 := StyleBold.Render(title) + "\n\n" + Bullets(bm.Points, StyleAccent)
	if bm.ProjectedRevenueYear1 != "" {
		slide4 += "\n\n" + Dim("Projected revenue, year 1: ") + StyleGreen.Render(bm.ProjectedRevenueYear1)
	}

	ask := d.Slide7TheAsk
	slide7 := StyleBold.Render("The Ask") + "\n\n" +
		fmt.Sprintf("%s %s\n%s %s\n%s %d months",
			Dim("Raising:"), StyleAccent.Render(CoalesceDash(ask.Amount)),
			Dim("Equity: "), CoalesceDash(ask.Equity),
			Dim("Runway: "), ask.RunwayMonths) +
		"\n\n" + Dim("Use of funds") + "\n" + Bullets(ask.UseOfFunds, StyleViolet)

	return RenderBox("Slide 4", slide4) + "\n" + RenderBox("Slide 7", slide7)
}

// CoalesceDash shows "-" for empty values.
func CoalesceDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// FormatPrototype renders a mock landing card painted with the brand colors.
func FormatPrototype(c domain.VentureConfig) string {
	bg := lipgloss.Color(c.BrandColors.Background)
	primary := lipgloss.Color(c.BrandColors.Primary)
	secondary := lipgloss.Color(c.BrandColors.Secondary)

	name := lipgloss.NewStyle().Foreground(primary).Bold(true).Render(c.ProjectName)
	tagline := lipgloss.NewStyle().Foreground(ColorFg).Render(c.Tagline)
	cta := lipgloss.NewStyle().Background(primary).Foreground(bg).Bold(true).Padding(0, 2).Render("Get Started")
	nav := lipgloss.NewStyle().Foreground(secondary).Render("Home · Features · Pricing")

	var features []string
	for i, f := range c.FeatureFlags.MVP {
		if i == 3 {
			break
		}
		features = append(features, lipgloss.NewStyle().Foreground(secondary).Render("▸ ")+f)
	}

	body := nav + "\n\n" + name + "\n" + tagline + "\n\n" + strings.Join(features, "\n")
	if len(features) > 0 {
		body += "\n\n"
	}
	body += cta

	card := lipgloss.NewStyle().
		Background(bg).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primary).
		Padding(1, 3).
		Render(body)

	palette := fmt.Sprintf("%s  %s  %s",
		Swatch(c.BrandColors.Primary), Swatch(c.BrandColors.Secondary), Swatch(c.BrandColors.Background))
	return Header("Prototype") + "\n\n" + card + "\n\n" + palette
}

// FormatVentureSummary is the one-line header shown above the dashboard tabs.
func FormatVentureSummary(v domain.VentureData) string {
	name := lipgloss.NewStyle().Foreground(lipgloss.Color(v.Config.BrandColors.Primary)).Bold(true).Render(v.Config.ProjectName)
	live := Badge("live environment", ColorGreen)
	line := name + "  " + live + "  " + Dim("Last synced: Just now")
	if v.Config.Tagline != "" {
		line += "\n" + Dim(v.Config.Tagline)
	}
	return line
}

// FormatHistory renders the archive listing.
func FormatHistory(items []domain.ArchivedVenture, now time.Time) string {
	if len(items) == 0 {
		return Dim("No ventures generated yet.")
	}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			TruncID(it.ID),
			StyleAccent.Render(it.ProjectName),
			string(it.Data.Config.PricingModel.Type),
			truncate(it.Idea, 40),
			HumanTimestamp(it.CreatedAt, now),
		})
	}
	return RenderTable([]string{"ID", "PROJECT", "PRICING", "IDEA", "CREATED"}, rows)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
