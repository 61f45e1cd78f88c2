package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// plan is one column of the product's own pricing section.
type plan struct {
	name        string
	price       string
	note        string
	recommended bool
	features    []string
}

var plans = []plan{
	{name: "HOBBYIST", price: "Free", features: []string{"Generate 1 Project Idea", "Basic Strategy Doc"}},
	{name: "FOUNDER", price: "$49/mo", note: "billed annually", recommended: true,
		features: []string{"Unlimited Architecture Packs", "Export to GitHub", "PDF Downloads"}},
	{name: "AGENCY", price: "$199/mo", features: []string{"White-label for clients", "API Access", "Priority Support"}},
}

// FormatHero renders the landing page headline block.
func FormatHero() string {
	status := StyleGreen.Render("●") + " " + Dim("SYSTEM ONLINE v2.5")
	title := lipgloss.NewStyle().Foreground(ColorFg).Bold(true).Render("The Operating System for ") +
		lipgloss.NewStyle().Foreground(ColorAccent).Bold(true).Render("Startups.")
	sub := Dim("Stop juggling 5 different AI tools. Generate your strategy, code,\nand investor deck in one synchronized workflow.")
	return status + "\n\n" + title + "\n" + sub
}

// FormatUpgrade renders the old-way versus new-way comparison.
func FormatUpgrade() string {
	oldWay := StyleRed.Render("THE OLD WAY") + "\n" + listWith(StyleRed, "✗",
		"Disconnected ChatGPT prompts", "Manual coding & debugging", "Static PDF business plans")
	newWay := StyleAccent.Render("THE VENTURE-OS WAY") + "\n" + listWith(StyleAccent, "✓",
		"Synced Logic & Financials", "Live Interactive Prototypes", "Investor-Ready Assets in seconds")
	col := lipgloss.NewStyle().Width(36)
	return Header("The Upgrade") + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, col.Render(oldWay), col.Render(newWay))
}

// FormatPlans renders the "Choose Your Architecture" pricing section.
func FormatPlans() string {
	cards := make([]string, 0, len(plans))
	for _, p := range plans {
		border := ColorDim
		if p.recommended {
			border = ColorAccent
		}
		body := StyleBold.Render(p.name) + "\n" + StyleAccent.Render(p.price)
		if p.note != "" {
			body += " " + Dim(p.note)
		}
		if p.recommended {
			body += "\n" + Badge("recommended", ColorAccent)
		}
		body += "\n\n" + listWith(StyleGreen, "✓", p.features...)
		cards = append(cards, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			Width(30).
			Render(body))
	}
	return Header("Choose Your Architecture") + "\n" + Dim("Cheaper than one hour with a CTO.") +
		"\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func listWith(style lipgloss.Style, mark string, items ...string) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = style.Render(mark) + " " + it
	}
	return strings.Join(lines, "\n")
}
