package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RenderTerminal draws a terminal window with a traffic-light title bar.
func RenderTerminal(title string, lines []string, width int) string {
	bar := StyleRed.Render("●") + " " + StyleYellow.Render("●") + " " + StyleGreen.Render("●") + "  " + Dim(title)
	body := strings.Join(lines, "\n")
	if body == "" {
		body = Dim("waiting for kernel...")
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorAccent).
		Padding(0, 1)
	if width > 4 {
		style = style.Width(width - 2)
	}
	return style.Render(bar + "\n\n" + StyleGreen.Render(body))
}

// FormatPrice drops the cents when the amount is whole: "$29", "$4.99".
func FormatPrice(symbol string, amount float64) string {
	if amount == 0 {
		return "Free"
	}
	if amount == math.Trunc(amount) {
		return fmt.Sprintf("%s%.0f", symbol, amount)
	}
	return fmt.Sprintf("%s%.2f", symbol, amount)
}

// HumanTimestamp returns a relative timestamp such as "5m ago".
func HumanTimestamp(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < 0:
		return t.Format("Jan 2 15:04")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.Format("Jan 2 15:04")
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Badge renders a bracketed label in the given color.
func Badge(text string, color lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render("[" + strings.ToUpper(text) + "]")
}

// Bullets renders items as a dotted list with the given marker style.
func Bullets(items []string, marker lipgloss.Style) string {
	if len(items) == 0 {
		return Dim("  (none)")
	}
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("  " + marker.Render("●") + " " + it)
	}
	return b.String()
}
