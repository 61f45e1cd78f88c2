package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Neon-on-black palette of the Venture-OS landing page.
var (
	ColorAccent = lipgloss.Color("#22d3ee")
	ColorViolet = lipgloss.Color("#a78bfa")
	ColorGreen  = lipgloss.Color("#4ade80")
	ColorYellow = lipgloss.Color("#facc15")
	ColorRed    = lipgloss.Color("#ef4444")
	ColorDim    = lipgloss.Color("#6b7280")
	ColorFg     = lipgloss.Color("#e5e7eb")
	ColorPanel  = lipgloss.Color("#111827")
)

// Predefined lipgloss styles.
var (
	StyleAccent = lipgloss.NewStyle().Foreground(ColorAccent)
	StyleViolet = lipgloss.NewStyle().Foreground(ColorViolet)
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Header renders an upper-cased section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string    { return StyleDim.Render(text) }
func Bold(text string) string   { return StyleBold.Render(text) }
func Accent(text string) string { return StyleAccent.Render(text) }

// Swatch renders a small block filled with hex followed by the code itself.
// Invalid colors are shown as text only.
func Swatch(hex string) string {
	if !validHex(hex) {
		return Dim(hex)
	}
	block := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
	return block + " " + hex
}

func validHex(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
