package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/examseat/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SeverityIndicator returns a colored marker for a diagnostic severity.
func SeverityIndicator(sev domain.Severity) string {
	switch sev {
	case domain.SeverityError:
		return StyleRed.Render("✖ ERROR")
	case domain.SeverityWarning:
		return StyleYellow.Render("▲ WARNING")
	default:
		return StyleDim.Render(string(sev))
	}
}

// RunStatusPill summarizes whether a run seated everyone.
func RunStatusPill(shortfall int) string {
	if shortfall > 0 {
		return StyleRed.Render(fmt.Sprintf("● %d UNSEATED", shortfall))
	}
	return StyleGreen.Render("● COMPLETE")
}

// BlockBadge renders a room block label.
func BlockBadge(b domain.Block) string {
	if b == domain.BlockB2 {
		return StylePurple.Render(string(b))
	}
	return StyleBlue.Render(string(b))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
