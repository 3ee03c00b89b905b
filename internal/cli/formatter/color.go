package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/roadmap/internal/domain"
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

// HexStyle returns a foreground style for a "#rrggbb" color taken from a
// phase or milestone. An empty color falls back to the blue accent.
func HexStyle(hex string) lipgloss.Style {
	if strings.TrimSpace(hex) == "" {
		return StyleBlue
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// StatusStyle returns the style used for an item status.
func StatusStyle(s domain.ItemStatus) lipgloss.Style {
	switch s {
	case domain.StatusInProgress:
		return StyleBlue
	case domain.StatusReview:
		return StyleYellow
	case domain.StatusComplete:
		return StyleGreen
	default:
		return StyleDim
	}
}

// StatusPill returns a colored status indicator such as "● In progress".
func StatusPill(s domain.ItemStatus) string {
	switch s {
	case domain.StatusPlanned:
		return StatusStyle(s).Render("○ Planned")
	case domain.StatusInProgress:
		return StatusStyle(s).Render("● In progress")
	case domain.StatusReview:
		return StatusStyle(s).Render("◐ Review")
	case domain.StatusComplete:
		return StatusStyle(s).Render("✔ Complete")
	default:
		return StyleDim.Render(string(s))
	}
}

// StatusGlyph is the single-cell status marker drawn on Gantt bars.
func StatusGlyph(s domain.ItemStatus) string {
	switch s {
	case domain.StatusInProgress:
		return "●"
	case domain.StatusReview:
		return "◐"
	case domain.StatusComplete:
		return "✔"
	default:
		return "○"
	}
}

// PriorityStyle returns the style used for a priority level.
func PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityCritical:
		return StyleRed
	case domain.PriorityHigh:
		return lipgloss.NewStyle().Foreground(ColorHeader)
	case domain.PriorityMedium:
		return StyleBlue
	default:
		return StyleDim
	}
}

// PriorityBadge renders the priority name behind a colored dot.
func PriorityBadge(p domain.Priority) string {
	return PriorityStyle(p).Render(fmt.Sprintf("• %s", p))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
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
