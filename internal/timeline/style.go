package timeline

import "github.com/alexanderramin/roadmap/internal/domain"

// Default colors, hex encoded so any renderer can consume them.
const (
	ColorAccentDefault = "#83a598"
	ColorSelected      = "#ebdbb2"
	ColorMuted         = "#928374"
)

// StyleDescriptor carries every color a renderer needs to draw a bar.
// It is computed once per item during layout.
type StyleDescriptor struct {
	AccentColor    string // owning phase
	FillColor      string
	BorderColor    string
	IndicatorColor string // status
	PriorityColor  string
}

// StatusColor maps an item status to its indicator color.
func StatusColor(s domain.ItemStatus) string {
	switch s {
	case domain.StatusInProgress:
		return "#83a598"
	case domain.StatusReview:
		return "#fabd2f"
	case domain.StatusComplete:
		return "#8ec07c"
	default:
		return ColorMuted
	}
}

// PriorityColor maps a priority to its dot color.
func PriorityColor(p domain.Priority) string {
	switch p {
	case domain.PriorityCritical:
		return "#fb4934"
	case domain.PriorityHigh:
		return "#fe8019"
	case domain.PriorityMedium:
		return "#83a598"
	default:
		return ColorMuted
	}
}

func styleFor(it domain.ScheduleItem, accent string, selected bool) StyleDescriptor {
	if accent == "" {
		accent = ColorAccentDefault
	}
	border := accent
	if selected {
		border = ColorSelected
	}
	return StyleDescriptor{
		AccentColor:    accent,
		FillColor:      accent,
		BorderColor:    border,
		IndicatorColor: StatusColor(it.Status),
		PriorityColor:  PriorityColor(it.Priority),
	}
}
