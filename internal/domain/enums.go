package domain

import (
	"fmt"
	"strings"
)

type ItemStatus string

const (
	StatusPlanned    ItemStatus = "planned"
	StatusInProgress ItemStatus = "in_progress"
	StatusReview     ItemStatus = "review"
	StatusComplete   ItemStatus = "complete"
)

// ValidItemStatuses is the canonical set of accepted item status strings.
var ValidItemStatuses = map[string]bool{
	"planned": true, "in_progress": true, "review": true, "complete": true,
}

// Priority is ordinal: a higher value is more urgent.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityCritical:
		return "critical"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// ParsePriority accepts the lowercase priority names. An empty string maps
// to PriorityMedium.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow, nil
	case "", "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	case "critical":
		return PriorityCritical, nil
	default:
		return 0, fmt.Errorf("unknown priority %q (want low|medium|high|critical)", s)
	}
}

type PhaseType string

const (
	PhaseDiscovery PhaseType = "discovery"
	PhaseStrategy  PhaseType = "strategy"
	PhaseCreation  PhaseType = "creation"
	PhaseReview    PhaseType = "review"
	PhaseLaunch    PhaseType = "launch"
	PhaseGeneric   PhaseType = "generic"
)

// ValidPhaseTypes is the canonical set of accepted phase type strings.
var ValidPhaseTypes = map[string]bool{
	"discovery": true, "strategy": true, "creation": true,
	"review": true, "launch": true, "generic": true,
}

// Icon returns the single-glyph marker drawn next to a phase name.
func (t PhaseType) Icon() string {
	switch t {
	case PhaseDiscovery:
		return "◎"
	case PhaseStrategy:
		return "◆"
	case PhaseCreation:
		return "✎"
	case PhaseReview:
		return "✓"
	case PhaseLaunch:
		return "▲"
	default:
		return "●"
	}
}

// Description returns a short human description of the phase type.
func (t PhaseType) Description() string {
	switch t {
	case PhaseDiscovery:
		return "Research and audience discovery"
	case PhaseStrategy:
		return "Messaging and channel strategy"
	case PhaseCreation:
		return "Content production"
	case PhaseReview:
		return "Review and approval"
	case PhaseLaunch:
		return "Launch and distribution"
	default:
		return "General work"
	}
}
