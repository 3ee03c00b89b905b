package timeline

import (
	"fmt"
	"strings"
)

type ZoomLevel int

const (
	ZoomDay ZoomLevel = iota
	ZoomWeek
	ZoomMonth
)

// GridResolution selects how densely vertical gridlines are drawn.
type GridResolution int

const (
	GridDaily GridResolution = iota
	GridWeekly
)

// ZoomConfig fixes how many pixels a calendar day occupies.
type ZoomConfig struct {
	Level      ZoomLevel
	DayWidthPx float64
	Grid       GridResolution
}

// Zoom levels ordered finest to coarsest. DayWidthPx strictly decreases.
var zoomConfigs = [...]ZoomConfig{
	{Level: ZoomDay, DayWidthPx: 40, Grid: GridDaily},
	{Level: ZoomWeek, DayWidthPx: 20, Grid: GridWeekly},
	{Level: ZoomMonth, DayWidthPx: 6, Grid: GridWeekly},
}

// Zooms returns every zoom configuration, finest first.
func Zooms() []ZoomConfig {
	out := make([]ZoomConfig, len(zoomConfigs))
	copy(out, zoomConfigs[:])
	return out
}

// ZoomFor returns the configuration of a level. Unknown levels fall back to week.
func ZoomFor(level ZoomLevel) ZoomConfig {
	if level < ZoomDay || level > ZoomMonth {
		return zoomConfigs[ZoomWeek]
	}
	return zoomConfigs[level]
}

func (l ZoomLevel) String() string {
	switch l {
	case ZoomDay:
		return "day"
	case ZoomWeek:
		return "week"
	case ZoomMonth:
		return "month"
	default:
		return fmt.Sprintf("zoom(%d)", int(l))
	}
}

// ParseZoom accepts "day", "week" or "month".
func ParseZoom(s string) (ZoomLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day":
		return ZoomDay, nil
	case "week":
		return ZoomWeek, nil
	case "month":
		return ZoomMonth, nil
	default:
		return ZoomWeek, fmt.Errorf("unknown zoom %q (want day|week|month)", s)
	}
}

// Finer returns the next finer level, or l itself at the finest level.
func (l ZoomLevel) Finer() ZoomLevel {
	if l <= ZoomDay {
		return ZoomDay
	}
	return l - 1
}

// Coarser returns the next coarser level, or l itself at the coarsest level.
func (l ZoomLevel) Coarser() ZoomLevel {
	if l >= ZoomMonth {
		return ZoomMonth
	}
	return l + 1
}

// IsCoarsest reports whether c is the month zoom.
func (c ZoomConfig) IsCoarsest() bool {
	return c.Level == ZoomMonth
}
