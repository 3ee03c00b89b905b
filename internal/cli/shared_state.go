package cli

import "github.com/alexanderramin/roadmap/internal/timeline"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Zoom is the level the Gantt view renders at.
	Zoom timeline.ZoomLevel
	// CellPx is the number of chart pixels one terminal column covers.
	CellPx int

	// Terminal dimensions
	Width  int
	Height int
}

// headerLines is the app header: title plus separator.
const headerLines = 2

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and status bar
// (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - headerLines - 2
	if h < 1 {
		return 1
	}
	return h
}
