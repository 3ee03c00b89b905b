package timeline

import (
	"math"
	"time"

	"github.com/alexanderramin/roadmap/internal/domain"
)

// Mapper converts between calendar dates and horizontal pixel offsets.
// Offset 0 is the left edge of Range.Min.
type Mapper struct {
	Range Range
	Zoom  ZoomConfig
}

func NewMapper(r Range, zoom ZoomConfig) Mapper {
	return Mapper{Range: r, Zoom: zoom}
}

// PositionForDate returns daysBetween(Range.Min, t) * DayWidthPx.
func (m Mapper) PositionForDate(t time.Time) float64 {
	return float64(domain.DaysBetween(m.Range.Min, t)) * m.Zoom.DayWidthPx
}

// DateForPixel returns the calendar day whose cell is nearest to x.
func (m Mapper) DateForPixel(x float64) time.Time {
	return domain.AddDays(m.Range.Min, QuantizeDays(x, m.Zoom.DayWidthPx))
}

// DateForPixelDelta shifts origin by the whole number of days dx represents.
func (m Mapper) DateForPixelDelta(origin time.Time, dx float64) time.Time {
	return domain.AddDays(origin, QuantizeDays(dx, m.Zoom.DayWidthPx))
}

// Width is the pixel width of the whole range.
func (m Mapper) Width() float64 {
	return float64(m.Range.Days()) * m.Zoom.DayWidthPx
}

// QuantizeDays converts a pixel delta into whole days, rounding half away
// from zero so equal leftward and rightward drags move by the same amount.
func QuantizeDays(deltaPx, dayWidthPx float64) int {
	if dayWidthPx <= 0 || math.IsNaN(deltaPx) {
		return 0
	}
	return int(math.Round(deltaPx / dayWidthPx))
}
