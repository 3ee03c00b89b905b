package timeline

import (
	"testing"

	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapper_PositionForDate(t *testing.T) {
	m := NewMapper(Range{Min: date(2024, 2, 16), Max: date(2024, 4, 7)}, ZoomFor(ZoomWeek))

	assert.Equal(t, 0.0, m.PositionForDate(date(2024, 2, 16)))
	assert.Equal(t, 280.0, m.PositionForDate(date(2024, 3, 1)))
	assert.Equal(t, 1040.0, m.Width())
}

func TestMapper_InverseMappingAtEveryZoom(t *testing.T) {
	r := Range{Min: date(2023, 12, 1), Max: date(2024, 5, 31)}
	for _, z := range Zooms() {
		m := NewMapper(r, z)
		for i := 0; i < r.Days(); i++ {
			d := domain.AddDays(r.Min, i)
			got := m.DateForPixel(m.PositionForDate(d))
			require.True(t, domain.SameDay(d, got), "zoom=%s date=%s got=%s", z.Level, d, got)
		}
	}
}

func TestZoom_Monotonicity(t *testing.T) {
	zs := Zooms()
	require.Len(t, zs, 3)
	r := Range{Min: date(2024, 1, 1), Max: date(2024, 12, 31)}
	a, b := date(2024, 3, 1), date(2024, 3, 15)

	for i := 1; i < len(zs); i++ {
		finer, coarser := zs[i-1], zs[i]
		assert.Greater(t, finer.DayWidthPx, coarser.DayWidthPx)

		spanFine := NewMapper(r, finer).PositionForDate(b) - NewMapper(r, finer).PositionForDate(a)
		spanCoarse := NewMapper(r, coarser).PositionForDate(b) - NewMapper(r, coarser).PositionForDate(a)
		assert.Greater(t, spanFine, spanCoarse)
	}
}

func TestQuantizeDays(t *testing.T) {
	const w = 20.0
	for k := -5; k <= 5; k++ {
		for _, r := range []float64{0, 1, 3, 9.99} {
			px := w*float64(k) + r
			assert.Equal(t, k, QuantizeDays(px, w), "k=%d r=%v", k, r)
		}
	}
	assert.Equal(t, 3, QuantizeDays(63, w))
	assert.Equal(t, -3, QuantizeDays(-63, w), "symmetric for leftward drags")
	assert.Equal(t, 1, QuantizeDays(10, w))
	assert.Equal(t, -1, QuantizeDays(-10, w))
	assert.Equal(t, 0, QuantizeDays(100, 0))

	// Offsets in the upper half of a day round to the next day.
	for k := -5; k <= 5; k++ {
		for _, r := range []float64{11, 15, 19.99} {
			px := w*float64(k) + r
			assert.Equal(t, k+1, QuantizeDays(px, w), "k=%d r=%v", k, r)
		}
	}
	assert.Equal(t, 4, QuantizeDays(75, w))
	assert.Equal(t, -4, QuantizeDays(-75, w))
}

func TestMapper_DateForPixelDelta(t *testing.T) {
	m := NewMapper(Range{}, ZoomFor(ZoomWeek))
	origin := date(2026, 3, 18)

	assert.Equal(t, origin, m.DateForPixelDelta(origin, 9))
	assert.Equal(t, date(2026, 3, 19), m.DateForPixelDelta(origin, 10))
	assert.Equal(t, date(2026, 3, 22), m.DateForPixelDelta(origin, 75))
	assert.Equal(t, date(2026, 3, 14), m.DateForPixelDelta(origin, -75))
}

func TestZoomLevel_ParseAndStep(t *testing.T) {
	l, err := ParseZoom("Month")
	require.NoError(t, err)
	assert.Equal(t, ZoomMonth, l)
	_, err = ParseZoom("year")
	assert.Error(t, err)

	assert.Equal(t, ZoomDay, ZoomDay.Finer())
	assert.Equal(t, ZoomDay, ZoomWeek.Finer())
	assert.Equal(t, ZoomMonth, ZoomMonth.Coarser())
	assert.Equal(t, ZoomWeek, ZoomFor(ZoomLevel(42)).Level)
}
