package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exampleRange = Range{Min: date(2024, 2, 16), Max: date(2024, 4, 7)}

func TestMonthSegments(t *testing.T) {
	m := NewMapper(exampleRange, ZoomFor(ZoomWeek))
	segs := MonthSegments(m, date(2024, 3, 10))

	require.Len(t, segs, 3)
	assert.Equal(t, "Feb 2024", segs[0].Label)
	assert.Equal(t, 0.0, segs[0].X)
	assert.Equal(t, 280.0, segs[0].Width)
	assert.False(t, segs[0].IsCurrentMonth)

	assert.Equal(t, "Mar 2024", segs[1].Label)
	assert.Equal(t, 280.0, segs[1].X)
	assert.Equal(t, 620.0, segs[1].Width)
	assert.True(t, segs[1].IsCurrentMonth)

	assert.Equal(t, 900.0, segs[2].X)
	assert.Equal(t, 140.0, segs[2].Width)

	var total float64
	for _, s := range segs {
		total += s.Width
	}
	assert.Equal(t, m.Width(), total)
}

func TestGridlines_WeeklyMondays(t *testing.T) {
	lines := Gridlines(NewMapper(exampleRange, ZoomFor(ZoomWeek)))

	require.Len(t, lines, 7)
	for _, g := range lines {
		assert.Equal(t, time.Monday, g.Date.Weekday())
		assert.True(t, g.WeekStart)
		assert.NotEmpty(t, g.Label)
	}
	assert.Equal(t, date(2024, 2, 19), lines[0].Date)
	assert.Equal(t, 60.0, lines[0].X)
	assert.Equal(t, "19", lines[0].Label)
}

func TestGridlines_DailyLabelsWeekStartsOnly(t *testing.T) {
	lines := Gridlines(NewMapper(exampleRange, ZoomFor(ZoomDay)))

	require.Len(t, lines, exampleRange.Days())
	for _, g := range lines {
		if g.Date.Weekday() == time.Monday {
			assert.NotEmpty(t, g.Label, g.Date.String())
		} else {
			assert.Empty(t, g.Label, g.Date.String())
		}
	}
}

func TestGridlines_CoarsestZoomHasNoLabels(t *testing.T) {
	lines := Gridlines(NewMapper(exampleRange, ZoomFor(ZoomMonth)))

	require.Len(t, lines, 7)
	for _, g := range lines {
		assert.Empty(t, g.Label)
	}
}

func TestToday(t *testing.T) {
	m := NewMapper(exampleRange, ZoomFor(ZoomWeek))
	today := Today(m, date(2024, 3, 10).Add(17*time.Hour))
	assert.True(t, today.Visible)
	assert.Equal(t, 460.0, today.X)

	outside := Today(m, date(2025, 1, 1))
	assert.False(t, outside.Visible)
}
