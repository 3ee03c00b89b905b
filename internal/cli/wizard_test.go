package cli

import (
	"testing"

	"github.com/alexanderramin/roadmap/internal/testutil"
	"github.com/alexanderramin/roadmap/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDate(t *testing.T) {
	assert.NoError(t, validateDate("2026-03-10"))
	assert.NoError(t, validateDate(" 2026-03-10 "))
	assert.Error(t, validateDate(""))
	assert.Error(t, validateDate("10/03/2026"))

	assert.NoError(t, validateOptionalDate(""))
	assert.NoError(t, validateOptionalDate("2026-03-10"))
	assert.Error(t, validateOptionalDate("tomorrow"))
}

func TestParseRescheduleInput(t *testing.T) {
	start, end, err := parseRescheduleInput("2026-03-10", "")
	require.NoError(t, err)
	assert.True(t, start.Equal(testutil.Date(2026, 3, 10)))
	assert.Nil(t, end)

	start, end, err = parseRescheduleInput(" 2026-03-10", "2026-03-14 ")
	require.NoError(t, err)
	assert.True(t, start.Equal(testutil.Date(2026, 3, 10)))
	require.NotNil(t, end)
	assert.True(t, end.Equal(testutil.Date(2026, 3, 14)))

	_, _, err = parseRescheduleInput("", "")
	assert.Error(t, err)
	_, _, err = parseRescheduleInput("2026-03-10", "soon")
	assert.Error(t, err)
}

func TestWizardReschedulePrefills(t *testing.T) {
	end := testutil.Date(2026, 3, 20)
	it := testutil.NewTestItem("Launch post", testutil.Date(2026, 3, 18), testutil.WithEndDate(end))

	var start, endStr string
	form := wizardReschedule(*it, &start, &endStr)
	require.NotNil(t, form)
	assert.Equal(t, "2026-03-18", start)
	assert.Equal(t, "2026-03-20", endStr)

	implied := testutil.NewTestItem("Brief", testutil.Date(2026, 3, 9))
	wizardReschedule(*implied, &start, &endStr)
	assert.Equal(t, "2026-03-09", start)
	assert.Empty(t, endStr)
}

func TestMoveEnd(t *testing.T) {
	end := testutil.Date(2026, 3, 20)
	explicit := *testutil.NewTestItem("a", testutil.Date(2026, 3, 18), testutil.WithEndDate(end))
	implied := *testutil.NewTestItem("b", testutil.Date(2026, 3, 18))
	newStart := testutil.Date(2026, 3, 25)
	override := testutil.Date(2026, 4, 1)

	got := moveEnd(explicit, newStart, nil, false)
	require.NotNil(t, got)
	assert.True(t, got.Equal(testutil.Date(2026, 3, 27)), "explicit end keeps its duration")

	got = moveEnd(explicit, newStart, &override, false)
	assert.Equal(t, &override, got)

	assert.Nil(t, moveEnd(explicit, newStart, nil, true))
	assert.Nil(t, moveEnd(implied, newStart, nil, false))
}

func TestFlags(t *testing.T) {
	t.Run("zoom", func(t *testing.T) {
		f := newZoomFlag(timeline.ZoomWeek)
		assert.Equal(t, "week", f.String())
		require.NoError(t, f.Set("Month"))
		assert.Equal(t, timeline.ZoomMonth, f.level)
		assert.Error(t, f.Set("year"))
		assert.Equal(t, timeline.ZoomMonth, f.level)
	})

	t.Run("date", func(t *testing.T) {
		var f dateFlag
		assert.Nil(t, f.ptr())
		assert.Empty(t, f.String())
		require.NoError(t, f.Set("2026-03-10"))
		require.NotNil(t, f.ptr())
		assert.Equal(t, "2026-03-10", f.String())
		assert.Error(t, f.Set("March 10"))
	})

	t.Run("enum", func(t *testing.T) {
		f := newEnumFlag("svg", "svg", "text")
		require.NoError(t, f.Set("text"))
		assert.Equal(t, "text", f.String())
		assert.Equal(t, "svg|text", f.Type())
		assert.Error(t, f.Set("png"))
		assert.Equal(t, "text", f.String())
	})
}
