package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/roadmap/internal/timeline"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainGantt(c *timeline.Chart, opts GanttOptions) GanttText {
	g := RenderGantt(c, opts)
	for i := range g.Header {
		g.Header[i] = stripANSI(g.Header[i])
	}
	for i := range g.Rows {
		g.Rows[i] = stripANSI(g.Rows[i])
	}
	return g
}

func TestRenderGantt_OneLinePerRow(t *testing.T) {
	c := sampleChart(sampleSnapshot())
	g := plainGantt(c, GanttOptions{})

	require.Len(t, g.Header, GanttHeaderLines)
	require.Len(t, g.Rows, len(c.Rows))
	assert.Len(t, strings.Split(RenderGantt(c, GanttOptions{}).String(), "\n"), GanttHeaderLines+len(c.Rows))
}

func TestRenderGantt_Header(t *testing.T) {
	g := plainGantt(sampleChart(sampleSnapshot()), GanttOptions{})

	assert.True(t, strings.HasPrefix(g.Header[0], "week zoom"))
	assert.Contains(t, g.Header[0], "Feb 2026")
	assert.Contains(t, g.Header[0], "Mar 2026")
	assert.Contains(t, g.Header[1], "▼", "today marker")
	assert.Contains(t, g.Header[1], "16")
	assert.Contains(t, g.Header[2], "◆ Beta 1/2")
}

func TestRenderGantt_PhaseAndItemRows(t *testing.T) {
	g := plainGantt(sampleChart(sampleSnapshot()), GanttOptions{})

	assert.True(t, strings.HasPrefix(g.Rows[0], "▾ ◎ Discovery (1/2)"))
	assert.Contains(t, g.Rows[0], "━")

	research := g.Rows[1]
	assert.True(t, strings.HasPrefix(research, "  Research"))
	assert.Contains(t, research, "✔ Res…")
	assert.Contains(t, research, "+1", "dependents badge")

	brief := g.Rows[2]
	assert.Contains(t, brief, "▶●", "connector arrow right before the bar")
	assert.Contains(t, brief, "Brief")

	assert.True(t, strings.HasPrefix(g.Rows[5], "▾ ● Unphased (0/1)"))
	assert.True(t, strings.HasPrefix(g.Rows[6], "  Loose end"))
}

func TestRenderGantt_BarColumnsFollowPixels(t *testing.T) {
	c := sampleChart(sampleSnapshot())
	opts := GanttOptions{}
	g := plainGantt(c, opts)

	b, ok := c.Bar("research")
	require.True(t, ok)
	line := []rune(g.Rows[1])
	first := opts.ChartOffset() + opts.ColumnOf(b.Left)
	last := opts.ChartOffset() + opts.ColumnOf(b.Right()-1)

	assert.Equal(t, '✔', line[first])
	assert.Equal(t, '•', line[last])
}

func TestRenderGantt_CollapsedPhase(t *testing.T) {
	g := plainGantt(sampleChart(sampleSnapshot(), collapsed("p1")), GanttOptions{})

	require.Len(t, g.Rows, 5)
	assert.True(t, strings.HasPrefix(g.Rows[0], "▸ ◎ Discovery (1/2)"))
	assert.True(t, strings.HasPrefix(g.Rows[1], "▾ ▲ Launch (0/1)"))
}

func TestRenderGantt_SelectedItemLabel(t *testing.T) {
	snap := sampleSnapshot()
	snap.SelectedItemID = "brief"
	g := plainGantt(sampleChart(snap), GanttOptions{})

	assert.True(t, strings.HasPrefix(g.Rows[2], "▸ Brief"))
}

func TestRenderGantt_WidthAndScroll(t *testing.T) {
	c := sampleChart(sampleSnapshot())
	opts := GanttOptions{Width: 40, LabelWidth: 12, ScrollX: 20}
	out := RenderGantt(c, opts)

	for _, line := range append(out.Header, out.Rows...) {
		assert.LessOrEqual(t, lipgloss.Width(line), 40)
	}
	plain := stripANSI(out.Rows[1])
	assert.Contains(t, plain, "✔", "research starts at column 28, visible after scrolling 20")
}

func TestGanttOptions_PixelMapping(t *testing.T) {
	o := GanttOptions{CellPx: 10, ScrollX: 3}

	assert.Equal(t, 35.0, o.PixelX(0))
	assert.Equal(t, 0, o.ColumnOf(35))
	assert.Equal(t, -1, o.ColumnOf(29))
	assert.Equal(t, 4, o.ColumnOf(o.PixelX(4)))
	assert.Equal(t, DefaultLabelWidth+1, GanttOptions{}.ChartOffset())
}

func TestGanttOptions_ColumnsHitBarHandles(t *testing.T) {
	c := sampleChart(sampleSnapshot())
	o := GanttOptions{}
	b, ok := c.Bar("research")
	require.True(t, ok)

	first := o.ColumnOf(b.Left)
	last := o.ColumnOf(b.Right() - 1)

	assert.Equal(t, timeline.DragResizeStart, c.HitTest(o.PixelX(first), b.CenterY()).Mode)
	assert.Equal(t, timeline.DragMove, c.HitTest(o.PixelX(first+3), b.CenterY()).Mode)
	assert.Equal(t, timeline.DragResizeEnd, c.HitTest(o.PixelX(last), b.CenterY()).Mode)
}
