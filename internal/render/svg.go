package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexanderramin/roadmap/internal/timeline"
)

// SVGOptions control presentation only; geometry comes from the chart.
type SVGOptions struct {
	LabelWidthPx float64
	FontFamily   string
	FontSizePx   int
	Background   string
	Foreground   string
	GridColor    string
	TodayColor   string
}

// DefaultSVGOptions matches the terminal palette.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		LabelWidthPx: 220,
		FontFamily:   "Inter, Helvetica, Arial, sans-serif",
		FontSizePx:   12,
		Background:   "#282828",
		Foreground:   "#ebdbb2",
		GridColor:    "#3c3836",
		TodayColor:   "#fb4934",
	}
}

// Connector opacity when neither endpoint is hovered or selected.
const dimmedOpacity = 0.35

// WriteSVG renders c as a standalone SVG document.
func WriteSVG(w io.Writer, c *timeline.Chart, opts SVGOptions) error {
	_, err := io.WriteString(w, SVG(c, opts))
	return err
}

// SVG renders c as a standalone SVG document.
func SVG(c *timeline.Chart, opts SVGOptions) string {
	if opts.FontSizePx <= 0 {
		opts = DefaultSVGOptions()
	}
	width := opts.LabelWidthPx + c.Width
	height := c.Height

	var svg strings.Builder
	fmt.Fprintf(&svg, `<?xml version="1.0" encoding="UTF-8"?>
<svg width="%s" height="%s" viewBox="0 0 %s %s" xmlns="http://www.w3.org/2000/svg">
<defs>
<style>
text { font-family: %s; font-size: %dpx; fill: %s; }
.month { font-weight: bold; }
.day { font-size: %dpx; fill: %s; }
.phase { font-weight: bold; }
.muted { fill: %s; }
</style>
<marker id="arrow" viewBox="0 0 8 8" refX="7" refY="4" markerWidth="8" markerHeight="8" orient="auto-start-reverse">
<path d="M 0 0 L 8 4 L 0 8 z" fill="%s"/>
</marker>
</defs>
<rect width="100%%" height="100%%" fill="%s"/>
`,
		num(width), num(height), num(width), num(height),
		escapeXML(opts.FontFamily), opts.FontSizePx, opts.Foreground,
		opts.FontSizePx-2, timeline.ColorMuted,
		timeline.ColorMuted,
		opts.Foreground,
		opts.Background)

	drawLabels(&svg, c, opts)

	fmt.Fprintf(&svg, "<g transform=\"translate(%s,0)\">\n", num(opts.LabelWidthPx))
	drawHeader(&svg, c, opts)
	drawGrid(&svg, c, opts)
	drawPhaseSpans(&svg, c)
	drawConnectors(&svg, c, opts)
	drawBars(&svg, c, opts)
	drawMilestones(&svg, c, opts)
	drawToday(&svg, c, opts)
	svg.WriteString("</g>\n</svg>\n")
	return svg.String()
}

func drawLabels(svg *strings.Builder, c *timeline.Chart, opts SVGOptions) {
	for _, row := range c.Rows {
		y := row.Top + row.Height/2 + float64(opts.FontSizePx)/3
		switch row.Kind {
		case timeline.RowPhase:
			marker := "▾"
			if row.Collapsed {
				marker = "▸"
			}
			label := fmt.Sprintf("%s %s %s (%d/%d)", marker, row.Icon, row.Label, row.Completed, row.ItemCount)
			fmt.Fprintf(svg, `<text class="phase" x="8" y="%s">%s</text>`+"\n", num(y), escapeXML(strings.TrimSpace(label)))
		case timeline.RowItem:
			fmt.Fprintf(svg, `<text x="24" y="%s">%s</text>`+"\n", num(y), escapeXML(truncate(row.Label, 28)))
		}
	}
}

func drawHeader(svg *strings.Builder, c *timeline.Chart, opts SVGOptions) {
	half := float64(timeline.HeaderHeightPx) / 2
	for _, seg := range c.Months {
		fill := opts.Background
		if seg.IsCurrentMonth {
			fill = opts.GridColor
		}
		fmt.Fprintf(svg, `<rect x="%s" y="0" width="%s" height="%s" fill="%s" stroke="%s"/>`+"\n",
			num(seg.X), num(seg.Width), num(half), fill, opts.GridColor)
		fmt.Fprintf(svg, `<text class="month" x="%s" y="%s">%s</text>`+"\n",
			num(seg.X+4), num(half-6), escapeXML(seg.Label))
	}
	for _, g := range c.Gridlines {
		if g.Label == "" {
			continue
		}
		fmt.Fprintf(svg, `<text class="day" x="%s" y="%s">%s</text>`+"\n",
			num(g.X+2), num(timeline.HeaderHeightPx-6), escapeXML(g.Label))
	}
}

func drawGrid(svg *strings.Builder, c *timeline.Chart, opts SVGOptions) {
	for _, g := range c.Gridlines {
		width := "1"
		if g.WeekStart && c.Zoom.Grid == timeline.GridDaily {
			width = "2"
		}
		fmt.Fprintf(svg, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`+"\n",
			num(g.X), num(timeline.HeaderHeightPx/2), num(g.X), num(c.Height), opts.GridColor, width)
	}
	for _, row := range c.Rows {
		if row.Kind != timeline.RowPhase {
			continue
		}
		fmt.Fprintf(svg, `<line x1="0" y1="%s" x2="%s" y2="%s" stroke="%s"/>`+"\n",
			num(row.Top), num(c.Width), num(row.Top), opts.GridColor)
	}
}

func drawPhaseSpans(svg *strings.Builder, c *timeline.Chart) {
	for _, row := range c.Rows {
		if row.Kind != timeline.RowPhase || row.Span == nil {
			continue
		}
		color := row.Color
		if color == "" {
			color = timeline.ColorAccentDefault
		}
		y := row.Top + (row.Height-timeline.PhaseBarHeightPx)/2
		fmt.Fprintf(svg, `<rect x="%s" y="%s" width="%s" height="%d" rx="4" fill="%s" opacity="0.8"><title>%s</title></rect>`+"\n",
			num(row.Span.Left), num(y), num(row.Span.Width), timeline.PhaseBarHeightPx, color, escapeXML(row.Label))
	}
}

func drawConnectors(svg *strings.Builder, c *timeline.Chart, opts SVGOptions) {
	for _, conn := range c.Connectors {
		opacity := dimmedOpacity
		width := "1.5"
		if conn.Emphasized {
			opacity = 1
			width = "2"
		}
		fmt.Fprintf(svg, `<path d="%s" fill="none" stroke="%s" stroke-width="%s" opacity="%s" marker-end="url(#arrow)"/>`+"\n",
			conn.Path, opts.Foreground, width, num(opacity))
	}
}

func drawBars(svg *strings.Builder, c *timeline.Chart, opts SVGOptions) {
	for _, b := range c.Bars {
		st := b.Style
		strokeWidth := "1"
		if b.Selected || b.Hovered {
			strokeWidth = "2"
		}
		fmt.Fprintf(svg, `<g class="bar" data-item="%s">`+"\n", escapeXML(b.ItemID))
		fmt.Fprintf(svg, `<rect x="%s" y="%s" width="%s" height="%s" rx="4" fill="%s" fill-opacity="0.35" stroke="%s" stroke-width="%s"/>`+"\n",
			num(b.Left), num(b.Top), num(b.Width), num(b.Height), st.FillColor, st.BorderColor, strokeWidth)
		// accent stripe
		fmt.Fprintf(svg, `<rect x="%s" y="%s" width="3" height="%s" fill="%s"/>`+"\n",
			num(b.Left), num(b.Top), num(b.Height), st.AccentColor)
		fmt.Fprintf(svg, `<circle cx="%s" cy="%s" r="4" fill="%s"/>`+"\n",
			num(b.Left+12), num(b.CenterY()), st.IndicatorColor)
		fmt.Fprintf(svg, `<text x="%s" y="%s">%s</text>`+"\n",
			num(b.Left+22), num(b.CenterY()+float64(opts.FontSizePx)/3), escapeXML(fitLabel(b.Title, b.Width-44, opts.FontSizePx)))
		fmt.Fprintf(svg, `<circle cx="%s" cy="%s" r="3" fill="%s"/>`+"\n",
			num(b.Right()-10), num(b.CenterY()), st.PriorityColor)
		if b.Dependents > 0 {
			fmt.Fprintf(svg, `<text class="muted" x="%s" y="%s" text-anchor="end">+%d</text>`+"\n",
				num(b.Right()-18), num(b.CenterY()+float64(opts.FontSizePx)/3), b.Dependents)
		}
		title := fmt.Sprintf("%s (%s to %s, %dd)", b.Title,
			b.Start.Format("Jan 2"), b.End.Format("Jan 2"), b.DurationDays)
		if b.AssigneeID != "" {
			title += " @" + b.AssigneeID
		}
		fmt.Fprintf(svg, "<title>%s</title>\n</g>\n", escapeXML(title))
	}
}

func drawMilestones(svg *strings.Builder, c *timeline.Chart, opts SVGOptions) {
	cy := c.MilestoneRowTop + timeline.MilestoneRowHeightPx/2
	const size = 7.0
	for _, mk := range c.Milestones {
		drawDiamond(svg, mk.X, cy, size, mk.Color, opts.Background)
		label := mk.Title
		if mk.Icon != "" {
			label = mk.Icon + " " + label
		}
		if mk.Linked > 0 {
			label += fmt.Sprintf(" %d/%d", mk.Completed, mk.Linked)
		}
		fmt.Fprintf(svg, `<text x="%s" y="%s">%s</text>`+"\n",
			num(mk.X+size+4), num(cy+float64(opts.FontSizePx)/3), escapeXML(label))
		fmt.Fprintf(svg, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-dasharray="2,4" opacity="0.5"/>`+"\n",
			num(mk.X), num(cy+size), num(mk.X), num(c.Height), mk.Color)
	}
}

// drawDiamond draws a square rotated onto its corner, centered at (x, y).
func drawDiamond(svg *strings.Builder, x, y, size float64, fill, stroke string) {
	fmt.Fprintf(svg, `<polygon points="%s,%s %s,%s %s,%s %s,%s" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		num(x), num(y-size),
		num(x+size), num(y),
		num(x), num(y+size),
		num(x-size), num(y),
		fill, stroke)
}

func drawToday(svg *strings.Builder, c *timeline.Chart, opts SVGOptions) {
	if !c.Today.Visible {
		return
	}
	fmt.Fprintf(svg, `<line class="today" x1="%s" y1="0" x2="%s" y2="%s" stroke="%s" stroke-width="2"/>`+"\n",
		num(c.Today.X), num(c.Today.X), num(c.Height), opts.TodayColor)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}

// fitLabel trims s to roughly fit widthPx, estimating glyphs at 0.6em.
func fitLabel(s string, widthPx float64, fontSizePx int) string {
	maxRunes := int(widthPx / (float64(fontSizePx) * 0.6))
	return truncate(s, maxRunes)
}

func truncate(s string, maxRunes int) string {
	r := []rune(s)
	if len(r) <= maxRunes {
		return s
	}
	if maxRunes <= 1 {
		return "…"
	}
	return string(r[:maxRunes-1]) + "…"
}
