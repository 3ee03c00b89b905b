package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/roadmap/internal/cli/formatter"
	"github.com/alexanderramin/roadmap/internal/render"
	"github.com/alexanderramin/roadmap/internal/timeline"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newGanttCmd(app *App) *cobra.Command {
	zoom := newZoomFlag(app.Config.ZoomLevel())

	cmd := &cobra.Command{
		Use:   "gantt",
		Short: "Open the interactive Gantt chart",
		Long: `Open the interactive Gantt chart.

Drag a bar with the mouse to move it; drag its first or last column to
change the start or end. Click a phase row to collapse it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errors.New("gantt needs an interactive terminal; use `roadmap render --format text`")
			}
			return runGantt(app, zoom.level)
		},
	}

	cmd.Flags().Var(zoom, "zoom", "Initial zoom level")
	return cmd
}

func runGantt(app *App, zoom timeline.ZoomLevel) error {
	p := tea.NewProgram(newAppModel(app, zoom),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	app.logger().Debug("starting gantt view", "zoom", zoom.String())
	_, err := p.Run()
	return err
}

func newRenderCmd(app *App) *cobra.Command {
	var (
		collapse []string
		selectID string
		outPath  string
		width    int
	)
	zoom := newZoomFlag(app.Config.ZoomLevel())
	format := newEnumFlag("svg", "svg", "text")

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the timeline as SVG or as a terminal strip",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if selectID != "" {
				id, err := resolveItemID(ctx, app, selectID)
				if err != nil {
					return err
				}
				if err := app.Schedule.Select(ctx, id); err != nil {
					return err
				}
			}

			c, err := buildChart(ctx, app, timeline.Options{
				Zoom:      timeline.ZoomFor(zoom.level),
				Collapsed: timeline.NewCollapsedPhases(collapse...),
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating %s: %w", outPath, err)
				}
				defer f.Close()
				w = f
			}
			if err := writeChart(w, c, format.value, app.cellPx(), width); err != nil {
				return err
			}
			if outPath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d rows, %d connectors)\n", outPath, len(c.Rows), len(c.Connectors))
			}
			return nil
		},
	}

	cmd.Flags().Var(zoom, "zoom", "Zoom level")
	cmd.Flags().Var(format, "format", "Output format")
	cmd.Flags().StringSliceVar(&collapse, "collapse", nil, "Phase IDs to collapse (comma-separated)")
	cmd.Flags().StringVar(&selectID, "select", "", "Item to select and emphasise")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to file instead of stdout")
	cmd.Flags().IntVar(&width, "width", 0, "Line width for text output (0 = whole chart)")

	return cmd
}

// buildChart loads a snapshot and lays it out at the app's current time.
func buildChart(ctx context.Context, app *App, opts timeline.Options) (*timeline.Chart, error) {
	snap, err := app.Schedule.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	opts.Now = app.now()
	return timeline.Build(*snap, opts), nil
}

func writeChart(w io.Writer, c *timeline.Chart, format string, cellPx, width int) error {
	switch format {
	case "text":
		text := formatter.RenderGantt(c, formatter.GanttOptions{CellPx: cellPx, Width: width})
		_, err := io.WriteString(w, strings.TrimRight(text.String(), "\n")+"\n")
		return err
	default:
		return render.WriteSVG(w, c, render.DefaultSVGOptions())
	}
}
