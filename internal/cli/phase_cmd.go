package cli

import (
	"fmt"

	"github.com/alexanderramin/roadmap/internal/cli/formatter"
	"github.com/alexanderramin/roadmap/internal/timeline"
	"github.com/spf13/cobra"
)

func newPhaseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phase",
		Short: "Inspect phases",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List phases in timeline order with progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.Schedule.Snapshot(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPhaseList(*snap))
			return nil
		},
	})

	return cmd
}

func newMilestoneCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "milestone",
		Short: "Inspect milestones",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List milestones with linked-item progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.Schedule.Snapshot(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatMilestoneList(*snap, app.now()))
			return nil
		},
	})

	return cmd
}

func newRangeCmd(app *App) *cobra.Command {
	zoom := newZoomFlag(app.Config.ZoomLevel())

	cmd := &cobra.Command{
		Use:   "range",
		Short: "Show the computed timeline range and chart size",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.Schedule.Snapshot(cmd.Context())
			if err != nil {
				return err
			}
			c := timeline.Build(*snap, timeline.Options{Zoom: timeline.ZoomFor(zoom.level), Now: app.now()})
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRange(c))
			return nil
		},
	}

	cmd.Flags().Var(zoom, "zoom", "Zoom level")
	return cmd
}
