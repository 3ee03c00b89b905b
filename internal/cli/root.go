package cli

import (
	"log/slog"
	"time"

	"github.com/alexanderramin/roadmap/internal/config"
	"github.com/alexanderramin/roadmap/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the services and settings used by CLI commands
// and the TUI.
type App struct {
	Schedule service.ScheduleService
	Import   service.ImportService
	Config   config.Config
	Logger   *slog.Logger

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool
	// Now overrides the clock; nil uses the current UTC time.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now().UTC()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}

func (a *App) cellPx() int {
	if a.Config.View.CellPx > 0 {
		return a.Config.View.CellPx
	}
	return 10
}

// NewRootCmd creates the top-level "roadmap" command and registers all
// subcommands against the provided App. Without a subcommand it opens the
// interactive Gantt view on a terminal and prints help otherwise.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "roadmap",
		Short:         "Timeline and Gantt planner for phased roadmaps",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return runGantt(app, app.Config.ZoomLevel())
		},
	}

	root.AddCommand(
		newGanttCmd(app),
		newRenderCmd(app),
		newImportCmd(app),
		newItemCmd(app),
		newPhaseCmd(app),
		newMilestoneCmd(app),
		newRangeCmd(app),
	)

	return root
}
