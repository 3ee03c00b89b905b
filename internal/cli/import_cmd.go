package cli

import (
	"fmt"

	"github.com/alexanderramin/roadmap/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import phases, items and milestones from a YAML or JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportRoadmap(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			app.logger().Debug("roadmap imported", "path", args[0], "items", result.ItemCount)
			fmt.Fprintf(cmd.OutOrStdout(), "%s Imported %d phases, %d items, %d dependencies, %d milestones\n",
				formatter.StyleGreen.Render("✔"),
				result.PhaseCount, result.ItemCount, result.DependencyCount, result.MilestoneCount)
			return nil
		},
	}
}
