package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/roadmap/internal/cli/formatter"
	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/alexanderramin/roadmap/internal/service"
	"github.com/spf13/cobra"
)

// resolveItemID matches input against item IDs, then unique ID prefixes,
// then titles (case-insensitive).
func resolveItemID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("item ID is required")
	}

	items, err := app.Schedule.ListItems(ctx)
	if err != nil {
		return "", err
	}

	for _, it := range items {
		if it.ID == input {
			return it.ID, nil
		}
	}

	var matches []string
	for _, it := range items {
		if strings.HasPrefix(it.ID, input) {
			matches = append(matches, it.ID)
		}
	}
	if len(matches) == 0 {
		for _, it := range items {
			if strings.EqualFold(it.Title, input) {
				matches = append(matches, it.ID)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("item %q: %w", input, service.ErrItemNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("item %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "List and reschedule items",
	}

	cmd.AddCommand(
		newItemListCmd(app),
		newItemMoveCmd(app),
	)

	return cmd
}

func newItemListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List items by phase and start date",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.Schedule.Snapshot(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatItemList(*snap, app.now()))
			return nil
		},
	}
}

func newItemMoveCmd(app *App) *cobra.Command {
	var (
		date     dateFlag
		end      dateFlag
		by       int
		clearEnd bool
	)

	cmd := &cobra.Command{
		Use:   "move <item>",
		Short: "Reschedule an item",
		Long: `Reschedule an item by ID, ID prefix or title.

  --by N      shifts the start (and an explicit end) by N days
  --date D    sets the start; an explicit end keeps its duration
  --end D     sets an explicit end date
  --clear-end drops the explicit end so the implied duration applies

Without --date or --by on a terminal, a form asks for the dates.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			before, err := app.Schedule.GetItem(ctx, id)
			if err != nil {
				return err
			}

			bySet := cmd.Flags().Changed("by")
			if bySet && (date.set || end.set || clearEnd) {
				return errors.New("--by cannot be combined with --date, --end or --clear-end")
			}
			if end.set && clearEnd {
				return errors.New("--end cannot be combined with --clear-end")
			}

			var after *domain.ScheduleItem
			switch {
			case bySet:
				after, err = app.Schedule.Shift(ctx, id, by)
			case date.set || end.set || clearEnd:
				start := before.TargetDate
				if date.set {
					start = date.t
				}
				after, err = app.Schedule.Reschedule(ctx, id, start, moveEnd(*before, start, end.ptr(), clearEnd))
			case app.interactive():
				after, err = promptReschedule(ctx, app, *before)
			default:
				return errors.New("one of --date, --end, --clear-end or --by is required")
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRescheduled(*before, *after))
			return nil
		},
	}

	cmd.Flags().Var(&date, "date", "New start date")
	cmd.Flags().Var(&end, "end", "New explicit end date")
	cmd.Flags().IntVar(&by, "by", 0, "Shift by N days (negative moves earlier)")
	cmd.Flags().BoolVar(&clearEnd, "clear-end", false, "Remove the explicit end date")

	return cmd
}

// moveEnd decides the end date for a reschedule to start. An explicit
// newEnd wins; otherwise an existing explicit end keeps its duration.
func moveEnd(it domain.ScheduleItem, start time.Time, newEnd *time.Time, clear bool) *time.Time {
	switch {
	case clear:
		return nil
	case newEnd != nil:
		return newEnd
	case it.EndDate != nil:
		e := domain.AddDays(*it.EndDate, domain.DaysBetween(it.TargetDate, start))
		return &e
	default:
		return nil
	}
}

// promptReschedule asks for the new dates with a standalone huh form.
func promptReschedule(ctx context.Context, app *App, it domain.ScheduleItem) (*domain.ScheduleItem, error) {
	var start, end string
	if err := wizardReschedule(it, &start, &end).RunWithContext(ctx); err != nil {
		return nil, err
	}
	newStart, newEnd, err := parseRescheduleInput(start, end)
	if err != nil {
		return nil, err
	}
	return app.Schedule.Reschedule(ctx, it.ID, newStart, newEnd)
}
