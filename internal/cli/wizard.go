package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/roadmap/internal/cli/formatter"
	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// roadmapHuhTheme returns a huh theme built from the Gruvbox palette.
func roadmapHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.NoteTitle = lipgloss.NewStyle().Foreground(formatter.ColorFg).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardReschedule builds the date form for it. start and end are
// prefilled with the current start and explicit end.
func wizardReschedule(it domain.ScheduleItem, start, end *string) *huh.Form {
	*start = it.TargetDate.Format(domain.DateLayout)
	*end = ""
	if it.EndDate != nil {
		*end = it.EndDate.Format(domain.DateLayout)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(it.Title).
				Description(fmt.Sprintf("%s · currently %s", it.Status, formatter.DateSpan(it))),
			huh.NewInput().
				Title("Start date").
				Placeholder(domain.DateLayout).
				Value(start).
				Validate(validateDate),
			huh.NewInput().
				Title("End date").
				Description(fmt.Sprintf("Leave empty for the implied %d days", domain.ImpliedDurationDays)).
				Placeholder(domain.DateLayout).
				Value(end).
				Validate(validateOptionalDate),
		),
	).WithTheme(roadmapHuhTheme()).WithShowHelp(false)
}

// validateDate requires a YYYY-MM-DD date string.
func validateDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("date is required")
	}
	return validateOptionalDate(s)
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// parseRescheduleInput converts the form values. An empty end keeps the
// end implied.
func parseRescheduleInput(start, end string) (time.Time, *time.Time, error) {
	s, err := domain.ParseDate(strings.TrimSpace(start))
	if err != nil {
		return time.Time{}, nil, err
	}
	end = strings.TrimSpace(end)
	if end == "" {
		return s, nil, nil
	}
	e, err := domain.ParseDate(end)
	if err != nil {
		return time.Time{}, nil, err
	}
	return s, &e, nil
}
