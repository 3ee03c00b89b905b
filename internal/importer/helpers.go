package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/roadmap/internal/domain"
)

func validateRequiredDate(field, value string) (time.Time, []error) {
	if value == "" {
		return time.Time{}, []error{fmt.Errorf("%s is required", field)}
	}
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, value)}
	}
	return t, nil
}

func validateColor(field, value string) []error {
	if value == "" || hexColor.MatchString(value) {
		return nil
	}
	return []error{fmt.Errorf("%s: invalid color %q (expected #rgb or #rrggbb)", field, value)}
}

func parseOptionalDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(domain.DateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}
