package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/alexanderramin/roadmap/internal/timeline"
	"github.com/spf13/pflag"
)

// zoomFlag is a pflag.Value accepting day, week or month.
type zoomFlag struct {
	level timeline.ZoomLevel
}

var _ pflag.Value = (*zoomFlag)(nil)

func newZoomFlag(def timeline.ZoomLevel) *zoomFlag {
	return &zoomFlag{level: def}
}

func (f *zoomFlag) String() string { return f.level.String() }
func (f *zoomFlag) Type() string   { return "day|week|month" }

func (f *zoomFlag) Set(s string) error {
	level, err := timeline.ParseZoom(s)
	if err != nil {
		return err
	}
	f.level = level
	return nil
}

// dateFlag is a pflag.Value holding an optional YYYY-MM-DD date.
type dateFlag struct {
	t   time.Time
	set bool
}

var _ pflag.Value = (*dateFlag)(nil)

func (f *dateFlag) String() string {
	if !f.set {
		return ""
	}
	return f.t.Format(domain.DateLayout)
}

func (f *dateFlag) Type() string { return "YYYY-MM-DD" }

func (f *dateFlag) Set(s string) error {
	t, err := domain.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	f.t, f.set = t, true
	return nil
}

func (f *dateFlag) ptr() *time.Time {
	if !f.set {
		return nil
	}
	t := f.t
	return &t
}

// enumFlag is a pflag.Value restricted to a fixed set of strings.
type enumFlag struct {
	value   string
	allowed []string
}

var _ pflag.Value = (*enumFlag)(nil)

func newEnumFlag(def string, allowed ...string) *enumFlag {
	return &enumFlag{value: def, allowed: allowed}
}

func (f *enumFlag) String() string { return f.value }
func (f *enumFlag) Type() string   { return strings.Join(f.allowed, "|") }

func (f *enumFlag) Set(s string) error {
	for _, a := range f.allowed {
		if s == a {
			f.value = s
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", strings.Join(f.allowed, ", "))
}
