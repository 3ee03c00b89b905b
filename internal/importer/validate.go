package importer

import (
	"fmt"
	"regexp"

	"github.com/alexanderramin/roadmap/internal/domain"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateImportSchema checks the schema before conversion and returns
// every problem found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validateDefaults(schema.Defaults)...)

	phaseIDs := make(map[string]bool)
	errs = append(errs, validatePhases(schema.Phases, phaseIDs)...)

	itemIDs := make(map[string]bool)
	errs = append(errs, validateItems(schema.Items, phaseIDs, itemIDs)...)
	errs = append(errs, validateDependsOn(schema.Items, itemIDs)...)

	errs = append(errs, validateMilestones(schema.Milestones, itemIDs)...)

	return errs
}

func validateDefaults(d *DefaultsImport) []error {
	if d == nil {
		return nil
	}
	var errs []error
	if d.Status != "" && !domain.ValidItemStatuses[d.Status] {
		errs = append(errs, fmt.Errorf("defaults.status: invalid value %q", d.Status))
	}
	if _, err := domain.ParsePriority(d.Priority); err != nil {
		errs = append(errs, fmt.Errorf("defaults.priority: %w", err))
	}
	if d.PhaseType != "" && !domain.ValidPhaseTypes[d.PhaseType] {
		errs = append(errs, fmt.Errorf("defaults.phase_type: invalid value %q", d.PhaseType))
	}
	return errs
}

func validatePhases(phases []PhaseImport, phaseIDs map[string]bool) []error {
	var errs []error

	for i, p := range phases {
		prefix := fmt.Sprintf("phases[%d]", i)

		if p.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if phaseIDs[p.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, p.ID))
		} else {
			phaseIDs[p.ID] = true
		}

		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if p.Type != "" && !domain.ValidPhaseTypes[p.Type] {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, p.Type))
		}
		errs = append(errs, validateColor(prefix+".color", p.Color)...)

		start, startErrs := validateRequiredDate(prefix+".start_date", p.StartDate)
		end, endErrs := validateRequiredDate(prefix+".end_date", p.EndDate)
		errs = append(errs, startErrs...)
		errs = append(errs, endErrs...)
		if len(startErrs) == 0 && len(endErrs) == 0 && end.Before(start) {
			errs = append(errs, fmt.Errorf("%s.end_date %q must not be before start_date %q", prefix, p.EndDate, p.StartDate))
		}
	}

	return errs
}

func validateItems(items []ItemImport, phaseIDs, itemIDs map[string]bool) []error {
	var errs []error

	for i, it := range items {
		prefix := fmt.Sprintf("items[%d]", i)

		if it.ID != "" {
			if itemIDs[it.ID] {
				errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, it.ID))
			} else {
				itemIDs[it.ID] = true
			}
		}

		if it.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if it.Phase != "" && !phaseIDs[it.Phase] {
			errs = append(errs, fmt.Errorf("%s.phase: id %q not found in phases", prefix, it.Phase))
		}
		if it.Status != "" && !domain.ValidItemStatuses[it.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, it.Status))
		}
		if _, err := domain.ParsePriority(it.Priority); err != nil {
			errs = append(errs, fmt.Errorf("%s.priority: %w", prefix, err))
		}

		target, targetErrs := validateRequiredDate(prefix+".target_date", it.TargetDate)
		errs = append(errs, targetErrs...)
		if it.EndDate != nil {
			end, endErrs := validateRequiredDate(prefix+".end_date", *it.EndDate)
			errs = append(errs, endErrs...)
			if len(targetErrs) == 0 && len(endErrs) == 0 && !end.After(target) {
				errs = append(errs, fmt.Errorf("%s.end_date %q must be after target_date %q", prefix, *it.EndDate, it.TargetDate))
			}
		}
	}

	return errs
}

// validateDependsOn runs after every item id is known so forward
// references are allowed.
func validateDependsOn(items []ItemImport, itemIDs map[string]bool) []error {
	var errs []error
	for i, it := range items {
		for j, dep := range it.DependsOn {
			prefix := fmt.Sprintf("items[%d].depends_on[%d]", i, j)
			switch {
			case dep == "":
				errs = append(errs, fmt.Errorf("%s is empty", prefix))
			case dep == it.ID:
				errs = append(errs, fmt.Errorf("%s: item %q cannot depend on itself", prefix, dep))
			case !itemIDs[dep]:
				errs = append(errs, fmt.Errorf("%s: id %q not found in items", prefix, dep))
			}
		}
	}
	return errs
}

func validateMilestones(ms []MilestoneImport, itemIDs map[string]bool) []error {
	var errs []error
	seen := make(map[string]bool)

	for i, m := range ms {
		prefix := fmt.Sprintf("milestones[%d]", i)

		if m.ID != "" {
			if seen[m.ID] {
				errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, m.ID))
			}
			seen[m.ID] = true
		}
		if m.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		_, dateErrs := validateRequiredDate(prefix+".date", m.Date)
		errs = append(errs, dateErrs...)
		errs = append(errs, validateColor(prefix+".color", m.Color)...)

		for j, id := range m.Items {
			if !itemIDs[id] {
				errs = append(errs, fmt.Errorf("%s.items[%d]: id %q not found in items", prefix, j, id))
			}
		}
	}

	return errs
}
