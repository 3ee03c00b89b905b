package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ImportSchema is the top-level structure of a roadmap file. YAML is a
// superset of JSON, so JSON files load through the same path.
type ImportSchema struct {
	Defaults   *DefaultsImport   `yaml:"defaults,omitempty"`
	Phases     []PhaseImport     `yaml:"phases"`
	Items      []ItemImport      `yaml:"items"`
	Milestones []MilestoneImport `yaml:"milestones,omitempty"`
}

// DefaultsImport values apply to entries that leave the field empty.
type DefaultsImport struct {
	Status        string `yaml:"status,omitempty"`
	Priority      string `yaml:"priority,omitempty"`
	PhaseType     string `yaml:"phase_type,omitempty"`
	MilestoneIcon string `yaml:"milestone_icon,omitempty"`
}

type PhaseImport struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Type      string `yaml:"type,omitempty"`
	Order     *int   `yaml:"order,omitempty"`
	Color     string `yaml:"color,omitempty"`
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`
}

type ItemImport struct {
	ID         string   `yaml:"id,omitempty"`
	Title      string   `yaml:"title"`
	Phase      string   `yaml:"phase,omitempty"`
	Status     string   `yaml:"status,omitempty"`
	Priority   string   `yaml:"priority,omitempty"`
	TargetDate string   `yaml:"target_date"`
	EndDate    *string  `yaml:"end_date,omitempty"`
	DependsOn  []string `yaml:"depends_on,omitempty"`
	Assignee   string   `yaml:"assignee,omitempty"`
}

type MilestoneImport struct {
	ID    string   `yaml:"id,omitempty"`
	Title string   `yaml:"title"`
	Date  string   `yaml:"date"`
	Icon  string   `yaml:"icon,omitempty"`
	Color string   `yaml:"color,omitempty"`
	Items []string `yaml:"items,omitempty"`
}

// LoadImportSchema reads and parses a roadmap file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data)
}

func ParseImportSchema(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
