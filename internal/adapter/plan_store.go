package adapter

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/linesplit/internal/model"
)

// PlanStore loads and renders extraction plans.
type PlanStore interface {
	// LoadPlan reads a plan file. Files ending in .yaml or .yml are decoded
	// as YAML, everything else as JSON.
	LoadPlan(path m.Path) ([]m.PlanItem, error)
	// ParsePlan decodes an inline JSON plan.
	ParsePlan(text string) ([]m.PlanItem, error)
	// EncodePlan renders a plan as indented JSON.
	EncodePlan(items []m.PlanItem) ([]byte, error)
}

type planStore struct {
	fs FileSystemAdapter
}

// NewPlanStore constructs a PlanStore reading through fs.
func NewPlanStore(fs FileSystemAdapter) PlanStore {
	return &planStore{fs: fs}
}

func (ps *planStore) LoadPlan(path m.Path) ([]m.PlanItem, error) {
	content, err := ps.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan %s: %w", path, err)
	}

	var items []m.PlanItem

	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &items); err != nil {
			return nil, fmt.Errorf("failed to decode plan %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(content, &items); err != nil {
			return nil, fmt.Errorf("failed to decode plan %s: %w", path, err)
		}
	}

	return items, nil
}

func (ps *planStore) ParsePlan(text string) ([]m.PlanItem, error) {
	var items []m.PlanItem
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, fmt.Errorf("failed to decode plan: %w", err)
	}

	return items, nil
}

func (ps *planStore) EncodePlan(items []m.PlanItem) ([]byte, error) {
	if items == nil {
		items = []m.PlanItem{}
	}

	return json.MarshalIndent(items, "", "  ")
}
