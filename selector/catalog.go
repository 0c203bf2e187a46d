// Package selector scores a catalog of external generation capabilities
// against quality/cost/time constraints and assigns a workflow to every shot.
package selector

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"video-planner/types"
)

// SchemaVersion is the catalog file format this build understands
const SchemaVersion = 1

// Category is the closed set of capability categories. Unknown categories are
// rejected when a catalog loads, not when a shot is planned.
type Category string

const (
	CategoryWide    Category = "wide"
	CategoryCloseup Category = "closeup"
	CategoryGeneral Category = "general"
	CategoryBudget  Category = "budget"
	CategoryVFX     Category = "vfx"
)

func knownCategory(c Category) bool {
	switch c {
	case CategoryWide, CategoryCloseup, CategoryGeneral, CategoryBudget, CategoryVFX:
		return true
	}
	return false
}

// Capability is one scored external generation tool. Supplied data, read-only.
type Capability struct {
	ID            string           `yaml:"id"`
	Name          string           `yaml:"name"`
	Category      Category         `yaml:"category"`
	QualityScore  float64          `yaml:"quality_score"`   // 0-10
	CostPerSecond float64          `yaml:"cost_per_second"` // USD
	FixedCostUSD  float64          `yaml:"fixed_cost,omitempty"`
	BestFor       []types.ShotType `yaml:"best_for,omitempty"`
}

// Catalog is an immutable snapshot of available capabilities
type Catalog struct {
	Version      int          `yaml:"schema_version"`
	Capabilities []Capability `yaml:"capabilities"`
}

// DefaultCatalog returns the built-in capability snapshot used when no
// catalog file is configured. Scores and per-second costs follow published
// vendor benchmarks.
func DefaultCatalog() Catalog {
	return Catalog{
		Version: SchemaVersion,
		Capabilities: []Capability{
			{
				ID: "veo-3", Name: "Google Veo 3", Category: CategoryWide,
				QualityScore: 9.7, CostPerSecond: 0.08,
				BestFor: []types.ShotType{types.ShotWide, types.ShotExtremeWide, types.ShotMediumWide},
			},
			{
				ID: "sora", Name: "OpenAI Sora", Category: CategoryWide,
				QualityScore: 9.6, CostPerSecond: 0.10,
				BestFor: []types.ShotType{types.ShotExtremeWide, types.ShotWide},
			},
			{
				ID: "runway-gen3", Name: "Runway Gen-3 Alpha", Category: CategoryGeneral,
				QualityScore: 9.3, CostPerSecond: 0.05,
				BestFor: []types.ShotType{
					types.ShotWide, types.ShotMediumWide, types.ShotMedium,
					types.ShotMediumCloseup, types.ShotCloseup,
				},
			},
			{
				ID: "kling-2-1", Name: "Kling AI 2.1", Category: CategoryCloseup,
				QualityScore: 9.2, CostPerSecond: 0.06,
				BestFor: []types.ShotType{
					types.ShotCloseup, types.ShotMediumCloseup, types.ShotExtremeCloseup,
				},
			},
			{
				ID: "luma-dm-16", Name: "Luma Dream Machine 1.6", Category: CategoryGeneral,
				QualityScore: 9.1, CostPerSecond: 0.08,
				BestFor: []types.ShotType{types.ShotMedium, types.ShotMediumWide, types.ShotWide},
			},
			{
				ID: "haiper", Name: "Haiper AI", Category: CategoryBudget,
				QualityScore: 8.6, CostPerSecond: 0.05,
				BestFor: []types.ShotType{
					types.ShotMedium, types.ShotMediumWide, types.ShotMediumCloseup, types.ShotCloseup,
				},
			},
			{
				ID: "runway-vfx", Name: "Runway Gen-3 Effects Pass", Category: CategoryVFX,
				QualityScore: 9.3, CostPerSecond: 0.05, FixedCostUSD: 0.15,
			},
		},
	}
}

// LoadCatalog reads and validates a capability catalog file
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}

// Validate rejects malformed catalogs at load time
func (c Catalog) Validate() error {
	if c.Version != SchemaVersion {
		return fmt.Errorf("catalog schema version %d, this build supports %d", c.Version, SchemaVersion)
	}
	if len(c.Capabilities) == 0 {
		return fmt.Errorf("catalog has no capabilities")
	}
	seen := map[string]bool{}
	for _, cap := range c.Capabilities {
		if cap.ID == "" {
			return fmt.Errorf("capability %q has no id", cap.Name)
		}
		if seen[cap.ID] {
			return fmt.Errorf("duplicate capability id %q", cap.ID)
		}
		seen[cap.ID] = true
		if !knownCategory(cap.Category) {
			return fmt.Errorf("capability %q: unknown category %q", cap.ID, cap.Category)
		}
		if cap.QualityScore < 0 || cap.QualityScore > 10 {
			return fmt.Errorf("capability %q: quality score %.1f outside [0, 10]", cap.ID, cap.QualityScore)
		}
		if cap.CostPerSecond < 0 || cap.FixedCostUSD < 0 {
			return fmt.Errorf("capability %q: negative cost", cap.ID)
		}
	}
	return nil
}

// maxCostPerSecond is the normalization base for the cost term of the
// composite score
func (c Catalog) maxCostPerSecond() float64 {
	max := 0.0
	for _, cap := range c.Capabilities {
		if cap.CostPerSecond > max {
			max = cap.CostPerSecond
		}
	}
	if max == 0 {
		max = 1
	}
	return max
}
