// Package plan sums per-shot workflows into a plan-level estimate. Pure
// summation: totals are derived from the shot plans, never stored, and the
// aggregate is a deterministic function of its inputs.
package plan

import (
	"log"
	"math"
	"sort"
	"strings"

	"video-planner/config"
	"video-planner/types"
)

// Aggregator folds shot plans into a ProductionPlan
type Aggregator struct {
	cfg *config.Config
}

// NewAggregator creates an Aggregator
func NewAggregator(cfg *config.Config) *Aggregator {
	return &Aggregator{cfg: cfg}
}

// Aggregate builds the plan for a shot list. Empty input is a legitimate
// "no shots" state and yields a zero-cost, zero-time plan, not an error.
// The plan's identity and timestamp derive from the shot list so identical
// inputs always aggregate to identical output.
func (a *Aggregator) Aggregate(list *types.ShotList, shotPlans []types.ShotPlan) *types.ProductionPlan {
	p := &types.ProductionPlan{
		ShotPlans: shotPlans,
		Summary: types.WorkflowSummary{
			StepsByKind:      map[string]int{},
			CostByCapability: map[string]float64{},
		},
		Timeline: types.TimelineEstimate{
			PostProcessingMinutes: a.cfg.Plan.PostProcessingMinutes,
		},
	}
	if list != nil {
		p.ID = "plan_" + strings.TrimPrefix(list.ID, "shotlist_")
		p.ShotListID = list.ID
		p.Mode = list.Mode
		p.CreatedAt = list.CreatedAt
	}
	if len(shotPlans) == 0 {
		log.Printf("[plan] no shots to aggregate, emitting empty plan")
		return p
	}

	categoryCount := map[string]int{}
	capabilities := map[string]bool{}
	maxShotSeconds := 0
	for _, sp := range shotPlans {
		if len(sp.Primary.Steps) > 0 {
			categoryCount[sp.Primary.Steps[0].Category]++
		}
		for _, step := range sp.Primary.Steps {
			capabilities[step.Capability] = true
			p.Summary.StepsByKind[string(step.Kind)]++
			p.Summary.CostByCapability[step.Capability] =
				round2(p.Summary.CostByCapability[step.Capability] + step.CostUSD)
		}
		if sp.Primary.TotalSeconds > maxShotSeconds {
			maxShotSeconds = sp.Primary.TotalSeconds
		}
	}

	p.Summary.UniqueCapabilities = len(capabilities)
	p.Summary.ModalCategory, p.Summary.ModalShare = modal(categoryCount, len(shotPlans))

	p.Timeline.SequentialMinutes = round1(float64(p.TotalTimeSeconds()) / 60)
	p.Timeline.ParallelMinutes = round1(float64(maxShotSeconds) / 60)

	log.Printf("[plan] aggregated %d shot plans: $%.2f, %s dominates (%.0f%%)",
		len(shotPlans), p.TotalCostUSD(), p.Summary.ModalCategory, p.Summary.ModalShare*100)
	return p
}

// modal returns the most-used category and its share of shots, breaking
// count ties alphabetically for reproducibility
func modal(counts map[string]int, total int) (string, float64) {
	if total == 0 {
		return "", 0
	}
	categories := make([]string, 0, len(counts))
	for c := range counts {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	best := ""
	bestCount := -1
	for _, c := range categories {
		if counts[c] > bestCount {
			best = c
			bestCount = counts[c]
		}
	}
	return best, float64(bestCount) / float64(total)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
