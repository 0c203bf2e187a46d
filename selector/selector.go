package selector

import (
	"fmt"
	"log"
	"math"
	"sort"
	"strings"

	"video-planner/config"
	"video-planner/plan"
	"video-planner/types"
)

// Selector assigns workflows to shots from a fixed catalog snapshot.
// Selection is deterministic: stable ranking with capability-id tie-breaks,
// no clocks, no randomness.
type Selector struct {
	cfg        *config.Config
	catalog    Catalog
	aggregator *plan.Aggregator
}

// New creates a Selector over a validated catalog snapshot
func New(cfg *config.Config, catalog Catalog) *Selector {
	return &Selector{
		cfg:        cfg,
		catalog:    catalog,
		aggregator: plan.NewAggregator(cfg),
	}
}

// SelectWorkflow picks the best capability chain for one shot under the given
// constraints. The returned workflow carries its ranked alternatives.
func (s *Selector) SelectWorkflow(shot types.Shot, constraints types.Constraints) (types.Workflow, error) {
	primary, alts, overBudget, err := s.selectRanked(shot, constraints)
	if err != nil {
		return types.Workflow{}, err
	}
	if overBudget {
		log.Printf("[selector] ⚠️  shot %s: no candidate within $%.2f per shot, using cheapest",
			shot.ID, constraints.MaxCostPerShotUSD)
	}
	primary.Alternatives = alts
	return primary, nil
}

// PlanShot wraps SelectWorkflow into a ShotPlan with the over-budget flag
func (s *Selector) PlanShot(shot types.Shot, constraints types.Constraints) (types.ShotPlan, error) {
	primary, alts, overBudget, err := s.selectRanked(shot, constraints)
	if err != nil {
		return types.ShotPlan{}, err
	}
	sp := types.ShotPlan{
		ShotID:       shot.ID,
		Description:  fmt.Sprintf("%s - %ds", shot.Type, shot.DurationSeconds),
		Primary:      primary,
		Alternatives: alts,
		OverBudget:   overBudget,
		Notes: []string{
			fmt.Sprintf("shot complexity %d/10", shot.ComplexityScore),
			fmt.Sprintf("estimated generation %ds", primary.TotalSeconds),
		},
	}
	if overBudget {
		sp.Notes = append(sp.Notes,
			fmt.Sprintf("cheapest candidate $%.2f exceeds per-shot cap $%.2f",
				primary.TotalCostUSD, constraints.MaxCostPerShotUSD))
	}
	return sp, nil
}

// GenerateProductionPlan plans every shot and aggregates the result. An empty
// shot list yields a legitimate zero-cost plan.
func (s *Selector) GenerateProductionPlan(list *types.ShotList, constraints types.Constraints) (*types.ProductionPlan, error) {
	if list == nil {
		return nil, &types.InsufficientInputError{Field: "shot_list", Reason: "no shot list supplied"}
	}

	shotPlans := make([]types.ShotPlan, 0, len(list.Shots))
	for _, shot := range list.Shots {
		sp, err := s.PlanShot(shot, constraints)
		if err != nil {
			return nil, fmt.Errorf("plan shot %s: %w", shot.ID, err)
		}
		shotPlans = append(shotPlans, sp)
	}

	p := s.aggregator.Aggregate(list, shotPlans)

	if constraints.MaxTotalCostUSD > 0 && p.TotalCostUSD() > constraints.MaxTotalCostUSD {
		p.Warnings = append(p.Warnings, fmt.Sprintf(
			"total cost $%.2f exceeds budget $%.2f", p.TotalCostUSD(), constraints.MaxTotalCostUSD))
	}
	if constraints.MaxTimeMinutes > 0 {
		minutes := float64(p.TotalTimeSeconds()) / 60
		if minutes > constraints.MaxTimeMinutes {
			p.Warnings = append(p.Warnings, fmt.Sprintf(
				"estimated %.1f minutes exceeds the %.1f minute cap", minutes, constraints.MaxTimeMinutes))
		}
	}
	if over := p.OverBudgetShots(); len(over) > 0 {
		p.Warnings = append(p.Warnings, fmt.Sprintf(
			"%d shot(s) over the per-shot budget: %s", len(over), strings.Join(over, ", ")))
	}

	log.Printf("[selector] production plan: %d shots, $%.2f, %.1f min sequential",
		len(shotPlans), p.TotalCostUSD(), float64(p.TotalTimeSeconds())/60)
	return p, nil
}

func (s *Selector) selectRanked(shot types.Shot, constraints types.Constraints) (types.Workflow, []types.Workflow, bool, error) {
	ranked := s.rank(shot.Type, constraints.QualityPriority)
	if len(ranked) == 0 {
		return types.Workflow{}, nil, false, &types.InsufficientInputError{
			Field:  "catalog",
			Reason: fmt.Sprintf("no capability can generate %s shots", shot.Type),
		}
	}

	workflows := make([]types.Workflow, len(ranked))
	for i, cap := range ranked {
		workflows[i] = s.buildWorkflow(shot, cap, constraints.QualityPriority)
	}

	// Budget fall-through: first ranked candidate inside the per-shot cap
	// wins; with no survivors, the cheapest candidate wins and the plan is
	// flagged rather than failed.
	chosen := -1
	if constraints.MaxCostPerShotUSD > 0 {
		for i, wf := range workflows {
			if wf.TotalCostUSD <= constraints.MaxCostPerShotUSD {
				chosen = i
				break
			}
		}
	} else {
		chosen = 0
	}

	overBudget := false
	if chosen < 0 {
		overBudget = true
		chosen = 0
		for i, wf := range workflows {
			cheapest := workflows[chosen]
			if wf.TotalCostUSD < cheapest.TotalCostUSD ||
				(wf.TotalCostUSD == cheapest.TotalCostUSD && ranked[i].ID < ranked[chosen].ID) {
				chosen = i
			}
		}
	}

	var alts []types.Workflow
	for i := range workflows {
		if i == chosen || len(alts) >= s.cfg.Selector.MaxAlternatives {
			continue
		}
		alts = append(alts, workflows[i])
	}
	return workflows[chosen], alts, overBudget, nil
}

// rank filters the catalog to candidates tagged for the shot type (falling
// back to medium-tagged entries) and orders them by the composite score:
// quality_weight * quality - cost_weight * normalized cost.
func (s *Selector) rank(shotType types.ShotType, priority types.QualityPriority) []Capability {
	candidates := s.taggedFor(shotType)
	if len(candidates) == 0 {
		candidates = s.taggedFor(types.ShotMedium)
	}

	qw := s.qualityWeight(priority)
	cw := 1 - qw
	maxCost := s.catalog.maxCostPerSecond()

	score := func(c Capability) float64 {
		return qw*c.QualityScore - cw*(c.CostPerSecond/maxCost)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		si, sj := score(candidates[i]), score(candidates[j])
		if si != sj {
			return si > sj
		}
		return candidates[i].ID < candidates[j].ID
	})
	return candidates
}

func (s *Selector) taggedFor(shotType types.ShotType) []Capability {
	var out []Capability
	for _, cap := range s.catalog.Capabilities {
		if cap.Category == CategoryVFX {
			continue // effects passes never carry a base generation step
		}
		for _, t := range cap.BestFor {
			if t == shotType {
				out = append(out, cap)
				break
			}
		}
	}
	return out
}

func (s *Selector) buildWorkflow(shot types.Shot, cap Capability, priority types.QualityPriority) types.Workflow {
	kind := types.KindTextToVideo
	if shot.DurationSeconds <= 5 {
		kind = types.KindImageToVideo
	}

	steps := []types.WorkflowStep{{
		Step:             1,
		Capability:       cap.Name,
		Category:         string(cap.Category),
		Purpose:          fmt.Sprintf("Generate %s shot", shot.Type),
		Kind:             kind,
		DurationSeconds:  shot.DurationSeconds,
		EstimatedSeconds: shot.EstimatedGenerationSeconds,
		CostUSD:          round2(float64(shot.DurationSeconds) * cap.CostPerSecond),
	}}

	// Hard requirement, not a scoring adjustment: VFX shots always chain an
	// effects-category pass after the base generation step.
	if shot.RequiresVFX {
		if vfx, ok := s.bestVFX(); ok {
			steps = append(steps, types.WorkflowStep{
				Step:             2,
				Capability:       vfx.Name,
				Category:         string(vfx.Category),
				Purpose:          "Apply VFX and stylization",
				Kind:             types.KindVideoToVideo,
				EstimatedSeconds: s.cfg.Selector.VFXStepSeconds,
				CostUSD:          round2(vfx.FixedCostUSD),
			})
		} else {
			log.Printf("[selector] ⚠️  shot %s requires VFX but the catalog has no vfx capability", shot.ID)
		}
	}

	wf := types.Workflow{
		ID:           fmt.Sprintf("wf_%s_%s", shot.ID, cap.ID),
		Name:         fmt.Sprintf("%s - %s quality", title(string(shot.Type)), priorityLabel(priority)),
		Steps:        steps,
		QualityScore: cap.QualityScore,
	}
	for _, step := range steps {
		wf.TotalCostUSD = round2(wf.TotalCostUSD + step.CostUSD)
		wf.TotalSeconds += step.EstimatedSeconds
	}
	return wf
}

func (s *Selector) bestVFX() (Capability, bool) {
	var best Capability
	found := false
	for _, cap := range s.catalog.Capabilities {
		if cap.Category != CategoryVFX {
			continue
		}
		if !found || cap.QualityScore > best.QualityScore ||
			(cap.QualityScore == best.QualityScore && cap.ID < best.ID) {
			best = cap
			found = true
		}
	}
	return best, found
}

func (s *Selector) qualityWeight(priority types.QualityPriority) float64 {
	w := s.cfg.Selector.QualityWeights
	switch priority {
	case types.QualityHigh:
		return w.High
	case types.QualityBudget:
		return w.Budget
	default:
		return w.Balanced
	}
}

func priorityLabel(p types.QualityPriority) string {
	if p == "" {
		p = types.QualityBalanced
	}
	return string(p)
}

func title(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
