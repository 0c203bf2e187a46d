package types

// QualityPriority steers the quality/cost trade-off during tool selection
type QualityPriority string

const (
	QualityHigh     QualityPriority = "high"
	QualityBalanced QualityPriority = "balanced"
	QualityBudget   QualityPriority = "budget"
)

// Constraints bound tool selection for a run. Zero values mean unconstrained.
type Constraints struct {
	QualityPriority   QualityPriority `json:"quality_priority"`
	MaxCostPerShotUSD float64         `json:"max_cost_per_shot_usd,omitempty"`
	MaxTotalCostUSD   float64         `json:"max_total_cost_usd,omitempty"`
	MaxTimeMinutes    float64         `json:"max_time_minutes,omitempty"`
}

// WorkflowStep is a single external-capability invocation
type WorkflowStep struct {
	Step             int          `json:"step"`
	Capability       string       `json:"capability"`
	Category         string       `json:"category"`
	Purpose          string       `json:"purpose"`
	Kind             WorkflowKind `json:"kind"`
	DurationSeconds  int          `json:"duration_seconds"`
	EstimatedSeconds int          `json:"estimated_seconds"`
	CostUSD          float64      `json:"cost_usd"`
}

// Workflow is the ordered capability chain fulfilling one shot
type Workflow struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Steps        []WorkflowStep `json:"steps"`
	TotalCostUSD float64        `json:"total_cost_usd"`
	TotalSeconds int            `json:"total_seconds"`
	QualityScore float64        `json:"quality_score"` // 0-10
	Alternatives []Workflow     `json:"alternatives,omitempty"`
}

// ShotPlan assigns a primary workflow (plus ranked fallbacks) to one shot
type ShotPlan struct {
	ShotID       string     `json:"shot_id"`
	Description  string     `json:"description"`
	Primary      Workflow   `json:"primary_workflow"`
	Alternatives []Workflow `json:"alternative_workflows,omitempty"`
	OverBudget   bool       `json:"over_budget,omitempty"`
	Notes        []string   `json:"notes,omitempty"`
}

// WorkflowSummary reports which capability categories dominate a plan
type WorkflowSummary struct {
	ModalCategory      string             `json:"modal_category"`
	ModalShare         float64            `json:"modal_share"` // fraction of shots
	UniqueCapabilities int                `json:"unique_capabilities"`
	StepsByKind        map[string]int     `json:"steps_by_kind"`
	CostByCapability   map[string]float64 `json:"cost_by_capability"`
}

// TimelineEstimate separates additive generation time from a parallel bound
type TimelineEstimate struct {
	SequentialMinutes     float64 `json:"sequential_minutes"`
	ParallelMinutes       float64 `json:"parallel_minutes"`
	PostProcessingMinutes int     `json:"post_processing_minutes"`
}

// ProductionPlan is the final cost/time-bounded plan for a shot list.
// Totals are derived from the shot plans on demand, never stored, so the
// serialized plan can't drift from its parts.
type ProductionPlan struct {
	ID         string         `json:"id"`
	ShotListID string         `json:"shot_list_id"`
	Mode       GenerationMode `json:"mode"`

	ShotPlans []ShotPlan       `json:"shot_plans"`
	Summary   WorkflowSummary  `json:"workflow_summary"`
	Timeline  TimelineEstimate `json:"timeline_estimate"`

	CreatedAt string   `json:"created_at"`
	Warnings  []string `json:"warnings,omitempty"`
}

// TotalCostUSD sums the primary workflow cost of every shot plan
func (p *ProductionPlan) TotalCostUSD() float64 {
	var total float64
	for _, sp := range p.ShotPlans {
		total += sp.Primary.TotalCostUSD
	}
	return total
}

// TotalTimeSeconds sums primary workflow generation time. This is an additive
// scheduling estimate, not a wall-clock claim.
func (p *ProductionPlan) TotalTimeSeconds() int {
	var total int
	for _, sp := range p.ShotPlans {
		total += sp.Primary.TotalSeconds
	}
	return total
}

// OverBudgetShots lists shot IDs whose primary workflow exceeded the per-shot cap
func (p *ProductionPlan) OverBudgetShots() []string {
	var ids []string
	for _, sp := range p.ShotPlans {
		if sp.OverBudget {
			ids = append(ids, sp.ShotID)
		}
	}
	return ids
}
