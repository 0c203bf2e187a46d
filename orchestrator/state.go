package orchestrator

import (
	"video-planner/requirements"
	"video-planner/types"
)

// State is the orchestrator's position in the pipeline
type State string

const (
	StateIdle                   State = "idle"
	StateRequirementsSet        State = "requirements_set"
	StateAwaitingClarification  State = "awaiting_clarification"
	StateScriptGenerated        State = "script_generated"
	StateAwaitingScriptApproval State = "awaiting_script_approval"
	StateShotsGenerated         State = "shots_generated"
	StateAwaitingShotApproval   State = "awaiting_shot_approval"
	StatePlanGenerated          State = "plan_generated"
	StateComplete               State = "complete"
)

// allowedTransitions is the full transition table. Flow is one-directional
// except that awaiting states may re-enter themselves to regenerate the
// artifact under review.
var allowedTransitions = map[State][]State{
	StateIdle:                   {StateRequirementsSet, StateAwaitingClarification},
	StateAwaitingClarification:  {StateRequirementsSet},
	StateRequirementsSet:        {StateScriptGenerated, StateAwaitingScriptApproval},
	StateAwaitingScriptApproval: {StateScriptGenerated, StateAwaitingScriptApproval},
	StateScriptGenerated:        {StateShotsGenerated, StateAwaitingShotApproval},
	StateAwaitingShotApproval:   {StateShotsGenerated, StateAwaitingShotApproval},
	StateShotsGenerated:         {StatePlanGenerated, StateComplete},
	StatePlanGenerated:          {StateComplete},
	StateComplete:               {},
}

func canTransition(from, to State) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Status tells the caller what the orchestrator needs next
type Status string

const (
	StatusNeedsClarification Status = "needs_clarification"
	StatusNeedsApproval      Status = "needs_approval"
	StatusReady              Status = "ready"
	StatusComplete           Status = "complete"
)

// StageResult is the typed payload every stage method returns. HITL pauses
// are states plus payloads, never errors.
type StageResult struct {
	Status     Status                  `json:"status"`
	State      State                   `json:"state"`
	Questions  []requirements.Question `json:"questions,omitempty"`
	Script     *types.Script           `json:"script,omitempty"`
	ShotList   *types.ShotList         `json:"shot_list,omitempty"`
	Plan       *types.ProductionPlan   `json:"production_plan,omitempty"`
	NextAction string                  `json:"next_action,omitempty"`
}
