// Package orchestrator sequences the planning pipeline as a state machine.
// In HITL mode every stage pauses for approval or clarification; in YOLO mode
// the chain runs end to end in one call.
package orchestrator

import (
	"fmt"
	"log"

	"video-planner/config"
	"video-planner/requirements"
	"video-planner/selector"
	"video-planner/supervisor"
	"video-planner/types"
)

// Orchestrator drives one requirements document through the pipeline. One
// orchestrator per session; it is not safe for concurrent callers.
type Orchestrator struct {
	cfg  *config.Config
	caps supervisor.CapabilityContext
	sel  *selector.Selector
	mode types.GenerationMode

	state    State
	req      *types.RequirementsDocument
	script   *types.Script
	shotList *types.ShotList
	plan     *types.ProductionPlan
}

// New resolves stage implementations and the capability catalog from config
// and returns an idle orchestrator. An empty mode falls back to the
// configured default.
func New(cfg *config.Config, mode types.GenerationMode) (*Orchestrator, error) {
	sup := supervisor.New(cfg.Pipeline.StrictMode)
	caps, err := Resolve(cfg, sup)
	if err != nil {
		return nil, err
	}
	cat, err := resolveCatalog(cfg, sup)
	if err != nil {
		return nil, err
	}
	return NewWithContext(cfg, mode, caps, cat), nil
}

// NewWithContext builds an orchestrator over pre-resolved capabilities.
// Tests use this to pin optimal or degraded implementations directly.
func NewWithContext(cfg *config.Config, mode types.GenerationMode, caps supervisor.CapabilityContext, cat selector.Catalog) *Orchestrator {
	if mode == "" {
		mode = types.GenerationMode(cfg.Pipeline.DefaultMode)
	}
	return &Orchestrator{
		cfg:   cfg,
		caps:  caps,
		sel:   selector.New(cfg, cat),
		mode:  mode,
		state: StateIdle,
	}
}

// CurrentState reports where the pipeline stands
func (o *Orchestrator) CurrentState() State { return o.state }

// Mode reports the execution mode for this session
func (o *Orchestrator) Mode() types.GenerationMode { return o.mode }

// Supervisor exposes degradation metrics for this session
func (o *Orchestrator) Supervisor() *supervisor.Supervisor { return o.caps.Supervisor }

// Script returns the current script artifact, nil before generation
func (o *Orchestrator) Script() *types.Script { return o.script }

// ShotList returns the current shot list artifact, nil before generation
func (o *Orchestrator) ShotList() *types.ShotList { return o.shotList }

// Plan returns the current production plan, nil before generation
func (o *Orchestrator) Plan() *types.ProductionPlan { return o.plan }

// SetRequirements accepts the brief and opens the session. In HITL mode,
// defaulted fields produce clarifying questions before the pipeline advances.
func (o *Orchestrator) SetRequirements(req *types.RequirementsDocument) (*StageResult, error) {
	if req == nil {
		return nil, &types.InsufficientInputError{Field: "requirements", Reason: "no requirements document supplied"}
	}
	if o.state != StateIdle {
		return nil, &types.InvalidStateError{Current: string(o.state), Requested: string(StateRequirementsSet)}
	}
	o.req = req

	if o.mode == types.ModeHITL {
		if questions := requirements.Questions(req); len(questions) > 0 {
			o.state = StateAwaitingClarification
			log.Printf("[orchestrator] requirements set, %d clarifying questions pending", len(questions))
			return &StageResult{
				Status:     StatusNeedsClarification,
				State:      o.state,
				Questions:  questions,
				NextAction: "provide_clarifications",
			}, nil
		}
	}

	o.state = StateRequirementsSet
	log.Printf("[orchestrator] requirements set: %s, %ds %s", req.ProjectName, req.DurationSeconds, req.VideoType)
	return &StageResult{Status: StatusReady, State: o.state, NextAction: "generate_script"}, nil
}

// ProvideClarifications merges the caller's answers into the requirements and
// resumes the pipeline
func (o *Orchestrator) ProvideClarifications(answers map[string]string) (*StageResult, error) {
	if o.state != StateAwaitingClarification {
		return nil, &types.InvalidStateError{Current: string(o.state), Requested: string(StateRequirementsSet)}
	}
	o.req = requirements.ApplyClarifications(o.req, answers)
	o.state = StateRequirementsSet
	log.Printf("[orchestrator] %d clarifications applied", len(answers))
	return &StageResult{Status: StatusReady, State: o.state, NextAction: "generate_script"}, nil
}

// GenerateScript runs the beat generator. Callable from RequirementsSet, or
// from AwaitingScriptApproval to regenerate a rejected script.
func (o *Orchestrator) GenerateScript() (*StageResult, error) {
	target := StateScriptGenerated
	if o.mode == types.ModeHITL {
		target = StateAwaitingScriptApproval
	}
	if !canTransition(o.state, target) {
		return nil, &types.InvalidStateError{Current: string(o.state), Requested: string(target)}
	}

	script, err := o.caps.Beats.Generate(o.req)
	if err != nil {
		return nil, fmt.Errorf("generate script: %w", err)
	}
	script.Mode = o.mode
	o.script = script
	o.state = target

	log.Printf("[orchestrator] 🎬 script %s: %d beats", script.ID, len(script.Beats))
	if o.mode == types.ModeHITL {
		return &StageResult{Status: StatusNeedsApproval, State: o.state, Script: script, NextAction: "approve_script"}, nil
	}
	return &StageResult{Status: StatusReady, State: o.state, Script: script, NextAction: "generate_shots"}, nil
}

// ApproveScript confirms the script under review
func (o *Orchestrator) ApproveScript() (*StageResult, error) {
	if o.state != StateAwaitingScriptApproval {
		return nil, &types.InvalidStateError{Current: string(o.state), Requested: string(StateScriptGenerated)}
	}
	o.state = StateScriptGenerated
	return &StageResult{Status: StatusReady, State: o.state, Script: o.script, NextAction: "generate_shots"}, nil
}

// GenerateShots runs the shot planner. Callable from ScriptGenerated, or from
// AwaitingShotApproval to regenerate a rejected shot list.
func (o *Orchestrator) GenerateShots() (*StageResult, error) {
	target := StateShotsGenerated
	if o.mode == types.ModeHITL {
		target = StateAwaitingShotApproval
	}
	if !canTransition(o.state, target) {
		return nil, &types.InvalidStateError{Current: string(o.state), Requested: string(target)}
	}

	list, err := o.caps.Shots.Plan(o.script)
	if err != nil {
		return nil, fmt.Errorf("generate shots: %w", err)
	}
	list.Mode = o.mode
	o.shotList = list
	o.state = target

	log.Printf("[orchestrator] 🎥 shot list %s: %d shots", list.ID, list.TotalShots)
	if o.mode == types.ModeHITL {
		return &StageResult{Status: StatusNeedsApproval, State: o.state, ShotList: list, NextAction: "approve_shots"}, nil
	}
	return &StageResult{Status: StatusReady, State: o.state, ShotList: list, NextAction: "generate_plan"}, nil
}

// ApproveShots confirms the shot list under review
func (o *Orchestrator) ApproveShots() (*StageResult, error) {
	if o.state != StateAwaitingShotApproval {
		return nil, &types.InvalidStateError{Current: string(o.state), Requested: string(StateShotsGenerated)}
	}
	o.state = StateShotsGenerated
	return &StageResult{Status: StatusReady, State: o.state, ShotList: o.shotList, NextAction: "generate_plan"}, nil
}

// GeneratePlan runs tool selection and aggregation. In YOLO mode this
// completes the pipeline; in HITL mode the plan awaits final approval.
func (o *Orchestrator) GeneratePlan(constraints types.Constraints) (*StageResult, error) {
	target := StateComplete
	if o.mode == types.ModeHITL {
		target = StatePlanGenerated
	}
	if !canTransition(o.state, target) {
		return nil, &types.InvalidStateError{Current: string(o.state), Requested: string(target)}
	}

	if constraints.QualityPriority == "" {
		constraints.QualityPriority = types.QualityPriority(o.cfg.Selector.QualityPriority)
	}
	plan, err := o.sel.GenerateProductionPlan(o.shotList, constraints)
	if err != nil {
		return nil, fmt.Errorf("generate plan: %w", err)
	}
	plan.Mode = o.mode
	o.plan = plan
	o.state = target

	log.Printf("[orchestrator] 💰 plan %s: $%.2f, %d shots", plan.ID, plan.TotalCostUSD(), len(plan.ShotPlans))
	if o.mode == types.ModeHITL {
		return &StageResult{Status: StatusNeedsApproval, State: o.state, Plan: plan, NextAction: "approve_plan"}, nil
	}
	return &StageResult{Status: StatusComplete, State: o.state, Plan: plan}, nil
}

// ApprovePlan confirms the production plan and completes the pipeline
func (o *Orchestrator) ApprovePlan() (*StageResult, error) {
	if o.state != StatePlanGenerated {
		return nil, &types.InvalidStateError{Current: string(o.state), Requested: string(StateComplete)}
	}
	o.state = StateComplete
	return &StageResult{Status: StatusComplete, State: o.state, Plan: o.plan}, nil
}

// RunFullPipeline is the YOLO convenience entry point: requirements through
// production plan in one call, no pauses.
func (o *Orchestrator) RunFullPipeline(req *types.RequirementsDocument, constraints types.Constraints) (*StageResult, error) {
	if o.state != StateIdle {
		return nil, &types.InvalidStateError{Current: string(o.state), Requested: string(StateRequirementsSet)}
	}
	o.mode = types.ModeYOLO

	if _, err := o.SetRequirements(req); err != nil {
		return nil, err
	}
	if _, err := o.GenerateScript(); err != nil {
		return nil, err
	}
	if _, err := o.GenerateShots(); err != nil {
		return nil, err
	}
	result, err := o.GeneratePlan(constraints)
	if err != nil {
		return nil, err
	}
	log.Printf("[orchestrator] ✅ pipeline complete")
	return result, nil
}
