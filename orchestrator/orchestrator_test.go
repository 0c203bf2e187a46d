package orchestrator

import (
	"errors"
	"testing"

	"video-planner/config"
	"video-planner/supervisor"
	"video-planner/types"
)

func testBrief() *types.RequirementsDocument {
	return &types.RequirementsDocument{
		ProjectName:     "Acme Launch",
		VideoType:       types.VideoProductDemo,
		DurationSeconds: 60,
		TargetAudience:  "Business professionals",
		Tone:            "professional",
		CoreMessage:     "Acme saves you hours every week",
		CallToAction:    "Start Free Trial",
	}
}

func newTestOrchestrator(t *testing.T, cfg *config.Config, mode types.GenerationMode) *Orchestrator {
	t.Helper()
	orch, err := New(cfg, mode)
	if err != nil {
		t.Fatalf("new orchestrator: %v", err)
	}
	return orch
}

func TestRunFullPipeline_Completes(t *testing.T) {
	orch := newTestOrchestrator(t, config.Default(), types.ModeYOLO)

	result, err := orch.RunFullPipeline(testBrief(), types.Constraints{})
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}
	if result.Status != StatusComplete {
		t.Fatalf("expected complete, got %s", result.Status)
	}
	if orch.CurrentState() != StateComplete {
		t.Fatalf("expected state complete, got %s", orch.CurrentState())
	}
	if result.Plan == nil || len(result.Plan.ShotPlans) == 0 {
		t.Fatal("pipeline must yield a populated production plan")
	}
	if result.Plan.TotalCostUSD() <= 0 {
		t.Fatal("a 60s brief should cost something to produce")
	}
	if orch.Script() == nil || orch.ShotList() == nil {
		t.Fatal("intermediate artifacts must remain accessible")
	}
}

func TestStageOrder_Enforced(t *testing.T) {
	orch := newTestOrchestrator(t, config.Default(), types.ModeYOLO)

	var invalid *types.InvalidStateError
	if _, err := orch.GenerateShots(); !errors.As(err, &invalid) {
		t.Fatalf("shots before script must fail with InvalidStateError, got %v", err)
	}
	if _, err := orch.GeneratePlan(types.Constraints{}); !errors.As(err, &invalid) {
		t.Fatalf("plan before shots must fail with InvalidStateError, got %v", err)
	}
	if _, err := orch.ApproveScript(); !errors.As(err, &invalid) {
		t.Fatalf("approving a missing script must fail, got %v", err)
	}
	if invalid.Current != string(StateIdle) {
		t.Fatalf("error should name the current state, got %q", invalid.Current)
	}
}

func TestStageReinvocation_RejectedPastItsState(t *testing.T) {
	orch := newTestOrchestrator(t, config.Default(), types.ModeYOLO)
	if _, err := orch.RunFullPipeline(testBrief(), types.Constraints{}); err != nil {
		t.Fatalf("pipeline: %v", err)
	}

	var invalid *types.InvalidStateError
	if _, err := orch.SetRequirements(testBrief()); !errors.As(err, &invalid) {
		t.Fatalf("duplicate set_requirements must fail, got %v", err)
	}
	if _, err := orch.GenerateScript(); !errors.As(err, &invalid) {
		t.Fatalf("regenerating past completion must fail, got %v", err)
	}
	if _, err := orch.GeneratePlan(types.Constraints{}); !errors.As(err, &invalid) {
		t.Fatalf("duplicate generate_plan must fail, got %v", err)
	}
}

func TestHITLFlow_GatesEveryStage(t *testing.T) {
	orch := newTestOrchestrator(t, config.Default(), types.ModeHITL)

	brief := testBrief()
	brief.CoreMessage = ""
	result, err := orch.SetRequirements(brief)
	if err != nil {
		t.Fatalf("set requirements: %v", err)
	}
	if result.Status != StatusNeedsClarification {
		t.Fatalf("HITL with gaps should ask questions, got %s", result.Status)
	}
	if len(result.Questions) == 0 {
		t.Fatal("needs_clarification must carry the questions")
	}

	if _, err := orch.ProvideClarifications(map[string]string{
		"core_message":     "Acme cuts editing time in half",
		"midpoint_emotion": "inspired",
	}); err != nil {
		t.Fatalf("provide clarifications: %v", err)
	}

	result, err = orch.GenerateScript()
	if err != nil {
		t.Fatalf("generate script: %v", err)
	}
	if result.Status != StatusNeedsApproval || result.Script == nil {
		t.Fatalf("HITL script should pause for approval, got %s", result.Status)
	}

	// rejecting means regenerating from the same awaiting state
	firstID := result.Script.ID
	result, err = orch.GenerateScript()
	if err != nil {
		t.Fatalf("regenerate script: %v", err)
	}
	if result.Script.ID == firstID {
		t.Fatal("regeneration should produce a fresh script")
	}

	if _, err := orch.ApproveScript(); err != nil {
		t.Fatalf("approve script: %v", err)
	}

	result, err = orch.GenerateShots()
	if err != nil {
		t.Fatalf("generate shots: %v", err)
	}
	if result.Status != StatusNeedsApproval {
		t.Fatalf("HITL shots should pause for approval, got %s", result.Status)
	}
	if _, err := orch.ApproveShots(); err != nil {
		t.Fatalf("approve shots: %v", err)
	}

	result, err = orch.GeneratePlan(types.Constraints{})
	if err != nil {
		t.Fatalf("generate plan: %v", err)
	}
	if result.Status != StatusNeedsApproval || orch.CurrentState() != StatePlanGenerated {
		t.Fatalf("HITL plan should pause for approval, got %s in %s", result.Status, orch.CurrentState())
	}

	result, err = orch.ApprovePlan()
	if err != nil {
		t.Fatalf("approve plan: %v", err)
	}
	if result.Status != StatusComplete || orch.CurrentState() != StateComplete {
		t.Fatalf("expected completion, got %s in %s", result.Status, orch.CurrentState())
	}
	if orch.Plan().Mode != types.ModeHITL {
		t.Fatalf("plan should record the HITL mode, got %s", orch.Plan().Mode)
	}
}

func TestYOLO_SkipsClarifications(t *testing.T) {
	orch := newTestOrchestrator(t, config.Default(), types.ModeYOLO)

	brief := testBrief()
	brief.DefaultedFields = []string{"tone", "core_message"}
	result, err := orch.SetRequirements(brief)
	if err != nil {
		t.Fatalf("set requirements: %v", err)
	}
	if result.Status != StatusReady {
		t.Fatalf("YOLO never pauses for clarification, got %s", result.Status)
	}
}

func TestResolve_ExplicitOverrideDegrades(t *testing.T) {
	cfg := config.Default()
	cfg.Pipeline.DisableEnhanced = []string{"beats", "shots"}

	orch := newTestOrchestrator(t, cfg, types.ModeYOLO)
	if _, err := orch.RunFullPipeline(testBrief(), types.Constraints{}); err != nil {
		t.Fatalf("degraded pipeline must still complete: %v", err)
	}

	metrics := orch.Supervisor().Metrics()
	if metrics.Mode != supervisor.ModeDegraded {
		t.Fatalf("expected degraded mode, got %s", metrics.Mode)
	}
	if metrics.FallbackCount != 2 {
		t.Fatalf("expected 2 fallbacks, got %d", metrics.FallbackCount)
	}
	if metrics.FallbackByComponent["beats"] != 1 || metrics.FallbackByComponent["shots"] != 1 {
		t.Fatalf("per-component fallbacks wrong: %+v", metrics.FallbackByComponent)
	}
}

func TestResolve_StrictModeBlocksStartup(t *testing.T) {
	cfg := config.Default()
	cfg.Pipeline.StrictMode = true
	cfg.Pipeline.DisableEnhanced = []string{"beats"}

	if _, err := New(cfg, types.ModeYOLO); err == nil {
		t.Fatal("strict mode must refuse to start degraded")
	}
}

func TestDegradedPipeline_SameContracts(t *testing.T) {
	cfg := config.Default()
	cfg.Pipeline.DisableEnhanced = []string{"beats", "shots"}
	degraded := newTestOrchestrator(t, cfg, types.ModeYOLO)

	result, err := degraded.RunFullPipeline(testBrief(), types.Constraints{})
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}

	script := degraded.Script()
	total := 0
	for _, beat := range script.Beats {
		total += beat.DurationSeconds
	}
	if total != 60 {
		t.Fatalf("degraded beats must still honor the duration contract, got %ds", total)
	}
	if result.Plan.TotalCostUSD() <= 0 {
		t.Fatal("degraded pipeline must still produce a costed plan")
	}
}
