package selector

import (
	"encoding/json"
	"errors"
	"testing"

	"video-planner/config"
	"video-planner/types"
)

func testShot(id string, shotType types.ShotType, seconds int, vfx bool) types.Shot {
	return types.Shot{
		ID:                         id,
		BeatID:                     "1.0",
		Number:                     1,
		Type:                       shotType,
		CameraMovement:             types.CameraStatic,
		DurationSeconds:            seconds,
		ComplexityScore:            5,
		RequiresVFX:                vfx,
		EstimatedGenerationSeconds: 45 + seconds*2,
	}
}

func testShotList(shots ...types.Shot) *types.ShotList {
	return &types.ShotList{
		ID:         "shotlist_ab12cd34",
		ScriptID:   "script_test",
		Mode:       types.ModeYOLO,
		TotalShots: len(shots),
		Shots:      shots,
		CreatedAt:  "2026-08-01T12:00:00Z",
	}
}

func TestSelectWorkflow_HighQualityNeverWorseThanBudget(t *testing.T) {
	s := New(config.Default(), DefaultCatalog())
	shotTypes := []types.ShotType{
		types.ShotExtremeWide, types.ShotWide, types.ShotMediumWide,
		types.ShotMedium, types.ShotMediumCloseup, types.ShotCloseup,
	}
	for _, st := range shotTypes {
		shot := testShot("shot_001", st, 6, false)
		high, err := s.SelectWorkflow(shot, types.Constraints{QualityPriority: types.QualityHigh})
		if err != nil {
			t.Fatalf("%s high: %v", st, err)
		}
		budget, err := s.SelectWorkflow(shot, types.Constraints{QualityPriority: types.QualityBudget})
		if err != nil {
			t.Fatalf("%s budget: %v", st, err)
		}
		if high.QualityScore < budget.QualityScore {
			t.Fatalf("%s: high priority picked quality %.1f, budget picked %.1f",
				st, high.QualityScore, budget.QualityScore)
		}
	}
}

func TestSelectWorkflow_VFXShotsAlwaysChainEffectsStep(t *testing.T) {
	s := New(config.Default(), DefaultCatalog())
	wf, err := s.SelectWorkflow(testShot("shot_001", types.ShotWide, 6, true), types.Constraints{})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(wf.Steps) != 2 {
		t.Fatalf("VFX shot needs a base step plus an effects step, got %d steps", len(wf.Steps))
	}
	vfxStep := wf.Steps[1]
	if vfxStep.Category != string(CategoryVFX) {
		t.Fatalf("second step should be the effects pass, got category %q", vfxStep.Category)
	}
	if vfxStep.Kind != types.KindVideoToVideo {
		t.Fatalf("effects pass should be video_to_video, got %s", vfxStep.Kind)
	}
	if vfxStep.CostUSD != 0.15 {
		t.Fatalf("effects pass cost should be the fixed $0.15, got $%.2f", vfxStep.CostUSD)
	}
}

func TestSelectWorkflow_VFXCategoryNeverSelectedAsBase(t *testing.T) {
	s := New(config.Default(), DefaultCatalog())
	for _, st := range []types.ShotType{types.ShotWide, types.ShotCloseup, types.ShotMedium} {
		wf, err := s.SelectWorkflow(testShot("shot_001", st, 4, false), types.Constraints{})
		if err != nil {
			t.Fatalf("%s: %v", st, err)
		}
		if wf.Steps[0].Category == string(CategoryVFX) {
			t.Fatalf("%s: effects capability selected for base generation", st)
		}
	}
}

func TestPlanShot_BudgetFallThrough(t *testing.T) {
	s := New(config.Default(), DefaultCatalog())
	sp, err := s.PlanShot(testShot("shot_001", types.ShotWide, 6, false),
		types.Constraints{MaxCostPerShotUSD: 0.01})
	if err != nil {
		t.Fatalf("plan shot: %v", err)
	}
	if !sp.OverBudget {
		t.Fatal("no catalog entry fits $0.01, plan must be flagged over budget")
	}
	// the flagged plan still carries the cheapest candidate
	for _, alt := range sp.Alternatives {
		if alt.TotalCostUSD < sp.Primary.TotalCostUSD {
			t.Fatalf("primary $%.2f is not the cheapest (alternative at $%.2f)",
				sp.Primary.TotalCostUSD, alt.TotalCostUSD)
		}
	}
}

func TestPlanShot_WithinBudgetNotFlagged(t *testing.T) {
	s := New(config.Default(), DefaultCatalog())
	sp, err := s.PlanShot(testShot("shot_001", types.ShotMedium, 5, false),
		types.Constraints{MaxCostPerShotUSD: 10})
	if err != nil {
		t.Fatalf("plan shot: %v", err)
	}
	if sp.OverBudget {
		t.Fatal("a $10 cap fits every candidate, nothing should be flagged")
	}
	if len(sp.Alternatives) > config.Default().Selector.MaxAlternatives {
		t.Fatalf("alternatives exceed the configured cap: %d", len(sp.Alternatives))
	}
}

func TestGenerateProductionPlan_Deterministic(t *testing.T) {
	list := testShotList(
		testShot("shot_001", types.ShotWide, 6, true),
		testShot("shot_002", types.ShotCloseup, 4, false),
		testShot("shot_003", types.ShotMedium, 8, false),
	)
	constraints := types.Constraints{QualityPriority: types.QualityBalanced, MaxCostPerShotUSD: 0.5}

	var outputs [][]byte
	for i := 0; i < 2; i++ {
		s := New(config.Default(), DefaultCatalog())
		plan, err := s.GenerateProductionPlan(list, constraints)
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		data, err := json.Marshal(plan)
		if err != nil {
			t.Fatalf("run %d marshal: %v", i, err)
		}
		outputs = append(outputs, data)
	}
	if string(outputs[0]) != string(outputs[1]) {
		t.Fatal("identical inputs produced different plans")
	}
}

func TestGenerateProductionPlan_EmptyListYieldsZeroPlan(t *testing.T) {
	s := New(config.Default(), DefaultCatalog())
	plan, err := s.GenerateProductionPlan(testShotList(), types.Constraints{})
	if err != nil {
		t.Fatalf("empty shot list is a legitimate state: %v", err)
	}
	if plan.TotalCostUSD() != 0 || plan.TotalTimeSeconds() != 0 {
		t.Fatalf("empty plan should cost nothing, got $%.2f / %ds",
			plan.TotalCostUSD(), plan.TotalTimeSeconds())
	}

	var insufficient *types.InsufficientInputError
	if _, err := s.GenerateProductionPlan(nil, types.Constraints{}); !errors.As(err, &insufficient) {
		t.Fatalf("nil shot list must fail, got %v", err)
	}
}

func TestGenerateProductionPlan_WarningsSurfaceOnReturnedObject(t *testing.T) {
	s := New(config.Default(), DefaultCatalog())
	list := testShotList(
		testShot("shot_001", types.ShotWide, 6, false),
		testShot("shot_002", types.ShotWide, 6, false),
	)
	plan, err := s.GenerateProductionPlan(list, types.Constraints{
		MaxCostPerShotUSD: 0.01,
		MaxTotalCostUSD:   0.01,
	})
	if err != nil {
		t.Fatalf("over-budget is a warning, not an error: %v", err)
	}
	if len(plan.Warnings) == 0 {
		t.Fatal("budget violations must be retrievable from the plan itself")
	}
	if len(plan.OverBudgetShots()) != 2 {
		t.Fatalf("expected both shots flagged, got %v", plan.OverBudgetShots())
	}
}

func TestRank_UntaggedShotTypeFallsBackToMedium(t *testing.T) {
	cat := Catalog{
		Version: SchemaVersion,
		Capabilities: []Capability{
			{ID: "med-only", Name: "Medium Only", Category: CategoryGeneral,
				QualityScore: 8.0, CostPerSecond: 0.05,
				BestFor: []types.ShotType{types.ShotMedium}},
		},
	}
	s := New(config.Default(), cat)
	wf, err := s.SelectWorkflow(testShot("shot_001", types.ShotExtremeWide, 5, false), types.Constraints{})
	if err != nil {
		t.Fatalf("expected medium fallback to serve the shot: %v", err)
	}
	if wf.Steps[0].Capability != "Medium Only" {
		t.Fatalf("expected the medium-tagged capability, got %s", wf.Steps[0].Capability)
	}
}

func TestBuildWorkflow_ShortShotsUseImageToVideo(t *testing.T) {
	s := New(config.Default(), DefaultCatalog())
	short, err := s.SelectWorkflow(testShot("shot_001", types.ShotMedium, 4, false), types.Constraints{})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if short.Steps[0].Kind != types.KindImageToVideo {
		t.Fatalf("a 4s shot should use image_to_video, got %s", short.Steps[0].Kind)
	}
	long, err := s.SelectWorkflow(testShot("shot_002", types.ShotMedium, 8, false), types.Constraints{})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if long.Steps[0].Kind != types.KindTextToVideo {
		t.Fatalf("an 8s shot should use text_to_video, got %s", long.Steps[0].Kind)
	}
}
