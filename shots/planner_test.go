package shots

import (
	"errors"
	"testing"

	"video-planner/config"
	"video-planner/types"
)

func testBeat(id string, seconds, intensity int, complexity types.Complexity, vfx bool) types.Beat {
	return types.Beat{
		ID:              id,
		DurationSeconds: seconds,
		Script:          types.ScriptContent{Action: "Presenter demonstrates the product"},
		Visual: types.VisualRequirements{
			ShotType:       types.ShotMedium,
			CameraMovement: types.CameraDolly,
			Lighting:       "professional_bright",
			Keywords:       []string{"launch"},
			Complexity:     complexity,
		},
		Emotion: types.EmotionalContext{
			AudienceEmotion: "interested",
			Intensity:       intensity,
		},
		Narrative:  types.NarrativeFunction{Position: types.PositionMidpoint},
		Production: types.ProductionMetadata{Complexity: complexity, RequiresVFX: vfx},
	}
}

func testScript(beats ...types.Beat) *types.Script {
	return &types.Script{ID: "script_test", Mode: types.ModeYOLO, Beats: beats}
}

func TestPlan_BeatDurationPreserved(t *testing.T) {
	p := New(config.Default())
	script := testScript(
		testBeat("1.0", 3, 7, types.ComplexityHigh, true),
		testBeat("2.0", 7, 5, types.ComplexityMedium, false),
		testBeat("3.0", 9, 8, types.ComplexityHigh, false),
		testBeat("4.0", 5, 3, types.ComplexityLow, false),
	)
	list, err := p.Plan(script)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}

	perBeat := map[string]int{}
	for _, shot := range list.Shots {
		perBeat[shot.BeatID] += shot.DurationSeconds
	}
	for _, beat := range script.Beats {
		got := perBeat[beat.ID]
		if got < beat.DurationSeconds-1 || got > beat.DurationSeconds+1 {
			t.Fatalf("beat %s: shots total %ds, beat is %ds", beat.ID, got, beat.DurationSeconds)
		}
	}
	if list.TotalShots != len(list.Shots) {
		t.Fatalf("TotalShots %d does not match %d shots", list.TotalShots, len(list.Shots))
	}
}

func TestPlan_ShotCountFollowsComplexity(t *testing.T) {
	p := New(config.Default())
	cases := []struct {
		beat types.Beat
		want int
	}{
		{testBeat("1.0", 10, 3, types.ComplexityLow, false), 1},
		{testBeat("2.0", 4, 5, types.ComplexityMedium, false), 1},
		{testBeat("3.0", 6, 5, types.ComplexityMedium, false), 2},
		{testBeat("4.0", 6, 8, types.ComplexityHigh, false), 2},
		{testBeat("5.0", 8, 8, types.ComplexityHigh, false), 3},
		{testBeat("6.0", 8, 5, types.ComplexityMedium, true), 3}, // VFX treated as high
	}
	for _, tc := range cases {
		list, err := p.Plan(testScript(tc.beat))
		if err != nil {
			t.Fatalf("beat %s: %v", tc.beat.ID, err)
		}
		if len(list.Shots) != tc.want {
			t.Fatalf("beat %s (%ds, %s): expected %d shots, got %d",
				tc.beat.ID, tc.beat.DurationSeconds, tc.beat.Production.Complexity, tc.want, len(list.Shots))
		}
	}
}

func TestPlan_ShortBeatSingleShotWithWarning(t *testing.T) {
	p := New(config.Default())
	list, err := p.Plan(testScript(testBeat("1.0", 1, 9, types.ComplexityHigh, true)))
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(list.Shots) != 1 {
		t.Fatalf("a 1s beat must stay a single shot, got %d", len(list.Shots))
	}
	if len(list.Warnings) != 1 {
		t.Fatalf("expected one warning, got %v", list.Warnings)
	}
}

func TestPlan_SplitShotsAlternateTypes(t *testing.T) {
	p := New(config.Default())
	list, err := p.Plan(testScript(testBeat("1.0", 9, 8, types.ComplexityHigh, false)))
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(list.Shots) < 2 {
		t.Fatalf("expected a split, got %d shots", len(list.Shots))
	}
	if list.Shots[0].Type == list.Shots[1].Type {
		t.Fatalf("consecutive shots share type %s", list.Shots[0].Type)
	}
}

func TestComplexityScore_VFXFloor(t *testing.T) {
	calm := testBeat("1.0", 5, 1, types.ComplexityLow, true)
	if got := complexityScore(calm); got < 7 {
		t.Fatalf("VFX beat scored %d, floor is 7", got)
	}
	intense := testBeat("2.0", 5, 10, types.ComplexityHigh, false)
	if got := complexityScore(intense); got != 10 {
		t.Fatalf("intensity 10 should score 10, got %d", got)
	}
	quiet := testBeat("3.0", 5, 1, types.ComplexityLow, false)
	if got := complexityScore(quiet); got < 1 || got > 3 {
		t.Fatalf("intensity 1 should land in the low bucket, got %d", got)
	}
}

func TestPlan_RejectsEmptyScript(t *testing.T) {
	p := New(config.Default())
	var insufficient *types.InsufficientInputError
	if _, err := p.Plan(nil); !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientInputError for nil script, got %v", err)
	}
	if _, err := p.Plan(testScript()); !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientInputError for empty script, got %v", err)
	}
}

func TestPlan_AssetSummary(t *testing.T) {
	p := New(config.Default())
	list, err := p.Plan(testScript(
		testBeat("1.0", 8, 8, types.ComplexityHigh, true),
		testBeat("2.0", 5, 3, types.ComplexityLow, false),
	))
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if list.Assets.TotalShots != len(list.Shots) {
		t.Fatalf("summary counts %d shots, list has %d", list.Assets.TotalShots, len(list.Shots))
	}
	if list.Assets.VFXShots == 0 {
		t.Fatal("expected VFX shots in the summary")
	}
	if list.Assets.EstimatedTotalMinutes <= 0 {
		t.Fatal("expected a positive generation estimate")
	}
}

func TestLegacyPlan_OneShotPerBeat(t *testing.T) {
	p := NewLegacy(config.Default())
	script := testScript(
		testBeat("1.0", 8, 8, types.ComplexityHigh, true),
		testBeat("2.0", 5, 3, types.ComplexityLow, false),
		testBeat("3.0", 12, 6, types.ComplexityMedium, false),
	)
	list, err := p.Plan(script)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(list.Shots) != len(script.Beats) {
		t.Fatalf("legacy planner must emit one shot per beat, got %d for %d beats",
			len(list.Shots), len(script.Beats))
	}
	for i, shot := range list.Shots {
		if shot.DurationSeconds != script.Beats[i].DurationSeconds {
			t.Fatalf("shot %s: duration %d, beat is %d",
				shot.ID, shot.DurationSeconds, script.Beats[i].DurationSeconds)
		}
	}
	// legacy path still honors the VFX complexity floor
	if list.Shots[0].ComplexityScore < 7 {
		t.Fatalf("VFX shot scored %d, floor is 7", list.Shots[0].ComplexityScore)
	}
}
