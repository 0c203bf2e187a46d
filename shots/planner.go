// Package shots expands a script's beats into a shot list with technical
// metadata, preserving each beat's duration across its shots.
package shots

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"video-planner/config"
	"video-planner/types"
)

// Planner derives shots from beats
type Planner struct {
	cfg *config.Config
}

// New creates a shot Planner
func New(cfg *config.Config) *Planner {
	return &Planner{cfg: cfg}
}

// complementOf drives the deterministic shot-type alternation inside a beat:
// wide framings step toward medium, medium toward closeup, closeup back to
// wide, so multi-shot beats keep visual variety without randomness.
var complementOf = map[types.ShotType]types.ShotType{
	types.ShotExtremeWide:    types.ShotMediumWide,
	types.ShotWide:           types.ShotMedium,
	types.ShotMediumWide:     types.ShotMedium,
	types.ShotMedium:         types.ShotCloseup,
	types.ShotMediumCloseup:  types.ShotCloseup,
	types.ShotCloseup:        types.ShotWide,
	types.ShotExtremeCloseup: types.ShotCloseup,
}

// Plan expands every beat into one or more shots. Beats shorter than the
// minimum shot length are never split; that yields a warning, not an error.
func (p *Planner) Plan(script *types.Script) (*types.ShotList, error) {
	if script == nil || len(script.Beats) == 0 {
		return nil, &types.InsufficientInputError{Field: "beats", Reason: "script has no beats to plan"}
	}

	list := &types.ShotList{
		ID:        "shotlist_" + uuid.NewString()[:8],
		ScriptID:  script.ID,
		Mode:      script.Mode,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	number := 0
	for _, beat := range script.Beats {
		count := p.shotCount(beat)
		if beat.DurationSeconds < p.cfg.Shots.MinShotSeconds {
			warning := fmt.Sprintf("beat %s is %ds, below the %ds minimum; kept as a single shot",
				beat.ID, beat.DurationSeconds, p.cfg.Shots.MinShotSeconds)
			list.Warnings = append(list.Warnings, warning)
			log.Printf("[shots] ⚠️  %s", warning)
		}

		base := beat.DurationSeconds / count
		used := 0
		shotType := beat.Visual.ShotType
		for i := 0; i < count; i++ {
			seconds := base
			if i == count-1 {
				seconds = beat.DurationSeconds - used // last shot absorbs the remainder
			}
			used += seconds
			number++
			if i > 0 {
				shotType = complementOf[shotType]
			}
			list.Shots = append(list.Shots, p.buildShot(beat, number, i, shotType, seconds))
		}
	}

	list.TotalShots = len(list.Shots)
	list.Assets = summarize(list.Shots)
	log.Printf("[shots] planned %d shots from %d beats (%d VFX)",
		list.TotalShots, len(script.Beats), list.Assets.VFXShots)
	return list, nil
}

func (p *Planner) buildShot(beat types.Beat, number, index int, shotType types.ShotType, seconds int) types.Shot {
	camera := beat.Visual.CameraMovement
	if index > 0 {
		// follow-up shots hold steady on short cuts, push on longer ones
		camera = types.CameraStatic
		if seconds >= 4 {
			camera = types.CameraSlowPush
		}
	}

	mood := "neutral"
	if beat.Visual.Lighting == "professional_bright" {
		mood = "bright"
	}

	theme := string(beat.Narrative.Position)
	if len(beat.Visual.Keywords) > 0 {
		theme = beat.Visual.Keywords[0]
	}

	return types.Shot{
		ID:              fmt.Sprintf("shot_%03d", number),
		BeatID:          beat.ID,
		Number:          number,
		Type:            shotType,
		CameraMovement:  camera,
		DurationSeconds: seconds,
		Lighting: types.Lighting{
			TimeOfDay: "day",
			Mood:      mood,
		},
		ComplexityScore:            complexityScore(beat),
		RequiresVFX:                beat.Production.RequiresVFX,
		EstimatedGenerationSeconds: p.cfg.Shots.BaseGenerationSeconds + seconds*p.cfg.Shots.PerSecondFactor,
		Storyboard: fmt.Sprintf("%s shot for the %s beat: %s",
			shotType, beat.Narrative.Position, beat.Script.Action),
		ImagePrompt: fmt.Sprintf("%s shot, %s, professional cinematography, %s mood, %s theme",
			shotType, beat.Visual.Lighting, beat.Emotion.AudienceEmotion, theme),
	}
}

// shotCount maps beat complexity and duration onto a shot count: low
// complexity stays a single shot, medium splits once given room, high or
// VFX-flagged beats split up to three ways. Splits never push a shot below
// the minimum shot length.
func (p *Planner) shotCount(beat types.Beat) int {
	min := p.cfg.Shots.MinShotSeconds
	if beat.DurationSeconds < min {
		return 1
	}

	var count int
	switch {
	case beat.Production.RequiresVFX || beat.Production.Complexity == types.ComplexityHigh:
		count = 2
		if beat.DurationSeconds >= 8 {
			count = 3
		}
	case beat.Production.Complexity == types.ComplexityMedium:
		count = 1
		if beat.DurationSeconds >= 6 {
			count = 2
		}
	default:
		count = 1
	}

	for count > 1 && beat.DurationSeconds/count < min {
		count--
	}
	return count
}

// complexityScore weights emotional intensity, with VFX imposing a floor of 7
func complexityScore(beat types.Beat) int {
	score := (8*beat.Emotion.Intensity + 20) / 10
	if beat.Production.RequiresVFX && score < 7 {
		score = 7
	}
	if score > 10 {
		score = 10
	}
	if score < 1 {
		score = 1
	}
	return score
}

func summarize(shots []types.Shot) types.AssetSummary {
	summary := types.AssetSummary{
		TotalShots:        len(shots),
		ShotsByType:       map[string]int{},
		ShotsByComplexity: map[string]int{},
	}
	totalSeconds := 0
	for _, s := range shots {
		summary.ShotsByType[string(s.Type)]++
		summary.ShotsByComplexity[complexityBucket(s.ComplexityScore)]++
		if s.RequiresVFX {
			summary.VFXShots++
		}
		totalSeconds += s.EstimatedGenerationSeconds
	}
	summary.EstimatedTotalMinutes = float64(totalSeconds) / 60
	return summary
}

func complexityBucket(score int) string {
	switch {
	case score <= 3:
		return string(types.ComplexityLow)
	case score <= 6:
		return string(types.ComplexityMedium)
	default:
		return string(types.ComplexityHigh)
	}
}
