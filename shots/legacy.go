package shots

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"video-planner/config"
	"video-planner/types"
)

// LegacyPlanner is the reduced-capability fallback: exactly one shot per
// beat, metadata inherited verbatim. Same contract as Planner.
type LegacyPlanner struct {
	cfg *config.Config
}

// NewLegacy creates the fallback shot planner
func NewLegacy(cfg *config.Config) *LegacyPlanner {
	return &LegacyPlanner{cfg: cfg}
}

// Plan emits one shot per beat
func (p *LegacyPlanner) Plan(script *types.Script) (*types.ShotList, error) {
	if script == nil || len(script.Beats) == 0 {
		return nil, &types.InsufficientInputError{Field: "beats", Reason: "script has no beats to plan"}
	}

	list := &types.ShotList{
		ID:        "shotlist_" + uuid.NewString()[:8],
		ScriptID:  script.ID,
		Mode:      script.Mode,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	for i, beat := range script.Beats {
		list.Shots = append(list.Shots, types.Shot{
			ID:              fmt.Sprintf("shot_%03d", i+1),
			BeatID:          beat.ID,
			Number:          i + 1,
			Type:            beat.Visual.ShotType,
			CameraMovement:  beat.Visual.CameraMovement,
			DurationSeconds: beat.DurationSeconds,
			Lighting:        types.Lighting{TimeOfDay: "day", Mood: "neutral"},
			ComplexityScore: complexityScore(beat),
			RequiresVFX:     beat.Production.RequiresVFX,
			EstimatedGenerationSeconds: p.cfg.Shots.BaseGenerationSeconds +
				beat.DurationSeconds*p.cfg.Shots.PerSecondFactor,
			Storyboard:  fmt.Sprintf("%s shot for beat %s", beat.Visual.ShotType, beat.ID),
			ImagePrompt: fmt.Sprintf("%s shot, %s", beat.Visual.ShotType, beat.Visual.Lighting),
		})
	}

	list.TotalShots = len(list.Shots)
	list.Assets = summarize(list.Shots)
	log.Printf("[shots] legacy planner emitted %d shots", list.TotalShots)
	return list, nil
}
