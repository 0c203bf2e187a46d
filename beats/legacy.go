package beats

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"video-planner/config"
	"video-planner/types"
)

// LegacyGenerator is the reduced-capability fallback: an even split across
// the structural positions with minimal metadata. It honors the same timing
// and contiguity contracts as Generator, without template synthesis.
type LegacyGenerator struct {
	cfg *config.Config
}

// NewLegacy creates the fallback beat generator
func NewLegacy(cfg *config.Config) *LegacyGenerator {
	return &LegacyGenerator{cfg: cfg}
}

// Generate produces an evenly allocated Script from a brief
func (g *LegacyGenerator) Generate(req *types.RequirementsDocument) (*types.Script, error) {
	if req == nil {
		return nil, &types.InsufficientInputError{Field: "requirements", Reason: "no brief supplied"}
	}
	if req.DurationSeconds <= 0 {
		return nil, &types.InsufficientInputError{
			Field:  "duration_seconds",
			Reason: fmt.Sprintf("must be positive, got %d", req.DurationSeconds),
		}
	}

	videoType := req.VideoType
	if !types.KnownVideoType(videoType) {
		videoType = types.VideoGeneral
	}

	duration := req.DurationSeconds
	specs := eightPart
	if duration < g.cfg.Beats.SkeletonBelowSeconds {
		specs = skeleton
	}
	count := len(specs)
	if duration < count {
		count = duration // never emit zero-length beats
	}

	script := &types.Script{
		ID:   "script_" + uuid.NewString()[:8],
		Mode: types.ModeYOLO,
		Metadata: types.ScriptMetadata{
			Title:           req.ProjectName,
			VideoType:       videoType,
			DurationSeconds: duration,
			TargetAudience:  req.TargetAudience,
			CoreMessage:     req.CoreMessage,
			Tone:            req.Tone,
			CreatedAt:       time.Now().UTC().Format(time.RFC3339),
		},
		Structure: types.ScriptStructure{Breakdown: map[string]types.Segment{}},
	}

	base := duration / count
	start := 0
	for i := 0; i < count; i++ {
		spec := specs[i]
		end := start + base
		if i == count-1 {
			end = duration
		}
		script.Structure.Breakdown[string(spec.position)] = types.Segment{Start: start, End: end}
		script.Beats = append(script.Beats, types.Beat{
			ID:              fmt.Sprintf("%d.0", i+1),
			SequenceOrder:   i + 1,
			TimecodeStart:   Timecode(start),
			TimecodeEnd:     Timecode(end),
			StartSeconds:    start,
			EndSeconds:      end,
			DurationSeconds: end - start,
			StoryQuestion:   spec.question,
			StoryAnswer:     spec.answer,
			Script: types.ScriptContent{
				Action:    fmt.Sprintf("%s segment", spec.position),
				Voiceover: req.CoreMessage,
			},
			Visual: types.VisualRequirements{
				ShotType:       types.ShotMedium,
				CameraMovement: types.CameraStatic,
				Location:       "studio",
				Lighting:       "professional_neutral",
				Complexity:     types.ComplexityMedium,
			},
			Audio: types.AudioRequirements{MusicMood: req.Tone},
			Emotion: types.EmotionalContext{
				CharacterEmotion: "neutral",
				AudienceEmotion:  "interested",
				ArcPosition:      string(spec.position),
				Intensity:        5,
			},
			Narrative: types.NarrativeFunction{
				Position:   spec.position,
				BeatNumber: i + 1,
				Purpose:    spec.purpose,
			},
			Production: types.ProductionMetadata{
				Complexity:        types.ComplexityMedium,
				SuggestedWorkflow: types.KindTextToVideo,
			},
		})
		start = end
	}

	script.TotalBeatCount = len(script.Beats)
	script.Structure.TotalBeats = len(script.Beats)
	script.Summary = fmt.Sprintf("%s video, %d evenly allocated beats over %ds (reduced generator)",
		videoType, len(script.Beats), duration)
	script.Timing = ValidateTiming(script.Beats, duration, g.cfg.Beats.DurationToleranceSeconds)

	log.Printf("[beats] legacy generator produced %d beats for %ds brief", len(script.Beats), duration)
	return script, nil
}
