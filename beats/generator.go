package beats

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"video-planner/config"
	"video-planner/types"
)

// Generator allocates narrative beats across a brief's runtime using the
// proportional story-structure breakpoints in templates.go.
type Generator struct {
	cfg *config.Config
}

// New creates a beat Generator
func New(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Generate produces a complete Script from a requirements brief.
// Fails with InsufficientInputError when the duration is unusable; an
// unrecognized video type falls back to general defaults instead.
func (g *Generator) Generate(req *types.RequirementsDocument) (*types.Script, error) {
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
		log.Printf("[beats] unrecognized video type %q, using general defaults", videoType)
		videoType = types.VideoGeneral
	}

	duration := req.DurationSeconds
	specs := eightPart
	if duration < g.cfg.Beats.SkeletonBelowSeconds {
		specs = skeleton
		log.Printf("[beats] %ds brief: collapsing to %d-beat skeleton", duration, len(skeleton))
	}

	spans := allocateSpans(specs, duration)

	script := &types.Script{
		ID: "script_" + uuid.NewString()[:8],
		Metadata: types.ScriptMetadata{
			Title:           req.ProjectName,
			VideoType:       videoType,
			DurationSeconds: duration,
			TargetAudience:  req.TargetAudience,
			CoreMessage:     req.CoreMessage,
			Tone:            req.Tone,
			CreatedAt:       time.Now().UTC().Format(time.RFC3339),
		},
		Structure: types.ScriptStructure{
			Breakdown: map[string]types.Segment{},
		},
	}

	sequence := 0
	segment := 0
	for i, spec := range specs {
		span := spans[i]
		if span.End <= span.Start {
			continue // position squeezed out by a short runtime
		}
		segment++
		script.Structure.Breakdown[string(spec.position)] = span

		segSeconds := span.End - span.Start
		count := g.splitCount(segSeconds)
		base := segSeconds / count

		start := span.Start
		for sub := 0; sub < count; sub++ {
			beatSeconds := base
			if sub == count-1 {
				beatSeconds = span.End - start // last beat absorbs the remainder
			}
			sequence++
			beat := g.buildBeat(spec, req, beatContext{
				id:       fmt.Sprintf("%d.%d", segment, sub),
				sequence: sequence,
				start:    start,
				end:      start + beatSeconds,
				subIndex: sub,
			})
			script.Beats = append(script.Beats, beat)
			start += beatSeconds

			switch {
			case act1Positions[spec.position]:
				script.Structure.Act1Beats = append(script.Structure.Act1Beats, beat.ID)
			case act2Positions[spec.position]:
				script.Structure.Act2Beats = append(script.Structure.Act2Beats, beat.ID)
			default:
				script.Structure.Act3Beats = append(script.Structure.Act3Beats, beat.ID)
			}
		}
	}

	script.Mode = types.ModeYOLO // orchestrator overrides for HITL runs
	script.TotalBeatCount = len(script.Beats)
	script.Structure.TotalBeats = len(script.Beats)
	script.Summary = fmt.Sprintf("%s video, %d beats over %ds following the %d-part structure",
		videoType, len(script.Beats), duration, len(specs))
	script.Timing = ValidateTiming(script.Beats, duration, g.cfg.Beats.DurationToleranceSeconds)

	log.Printf("[beats] generated %d beats for %ds %s brief (drift %+ds)",
		len(script.Beats), duration, videoType, script.Timing.DriftSeconds)
	return script, nil
}

type beatContext struct {
	id       string
	sequence int
	start    int
	end      int
	subIndex int
}

func (g *Generator) buildBeat(spec positionSpec, req *types.RequirementsDocument, bc beatContext) types.Beat {
	duration := bc.end - bc.start
	action, voiceover := synthesize(spec.position, req)

	shotType := spec.shotType
	if bc.subIndex%2 == 1 {
		shotType = spec.altShotType
	}

	suggested := types.KindTextToVideo
	if duration <= 5 {
		suggested = types.KindImageToVideo
	}

	var sfx []string
	if bc.sequence > 1 {
		sfx = []string{"transition"}
	}

	characterEmotion := "curious"
	audienceEmotion := "interested"
	switch spec.position {
	case types.PositionMidpoint, types.PositionClimax, types.PositionCallToAction:
		characterEmotion = "confident"
	}
	if spec.position == types.PositionHook {
		audienceEmotion = "engaged"
	}

	return types.Beat{
		ID:            bc.id,
		SequenceOrder: bc.sequence,

		TimecodeStart:   Timecode(bc.start),
		TimecodeEnd:     Timecode(bc.end),
		StartSeconds:    bc.start,
		EndSeconds:      bc.end,
		DurationSeconds: duration,

		StoryQuestion: spec.question,
		StoryAnswer:   spec.answer,

		Script: types.ScriptContent{
			Action:    action,
			Voiceover: voiceover,
		},
		Visual: types.VisualRequirements{
			ShotType:       shotType,
			CameraMovement: spec.camera,
			Location:       "studio",
			Lighting:       spec.lighting,
			Keywords:       keywords(spec.position, req),
			Complexity:     spec.complexity,
		},
		Audio: types.AudioRequirements{
			SoundEffects: sfx,
			MusicMood:    req.Tone,
			Ambient:      "professional_studio",
		},
		Emotion: types.EmotionalContext{
			CharacterEmotion: characterEmotion,
			AudienceEmotion:  audienceEmotion,
			ArcPosition:      string(spec.position),
			Intensity:        spec.intensity,
		},
		Narrative: types.NarrativeFunction{
			Position:        spec.position,
			BeatNumber:      bc.sequence,
			Purpose:         spec.purpose,
			RaisesQuestion:  spec.question,
			AnswersQuestion: spec.answer,
		},
		Production: types.ProductionMetadata{
			Complexity:        spec.complexity,
			RequiresVFX:       spec.requiresVFX,
			RequiresAssets:    true,
			SuggestedWorkflow: suggested,
		},
	}
}

// allocateSpans converts proportional breakpoints into contiguous integer
// spans. Truncation remainders accumulate into the final (climax) span, and
// the hook never drops below 3 seconds.
func allocateSpans(specs []positionSpec, duration int) []types.Segment {
	spans := make([]types.Segment, len(specs))
	prev := 0
	for i, spec := range specs {
		end := int(float64(duration) * spec.endFrac)
		if i == 0 && spec.position == types.PositionHook && len(specs) == len(eightPart) {
			if end < 3 {
				end = 3
			}
		}
		if i == len(specs)-1 {
			end = duration
		}
		if end < prev {
			end = prev
		}
		spans[i] = types.Segment{Start: prev, End: end}
		prev = end
	}
	return spans
}

// splitCount decides how many beats a structural segment receives: one beat
// up to the split threshold, then one beat per started target-band-max
// seconds. A 16s segment yields 2 beats, 25s yields 3, keeping beats inside
// the 5-10s band.
func (g *Generator) splitCount(segSeconds int) int {
	threshold := g.cfg.Beats.SplitThresholdSeconds
	if segSeconds <= threshold {
		return 1
	}
	max := g.cfg.Beats.TargetBeatSecondsMax
	return (segSeconds + max - 1) / max
}

// ValidateTiming checks beat contiguity and total-duration drift
func ValidateTiming(beats []types.Beat, target, tolerance int) types.TimingReport {
	report := types.TimingReport{TargetSeconds: target, Valid: true}
	for i, b := range beats {
		report.TotalSeconds += b.DurationSeconds
		if i > 0 && beats[i-1].EndSeconds != b.StartSeconds {
			report.Issues = append(report.Issues,
				fmt.Sprintf("gap between beat %s and %s", beats[i-1].ID, b.ID))
		}
	}
	report.DriftSeconds = report.TotalSeconds - target
	if report.DriftSeconds > tolerance || report.DriftSeconds < -tolerance {
		report.Issues = append(report.Issues,
			fmt.Sprintf("total duration %ds outside %ds ±%ds", report.TotalSeconds, target, tolerance))
	}
	report.Valid = len(report.Issues) == 0
	return report
}

// Timecode renders seconds as HH:MM:SS:FF (frames always zero)
func Timecode(seconds int) string {
	return fmt.Sprintf("%02d:%02d:%02d:00", seconds/3600, (seconds/60)%60, seconds%60)
}
