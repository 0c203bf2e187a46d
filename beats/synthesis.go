package beats

import (
	"fmt"

	"video-planner/types"
)

// synthesize maps brief fields onto per-position action and voiceover lines.
// The mapping is fixed: the inciting event always surfaces the primary pain
// point, the first plot point always introduces the core message, pinch
// points draw on supporting messages, and the climax carries the CTA.
func synthesize(position types.StoryPosition, req *types.RequirementsDocument) (action, voiceover string) {
	pain0 := nth(req.PainPoints, 0, "the problem at hand")
	pain1 := nth(req.PainPoints, 1, pain0)
	support0 := nth(req.SupportingMessages, 0, req.CoreMessage)
	support1 := nth(req.SupportingMessages, 1, support0)
	support2 := nth(req.SupportingMessages, 2, support1)
	cta := req.CallToAction
	if cta == "" {
		cta = "Get started today"
	}

	switch position {
	case types.PositionHook:
		return fmt.Sprintf("Open on the audience's world: %s", pain0),
			fmt.Sprintf("What if %s stopped holding you back?", pain0)
	case types.PositionIncitingEvent, types.PositionProblem:
		return fmt.Sprintf("Dramatize the core pain point: %s", pain0),
			fmt.Sprintf("Every day, %s get in the way: %s.", req.TargetAudience, pain0)
	case types.PositionFirstPlotPoint, types.PositionSolution:
		return "Reveal the product as the turning point",
			req.CoreMessage
	case types.PositionFirstPinchPoint:
		return fmt.Sprintf("Acknowledge what still stands in the way: %s", pain1),
			fmt.Sprintf("But %s doesn't disappear overnight.", pain1)
	case types.PositionMidpoint:
		return "Show the transformation moment in action",
			support0
	case types.PositionSecondPinchPoint:
		return "Present evidence and social proof",
			support1
	case types.PositionThirdPlotPoint:
		return "Address the final objection head-on",
			support2
	case types.PositionClimax, types.PositionCallToAction:
		return fmt.Sprintf("Close on the call to action: %s", cta),
			cta
	}
	return "Advance the story", req.CoreMessage
}

func keywords(position types.StoryPosition, req *types.RequirementsDocument) []string {
	kw := []string{string(position), string(req.VideoType)}
	if len(req.AudienceTags) > 0 {
		kw = append(kw, req.AudienceTags[0])
	}
	return kw
}

func nth(list []string, i int, fallback string) string {
	if i < len(list) && list[i] != "" {
		return list[i]
	}
	return fallback
}
