// Package beats turns a requirements brief into a timed narrative script by
// allocating beats across a fixed proportional story structure.
package beats

import "video-planner/types"

// positionSpec is the canned profile for one story-structure position
type positionSpec struct {
	position  types.StoryPosition
	startFrac float64
	endFrac   float64

	question string
	answer   string
	purpose  string

	shotType    types.ShotType
	altShotType types.ShotType // used by beats injected into a split segment
	camera      types.CameraMovement
	lighting    string
	intensity   int
	complexity  types.Complexity
	requiresVFX bool
}

// The eight-part structure: proportional breakpoints of the total runtime.
// Hook 0-5%, Inciting 5-12%, 1st Plot 12-25%, 1st Pinch 25-37%, Midpoint
// 37-50%, 2nd Pinch 50-62%, 3rd Plot 62-75%, Climax 75-100%.
var eightPart = []positionSpec{
	{
		position: types.PositionHook, startFrac: 0, endFrac: 0.05,
		question:    "Why should the viewer keep watching?",
		answer:      "Create immediate engagement through problem recognition",
		purpose:     "Grab attention instantly",
		shotType:    types.ShotCloseup, altShotType: types.ShotMediumCloseup,
		camera:      types.CameraStatic, lighting: "professional_bright",
		intensity:   7, complexity: types.ComplexityHigh, requiresVFX: true,
	},
	{
		position: types.PositionIncitingEvent, startFrac: 0.05, endFrac: 0.12,
		question:    "What problem does the viewer face?",
		answer:      "Establish the core challenge and pain point",
		purpose:     "Establish the stakes",
		shotType:    types.ShotMedium, altShotType: types.ShotMediumWide,
		camera:      types.CameraSlowPush, lighting: "professional_neutral",
		intensity:   6, complexity: types.ComplexityMedium,
	},
	{
		position: types.PositionFirstPlotPoint, startFrac: 0.12, endFrac: 0.25,
		question:    "What solution exists?",
		answer:      "Introduce the product or service as the answer",
		purpose:     "Turn toward the solution",
		shotType:    types.ShotWide, altShotType: types.ShotMedium,
		camera:      types.CameraDolly, lighting: "professional_bright",
		intensity:   5, complexity: types.ComplexityMedium,
	},
	{
		position: types.PositionFirstPinchPoint, startFrac: 0.25, endFrac: 0.37,
		question:    "What obstacles remain?",
		answer:      "Show challenges that still need addressing",
		purpose:     "Build tension",
		shotType:    types.ShotCloseup, altShotType: types.ShotMedium,
		camera:      types.CameraStatic, lighting: "professional_neutral",
		intensity:   6, complexity: types.ComplexityMedium,
	},
	{
		position: types.PositionMidpoint, startFrac: 0.37, endFrac: 0.50,
		question:    "How does the solution transform the situation?",
		answer:      "Demonstrate the key breakthrough or insight",
		purpose:     "Land the transformation moment",
		shotType:    types.ShotMedium, altShotType: types.ShotWide,
		camera:      types.CameraSlowPush, lighting: "professional_bright",
		intensity:   8, complexity: types.ComplexityHigh, requiresVFX: true,
	},
	{
		position: types.PositionSecondPinchPoint, startFrac: 0.50, endFrac: 0.62,
		question:    "What proves this works?",
		answer:      "Present evidence and social proof",
		purpose:     "Show the proof",
		shotType:    types.ShotCloseup, altShotType: types.ShotMediumCloseup,
		camera:      types.CameraStatic, lighting: "professional_bright",
		intensity:   7, complexity: types.ComplexityMedium,
	},
	{
		position: types.PositionThirdPlotPoint, startFrac: 0.62, endFrac: 0.75,
		question:    "What is the final hurdle?",
		answer:      "Address last objections or concerns",
		purpose:     "Resolve the last objection",
		shotType:    types.ShotMedium, altShotType: types.ShotMediumWide,
		camera:      types.CameraSlowPush, lighting: "professional_neutral",
		intensity:   6, complexity: types.ComplexityMedium,
	},
	{
		position: types.PositionClimax, startFrac: 0.75, endFrac: 1.00,
		question:    "What action should the viewer take?",
		answer:      "Clear, compelling call-to-action",
		purpose:     "Drive the action",
		shotType:    types.ShotMedium, altShotType: types.ShotWide,
		camera:      types.CameraDolly, lighting: "professional_bright",
		intensity:   9, complexity: types.ComplexityHigh, requiresVFX: true,
	},
}

// Briefs under 30 seconds collapse to a four-position skeleton so no beat
// drops below ~2 seconds.
var skeleton = []positionSpec{
	{
		position: types.PositionHook, startFrac: 0, endFrac: 0.10,
		question:    "Why should the viewer keep watching?",
		answer:      "Create immediate engagement",
		purpose:     "Grab attention instantly",
		shotType:    types.ShotCloseup, altShotType: types.ShotMediumCloseup,
		camera:      types.CameraStatic, lighting: "professional_bright",
		intensity:   7, complexity: types.ComplexityHigh, requiresVFX: true,
	},
	{
		position: types.PositionProblem, startFrac: 0.10, endFrac: 0.40,
		question:    "What problem does the viewer face?",
		answer:      "Establish the core challenge and pain point",
		purpose:     "Establish the stakes",
		shotType:    types.ShotMedium, altShotType: types.ShotMediumWide,
		camera:      types.CameraSlowPush, lighting: "professional_neutral",
		intensity:   6, complexity: types.ComplexityMedium,
	},
	{
		position: types.PositionSolution, startFrac: 0.40, endFrac: 0.80,
		question:    "What solution exists?",
		answer:      "Show the product or service solving the problem",
		purpose:     "Turn toward the solution",
		shotType:    types.ShotWide, altShotType: types.ShotMedium,
		camera:      types.CameraDolly, lighting: "professional_bright",
		intensity:   7, complexity: types.ComplexityMedium,
	},
	{
		position: types.PositionCallToAction, startFrac: 0.80, endFrac: 1.00,
		question:    "What action should the viewer take?",
		answer:      "Clear, compelling call-to-action",
		purpose:     "Drive the action",
		shotType:    types.ShotMedium, altShotType: types.ShotWide,
		camera:      types.CameraDolly, lighting: "professional_bright",
		intensity:   9, complexity: types.ComplexityHigh, requiresVFX: true,
	},
}

var act1Positions = map[types.StoryPosition]bool{
	types.PositionHook:           true,
	types.PositionIncitingEvent:  true,
	types.PositionFirstPlotPoint: true,
}

var act2Positions = map[types.StoryPosition]bool{
	types.PositionFirstPinchPoint:  true,
	types.PositionMidpoint:         true,
	types.PositionSecondPinchPoint: true,
	types.PositionProblem:          true,
	types.PositionSolution:         true,
}
