package supervisor

import "video-planner/types"

// BeatGenerator is the stage contract both the enhanced and legacy beat
// generators satisfy
type BeatGenerator interface {
	Generate(req *types.RequirementsDocument) (*types.Script, error)
}

// ShotPlanner is the stage contract both shot planner variants satisfy
type ShotPlanner interface {
	Plan(script *types.Script) (*types.ShotList, error)
}

// CapabilityContext carries the resolved stage implementations for one run.
// It is injected into the orchestrator rather than held in package state, so
// tests can exercise optimal and degraded paths side by side.
type CapabilityContext struct {
	Beats      BeatGenerator
	Shots      ShotPlanner
	Supervisor *Supervisor
}
