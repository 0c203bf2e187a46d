package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"video-planner/types"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	warningColor = color.New(color.FgYellow)
	headerColor  = color.New(color.FgMagenta, color.Bold)
)

func saveJSON(dir, name string, v interface{}) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal %s: %w", name, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}

func printScript(script *types.Script) {
	headerColor.Printf("\n📝 Script %s: %d beats, %ds\n", script.ID, len(script.Beats), script.Metadata.DurationSeconds)
	for _, beat := range script.Beats {
		fmt.Printf("  [%s → %s] %s (%s)\n", beat.TimecodeStart, beat.TimecodeEnd, beat.Narrative.Position, beat.ID)
		fmt.Printf("      %s\n", beat.Script.Voiceover)
	}
}

func printShotList(list *types.ShotList) {
	headerColor.Printf("\n🎥 Shot list %s — %d shots\n", list.ID, list.TotalShots)
	for _, shot := range list.Shots {
		vfx := ""
		if shot.RequiresVFX {
			vfx = " +VFX"
		}
		fmt.Printf("  %s: %s, %ds, complexity %d/10%s\n",
			shot.ID, shot.Type, shot.DurationSeconds, shot.ComplexityScore, vfx)
	}
	for _, w := range list.Warnings {
		warningColor.Printf("  ⚠️  %s\n", w)
	}
}

func printPlan(plan *types.ProductionPlan) {
	headerColor.Printf("\n💰 Production plan %s\n", plan.ID)
	for _, sp := range plan.ShotPlans {
		flag := ""
		if sp.OverBudget {
			flag = " [over budget]"
		}
		fmt.Printf("  %s → %s ($%.2f, %ds)%s\n",
			sp.ShotID, primaryCapability(sp), sp.Primary.TotalCostUSD, sp.Primary.TotalSeconds, flag)
	}
	fmt.Println(strings.Repeat("─", 50))
	successColor.Printf("  Total: $%.2f, %.1f min sequential / %.1f min parallel (+%d min post)\n",
		plan.TotalCostUSD(), plan.Timeline.SequentialMinutes, plan.Timeline.ParallelMinutes,
		plan.Timeline.PostProcessingMinutes)
	infoColor.Printf("  Dominant category: %s (%.0f%% of shots), %d capabilities in use\n",
		plan.Summary.ModalCategory, plan.Summary.ModalShare*100, plan.Summary.UniqueCapabilities)
	for _, w := range plan.Warnings {
		warningColor.Printf("  ⚠️  %s\n", w)
	}
}

func primaryCapability(sp types.ShotPlan) string {
	if len(sp.Primary.Steps) == 0 {
		return "(none)"
	}
	return sp.Primary.Steps[0].Capability
}
