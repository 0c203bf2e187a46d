package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Beats    BeatsConfig    `yaml:"beats"`
	Shots    ShotsConfig    `yaml:"shots"`
	Selector SelectorConfig `yaml:"selector"`
	Plan     PlanConfig     `yaml:"plan"`
	Paths    PathsConfig    `yaml:"paths"`
}

type PipelineConfig struct {
	DefaultMode string `yaml:"default_mode"` // hitl | yolo
	StrictMode  bool   `yaml:"strict_mode"`  // fail instead of degrading
	// DisableEnhanced forces the named stages ("beats", "shots") onto their
	// reduced implementations. Used for testing and explicit overrides.
	DisableEnhanced []string `yaml:"disable_enhanced"`
}

type BeatsConfig struct {
	SkeletonBelowSeconds     int `yaml:"skeleton_below_seconds"`     // collapse to 4-beat skeleton under this
	SplitThresholdSeconds    int `yaml:"split_threshold_seconds"`    // split segments longer than this
	TargetBeatSecondsMin     int `yaml:"target_beat_seconds_min"`
	TargetBeatSecondsMax     int `yaml:"target_beat_seconds_max"`
	DurationToleranceSeconds int `yaml:"duration_tolerance_seconds"` // script total vs brief
}

type ShotsConfig struct {
	MinShotSeconds        int `yaml:"min_shot_seconds"`        // beats below this are never split
	BaseGenerationSeconds int `yaml:"base_generation_seconds"` // fixed per-shot generation overhead
	PerSecondFactor       int `yaml:"per_second_factor"`       // generation seconds per shot-second
}

type SelectorConfig struct {
	CatalogPath     string  `yaml:"catalog_path"` // empty = built-in catalog
	QualityPriority string  `yaml:"quality_priority"`
	MaxAlternatives int     `yaml:"max_alternatives"`
	VFXStepSeconds  int     `yaml:"vfx_step_seconds"`
	QualityWeights  Weights `yaml:"quality_weights"`
}

type Weights struct {
	High     float64 `yaml:"high"`
	Balanced float64 `yaml:"balanced"`
	Budget   float64 `yaml:"budget"`
}

type PlanConfig struct {
	PostProcessingMinutes int `yaml:"post_processing_minutes"`
}

type PathsConfig struct {
	Output string `yaml:"output"`
	Logs   string `yaml:"logs"`
}

// Default returns the built-in configuration used when no file is supplied
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			DefaultMode: "yolo",
		},
		Beats: BeatsConfig{
			SkeletonBelowSeconds:     30,
			SplitThresholdSeconds:    15,
			TargetBeatSecondsMin:     5,
			TargetBeatSecondsMax:     10,
			DurationToleranceSeconds: 5,
		},
		Shots: ShotsConfig{
			MinShotSeconds:        2,
			BaseGenerationSeconds: 45,
			PerSecondFactor:       2,
		},
		Selector: SelectorConfig{
			QualityPriority: "balanced",
			MaxAlternatives: 2,
			VFXStepSeconds:  30,
			QualityWeights:  Weights{High: 0.8, Balanced: 0.5, Budget: 0.3},
		},
		Plan: PlanConfig{
			PostProcessingMinutes: 30,
		},
		Paths: PathsConfig{
			Output: "output",
			Logs:   "logs",
		},
	}
}

// Load reads a YAML config file and overlays it on the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate rejects configurations the planners cannot honor
func (c *Config) Validate() error {
	if c.Beats.TargetBeatSecondsMin <= 0 || c.Beats.TargetBeatSecondsMax < c.Beats.TargetBeatSecondsMin {
		return fmt.Errorf("beats: invalid target beat band [%d, %d]",
			c.Beats.TargetBeatSecondsMin, c.Beats.TargetBeatSecondsMax)
	}
	if c.Shots.MinShotSeconds <= 0 {
		return fmt.Errorf("shots: min_shot_seconds must be positive")
	}
	switch c.Pipeline.DefaultMode {
	case "hitl", "yolo":
	default:
		return fmt.Errorf("pipeline: unknown default_mode %q", c.Pipeline.DefaultMode)
	}
	switch c.Selector.QualityPriority {
	case "high", "balanced", "budget":
	default:
		return fmt.Errorf("selector: unknown quality_priority %q", c.Selector.QualityPriority)
	}
	return nil
}

// EnhancedDisabled reports whether a stage was explicitly forced to its
// reduced implementation
func (c *Config) EnhancedDisabled(stage string) bool {
	for _, s := range c.Pipeline.DisableEnhanced {
		if s == stage {
			return true
		}
	}
	return false
}
