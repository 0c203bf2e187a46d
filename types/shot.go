package types

// Lighting is the lighting design for a single shot
type Lighting struct {
	TimeOfDay string `json:"time_of_day"`
	Mood      string `json:"mood"`
}

// Shot is one generated clip: a slice of a beat with technical metadata
type Shot struct {
	ID     string `json:"id"`
	BeatID string `json:"beat_id"`
	Number int    `json:"number"`

	Type            ShotType       `json:"type"`
	CameraMovement  CameraMovement `json:"camera_movement"`
	DurationSeconds int            `json:"duration_seconds"`
	Lighting        Lighting       `json:"lighting"`

	ComplexityScore            int  `json:"complexity_score"` // 0-10
	RequiresVFX                bool `json:"requires_vfx"`
	EstimatedGenerationSeconds int  `json:"estimated_generation_seconds"`

	Storyboard  string `json:"storyboard"`
	ImagePrompt string `json:"image_prompt"`
}

// AssetSummary aggregates what a shot list will require to produce
type AssetSummary struct {
	TotalShots            int            `json:"total_shots"`
	ShotsByType           map[string]int `json:"shots_by_type"`
	ShotsByComplexity     map[string]int `json:"shots_by_complexity"` // low/medium/high buckets
	VFXShots              int            `json:"vfx_shots"`
	EstimatedTotalMinutes float64        `json:"estimated_total_minutes"`
}

// ShotList is the full derived shot breakdown for one script
type ShotList struct {
	ID       string         `json:"id"`
	ScriptID string         `json:"script_id"`
	Mode     GenerationMode `json:"mode"`

	TotalShots int          `json:"total_shots"`
	Shots      []Shot       `json:"shots"`
	Assets     AssetSummary `json:"asset_summary"`

	CreatedAt string   `json:"created_at"`
	Warnings  []string `json:"warnings,omitempty"`
}
