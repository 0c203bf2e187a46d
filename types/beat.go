package types

// ShotType is the framing of a shot, tightest to widest
type ShotType string

const (
	ShotExtremeCloseup ShotType = "extreme_closeup"
	ShotCloseup        ShotType = "closeup"
	ShotMediumCloseup  ShotType = "medium_closeup"
	ShotMedium         ShotType = "medium"
	ShotMediumWide     ShotType = "medium_wide"
	ShotWide           ShotType = "wide"
	ShotExtremeWide    ShotType = "extreme_wide"
)

// CameraMovement describes camera motion during a shot
type CameraMovement string

const (
	CameraStatic   CameraMovement = "static"
	CameraPan      CameraMovement = "pan"
	CameraTilt     CameraMovement = "tilt"
	CameraDolly    CameraMovement = "dolly"
	CameraSlowPush CameraMovement = "slow_push"
	CameraZoom     CameraMovement = "zoom"
	CameraHandheld CameraMovement = "handheld"
)

// Complexity is a coarse production-difficulty tier
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// StoryPosition is a canonical position in the narrative structure.
// The full structure has eight positions; briefs under 30 seconds collapse
// to a four-position skeleton (hook, problem, solution, call_to_action).
type StoryPosition string

const (
	PositionHook             StoryPosition = "hook"
	PositionIncitingEvent    StoryPosition = "inciting_event"
	PositionFirstPlotPoint   StoryPosition = "first_plot_point"
	PositionFirstPinchPoint  StoryPosition = "first_pinch_point"
	PositionMidpoint         StoryPosition = "midpoint"
	PositionSecondPinchPoint StoryPosition = "second_pinch_point"
	PositionThirdPlotPoint   StoryPosition = "third_plot_point"
	PositionClimax           StoryPosition = "climax"

	PositionProblem      StoryPosition = "problem"
	PositionSolution     StoryPosition = "solution"
	PositionCallToAction StoryPosition = "call_to_action"
)

// WorkflowKind classifies how a generation capability is driven
type WorkflowKind string

const (
	KindTextToVideo  WorkflowKind = "text_to_video"
	KindImageToVideo WorkflowKind = "image_to_video"
	KindVideoToVideo WorkflowKind = "video_to_video"
)

// ScriptContent is the written content of one beat
type ScriptContent struct {
	Action       string `json:"action"`
	Dialogue     string `json:"dialogue,omitempty"`
	Voiceover    string `json:"voiceover,omitempty"`
	OnScreenText string `json:"on_screen_text,omitempty"`
}

// VisualRequirements specifies how a beat should look
type VisualRequirements struct {
	ShotType       ShotType       `json:"shot_type"`
	CameraMovement CameraMovement `json:"camera_movement"`
	Location       string         `json:"location"`
	Lighting       string         `json:"lighting"`
	Keywords       []string       `json:"keywords,omitempty"`
	Complexity     Complexity     `json:"complexity"`
}

// AudioRequirements specifies how a beat should sound
type AudioRequirements struct {
	DialoguePresent bool     `json:"dialogue_present"`
	SoundEffects    []string `json:"sound_effects,omitempty"`
	MusicMood       string   `json:"music_mood,omitempty"`
	Ambient         string   `json:"ambient,omitempty"`
}

// EmotionalContext tracks the emotional arc at a beat
type EmotionalContext struct {
	CharacterEmotion string `json:"character_emotion"`
	AudienceEmotion  string `json:"audience_emotion"`
	ArcPosition      string `json:"arc_position"`
	Intensity        int    `json:"intensity"` // 1-10
}

// NarrativeFunction records why a beat exists in the story
type NarrativeFunction struct {
	Position        StoryPosition `json:"position"`
	BeatNumber      int           `json:"beat_number"`
	Purpose         string        `json:"purpose"`
	RaisesQuestion  string        `json:"raises_question,omitempty"`
	AnswersQuestion string        `json:"answers_question,omitempty"`
}

// ProductionMetadata seeds downstream shot planning and tool selection
type ProductionMetadata struct {
	Complexity        Complexity   `json:"complexity"`
	RequiresVFX       bool         `json:"requires_vfx"`
	RequiresAssets    bool         `json:"requires_assets"`
	SuggestedWorkflow WorkflowKind `json:"suggested_workflow"`
}

// Beat is an atomic, timed narrative unit with full production metadata
type Beat struct {
	ID            string `json:"id"` // "3.0", "3.1", ... segment.sub
	SequenceOrder int    `json:"sequence_order"`

	TimecodeStart   string `json:"timecode_start"`
	TimecodeEnd     string `json:"timecode_end"`
	StartSeconds    int    `json:"start_seconds"`
	EndSeconds      int    `json:"end_seconds"`
	DurationSeconds int    `json:"duration_seconds"`

	StoryQuestion string `json:"story_question"`
	StoryAnswer   string `json:"story_answer"`

	Script     ScriptContent      `json:"script"`
	Visual     VisualRequirements `json:"visual_requirements"`
	Audio      AudioRequirements  `json:"audio_requirements"`
	Emotion    EmotionalContext   `json:"emotional_context"`
	Narrative  NarrativeFunction  `json:"narrative_function"`
	Production ProductionMetadata `json:"production_metadata"`
}

// Segment is a half-open [Start, End) span in seconds
type Segment struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ScriptMetadata summarizes the brief a script was generated from
type ScriptMetadata struct {
	Title           string    `json:"title"`
	VideoType       VideoType `json:"video_type"`
	DurationSeconds int       `json:"duration_seconds"`
	TargetAudience  string    `json:"target_audience"`
	CoreMessage     string    `json:"core_message"`
	Tone            string    `json:"tone"`
	CreatedAt       string    `json:"created_at"`
}

// ScriptStructure records the structural allocation of the runtime
type ScriptStructure struct {
	TotalBeats int                `json:"total_beats"`
	Breakdown  map[string]Segment `json:"breakdown"` // position -> span
	Act1Beats  []string           `json:"act_1_beats,omitempty"`
	Act2Beats  []string           `json:"act_2_beats,omitempty"`
	Act3Beats  []string           `json:"act_3_beats,omitempty"`
}

// TimingReport is the duration validation attached to a generated script
type TimingReport struct {
	TotalSeconds  int      `json:"total_seconds"`
	TargetSeconds int      `json:"target_seconds"`
	DriftSeconds  int      `json:"drift_seconds"`
	Valid         bool     `json:"valid"`
	Issues        []string `json:"issues,omitempty"`
}

// Script is a complete timed narrative: ordered beats plus structure
type Script struct {
	ID   string         `json:"id"`
	Mode GenerationMode `json:"mode"`

	Metadata  ScriptMetadata  `json:"metadata"`
	Structure ScriptStructure `json:"structure"`
	Beats     []Beat          `json:"beats"`

	TotalBeatCount int          `json:"total_beat_count"`
	Summary        string       `json:"summary"`
	Timing         TimingReport `json:"timing"`
}
