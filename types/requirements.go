package types

// VideoType classifies the kind of video being produced
type VideoType string

const (
	VideoExplainer   VideoType = "explainer"
	VideoProductDemo VideoType = "product_demo"
	VideoSocialAd    VideoType = "social_ad"
	VideoTestimonial VideoType = "testimonial"
	VideoBrandStory  VideoType = "brand_story"
	VideoGeneral     VideoType = "general"
)

// KnownVideoType reports whether t is one of the recognized video types
func KnownVideoType(t VideoType) bool {
	switch t {
	case VideoExplainer, VideoProductDemo, VideoSocialAd, VideoTestimonial, VideoBrandStory, VideoGeneral:
		return true
	}
	return false
}

// GenerationMode selects between stage-gated and fully automated execution
type GenerationMode string

const (
	ModeHITL GenerationMode = "hitl"
	ModeYOLO GenerationMode = "yolo"
)

// RequirementsDocument is the structured brief driving one pipeline run.
// It is immutable once set: clarifications produce a fresh copy.
type RequirementsDocument struct {
	ProjectName        string    `json:"project_name" yaml:"project_name"`
	VideoType          VideoType `json:"video_type" yaml:"video_type"`
	DurationSeconds    int       `json:"duration_seconds" yaml:"duration_seconds"`
	TargetAudience     string    `json:"target_audience" yaml:"target_audience"`
	AudienceTags       []string  `json:"audience_tags,omitempty" yaml:"audience_tags,omitempty"`
	Tone               string    `json:"tone" yaml:"tone"`
	CoreMessage        string    `json:"core_message" yaml:"core_message"`
	SupportingMessages []string  `json:"supporting_messages,omitempty" yaml:"supporting_messages,omitempty"`
	PainPoints         []string  `json:"pain_points,omitempty" yaml:"pain_points,omitempty"`
	CallToAction       string    `json:"call_to_action" yaml:"call_to_action"`

	// DefaultedFields lists fields that were filled by inference rather than
	// supplied explicitly. Drives clarifying-question generation.
	DefaultedFields []string `json:"defaulted_fields,omitempty" yaml:"defaulted_fields,omitempty"`
}

// Defaulted reports whether the named field was inferred rather than supplied
func (r *RequirementsDocument) Defaulted(field string) bool {
	for _, f := range r.DefaultedFields {
		if f == field {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so clarification merges never mutate the original
func (r *RequirementsDocument) Clone() *RequirementsDocument {
	out := *r
	out.AudienceTags = append([]string(nil), r.AudienceTags...)
	out.SupportingMessages = append([]string(nil), r.SupportingMessages...)
	out.PainPoints = append([]string(nil), r.PainPoints...)
	out.DefaultedFields = append([]string(nil), r.DefaultedFields...)
	return &out
}
