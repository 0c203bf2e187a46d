// Package requirements builds and refines RequirementsDocuments: keyword
// inference from free-text briefs, gap-driven clarifying questions, and
// clarification merges.
package requirements

import (
	"log"
	"strings"

	"video-planner/types"
)

// field keys shared between inference, questions, and clarification merges
const (
	FieldVideoType    = "video_type"
	FieldDuration     = "duration_seconds"
	FieldTone         = "tone"
	FieldAudience     = "target_audience"
	FieldCoreMessage  = "core_message"
	FieldCallToAction = "call_to_action"
)

type typeProfile struct {
	videoType types.VideoType
	duration  int
	tone      string
	keywords  []string
}

// Keyword order matters: first profile with a match wins.
var typeProfiles = []typeProfile{
	{types.VideoExplainer, 60, "professional, educational", []string{"explainer", "explain", "introduce"}},
	{types.VideoProductDemo, 45, "professional, confident", []string{"demo", "product", "show", "walkthrough"}},
	{types.VideoSocialAd, 30, "energetic, engaging", []string{"ad", "promo", "social"}},
	{types.VideoTestimonial, 45, "warm, authentic", []string{"testimonial", "review", "customer story"}},
	{types.VideoBrandStory, 90, "inspiring, cinematic", []string{"brand", "story", "about us"}},
}

var ctaByType = map[types.VideoType]string{
	types.VideoProductDemo: "Start Free Trial",
	types.VideoExplainer:   "Learn More",
	types.VideoSocialAd:    "Shop Now",
	types.VideoTestimonial: "Read More Stories",
	types.VideoBrandStory:  "Join Us",
	types.VideoGeneral:     "Get Started Today",
}

// Infer builds a RequirementsDocument from a free-text description, filling
// gaps with sensible defaults and recording every defaulted field so the
// orchestrator can ask about them later.
func Infer(input string) *types.RequirementsDocument {
	lower := strings.ToLower(input)

	doc := &types.RequirementsDocument{
		ProjectName: deriveTitle(input),
		VideoType:   types.VideoGeneral,
	}
	defaulted := []string{FieldVideoType, FieldDuration, FieldTone}

	doc.DurationSeconds = 60
	doc.Tone = "professional"
	for _, p := range typeProfiles {
		if containsAny(lower, p.keywords) {
			doc.VideoType = p.videoType
			doc.DurationSeconds = p.duration
			doc.Tone = p.tone
			break
		}
	}

	if strings.Contains(lower, "b2b") || strings.Contains(lower, "saas") {
		doc.TargetAudience = "B2B decision-makers, ages 28-55, marketing/product managers"
		doc.AudienceTags = []string{"b2b", "decision_maker", "professional"}
		doc.PainPoints = []string{"budget constraints", "time pressure", "need for measurable ROI"}
	} else {
		doc.TargetAudience = "Business professionals, ages 25-55, tech-savvy"
		doc.AudienceTags = []string{"professional", "tech_savvy"}
		doc.PainPoints = []string{"time constraints", "resource limitations", "need for efficiency"}
		defaulted = append(defaulted, FieldAudience)
	}

	defaulted = append(defaulted, FieldCoreMessage, FieldCallToAction)
	doc.CoreMessage = "Solve the key problem efficiently"
	doc.SupportingMessages = []string{
		"Save time and resources",
		"Proven, reliable results",
		"Easy to start, risk-free",
	}
	doc.CallToAction = ctaByType[doc.VideoType]

	doc.DefaultedFields = defaulted
	log.Printf("[requirements] inferred %s brief, %ds, %d defaulted fields",
		doc.VideoType, doc.DurationSeconds, len(defaulted))
	return doc
}

// ApplyClarifications returns a fresh document with answers merged in.
// Answered fields are no longer considered defaulted.
func ApplyClarifications(doc *types.RequirementsDocument, answers map[string]string) *types.RequirementsDocument {
	out := doc.Clone()
	for key, value := range answers {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		switch key {
		case FieldTone:
			out.Tone = value
		case FieldCoreMessage:
			out.CoreMessage = value
		case FieldCallToAction:
			out.CallToAction = value
		case FieldAudience:
			out.TargetAudience = value
		default:
			// Creative-direction answers (midpoint emotion, visual metaphors)
			// flow into the visual keyword pool.
			out.AudienceTags = append(out.AudienceTags, value)
			continue
		}
		out.DefaultedFields = remove(out.DefaultedFields, key)
	}
	return out
}

func deriveTitle(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return "Untitled Video"
	}
	words := strings.Fields(input)
	if len(words) > 8 {
		words = words[:8]
	}
	return strings.Join(words, " ")
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func remove(list []string, item string) []string {
	out := list[:0]
	for _, v := range list {
		if v != item {
			out = append(out, v)
		}
	}
	return out
}
