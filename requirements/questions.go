package requirements

import (
	"sort"

	"video-planner/types"
)

const maxQuestions = 5

// Question is one clarifying question surfaced to the caller in HITL mode
type Question struct {
	Key      string   `json:"key"`
	Prompt   string   `json:"prompt"`
	Kind     string   `json:"kind"` // text | choice
	Options  []string `json:"options,omitempty"`
	Priority string   `json:"priority"` // high | medium | low
	Default  string   `json:"default,omitempty"`
	Hint     string   `json:"hint,omitempty"`
}

var priorityRank = map[string]int{"high": 0, "medium": 1, "low": 2}

// Questions generates clarifying questions by inspecting which fields of the
// brief were defaulted rather than supplied. Gap detection, not free
// generation: the catalog of possible questions is fixed.
func Questions(doc *types.RequirementsDocument) []Question {
	var qs []Question

	if doc.CoreMessage == "" || doc.Defaulted(FieldCoreMessage) {
		qs = append(qs, Question{
			Key:      FieldCoreMessage,
			Prompt:   "What is the ONE key message viewers should remember after watching?",
			Kind:     "text",
			Priority: "high",
			Hint:     `Example: "Our platform makes video creation 10x faster"`,
		})
	}

	if doc.Tone == "" || doc.Defaulted(FieldTone) {
		qs = append(qs, Question{
			Key:      FieldTone,
			Prompt:   "What tone should the video have?",
			Kind:     "choice",
			Options:  []string{"empowering", "urgent", "friendly", "dramatic", "playful", "professional"},
			Priority: "high",
			Default:  "professional",
		})
	}

	if doc.CallToAction == "" || doc.Defaulted(FieldCallToAction) {
		qs = append(qs, Question{
			Key:      FieldCallToAction,
			Prompt:   "What specific action should viewers take after watching?",
			Kind:     "choice",
			Options:  []string{"Visit website", "Start free trial", "Book a demo", "Download app", "Sign up", "Contact sales"},
			Priority: "high",
			Hint:     "Be specific - vague CTAs reduce conversion",
		})
	}

	// Always asked: these shape the narrative arc regardless of brief quality.
	qs = append(qs,
		Question{
			Key:      "midpoint_emotion",
			Prompt:   "What emotion should the viewer feel at the midpoint (50% mark)?",
			Kind:     "choice",
			Options:  []string{"hopeful", "inspired", "curious", "confident", "relieved", "excited"},
			Priority: "medium",
			Default:  "hopeful",
			Hint:     `This is the "transformation moment" where understanding clicks`,
		},
		Question{
			Key:      "visual_metaphors",
			Prompt:   "Any specific visual metaphors, motifs, or recurring imagery to incorporate?",
			Kind:     "text",
			Priority: "low",
			Hint:     `Examples: "journey", "transformation", "building blocks"`,
		},
	)

	sort.SliceStable(qs, func(i, j int) bool {
		return priorityRank[qs[i].Priority] < priorityRank[qs[j].Priority]
	})
	if len(qs) > maxQuestions {
		qs = qs[:maxQuestions]
	}
	return qs
}
