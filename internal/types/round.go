// Package types defines the domain types shared across the interview pipeline.
package types

// RoundType identifies the kind of interview round.
type RoundType string

const (
	RoundTechnical  RoundType = "technical"
	RoundHR         RoundType = "hr"
	RoundBehavioral RoundType = "behavioral"
	RoundScreening  RoundType = "screening"
	RoundAssessment RoundType = "assessment"
	RoundDSA        RoundType = "dsa"
	RoundCoding     RoundType = "coding"
)

// IsValid reports whether the value is a known round type.
func (r RoundType) IsValid() bool {
	switch r {
	case RoundTechnical, RoundHR, RoundBehavioral, RoundScreening,
		RoundAssessment, RoundDSA, RoundCoding:
		return true
	default:
		return false
	}
}

// IsConversational reports whether the round is driven by one-question-at-a-time
// generation (as opposed to assessment batches or coding rounds).
func (r RoundType) IsConversational() bool {
	switch r {
	case RoundTechnical, RoundHR, RoundBehavioral, RoundScreening:
		return true
	default:
		return false
	}
}

// QuestionConfig holds per-round question generation parameters.
type QuestionConfig struct {
	QuestionCount int      `json:"question_count"`
	FocusSkills   []string `json:"focus_skills,omitempty"`
}

// AssessmentConfig holds parameters for multiple-choice assessment rounds.
type AssessmentConfig struct {
	AssessmentTypes []string `json:"assessment_types"`
	QuestionCount   int      `json:"question_count"`
}

// Round describes one stage of a job's interview pipeline.
type Round struct {
	RoundNumber      int               `json:"round_number"`
	RoundType        RoundType         `json:"round_type"`
	Title            string            `json:"title"`
	DurationMinutes  int               `json:"duration_minutes"`
	IsAIEnabled      bool              `json:"is_ai_enabled"`
	QuestionConfig   QuestionConfig    `json:"question_config"`
	AssessmentConfig *AssessmentConfig `json:"assessment_config,omitempty"`
}

// PipelineConfig is the ordered list of rounds attached to a job posting.
type PipelineConfig struct {
	Rounds []Round `json:"rounds"`
}
