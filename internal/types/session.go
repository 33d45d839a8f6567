package types

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus is the lifecycle state of an interview session.
type SessionStatus string

const (
	SessionScheduled  SessionStatus = "scheduled"
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
	SessionAbandoned  SessionStatus = "abandoned"
)

// IsTerminal reports whether the session can no longer be mutated.
func (s SessionStatus) IsTerminal() bool {
	return s == SessionCompleted || s == SessionAbandoned
}

// IsOpen reports whether the session counts as the candidate's active attempt.
func (s SessionStatus) IsOpen() bool {
	return s == SessionScheduled || s == SessionInProgress
}

// GeneratedBy tags content with its origin so fallback substitutions stay visible.
type GeneratedBy string

const (
	GeneratedByAI       GeneratedBy = "ai"
	GeneratedByFallback GeneratedBy = "fallback"
)

// Question is one generated content unit: either a conversational question
// or a multiple-choice assessment item (Options populated, CorrectIndex set).
type Question struct {
	ID             uuid.UUID   `json:"id"`
	RoundNumber    int         `json:"round_number"`
	Category       RoundType   `json:"category"`
	Difficulty     string      `json:"difficulty,omitempty"`
	Text           string      `json:"text"`
	Options        []string    `json:"options,omitempty"`
	CorrectIndex   *int        `json:"correct_index,omitempty"`
	Explanation    string      `json:"explanation,omitempty"`
	AssessmentType string      `json:"assessment_type,omitempty"`
	GeneratedBy    GeneratedBy `json:"generated_by"`
}

// IsAssessment reports whether the question is a multiple-choice item.
func (q *Question) IsAssessment() bool {
	return len(q.Options) > 0
}

// Response records a candidate's answer to the question at the same index.
type Response struct {
	QuestionIndex    int    `json:"question_index"`
	Answer           string `json:"answer"`
	TimeSpentSeconds int    `json:"time_spent_seconds"`
}

// Scoring is the composed result persisted on a completed session.
// Immutable once the session is completed. HRScore and CodingScore are kept
// alongside TechnicalAccuracy so a repeated submit can return the stored
// result without recomputing anything.
type Scoring struct {
	TechnicalAccuracy int      `json:"technical_accuracy"`
	Communication     int      `json:"communication"`
	Confidence        int      `json:"confidence"`
	Relevance         int      `json:"relevance"`
	OverallScore      int      `json:"overall_score"`
	HRScore           int      `json:"hr_score"`
	CodingScore       *int     `json:"coding_score,omitempty"`
	Strengths         []string `json:"strengths,omitempty"`
	Weaknesses        []string `json:"weaknesses,omitempty"`
	Recommendations   []string `json:"recommendations,omitempty"`
	DetailedFeedback  string   `json:"detailed_feedback,omitempty"`
}

// InterviewSession is one candidate's attempt at a job's interview pipeline.
// JobID is nil for platform-level interviews.
type InterviewSession struct {
	ID                uuid.UUID     `json:"id"`
	CandidateID       uuid.UUID     `json:"candidate_id"`
	JobID             *uuid.UUID    `json:"job_id,omitempty"`
	Status            SessionStatus `json:"status"`
	CurrentRoundIndex int           `json:"current_round_index"`
	Questions         []Question    `json:"questions"`
	Responses         []Response    `json:"responses"`
	Scoring           *Scoring      `json:"scoring,omitempty"`
	Passed            *bool         `json:"passed,omitempty"`
	Version           int           `json:"version"`
	CreatedAt         time.Time     `json:"created_at"`
	CompletedAt       *time.Time    `json:"completed_at,omitempty"`
}

// QAPair is one question/answer entry of a session transcript.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
