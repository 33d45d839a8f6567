package types

import (
	"time"

	"github.com/google/uuid"
)

// ApplicantStatus is the recruiter-facing state of a candidate on a job.
type ApplicantStatus string

const (
	ApplicantApplied      ApplicantStatus = "applied"
	ApplicantInterviewing ApplicantStatus = "interviewing"
	ApplicantReviewed     ApplicantStatus = "reviewed"
	ApplicantShortlisted  ApplicantStatus = "shortlisted"
)

// JobContext is the job-posting context fed into question generation:
// title, required skills, experience level, and a truncated description.
type JobContext struct {
	Title           string   `json:"title"`
	Skills          []string `json:"skills,omitempty"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
	Description     string   `json:"description,omitempty"`
}

// Job is a job posting with its optional recruiter-configured pipeline.
// A nil or empty Pipeline means the built-in default applies.
type Job struct {
	ID          uuid.UUID       `json:"id"`
	RecruiterID uuid.UUID       `json:"recruiter_id"`
	Context     JobContext      `json:"context"`
	Pipeline    *PipelineConfig `json:"pipeline,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Applicant links a candidate to a job, carrying interview side effects.
type Applicant struct {
	JobID          uuid.UUID       `json:"job_id"`
	CandidateID    uuid.UUID       `json:"candidate_id"`
	Status         ApplicantStatus `json:"status"`
	SessionID      *uuid.UUID      `json:"session_id,omitempty"`
	InterviewScore *int            `json:"interview_score,omitempty"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
