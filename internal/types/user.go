package types

import (
	"time"

	"github.com/google/uuid"
)

// Role distinguishes candidate and recruiter accounts.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleRecruiter Role = "recruiter"
)

// IsValid reports whether the role is a known account role.
func (r Role) IsValid() bool {
	return r == RoleCandidate || r == RoleRecruiter
}

// PlatformStatus is the state of a candidate's platform-level interview.
type PlatformStatus string

const (
	PlatformPending       PlatformStatus = "pending"
	PlatformInProgress    PlatformStatus = "in_progress"
	PlatformPassed        PlatformStatus = "passed"
	PlatformFailed        PlatformStatus = "failed"
	PlatformPendingReview PlatformStatus = "pending_review"
	PlatformCompleted     PlatformStatus = "completed"
	PlatformSkipped       PlatformStatus = "skipped"
)

// IsValid reports whether the status is a known platform-interview state.
func (s PlatformStatus) IsValid() bool {
	switch s {
	case PlatformPending, PlatformInProgress, PlatformPassed, PlatformFailed,
		PlatformPendingReview, PlatformCompleted, PlatformSkipped:
		return true
	default:
		return false
	}
}

// Attempted reports whether the candidate has been through the platform
// interview at least once. Passing is not required for job-level access.
func (s PlatformStatus) Attempted() bool {
	switch s {
	case PlatformPassed, PlatformFailed, PlatformPendingReview, PlatformCompleted:
		return true
	default:
		return false
	}
}

// PlatformInterview tracks a candidate's platform-interview history.
type PlatformInterview struct {
	Status              PlatformStatus `json:"status"`
	Attempts            int            `json:"attempts"`
	LastReminderAt      *time.Time     `json:"last_reminder_at,omitempty"`
	LastEmailReminderAt *time.Time     `json:"last_email_reminder_at,omitempty"`
	RetryAfter          *time.Time     `json:"retry_after,omitempty"`
}

// User is the actor record the eligibility gate and handlers consume.
// LegacyInterviewCompleted and InterviewScore exist for accounts created
// before the platform-interview requirement.
type User struct {
	ID                       uuid.UUID         `json:"id"`
	Email                    string            `json:"email"`
	Name                     string            `json:"name"`
	Role                     Role              `json:"role"`
	IsOnboardingComplete     bool              `json:"is_onboarding_complete"`
	LegacyInterviewCompleted bool              `json:"legacy_interview_completed"`
	InterviewScore           *int              `json:"interview_score,omitempty"`
	PlatformInterview        PlatformInterview `json:"platform_interview"`
	CreatedAt                time.Time         `json:"created_at"`
}
