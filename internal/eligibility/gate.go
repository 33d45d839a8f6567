// Package eligibility decides whether a candidate may engage job-level
// interview actions based on their platform-interview history.
package eligibility

import "github.com/hireloop/hireloop/internal/types"

// CodeInterviewRequired is the denial code returned when a candidate must
// complete the platform interview first.
const CodeInterviewRequired = "INTERVIEW_REQUIRED"

// LegacyPassScore is the minimum historical interview score that grandfathers
// an account in without a platform-interview record.
const LegacyPassScore = 60

// Decision is the gate's verdict for one actor.
type Decision struct {
	Allowed bool
	Code    string
	Reason  string
	// Status echoes the candidate's current platform-interview status so the
	// client can route a denied candidate to remediation.
	Status types.PlatformStatus
}

// Allow is the permissive decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Check evaluates the gate for a user. Recruiters always pass. A candidate
// passes if they have attempted the platform interview at least once
// (passing is not required), or if one of the backward-compatibility
// relaxations applies: onboarding completed, the legacy completed flag, or a
// legacy interview score at or above LegacyPassScore. Accounts predating the
// platform-interview requirement rely on those relaxations.
func Check(user *types.User) Decision {
	if user.Role == types.RoleRecruiter {
		return Allow()
	}

	status := user.PlatformInterview.Status
	if status.Attempted() || status == types.PlatformSkipped {
		return Allow()
	}

	// status is pending, in_progress, or unset
	if user.IsOnboardingComplete {
		return Allow()
	}
	if user.LegacyInterviewCompleted {
		return Allow()
	}
	if user.InterviewScore != nil && *user.InterviewScore >= LegacyPassScore {
		return Allow()
	}

	return Decision{
		Allowed: false,
		Code:    CodeInterviewRequired,
		Reason:  "complete the platform interview before applying to jobs",
		Status:  status,
	}
}
