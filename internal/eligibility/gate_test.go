package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hireloop/hireloop/internal/types"
)

func candidate(status types.PlatformStatus) *types.User {
	return &types.User{
		Role:              types.RoleCandidate,
		PlatformInterview: types.PlatformInterview{Status: status},
	}
}

func TestCheck_RecruiterAlwaysAllowed(t *testing.T) {
	user := &types.User{Role: types.RoleRecruiter}
	assert.True(t, Check(user).Allowed)
}

func TestCheck_AttemptedStatusesAllowed(t *testing.T) {
	for _, status := range []types.PlatformStatus{
		types.PlatformPassed,
		types.PlatformFailed,
		types.PlatformPendingReview,
		types.PlatformCompleted,
	} {
		t.Run(string(status), func(t *testing.T) {
			assert.True(t, Check(candidate(status)).Allowed)
		})
	}
}

func TestCheck_SkippedAllowed(t *testing.T) {
	assert.True(t, Check(candidate(types.PlatformSkipped)).Allowed)
}

func TestCheck_PendingWithOnboardingAllowed(t *testing.T) {
	user := candidate(types.PlatformPending)
	user.IsOnboardingComplete = true
	assert.True(t, Check(user).Allowed)
}

func TestCheck_PendingWithLegacyFlagAllowed(t *testing.T) {
	user := candidate(types.PlatformPending)
	user.LegacyInterviewCompleted = true
	assert.True(t, Check(user).Allowed)
}

func TestCheck_PendingWithPassingLegacyScoreAllowed(t *testing.T) {
	score := 60
	user := candidate(types.PlatformPending)
	user.InterviewScore = &score
	assert.True(t, Check(user).Allowed)
}

func TestCheck_PendingWithFailingLegacyScoreDenied(t *testing.T) {
	score := 59
	user := candidate(types.PlatformPending)
	user.InterviewScore = &score

	decision := Check(user)
	assert.False(t, decision.Allowed)
	assert.Equal(t, CodeInterviewRequired, decision.Code)
}

func TestCheck_PendingWithNoRelaxationDenied(t *testing.T) {
	decision := Check(candidate(types.PlatformPending))

	assert.False(t, decision.Allowed)
	assert.Equal(t, CodeInterviewRequired, decision.Code)
	assert.Equal(t, types.PlatformPending, decision.Status)
	assert.NotEmpty(t, decision.Reason)
}

func TestCheck_InProgressDenied(t *testing.T) {
	decision := Check(candidate(types.PlatformInProgress))
	assert.False(t, decision.Allowed)
}

func TestCheck_UnsetStatusDenied(t *testing.T) {
	decision := Check(candidate(""))
	assert.False(t, decision.Allowed)
	assert.Equal(t, CodeInterviewRequired, decision.Code)
}
