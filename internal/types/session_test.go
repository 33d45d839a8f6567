package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionStatus_Lifecycle(t *testing.T) {
	assert.True(t, SessionCompleted.IsTerminal())
	assert.True(t, SessionAbandoned.IsTerminal())
	assert.False(t, SessionInProgress.IsTerminal())
	assert.False(t, SessionScheduled.IsTerminal())

	assert.True(t, SessionScheduled.IsOpen())
	assert.True(t, SessionInProgress.IsOpen())
	assert.False(t, SessionCompleted.IsOpen())
	assert.False(t, SessionAbandoned.IsOpen())
}

func TestQuestion_IsAssessment(t *testing.T) {
	mcq := &Question{Options: []string{"a", "b", "c", "d"}}
	assert.True(t, mcq.IsAssessment())

	conversational := &Question{Text: "Tell me about your last project."}
	assert.False(t, conversational.IsAssessment())
}

func TestRoundType_Classification(t *testing.T) {
	assert.True(t, RoundTechnical.IsConversational())
	assert.True(t, RoundHR.IsConversational())
	assert.False(t, RoundAssessment.IsConversational())
	assert.False(t, RoundCoding.IsConversational())

	assert.True(t, RoundDSA.IsValid())
	assert.False(t, RoundType("panel").IsValid())
}

func TestPlatformStatus_Attempted(t *testing.T) {
	for _, s := range []PlatformStatus{PlatformPassed, PlatformFailed, PlatformPendingReview, PlatformCompleted} {
		assert.True(t, s.Attempted(), string(s))
	}
	for _, s := range []PlatformStatus{PlatformPending, PlatformInProgress, PlatformSkipped, ""} {
		assert.False(t, s.Attempted(), string(s))
	}
}

func TestPlatformStatus_IsValid(t *testing.T) {
	for _, s := range []PlatformStatus{PlatformPending, PlatformInProgress, PlatformPassed,
		PlatformFailed, PlatformPendingReview, PlatformCompleted, PlatformSkipped} {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, PlatformStatus("waived").IsValid())
	assert.False(t, PlatformStatus("").IsValid())
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleCandidate.IsValid())
	assert.True(t, RoleRecruiter.IsValid())
	assert.False(t, Role("admin").IsValid())
	assert.False(t, Role("").IsValid())
}
