package generation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/internal/llm"
	"github.com/hireloop/hireloop/internal/types"
)

// fakeClient scripts llm.Client behavior for the adapter.
type fakeClient struct {
	response string
	err      error
	// block makes every call hang until the context is cancelled,
	// simulating a stalled provider.
	block bool
	calls int
}

func (f *fakeClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return f.GenerateJSON(ctx, prompt, tier)
}

func (f *fakeClient) GenerateJSON(ctx context.Context, _ string, _ llm.ModelTier) (string, error) {
	f.calls++
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.response, f.err
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                  { return nil }

func testJob() types.JobContext {
	return types.JobContext{
		Title:           "Backend Engineer",
		Skills:          []string{"Go", "PostgreSQL"},
		ExperienceLevel: "mid",
		Description:     "Build and operate backend services.",
	}
}

func newTestAdapter(client llm.Client) *Adapter {
	return NewAdapter(client, WithTimeouts(100*time.Millisecond, 100*time.Millisecond, 100*time.Millisecond))
}

func TestGenerateQuestion_UsesModelOutput(t *testing.T) {
	client := &fakeClient{response: `{"question": "How do you handle schema migrations in production?", "category": "technical", "difficulty": "medium"}`}
	a := newTestAdapter(client)

	q := a.GenerateQuestion(context.Background(), testJob(), types.RoundTechnical, nil)

	assert.Equal(t, "How do you handle schema migrations in production?", q.Text)
	assert.Equal(t, types.RoundTechnical, q.Category)
	assert.Equal(t, types.GeneratedByAI, q.GeneratedBy)
	assert.NotEqual(t, q.ID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestGenerateQuestion_StripsCodeFences(t *testing.T) {
	client := &fakeClient{response: "Here you go:\n```json\n{\"question\": \"Describe a caching strategy you have used.\", \"difficulty\": \"easy\"}\n```\nHope that helps!"}
	a := newTestAdapter(client)

	q := a.GenerateQuestion(context.Background(), testJob(), types.RoundTechnical, nil)

	assert.Equal(t, "Describe a caching strategy you have used.", q.Text)
	assert.Equal(t, types.GeneratedByAI, q.GeneratedBy)
}

func TestGenerateQuestion_FallbackOnError(t *testing.T) {
	client := &fakeClient{err: errors.New("provider unavailable")}
	a := newTestAdapter(client)

	q := a.GenerateQuestion(context.Background(), testJob(), types.RoundTechnical, nil)

	assert.Equal(t, types.GeneratedByFallback, q.GeneratedBy)
	assert.NotEmpty(t, q.Text)
}

func TestGenerateQuestion_FallbackOnTimeout(t *testing.T) {
	client := &fakeClient{block: true}
	a := newTestAdapter(client)

	start := time.Now()
	q := a.GenerateQuestion(context.Background(), testJob(), types.RoundHR, nil)

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, types.GeneratedByFallback, q.GeneratedBy)
	assert.Equal(t, types.RoundHR, q.Category)
}

func TestGenerateQuestion_FallbackOnSchemaMismatch(t *testing.T) {
	// well-formed JSON that fails validation: question too short
	client := &fakeClient{response: `{"question": "hi"}`}
	a := newTestAdapter(client)

	q := a.GenerateQuestion(context.Background(), testJob(), types.RoundTechnical, nil)
	assert.Equal(t, types.GeneratedByFallback, q.GeneratedBy)
}

func TestGenerateQuestion_FallbackOnGarbageOutput(t *testing.T) {
	client := &fakeClient{response: "I'm sorry, I can't help with that."}
	a := newTestAdapter(client)

	q := a.GenerateQuestion(context.Background(), testJob(), types.RoundTechnical, nil)
	assert.Equal(t, types.GeneratedByFallback, q.GeneratedBy)
}

func TestFallbackQuestion_Deterministic(t *testing.T) {
	q1 := FallbackQuestion(types.RoundTechnical, 2)
	q2 := FallbackQuestion(types.RoundTechnical, 2)
	assert.Equal(t, q1.Text, q2.Text)

	// advancing the asked count cycles the bank
	q3 := FallbackQuestion(types.RoundTechnical, 3)
	assert.NotEqual(t, q1.Text, q3.Text)
}

func TestFallbackQuestion_PhaseBanks(t *testing.T) {
	tech := FallbackQuestion(types.RoundTechnical, 0)
	hr := FallbackQuestion(types.RoundHR, 0)
	assert.NotEqual(t, tech.Text, hr.Text)
	assert.Equal(t, types.RoundHR, hr.Category)
}

func TestGenerateAssessment_UsesModelOutput(t *testing.T) {
	client := &fakeClient{response: `[
		{"question": "Which structure gives O(1) average lookup?", "options": ["Array", "Hash table", "Tree", "List"], "correct_index": 1, "difficulty": "easy", "explanation": "Hashing.", "assessment_type": "dsa"}
	]`}
	a := newTestAdapter(client)

	questions := a.GenerateAssessment(context.Background(), []string{"dsa"}, 1, testJob())

	require.Len(t, questions, 1)
	assert.Equal(t, types.GeneratedByAI, questions[0].GeneratedBy)
	assert.Equal(t, types.RoundAssessment, questions[0].Category)
	require.NotNil(t, questions[0].CorrectIndex)
	assert.Equal(t, 1, *questions[0].CorrectIndex)
	assert.Len(t, questions[0].Options, 4)
}

func TestGenerateAssessment_ClampsCount(t *testing.T) {
	client := &fakeClient{err: errors.New("down")}
	a := newTestAdapter(client)

	questions := a.GenerateAssessment(context.Background(), []string{"aptitude"}, 25, testJob())
	assert.Len(t, questions, MaxAssessmentQuestions)

	questions = a.GenerateAssessment(context.Background(), []string{"aptitude"}, 0, testJob())
	assert.Len(t, questions, MaxAssessmentQuestions)
}

func TestGenerateAssessment_FallbackBatchIsWellFormed(t *testing.T) {
	client := &fakeClient{block: true}
	a := newTestAdapter(client)

	questions := a.GenerateAssessment(context.Background(), []string{"technical"}, 5, testJob())

	require.Len(t, questions, 5)
	for _, q := range questions {
		assert.Equal(t, types.GeneratedByFallback, q.GeneratedBy)
		assert.Len(t, q.Options, 4)
		require.NotNil(t, q.CorrectIndex)
		assert.GreaterOrEqual(t, *q.CorrectIndex, 0)
		assert.LessOrEqual(t, *q.CorrectIndex, 3)
		assert.Equal(t, "technical", q.AssessmentType)
	}
}

func TestGenerateAssessment_FallbackOnBadItemShape(t *testing.T) {
	// three options instead of four
	client := &fakeClient{response: `[{"question": "Pick one of these.", "options": ["a", "b", "c"], "correct_index": 0}]`}
	a := newTestAdapter(client)

	questions := a.GenerateAssessment(context.Background(), nil, 2, testJob())
	require.Len(t, questions, 2)
	assert.Equal(t, types.GeneratedByFallback, questions[0].GeneratedBy)
}

func TestEvaluateTranscript_UsesModelOutput(t *testing.T) {
	client := &fakeClient{response: `{
		"technical_score": 82, "hr_score": 74, "communication": 78,
		"confidence": 70, "relevance": 80, "overall_score": 79,
		"feedback": "Strong fundamentals.",
		"strengths": ["clear explanations"], "weaknesses": ["limited system design depth"],
		"recommendations": ["proceed to onsite"]
	}`}
	a := newTestAdapter(client)

	summary := a.EvaluateTranscript(context.Background(), []types.QAPair{{Question: "Q", Answer: "A"}}, testJob())

	assert.Equal(t, 82, summary.TechnicalScore)
	assert.Equal(t, 74, summary.HRScore)
	assert.Equal(t, 79, summary.OverallScore)
	assert.Equal(t, types.GeneratedByAI, summary.GeneratedBy)
}

func TestEvaluateTranscript_FallbackIsNeutral(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}
	a := newTestAdapter(client)

	summary := a.EvaluateTranscript(context.Background(), nil, testJob())

	assert.Equal(t, types.GeneratedByFallback, summary.GeneratedBy)
	assert.Equal(t, 60, summary.OverallScore)
	assert.Equal(t, 60, summary.TechnicalScore)
	assert.Equal(t, 60, summary.HRScore)
	require.NotEmpty(t, summary.Recommendations)
	assert.Contains(t, summary.Recommendations[0], "Manual review")
}

func TestEvaluateTranscript_FallbackOnMissingRequiredFields(t *testing.T) {
	client := &fakeClient{response: `{"overall_score": 90}`}
	a := newTestAdapter(client)

	summary := a.EvaluateTranscript(context.Background(), nil, testJob())
	assert.Equal(t, types.GeneratedByFallback, summary.GeneratedBy)
}

func TestFormatHistory(t *testing.T) {
	assert.Equal(t, "(no questions asked yet)", formatHistory(nil))

	out := formatHistory([]types.QAPair{{Question: "What is Go?", Answer: "A language."}})
	assert.Contains(t, out, "Q1: What is Go?")
	assert.Contains(t, out, "A1: A language.")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 100))
	assert.Equal(t, "ab", truncate("abcdef", 2))

	// never splits a multibyte rune
	cut := truncate("héllo", 2)
	assert.Equal(t, "h", cut)
}
