// Package generation wraps the LLM question/assessment/evaluation calls behind
// a Generator interface. Every call is bounded by a timeout and falls back to
// deterministic content on failure, so a session can always proceed.
package generation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hireloop/hireloop/internal/llm"
	"github.com/hireloop/hireloop/internal/types"
)

// MaxAssessmentQuestions is the hard ceiling on assessment batch size.
// Larger batches are clamped to bound generation latency.
const MaxAssessmentQuestions = 10

// Default call timeouts. Assessment batches are the slowest call.
const (
	DefaultQuestionTimeout   = 45 * time.Second
	DefaultAssessmentTimeout = 90 * time.Second
	DefaultEvaluationTimeout = 60 * time.Second
)

// Generator produces interview content. Implementations never fail: on
// timeout or unusable model output they substitute deterministic fallback
// content tagged GeneratedByFallback.
type Generator interface {
	// GenerateQuestion produces the next conversational question for a phase,
	// informed by the prior question/answer history of the session.
	GenerateQuestion(ctx context.Context, job types.JobContext, phase types.RoundType, history []types.QAPair) types.Question
	// GenerateAssessment produces a batch of multiple-choice items.
	// count is clamped to MaxAssessmentQuestions.
	GenerateAssessment(ctx context.Context, assessmentTypes []string, count int, job types.JobContext) []types.Question
	// EvaluateTranscript scores a full interview transcript.
	EvaluateTranscript(ctx context.Context, pairs []types.QAPair, job types.JobContext) types.EvaluationSummary
}

// Adapter implements Generator on top of an llm.Client.
type Adapter struct {
	client llm.Client

	questionTimeout   time.Duration
	assessmentTimeout time.Duration
	evaluationTimeout time.Duration
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithTimeouts overrides the per-call timeouts. Zero values keep defaults.
func WithTimeouts(question, assessment, evaluation time.Duration) Option {
	return func(a *Adapter) {
		if question > 0 {
			a.questionTimeout = question
		}
		if assessment > 0 {
			a.assessmentTimeout = assessment
		}
		if evaluation > 0 {
			a.evaluationTimeout = evaluation
		}
	}
}

// NewAdapter creates a generation adapter over the given LLM client.
func NewAdapter(client llm.Client, opts ...Option) *Adapter {
	a := &Adapter{
		client:            client,
		questionTimeout:   DefaultQuestionTimeout,
		assessmentTimeout: DefaultAssessmentTimeout,
		evaluationTimeout: DefaultEvaluationTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// callJSON runs one LLM call raced against a timeout. A result arriving after
// the deadline is dropped on the buffered channel; the fallback path has
// already committed by then.
func (a *Adapter) callJSON(ctx context.Context, prompt string, tier llm.ModelTier, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		text string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		text, err := a.client.GenerateJSON(ctx, prompt, tier)
		ch <- result{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("generation timed out after %s: %w", timeout, ctx.Err())
	case r := <-ch:
		if r.err != nil {
			return "", fmt.Errorf("generation failed: %w", r.err)
		}
		return r.text, nil
	}
}

// formatHistory renders prior question/answer pairs for prompt inclusion.
func formatHistory(history []types.QAPair) string {
	if len(history) == 0 {
		return "(no questions asked yet)"
	}
	var sb strings.Builder
	for i, pair := range history {
		fmt.Fprintf(&sb, "Q%d: %s\nA%d: %s\n", i+1, pair.Question, i+1, pair.Answer)
	}
	return sb.String()
}

// clampScore bounds a score to [0, 100].
func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
