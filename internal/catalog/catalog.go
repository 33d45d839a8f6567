// Package catalog resolves a job's interview pipeline and answers structural
// questions about it: which round owns a question index, when the pipeline is
// exhausted, and which rounds skip server-side generation.
package catalog

import (
	"fmt"

	"github.com/hireloop/hireloop/internal/types"
)

// DefaultQuestionsPerRound is the question count of each default round.
const DefaultQuestionsPerRound = 5

// DefaultPipeline returns the built-in two-round pipeline used when a job has
// no configured rounds: technical then HR, five questions each.
func DefaultPipeline() types.PipelineConfig {
	return types.PipelineConfig{
		Rounds: []types.Round{
			{
				RoundNumber:     1,
				RoundType:       types.RoundTechnical,
				Title:           "Technical Interview",
				DurationMinutes: 30,
				IsAIEnabled:     true,
				QuestionConfig:  types.QuestionConfig{QuestionCount: DefaultQuestionsPerRound},
			},
			{
				RoundNumber:     2,
				RoundType:       types.RoundHR,
				Title:           "HR Interview",
				DurationMinutes: 30,
				IsAIEnabled:     true,
				QuestionConfig:  types.QuestionConfig{QuestionCount: DefaultQuestionsPerRound},
			},
		},
	}
}

// ResolvePipeline returns the job's configured pipeline, or the default
// two-round pipeline when the job has none.
func ResolvePipeline(job *types.Job) types.PipelineConfig {
	if job == nil || job.Pipeline == nil || len(job.Pipeline.Rounds) == 0 {
		return DefaultPipeline()
	}
	return *job.Pipeline
}

// Validate checks the structural invariants of a configured pipeline:
// at least one round, round numbers strictly increasing from 1, known round
// types, and positive question counts for generated rounds.
func Validate(pipeline types.PipelineConfig) error {
	if len(pipeline.Rounds) == 0 {
		return fmt.Errorf("pipeline has no rounds")
	}
	for i, round := range pipeline.Rounds {
		if round.RoundNumber != i+1 {
			return fmt.Errorf("round %d has number %d, want %d", i, round.RoundNumber, i+1)
		}
		if !round.RoundType.IsValid() {
			return fmt.Errorf("round %d has unknown type %q", round.RoundNumber, round.RoundType)
		}
		if round.RoundType.IsConversational() && round.QuestionConfig.QuestionCount <= 0 {
			return fmt.Errorf("round %d (%s) has no question count", round.RoundNumber, round.RoundType)
		}
		if round.RoundType == types.RoundAssessment {
			if round.AssessmentConfig == nil || round.AssessmentConfig.QuestionCount <= 0 {
				return fmt.Errorf("round %d (assessment) has no assessment config", round.RoundNumber)
			}
		}
	}
	return nil
}

// RoundAt returns the round at a 0-based index, or false when the pipeline is
// exhausted.
func RoundAt(pipeline types.PipelineConfig, index int) (*types.Round, bool) {
	if index < 0 || index >= len(pipeline.Rounds) {
		return nil, false
	}
	return &pipeline.Rounds[index], true
}

// IsCodingRound reports whether a round's content comes from the external
// code-execution surface instead of server-side generation.
func IsCodingRound(round *types.Round) bool {
	if round == nil {
		return false
	}
	return round.RoundType == types.RoundCoding || round.RoundType == types.RoundDSA
}

// questionCount returns how many question slots a round contributes to the
// session's global question sequence. Coding rounds contribute none.
func questionCount(round *types.Round) int {
	switch {
	case IsCodingRound(round):
		return 0
	case round.RoundType == types.RoundAssessment:
		n := round.AssessmentConfig.QuestionCount
		if n > 10 {
			n = 10
		}
		return n
	default:
		return round.QuestionConfig.QuestionCount
	}
}

// QuestionBudget returns the total number of responses a session accepts:
// the sum of every non-coding round's question count. The default pipeline
// yields 10.
func QuestionBudget(pipeline types.PipelineConfig) int {
	total := 0
	for i := range pipeline.Rounds {
		total += questionCount(&pipeline.Rounds[i])
	}
	return total
}

// RoundForQuestionIndex maps a global 0-based question index to the round
// that owns it. Phase tagging derives from this mapping: under the default
// pipeline, indices 0-4 are technical and 5-9 are hr. Returns false when the
// index is past the pipeline's budget.
func RoundForQuestionIndex(pipeline types.PipelineConfig, index int) (*types.Round, bool) {
	if index < 0 {
		return nil, false
	}
	offset := 0
	for i := range pipeline.Rounds {
		round := &pipeline.Rounds[i]
		n := questionCount(round)
		if index < offset+n {
			return round, true
		}
		offset += n
	}
	return nil, false
}

// RoundIndexForQuestionIndex is RoundForQuestionIndex returning the round's
// 0-based pipeline position, used to advance a session's current round.
func RoundIndexForQuestionIndex(pipeline types.PipelineConfig, index int) (int, bool) {
	round, ok := RoundForQuestionIndex(pipeline, index)
	if !ok {
		return 0, false
	}
	return round.RoundNumber - 1, true
}
