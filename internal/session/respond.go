package session

import (
	"context"

	"github.com/google/uuid"
	"github.com/hireloop/hireloop/internal/catalog"
	"github.com/hireloop/hireloop/internal/types"
)

// NextResult is the outcome of a response submission: either the next
// content unit, or the completion signal once the question budget is spent.
type NextResult struct {
	Completed     bool            `json:"completed"`
	Question      *types.Question `json:"question,omitempty"`
	QuestionIndex int             `json:"question_index"`
	RoundNumber   int             `json:"round_number,omitempty"`
}

// SubmitResponse records a candidate's answer and produces the next
// question. Round advancement is driven by the pipeline's configured
// question counts: the default pipeline yields the 5-technical/5-hr split.
// Once the pipeline's question budget is exhausted the caller must Submit;
// further submissions return Completed without appending anything.
func (e *Engine) SubmitResponse(ctx context.Context, sessionID uuid.UUID, answer string, timeSpentSeconds int) (*NextResult, error) {
	unlock := e.locks.Lock(sessionID)
	defer unlock()

	session, err := e.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, &ErrNotFound{Kind: "session", ID: sessionID}
	}
	if session.Status.IsTerminal() {
		return nil, &ErrTerminal{Status: session.Status}
	}

	jobCtx, pipeline, err := e.sessionPipeline(ctx, session)
	if err != nil {
		return nil, err
	}
	budget := catalog.QuestionBudget(pipeline)

	// Budget already spent: signal completion, append nothing.
	if len(session.Responses) >= budget {
		return &NextResult{Completed: true}, nil
	}

	expected := session.Version
	session.Responses = append(session.Responses, types.Response{
		QuestionIndex:    len(session.Responses),
		Answer:           answer,
		TimeSpentSeconds: timeSpentSeconds,
	})

	if len(session.Responses) >= budget {
		if err := e.store.UpdateSession(ctx, session, expected); err != nil {
			return nil, err
		}
		return &NextResult{Completed: true}, nil
	}

	// Advance the round pointer to the round owning the next question.
	// The pointer never moves backwards.
	nextIndex := len(session.Responses)
	if roundIdx, ok := catalog.RoundIndexForQuestionIndex(pipeline, nextIndex); ok && roundIdx > session.CurrentRoundIndex {
		session.CurrentRoundIndex = roundIdx
	}
	round, ok := catalog.RoundAt(pipeline, session.CurrentRoundIndex)
	if !ok {
		return &NextResult{Completed: true}, nil
	}

	// Assessment batches generated earlier already cover upcoming indices;
	// only generate when the next slot has no content yet.
	if nextIndex >= len(session.Questions) {
		session.Questions = append(session.Questions,
			e.generateRoundContent(ctx, jobCtx, round, history(session))...)
	}

	if err := e.store.UpdateSession(ctx, session, expected); err != nil {
		return nil, err
	}

	result := &NextResult{QuestionIndex: nextIndex, RoundNumber: round.RoundNumber}
	if nextIndex < len(session.Questions) {
		result.Question = &session.Questions[nextIndex]
	}
	return result, nil
}

// sessionPipeline resolves the pipeline and generation context for a
// session. Platform-level sessions (no job) use the default pipeline.
func (e *Engine) sessionPipeline(ctx context.Context, session *types.InterviewSession) (types.JobContext, types.PipelineConfig, error) {
	if session.JobID == nil {
		return types.JobContext{Title: "General Screening Interview"}, catalog.DefaultPipeline(), nil
	}
	job, err := e.store.GetJob(ctx, *session.JobID)
	if err != nil {
		return types.JobContext{}, types.PipelineConfig{}, err
	}
	if job == nil {
		return types.JobContext{}, types.PipelineConfig{}, &ErrNotFound{Kind: "job", ID: *session.JobID}
	}
	return job.Context, e.resolvePipeline(job), nil
}
