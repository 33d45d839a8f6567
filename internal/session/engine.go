// Package session implements the interview session state machine: round
// sequencing, content generation orchestration, and the session lifecycle
// (in_progress -> completed | abandoned).
package session

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/hireloop/hireloop/internal/catalog"
	"github.com/hireloop/hireloop/internal/generation"
	"github.com/hireloop/hireloop/internal/types"
)

// Store is the persistence surface the engine needs. *db.DB satisfies it.
type Store interface {
	GetJob(ctx context.Context, jobID uuid.UUID) (*types.Job, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*types.InterviewSession, error)
	FindOpenSession(ctx context.Context, candidateID, jobID uuid.UUID) (*types.InterviewSession, error)
	CreateSession(ctx context.Context, session *types.InterviewSession) error
	UpdateSession(ctx context.Context, session *types.InterviewSession, expectedVersion int) error
	DeleteSession(ctx context.Context, sessionID uuid.UUID) error
	UpsertApplicantStatus(ctx context.Context, jobID, candidateID uuid.UUID, status types.ApplicantStatus, sessionID *uuid.UUID, interviewScore *int) error
	ClearApplicantSession(ctx context.Context, jobID, candidateID uuid.UUID) error
}

// Engine owns session transitions. All per-session operations are serialized
// by a keyed mutex; concurrent starts for one (candidate, job) collapse into
// a single flight.
type Engine struct {
	store Store
	gen   generation.Generator

	locks  *keyedMutex
	starts singleflight.Group
}

// NewEngine creates a session engine. The generator is injected so tests can
// substitute doubles that time out or emit malformed output.
func NewEngine(store Store, gen generation.Generator) *Engine {
	return &Engine{
		store: store,
		gen:   gen,
		locks: newKeyedMutex(),
	}
}

// StartResult is what a candidate needs to begin or resume an interview.
type StartResult struct {
	Session *types.InterviewSession `json:"session"`
	Round   *types.Round            `json:"round,omitempty"`
	// Pending holds the generated content not yet answered: the next
	// conversational question, or the remaining assessment items.
	Pending []types.Question `json:"pending,omitempty"`
	Resumed bool             `json:"resumed"`
}

// Start creates a session for (candidate, job) or resumes the open one.
// Idempotent: a second start with no intervening submit or withdrawal
// returns the existing session unchanged, including its persisted
// assessment batch.
func (e *Engine) Start(ctx context.Context, candidateID, jobID uuid.UUID) (*StartResult, error) {
	key := candidateID.String() + "/" + jobID.String()
	v, err, _ := e.starts.Do(key, func() (any, error) {
		return e.start(ctx, candidateID, jobID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*StartResult), nil
}

func (e *Engine) start(ctx context.Context, candidateID, jobID uuid.UUID) (*StartResult, error) {
	job, err := e.store.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, &ErrNotFound{Kind: "job", ID: jobID}
	}
	pipeline := e.resolvePipeline(job)

	// Idempotent resume path.
	open, err := e.store.FindOpenSession(ctx, candidateID, jobID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		round, _ := catalog.RoundAt(pipeline, open.CurrentRoundIndex)
		return &StartResult{
			Session: open,
			Round:   round,
			Pending: pendingQuestions(open),
			Resumed: true,
		}, nil
	}

	round, ok := catalog.RoundAt(pipeline, 0)
	if !ok {
		return nil, fmt.Errorf("pipeline for job %s has no rounds", jobID)
	}

	now := time.Now().UTC()
	session := &types.InterviewSession{
		ID:                uuid.New(),
		CandidateID:       candidateID,
		JobID:             &jobID,
		Status:            types.SessionInProgress,
		CurrentRoundIndex: 0,
		Questions:         e.generateRoundContent(ctx, job.Context, round, nil),
		CreatedAt:         now,
	}

	if err := e.store.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	if err := e.store.UpsertApplicantStatus(ctx, jobID, candidateID, types.ApplicantInterviewing, &session.ID, nil); err != nil {
		// The session exists; the applicant row catches up on the next
		// status-changing operation via the upsert.
		log.Printf("[session] applicant update failed for job %s: %v", jobID, err)
	}

	return &StartResult{
		Session: session,
		Round:   round,
		Pending: pendingQuestions(session),
	}, nil
}

// Get returns a session by id for read-only projection.
func (e *Engine) Get(ctx context.Context, sessionID uuid.UUID) (*types.InterviewSession, error) {
	session, err := e.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, &ErrNotFound{Kind: "session", ID: sessionID}
	}
	return session, nil
}

// Abandon deletes a session before any evaluation work was committed: the
// withdraw-application path. Rejected once a response has been submitted or
// the session is terminal.
func (e *Engine) Abandon(ctx context.Context, sessionID uuid.UUID) error {
	unlock := e.locks.Lock(sessionID)
	defer unlock()

	session, err := e.store.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return &ErrNotFound{Kind: "session", ID: sessionID}
	}
	if session.Status == types.SessionCompleted {
		return &ErrWithdrawNotAllowed{Reason: "interview already completed"}
	}
	if len(session.Responses) > 0 {
		return &ErrWithdrawNotAllowed{Reason: "responses already submitted"}
	}

	if err := e.store.DeleteSession(ctx, sessionID); err != nil {
		return err
	}
	if session.JobID != nil {
		if err := e.store.ClearApplicantSession(ctx, *session.JobID, session.CandidateID); err != nil {
			log.Printf("[session] applicant clear failed for job %s: %v", *session.JobID, err)
		}
	}
	return nil
}

// resolvePipeline returns the job's pipeline, falling back to the default
// when the configured one is missing or structurally invalid.
func (e *Engine) resolvePipeline(job *types.Job) types.PipelineConfig {
	pipeline := catalog.ResolvePipeline(job)
	if err := catalog.Validate(pipeline); err != nil {
		log.Printf("[session] invalid pipeline for job %s, using default: %v", job.ID, err)
		return catalog.DefaultPipeline()
	}
	return pipeline
}

// generateRoundContent produces a round's first content unit: one question
// for conversational rounds, the whole batch for assessment rounds, nothing
// for coding rounds (the external code editor supplies results directly).
func (e *Engine) generateRoundContent(ctx context.Context, jobCtx types.JobContext, round *types.Round, history []types.QAPair) []types.Question {
	switch {
	case catalog.IsCodingRound(round):
		return nil
	case round.RoundType == types.RoundAssessment:
		questions := e.gen.GenerateAssessment(ctx, round.AssessmentConfig.AssessmentTypes, round.AssessmentConfig.QuestionCount, jobCtx)
		for i := range questions {
			questions[i].RoundNumber = round.RoundNumber
		}
		return questions
	default:
		q := e.gen.GenerateQuestion(ctx, jobCtx, round.RoundType, history)
		q.RoundNumber = round.RoundNumber
		return []types.Question{q}
	}
}

// pendingQuestions returns the generated-but-unanswered tail of a session.
func pendingQuestions(session *types.InterviewSession) []types.Question {
	if len(session.Responses) >= len(session.Questions) {
		return nil
	}
	return session.Questions[len(session.Responses):]
}

// history builds the ordered question/answer pairs already committed.
func history(session *types.InterviewSession) []types.QAPair {
	pairs := make([]types.QAPair, 0, len(session.Responses))
	for _, resp := range session.Responses {
		if resp.QuestionIndex < 0 || resp.QuestionIndex >= len(session.Questions) {
			continue
		}
		pairs = append(pairs, types.QAPair{
			Question: session.Questions[resp.QuestionIndex].Text,
			Answer:   resp.Answer,
		})
	}
	return pairs
}
