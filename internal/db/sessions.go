package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/hireloop/hireloop/internal/types"
)

// CreateSession inserts a new interview session. The partial unique index on
// (candidate_id, job_id) for open sessions makes a duplicate start fail at
// the database even if two requests race past the application check.
func (db *DB) CreateSession(ctx context.Context, session *types.InterviewSession) error {
	questions, responses, scoring, err := marshalSessionDocs(session)
	if err != nil {
		return err
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO interview_sessions
		   (id, candidate_id, job_id, status, current_round_index,
		    questions, responses, scoring, passed, version, created_at, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		session.ID, session.CandidateID, session.JobID, string(session.Status),
		session.CurrentRoundIndex, questions, responses, scoring,
		session.Passed, session.Version, session.CreatedAt, session.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetSession fetches a session by ID. Returns nil when not found.
func (db *DB) GetSession(ctx context.Context, sessionID uuid.UUID) (*types.InterviewSession, error) {
	return db.scanSession(db.pool.QueryRow(ctx,
		`SELECT id, candidate_id, job_id, status, current_round_index,
		        questions, responses, scoring, passed, version, created_at, completed_at
		 FROM interview_sessions WHERE id = $1`, sessionID))
}

// FindOpenSession returns the candidate's scheduled or in-progress session
// for a job, or nil when none exists.
func (db *DB) FindOpenSession(ctx context.Context, candidateID, jobID uuid.UUID) (*types.InterviewSession, error) {
	return db.scanSession(db.pool.QueryRow(ctx,
		`SELECT id, candidate_id, job_id, status, current_round_index,
		        questions, responses, scoring, passed, version, created_at, completed_at
		 FROM interview_sessions
		 WHERE candidate_id = $1 AND job_id = $2 AND status IN ('scheduled', 'in_progress')`,
		candidateID, jobID))
}

// UpdateSession conditionally writes a session: the row is only updated when
// its stored version still equals expectedVersion, and the version is bumped
// in the same statement. Returns ErrVersionConflict when the guard fails.
func (db *DB) UpdateSession(ctx context.Context, session *types.InterviewSession, expectedVersion int) error {
	questions, responses, scoring, err := marshalSessionDocs(session)
	if err != nil {
		return err
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE interview_sessions
		 SET status = $1, current_round_index = $2, questions = $3, responses = $4,
		     scoring = $5, passed = $6, completed_at = $7, version = version + 1
		 WHERE id = $8 AND version = $9`,
		string(session.Status), session.CurrentRoundIndex, questions, responses,
		scoring, session.Passed, session.CompletedAt, session.ID, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrVersionConflict
	}
	session.Version = expectedVersion + 1
	return nil
}

// DeleteSession removes a session row (the withdrawal path).
func (db *DB) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`DELETE FROM interview_sessions WHERE id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func marshalSessionDocs(session *types.InterviewSession) (questions, responses, scoring []byte, err error) {
	questions, err = json.Marshal(session.Questions)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal questions: %w", err)
	}
	responses, err = json.Marshal(session.Responses)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal responses: %w", err)
	}
	if session.Scoring != nil {
		scoring, err = json.Marshal(session.Scoring)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to marshal scoring: %w", err)
		}
	}
	return questions, responses, scoring, nil
}

func (db *DB) scanSession(row pgx.Row) (*types.InterviewSession, error) {
	var (
		session   types.InterviewSession
		status    string
		questions []byte
		responses []byte
		scoring   []byte
	)
	err := row.Scan(&session.ID, &session.CandidateID, &session.JobID, &status,
		&session.CurrentRoundIndex, &questions, &responses, &scoring,
		&session.Passed, &session.Version, &session.CreatedAt, &session.CompletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	session.Status = types.SessionStatus(status)
	if len(questions) > 0 {
		if err := json.Unmarshal(questions, &session.Questions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal questions: %w", err)
		}
	}
	if len(responses) > 0 {
		if err := json.Unmarshal(responses, &session.Responses); err != nil {
			return nil, fmt.Errorf("failed to unmarshal responses: %w", err)
		}
	}
	if len(scoring) > 0 {
		var s types.Scoring
		if err := json.Unmarshal(scoring, &s); err != nil {
			return nil, fmt.Errorf("failed to unmarshal scoring: %w", err)
		}
		session.Scoring = &s
	}
	return &session, nil
}
