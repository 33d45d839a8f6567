package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/hireloop/hireloop/internal/types"
)

// UpsertApplicantStatus records a candidate's status on a job, optionally
// linking the interview session and storing the interview score. The upsert
// keeps the side effect idempotent under retries after a crash mid-update.
func (db *DB) UpsertApplicantStatus(ctx context.Context, jobID, candidateID uuid.UUID, status types.ApplicantStatus, sessionID *uuid.UUID, interviewScore *int) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO applicants (job_id, candidate_id, status, session_id, interview_score, updated_at)
		 VALUES ($1, $2, $3, $4, $5, NOW())
		 ON CONFLICT (job_id, candidate_id)
		 DO UPDATE SET status = $3,
		               session_id = COALESCE($4, applicants.session_id),
		               interview_score = COALESCE($5, applicants.interview_score),
		               updated_at = NOW()`,
		jobID, candidateID, string(status), sessionID, interviewScore,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert applicant status: %w", err)
	}
	return nil
}

// ClearApplicantSession detaches a withdrawn session from the applicant and
// resets the status to applied.
func (db *DB) ClearApplicantSession(ctx context.Context, jobID, candidateID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE applicants
		 SET status = 'applied', session_id = NULL, interview_score = NULL, updated_at = NOW()
		 WHERE job_id = $1 AND candidate_id = $2`,
		jobID, candidateID,
	)
	if err != nil {
		return fmt.Errorf("failed to clear applicant session: %w", err)
	}
	return nil
}

// GetApplicant fetches one applicant row. Returns nil when not found.
func (db *DB) GetApplicant(ctx context.Context, jobID, candidateID uuid.UUID) (*types.Applicant, error) {
	var (
		applicant types.Applicant
		status    string
	)
	err := db.pool.QueryRow(ctx,
		`SELECT job_id, candidate_id, status, session_id, interview_score, updated_at
		 FROM applicants WHERE job_id = $1 AND candidate_id = $2`,
		jobID, candidateID,
	).Scan(&applicant.JobID, &applicant.CandidateID, &status,
		&applicant.SessionID, &applicant.InterviewScore, &applicant.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get applicant: %w", err)
	}
	applicant.Status = types.ApplicantStatus(status)
	return &applicant, nil
}
