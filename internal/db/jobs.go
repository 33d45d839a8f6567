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

// CreateJob inserts a job posting and returns its ID. pipeline may be nil
// (the catalog substitutes the default pipeline at resolution time).
func (db *DB) CreateJob(ctx context.Context, recruiterID uuid.UUID, jobCtx types.JobContext, pipeline *types.PipelineConfig) (uuid.UUID, error) {
	ctxData, err := json.Marshal(jobCtx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal job context: %w", err)
	}
	var pipelineData []byte
	if pipeline != nil {
		pipelineData, err = json.Marshal(pipeline)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal pipeline: %w", err)
		}
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO jobs (recruiter_id, context, pipeline)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		recruiterID, ctxData, pipelineData,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create job: %w", err)
	}
	return id, nil
}

// GetJob fetches a job by ID. Returns nil when not found.
func (db *DB) GetJob(ctx context.Context, jobID uuid.UUID) (*types.Job, error) {
	var (
		job          types.Job
		ctxData      []byte
		pipelineData []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, recruiter_id, context, pipeline, created_at FROM jobs WHERE id = $1`,
		jobID,
	).Scan(&job.ID, &job.RecruiterID, &ctxData, &pipelineData, &job.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	if len(ctxData) > 0 {
		if err := json.Unmarshal(ctxData, &job.Context); err != nil {
			return nil, fmt.Errorf("failed to unmarshal job context: %w", err)
		}
	}
	if len(pipelineData) > 0 {
		var pipeline types.PipelineConfig
		if err := json.Unmarshal(pipelineData, &pipeline); err != nil {
			return nil, fmt.Errorf("failed to unmarshal pipeline: %w", err)
		}
		job.Pipeline = &pipeline
	}
	return &job, nil
}
