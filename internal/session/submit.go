package session

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hireloop/hireloop/internal/scoring"
	"github.com/hireloop/hireloop/internal/types"
)

// Submit evaluates the full transcript and finalizes the session.
// Idempotent: once completed, the stored result is returned and nothing is
// recomputed. Freshly supplied answers win over stored responses per index.
func (e *Engine) Submit(ctx context.Context, sessionID uuid.UUID, answers []string, coding *types.CodingResults) (*types.ScoreReport, error) {
	unlock := e.locks.Lock(sessionID)
	defer unlock()

	session, err := e.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, &ErrNotFound{Kind: "session", ID: sessionID}
	}
	if session.Status == types.SessionCompleted {
		return reportFromStored(session), nil
	}
	if session.Status == types.SessionAbandoned {
		return nil, &ErrTerminal{Status: session.Status}
	}

	jobCtx, _, err := e.sessionPipeline(ctx, session)
	if err != nil {
		return nil, err
	}

	summary := e.gen.EvaluateTranscript(ctx, transcript(session, answers), jobCtx)
	report := scoring.Aggregate(summary, coding)
	if summary.GeneratedBy == types.GeneratedByFallback {
		// A fallback evaluation is provisional and never shortlists on its
		// own; the recommendation already routes the result to manual review.
		report.Passed = false
		log.Printf("[session] fallback evaluation for %s held for manual review", sessionID)
	}

	now := time.Now().UTC()
	passed := report.Passed
	expected := session.Version
	session.Status = types.SessionCompleted
	session.CompletedAt = &now
	session.Passed = &passed
	session.Scoring = &types.Scoring{
		TechnicalAccuracy: report.TechnicalAccuracy,
		Communication:     report.Communication,
		Confidence:        report.Confidence,
		Relevance:         report.Relevance,
		OverallScore:      report.OverallScore,
		HRScore:           report.HRScore,
		CodingScore:       report.CodingScore,
		Strengths:         report.Strengths,
		Weaknesses:        report.Weaknesses,
		Recommendations:   report.Recommendations,
		DetailedFeedback:  report.DetailedFeedback,
	}

	if err := e.store.UpdateSession(ctx, session, expected); err != nil {
		return nil, err
	}

	if session.JobID != nil {
		status := types.ApplicantReviewed
		if passed {
			status = types.ApplicantShortlisted
		}
		score := report.OverallScore
		if err := e.store.UpsertApplicantStatus(ctx, *session.JobID, session.CandidateID, status, &session.ID, &score); err != nil {
			log.Printf("[session] applicant update failed for job %s: %v", *session.JobID, err)
		}
	}

	return &report, nil
}

// transcript assembles the question/answer pairs for evaluation, preferring
// freshly supplied answers and falling back to stored responses per index.
func transcript(session *types.InterviewSession, answers []string) []types.QAPair {
	stored := make(map[int]string, len(session.Responses))
	for _, resp := range session.Responses {
		stored[resp.QuestionIndex] = resp.Answer
	}

	pairs := make([]types.QAPair, 0, len(session.Questions))
	for i := range session.Questions {
		answer := ""
		if i < len(answers) && strings.TrimSpace(answers[i]) != "" {
			answer = answers[i]
		} else {
			answer = stored[i]
		}
		pairs = append(pairs, types.QAPair{
			Question: session.Questions[i].Text,
			Answer:   answer,
		})
	}
	return pairs
}

// reportFromStored reconstructs the submit result from a completed session.
func reportFromStored(session *types.InterviewSession) *types.ScoreReport {
	report := &types.ScoreReport{}
	if session.Passed != nil {
		report.Passed = *session.Passed
	}
	if s := session.Scoring; s != nil {
		report.TechnicalAccuracy = s.TechnicalAccuracy
		report.Communication = s.Communication
		report.Confidence = s.Confidence
		report.Relevance = s.Relevance
		report.OverallScore = s.OverallScore
		report.TechnicalScore = s.TechnicalAccuracy
		report.HRScore = s.HRScore
		report.CodingScore = s.CodingScore
		report.Strengths = s.Strengths
		report.Weaknesses = s.Weaknesses
		report.Recommendations = s.Recommendations
		report.DetailedFeedback = s.DetailedFeedback
	}
	return report
}
