package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/hireloop/hireloop/internal/eligibility"
	"github.com/hireloop/hireloop/internal/server/middleware"
	"github.com/hireloop/hireloop/internal/types"
)

// StartInterviewRequest is the request body for /job-interview/start.
type StartInterviewRequest struct {
	JobID string `json:"job_id"`
}

// NextQuestionRequest is the request body for /job-interview/next.
type NextQuestionRequest struct {
	SessionID        string `json:"session_id"`
	Answer           string `json:"answer"`
	TimeSpentSeconds int    `json:"time_spent_seconds,omitempty"`
}

// SubmitInterviewRequest is the request body for /job-interview/submit.
type SubmitInterviewRequest struct {
	SessionID     string               `json:"session_id"`
	Answers       []string             `json:"answers,omitempty"`
	CodingResults *types.CodingResults `json:"coding_results,omitempty"`
}

// requireCandidate loads the authenticated user and runs the eligibility
// gate. It writes the error response itself and returns nil when the caller
// should stop.
func (s *Server) requireCandidate(w http.ResponseWriter, r *http.Request) *types.User {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "")
		return nil
	}

	user, err := s.db.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error(), "")
		return nil
	}
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Unknown account", "")
		return nil
	}

	decision := eligibility.Check(user)
	if !decision.Allowed {
		gateErr := &ErrNotEligible{Code: decision.Code, Reason: decision.Reason, Status: decision.Status}
		writeJSON(w, http.StatusForbidden, map[string]any{
			"success":                   false,
			"error":                     gateErr.Reason,
			"code":                      gateErr.Code,
			"platform_interview_status": string(decision.Status),
		})
		return nil
	}
	return user
}

// handleStartInterview starts or resumes a job-interview session.
func (s *Server) handleStartInterview(w http.ResponseWriter, r *http.Request) {
	user := s.requireCandidate(w, r)
	if user == nil {
		return
	}

	var req StartInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error(), "")
		return
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid job_id format", "")
		return
	}

	result, err := s.engine.Start(r.Context(), user.ID, jobID)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error(), ErrorCode(err))
		return
	}

	status := http.StatusCreated
	if result.Resumed {
		status = http.StatusOK
	}
	writeJSON(w, status, result)
}

// handleNextQuestion records an answer and returns the next content unit.
func (s *Server) handleNextQuestion(w http.ResponseWriter, r *http.Request) {
	user := s.requireCandidate(w, r)
	if user == nil {
		return
	}

	var req NextQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error(), "")
		return
	}
	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid session_id format", "")
		return
	}

	if !s.ownsSession(w, r, sessionID, user) {
		return
	}

	result, err := s.engine.SubmitResponse(r.Context(), sessionID, req.Answer, req.TimeSpentSeconds)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error(), ErrorCode(err))
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleSubmitInterview finalizes a session and returns its score report.
func (s *Server) handleSubmitInterview(w http.ResponseWriter, r *http.Request) {
	user := s.requireCandidate(w, r)
	if user == nil {
		return
	}

	var req SubmitInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error(), "")
		return
	}
	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid session_id format", "")
		return
	}

	if !s.ownsSession(w, r, sessionID, user) {
		return
	}

	report, err := s.engine.Submit(r.Context(), sessionID, req.Answers, req.CodingResults)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error(), ErrorCode(err))
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// handleGetInterview returns a session. Candidates can only read their own;
// recruiters can read any.
func (s *Server) handleGetInterview(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}
	role, err := middleware.GetRole(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	sessionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid session ID format", "")
		return
	}

	sess, err := s.engine.Get(r.Context(), sessionID)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error(), ErrorCode(err))
		return
	}

	if role != types.RoleRecruiter && sess.CandidateID != userID {
		writeError(w, http.StatusForbidden, "Not your session", "")
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// handleWithdrawInterview abandons an in-flight session.
func (s *Server) handleWithdrawInterview(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	sessionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid session ID format", "")
		return
	}

	sess, err := s.engine.Get(r.Context(), sessionID)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error(), ErrorCode(err))
		return
	}
	if sess.CandidateID != userID {
		writeError(w, http.StatusForbidden, "Not your session", "")
		return
	}

	if err := s.engine.Abandon(r.Context(), sessionID); err != nil {
		writeError(w, HTTPStatus(err), err.Error(), ErrorCode(err))
		return
	}

	log.Printf("[interview] Session %s withdrawn by %s", sessionID, userID)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "session_id": sessionID.String()})
}

// ownsSession checks the session belongs to the authenticated candidate,
// writing the error response when it does not.
func (s *Server) ownsSession(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID, user *types.User) bool {
	sess, err := s.engine.Get(r.Context(), sessionID)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error(), ErrorCode(err))
		return false
	}
	if sess.CandidateID != user.ID {
		writeError(w, http.StatusForbidden, "Not your session", "")
		return false
	}
	return true
}
