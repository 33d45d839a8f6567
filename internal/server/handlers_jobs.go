package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/hireloop/hireloop/internal/catalog"
	"github.com/hireloop/hireloop/internal/server/middleware"
	"github.com/hireloop/hireloop/internal/types"
)

// CreateJobRequest is the request body for creating a job posting.
type CreateJobRequest struct {
	Context  types.JobContext      `json:"context"`
	Pipeline *types.PipelineConfig `json:"pipeline,omitempty"`
}

// ImportJobRequest is the request body for importing a posting from a URL or
// pasted text. Exactly one of the two should be set.
type ImportJobRequest struct {
	URL  string `json:"url,omitempty"`
	Text string `json:"text,omitempty"`
}

// requireRecruiter ensures the authenticated actor is a recruiter, writing
// the error response when not.
func (s *Server) requireRecruiter(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "")
		return uuid.Nil, false
	}
	role, err := middleware.GetRole(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "")
		return uuid.Nil, false
	}
	if role != types.RoleRecruiter {
		writeError(w, http.StatusForbidden, "Recruiter access required", "")
		return uuid.Nil, false
	}
	return userID, true
}

// handleCreateJob creates a job posting with an optional interview pipeline.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	recruiterID, ok := s.requireRecruiter(w, r)
	if !ok {
		return
	}

	var req CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error(), "")
		return
	}
	if req.Context.Title == "" {
		writeError(w, http.StatusBadRequest, "context.title is required", "")
		return
	}
	if req.Pipeline != nil {
		if err := catalog.Validate(*req.Pipeline); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid pipeline: "+err.Error(), "")
			return
		}
	}

	jobID, err := s.db.CreateJob(r.Context(), recruiterID, req.Context, req.Pipeline)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error(), "")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"job_id": jobID.String()})
}

// handleImportJob extracts a structured job context from a posting URL or
// pasted text. Import failures surface to the recruiter; there is no
// fallback content here.
func (s *Server) handleImportJob(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRecruiter(w, r); !ok {
		return
	}

	var req ImportJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error(), "")
		return
	}
	if (req.URL == "") == (req.Text == "") {
		writeError(w, http.StatusBadRequest, "Exactly one of url or text is required", "")
		return
	}

	var (
		jobCtx *types.JobContext
		err    error
	)
	if req.URL != "" {
		jobCtx, err = s.importer.FromURL(r.Context(), req.URL)
	} else {
		jobCtx, err = s.importer.FromText(r.Context(), req.Text)
	}
	if err != nil {
		writeError(w, http.StatusBadGateway, "Import failed: "+err.Error(), "")
		return
	}

	writeJSON(w, http.StatusOK, jobCtx)
}

// handleGetJob returns a job posting.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid job ID format", "")
		return
	}

	job, err := s.db.GetJob(r.Context(), jobID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error(), "")
		return
	}
	if job == nil {
		writeError(w, http.StatusNotFound, "Job not found", "")
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// handleApply records a candidate's application. The eligibility gate runs
// before the application is accepted.
func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	user := s.requireCandidate(w, r)
	if user == nil {
		return
	}

	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid job ID format", "")
		return
	}

	job, err := s.db.GetJob(r.Context(), jobID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error(), "")
		return
	}
	if job == nil {
		writeError(w, http.StatusNotFound, "Job not found", "")
		return
	}

	if err := s.db.UpsertApplicantStatus(r.Context(), jobID, user.ID, types.ApplicantApplied, nil, nil); err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error(), "")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success":      true,
		"job_id":       jobID.String(),
		"candidate_id": user.ID.String(),
		"status":       string(types.ApplicantApplied),
	})
}
