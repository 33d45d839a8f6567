package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/hireloop/hireloop/internal/types"
)

// UpdatePlatformInterviewRequest sets a candidate's platform-interview status.
type UpdatePlatformInterviewRequest struct {
	Status types.PlatformStatus `json:"status"`
}

// handleUpdatePlatformInterview lets a recruiter override a candidate's
// platform-interview status, e.g. waiving the requirement with "skipped".
// The attempt history on the record is preserved.
func (s *Server) handleUpdatePlatformInterview(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRecruiter(w, r); !ok {
		return
	}

	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID format", "")
		return
	}

	var req UpdatePlatformInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error(), "")
		return
	}
	if !req.Status.IsValid() {
		writeError(w, http.StatusBadRequest, "Invalid platform interview status: "+string(req.Status), "")
		return
	}

	user, err := s.db.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error(), "")
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "User not found", "")
		return
	}
	if user.Role != types.RoleCandidate {
		writeError(w, http.StatusBadRequest, "Platform interview status applies to candidates only", "")
		return
	}

	pi := user.PlatformInterview
	pi.Status = req.Status
	if err := s.db.UpdatePlatformInterview(r.Context(), userID, pi); err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error(), "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":                   true,
		"user_id":                   userID.String(),
		"platform_interview_status": string(req.Status),
	})
}
