package handler

import (
	"errors"
	"net/http"

	"chonapi/internal/service"
	"chonapi/internal/transport/rest/middleware"
)

// SubmissionHandler serves the submission archive endpoints
type SubmissionHandler struct {
	submissionSvc *service.SubmissionService
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionSvc *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionSvc: submissionSvc}
}

// Exists handles GET /v1/submissions/exists
func (h *SubmissionHandler) Exists(w http.ResponseWriter, r *http.Request) {
	respondentID := middleware.GetRespondentID(r.Context())

	exists, err := h.submissionSvc.Exists(r.Context(), respondentID)
	if err != nil {
		writeError(w, http.StatusBadGateway, "submission archive unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"exists": exists})
}

// Save handles POST /v1/submissions. A gateway failure leaves the
// respondent's answers untouched, so the client may retry.
func (h *SubmissionHandler) Save(w http.ResponseWriter, r *http.Request) {
	respondentID := middleware.GetRespondentID(r.Context())

	submission, err := h.submissionSvc.Save(r.Context(), respondentID)
	if err != nil {
		if errors.Is(err, service.ErrNotFinished) || errors.Is(err, service.ErrWrongStep) {
			writeError(w, http.StatusConflict, "test not finished")
			return
		}
		writeJSON(w, http.StatusBadGateway, map[string]bool{"saved": false})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"saved":        true,
		"submissionId": submission.ID,
	})
}
