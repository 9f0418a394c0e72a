package handler

import (
	"net/http"

	"github.com/google/uuid"
)

// RespondentHandler mints per-device respondent IDs
type RespondentHandler struct{}

// NewRespondentHandler creates a new respondent handler
func NewRespondentHandler() *RespondentHandler {
	return &RespondentHandler{}
}

// Create handles POST /v1/respondents. The client stores the returned
// ID and sends it back in the X-Respondent-ID header on test routes.
func (h *RespondentHandler) Create(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, map[string]string{
		"respondentId": uuid.NewString(),
	})
}
