package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"chonapi/internal/model"
	"chonapi/internal/service"
	"chonapi/internal/transport/rest/middleware"
)

// AuthHandler handles account endpoints
type AuthHandler struct {
	authSvc       *service.AuthService
	submissionSvc *service.SubmissionService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authSvc *service.AuthService, submissionSvc *service.SubmissionService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, submissionSvc: submissionSvc}
}

// CreateAccount handles POST /v1/auth/accounts. Accounts are only
// meaningful once a submission exists for the respondent.
func (h *AuthHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	respondentID := middleware.GetRespondentID(r.Context())

	var req model.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	exists, err := h.submissionSvc.Exists(r.Context(), respondentID)
	if err != nil {
		writeError(w, http.StatusBadGateway, "submission archive unavailable")
		return
	}
	if !exists {
		writeError(w, http.StatusConflict, "no submission to attach the account to")
		return
	}

	resp, err := h.authSvc.CreateAccount(r.Context(), respondentID, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrInvalidCredentials):
			writeError(w, http.StatusBadRequest, "username and password required")
		default:
			writeError(w, http.StatusInternalServerError, "failed to create account")
		}
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.authSvc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Profile handles GET /v1/profile (Bearer token)
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountID(r.Context())

	account, err := h.authSvc.Account(r.Context(), accountID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load account")
		return
	}
	if account == nil {
		writeError(w, http.StatusNotFound, "account not found")
		return
	}

	submission, err := h.submissionSvc.Get(r.Context(), account.RespondentID)
	if err != nil {
		writeError(w, http.StatusBadGateway, "submission archive unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"account":    account,
		"submission": submission,
	})
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
