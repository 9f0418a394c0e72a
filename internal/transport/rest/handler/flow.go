package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"chonapi/internal/catalog"
	"chonapi/internal/model"
	"chonapi/internal/service"
	"chonapi/internal/transport/rest/middleware"
)

// FlowHandler serves the test flow endpoints
type FlowHandler struct {
	flowSvc *service.FlowService
}

// NewFlowHandler creates a new flow handler
func NewFlowHandler(flowSvc *service.FlowService) *FlowHandler {
	return &FlowHandler{flowSvc: flowSvc}
}

func langOf(r *http.Request) model.Language {
	if r.URL.Query().Get("lang") == "zh" {
		return model.LanguageZH
	}
	return model.LanguageEN
}

// State handles GET /v1/test/state
func (h *FlowHandler) State(w http.ResponseWriter, r *http.Request) {
	respondentID := middleware.GetRespondentID(r.Context())

	view, err := h.flowSvc.State(r.Context(), respondentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load state")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Begin handles POST /v1/test/begin
func (h *FlowHandler) Begin(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.flowSvc.Begin)
}

// Privacy handles POST /v1/test/privacy/ack
func (h *FlowHandler) Privacy(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.flowSvc.AckPrivacy)
}

// Next handles POST /v1/test/next
func (h *FlowHandler) Next(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.flowSvc.Next)
}

// Back handles POST /v1/test/back
func (h *FlowHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.flowSvc.Back)
}

// Finish handles POST /v1/test/finish
func (h *FlowHandler) Finish(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.flowSvc.Finish)
}

func (h *FlowHandler) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, respondentID string) (bool, error)) {
	respondentID := middleware.GetRespondentID(r.Context())

	moved, err := fn(r.Context(), respondentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update state")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"moved": moved})
}

// Identity handles POST /v1/test/identity
func (h *FlowHandler) Identity(w http.ResponseWriter, r *http.Request) {
	respondentID := middleware.GetRespondentID(r.Context())

	var req struct {
		Identity      model.Identity      `json:"identity"`
		CorporateRole model.CorporateRole `json:"corporateRole,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	moved, err := h.flowSvc.SelectIdentity(r.Context(), respondentID, req.Identity, req.CorporateRole)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidIdentity),
			errors.Is(err, service.ErrRoleRequired),
			errors.Is(err, service.ErrInvalidRole):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to update state")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"moved": moved})
}

// Section handles GET /v1/test/section
func (h *FlowHandler) Section(w http.ResponseWriter, r *http.Request) {
	respondentID := middleware.GetRespondentID(r.Context())

	view, err := h.flowSvc.Section(r.Context(), respondentID, langOf(r))
	if err != nil {
		if errors.Is(err, service.ErrWrongStep) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load section")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Answer handles POST /v1/test/answers
func (h *FlowHandler) Answer(w http.ResponseWriter, r *http.Request) {
	respondentID := middleware.GetRespondentID(r.Context())

	var req struct {
		QuestionID int      `json:"questionId"`
		Option     string   `json:"option,omitempty"`
		Options    []string `json:"options,omitempty"`
		Text       string   `json:"text,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.flowSvc.SubmitAnswer(r.Context(), respondentID, service.AnswerInput{
		QuestionID: req.QuestionID,
		Option:     req.Option,
		Options:    req.Options,
		Text:       req.Text,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownQuestion), errors.Is(err, service.ErrInvalidAnswer):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrWrongStep):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to store answer")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"stored": true})
}

// Restart handles POST /v1/test/restart
func (h *FlowHandler) Restart(w http.ResponseWriter, r *http.Request) {
	respondentID := middleware.GetRespondentID(r.Context())

	if err := h.flowSvc.Restart(r.Context(), respondentID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to restart")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"restarted": true})
}

type traitView struct {
	Key   string           `json:"key"`
	Label model.TraitLabel `json:"label"`
	Stats model.TraitStats `json:"stats"`
}

type archetypeView struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Title     string  `json:"title"`
	Summary   string  `json:"summary"`
	Mythology string  `json:"mythology"`
	Score     float64 `json:"score"`
}

type resultsView struct {
	Traits    []traitView     `json:"traits"`
	Ranked    []archetypeView `json:"ranked"`
	BestMatch archetypeView   `json:"bestMatch"`
}

// Results handles GET /v1/test/results
func (h *FlowHandler) Results(w http.ResponseWriter, r *http.Request) {
	respondentID := middleware.GetRespondentID(r.Context())
	lang := langOf(r)

	stats, match, err := h.flowSvc.Snapshot(r.Context(), respondentID)
	if err != nil {
		if errors.Is(err, service.ErrWrongStep) {
			writeError(w, http.StatusConflict, "test not finished")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load results")
		return
	}

	view := resultsView{}
	for _, t := range model.AllTraits {
		view.Traits = append(view.Traits, traitView{Key: t.Key(), Label: t, Stats: stats[t]})
	}
	for _, entry := range match.Ranked {
		a := catalog.ArchetypeByID(entry.ArchetypeID)
		if a == nil {
			continue
		}
		av := archetypeView{
			ID:        a.ID,
			Name:      a.Name.In(lang),
			Title:     a.Title.In(lang),
			Summary:   a.Summary.In(lang),
			Mythology: a.Mythology.In(lang),
			Score:     entry.Score,
		}
		view.Ranked = append(view.Ranked, av)
		if a.ID == match.BestID {
			view.BestMatch = av
		}
	}
	writeJSON(w, http.StatusOK, view)
}
