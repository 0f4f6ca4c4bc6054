package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	respond "github.com/taskautomator/backend/internal/api/respond"
	"github.com/taskautomator/backend/internal/api/validate"
	"github.com/taskautomator/backend/internal/assistant"
	"github.com/taskautomator/backend/internal/model"
)

// AutomationHandler is a thin HTTP transport over the assistant service.
type AutomationHandler struct {
	svc *assistant.Service
}

func NewAutomationHandler(svc *assistant.Service) *AutomationHandler {
	return &AutomationHandler{svc: svc}
}

// AnalyzeEmail POST /api/v1/analyze-email
func (h *AutomationHandler) AnalyzeEmail(w http.ResponseWriter, r *http.Request) {
	var req model.EmailAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.EmailAnalysis(req); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	result := h.svc.AnalyzeEmail(r.Context(), req.EmailText)
	respond.WriteJSON(w, http.StatusOK, model.EmailProcessResponse{
		Analysis:     result.Analysis,
		ActionsTaken: result.Actions,
	})
}

// CreateTask POST /api/v1/create-task
func (h *AutomationHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req model.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.CreateTask(req); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	task, err := h.svc.CreateTask(r.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("Error creating task")
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, task)
}

// ScheduleMeeting POST /api/v1/schedule-meeting
func (h *AutomationHandler) ScheduleMeeting(w http.ResponseWriter, r *http.Request) {
	var req model.MeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.ScheduleMeeting(req); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	result, err := h.svc.ScheduleMeeting(r.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("Error scheduling meeting")
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, result)
}

// CategorizeEmail POST /api/v1/categorize-email
func (h *AutomationHandler) CategorizeEmail(w http.ResponseWriter, r *http.Request) {
	var req model.EmailAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.EmailAnalysis(req); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	category, err := h.svc.CategorizeEmail(r.Context(), req.EmailText)
	if err != nil {
		log.Error().Err(err).Msg("Error categorizing email")
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"category": category})
}

// PrioritizeTask POST /api/v1/prioritize-task
func (h *AutomationHandler) PrioritizeTask(w http.ResponseWriter, r *http.Request) {
	var req model.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.CreateTask(req); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	recommendation, err := h.svc.PrioritizeTask(r.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("Error prioritizing task")
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"recommendation": recommendation})
}
