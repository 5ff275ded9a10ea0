package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rzonedevops/cogllama-cloud-services/internal/domain"
	"github.com/rzonedevops/cogllama-cloud-services/internal/service"
)

// CognitiveHandler exposes the perceive / reason / plan / cycle operations.
type CognitiveHandler struct {
	registry *service.AgentRegistry
}

func NewCognitiveHandler(registry *service.AgentRegistry) *CognitiveHandler {
	return &CognitiveHandler{registry: registry}
}

type perceiveRequest struct {
	Observations []domain.Observation `json:"observations"`
}

func (h *CognitiveHandler) Perceive(w http.ResponseWriter, r *http.Request) {
	agent := agentFromRequest(h.registry, w, r)
	if agent == nil {
		return
	}

	var req perceiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := agent.Perceive(req.Observations)
	if err != nil {
		if errors.Is(err, service.ErrNoPerceptionProcess) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *CognitiveHandler) Reason(w http.ResponseWriter, r *http.Request) {
	agent := agentFromRequest(h.registry, w, r)
	if agent == nil {
		return
	}

	result, err := agent.Reason()
	if err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *CognitiveHandler) PlanActions(w http.ResponseWriter, r *http.Request) {
	agent := agentFromRequest(h.registry, w, r)
	if agent == nil {
		return
	}

	result, err := agent.PlanActions()
	if err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type cycleRequest struct {
	Observations []domain.Observation `json:"observations,omitempty"`
}

func (h *CognitiveHandler) Cycle(w http.ResponseWriter, r *http.Request) {
	agent := agentFromRequest(h.registry, w, r)
	if agent == nil {
		return
	}

	// An empty body is a cycle without observations.
	var req cycleRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	writeJSON(w, http.StatusOK, agent.Cycle(req.Observations))
}
