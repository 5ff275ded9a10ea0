package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rzonedevops/cogllama-cloud-services/internal/domain"
	"github.com/rzonedevops/cogllama-cloud-services/internal/service"
	"go.uber.org/zap"
)

type AgentHandler struct {
	registry           *service.AgentRegistry
	snapshots          domain.SnapshotStore
	logger             *zap.Logger
	inferenceThreshold float64
	actionThreshold    float64
}

// NewAgentHandler creates the handler. Zero thresholds fall back to the
// stage defaults.
func NewAgentHandler(registry *service.AgentRegistry, snapshots domain.SnapshotStore, logger *zap.Logger, inferenceThreshold, actionThreshold float64) *AgentHandler {
	return &AgentHandler{
		registry:           registry,
		snapshots:          snapshots,
		logger:             logger,
		inferenceThreshold: inferenceThreshold,
		actionThreshold:    actionThreshold,
	}
}

type createAgentRequest struct {
	Name string `json:"name"`
}

type createAgentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (h *AgentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	agent := service.NewCognitiveAgent(req.Name, h.snapshots, h.logger,
		service.NewPerceptionProcess(h.logger),
		service.NewReasoningProcess(h.inferenceThreshold, h.logger),
		service.NewActionProcess(h.actionThreshold, h.logger),
	)
	h.registry.Register(agent)
	h.logger.Info("agent created", zap.String("agent", agent.Name()), zap.String("id", agent.ID.String()))

	writeJSON(w, http.StatusCreated, createAgentResponse{
		ID:   agent.ID.String(),
		Name: agent.Name(),
	})
}

func (h *AgentHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	agent := agentFromRequest(h.registry, w, r)
	if agent == nil {
		return
	}
	writeJSON(w, http.StatusOK, agent.KnowledgeSummary())
}

type addGoalRequest struct {
	Goal     string   `json:"goal"`
	Priority *float64 `json:"priority,omitempty"`
}

type addBeliefRequest struct {
	Belief     string   `json:"belief"`
	Strength   *float64 `json:"strength,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
}

type addActionRequest struct {
	Action      string   `json:"action"`
	SuccessProb *float64 `json:"success_prob,omitempty"`
}

type atomCreatedResponse struct {
	AtomID string `json:"atom_id"`
}

func (h *AgentHandler) AddGoal(w http.ResponseWriter, r *http.Request) {
	agent := agentFromRequest(h.registry, w, r)
	if agent == nil {
		return
	}

	var req addGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Goal == "" {
		writeError(w, http.StatusBadRequest, "goal is required")
		return
	}

	priority := 0.5
	if req.Priority != nil {
		priority = *req.Priority
	}

	id, err := agent.AddGoal(req.Goal, priority)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, atomCreatedResponse{AtomID: id.String()})
}

func (h *AgentHandler) AddBelief(w http.ResponseWriter, r *http.Request) {
	agent := agentFromRequest(h.registry, w, r)
	if agent == nil {
		return
	}

	var req addBeliefRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Belief == "" {
		writeError(w, http.StatusBadRequest, "belief is required")
		return
	}

	strength, confidence := 0.8, 0.7
	if req.Strength != nil {
		strength = *req.Strength
	}
	if req.Confidence != nil {
		confidence = *req.Confidence
	}

	id, err := agent.AddBelief(req.Belief, strength, confidence)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, atomCreatedResponse{AtomID: id.String()})
}

func (h *AgentHandler) AddAction(w http.ResponseWriter, r *http.Request) {
	agent := agentFromRequest(h.registry, w, r)
	if agent == nil {
		return
	}

	var req addActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Action == "" {
		writeError(w, http.StatusBadRequest, "action is required")
		return
	}

	successProb := 0.5
	if req.SuccessProb != nil {
		successProb = *req.SuccessProb
	}

	id, err := agent.AddAction(req.Action, successProb)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, atomCreatedResponse{AtomID: id.String()})
}
