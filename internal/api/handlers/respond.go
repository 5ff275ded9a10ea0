package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rzonedevops/cogllama-cloud-services/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// agentFromRequest resolves the {id} URL param against the registry,
// writing the error response itself when resolution fails.
func agentFromRequest(registry *service.AgentRegistry, w http.ResponseWriter, r *http.Request) *service.CognitiveAgent {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid agent id")
		return nil
	}
	agent, ok := registry.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "agent not found")
		return nil
	}
	return agent
}
