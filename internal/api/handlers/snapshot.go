package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rzonedevops/cogllama-cloud-services/internal/domain"
	"github.com/rzonedevops/cogllama-cloud-services/internal/service"
	"github.com/rzonedevops/cogllama-cloud-services/internal/store"
)

// SnapshotHandler exposes knowledge export and its cloud persistence.
type SnapshotHandler struct {
	registry  *service.AgentRegistry
	snapshots domain.SnapshotStore
}

func NewSnapshotHandler(registry *service.AgentRegistry, snapshots domain.SnapshotStore) *SnapshotHandler {
	return &SnapshotHandler{registry: registry, snapshots: snapshots}
}

func (h *SnapshotHandler) Export(w http.ResponseWriter, r *http.Request) {
	agent := agentFromRequest(h.registry, w, r)
	if agent == nil {
		return
	}
	writeJSON(w, http.StatusOK, agent.ExportKnowledge())
}

type syncResponse struct {
	SnapshotID string `json:"snapshot_id"`
}

func (h *SnapshotHandler) Sync(w http.ResponseWriter, r *http.Request) {
	agent := agentFromRequest(h.registry, w, r)
	if agent == nil {
		return
	}

	id, err := agent.SyncToCloud(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrSnapshotStoreUnavailable) {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to sync knowledge")
		return
	}
	writeJSON(w, http.StatusCreated, syncResponse{SnapshotID: id.String()})
}

func (h *SnapshotHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h.snapshots == nil {
		writeError(w, http.StatusServiceUnavailable, "snapshot store not configured")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid snapshot id")
		return
	}

	export, err := h.snapshots.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "snapshot not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get snapshot")
		return
	}
	writeJSON(w, http.StatusOK, export)
}
