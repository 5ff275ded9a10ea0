package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rzonedevops/cogllama-cloud-services/internal/domain"
	"github.com/rzonedevops/cogllama-cloud-services/internal/service"
)

// AtomHandler exposes read and edge operations over an agent's atom space.
type AtomHandler struct {
	registry *service.AgentRegistry
}

func NewAtomHandler(registry *service.AgentRegistry) *AtomHandler {
	return &AtomHandler{registry: registry}
}

// Find handles GET .../atoms?type=&name=&min_strength= with conjunctive
// filters; results follow the space's insertion order.
func (h *AtomHandler) Find(w http.ResponseWriter, r *http.Request) {
	agent := agentFromRequest(h.registry, w, r)
	if agent == nil {
		return
	}

	var opts domain.FindOpts
	if t := r.URL.Query().Get("type"); t != "" {
		if !domain.ValidAtomType(t) {
			writeError(w, http.StatusBadRequest, "invalid atom type")
			return
		}
		atomType := domain.AtomType(t)
		opts.Type = &atomType
	}
	if name := r.URL.Query().Get("name"); name != "" {
		opts.Name = &name
	}
	if raw := r.URL.Query().Get("min_strength"); raw != "" {
		minStrength, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid min_strength")
			return
		}
		opts.MinStrength = &minStrength
	}

	atoms := agent.Space().FindAtoms(opts)
	if atoms == nil {
		atoms = []*domain.Atom{}
	}
	writeJSON(w, http.StatusOK, atoms)
}

func (h *AtomHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	agent := agentFromRequest(h.registry, w, r)
	if agent == nil {
		return
	}

	atomID, err := uuid.Parse(chi.URLParam(r, "atomID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid atom id")
		return
	}

	atom := agent.Space().GetAtom(atomID)
	if atom == nil {
		writeError(w, http.StatusNotFound, "atom not found")
		return
	}
	writeJSON(w, http.StatusOK, atom)
}

func (h *AtomHandler) GetRelated(w http.ResponseWriter, r *http.Request) {
	agent := agentFromRequest(h.registry, w, r)
	if agent == nil {
		return
	}

	atomID, err := uuid.Parse(chi.URLParam(r, "atomID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid atom id")
		return
	}

	// Unknown ids yield empty lists, not an error.
	writeJSON(w, http.StatusOK, agent.Space().GetRelatedAtoms(atomID))
}

type linkRequest struct {
	SourceID string `json:"source_id"`
	TargetID string `json:"target_id"`
}

type linkResponse struct {
	Linked bool `json:"linked"`
}

func (h *AtomHandler) Link(w http.ResponseWriter, r *http.Request) {
	agent := agentFromRequest(h.registry, w, r)
	if agent == nil {
		return
	}

	var req linkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sourceID, err := uuid.Parse(req.SourceID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid source_id")
		return
	}
	targetID, err := uuid.Parse(req.TargetID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid target_id")
		return
	}

	writeJSON(w, http.StatusOK, linkResponse{Linked: agent.Space().LinkAtoms(sourceID, targetID)})
}

type updateMetadataRequest struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// UpdateMetadata sets one metadata key on an atom; the usual caller is an
// external controller flipping a goal's status.
func (h *AtomHandler) UpdateMetadata(w http.ResponseWriter, r *http.Request) {
	agent := agentFromRequest(h.registry, w, r)
	if agent == nil {
		return
	}

	atomID, err := uuid.Parse(chi.URLParam(r, "atomID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid atom id")
		return
	}

	var req updateMetadataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Key == "" {
		writeError(w, http.StatusBadRequest, "key is required")
		return
	}

	if !agent.Space().UpdateMetadata(atomID, req.Key, req.Value) {
		writeError(w, http.StatusNotFound, "atom not found")
		return
	}
	writeJSON(w, http.StatusOK, agent.Space().GetAtom(atomID))
}
