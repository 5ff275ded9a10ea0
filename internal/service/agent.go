package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rzonedevops/cogllama-cloud-services/internal/domain"
	"github.com/rzonedevops/cogllama-cloud-services/internal/store"
	"go.uber.org/zap"
)

// Stage-dispatch errors. These are reported as values inside a cycle's
// results and never abort the surrounding cycle.
var (
	ErrNoPerceptionProcess = errors.New("No perception process available")
	ErrNoReasoningProcess  = errors.New("No reasoning process available")
	ErrNoActionProcess     = errors.New("No action process available")
)

// ErrSnapshotStoreUnavailable is returned when cloud sync is requested but
// no snapshot store was configured.
var ErrSnapshotStoreUnavailable = errors.New("snapshot store not configured")

// CognitiveAgent owns one atom space and an ordered list of cognitive
// stages, and runs the perceive -> reason -> act cycle over them. Stages
// are dispatched by capability tag; when several stages share a tag the
// first registered wins.
type CognitiveAgent struct {
	ID uuid.UUID

	name         string
	space        *store.AtomSpace
	stages       []Stage
	byCapability map[domain.Capability]Stage
	snapshots    domain.SnapshotStore
	logger       *zap.Logger
}

// NewCognitiveAgent creates an agent. With no explicit stages it installs
// exactly one default instance of each of perception, reasoning, and
// action; a caller-supplied list, even a partial one, suppresses all
// defaults. The snapshot store may be nil when persistence is not wired.
func NewCognitiveAgent(name string, snapshots domain.SnapshotStore, logger *zap.Logger, stages ...Stage) *CognitiveAgent {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(stages) == 0 {
		stages = []Stage{
			NewPerceptionProcess(logger),
			NewReasoningProcess(0, logger),
			NewActionProcess(0, logger),
		}
	}

	byCapability := make(map[domain.Capability]Stage, len(stages))
	for _, stage := range stages {
		if _, ok := byCapability[stage.Capability()]; !ok {
			byCapability[stage.Capability()] = stage
		}
	}

	return &CognitiveAgent{
		ID:           uuid.New(),
		name:         name,
		space:        store.NewAtomSpace("agent_memory"),
		stages:       stages,
		byCapability: byCapability,
		snapshots:    snapshots,
		logger:       logger.With(zap.String("agent", name)),
	}
}

// Name returns the agent's name.
func (a *CognitiveAgent) Name() string { return a.name }

// Space returns the agent's atom space.
func (a *CognitiveAgent) Space() *store.AtomSpace { return a.space }

// AddGoal records a goal for the agent to pursue and returns its atom id.
func (a *CognitiveAgent) AddGoal(goal string, priority float64) (uuid.UUID, error) {
	atom, err := a.space.AddGoal(goal, priority)
	if err != nil {
		return uuid.Nil, err
	}
	return atom.ID, nil
}

// AddBelief records a belief in the agent's knowledge base.
func (a *CognitiveAgent) AddBelief(belief string, strength, confidence float64) (uuid.UUID, error) {
	atom, err := a.space.AddBelief(belief, strength, confidence)
	if err != nil {
		return uuid.Nil, err
	}
	return atom.ID, nil
}

// AddAction registers an action the agent can take.
func (a *CognitiveAgent) AddAction(action string, successProb float64) (uuid.UUID, error) {
	atom, err := a.space.AddAction(action, successProb)
	if err != nil {
		return uuid.Nil, err
	}
	return atom.ID, nil
}

// Perceive runs the perception stage over the given observations.
func (a *CognitiveAgent) Perceive(observations []domain.Observation) (*domain.PerceptionResult, error) {
	perceiver, ok := a.byCapability[domain.CapabilityPerception].(Perceiver)
	if !ok {
		return nil, ErrNoPerceptionProcess
	}
	return perceiver.Perceive(a.space, observations)
}

// Reason runs the reasoning stage over the current knowledge base.
func (a *CognitiveAgent) Reason() (*domain.ReasoningResult, error) {
	reasoner, ok := a.byCapability[domain.CapabilityReasoning].(Reasoner)
	if !ok {
		return nil, ErrNoReasoningProcess
	}
	return reasoner.Reason(a.space), nil
}

// PlanActions runs the action stage, selecting actions for active goals.
func (a *CognitiveAgent) PlanActions() (*domain.ActionResult, error) {
	planner, ok := a.byCapability[domain.CapabilityAction].(Planner)
	if !ok {
		return nil, ErrNoActionProcess
	}
	return planner.PlanActions(a.space), nil
}

// Cycle executes one cognitive cycle: perception (only when observations
// are supplied; the key is omitted otherwise), then reasoning, then action
// planning. A stage whose capability is unregistered contributes an
// {"error": ...} value and the remaining stages still run.
func (a *CognitiveAgent) Cycle(observations []domain.Observation) *domain.CycleResult {
	result := &domain.CycleResult{
		Agent:        a.name,
		CycleResults: make(map[string]any),
	}

	if len(observations) > 0 {
		if perception, err := a.Perceive(observations); err != nil {
			result.CycleResults[domain.CycleKeyPerception] = stageError(err)
		} else {
			result.CycleResults[domain.CycleKeyPerception] = perception
		}
	}

	if reasoning, err := a.Reason(); err != nil {
		result.CycleResults[domain.CycleKeyReasoning] = stageError(err)
	} else {
		result.CycleResults[domain.CycleKeyReasoning] = reasoning
	}

	if planning, err := a.PlanActions(); err != nil {
		result.CycleResults[domain.CycleKeyActionPlanning] = stageError(err)
	} else {
		result.CycleResults[domain.CycleKeyActionPlanning] = planning
	}

	return result
}

func stageError(err error) map[string]string {
	return map[string]string{"error": err.Error()}
}

// KnowledgeSummary reports a by-type census of the agent's atom space.
func (a *CognitiveAgent) KnowledgeSummary() *domain.KnowledgeSummary {
	return &domain.KnowledgeSummary{
		Agent:        a.name,
		TotalAtoms:   a.space.Len(),
		Beliefs:      a.space.CountByType(domain.AtomTypeBelief),
		Goals:        a.space.CountByType(domain.AtomTypeGoal),
		Actions:      a.space.CountByType(domain.AtomTypeAction),
		Implications: a.space.CountByType(domain.AtomTypeImplication),
	}
}

// ExportKnowledge returns the agent's full knowledge base in the snapshot
// wire format.
func (a *CognitiveAgent) ExportKnowledge() *domain.KnowledgeExport {
	processes := make([]string, 0, len(a.stages))
	for _, stage := range a.stages {
		processes = append(processes, stage.Name())
	}
	return &domain.KnowledgeExport{
		Agent:     a.name,
		AtomSpace: a.space.Export(),
		Processes: processes,
	}
}

// SyncToCloud persists the current knowledge export through the snapshot
// store and returns the stored snapshot's id.
func (a *CognitiveAgent) SyncToCloud(ctx context.Context) (uuid.UUID, error) {
	if a.snapshots == nil {
		return uuid.Nil, ErrSnapshotStoreUnavailable
	}
	id, err := a.snapshots.Create(ctx, a.ExportKnowledge())
	if err != nil {
		return uuid.Nil, err
	}
	a.logger.Info("knowledge synced", zap.String("snapshot_id", id.String()))
	return id, nil
}

// LoadSnapshot fetches a previously stored knowledge export. The payload
// is returned as-is: reimporting atoms into a live space is a separate,
// explicitly designed feature and is deliberately not inferred here.
func (a *CognitiveAgent) LoadSnapshot(ctx context.Context, id uuid.UUID) (*domain.KnowledgeExport, error) {
	if a.snapshots == nil {
		return nil, ErrSnapshotStoreUnavailable
	}
	return a.snapshots.Get(ctx, id)
}
