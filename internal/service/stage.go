package service

import (
	"github.com/rzonedevops/cogllama-cloud-services/internal/domain"
	"github.com/rzonedevops/cogllama-cloud-services/internal/store"
)

// Stage is one pass of the cognitive pipeline. Each stage carries an
// explicit capability tag; the orchestrator dispatches on the tag rather
// than inspecting concrete types.
type Stage interface {
	Name() string
	Capability() domain.Capability
}

// Perceiver turns observations into beliefs. Perceive fails only when an
// observation carries evidence outside the truth-value range.
type Perceiver interface {
	Stage
	Perceive(space *store.AtomSpace, observations []domain.Observation) (*domain.PerceptionResult, error)
}

// Reasoner infers implications from beliefs and active goals.
type Reasoner interface {
	Stage
	Reason(space *store.AtomSpace) *domain.ReasoningResult
}

// Planner selects actions for active goals and records execution plans.
type Planner interface {
	Stage
	PlanActions(space *store.AtomSpace) *domain.ActionResult
}
