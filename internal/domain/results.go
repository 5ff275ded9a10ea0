package domain

import "github.com/google/uuid"

// Capability tags a cognitive stage so the orchestrator can dispatch by an
// explicit discriminant instead of inspecting concrete types.
type Capability string

const (
	CapabilityPerception Capability = "perception"
	CapabilityReasoning  Capability = "reasoning"
	CapabilityAction     Capability = "action"
)

// Cycle result keys. The perception key is omitted entirely from a cycle
// run without observations.
const (
	CycleKeyPerception     = "perception"
	CycleKeyReasoning      = "reasoning"
	CycleKeyActionPlanning = "action_planning"
)

// PerceptionResult reports the belief atoms produced from one batch of
// observations.
type PerceptionResult struct {
	Process           string      `json:"process"`
	PerceivedConcepts []uuid.UUID `json:"perceived_concepts"`
	Count             int         `json:"count"`
}

// ReasoningResult reports the implications synthesized in one pass.
// GoalsConsidered counts all goal atoms found by type, before the
// active-status filter is applied; BeliefsConsidered counts only beliefs
// at or above the inference threshold.
type ReasoningResult struct {
	Process           string      `json:"process"`
	Inferences        []uuid.UUID `json:"inferences"`
	BeliefsConsidered int         `json:"beliefs_considered"`
	GoalsConsidered   int         `json:"goals_considered"`
}

// SelectedAction binds the best-scoring action to one goal.
type SelectedAction struct {
	ExecutionID uuid.UUID `json:"execution_id"`
	Action      string    `json:"action"`
	Goal        string    `json:"goal"`
	Score       float64   `json:"score"`
}

// ActionResult reports the execution atoms planned in one pass.
type ActionResult struct {
	Process         string           `json:"process"`
	SelectedActions []SelectedAction `json:"selected_actions"`
	GoalsAddressed  int              `json:"goals_addressed"`
}

// CycleResult maps each stage name to its result, or to
// {"error": "No <kind> process available"} when the capability is
// unregistered. A failed stage never prevents later stages from running.
type CycleResult struct {
	Agent        string         `json:"agent"`
	CycleResults map[string]any `json:"cycle_results"`
}

// KnowledgeSummary is a by-type census of the agent's atom space.
type KnowledgeSummary struct {
	Agent        string `json:"agent"`
	TotalAtoms   int    `json:"total_atoms"`
	Beliefs      int    `json:"beliefs"`
	Goals        int    `json:"goals"`
	Actions      int    `json:"actions"`
	Implications int    `json:"implications"`
}

// AtomSpaceExport is the serializable snapshot of one atom space.
type AtomSpaceExport struct {
	Name  string          `json:"name"`
	Atoms map[string]Atom `json:"atoms"`
}

// KnowledgeExport is the payload handed to the snapshot store: the agent
// name, its full atom space, and the names of its registered processes.
type KnowledgeExport struct {
	Agent     string          `json:"agent"`
	AtomSpace AtomSpaceExport `json:"atomspace"`
	Processes []string        `json:"processes"`
}
