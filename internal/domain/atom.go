package domain

import (
	"time"

	"github.com/google/uuid"
)

type AtomType string

const (
	AtomTypeConcept     AtomType = "concept"
	AtomTypePredicate   AtomType = "predicate"
	AtomTypeEvaluation  AtomType = "evaluation"
	AtomTypeImplication AtomType = "implication"
	AtomTypeExecution   AtomType = "execution"
	AtomTypeGoal        AtomType = "goal"
	AtomTypeBelief      AtomType = "belief"
	AtomTypeAction      AtomType = "action"
)

func ValidAtomType(t string) bool {
	switch AtomType(t) {
	case AtomTypeConcept, AtomTypePredicate, AtomTypeEvaluation, AtomTypeImplication,
		AtomTypeExecution, AtomTypeGoal, AtomTypeBelief, AtomTypeAction:
		return true
	}
	return false
}

// Goal status values. Only active goals participate in reasoning and
// action planning; callers may flip the status at any time via metadata.
const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusSuspended = "suspended"
)

// Metadata keys a conformant atom populates per type.
// Goals: MetaPriority, MetaStatus. Executions: MetaGoalID, MetaActionID,
// MetaExpectedUtility. Everything else is an open map.
const (
	MetaPriority        = "priority"
	MetaStatus          = "status"
	MetaGoalID          = "goal_id"
	MetaActionID        = "action_id"
	MetaExpectedUtility = "expected_utility"
)

// Atom is the basic unit of knowledge in the atom space: a typed, named
// node carrying a probabilistic truth value and directed edges. The
// (Type, Name) pair is the identity key; the space never holds two atoms
// with the same pair.
type Atom struct {
	ID         uuid.UUID      `json:"id"`
	Type       AtomType       `json:"type"`
	Name       string         `json:"name"`
	TruthValue TruthValue     `json:"truth_value"`
	Incoming   []uuid.UUID    `json:"incoming"`
	Outgoing   []uuid.UUID    `json:"outgoing"`
	Metadata   map[string]any `json:"metadata"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// MergeTruthValue folds new evidence into the atom's truth value and
// advances UpdatedAt.
func (a *Atom) MergeTruthValue(newStrength, newConfidence float64) {
	a.TruthValue = a.TruthValue.Merge(newStrength, newConfidence)
	a.UpdatedAt = time.Now()
}

// IsActiveGoal reports whether the atom is a goal whose status metadata is
// "active". The status is re-read on every call, never cached.
func (a *Atom) IsActiveGoal() bool {
	if a.Type != AtomTypeGoal {
		return false
	}
	status, _ := a.Metadata[MetaStatus].(string)
	return status == GoalStatusActive
}

// Clone returns a deep copy so callers can hold atoms outside the space's
// lock without observing later mutations.
func (a *Atom) Clone() *Atom {
	c := *a
	c.Incoming = append([]uuid.UUID(nil), a.Incoming...)
	c.Outgoing = append([]uuid.UUID(nil), a.Outgoing...)
	c.Metadata = make(map[string]any, len(a.Metadata))
	for k, v := range a.Metadata {
		c.Metadata[k] = v
	}
	return &c
}

// FindOpts are the conjunctive filters for AtomSpace.FindAtoms. Nil fields
// match everything.
type FindOpts struct {
	Type        *AtomType
	Name        *string
	MinStrength *float64
}
