package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rzonedevops/cogllama-cloud-services/internal/domain"
)

// AtomSpace is the in-memory knowledge graph: an identity-deduplicated
// collection of atoms with point lookup, filtered scan, and edge linking.
// At most one atom exists per (type, name) pair, atoms and edges are never
// deleted, and for every pair of atoms A, B the edge sets stay symmetric:
// B in A.Outgoing iff A in B.Incoming.
//
// The dedup check in AddAtom and the edge update in LinkAtoms are
// check-then-act sequences, so all state is guarded by one mutex; the HTTP
// surface calls in from concurrent handlers. Iteration follows insertion
// order, which keeps FindAtoms results and action tie-breaking stable
// within a space instance.
type AtomSpace struct {
	mu    sync.RWMutex
	name  string
	atoms map[uuid.UUID]*domain.Atom
	order []uuid.UUID
}

// NewAtomSpace creates an empty atom space.
func NewAtomSpace(name string) *AtomSpace {
	if name == "" {
		name = "default"
	}
	return &AtomSpace{
		name:  name,
		atoms: make(map[uuid.UUID]*domain.Atom),
	}
}

// Name returns the space's name.
func (s *AtomSpace) Name() string {
	return s.name
}

// Len returns the number of atoms in the space.
func (s *AtomSpace) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.atoms)
}

// AddAtom adds an atom or merges into the existing one with the same
// (type, name) pair. On the merge path a supplied truth value is folded
// into the existing atom's value and the outgoing/metadata arguments are
// ignored. On the create path the atom gets a fresh id, a fresh default
// (0.5, 0.5) truth value when none is given, and every existing atom named
// in outgoing gains the new atom's id in its incoming list.
func (s *AtomSpace) AddAtom(atomType domain.AtomType, name string, truthValue *domain.TruthValue, outgoing []uuid.UUID, metadata map[string]any) *domain.Atom {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.order {
		existing := s.atoms[id]
		if existing.Type == atomType && existing.Name == name {
			if truthValue != nil {
				existing.MergeTruthValue(truthValue.Strength, truthValue.Confidence)
			}
			return existing.Clone()
		}
	}

	now := time.Now()
	atom := &domain.Atom{
		ID:         uuid.New(),
		Type:       atomType,
		Name:       name,
		TruthValue: domain.DefaultTruthValue(),
		Incoming:   []uuid.UUID{},
		Outgoing:   append([]uuid.UUID{}, outgoing...),
		Metadata:   map[string]any{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if truthValue != nil {
		atom.TruthValue = *truthValue
	}
	for k, v := range metadata {
		atom.Metadata[k] = v
	}

	s.atoms[atom.ID] = atom
	s.order = append(s.order, atom.ID)

	for _, targetID := range atom.Outgoing {
		if target, ok := s.atoms[targetID]; ok {
			target.Incoming = append(target.Incoming, atom.ID)
			target.UpdatedAt = now
		}
	}

	return atom.Clone()
}

// GetAtom returns a copy of the atom, or nil when the id is unknown.
func (s *AtomSpace) GetAtom(id uuid.UUID) *domain.Atom {
	s.mu.RLock()
	defer s.mu.RUnlock()
	atom, ok := s.atoms[id]
	if !ok {
		return nil
	}
	return atom.Clone()
}

// FindAtoms returns copies of all atoms matching every supplied filter,
// in insertion order.
func (s *AtomSpace) FindAtoms(opts domain.FindOpts) []*domain.Atom {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []*domain.Atom
	for _, id := range s.order {
		atom := s.atoms[id]
		if opts.Type != nil && atom.Type != *opts.Type {
			continue
		}
		if opts.Name != nil && atom.Name != *opts.Name {
			continue
		}
		if opts.MinStrength != nil && atom.TruthValue.Strength < *opts.MinStrength {
			continue
		}
		results = append(results, atom.Clone())
	}
	return results
}

// CountByType returns the number of atoms of the given type.
func (s *AtomSpace) CountByType(atomType domain.AtomType) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, atom := range s.atoms {
		if atom.Type == atomType {
			n++
		}
	}
	return n
}

// AddBelief records a belief with the given evidence. The evidence is
// validated at truth-value construction time.
func (s *AtomSpace) AddBelief(belief string, strength, confidence float64) (*domain.Atom, error) {
	tv, err := domain.NewTruthValue(strength, confidence)
	if err != nil {
		return nil, err
	}
	return s.AddAtom(domain.AtomTypeBelief, belief, &tv, nil, nil), nil
}

// AddGoal records an active goal. The priority doubles as the goal's
// truth-value strength with full confidence.
func (s *AtomSpace) AddGoal(goal string, priority float64) (*domain.Atom, error) {
	tv, err := domain.NewTruthValue(priority, 1.0)
	if err != nil {
		return nil, err
	}
	return s.AddAtom(domain.AtomTypeGoal, goal, &tv, nil, map[string]any{
		domain.MetaPriority: priority,
		domain.MetaStatus:   domain.GoalStatusActive,
	}), nil
}

// AddAction registers an action with its success probability.
func (s *AtomSpace) AddAction(action string, successProb float64) (*domain.Atom, error) {
	tv, err := domain.NewTruthValue(successProb, 0.5)
	if err != nil {
		return nil, err
	}
	return s.AddAtom(domain.AtomTypeAction, action, &tv, nil, nil), nil
}

// LinkAtoms adds a directed edge from source to target. It returns false
// without mutation when either id is unknown, and is idempotent: linking
// the same pair twice produces no duplicate entries.
func (s *AtomSpace) LinkAtoms(sourceID, targetID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	source, ok := s.atoms[sourceID]
	if !ok {
		return false
	}
	target, ok := s.atoms[targetID]
	if !ok {
		return false
	}

	for _, id := range source.Outgoing {
		if id == targetID {
			return true
		}
	}

	now := time.Now()
	source.Outgoing = append(source.Outgoing, targetID)
	source.UpdatedAt = now
	target.Incoming = append(target.Incoming, sourceID)
	target.UpdatedAt = now
	return true
}

// RelatedAtoms holds the neighbors on each side of an atom's edges.
type RelatedAtoms struct {
	Incoming []*domain.Atom `json:"incoming"`
	Outgoing []*domain.Atom `json:"outgoing"`
}

// GetRelatedAtoms returns copies of the atoms linked to and from the given
// atom. An unknown id yields empty lists, not an error.
func (s *AtomSpace) GetRelatedAtoms(id uuid.UUID) RelatedAtoms {
	s.mu.RLock()
	defer s.mu.RUnlock()

	related := RelatedAtoms{Incoming: []*domain.Atom{}, Outgoing: []*domain.Atom{}}
	atom, ok := s.atoms[id]
	if !ok {
		return related
	}
	for _, in := range atom.Incoming {
		if neighbor, ok := s.atoms[in]; ok {
			related.Incoming = append(related.Incoming, neighbor.Clone())
		}
	}
	for _, out := range atom.Outgoing {
		if neighbor, ok := s.atoms[out]; ok {
			related.Outgoing = append(related.Outgoing, neighbor.Clone())
		}
	}
	return related
}

// UpdateMetadata sets one metadata key on an atom and advances its
// UpdatedAt. It returns false when the id is unknown. This is the hook
// callers use to flip a goal's status; eligibility is re-checked by every
// reasoning and planning pass rather than cached.
func (s *AtomSpace) UpdateMetadata(id uuid.UUID, key string, value any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	atom, ok := s.atoms[id]
	if !ok {
		return false
	}
	atom.Metadata[key] = value
	atom.UpdatedAt = time.Now()
	return true
}

// Export returns a serializable snapshot of the space.
func (s *AtomSpace) Export() domain.AtomSpaceExport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	export := domain.AtomSpaceExport{
		Name:  s.name,
		Atoms: make(map[string]domain.Atom, len(s.atoms)),
	}
	for id, atom := range s.atoms {
		export.Atoms[id.String()] = *atom.Clone()
	}
	return export
}
