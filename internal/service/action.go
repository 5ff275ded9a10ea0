package service

import (
	"sort"

	"github.com/google/uuid"
	"github.com/rzonedevops/cogllama-cloud-services/internal/domain"
	"github.com/rzonedevops/cogllama-cloud-services/internal/store"
	"go.uber.org/zap"
)

// DefaultActionThreshold is the minimum utility score an action needs to
// be selected when no threshold is configured.
const DefaultActionThreshold = 0.5

// maxGoalsPerPass bounds how many goals one planning pass addresses.
const maxGoalsPerPass = 3

// ActionProcess selects the best action for each of the top active goals
// and records the binding as an execution atom. An action qualifies for a
// goal when an implication links the two or their names overlap lexically;
// its score averages the action's success strength with the goal's
// priority strength. Ties keep the first-encountered action, in space
// iteration order.
type ActionProcess struct {
	threshold float64
	logger    *zap.Logger
}

func NewActionProcess(threshold float64, logger *zap.Logger) *ActionProcess {
	if threshold <= 0 {
		threshold = DefaultActionThreshold
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActionProcess{threshold: threshold, logger: logger}
}

func (p *ActionProcess) Name() string { return "action" }

func (p *ActionProcess) Capability() domain.Capability { return domain.CapabilityAction }

func (p *ActionProcess) PlanActions(space *store.AtomSpace) *domain.ActionResult {
	goalType := domain.AtomTypeGoal
	actionType := domain.AtomTypeAction
	implicationType := domain.AtomTypeImplication

	var activeGoals []*domain.Atom
	for _, goal := range space.FindAtoms(domain.FindOpts{Type: &goalType}) {
		if goal.IsActiveGoal() {
			activeGoals = append(activeGoals, goal)
		}
	}
	// Stable sort: equal-priority goals keep their insertion order.
	sort.SliceStable(activeGoals, func(i, j int) bool {
		return activeGoals[i].TruthValue.Strength > activeGoals[j].TruthValue.Strength
	})
	if len(activeGoals) > maxGoalsPerPass {
		activeGoals = activeGoals[:maxGoalsPerPass]
	}

	actions := space.FindAtoms(domain.FindOpts{Type: &actionType})
	implications := space.FindAtoms(domain.FindOpts{Type: &implicationType})

	selected := make([]domain.SelectedAction, 0)
	for _, goal := range activeGoals {
		var best *domain.Atom
		bestScore := 0.0

		for _, action := range actions {
			if !p.actionHelpsGoal(action, goal, implications) {
				continue
			}
			score := (action.TruthValue.Strength + goal.TruthValue.Strength) / 2
			// Strictly greater: on a tie the first-encountered action wins.
			if score > bestScore && score >= p.threshold {
				bestScore = score
				best = action
			}
		}

		if best == nil {
			continue
		}

		tv := domain.TruthValue{Strength: bestScore, Confidence: 0.8}
		execution := space.AddAtom(
			domain.AtomTypeExecution,
			"execute:"+best.Name,
			&tv,
			[]uuid.UUID{best.ID, goal.ID},
			map[string]any{
				domain.MetaGoalID:          goal.ID.String(),
				domain.MetaActionID:        best.ID.String(),
				domain.MetaExpectedUtility: bestScore,
			},
		)
		selected = append(selected, domain.SelectedAction{
			ExecutionID: execution.ID,
			Action:      best.Name,
			Goal:        goal.Name,
			Score:       bestScore,
		})
	}

	p.logger.Debug("action planning pass",
		zap.Int("active_goals", len(activeGoals)),
		zap.Int("actions", len(actions)),
		zap.Int("selected", len(selected)),
	)

	return &domain.ActionResult{
		Process:         p.Name(),
		SelectedActions: selected,
		GoalsAddressed:  len(selected),
	}
}

// actionHelpsGoal checks for an implication whose outgoing edges contain
// both the action and the goal, falling back to lexical relevance between
// their names.
func (p *ActionProcess) actionHelpsGoal(action, goal *domain.Atom, implications []*domain.Atom) bool {
	for _, imp := range implications {
		if containsID(imp.Outgoing, action.ID) && containsID(imp.Outgoing, goal.ID) {
			return true
		}
	}
	return lexicallyRelevant(goal.Name, action.Name)
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
