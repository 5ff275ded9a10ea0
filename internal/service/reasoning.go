package service

import (
	"github.com/google/uuid"
	"github.com/rzonedevops/cogllama-cloud-services/internal/domain"
	"github.com/rzonedevops/cogllama-cloud-services/internal/store"
	"go.uber.org/zap"
)

// DefaultInferenceThreshold is the minimum belief strength considered
// during reasoning when no threshold is configured.
const DefaultInferenceThreshold = 0.6

// ReasoningProcess synthesizes implication atoms from the cross product of
// active goals and sufficiently strong beliefs. A belief supports a goal
// when their names share at least one word; the resulting implication
// links belief and goal through its outgoing edges and is merged on
// repeat passes by the space's identity rule.
type ReasoningProcess struct {
	threshold float64
	logger    *zap.Logger
}

func NewReasoningProcess(threshold float64, logger *zap.Logger) *ReasoningProcess {
	if threshold <= 0 {
		threshold = DefaultInferenceThreshold
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReasoningProcess{threshold: threshold, logger: logger}
}

func (p *ReasoningProcess) Name() string { return "reasoning" }

func (p *ReasoningProcess) Capability() domain.Capability { return domain.CapabilityReasoning }

func (p *ReasoningProcess) Reason(space *store.AtomSpace) *domain.ReasoningResult {
	beliefType := domain.AtomTypeBelief
	goalType := domain.AtomTypeGoal

	beliefs := space.FindAtoms(domain.FindOpts{Type: &beliefType, MinStrength: &p.threshold})

	// GoalsConsidered counts every goal atom; the active-status filter is
	// applied per goal inside the loop.
	goals := space.FindAtoms(domain.FindOpts{Type: &goalType})

	inferences := make([]uuid.UUID, 0)
	for _, goal := range goals {
		if !goal.IsActiveGoal() {
			continue
		}
		for _, belief := range beliefs {
			if !lexicallyRelevant(goal.Name, belief.Name) {
				continue
			}
			tv := domain.TruthValue{
				Strength:   min(belief.TruthValue.Strength, 0.8),
				Confidence: belief.TruthValue.Confidence * 0.8,
			}
			implication := space.AddAtom(
				domain.AtomTypeImplication,
				belief.Name+" => "+goal.Name,
				&tv,
				[]uuid.UUID{belief.ID, goal.ID},
				nil,
			)
			inferences = append(inferences, implication.ID)
		}
	}

	p.logger.Debug("reasoning pass",
		zap.Int("beliefs", len(beliefs)),
		zap.Int("goals", len(goals)),
		zap.Int("inferences", len(inferences)),
	)

	return &domain.ReasoningResult{
		Process:           p.Name(),
		Inferences:        inferences,
		BeliefsConsidered: len(beliefs),
		GoalsConsidered:   len(goals),
	}
}
