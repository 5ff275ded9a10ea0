package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rzonedevops/cogllama-cloud-services/internal/domain"
	"github.com/rzonedevops/cogllama-cloud-services/internal/store"
	"go.uber.org/zap"
)

// PerceptionProcess transforms sensory observations into belief atoms.
// Each observation becomes a "perceived:<concept>" belief; two
// observations naming the same concept merge into one belief through the
// space's identity rule.
type PerceptionProcess struct {
	logger *zap.Logger
}

func NewPerceptionProcess(logger *zap.Logger) *PerceptionProcess {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PerceptionProcess{logger: logger}
}

func (p *PerceptionProcess) Name() string { return "perception" }

func (p *PerceptionProcess) Capability() domain.Capability { return domain.CapabilityPerception }

func (p *PerceptionProcess) Perceive(space *store.AtomSpace, observations []domain.Observation) (*domain.PerceptionResult, error) {
	perceived := make([]uuid.UUID, 0, len(observations))
	for _, obs := range observations {
		atom, err := space.AddBelief(
			"perceived:"+obs.ConceptName(),
			obs.EvidenceStrength(),
			obs.EvidenceConfidence(),
		)
		if err != nil {
			return nil, fmt.Errorf("observation %q: %w", obs.ConceptName(), err)
		}
		perceived = append(perceived, atom.ID)
	}

	p.logger.Debug("perception pass",
		zap.Int("observations", len(observations)),
		zap.Int("perceived", len(perceived)),
	)

	return &domain.PerceptionResult{
		Process:           p.Name(),
		PerceivedConcepts: perceived,
		Count:             len(perceived),
	}, nil
}
