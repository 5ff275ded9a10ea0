package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rzonedevops/cogllama-cloud-services/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockSnapshotStore mocks the domain.SnapshotStore interface.
type MockSnapshotStore struct {
	mock.Mock
}

func (m *MockSnapshotStore) Create(ctx context.Context, export *domain.KnowledgeExport) (uuid.UUID, error) {
	args := m.Called(ctx, export)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockSnapshotStore) Get(ctx context.Context, id uuid.UUID) (*domain.KnowledgeExport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KnowledgeExport), args.Error(1)
}

func TestCognitiveAgent_DefaultStages(t *testing.T) {
	agent := NewCognitiveAgent("tester", nil, zap.NewNop())

	export := agent.ExportKnowledge()
	assert.Equal(t, []string{"perception", "reasoning", "action"}, export.Processes)
}

func TestCognitiveAgent_Cycle_FullPipeline(t *testing.T) {
	agent := NewCognitiveAgent("tester", nil, zap.NewNop())

	_, err := agent.AddGoal("help user", 0.9)
	assert.NoError(t, err)
	_, err = agent.AddAction("assist user", 0.8)
	assert.NoError(t, err)

	result := agent.Cycle([]domain.Observation{
		domain.TextObservation("user asked a question"),
	})

	assert.Equal(t, "tester", result.Agent)
	assert.Contains(t, result.CycleResults, domain.CycleKeyPerception)
	assert.Contains(t, result.CycleResults, domain.CycleKeyReasoning)
	assert.Contains(t, result.CycleResults, domain.CycleKeyActionPlanning)

	perception, ok := result.CycleResults[domain.CycleKeyPerception].(*domain.PerceptionResult)
	assert.True(t, ok)
	assert.Equal(t, 1, perception.Count)

	planning, ok := result.CycleResults[domain.CycleKeyActionPlanning].(*domain.ActionResult)
	assert.True(t, ok)
	assert.Len(t, planning.SelectedActions, 1)
}

func TestCognitiveAgent_Cycle_NoObservationsOmitsPerception(t *testing.T) {
	agent := NewCognitiveAgent("tester", nil, zap.NewNop())

	result := agent.Cycle(nil)

	assert.NotContains(t, result.CycleResults, domain.CycleKeyPerception)
	assert.Contains(t, result.CycleResults, domain.CycleKeyReasoning)
	assert.Contains(t, result.CycleResults, domain.CycleKeyActionPlanning)
}

func TestCognitiveAgent_Cycle_PartialStagesReportErrors(t *testing.T) {
	// Supplying any stage list suppresses the defaults, so the missing
	// capabilities surface as error values inside the cycle.
	agent := NewCognitiveAgent("tester", nil, zap.NewNop(),
		NewReasoningProcess(0, zap.NewNop()),
	)

	result := agent.Cycle([]domain.Observation{
		domain.TextObservation("an observation"),
	})

	assert.Equal(t,
		map[string]string{"error": "No perception process available"},
		result.CycleResults[domain.CycleKeyPerception])
	assert.Equal(t,
		map[string]string{"error": "No action process available"},
		result.CycleResults[domain.CycleKeyActionPlanning])

	_, ok := result.CycleResults[domain.CycleKeyReasoning].(*domain.ReasoningResult)
	assert.True(t, ok, "registered reasoning stage should still run")
}

func TestCognitiveAgent_DuplicateCapabilityFirstWins(t *testing.T) {
	first := NewReasoningProcess(0.9, zap.NewNop())
	second := NewReasoningProcess(0.1, zap.NewNop())
	agent := NewCognitiveAgent("tester", nil, zap.NewNop(), first, second)

	_, err := agent.AddBelief("topic is relevant", 0.5, 0.9)
	assert.NoError(t, err)
	_, err = agent.AddGoal("understand topic", 0.9)
	assert.NoError(t, err)

	// The first-registered reasoner has threshold 0.9, so the 0.5 belief
	// is never considered.
	reasoning, err := agent.Reason()
	assert.NoError(t, err)
	assert.Equal(t, 0, reasoning.BeliefsConsidered)
}

func TestCognitiveAgent_KnowledgeSummary(t *testing.T) {
	agent := NewCognitiveAgent("tester", nil, zap.NewNop())

	_, err := agent.AddBelief("user likes Go", 0.9, 0.8)
	assert.NoError(t, err)
	_, err = agent.AddGoal("help user with Go", 0.9)
	assert.NoError(t, err)
	_, err = agent.AddAction("explain Go idioms", 0.8)
	assert.NoError(t, err)

	_, err = agent.Reason()
	assert.NoError(t, err)

	summary := agent.KnowledgeSummary()
	assert.Equal(t, "tester", summary.Agent)
	assert.Equal(t, 1, summary.Beliefs)
	assert.Equal(t, 1, summary.Goals)
	assert.Equal(t, 1, summary.Actions)
	assert.Equal(t, 1, summary.Implications)
	assert.Equal(t, 4, summary.TotalAtoms)
}

func TestCognitiveAgent_SyncToCloud(t *testing.T) {
	snapshots := new(MockSnapshotStore)
	snapshotID := uuid.New()
	snapshots.On("Create", mock.Anything, mock.MatchedBy(func(export *domain.KnowledgeExport) bool {
		return export.Agent == "tester" && export.AtomSpace.Name == "agent_memory"
	})).Return(snapshotID, nil)

	agent := NewCognitiveAgent("tester", snapshots, zap.NewNop())
	_, err := agent.AddBelief("worth persisting", 0.9, 0.9)
	assert.NoError(t, err)

	id, err := agent.SyncToCloud(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, snapshotID, id)
	snapshots.AssertExpectations(t)
}

func TestCognitiveAgent_SyncToCloud_NoStore(t *testing.T) {
	agent := NewCognitiveAgent("tester", nil, zap.NewNop())

	_, err := agent.SyncToCloud(context.Background())
	assert.ErrorIs(t, err, ErrSnapshotStoreUnavailable)
}

func TestCognitiveAgent_LoadSnapshot(t *testing.T) {
	snapshots := new(MockSnapshotStore)
	snapshotID := uuid.New()
	stored := &domain.KnowledgeExport{Agent: "tester"}
	snapshots.On("Get", mock.Anything, snapshotID).Return(stored, nil)

	agent := NewCognitiveAgent("tester", snapshots, zap.NewNop())

	export, err := agent.LoadSnapshot(context.Background(), snapshotID)
	assert.NoError(t, err)
	assert.Equal(t, stored, export)
	snapshots.AssertExpectations(t)
}
