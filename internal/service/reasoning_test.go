package service

import (
	"math"
	"testing"

	"github.com/rzonedevops/cogllama-cloud-services/internal/domain"
	"github.com/rzonedevops/cogllama-cloud-services/internal/store"
	"go.uber.org/zap"
)

func TestReasoning_SynthesizesImplications(t *testing.T) {
	space := store.NewAtomSpace("test")
	proc := NewReasoningProcess(0, zap.NewNop())

	belief, err := space.AddBelief("user needs help with code", 0.9, 0.8)
	if err != nil {
		t.Fatalf("AddBelief failed: %v", err)
	}
	goal, err := space.AddGoal("help user with code", 0.9)
	if err != nil {
		t.Fatalf("AddGoal failed: %v", err)
	}

	result := proc.Reason(space)

	if len(result.Inferences) != 1 {
		t.Fatalf("inferences = %d, want 1", len(result.Inferences))
	}
	if result.BeliefsConsidered != 1 || result.GoalsConsidered != 1 {
		t.Errorf("considered beliefs=%d goals=%d, want 1 and 1",
			result.BeliefsConsidered, result.GoalsConsidered)
	}

	implication := space.GetAtom(result.Inferences[0])
	if implication.Type != domain.AtomTypeImplication {
		t.Errorf("inference type = %q, want implication", implication.Type)
	}
	wantName := belief.Name + " => " + goal.Name
	if implication.Name != wantName {
		t.Errorf("inference name = %q, want %q", implication.Name, wantName)
	}
	if len(implication.Outgoing) != 2 ||
		implication.Outgoing[0] != belief.ID || implication.Outgoing[1] != goal.ID {
		t.Errorf("inference outgoing = %v, want [belief, goal]", implication.Outgoing)
	}

	// Strength is the belief strength capped at 0.8, confidence is the
	// belief confidence discounted by 0.8.
	if implication.TruthValue.Strength != 0.8 {
		t.Errorf("inference strength = %v, want 0.8", implication.TruthValue.Strength)
	}
	if got := implication.TruthValue.Confidence; math.Abs(got-0.64) > 1e-9 {
		t.Errorf("inference confidence = %v, want 0.64", got)
	}
}

func TestReasoning_ThresholdExcludesWeakBeliefs(t *testing.T) {
	space := store.NewAtomSpace("test")
	proc := NewReasoningProcess(0.8, zap.NewNop())

	if _, err := space.AddBelief("weak hint about topic", 0.5, 0.9); err != nil {
		t.Fatalf("AddBelief failed: %v", err)
	}
	if _, err := space.AddGoal("understand topic", 0.9); err != nil {
		t.Fatalf("AddGoal failed: %v", err)
	}

	result := proc.Reason(space)

	if result.BeliefsConsidered != 0 {
		t.Errorf("BeliefsConsidered = %d, want 0", result.BeliefsConsidered)
	}
	// Goals are still counted even when no belief qualifies.
	if result.GoalsConsidered != 1 {
		t.Errorf("GoalsConsidered = %d, want 1", result.GoalsConsidered)
	}
	if len(result.Inferences) != 0 {
		t.Errorf("inferences = %v, want none", result.Inferences)
	}
}

func TestReasoning_InactiveGoalsCountedButSkipped(t *testing.T) {
	space := store.NewAtomSpace("test")
	proc := NewReasoningProcess(0, zap.NewNop())

	if _, err := space.AddBelief("report is overdue", 0.9, 0.9); err != nil {
		t.Fatalf("AddBelief failed: %v", err)
	}
	goal, err := space.AddGoal("finish report", 0.9)
	if err != nil {
		t.Fatalf("AddGoal failed: %v", err)
	}
	space.UpdateMetadata(goal.ID, domain.MetaStatus, domain.GoalStatusCompleted)

	result := proc.Reason(space)

	if result.GoalsConsidered != 1 {
		t.Errorf("GoalsConsidered = %d, want 1 (count precedes status filter)", result.GoalsConsidered)
	}
	if len(result.Inferences) != 0 {
		t.Errorf("completed goal produced inferences: %v", result.Inferences)
	}
}

func TestReasoning_IrrelevantBeliefProducesNothing(t *testing.T) {
	space := store.NewAtomSpace("test")
	proc := NewReasoningProcess(0, zap.NewNop())

	if _, err := space.AddBelief("sky looks cloudy", 0.9, 0.9); err != nil {
		t.Fatalf("AddBelief failed: %v", err)
	}
	if _, err := space.AddGoal("finish homework", 0.9); err != nil {
		t.Fatalf("AddGoal failed: %v", err)
	}

	result := proc.Reason(space)
	if len(result.Inferences) != 0 {
		t.Errorf("unrelated names produced inferences: %v", result.Inferences)
	}
}

func TestReasoning_RepeatPassMergesImplications(t *testing.T) {
	space := store.NewAtomSpace("test")
	proc := NewReasoningProcess(0, zap.NewNop())

	if _, err := space.AddBelief("task is urgent", 0.9, 0.9); err != nil {
		t.Fatalf("AddBelief failed: %v", err)
	}
	if _, err := space.AddGoal("finish task", 0.9); err != nil {
		t.Fatalf("AddGoal failed: %v", err)
	}

	first := proc.Reason(space)
	second := proc.Reason(space)

	if first.Inferences[0] != second.Inferences[0] {
		t.Error("repeat pass should merge into the same implication atom")
	}
	if n := space.CountByType(domain.AtomTypeImplication); n != 1 {
		t.Errorf("implication count = %d, want 1", n)
	}
}

func TestLexicallyRelevant(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"help user with Python", "user needs assistance", true},
		{"Help User", "user", true},
		{"finish homework", "sky looks cloudy", false},
		{"", "anything", false},
	}
	for _, tt := range tests {
		if got := lexicallyRelevant(tt.a, tt.b); got != tt.want {
			t.Errorf("lexicallyRelevant(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
