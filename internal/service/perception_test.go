package service

import (
	"testing"

	"github.com/rzonedevops/cogllama-cloud-services/internal/domain"
	"github.com/rzonedevops/cogllama-cloud-services/internal/store"
	"go.uber.org/zap"
)

func floatPtr(v float64) *float64 { return &v }

func TestPerception_CreatesBeliefs(t *testing.T) {
	space := store.NewAtomSpace("test")
	proc := NewPerceptionProcess(zap.NewNop())

	result, err := proc.Perceive(space, []domain.Observation{
		domain.TextObservation("door is open"),
		{Concept: "light is on", Strength: floatPtr(0.9), Confidence: floatPtr(0.95)},
	})
	if err != nil {
		t.Fatalf("Perceive failed: %v", err)
	}

	if result.Count != 2 {
		t.Errorf("Count = %d, want 2", result.Count)
	}
	if result.Process != "perception" {
		t.Errorf("Process = %q, want perception", result.Process)
	}

	first := space.GetAtom(result.PerceivedConcepts[0])
	if first.Name != "perceived:door is open" {
		t.Errorf("belief name = %q, want perceived: prefix", first.Name)
	}
	if first.Type != domain.AtomTypeBelief {
		t.Errorf("belief type = %q, want belief", first.Type)
	}
	if first.TruthValue.Strength != domain.DefaultObservationStrength {
		t.Errorf("default strength = %v, want %v", first.TruthValue.Strength, domain.DefaultObservationStrength)
	}

	second := space.GetAtom(result.PerceivedConcepts[1])
	if second.TruthValue.Strength != 0.9 || second.TruthValue.Confidence != 0.95 {
		t.Errorf("explicit evidence = %+v, want (0.9, 0.95)", second.TruthValue)
	}
}

func TestPerception_RepeatObservationMerges(t *testing.T) {
	space := store.NewAtomSpace("test")
	proc := NewPerceptionProcess(nil)

	obs := []domain.Observation{domain.TextObservation("same concept")}
	first, err := proc.Perceive(space, obs)
	if err != nil {
		t.Fatalf("Perceive failed: %v", err)
	}
	second, err := proc.Perceive(space, obs)
	if err != nil {
		t.Fatalf("Perceive failed: %v", err)
	}

	if first.PerceivedConcepts[0] != second.PerceivedConcepts[0] {
		t.Error("repeat observation should merge into the same belief atom")
	}
	if space.Len() != 1 {
		t.Errorf("Len() = %d, want 1", space.Len())
	}
}

func TestPerception_EmptyConceptFallsBack(t *testing.T) {
	space := store.NewAtomSpace("test")
	proc := NewPerceptionProcess(nil)

	result, err := proc.Perceive(space, []domain.Observation{{}})
	if err != nil {
		t.Fatalf("Perceive failed: %v", err)
	}
	atom := space.GetAtom(result.PerceivedConcepts[0])
	if atom.Name != "perceived:unknown" {
		t.Errorf("belief name = %q, want perceived:unknown", atom.Name)
	}
}

func TestPerception_InvalidEvidenceFails(t *testing.T) {
	space := store.NewAtomSpace("test")
	proc := NewPerceptionProcess(nil)

	_, err := proc.Perceive(space, []domain.Observation{
		{Concept: "bad data", Strength: floatPtr(1.5)},
	})
	if err == nil {
		t.Fatal("out-of-range evidence should fail perception")
	}
	if space.Len() != 0 {
		t.Errorf("failed observation should not be stored, Len() = %d", space.Len())
	}
}
