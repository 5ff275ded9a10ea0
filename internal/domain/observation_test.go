package domain

import (
	"encoding/json"
	"testing"
)

func TestObservation_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		wantConcept    string
		wantStrength   float64
		wantConfidence float64
	}{
		{
			name:           "bare string uses defaults",
			input:          `"door is open"`,
			wantConcept:    "door is open",
			wantStrength:   DefaultObservationStrength,
			wantConfidence: DefaultObservationConfidence,
		},
		{
			name:           "structured object",
			input:          `{"concept": "user is a beginner", "strength": 0.9, "confidence": 0.6}`,
			wantConcept:    "user is a beginner",
			wantStrength:   0.9,
			wantConfidence: 0.6,
		},
		{
			name:           "object with missing fields takes defaults",
			input:          `{"concept": "noise detected"}`,
			wantConcept:    "noise detected",
			wantStrength:   DefaultObservationStrength,
			wantConfidence: DefaultObservationConfidence,
		},
		{
			name:           "empty concept falls back to unknown",
			input:          `{"strength": 0.4}`,
			wantConcept:    "unknown",
			wantStrength:   0.4,
			wantConfidence: DefaultObservationConfidence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var obs Observation
			if err := json.Unmarshal([]byte(tt.input), &obs); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if got := obs.ConceptName(); got != tt.wantConcept {
				t.Errorf("ConceptName() = %q, want %q", got, tt.wantConcept)
			}
			if got := obs.EvidenceStrength(); got != tt.wantStrength {
				t.Errorf("EvidenceStrength() = %v, want %v", got, tt.wantStrength)
			}
			if got := obs.EvidenceConfidence(); got != tt.wantConfidence {
				t.Errorf("EvidenceConfidence() = %v, want %v", got, tt.wantConfidence)
			}
		})
	}
}

func TestObservation_UnmarshalJSON_Invalid(t *testing.T) {
	var obs Observation
	if err := json.Unmarshal([]byte(`42`), &obs); err == nil {
		t.Error("expected error for non-string, non-object observation")
	}
}
