package domain

import "fmt"

// TruthValue is a bounded (strength, confidence) pair: strength is the
// estimated truth of the atom, confidence is the confidence in that
// estimate. Both live in [0,1].
type TruthValue struct {
	Strength   float64 `json:"strength"`
	Confidence float64 `json:"confidence"`
}

// DefaultTruthValue returns the (0.5, 0.5) value assigned to atoms created
// without explicit evidence. Always a fresh value, never a shared instance.
func DefaultTruthValue() TruthValue {
	return TruthValue{Strength: 0.5, Confidence: 0.5}
}

// NewTruthValue validates both components at construction time.
func NewTruthValue(strength, confidence float64) (TruthValue, error) {
	if strength < 0 || strength > 1 {
		return TruthValue{}, fmt.Errorf("truth value strength %v outside [0,1]", strength)
	}
	if confidence < 0 || confidence > 1 {
		return TruthValue{}, fmt.Errorf("truth value confidence %v outside [0,1]", confidence)
	}
	return TruthValue{Strength: strength, Confidence: confidence}, nil
}

// Merge combines the value with new evidence using confidence-weighted
// averaging: the strengths are weighted by their confidences and the
// combined confidence saturates at 1. A total weight of zero leaves the
// value unchanged.
func (tv TruthValue) Merge(newStrength, newConfidence float64) TruthValue {
	weightOld := tv.Confidence
	weightNew := newConfidence
	total := weightOld + weightNew
	if total <= 0 {
		return tv
	}
	merged := TruthValue{
		Strength:   (tv.Strength*weightOld + newStrength*weightNew) / total,
		Confidence: total,
	}
	if merged.Confidence > 1 {
		merged.Confidence = 1
	}
	return merged
}
