package domain

import "encoding/json"

// Perception defaults applied when an observation omits evidence values.
const (
	DefaultObservationStrength   = 0.7
	DefaultObservationConfidence = 0.8
)

// Observation is one unit of sensory input. On the wire it is either a
// bare JSON string ("door is open") or a structured object
// {"concept": ..., "strength": ..., "confidence": ...}; missing fields
// take the perception defaults.
type Observation struct {
	Concept    string   `json:"concept"`
	Strength   *float64 `json:"strength,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// TextObservation wraps an opaque text value as an observation.
func TextObservation(text string) Observation {
	return Observation{Concept: text}
}

func (o *Observation) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		o.Concept = text
		o.Strength = nil
		o.Confidence = nil
		return nil
	}

	type observation Observation
	var obj observation
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*o = Observation(obj)
	return nil
}

// EvidenceStrength returns the observation's strength or the default.
func (o Observation) EvidenceStrength() float64 {
	if o.Strength != nil {
		return *o.Strength
	}
	return DefaultObservationStrength
}

// EvidenceConfidence returns the observation's confidence or the default.
func (o Observation) EvidenceConfidence() float64 {
	if o.Confidence != nil {
		return *o.Confidence
	}
	return DefaultObservationConfidence
}

// ConceptName returns the concept, falling back to "unknown" for a
// structured observation that named none.
func (o Observation) ConceptName() string {
	if o.Concept == "" {
		return "unknown"
	}
	return o.Concept
}
