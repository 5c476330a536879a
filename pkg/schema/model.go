package schema

import "time"

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Model is a model available from the runtime
type Model struct {
	Name          string    `json:"name"`
	Family        string    `json:"family,omitempty"`
	ParameterSize string    `json:"parameter_size,omitempty"`
	Size          int64     `json:"size,omitempty"`
	ModifiedAt    time.Time `json:"modified_at,omitzero"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Model) String() string {
	return Stringify(m)
}
