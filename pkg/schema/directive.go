package schema

import (
	"encoding/json"
	"maps"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Action names a client-side UI side-effect
type Action string

// Directive is an instruction for the client to change its UI, decoupled
// from the natural-language reply. On the wire the parameters are flattened
// next to the action.
type Directive struct {
	Action     Action
	Parameters map[string]any
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ActionChangeTheme Action = "change_theme"
	ActionAddButton   Action = "add_button"
)

// Parameter names for the built-in actions
const (
	ParamColor = "color"
	ParamLabel = "label"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewDirective returns a directive for an action with key/value parameters
func NewDirective(action Action, params map[string]any) Directive {
	return Directive{
		Action:     action,
		Parameters: maps.Clone(params),
	}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (d Directive) String() string {
	return Stringify(d)
}

////////////////////////////////////////////////////////////////////////////////
// JSON

func (d Directive) MarshalJSON() ([]byte, error) {
	result := make(map[string]any, len(d.Parameters)+1)
	for k, v := range d.Parameters {
		result[k] = v
	}
	result["action"] = d.Action
	return json.Marshal(result)
}

func (d *Directive) UnmarshalJSON(data []byte) error {
	var v map[string]any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	action, _ := v["action"].(string)
	delete(v, "action")
	d.Action = Action(action)
	d.Parameters = v
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Get returns a parameter as a string, or empty string if not set
func (d Directive) Get(key string) string {
	if v, ok := d.Parameters[key].(string); ok {
		return v
	}
	return ""
}
