package schema

import (
	"strings"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// DefaultModel is used when a chat request does not name a model
	DefaultModel = "mistral:latest"

	// Protocol is the name of the event protocol
	Protocol = "AG-UI"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ChatRequest is the inbound request: the conversation so far and the model
type ChatRequest struct {
	Messages Conversation `json:"messages"`
	Model    string       `json:"model,omitempty"`
}

// ServiceInfo is returned from the root endpoint
type ServiceInfo struct {
	Service  string `json:"service"`
	Status   string `json:"status"`
	Protocol string `json:"protocol"`
	Model    string `json:"model"`
	Version  string `json:"version,omitempty"`
}

// HealthResponse reports whether the model runtime is reachable
type HealthResponse struct {
	Status string   `json:"status"`
	Ollama string   `json:"ollama"`
	Models []string `json:"available_models"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r ChatRequest) String() string {
	return Stringify(r)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ModelName returns the requested model, or DefaultModel when none was set
func (r ChatRequest) ModelName() string {
	if model := strings.TrimSpace(r.Model); model != "" {
		return model
	}
	return DefaultModel
}
