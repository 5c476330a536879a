package agui

import (
	"context"

	// Packages
	schema "github.com/mutablelogic/go-agui/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// StreamFn is called once for each incremental fragment of generated text.
// Returning an error stops the stream, and the error is returned by StreamChat.
type StreamFn func(fragment string) error

// ChatStreamer is the capability of a model runtime to stream a chat completion
type ChatStreamer interface {
	// Return the runtime name, which is reported as the agent
	Name() string

	// StreamChat sends the conversation to the model and calls fn for every
	// fragment of the reply, in the order they arrive. The stream is finite
	// and cannot be restarted.
	StreamChat(ctx context.Context, model string, messages schema.Conversation, fn StreamFn) error
}

// ModelLister returns the models available from a runtime
type ModelLister interface {
	// ListModels returns the list of available models
	ListModels(ctx context.Context) ([]schema.Model, error)
}
