/*
ollama implements the parts of the ollama API needed to relay a chat:
streaming chat completion, model listing and the server version.
https://github.com/ollama/ollama/blob/main/docs/api.md
*/
package ollama

import (
	// Packages
	agui "github.com/mutablelogic/go-agui"
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
}

var _ agui.ChatStreamer = (*Client)(nil)
var _ agui.ModelLister = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultName = "ollama"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client, with an ollama endpoint, which should be something like
// "http://localhost:11434/api"
func New(endPoint string, opts ...client.ClientOpt) (*Client, error) {
	if endPoint == "" {
		return nil, agui.ErrBadParameter.With("endpoint is required")
	}

	// Create client
	client, err := client.New(append(opts, client.OptEndpoint(endPoint))...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{client}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Return the name of the agent
func (*Client) Name() string {
	return defaultName
}
