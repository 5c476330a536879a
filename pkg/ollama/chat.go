package ollama

import (
	"context"
	"encoding/json"
	"time"

	// Packages
	agui "github.com/mutablelogic/go-agui"
	schema "github.com/mutablelogic/go-agui/pkg/schema"
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Response is one line of a streamed chat response
type Response struct {
	Model     string         `json:"model"`
	CreatedAt time.Time      `json:"created_at"`
	Message   schema.Message `json:"message"`
	Done      bool           `json:"done"`
	Reason    string         `json:"done_reason,omitempty"`
	Error     string         `json:"error,omitempty"`
	Metrics
}

// Metrics
type Metrics struct {
	TotalDuration      time.Duration `json:"total_duration,omitempty"`
	LoadDuration       time.Duration `json:"load_duration,omitempty"`
	PromptEvalCount    int           `json:"prompt_eval_count,omitempty"`
	PromptEvalDuration time.Duration `json:"prompt_eval_duration,omitempty"`
	EvalCount          int           `json:"eval_count,omitempty"`
	EvalDuration       time.Duration `json:"eval_duration,omitempty"`
}

type reqChat struct {
	Model    string              `json:"model"`
	Messages schema.Conversation `json:"messages"`
	Stream   bool                `json:"stream"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r Response) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// StreamChat sends the conversation to the model and calls fn with the
// content of each streamed line, in order. It returns when the model reports
// it is done, or with an error if the stream fails, ends early, or fn
// returns an error.
func (ollama *Client) StreamChat(ctx context.Context, model string, messages schema.Conversation, fn agui.StreamFn) error {
	if model == "" {
		return agui.ErrBadParameter.With("model is required")
	}
	if fn == nil {
		return agui.ErrBadParameter.With("stream callback is required")
	}

	// Request
	req, err := client.NewJSONRequest(reqChat{
		Model:    model,
		Messages: messages,
		Stream:   true,
	})
	if err != nil {
		return err
	}

	// Response
	var delta Response
	var done bool
	if err := ollama.DoWithContext(ctx, req, &delta, client.OptPath("chat"), client.OptJsonStreamCallback(func(v any) error {
		r, ok := v.(*Response)
		if !ok || r == nil {
			return agui.ErrMalformed.Withf("invalid stream response: %v", v)
		}
		defer func() { *r = Response{} }()

		if r.Error != "" {
			return agui.ErrUpstream.With(r.Error)
		}
		if done {
			return agui.ErrMalformed.With("stream continued after done")
		}
		if err := fn(r.Message.Content); err != nil {
			return err
		}
		done = r.Done
		return nil
	})); err != nil {
		return err
	}

	// The stream must finish with a done line
	if !done {
		return agui.ErrMalformed.With("stream ended before done")
	}

	// Return success
	return nil
}
