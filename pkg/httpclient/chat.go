package httpclient

import (
	"context"

	// Packages
	agui "github.com/mutablelogic/go-agui"
	encoder "github.com/mutablelogic/go-agui/pkg/encoder"
	schema "github.com/mutablelogic/go-agui/pkg/schema"
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// EventFn is called for every event received, in order
type EventFn func(schema.Event) error

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Chat sends the conversation and reads the event stream back, calling fn
// for each event when it is not nil. It returns the result once the end
// event arrives. An error event is returned as ErrUpstream, and a stream
// which stops before its end event as ErrMalformed.
func (c *Client) Chat(ctx context.Context, req schema.ChatRequest, fn EventFn) (*schema.ResultData, error) {
	if len(req.Messages) == 0 {
		return nil, agui.ErrBadParameter.With("messages are required")
	}
	payload, err := client.NewJSONRequest(req)
	if err != nil {
		return nil, err
	}

	var result *schema.ResultData
	var streamErr error
	var ended bool
	callback := func(evt client.TextStreamEvent) error {
		event, err := encoder.Decode([]byte(evt.Data))
		if err != nil {
			return err
		}
		switch data := event.Data.(type) {
		case schema.ResultData:
			result = &data
		case schema.EndData:
			ended = true
		case schema.ErrorData:
			streamErr = agui.ErrUpstream.Withf("%s: %s", data.Message, data.Error)
		}
		if fn != nil {
			return fn(event)
		}
		return nil
	}

	// Pass a non-nil out so the client proceeds to decode the stream
	var discard struct{}
	if err := c.DoWithContext(ctx, payload, &discard,
		client.OptPath("chat"),
		client.OptReqHeader("Accept", "text/event-stream"),
		client.OptTextStreamCallback(callback),
		client.OptNoTimeout(),
	); err != nil {
		return nil, err
	}
	if streamErr != nil {
		return nil, streamErr
	}
	if result == nil || !ended {
		return nil, agui.ErrMalformed.With("stream ended before the end event")
	}
	return result, nil
}
