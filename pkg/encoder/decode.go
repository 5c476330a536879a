package encoder

import (
	"bytes"
	"encoding/json"
	"time"

	// Packages
	agui "github.com/mutablelogic/go-agui"
	schema "github.com/mutablelogic/go-agui/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type rawFrame struct {
	Type      schema.EventType `json:"type"`
	Data      json.RawMessage  `json:"data"`
	Timestamp string           `json:"timestamp"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Decode parses one frame, with or without the "data: " prefix and the
// trailing blank line, into an event with a typed payload
func Decode(data []byte) (schema.Event, error) {
	data = bytes.TrimSpace(bytes.TrimPrefix(bytes.TrimSpace(data), []byte(framePrefix)))

	var frame rawFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		return schema.Event{}, agui.ErrMalformed.With(err)
	}

	event := schema.Event{Type: frame.Type}
	if frame.Timestamp != "" {
		ts, err := parseTime(frame.Timestamp)
		if err != nil {
			return schema.Event{}, agui.ErrMalformed.With(err)
		}
		event.Timestamp = ts
	}

	// Decode the payload
	var err error
	switch frame.Type {
	case schema.EventUIControl:
		event.Data, err = decodePayload[schema.Directive](frame.Data)
	case schema.EventStart:
		event.Data, err = decodePayload[schema.StartData](frame.Data)
	case schema.EventTextDelta:
		event.Data, err = decodePayload[schema.DeltaData](frame.Data)
	case schema.EventResult:
		event.Data, err = decodePayload[schema.ResultData](frame.Data)
	case schema.EventEnd:
		event.Data, err = decodePayload[schema.EndData](frame.Data)
	case schema.EventError:
		event.Data, err = decodePayload[schema.ErrorData](frame.Data)
	default:
		return schema.Event{}, agui.ErrMalformed.Withf("unknown event type %q", frame.Type)
	}
	if err != nil {
		return schema.Event{}, agui.ErrMalformed.Withf("%s: %v", frame.Type, err)
	}

	// Return success
	return event, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func decodePayload[T any](data json.RawMessage) (T, error) {
	var v T
	if len(data) == 0 {
		return v, nil
	}
	return v, json.Unmarshal(data, &v)
}

// parseTime accepts ISO-8601 with any fractional precision. A timestamp
// without an offset is taken as UTC.
func parseTime(value string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return ts, nil
	}
	return time.ParseInLocation(localTimeFormat, value, time.UTC)
}
