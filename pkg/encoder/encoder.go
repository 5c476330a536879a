/*
encoder serialises protocol events into the framing forwarded to the client:

	data: {"type": <kind>, "data": <payload>, "timestamp": <ISO-8601 UTC>}\n\n
*/
package encoder

import (
	"bytes"
	"encoding/json"
	"time"

	// Packages
	schema "github.com/mutablelogic/go-agui/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Encoder struct {
	now func() time.Time
}

// Opt is a functional option for configuring an encoder
type Opt func(*Encoder)

type frame struct {
	Type      schema.EventType `json:"type"`
	Data      any              `json:"data"`
	Timestamp string           `json:"timestamp"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// TimeFormat is ISO-8601 with microsecond precision
	TimeFormat = "2006-01-02T15:04:05.000000Z07:00"

	// localTimeFormat is accepted on decode, for timestamps without an offset
	localTimeFormat = "2006-01-02T15:04:05.999999999"

	framePrefix = "data: "
	frameSuffix = "\n\n"
)

var (
	defaultEncoder = New()
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func New(opts ...Opt) *Encoder {
	e := &Encoder{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithClock sets the clock used to stamp events which have no timestamp
func WithClock(fn func() time.Time) Opt {
	return func(e *Encoder) {
		if fn != nil {
			e.now = fn
		}
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Encode returns the framed event using the default encoder
func Encode(event schema.Event) []byte {
	return defaultEncoder.Encode(event)
}

// Encode returns the framed event. An event without a timestamp is stamped
// with the current time. A payload which cannot be marshalled is replaced
// by an error event, so encoding never fails.
func (e *Encoder) Encode(event schema.Event) []byte {
	ts := event.Timestamp
	if ts.IsZero() {
		ts = e.now()
	}
	data, err := marshal(frame{
		Type:      event.Type,
		Data:      payload(event.Data),
		Timestamp: ts.UTC().Format(TimeFormat),
	})
	if err != nil {
		data, _ = marshal(frame{
			Type:      schema.EventError,
			Data:      schema.ErrorData{Error: err.Error(), Message: "Failed to encode " + string(event.Type) + " event"},
			Timestamp: ts.UTC().Format(TimeFormat),
		})
	}

	// Frame the event
	result := make([]byte, 0, len(framePrefix)+len(data)+len(frameSuffix))
	result = append(result, framePrefix...)
	result = append(result, data...)
	return append(result, frameSuffix...)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// Payloads are always objects on the wire
func payload(v any) any {
	if v == nil {
		return struct{}{}
	}
	return v
}

// marshal returns compact JSON without escaping HTML characters, so model
// output passes through as written
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
