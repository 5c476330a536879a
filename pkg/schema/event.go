package schema

import (
	"time"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// EventType is the kind of a protocol event
type EventType string

// Event is one typed, timestamped unit of the outbound event stream.
// Data holds one of the payload types below, or a Directive for ui_control.
type Event struct {
	Type      EventType `json:"type"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}

// StartData is the payload of a start event
type StartData struct {
	Agent string `json:"agent"`
	Model string `json:"model"`
}

// DeltaData is the payload of a text_delta event
type DeltaData struct {
	Content string `json:"content"`
	Delta   bool   `json:"delta"`
	Role    string `json:"role"`
}

// ResultData is the payload of a result event
type ResultData struct {
	Content string `json:"content"`
	Role    string `json:"role"`
	Model   string `json:"model"`
}

// EndData is the payload of an end event
type EndData struct {
	Status       string `json:"status"`
	MessageCount int    `json:"message_count"`
}

// ErrorData is the payload of an error event
type ErrorData struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

///////////////////////////////////////////////////////////////////////////////
// EVENT TYPES

const (
	EventUIControl EventType = "ui_control" // Client-side UI directive
	EventStart     EventType = "start"      // Stream has started
	EventTextDelta EventType = "text_delta" // Incremental fragment of the reply
	EventResult    EventType = "result"     // Full accumulated reply
	EventEnd       EventType = "end"        // Stream completed
	EventError     EventType = "error"      // Stream failed
)

const (
	StatusCompleted = "completed"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func NewUIControlEvent(directive Directive) Event {
	return Event{Type: EventUIControl, Data: directive}
}

func NewStartEvent(agent, model string) Event {
	return Event{Type: EventStart, Data: StartData{Agent: agent, Model: model}}
}

func NewDeltaEvent(fragment string) Event {
	return Event{Type: EventTextDelta, Data: DeltaData{Content: fragment, Delta: true, Role: RoleAssistant}}
}

func NewResultEvent(content, model string) Event {
	return Event{Type: EventResult, Data: ResultData{Content: content, Role: RoleAssistant, Model: model}}
}

// NewEndEvent returns the completion event, where count is the length of
// the accumulated response
func NewEndEvent(count int) Event {
	return Event{Type: EventEnd, Data: EndData{Status: StatusCompleted, MessageCount: count}}
}

func NewErrorEvent(err error, message string) Event {
	return Event{Type: EventError, Data: ErrorData{Error: err.Error(), Message: message}}
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (e Event) String() string {
	return Stringify(e)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// At returns a copy of the event stamped with the given time, in UTC
func (e Event) At(ts time.Time) Event {
	e.Timestamp = ts.UTC()
	return e
}
