package relay

import (
	"strings"
	"unicode/utf8"

	// Packages
	uuid "github.com/google/uuid"
	agui "github.com/mutablelogic/go-agui"
	schema "github.com/mutablelogic/go-agui/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// State of a session
type State uint

// Session is the execution context of one request. It is owned by a single
// call to Run and discarded when it returns.
type Session struct {
	ID           string
	Model        string
	Conversation schema.Conversation

	state     State
	response  strings.Builder
	length    int
	fragments int
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	StateInit State = iota
	StateDetecting
	StateStreaming
	StateFinalizing
	StateDone
	StateError
)

// Permitted transitions
var transitions = map[State][]State{
	StateInit:       {StateDetecting},
	StateDetecting:  {StateStreaming},
	StateStreaming:  {StateFinalizing, StateError},
	StateFinalizing: {StateDone},
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewSession returns a session in the init state for a request
func NewSession(req schema.ChatRequest) *Session {
	return &Session{
		ID:           uuid.NewString(),
		Model:        req.ModelName(),
		Conversation: req.Messages,
		state:        StateInit,
	}
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s State) String() string {
	switch s {
	case StateInit:
		return "INIT"
	case StateDetecting:
		return "DETECTING"
	case StateStreaming:
		return "STREAMING"
	case StateFinalizing:
		return "FINALIZING"
	case StateDone:
		return "DONE"
	case StateError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// State returns the current state
func (s *Session) State() State {
	return s.state
}

// Response returns the text accumulated so far
func (s *Session) Response() string {
	return s.response.String()
}

// Len returns the length of the accumulated text in characters
func (s *Session) Len() int {
	return s.length
}

// Fragments returns the number of fragments received
func (s *Session) Fragments() int {
	return s.fragments
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (s *Session) transition(to State) error {
	for _, next := range transitions[s.state] {
		if next == to {
			s.state = to
			return nil
		}
	}
	return agui.ErrInternalServerError.Withf("invalid transition %v -> %v", s.state, to)
}

func (s *Session) write(fragment string) {
	s.response.WriteString(fragment)
	s.length += utf8.RuneCountInString(fragment)
	s.fragments++
}
