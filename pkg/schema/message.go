package schema

import (
	"strings"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Message is a single entry of a conversation
type Message struct {
	Role    string `json:"role"`    // "user", "assistant", "system"
	Content string `json:"content"` // Text content
}

// Conversation is an ordered sequence of messages. It is only ever extended
// by appending, never reordered or truncated.
type Conversation []Message

////////////////////////////////////////////////////////////////////////////////
// CONSTANTS

// Message role constants
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new user message
func UserMessage(text string) Message {
	return Message{Role: RoleUser, Content: text}
}

// Create a new system message
func SystemMessage(text string) Message {
	return Message{Role: RoleSystem, Content: text}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Message) String() string {
	return Stringify(m)
}

func (c Conversation) String() string {
	return Stringify(c)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Append returns a new conversation with the messages added at the end.
// The receiver is left untouched and never shares its backing array with
// the result.
func (c Conversation) Append(messages ...Message) Conversation {
	result := make(Conversation, 0, len(c)+len(messages))
	result = append(result, c...)
	return append(result, messages...)
}

// Last returns the most recent message, or false if the conversation is empty
func (c Conversation) Last() (Message, bool) {
	if len(c) == 0 {
		return Message{}, false
	}
	return c[len(c)-1], true
}

// Valid returns true if the role is one of user, assistant or system
func (m Message) Valid() bool {
	switch strings.TrimSpace(m.Role) {
	case RoleUser, RoleAssistant, RoleSystem:
		return true
	default:
		return false
	}
}
