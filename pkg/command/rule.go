package command

import (
	"strings"

	// Packages
	schema "github.com/mutablelogic/go-agui/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Input is the text a rule is evaluated against
type Input struct {
	Text  string // As written by the user
	Lower string // Lower-cased, used for matching
}

// Rule pairs a trigger predicate with the constructor of the directive it
// fires, and the system message asking the model to acknowledge it
type Rule struct {
	Name    string
	Trigger func(Input) bool
	Build   func(Input) (schema.Directive, schema.Message)
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func newInput(text string) Input {
	return Input{Text: text, Lower: strings.ToLower(text)}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Contains returns true if the lowered text contains all of the words
func (in Input) Contains(words ...string) bool {
	for _, word := range words {
		if !strings.Contains(in.Lower, word) {
			return false
		}
	}
	return true
}

// ContainsAny returns true if the lowered text contains any of the words
func (in Input) ContainsAny(words ...string) bool {
	for _, word := range words {
		if strings.Contains(in.Lower, word) {
			return true
		}
	}
	return false
}
