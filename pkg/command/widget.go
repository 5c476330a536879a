package command

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	// Packages
	schema "github.com/mutablelogic/go-agui/pkg/schema"
	cases "golang.org/x/text/cases"
	language "golang.org/x/text/language"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	WidgetRuleName = "widget"
	DefaultLabel   = "Test"
	widgetAck      = "[SYSTEM: You have successfully added a '%s' button to the UI. Acknowledge this briefly in your response.]"
)

var (
	reQuoted = regexp.MustCompile(`["']([^"']+)["']`)
	reNamed  = regexp.MustCompile(`button (?:called|named) (\w+)`)
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// WidgetRule fires when the text asks to add or create a button, and emits
// an add_button directive with a label taken from the text
func WidgetRule(defaultLabel string) Rule {
	return Rule{
		Name: WidgetRuleName,
		Trigger: func(in Input) bool {
			return in.ContainsAny("add", "create") && in.Contains("button")
		},
		Build: func(in Input) (schema.Directive, schema.Message) {
			label := ButtonLabel(in, defaultLabel)
			directive := schema.NewDirective(schema.ActionAddButton, map[string]any{
				schema.ParamLabel: label,
			})
			return directive, schema.SystemMessage(fmt.Sprintf(widgetAck, label))
		},
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ButtonLabel extracts a label: the first quoted text as written, then the
// word after "button called" or "button named" capitalised, then the default
func ButtonLabel(in Input, defaultLabel string) string {
	if match := reQuoted.FindStringSubmatch(in.Text); match != nil {
		return match[1]
	}
	if match := reNamed.FindStringSubmatch(in.Lower); match != nil {
		return capitalise(match[1])
	}
	return defaultLabel
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// capitalise upper-cases the first character and lower-cases the rest, so a
// word starting with a digit is left as it is
func capitalise(word string) string {
	_, size := utf8.DecodeRuneInString(word)
	return cases.Upper(language.Und).String(word[:size]) + cases.Lower(language.Und).String(word[size:])
}
