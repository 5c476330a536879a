package command

import (
	"fmt"

	// Packages
	schema "github.com/mutablelogic/go-agui/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ThemeRuleName = "theme"
	themeTrigger  = "color"
	themeAck      = "[SYSTEM: You have successfully changed the UI color to %s. Acknowledge this change briefly and naturally in your response.]"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// ThemeRule fires when the text mentions "color" together with one of the
// keywords, and emits a change_theme directive for the first keyword found
func ThemeRule(keywords Keywords) Rule {
	return Rule{
		Name: ThemeRuleName,
		Trigger: func(in Input) bool {
			if !in.Contains(themeTrigger) {
				return false
			}
			_, ok := keywords.Match(in.Lower)
			return ok
		},
		Build: func(in Input) (schema.Directive, schema.Message) {
			keyword, _ := keywords.Match(in.Lower)
			directive := schema.NewDirective(schema.ActionChangeTheme, map[string]any{
				schema.ParamColor: keyword.Color,
			})
			return directive, schema.SystemMessage(fmt.Sprintf(themeAck, keyword.Phrase))
		},
	}
}
