/*
command detects in-band UI commands in the latest user message, such as
changing the theme color or adding a button. Rules are evaluated in a fixed
order and each may fire at most once per conversation.
*/
package command

import (
	// Packages
	agui "github.com/mutablelogic/go-agui"
	schema "github.com/mutablelogic/go-agui/pkg/schema"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Detector struct {
	rules []Rule
	log   *zap.Logger
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a detector with the theme and widget rules, followed by any
// rules added with WithRule
func New(options ...Opt) (*Detector, error) {
	o := &opts{
		label: DefaultLabel,
		log:   zap.NewNop(),
	}
	for _, opt := range options {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	if o.keywords == nil {
		o.keywords = DefaultKeywords()
	}

	// Built-in rules come first, in priority order
	rules := []Rule{
		ThemeRule(o.keywords),
		WidgetRule(o.label),
	}
	for _, rule := range o.rules {
		if rule.Name == ThemeRuleName || rule.Name == WidgetRuleName {
			return nil, agui.ErrBadParameter.Withf("duplicate rule %q", rule.Name)
		}
	}

	return &Detector{
		rules: append(rules, o.rules...),
		log:   o.log,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Rules returns the names of the rules in evaluation order
func (d *Detector) Rules() []string {
	result := make([]string, 0, len(d.rules))
	for _, rule := range d.rules {
		result = append(result, rule.Name)
	}
	return result
}

// Detect examines the last message of the conversation. It returns the
// directives fired, in rule order, and the conversation extended with one
// system message per directive. The input conversation is not modified.
func (d *Detector) Detect(conversation schema.Conversation) (schema.Conversation, []schema.Directive) {
	last, ok := conversation.Last()
	if !ok {
		return conversation, nil
	}

	in := newInput(last.Content)
	var directives []schema.Directive
	var messages []schema.Message
	for _, rule := range d.rules {
		if !rule.Trigger(in) {
			continue
		}
		directive, message := rule.Build(in)
		d.log.Debug("command detected",
			zap.String("rule", rule.Name),
			zap.Stringer("directive", directive),
		)
		directives = append(directives, directive)
		messages = append(messages, message)
	}

	if len(directives) == 0 {
		return conversation, nil
	}
	return conversation.Append(messages...), directives
}
