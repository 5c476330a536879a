package command

import (
	"strings"

	// Packages
	agui "github.com/mutablelogic/go-agui"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for configuring a detector
type Opt func(*opts) error

type opts struct {
	keywords Keywords
	label    string
	rules    []Rule
	log      *zap.Logger
}

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithKeywords replaces the theme keyword table
func WithKeywords(keywords Keywords) Opt {
	return func(o *opts) error {
		if err := keywords.Validate(); err != nil {
			return err
		}
		o.keywords = keywords
		return nil
	}
}

// WithDefaultLabel sets the label used when a button request names none
func WithDefaultLabel(label string) Opt {
	return func(o *opts) error {
		if label = strings.TrimSpace(label); label == "" {
			return agui.ErrBadParameter.With("default label is required")
		}
		o.label = label
		return nil
	}
}

// WithRule appends a rule, evaluated after the built-in rules
func WithRule(rule Rule) Opt {
	return func(o *opts) error {
		if rule.Name == "" || rule.Trigger == nil || rule.Build == nil {
			return agui.ErrBadParameter.With("rule requires a name, trigger and builder")
		}
		for _, other := range o.rules {
			if other.Name == rule.Name {
				return agui.ErrBadParameter.Withf("duplicate rule %q", rule.Name)
			}
		}
		o.rules = append(o.rules, rule)
		return nil
	}
}

// WithLogger sets the logger
func WithLogger(log *zap.Logger) Opt {
	return func(o *opts) error {
		if log == nil {
			return agui.ErrBadParameter.With("logger is required")
		}
		o.log = log
		return nil
	}
}
