package relay

import (
	"strings"
	"time"

	// Packages
	agui "github.com/mutablelogic/go-agui"
	command "github.com/mutablelogic/go-agui/pkg/command"
	trace "go.opentelemetry.io/otel/trace"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for configuring a relay
type Opt func(*Relay) error

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithDetector sets the command detector
func WithDetector(detector *command.Detector) Opt {
	return func(r *Relay) error {
		if detector == nil {
			return agui.ErrBadParameter.With("detector is required")
		}
		r.detector = detector
		return nil
	}
}

// WithAgent sets the agent name reported in start events
func WithAgent(name string) Opt {
	return func(r *Relay) error {
		if name = strings.TrimSpace(name); name == "" {
			return agui.ErrBadParameter.With("agent name is required")
		}
		r.agent = name
		return nil
	}
}

// WithModel sets the model used when a request does not name one
func WithModel(name string) Opt {
	return func(r *Relay) error {
		if name = strings.TrimSpace(name); name == "" {
			return agui.ErrBadParameter.With("model name is required")
		}
		r.model = name
		return nil
	}
}

// WithLogger sets the logger
func WithLogger(log *zap.Logger) Opt {
	return func(r *Relay) error {
		if log == nil {
			return agui.ErrBadParameter.With("logger is required")
		}
		r.log = log
		return nil
	}
}

// WithTracer sets the tracer used for spans
func WithTracer(tracer trace.Tracer) Opt {
	return func(r *Relay) error {
		if tracer != nil {
			r.tracer = tracer
		}
		return nil
	}
}

// WithClock sets the clock used to timestamp events
func WithClock(fn func() time.Time) Opt {
	return func(r *Relay) error {
		if fn == nil {
			return agui.ErrBadParameter.With("clock is required")
		}
		r.now = fn
		return nil
	}
}
