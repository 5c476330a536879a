/*
relay turns the incremental chat stream of a model runtime into the ordered
protocol event sequence for a single request:

	ui_control* start text_delta* (result end | error)

ui_control events are emitted before start, so the client can apply UI
changes without waiting for the model.
*/
package relay

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	// Packages
	agui "github.com/mutablelogic/go-agui"
	command "github.com/mutablelogic/go-agui/pkg/command"
	schema "github.com/mutablelogic/go-agui/pkg/schema"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	gotel "go.opentelemetry.io/otel"
	attribute "go.opentelemetry.io/otel/attribute"
	trace "go.opentelemetry.io/otel/trace"
	zap "go.uber.org/zap"
	errgroup "golang.org/x/sync/errgroup"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// EmitFn delivers one event to the transport. An error means the client is
// gone, and no further events are emitted.
type EmitFn func(schema.Event) error

type Relay struct {
	streamer agui.ChatStreamer
	detector *command.Detector
	agent    string
	model    string
	log      *zap.Logger
	tracer   trace.Tracer
	now      func() time.Time
}

// upstreamError is a failure of the model runtime, reported to the client
// as an error event
type upstreamError struct {
	err error
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	tracerName = "github.com/mutablelogic/go-agui/pkg/relay"

	// Fragments logged at debug level: the first few, then every n-th
	logFirstFragments = 3
	logEveryFragment  = 10
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func New(streamer agui.ChatStreamer, opts ...Opt) (*Relay, error) {
	if streamer == nil {
		return nil, agui.ErrBadParameter.With("streamer is required")
	}

	r := &Relay{
		streamer: streamer,
		agent:    streamer.Name(),
		model:    schema.DefaultModel,
		log:      zap.NewNop(),
		tracer:   gotel.Tracer(tracerName),
		now:      time.Now,
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	// Default detector
	if r.detector == nil {
		detector, err := command.New(command.WithLogger(r.log))
		if err != nil {
			return nil, err
		}
		r.detector = detector
	}

	return r, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Agent returns the agent name reported in start events
func (r *Relay) Agent() string {
	return r.agent
}

// Model returns the model used when a request does not name one
func (r *Relay) Model() string {
	return r.model
}

// Run executes one request, calling emit for every event in order. A failure
// of the model runtime is reported as an error event and Run returns nil.
// Run returns an error only when the context is cancelled or emit fails, in
// which case the upstream stream is abandoned and nothing more is emitted.
func (r *Relay) Run(ctx context.Context, req schema.ChatRequest, emit EmitFn) (err error) {
	if strings.TrimSpace(req.Model) == "" {
		req.Model = r.model
	}
	session := NewSession(req)
	log := r.log.With(zap.String("session", session.ID), zap.String("model", session.Model))

	// Otel span
	ctx, endSpan := otel.StartSpan(r.tracer, ctx, "Relay",
		attribute.String("session", session.ID),
		attribute.String("model", session.Model),
		attribute.Int("messages", len(session.Conversation)),
	)
	defer func() { endSpan(err) }()

	log.Info("stream started", zap.Int("messages", len(session.Conversation)))

	// Detect commands, emitting ui_control events before start
	if err := session.transition(StateDetecting); err != nil {
		return err
	}
	conversation, directives := r.detector.Detect(session.Conversation)
	session.Conversation = conversation
	for _, directive := range directives {
		log.Info("ui control", zap.String("action", string(directive.Action)))
		if err := r.emit(ctx, emit, schema.NewUIControlEvent(directive)); err != nil {
			return r.gone(log, session, err)
		}
	}

	// Start is always emitted exactly once
	if err := r.emit(ctx, emit, schema.NewStartEvent(r.agent, session.Model)); err != nil {
		return r.gone(log, session, err)
	}

	// Stream deltas
	if err := session.transition(StateStreaming); err != nil {
		return err
	}
	if err := r.stream(ctx, session, emit, log); err != nil {
		var upstream *upstreamError
		if !errors.As(err, &upstream) {
			return r.gone(log, session, err)
		}
		if err := session.transition(StateError); err != nil {
			return err
		}
		log.Error("stream failed", zap.Error(upstream.err), zap.Int("fragments", session.Fragments()))
		if err := r.emit(ctx, emit, schema.NewErrorEvent(upstream.err, fmt.Sprintf("Failed to generate response from %s", r.agent))); err != nil {
			return r.gone(log, session, err)
		}
		return nil
	}

	// Finalize with result and end
	if err := session.transition(StateFinalizing); err != nil {
		return err
	}
	if err := r.emit(ctx, emit, schema.NewResultEvent(session.Response(), session.Model)); err != nil {
		return r.gone(log, session, err)
	}
	if err := r.emit(ctx, emit, schema.NewEndEvent(session.Len())); err != nil {
		return r.gone(log, session, err)
	}
	if err := session.transition(StateDone); err != nil {
		return err
	}

	log.Info("stream completed", zap.Int("fragments", session.Fragments()), zap.Int("length", session.Len()))

	// Return success
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// stream runs the model capability in a producer goroutine which hands each
// fragment over an unbuffered channel to the consumer, which emits deltas.
// Cancelling the context, or a failed emit, stops both.
func (r *Relay) stream(ctx context.Context, session *Session, emit EmitFn, log *zap.Logger) error {
	fragments := make(chan string)
	group, gctx := errgroup.WithContext(ctx)

	// Producer
	group.Go(func() error {
		defer close(fragments)
		err := r.streamer.StreamChat(gctx, session.Model, session.Conversation, func(fragment string) error {
			if fragment == "" {
				return nil
			}
			select {
			case fragments <- fragment:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
		if err != nil && gctx.Err() == nil {
			return &upstreamError{err}
		}
		return err
	})

	// Consumer
	group.Go(func() error {
		for fragment := range fragments {
			session.write(fragment)
			if n := session.Fragments(); n <= logFirstFragments || n%logEveryFragment == 0 {
				log.Debug("fragment", zap.Int("n", n), zap.String("content", fragment))
			}
			if err := r.emit(ctx, emit, schema.NewDeltaEvent(fragment)); err != nil {
				return err
			}
		}
		return nil
	})

	// Wait for both to complete
	if err := group.Wait(); err != nil {
		return err
	}

	// The runtime may have returned without noticing cancellation
	return ctx.Err()
}

// emit stamps the event and hands it to the transport, unless the context
// has been cancelled
func (r *Relay) emit(ctx context.Context, fn EmitFn, event schema.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(event.At(r.now()))
}

// gone logs that the client went away and returns the reason
func (r *Relay) gone(log *zap.Logger, session *Session, err error) error {
	log.Info("stream abandoned", zap.Stringer("state", session.State()), zap.Error(err))
	return err
}

///////////////////////////////////////////////////////////////////////////////
// UPSTREAM ERROR

func (e *upstreamError) Error() string {
	return e.err.Error()
}

func (e *upstreamError) Unwrap() error {
	return e.err
}
