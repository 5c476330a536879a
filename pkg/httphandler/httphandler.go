package httphandler

import (
	"errors"
	"net/http"
	"time"

	// Package
	agui "github.com/mutablelogic/go-agui"
	relay "github.com/mutablelogic/go-agui/pkg/relay"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
	jsonschema "github.com/mutablelogic/go-server/pkg/jsonschema"
	serverotel "github.com/mutablelogic/go-server/pkg/otel"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Router is the part of httprouter.Router used to register handlers
type Router interface {
	RegisterPath(path string, params *jsonschema.Schema, pathitem httprequest.PathItem) error
}

var _ Router = (*httprouter.Router)(nil)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// RegisterHandlers registers the info, health and chat handlers on the
// router, relative to its prefix. The model lister is used by the health check.
func RegisterHandlers(router Router, relay *relay.Relay, models agui.ModelLister, log *zap.Logger) error {
	var result error

	// Check arguments
	if router == nil || relay == nil || models == nil {
		return agui.ErrBadParameter.With("router, relay and model lister are required")
	}
	if log == nil {
		log = zap.NewNop()
	}

	// Convenience function to register a handler and accumulate any errors
	register := func(path string, pathitem httprequest.PathItem) {
		result = errors.Join(result, router.RegisterPath(path, nil, pathitem))
	}

	// Register handlers
	register(InfoHandler(relay))
	register(HealthHandler(models))
	register(ChatHandler(relay, log))

	// Return any errors
	return result
}

// Logger returns router middleware which logs each request once the handler
// returns. Streamed responses are logged when the stream ends.
func Logger(log *zap.Logger) httprouter.HTTPMiddlewareFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			wrapped := serverotel.NewResponseWriter(w)
			start := time.Now()
			next(wrapped, r)

			status := wrapped.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.Int("size", wrapped.Size()),
				zap.Duration("duration", time.Since(start)),
			}
			switch {
			case status >= http.StatusInternalServerError:
				log.Error("request", fields...)
			case status >= http.StatusBadRequest:
				log.Warn("request", fields...)
			default:
				log.Info("request", fields...)
			}
		}
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// httpErr converts an agui.Err to an httpresponse.Err, preserving the
// original error message. Unknown error codes map to 500.
func httpErr(err error) error {
	var aguiErr agui.Err
	if !errors.As(err, &aguiErr) {
		return err
	}
	switch aguiErr {
	case agui.ErrNotFound:
		return httpresponse.ErrNotFound.With(err)
	case agui.ErrBadParameter:
		return httpresponse.ErrBadRequest.With(err)
	case agui.ErrNotImplemented:
		return httpresponse.ErrNotImplemented.With(err)
	case agui.ErrUpstream, agui.ErrMalformed:
		return httpresponse.Err(http.StatusBadGateway).With(err)
	default:
		return httpresponse.ErrInternalError.With(err)
	}
}
