package httphandler

import (
	"net/http"

	// Packages
	uuid "github.com/google/uuid"
	agui "github.com/mutablelogic/go-agui"
	encoder "github.com/mutablelogic/go-agui/pkg/encoder"
	relay "github.com/mutablelogic/go-agui/pkg/relay"
	schema "github.com/mutablelogic/go-agui/pkg/schema"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	contentTypeEventStream = "text/event-stream"
	headerRequestId        = "X-Request-Id"
	previewLength          = 50
)

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: /chat
func ChatHandler(relay *relay.Relay, log *zap.Logger) (string, httprequest.PathItem) {
	return "chat", httprequest.NewPathItem("Chat", "Streamed chat completion", "chat").Post(func(w http.ResponseWriter, r *http.Request) {
		var req schema.ChatRequest
		if err := httprequest.Read(r, &req); err != nil {
			_ = httpresponse.Error(w, err)
			return
		} else if err := validate(req); err != nil {
			_ = httpresponse.Error(w, httpErr(err))
			return
		}
		chatStream(w, r, relay, log, req)
	}, "Send a conversation and receive the reply as a stream of protocol events")
}

// chatStream runs the relay, writing each event as a text/event-stream
// frame. Once the headers are sent, failures are reported in-band.
func chatStream(w http.ResponseWriter, r *http.Request, relay *relay.Relay, log *zap.Logger, req schema.ChatRequest) {
	id := uuid.NewString()
	log = log.With(zap.String("request", id))

	// Log the request
	log.Info("chat request", zap.Int("messages", len(req.Messages)), zap.String("model", req.Model))
	for i, message := range req.Messages {
		log.Debug("message", zap.Int("n", i), zap.String("role", message.Role), zap.String("content", preview(message.Content)))
	}

	// Send the headers
	w.Header().Set("Content-Type", contentTypeEventStream)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.Header().Set(headerRequestId, id)
	w.WriteHeader(http.StatusOK)

	// Stream the events
	writer := encoder.NewWriter(w)
	if err := relay.Run(r.Context(), req, writer.Emit); err != nil {
		log.Debug("client disconnected", zap.Error(err), zap.Int("events", writer.Count()))
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func validate(req schema.ChatRequest) error {
	if len(req.Messages) == 0 {
		return agui.ErrBadParameter.With("messages are required")
	}
	for i, message := range req.Messages {
		if !message.Valid() {
			return agui.ErrBadParameter.Withf("message %d: invalid role %q", i, message.Role)
		}
	}
	return nil
}

func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLength {
		return content
	}
	return string(runes[:previewLength]) + "..."
}
