package httphandler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	// Packages
	agui "github.com/mutablelogic/go-agui"
	httphandler "github.com/mutablelogic/go-agui/pkg/httphandler"
	relay "github.com/mutablelogic/go-agui/pkg/relay"
	schema "github.com/mutablelogic/go-agui/pkg/schema"
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
	require "github.com/stretchr/testify/require"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// MOCK CLIENT

// mockClient implements agui.ChatStreamer and agui.ModelLister
type mockClient struct {
	fragments []string
	err       error
	models    []schema.Model
}

var _ agui.ChatStreamer = (*mockClient)(nil)
var _ agui.ModelLister = (*mockClient)(nil)

func (*mockClient) Name() string { return "ollama" }

func (c *mockClient) StreamChat(_ context.Context, _ string, _ schema.Conversation, fn agui.StreamFn) error {
	for _, fragment := range c.fragments {
		if err := fn(fragment); err != nil {
			return err
		}
	}
	return c.err
}

func (c *mockClient) ListModels(context.Context) ([]schema.Model, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.models, nil
}

///////////////////////////////////////////////////////////////////////////////
// HELPERS

type frame struct {
	Type      schema.EventType `json:"type"`
	Data      map[string]any   `json:"data"`
	Timestamp string           `json:"timestamp"`
}

// serveMux registers the handlers on a router with the given middleware
func serveMux(t *testing.T, c *mockClient, middleware ...httprouter.HTTPMiddlewareFunc) http.Handler {
	t.Helper()
	r, err := relay.New(c)
	require.NoError(t, err)

	router, err := httprouter.NewRouter(context.Background(), http.NewServeMux(), "/", "*", "test", "0.0.0", middleware...)
	require.NoError(t, err)
	require.NoError(t, httphandler.RegisterHandlers(router, r, c, zap.NewNop()))
	return router
}

func post(mux http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	r.Header.Set("Content-Type", "application/json")
	mux.ServeHTTP(w, r)
	return w
}

func get(mux http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, path, nil)
	mux.ServeHTTP(w, r)
	return w
}

// frames splits a text/event-stream body into decoded frames
func frames(t *testing.T, body string) []frame {
	t.Helper()
	require.True(t, strings.HasSuffix(body, "\n\n"), "body must end with a blank line")

	var result []frame
	for _, chunk := range strings.Split(strings.TrimSuffix(body, "\n\n"), "\n\n") {
		require.True(t, strings.HasPrefix(chunk, "data: "), "unexpected frame %q", chunk)
		var f frame
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(chunk, "data: ")), &f))
		result = append(result, f)
	}
	return result
}

func types(frames []frame) []schema.EventType {
	result := make([]schema.EventType, 0, len(frames))
	for _, f := range frames {
		result = append(result, f.Type)
	}
	return result
}

var errOffline = errors.New("connection refused")
