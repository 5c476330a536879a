package httpclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	agui "github.com/mutablelogic/go-agui"
	httpclient "github.com/mutablelogic/go-agui/pkg/httpclient"
	httphandler "github.com/mutablelogic/go-agui/pkg/httphandler"
	relay "github.com/mutablelogic/go-agui/pkg/relay"
	schema "github.com/mutablelogic/go-agui/pkg/schema"
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
	require "github.com/stretchr/testify/require"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// MOCK RUNTIME

type mockRuntime struct {
	fragments []string
	err       error
}

func (*mockRuntime) Name() string { return "ollama" }

func (m *mockRuntime) StreamChat(_ context.Context, _ string, _ schema.Conversation, fn agui.StreamFn) error {
	for _, fragment := range m.fragments {
		if err := fn(fragment); err != nil {
			return err
		}
	}
	return m.err
}

func (m *mockRuntime) ListModels(context.Context) ([]schema.Model, error) {
	if m.err != nil {
		return nil, m.err
	}
	return []schema.Model{{Name: "mistral:latest"}}, nil
}

var errOffline = errors.New("connection refused")

///////////////////////////////////////////////////////////////////////////////
// HELPERS

// newTestServer serves the relay handlers in front of a mock runtime
func newTestServer(t *testing.T, runtime *mockRuntime) *httptest.Server {
	t.Helper()
	r, err := relay.New(runtime)
	require.NoError(t, err)

	router, err := httprouter.NewRouter(context.Background(), http.NewServeMux(), "/", "*", "test", "0.0.0")
	require.NoError(t, err)
	require.NoError(t, httphandler.RegisterHandlers(router, r, runtime, zap.NewNop()))
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, url string) *httpclient.Client {
	t.Helper()
	c, err := httpclient.New(url)
	require.NoError(t, err)
	return c
}
