package httphandler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	// Packages
	agui "github.com/mutablelogic/go-agui"
	httphandler "github.com/mutablelogic/go-agui/pkg/httphandler"
	relay "github.com/mutablelogic/go-agui/pkg/relay"
	schema "github.com/mutablelogic/go-agui/pkg/schema"
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
	assert "github.com/stretchr/testify/assert"
	zap "go.uber.org/zap"
	observer "go.uber.org/zap/zaptest/observer"
)

func TestInfo_OK(t *testing.T) {
	assert := assert.New(t)
	mux := serveMux(t, &mockClient{})

	w := get(mux, "/")
	assert.Equal(http.StatusOK, w.Code)

	var info schema.ServiceInfo
	assert.NoError(json.NewDecoder(w.Body).Decode(&info))
	assert.Equal("AG-UI POC Backend", info.Service)
	assert.Equal("running", info.Status)
	assert.Equal("AG-UI", info.Protocol)
	assert.Equal(schema.DefaultModel, info.Model)
	assert.NotEmpty(info.Version)
}

func TestHealth_OK(t *testing.T) {
	assert := assert.New(t)
	mux := serveMux(t, &mockClient{models: []schema.Model{{Name: "mistral:latest"}, {Name: "llama3.2:latest"}}})

	w := get(mux, "/health")
	assert.Equal(http.StatusOK, w.Code)

	var health map[string]any
	assert.NoError(json.NewDecoder(w.Body).Decode(&health))
	assert.Equal(map[string]any{
		"status":           "healthy",
		"ollama":           "connected",
		"available_models": []any{"mistral:latest", "llama3.2:latest"},
	}, health)
}

func TestHealth_NoModels(t *testing.T) {
	assert := assert.New(t)
	mux := serveMux(t, &mockClient{})

	w := get(mux, "/health")
	assert.Equal(http.StatusOK, w.Code)

	var health schema.HealthResponse
	assert.NoError(json.NewDecoder(w.Body).Decode(&health))
	assert.Empty(health.Models)
}

func TestHealth_Unavailable(t *testing.T) {
	assert := assert.New(t)
	mux := serveMux(t, &mockClient{err: errOffline})

	w := get(mux, "/health")
	assert.Equal(http.StatusServiceUnavailable, w.Code)
	assert.Contains(w.Body.String(), "connection refused")
}

func TestHealth_MethodNotAllowed(t *testing.T) {
	assert := assert.New(t)
	mux := serveMux(t, &mockClient{})

	w := post(mux, "/health", `{}`)
	assert.Equal(http.StatusMethodNotAllowed, w.Code)
}

func TestRegisterHandlers_Arguments(t *testing.T) {
	assert := assert.New(t)
	router, err := httprouter.NewRouter(context.Background(), http.NewServeMux(), "/", "", "test", "0.0.0")
	assert.NoError(err)

	err = httphandler.RegisterHandlers(router, nil, &mockClient{}, nil)
	assert.ErrorIs(err, agui.ErrBadParameter)
}

func TestRegisterHandlers_Prefix(t *testing.T) {
	assert := assert.New(t)
	c := &mockClient{models: []schema.Model{{Name: "mistral:latest"}}}
	r, err := relay.New(c)
	assert.NoError(err)

	router, err := httprouter.NewRouter(context.Background(), http.NewServeMux(), "/api", "*", "test", "0.0.0")
	assert.NoError(err)
	assert.NoError(httphandler.RegisterHandlers(router, r, c, zap.NewNop()))

	assert.Equal(http.StatusOK, get(router, "/api").Code)
	assert.Equal(http.StatusOK, get(router, "/api/health").Code)
	assert.Equal(http.StatusNotFound, get(router, "/health").Code)
}

func TestLogger(t *testing.T) {
	assert := assert.New(t)
	core, logs := observer.New(zap.InfoLevel)
	mux := serveMux(t, &mockClient{fragments: []string{"Hi"}}, httphandler.Logger(zap.New(core)))

	w := post(mux, "/chat", `{"messages":[{"role":"user","content":"hello"}]}`)
	assert.Equal(http.StatusOK, w.Code)
	assert.Len(frames(t, w.Body.String()), 4)

	w = post(mux, "/health", `{}`)
	assert.Equal(http.StatusMethodNotAllowed, w.Code)

	entries := logs.FilterMessage("request").All()
	if assert.Len(entries, 2) {
		assert.Equal(zap.InfoLevel, entries[0].Level)
		assert.Equal(int64(http.StatusOK), entries[0].ContextMap()["status"])
		assert.Equal("/chat", entries[0].ContextMap()["path"])
		assert.Equal(zap.WarnLevel, entries[1].Level)
		assert.Equal(int64(http.StatusMethodNotAllowed), entries[1].ContextMap()["status"])
	}
}
