package relay_test

import (
	"testing"

	// Packages
	relay "github.com/mutablelogic/go-agui/pkg/relay"
	schema "github.com/mutablelogic/go-agui/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

func TestNewSession(t *testing.T) {
	assert := assert.New(t)

	a := relay.NewSession(request("", "hi"))
	b := relay.NewSession(request("llama3", "hi"))
	assert.NotEmpty(a.ID)
	assert.NotEqual(a.ID, b.ID)
	assert.Equal(schema.DefaultModel, a.Model)
	assert.Equal("llama3", b.Model)
	assert.Equal(relay.StateInit, a.State())
	assert.Empty(a.Response())
	assert.Zero(a.Fragments())
}

func TestStateString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("INIT", relay.StateInit.String())
	assert.Equal("DETECTING", relay.StateDetecting.String())
	assert.Equal("STREAMING", relay.StateStreaming.String())
	assert.Equal("FINALIZING", relay.StateFinalizing.String())
	assert.Equal("DONE", relay.StateDone.String())
	assert.Equal("ERROR", relay.StateError.String())
	assert.Equal("UNKNOWN", relay.State(99).String())
}
