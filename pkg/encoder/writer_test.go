package encoder_test

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"testing"

	// Packages
	encoder "github.com/mutablelogic/go-agui/pkg/encoder"
	schema "github.com/mutablelogic/go-agui/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestWriterEmit(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	w := encoder.NewWriter(&buf)
	assert.NoError(w.Emit(schema.NewStartEvent("a", "m").At(fixed)))
	assert.NoError(w.Emit(schema.NewDeltaEvent("x").At(fixed)))
	assert.Equal(2, w.Count())
	assert.Equal(
		string(encoder.Encode(schema.NewStartEvent("a", "m").At(fixed)))+string(encoder.Encode(schema.NewDeltaEvent("x").At(fixed))),
		buf.String(),
	)
}

func TestWriterFlush(t *testing.T) {
	assert := assert.New(t)

	rec := httptest.NewRecorder()
	w := encoder.NewWriter(rec)
	assert.NoError(w.Emit(schema.NewEndEvent(0)))
	assert.True(rec.Flushed)
}

func TestWriterError(t *testing.T) {
	assert := assert.New(t)

	w := encoder.NewWriter(brokenWriter{})
	assert.Error(w.Emit(schema.NewEndEvent(0)))
	assert.Zero(w.Count())
}
