package encoder_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	// Packages
	encoder "github.com/mutablelogic/go-agui/pkg/encoder"
	schema "github.com/mutablelogic/go-agui/pkg/schema"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

var (
	fixed = time.Date(2025, 3, 4, 5, 6, 7, 891234000, time.UTC)
)

func TestEncodeFrame(t *testing.T) {
	assert := assert.New(t)

	event := schema.NewStartEvent("ollama", "mistral:latest").At(fixed)
	assert.Equal(
		`data: {"type":"start","data":{"agent":"ollama","model":"mistral:latest"},"timestamp":"2025-03-04T05:06:07.891234Z"}`+"\n\n",
		string(encoder.Encode(event)),
	)
}

func TestEncodeAllKinds(t *testing.T) {
	enc := encoder.New(encoder.WithClock(func() time.Time { return fixed }))

	tests := []struct {
		event schema.Event
		data  string
	}{
		{schema.NewUIControlEvent(schema.NewDirective(schema.ActionChangeTheme, map[string]any{schema.ParamColor: "#22c55e"})), `{"action":"change_theme","color":"#22c55e"}`},
		{schema.NewUIControlEvent(schema.NewDirective(schema.ActionAddButton, map[string]any{schema.ParamLabel: "Ok"})), `{"action":"add_button","label":"Ok"}`},
		{schema.NewDeltaEvent("<b>&"), `{"content":"<b>&","delta":true,"role":"assistant"}`},
		{schema.NewResultEvent("Hello", "m"), `{"content":"Hello","role":"assistant","model":"m"}`},
		{schema.NewEndEvent(5), `{"status":"completed","message_count":5}`},
		{schema.NewErrorEvent(errors.New("connection refused"), "Failed"), `{"error":"connection refused","message":"Failed"}`},
		{schema.Event{Type: schema.EventStart}, `{}`},
	}
	for _, test := range tests {
		t.Run(string(test.event.Type), func(t *testing.T) {
			assert := assert.New(t)
			frame := string(enc.Encode(test.event))
			require.True(t, strings.HasPrefix(frame, "data: "))
			require.True(t, strings.HasSuffix(frame, "\n\n"))
			assert.Equal(1, strings.Count(frame, "\n\n"))

			var v struct {
				Type      string          `json:"type"`
				Data      json.RawMessage `json:"data"`
				Timestamp string          `json:"timestamp"`
			}
			require.NoError(t, json.Unmarshal([]byte(strings.TrimSuffix(strings.TrimPrefix(frame, "data: "), "\n\n")), &v))
			assert.Equal(string(test.event.Type), v.Type)
			assert.JSONEq(test.data, string(v.Data))
			assert.Equal("2025-03-04T05:06:07.891234Z", v.Timestamp)
		})
	}
}

func TestEncodeKeyOrder(t *testing.T) {
	assert := assert.New(t)

	frame := string(encoder.Encode(schema.NewEndEvent(3)))
	typ := strings.Index(frame, `"type"`)
	data := strings.Index(frame, `"data"`)
	ts := strings.Index(frame, `"timestamp"`)
	assert.True(typ < data && data < ts, frame)
}

func TestEncodeStampsUTC(t *testing.T) {
	assert := assert.New(t)

	local := time.Date(2025, 3, 4, 7, 6, 7, 0, time.FixedZone("EET", 2*3600))
	enc := encoder.New(encoder.WithClock(func() time.Time { return local }))
	frame := string(enc.Encode(schema.NewEndEvent(0)))
	assert.Contains(frame, `"timestamp":"2025-03-04T05:06:07.000000Z"`)

	// An existing timestamp is kept
	frame = string(enc.Encode(schema.NewEndEvent(0).At(fixed)))
	assert.Contains(frame, `"timestamp":"2025-03-04T05:06:07.891234Z"`)
}

func TestEncodeUnmarshallable(t *testing.T) {
	assert := assert.New(t)

	event := schema.Event{Type: schema.EventUIControl, Data: map[string]any{"fn": func() {}}}
	frame := string(encoder.Encode(event.At(fixed)))
	assert.True(strings.HasPrefix(frame, `data: {"type":"error","data":{"error":`), frame)
	assert.Contains(frame, `"message":"Failed to encode ui_control event"`)
	assert.True(strings.HasSuffix(frame, "\n\n"))
}
