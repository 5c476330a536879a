package main

import (
	"os"
	"strings"

	// Packages
	encoder "github.com/mutablelogic/go-agui/pkg/encoder"
	schema "github.com/mutablelogic/go-agui/pkg/schema"
	otel "github.com/mutablelogic/go-client/pkg/otel"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ChatCommand struct {
	Text  []string `arg:"" help:"User input text"`
	Model string   `name:"chat-model" help:"Model name, overriding the default" optional:""`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

// Run sends the text as a single user message and writes each framed event
// to stdout as it arrives
func (cmd *ChatCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}
	relay, err := ctx.Relay(client)
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ChatCommand")
	defer func() { endSpan(err) }()

	// Run the relay
	writer := encoder.NewWriter(os.Stdout)
	return relay.Run(parent, schema.ChatRequest{
		Messages: schema.Conversation{schema.UserMessage(strings.Join(cmd.Text, " "))},
		Model:    cmd.Model,
	}, writer.Emit)
}
