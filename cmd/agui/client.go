package main

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	// Packages
	httpclient "github.com/mutablelogic/go-agui/pkg/httpclient"
	schema "github.com/mutablelogic/go-agui/pkg/schema"
	client "github.com/mutablelogic/go-client"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ClientCommands struct {
	Ask    AskCommand    `cmd:"" name:"ask" help:"Send one message to a running server and print the reply." group:"SERVER"`
	Health HealthCommand `cmd:"" name:"health" help:"Check the health of a running server." group:"SERVER"`
}

type AskCommand struct {
	Text   []string `arg:"" help:"User input text"`
	Model  string   `name:"ask-model" help:"Model name, overriding the server default" optional:""`
	Events bool     `name:"events" help:"Print every event rather than the reply text"`
}

type HealthCommand struct{}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *AskCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.ServerClient()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "AskCommand")
	defer func() { endSpan(err) }()

	// Print directives, and either the events or the reply as it streams
	_, err = client.Chat(parent, schema.ChatRequest{
		Messages: schema.Conversation{schema.UserMessage(strings.Join(cmd.Text, " "))},
		Model:    cmd.Model,
	}, func(event schema.Event) error {
		switch {
		case cmd.Events:
			fmt.Println(event)
		case event.Type == schema.EventUIControl:
			fmt.Fprintln(os.Stderr, event.Data)
		case event.Type == schema.EventTextDelta:
			fmt.Print(event.Data.(schema.DeltaData).Content)
		}
		return nil
	})
	if !cmd.Events {
		fmt.Println()
	}
	return err
}

func (cmd *HealthCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.ServerClient()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "HealthCommand")
	defer func() { endSpan(err) }()

	info, err := client.Info(parent)
	if err != nil {
		return err
	}
	health, err := client.Health(parent)
	if err != nil {
		return err
	}
	fmt.Println(schema.Stringify(info))
	fmt.Println(schema.Stringify(health))
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ServerClient returns an httpclient.Client for the server at the global
// HTTP address and prefix
func (g *Globals) ServerClient() (*httpclient.Client, error) {
	endpoint, opts, err := g.clientEndpoint()
	if err != nil {
		return nil, err
	}
	return httpclient.New(endpoint, opts...)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// clientEndpoint returns the endpoint URL and client options for the server
func (g *Globals) clientEndpoint() (string, []client.ClientOpt, error) {
	scheme := "http"
	host, port, err := net.SplitHostPort(g.HTTP.Addr)
	if err != nil {
		return "", nil, err
	}

	// Default host to localhost if empty (e.g., ":8000")
	if host == "" {
		host = "localhost"
	}

	// Parse port
	portn, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return "", nil, err
	}
	if portn == 443 {
		scheme = "https"
	}

	// Client options
	opts := []client.ClientOpt{}
	if g.Debug || g.Verbose {
		opts = append(opts, client.OptTrace(os.Stderr, g.Verbose))
	}
	if g.tracer != nil {
		opts = append(opts, client.OptTracer(g.tracer))
	}

	return fmt.Sprintf("%s://%s:%v%s", scheme, host, portn, types.NormalisePath(g.HTTP.Prefix)), opts, nil
}
