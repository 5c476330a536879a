package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	command "github.com/mutablelogic/go-agui/pkg/command"
	ollama "github.com/mutablelogic/go-agui/pkg/ollama"
	relay "github.com/mutablelogic/go-agui/pkg/relay"
	schema "github.com/mutablelogic/go-agui/pkg/schema"
	client "github.com/mutablelogic/go-client"
	gotel "go.opentelemetry.io/otel"
	trace "go.opentelemetry.io/otel/trace"
	zap "go.uber.org/zap"
	zapcore "go.uber.org/zap/zapcore"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug logging"`
	Verbose bool `name:"verbose" help:"Trace requests to the model runtime"`

	// Model runtime
	Ollama struct {
		URL string `name:"url" env:"OLLAMA_URL" default:"http://localhost:11434/api" help:"Ollama endpoint"`
	} `embed:"" prefix:"ollama-"`
	Model    string `name:"model" env:"AGUI_MODEL" default:"${model}" help:"Model used when a request does not name one"`
	Agent    string `name:"agent" default:"ollama" help:"Agent name reported in start events"`
	Keywords string `name:"keywords" env:"AGUI_KEYWORDS" help:"YAML file replacing the theme keyword table" optional:""`

	// HTTP server and client options
	HTTP struct {
		Addr    string        `name:"addr" env:"AGUI_ADDR" default:"localhost:8000" help:"HTTP listen address"`
		Prefix  string        `name:"prefix" default:"/" help:"HTTP path prefix"`
		Origin  string        `name:"origin" default:"*" help:"Cross-origin requests allowed from this origin"`
		Timeout time.Duration `name:"timeout" default:"5m" help:"Timeout for requests to the model runtime"`
	} `embed:"" prefix:"http."`

	// Context
	ctx      context.Context
	log      *zap.Logger
	tracer   trace.Tracer
	execName string
}

type CLI struct {
	Globals
	ServerCommands
	ClientCommands

	// Client commands
	Chat    ChatCommand    `cmd:"" name:"chat" help:"Send one message and print the event stream." group:"CLIENT"`
	Models  ModelsCommand  `cmd:"" name:"models" help:"List models available from the runtime." group:"CLIENT"`
	Version VersionCommand `cmd:"" name:"version" help:"Print the version." group:"CLIENT"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("AG-UI event stream relay for Ollama"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"model": schema.DefaultModel,
		},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx
	cli.Globals.execName = execName()

	// Create a logger
	log, err := newLogger(cli.Debug)
	if err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
	defer func() { _ = log.Sync() }()
	cli.Globals.log = log

	// Create a tracer from the global provider
	cli.Globals.tracer = gotel.Tracer(cli.Globals.execName)

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Client returns an ollama client configured from the global flags
func (g *Globals) Client() (*ollama.Client, error) {
	opts := []client.ClientOpt{}
	if g.Debug || g.Verbose {
		opts = append(opts, client.OptTrace(os.Stderr, g.Verbose))
	}
	if g.tracer != nil {
		opts = append(opts, client.OptTracer(g.tracer))
	}
	if g.HTTP.Timeout > 0 {
		opts = append(opts, client.OptTimeout(g.HTTP.Timeout))
	}
	return ollama.New(g.Ollama.URL, opts...)
}

// Relay returns a relay which streams from the client
func (g *Globals) Relay(client *ollama.Client) (*relay.Relay, error) {
	// Command detector
	detectorOpts := []command.Opt{command.WithLogger(g.log)}
	if g.Keywords != "" {
		keywords, err := command.LoadKeywords(g.Keywords)
		if err != nil {
			return nil, fmt.Errorf("failed to load keywords: %w", err)
		}
		detectorOpts = append(detectorOpts, command.WithKeywords(keywords))
	}
	detector, err := command.New(detectorOpts...)
	if err != nil {
		return nil, err
	}

	// Relay
	return relay.New(client,
		relay.WithDetector(detector),
		relay.WithAgent(g.Agent),
		relay.WithModel(g.Model),
		relay.WithLogger(g.log),
		relay.WithTracer(g.tracer),
	)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return config.Build()
}
