package main

import (
	"crypto/tls"
	"fmt"
	"os"

	// Packages
	httphandler "github.com/mutablelogic/go-agui/pkg/httphandler"
	ollama "github.com/mutablelogic/go-agui/pkg/ollama"
	relay "github.com/mutablelogic/go-agui/pkg/relay"
	version "github.com/mutablelogic/go-agui/pkg/version"
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
	httpserver "github.com/mutablelogic/go-server/pkg/httpserver"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ServerCommands struct {
	// Commands
	RunServer RunServer `cmd:"" name:"run" help:"Run server." group:"SERVER"`
}

type RunServer struct {
	// TLS server options
	TLS struct {
		ServerName string `name:"name" help:"TLS server name"`
		CertFile   string `name:"cert" help:"TLS certificate file"`
		KeyFile    string `name:"key" help:"TLS key file"`
	} `embed:"" prefix:"tls."`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *RunServer) Run(ctx *Globals) error {
	client, err := ctx.Client()
	if err != nil {
		return err
	}
	relay, err := ctx.Relay(client)
	if err != nil {
		return err
	}
	return cmd.Serve(ctx, client, relay, version.Version())
}

// Serve creates the httpserver instance, logs the startup banner, and
// blocks until context cancellation (e.g. SIGINT)
func (cmd *RunServer) Serve(ctx *Globals, client *ollama.Client, relay *relay.Relay, versionTag string) error {
	// Create the TLS config if TLS options are provided
	var tlsConfig *tls.Config
	if cmd.TLS.CertFile != "" || cmd.TLS.KeyFile != "" {
		var pemData [][]byte
		if cmd.TLS.CertFile != "" {
			certData, err := os.ReadFile(cmd.TLS.CertFile)
			if err != nil {
				return fmt.Errorf("failed to read TLS certificate: %w", err)
			}
			pemData = append(pemData, certData)
		}
		if cmd.TLS.KeyFile != "" {
			keyData, err := os.ReadFile(cmd.TLS.KeyFile)
			if err != nil {
				return fmt.Errorf("failed to read TLS key: %w", err)
			}
			pemData = append(pemData, keyData)
		}
		var err error
		tlsConfig, err = httpserver.TLSConfig(cmd.TLS.ServerName, false, pemData...)
		if err != nil {
			return fmt.Errorf("failed to create TLS config: %w", err)
		}
	}

	// Create the server
	srv, err := httpserver.New(ctx.HTTP.Addr, tlsConfig)
	if err != nil {
		return err
	}

	// Create middleware. The server serves its mux directly, so cross-origin
	// headers are set per route.
	middleware := []httprouter.HTTPMiddlewareFunc{httphandler.Logger(ctx.log)}
	if ctx.HTTP.Origin != "" {
		middleware = append(middleware, httprouter.Cors(ctx.HTTP.Origin))
	}

	// Create the HTTP router on the server mux
	router, err := httprouter.NewRouter(ctx.ctx, srv.Router(), ctx.HTTP.Prefix, ctx.HTTP.Origin, "AG-UI POC Backend", versionTag, middleware...)
	if err != nil {
		return err
	} else if err := httphandler.RegisterHandlers(router, relay, client, ctx.log); err != nil {
		return err
	} else if err := router.RegisterCatchAll("/", false); err != nil {
		return err
	}

	// Run the server
	log := ctx.log.With(zap.String("version", versionTag), zap.String("addr", ctx.HTTP.Addr))
	log.Info("server started",
		zap.String("ollama", ctx.Ollama.URL),
		zap.String("model", relay.Model()),
		zap.String("agent", relay.Agent()),
	)
	if err := srv.Run(ctx.ctx); err != nil {
		return err
	}

	// Return success
	log.Info("server stopped")
	return nil
}
