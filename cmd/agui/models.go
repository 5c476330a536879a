package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	// Packages
	schema "github.com/mutablelogic/go-agui/pkg/schema"
	version "github.com/mutablelogic/go-agui/pkg/version"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ModelsCommand struct {
	Running bool `name:"running" help:"Only list models loaded into memory"`
}

type VersionCommand struct{}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ModelsCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ListModelsCommand")
	defer func() { endSpan(err) }()

	// List models
	var models []schema.Model
	if cmd.Running {
		models, err = client.ListRunningModels(parent)
	} else {
		models, err = client.ListModels(parent)
	}
	if err != nil {
		return err
	}

	// Print models
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFAMILY\tPARAMETERS\tMODIFIED")
	for _, model := range models {
		modified := ""
		if !model.ModifiedAt.IsZero() {
			modified = model.ModifiedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", model.Name, model.Family, model.ParameterSize, modified)
	}
	return w.Flush()
}

// Run prints the build of this binary and the version of the runtime, if
// it can be reached
func (cmd *VersionCommand) Run(ctx *Globals) error {
	fmt.Println(version.Get(ctx.execName))

	client, err := ctx.Client()
	if err != nil {
		return err
	}
	if v, err := client.Version(ctx.ctx); err != nil {
		ctx.log.Warn("ollama unavailable", zap.String("url", ctx.Ollama.URL), zap.Error(err))
	} else {
		fmt.Println("ollama", v)
	}
	return nil
}
