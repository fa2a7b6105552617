package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/inferlab/infergraph/internal/config"
	"github.com/inferlab/infergraph/internal/ctxlog"
	"github.com/inferlab/infergraph/internal/graph"
	"github.com/inferlab/infergraph/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle: an isolated logger, the op registry, and the staged graph.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	graph  *graph.Graph
}

// NewApp is the constructor for the main application. It loads the pipeline
// definition, registers the op modules, and stages the full graph. A
// failure to load or build the configured pipeline is a fatal startup error
// and panics; the CLI entrypoint recovers it into a clean exit.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.GridPath)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded and translated into unified model.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All op modules registered.", "count", len(modules))

	g, err := buildGraph(ctx, model, reg)
	if err != nil {
		panic(fmt.Errorf("failed to build pipeline: %w", err))
	}
	logger.Debug("Pipeline staged.", "nodes", g.Names())

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		graph:  g,
	}
}

// buildGraph resolves every node definition's op type against the registry
// and stages the resulting nodes.
func buildGraph(ctx context.Context, model *config.Model, reg *registry.Registry) (*graph.Graph, error) {
	g := graph.New()
	for _, def := range model.Pipeline.Nodes {
		factory, ok := reg.Op(def.OpType)
		if !ok {
			return nil, fmt.Errorf("node %q: unknown op type %q (registered: %s)",
				def.Name, def.OpType, strings.Join(reg.OpTypes(), ", "))
		}
		op, err := factory(def.Arguments)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", def.Name, err)
		}
		g.StageNode(ctx, def.Name, def.Inputs, op)
	}
	return g, nil
}

// Graph returns the staged graph. This is primarily for testing.
func (a *App) Graph() *graph.Graph {
	return a.graph
}

// Execute runs the staged pipeline once and returns the output value.
func (a *App) Execute(ctx context.Context) (string, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	if a.config.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.RunTimeout)
		defer cancel()
	}
	return a.graph.Run(ctx, a.config.Entrypoint, a.config.Output)
}

// Run executes the pipeline and writes the output value to the app's
// writer.
func (a *App) Run(ctx context.Context) error {
	result, err := a.Execute(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.outW, result)
	return nil
}
