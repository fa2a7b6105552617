package graph

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/inferlab/infergraph/internal/ctxlog"
)

// Run executes every staged node once, injecting entrypointValue as the
// value of the reserved "entrypoint" input, and returns the value produced
// by the node named outputName.
//
// The whole graph is validated before anything is scheduled: an unknown
// input or output name fails the run with a report of every problem found,
// and no operation is invoked. Each node then runs on its own goroutine,
// awaits its inputs strictly in declared order, invokes its operation with
// the values assembled in that order, and publishes the result exactly
// once. A failing operation aborts the run and is reported with the name of
// the node that failed.
//
// Run returns early when ctx is cancelled; without a deadline on ctx the
// caller has opted into waiting as long as the operations take.
func (g *Graph) Run(ctx context.Context, entrypointValue, outputName string) (string, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	logger := ctxlog.FromContext(ctx)

	if err := g.validate(outputName); err != nil {
		return "", fmt.Errorf("invalid graph: %w", err)
	}
	logger.Debug("Graph validation passed.", "nodes", len(g.nodes), "output", outputName)

	// One fresh cell per node per run keeps successive runs fully isolated:
	// nothing produced by an earlier run can reach this one.
	cells := make(map[string]*cell, len(g.nodes)+1)
	cells[EntrypointName] = newCell()
	for name := range g.nodes {
		cells[name] = newCell()
	}
	cells[EntrypointName].settle(entrypointValue)

	group, runCtx := errgroup.WithContext(ctx)
	for _, node := range g.nodes {
		out := cells[node.name]
		inputs := make([]*cell, len(node.inputs))
		for i, name := range node.inputs {
			inputs[i] = cells[name]
		}

		group.Go(func() error {
			values := make([]string, len(inputs))
			for i, in := range inputs {
				v, err := in.wait(runCtx)
				if err != nil {
					return fmt.Errorf("node %q: awaiting input %q: %w", node.name, node.inputs[i], err)
				}
				values[i] = v
			}
			result, err := node.op(runCtx, values)
			if err != nil {
				return fmt.Errorf("node %q: %w", node.name, err)
			}
			out.settle(result)
			return nil
		})
	}
	logger.Debug("All node tasks scheduled.")

	if err := group.Wait(); err != nil {
		return "", err
	}
	logger.Debug("All node tasks completed.")

	result, ok := cells[outputName].value()
	if !ok {
		return "", &OutputError{Output: outputName}
	}
	return result, nil
}
