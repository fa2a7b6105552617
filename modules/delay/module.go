// Package delay provides the 'delay' op: it waits for a configured duration
// and then passes its inputs through as a plain concatenation. It exists to
// model slow stages in a pipeline and to exercise cancellation.
package delay

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/zclconf/go-cty/cty"

	"github.com/inferlab/infergraph/internal/graph"
	"github.com/inferlab/infergraph/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the op factory with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterOp("delay", newDelay)
}

func newDelay(args map[string]cty.Value) (graph.OperationFn, error) {
	if err := registry.CheckArgs(args, "duration"); err != nil {
		return nil, err
	}
	raw, err := registry.RequiredStringArg(args, "duration")
	if err != nil {
		return nil, err
	}
	duration, err := time.ParseDuration(raw)
	if err != nil {
		return nil, fmt.Errorf("argument %q: %w", "duration", err)
	}

	return func(ctx context.Context, inputs []string) (string, error) {
		timer := time.NewTimer(duration)
		defer timer.Stop()
		select {
		case <-timer.C:
			return strings.Join(inputs, ""), nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}, nil
}
