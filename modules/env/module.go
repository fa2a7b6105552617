// Package env provides the 'env' op: it resolves an environment variable at
// run time, ignoring its inputs. Inputs may still be declared to order the
// node after its dependencies.
package env

import (
	"context"
	"fmt"
	"os"

	"github.com/zclconf/go-cty/cty"

	"github.com/inferlab/infergraph/internal/graph"
	"github.com/inferlab/infergraph/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the op factory with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterOp("env", newEnv)
}

func newEnv(args map[string]cty.Value) (graph.OperationFn, error) {
	if err := registry.CheckArgs(args, "name", "default"); err != nil {
		return nil, err
	}
	name, err := registry.RequiredStringArg(args, "name")
	if err != nil {
		return nil, err
	}
	fallback, hasFallback, err := registry.StringArg(args, "default")
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, inputs []string) (string, error) {
		if value, ok := os.LookupEnv(name); ok {
			return value, nil
		}
		if hasFallback {
			return fallback, nil
		}
		return "", fmt.Errorf("environment variable %q is not set and no default was given", name)
	}, nil
}
