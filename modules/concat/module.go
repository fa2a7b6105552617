// Package concat provides the 'concat' op: it joins its input values, in
// declared order, with an optional separator.
package concat

import (
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/inferlab/infergraph/internal/graph"
	"github.com/inferlab/infergraph/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the op factory with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterOp("concat", newConcat)
}

func newConcat(args map[string]cty.Value) (graph.OperationFn, error) {
	if err := registry.CheckArgs(args, "separator"); err != nil {
		return nil, err
	}
	separator, _, err := registry.StringArg(args, "separator")
	if err != nil {
		return nil, err
	}

	return graph.Op(func(inputs []string) string {
		return strings.Join(inputs, separator)
	}), nil
}
