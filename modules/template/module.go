// Package template provides the 'template' op: it renders its inputs into a
// printf-style format string, one verb per input, in declared order.
package template

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/inferlab/infergraph/internal/graph"
	"github.com/inferlab/infergraph/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the op factory with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterOp("template", newTemplate)
}

func newTemplate(args map[string]cty.Value) (graph.OperationFn, error) {
	if err := registry.CheckArgs(args, "format"); err != nil {
		return nil, err
	}
	format, err := registry.RequiredStringArg(args, "format")
	if err != nil {
		return nil, err
	}

	return graph.Op(func(inputs []string) string {
		values := make([]any, len(inputs))
		for i, in := range inputs {
			values[i] = in
		}
		return fmt.Sprintf(format, values...)
	}), nil
}
