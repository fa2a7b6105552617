// Package registry maps op type names to the factories that build runnable
// operations from a node's evaluated arguments. Built-in ops live under
// modules/ and register themselves through the Module interface.
package registry

import (
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"

	"github.com/inferlab/infergraph/internal/graph"
)

// Factory builds an operation from the evaluated arguments of a node block.
// A factory rejects arguments it does not understand so misspelled names
// fail at build time, not silently at run time.
type Factory func(args map[string]cty.Value) (graph.OperationFn, error)

// Module is the interface all op packages implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the op factories for a single application instance.
type Registry struct {
	ops map[string]Factory
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		ops: make(map[string]Factory),
	}
}

// RegisterOp registers a factory under an op type name. Registering the
// same name twice is a programmer error.
func (r *Registry) RegisterOp(opType string, f Factory) {
	if _, exists := r.ops[opType]; exists {
		panic(fmt.Sprintf("op type %q registered twice", opType))
	}
	r.ops[opType] = f
}

// Op looks up the factory for an op type.
func (r *Registry) Op(opType string) (Factory, bool) {
	f, ok := r.ops[opType]
	return f, ok
}

// OpTypes returns every registered op type name in lexical order.
func (r *Registry) OpTypes() []string {
	types := make([]string, 0, len(r.ops))
	for name := range r.ops {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}
