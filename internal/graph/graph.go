package graph

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/inferlab/infergraph/internal/ctxlog"
)

// Graph owns all staged nodes, keyed by name. It is populated by repeated
// StageNode calls before any run; the mutex only guards staging, execution
// takes no locks beyond a read hold on the frozen registry.
type Graph struct {
	mutex sync.RWMutex
	nodes map[string]*Node
}

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
	}
}

// StageNode registers a node under the given name. Input names are not
// validated here; Run resolves them before scheduling anything. Staging a
// name that already exists intentionally replaces the previous
// registration, and the redefinition is logged.
func (g *Graph) StageNode(ctx context.Context, name string, inputs []string, op OperationFn) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if _, exists := g.nodes[name]; exists {
		ctxlog.FromContext(ctx).Warn("Node already staged, replacing its definition.", "node", name)
	}
	g.nodes[name] = NewNode(name, inputs, op)
}

// Names returns the names of all staged nodes in lexical order.
func (g *Graph) Names() []string {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	names := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// validate resolves every declared input and the requested output against
// the staged nodes, collecting every problem found into one report rather
// than failing on the first. Nodes are checked in lexical order so the
// report is stable.
func (g *Graph) validate(outputName string) error {
	var errs []error
	names := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, input := range g.nodes[name].inputs {
			if input == EntrypointName {
				continue
			}
			if _, ok := g.nodes[input]; !ok {
				errs = append(errs, &ConfigError{Node: name, Missing: input})
			}
		}
	}
	if _, ok := g.nodes[outputName]; !ok {
		errs = append(errs, &ConfigError{Missing: outputName})
	}
	return errors.Join(errs...)
}
