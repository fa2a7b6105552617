package graph

import "context"

// EntrypointName is the reserved input name that resolves to the value the
// caller passes into Run. Any node may declare it as an input.
const EntrypointName = "entrypoint"

// OperationFn is the computation a node performs once every one of its
// declared inputs has a value. It receives the input values in declared
// order and returns the node's single output value. The engine guarantees
// nothing about an operation beyond the order of its inputs; determinism of
// the result is the operation author's concern.
type OperationFn func(ctx context.Context, inputs []string) (string, error)

// Op lifts a plain transform into the OperationFn shape the engine
// requires. It performs no semantic transformation, only a type-shape
// conversion for operations that need neither cancellation nor an error
// path.
func Op(fn func(inputs []string) string) OperationFn {
	return func(_ context.Context, inputs []string) (string, error) {
		return fn(inputs), nil
	}
}

// Node is a single computation unit: the name other nodes refer to it by,
// the ordered list of input names it consumes, and the operation it runs.
type Node struct {
	name   string
	inputs []string
	op     OperationFn
}

// NewNode constructs a node without validating it. Input names may refer to
// nodes that have not been staged yet; they are resolved when the graph
// runs.
func NewNode(name string, inputs []string, op OperationFn) *Node {
	return &Node{name: name, inputs: inputs, op: op}
}

// Name returns the node's identity within its graph.
func (n *Node) Name() string {
	return n.name
}

// Inputs returns the declared input names in the order their values are
// assembled for the operation.
func (n *Node) Inputs() []string {
	return append([]string(nil), n.inputs...)
}
