package config

import "github.com/zclconf/go-cty/cty"

// Model is the unified, format-agnostic representation of a pipeline
// definition, decoupled from the syntax it was loaded from.
type Model struct {
	Pipeline *Pipeline
}

// Pipeline is the user's dataflow graph definition.
type Pipeline struct {
	Nodes []*NodeDef
}

// NodeDef is the format-agnostic representation of a `node` block: the op
// type to instantiate, the name other nodes refer to it by, the ordered
// input names, and the already-evaluated op arguments.
type NodeDef struct {
	OpType    string
	Name      string
	Inputs    []string
	Arguments map[string]cty.Value
}
