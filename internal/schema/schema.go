// Package schema holds the HCL-specific structures that pipeline files are
// decoded into before translation to the agnostic config model.
package schema

import "github.com/hashicorp/hcl/v2"

// NodeArgs represents the content of the 'arguments' block within a node.
// Attribute names and types are op-specific, so the body is kept opaque
// here and evaluated by the loader.
type NodeArgs struct {
	Body hcl.Body `hcl:",remain"`
}

// Node represents a `node` block from a user's pipeline file. It is a
// runnable instance of a registered op type.
type Node struct {
	OpType    string    `hcl:"op_type,label"`
	Name      string    `hcl:"node_name,label"`
	Inputs    []string  `hcl:"inputs,optional"`
	Arguments *NodeArgs `hcl:"arguments,block"`
}

// PipelineConfig represents the top-level structure of a user's pipeline
// file, containing all declared nodes. There is deliberately no remain
// body: anything other than node blocks is a decode error.
type PipelineConfig struct {
	Nodes []*Node `hcl:"node,block"`
}
