// Package hclconf loads pipeline definitions written in HCL and translates
// them into the format-agnostic config model.
package hclconf

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/inferlab/infergraph/internal/config"
	"github.com/inferlab/infergraph/internal/ctxlog"
	"github.com/inferlab/infergraph/internal/fsutil"
	"github.com/inferlab/infergraph/internal/schema"
)

// Loader implements config.Loader for .hcl pipeline files.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a Loader with a fresh HCL parser.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load parses every .hcl file reachable from the given paths and merges
// their node blocks into one pipeline model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	pipeline := &config.Pipeline{}

	for _, path := range paths {
		files, err := fsutil.CollectFiles(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("collecting pipeline files from %s: %w", path, err)
		}
		for _, file := range files {
			logger.Debug("Parsing pipeline file.", "file", file)
			parsed, diags := l.parser.ParseHCLFile(file)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to parse %s: %w", file, diags)
			}

			var cfg schema.PipelineConfig
			if diags := gohcl.DecodeBody(parsed.Body, nil, &cfg); diags.HasErrors() {
				return nil, fmt.Errorf("failed to decode %s: %w", file, diags)
			}

			for _, node := range cfg.Nodes {
				def, err := translateNode(node)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", file, err)
				}
				pipeline.Nodes = append(pipeline.Nodes, def)
			}
		}
	}

	logger.Debug("Pipeline model loaded.", "nodes", len(pipeline.Nodes))
	return &config.Model{Pipeline: pipeline}, nil
}

// translateNode converts the HCL-specific node schema into the agnostic
// model, evaluating argument attributes to concrete values. Arguments are
// static; they cannot reference other nodes.
func translateNode(n *schema.Node) (*config.NodeDef, error) {
	def := &config.NodeDef{
		OpType:    n.OpType,
		Name:      n.Name,
		Inputs:    n.Inputs,
		Arguments: map[string]cty.Value{},
	}
	if n.Arguments == nil {
		return def, nil
	}

	attrs, diags := n.Arguments.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("node %q: %w", n.Name, diags)
	}
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("node %q: evaluating argument %q: %w", n.Name, name, diags)
		}
		def.Arguments[name] = val
	}
	return def, nil
}
