package graph

import "fmt"

// ConfigError reports a name that failed to resolve while validating the
// graph before a run: a node declared an input that was never staged, or
// the requested output itself is unknown.
type ConfigError struct {
	// Node is the node whose declaration is broken. Empty when the
	// requested output name is the unresolved one.
	Node string
	// Missing is the name that did not resolve to a staged node.
	Missing string
}

// Error implements the error interface for ConfigError.
func (e *ConfigError) Error() string {
	if e.Node == "" {
		return fmt.Sprintf("output node %q is not staged", e.Missing)
	}
	return fmt.Sprintf("node %q declares unknown input %q", e.Node, e.Missing)
}

// OutputError reports that a run completed without a value ever being
// produced for the requested output node.
type OutputError struct {
	Output string
}

// Error implements the error interface for OutputError.
func (e *OutputError) Error() string {
	return fmt.Sprintf("no value was produced for output node %q", e.Output)
}
