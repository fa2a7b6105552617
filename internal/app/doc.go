// Package app wires the application together: configuration, logging, the
// op registry, the pipeline loader, and the graph run itself.
package app
