// Package graph is the execution core of the application. It owns the
// registry of staged nodes, the single-slot value cells that carry one
// node's result to its dependents, and the run driver that schedules every
// node concurrently and returns the requested output value.
//
// A graph is built once by sequential StageNode calls and then executed any
// number of times with Run. Staging must not overlap with a running graph.
package graph
