// Package config defines the format-agnostic pipeline model and the Loader
// interface that concrete configuration formats implement.
package config
