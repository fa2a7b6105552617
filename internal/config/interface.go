package config

import "context"

// Loader turns configuration sources into the format-agnostic model. Each
// path may name a single file or a directory to search.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*Model, error)
}
