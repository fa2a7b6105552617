package error_handling_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inferlab/infergraph/internal/app"
	"github.com/inferlab/infergraph/internal/graph"
	"github.com/inferlab/infergraph/internal/testutil"
)

// TestUnknownOutputName requests a node that was never staged; the run must
// fail with a configuration error naming it, before any op is invoked.
func TestUnknownOutputName(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"main.hcl": `
node "concat" "A" {
  inputs = ["entrypoint"]
}
`,
	}

	result := testutil.RunPipelineTest(t, files, app.Config{
		Entrypoint: "x",
		Output:     "B",
	})

	require.Error(t, result.Err)
	var cfgErr *graph.ConfigError
	require.True(t, errors.As(result.Err, &cfgErr))
	assert.Equal(t, "B", cfgErr.Missing)
}

// TestUnknownInputName declares an input that no node provides; the run
// must fail naming both the missing input and the node declaring it.
func TestUnknownInputName(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"main.hcl": `
node "concat" "A" {
  inputs = ["missing"]
}
`,
	}

	result := testutil.RunPipelineTest(t, files, app.Config{
		Entrypoint: "x",
		Output:     "A",
	})

	require.Error(t, result.Err)
	assert.ErrorContains(t, result.Err, `node "A" declares unknown input "missing"`)
}

// TestUnknownOpType references an op that no module registered; startup
// must fail listing what is available.
func TestUnknownOpType(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"main.hcl": `
node "tokenize" "A" {
  inputs = ["entrypoint"]
}
`,
	}

	result := testutil.RunPipelineTest(t, files, app.Config{
		Entrypoint: "x",
		Output:     "A",
	})

	require.Error(t, result.Err)
	assert.ErrorContains(t, result.Err, `unknown op type "tokenize"`)
	assert.ErrorContains(t, result.Err, "concat")
}
