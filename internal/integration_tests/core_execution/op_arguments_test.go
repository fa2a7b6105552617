package core_execution_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inferlab/infergraph/internal/app"
	"github.com/inferlab/infergraph/internal/testutil"
)

// TestEnvOpFeedsPipeline resolves an environment variable in one node and
// wraps it downstream, with the node blocks split across two files.
func TestEnvOpFeedsPipeline(t *testing.T) {
	t.Setenv("INFERGRAPH_MODEL_NAME", "tiny-llm")

	files := map[string]string{
		"sources.hcl": `
node "env" "model" {
  arguments {
    name = "INFERGRAPH_MODEL_NAME"
  }
}
`,
		"render.hcl": `
node "template" "banner" {
  inputs = ["model", "entrypoint"]

  arguments {
    format = "%s <- %s"
  }
}
`,
	}

	result := testutil.RunPipelineTest(t, files, app.Config{
		Entrypoint: "prompt",
		Output:     "banner",
	})

	require.NoError(t, result.Err)
	assert.Equal(t, "tiny-llm <- prompt", result.Value)
}

// TestRestagedNodeWins redefines a node name in a later file; the engine's
// documented policy is that the last staging wins, with a logged warning.
func TestRestagedNodeWins(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"a_original.hcl": `
node "template" "A" {
  inputs = ["entrypoint"]

  arguments {
    format = "original:%s"
  }
}
`,
		"b_override.hcl": `
node "template" "A" {
  inputs = ["entrypoint"]

  arguments {
    format = "override:%s"
  }
}
`,
	}

	result := testutil.RunPipelineTest(t, files, app.Config{
		Entrypoint: "x",
		Output:     "A",
	})

	require.NoError(t, result.Err)
	assert.Equal(t, "override:x", result.Value)
	assert.Contains(t, result.LogOutput, "replacing its definition")
}
