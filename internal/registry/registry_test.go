package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/inferlab/infergraph/internal/graph"
)

func noopFactory(map[string]cty.Value) (graph.OperationFn, error) {
	return graph.Op(func([]string) string { return "" }), nil
}

func TestRegistry(t *testing.T) {
	r := New()
	r.RegisterOp("concat", noopFactory)
	r.RegisterOp("template", noopFactory)

	_, ok := r.Op("concat")
	assert.True(t, ok)
	_, ok = r.Op("nope")
	assert.False(t, ok)

	assert.Equal(t, []string{"concat", "template"}, r.OpTypes())
}

func TestRegisterOp_DuplicatePanics(t *testing.T) {
	r := New()
	r.RegisterOp("concat", noopFactory)
	assert.Panics(t, func() {
		r.RegisterOp("concat", noopFactory)
	})
}

func TestCheckArgs(t *testing.T) {
	args := map[string]cty.Value{
		"separator": cty.StringVal("-"),
		"bogus":     cty.True,
	}
	err := CheckArgs(args, "separator")
	require.Error(t, err)
	assert.ErrorContains(t, err, "bogus")

	assert.NoError(t, CheckArgs(args, "separator", "bogus"))
	assert.NoError(t, CheckArgs(nil, "separator"))
}

func TestStringArg(t *testing.T) {
	args := map[string]cty.Value{
		"separator": cty.StringVal("-"),
		"count":     cty.NumberIntVal(3),
	}

	v, ok, err := StringArg(args, "separator")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "-", v)

	_, ok, err = StringArg(args, "absent")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = StringArg(args, "count")
	assert.ErrorContains(t, err, "must be a string")
}

func TestRequiredStringArg(t *testing.T) {
	_, err := RequiredStringArg(nil, "format")
	assert.ErrorContains(t, err, `argument "format" is required`)

	v, err := RequiredStringArg(map[string]cty.Value{"format": cty.StringVal("%s")}, "format")
	require.NoError(t, err)
	assert.Equal(t, "%s", v)
}
