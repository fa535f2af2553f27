package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeScalarOverride(t *testing.T) {
	res := &Result{Options: []map[string]any{
		{"a": 1},
		{"a": 2, "b": 3},
	}}

	require.NoError(t, mergeResult(res))

	merged, ok := res.Options.(map[string]any)
	require.True(t, ok, "options should be a single object after merge")
	assert.Equal(t, 2, merged["a"])
	assert.Equal(t, 3, merged["b"])
}

func TestMergeArrayFieldsConcatenate(t *testing.T) {
	res := &Result{Options: []map[string]any{
		{"x": []any{1}},
		{"x": []any{2}},
	}}

	require.NoError(t, mergeResult(res))

	merged := res.Options.(map[string]any)
	assert.Equal(t, []any{1, 2}, merged["x"])
}

func TestMergeNestedObjectsRecurse(t *testing.T) {
	res := &Result{Options: []map[string]any{
		{"output": map[string]any{"path": "dist", "clean": true}},
		{"output": map[string]any{"path": "build"}},
	}}

	require.NoError(t, mergeResult(res))

	merged := res.Options.(map[string]any)
	output, ok := merged["output"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "build", output["path"])
	assert.Equal(t, true, output["clean"])
}

func TestMergeLeftFoldAcrossThree(t *testing.T) {
	res := &Result{Options: []map[string]any{
		{"mode": "development", "plugins": []any{"a"}},
		{"mode": "production"},
		{"plugins": []any{"b"}},
	}}

	require.NoError(t, mergeResult(res))

	merged := res.Options.(map[string]any)
	assert.Equal(t, "production", merged["mode"])
	assert.Equal(t, []any{"a", "b"}, merged["plugins"])
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	first := map[string]any{"x": []any{1}, "nested": map[string]any{"k": "v"}}
	second := map[string]any{"x": []any{2}, "nested": map[string]any{"k2": "v2"}}
	res := &Result{Options: []map[string]any{first, second}}

	require.NoError(t, mergeResult(res))

	assert.Equal(t, []any{1}, first["x"], "first input mutated")
	assert.Equal(t, map[string]any{"k": "v"}, first["nested"], "first input mutated")
	assert.Equal(t, []any{2}, second["x"], "second input mutated")
}

func TestMergeRequiresArray(t *testing.T) {
	tests := []struct {
		name    string
		options any
	}{
		{"single object", map[string]any{"a": 1}},
		{"single element array", []map[string]any{{"a": 1}}},
		{"nil options", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := &Result{Options: tt.options}
			err := mergeResult(res)
			require.Error(t, err)
			assert.True(t, IsMergeError(err))
			assert.Contains(t, err.Error(), "at least two configurations are required for merge")
		})
	}
}
