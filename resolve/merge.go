package resolve

import (
	"dario.cat/mergo"
	"github.com/goliatone/go-errors"
	"github.com/mitchellh/copystructure"
)

// mergeResult folds a multi-config options array left to right into a
// single object: objects merge recursively, array-valued fields
// concatenate, scalars are overwritten by the later operand. Each input
// is deep-copied before the fold so loaded configurations are never
// mutated.
func mergeResult(res *Result) error {
	list, ok := res.Options.([]map[string]any)
	if !ok || len(list) < 2 {
		return newMergeError()
	}

	merged := map[string]any{}
	for i, cfg := range list {
		copied, err := copystructure.Copy(cfg)
		if err != nil {
			return errors.Wrap(err, errors.CategoryOperation, "failed to copy configuration for merge").
				WithTextCode("MERGE_COPY_FAILED").
				WithMetadata(map[string]any{"index": i})
		}
		src := copied.(map[string]any)

		if err := mergo.Merge(&merged, src, mergo.WithOverride, mergo.WithAppendSlice); err != nil {
			return errors.Wrap(err, errors.CategoryOperation, "failed to merge configurations").
				WithTextCode("MERGE_FAILED").
				WithMetadata(map[string]any{"index": i})
		}
	}

	res.Options = merged
	return nil
}
