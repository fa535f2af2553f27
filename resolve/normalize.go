package resolve

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-buildconf/loaders"
	"github.com/goliatone/go-errors"
	"github.com/mitchellh/copystructure"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// finalize converts loaded module content into the canonical options
// shape: invoke function configs, filter named multi-configs, inject
// the derived context, and surface non-fatal warnings.
func (r *Resolver) finalize(ctx context.Context, mod *loaders.Module, args Args) (*Result, error) {
	res := &Result{
		Options:       map[string]any{},
		OutputOptions: map[string]any{},
	}
	if mod == nil {
		return res, nil
	}

	content := mod.Content
	if fn, ok := content.(loaders.ConfigFunc); ok {
		env := buildEnvironment(args.Env)
		value, err := fn(ctx, env, args.Argv)
		if err != nil {
			return nil, errors.Wrap(err, errors.CategoryOperation, "config function failed").
				WithTextCode(codeConfigFuncFailed).
				WithMetadata(map[string]any{"path": mod.Path})
		}
		content = value
	}

	// options are a fresh value, never the module's exported one
	cloned, err := copystructure.Copy(content)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryOperation, "failed to copy config content").
			WithTextCode("CONFIG_COPY_FAILED").
			WithMetadata(map[string]any{"path": mod.Path})
	}
	content = cloned

	switch v := content.(type) {
	case []any:
		list, err := objectList(v, mod.Path)
		if err != nil {
			return nil, err
		}
		if len(list) == 0 {
			// an empty multi-config short-circuits, including context
			// injection
			return res, nil
		}
		if len(args.ConfigNames) > 0 {
			filtered := filterByName(list, args.ConfigNames)
			if len(filtered) == 0 {
				return nil, newNamedConfigNotFound(args.ConfigNames)
			}
			res.Options = filtered
		} else {
			res.Options = list
		}
	case []map[string]any:
		// registered strategies may hand back typed object lists
		return r.finalize(ctx, &loaders.Module{Path: mod.Path, Content: anyList(v)}, args)
	case map[string]any:
		res.Options = v
	default:
		return nil, errors.New("config must export an object, an array of objects or a function", errors.CategoryBadInput).
			WithTextCode(codeInvalidConfigShape).
			WithMetadata(map[string]any{
				"path": mod.Path,
				"type": fmt.Sprintf("%T", content),
			})
	}

	r.warnBailWatch(res.Options, mod.Path)
	injectContext(res.Options, mod.Path)

	return res, nil
}

// buildEnvironment maps environment flags to the values function
// configs expect: a bare flag becomes true, name=value assigns the
// value, and dotted names nest. A nil flag list leaves the environment
// unset.
func buildEnvironment(flags []string) map[string]any {
	if flags == nil {
		return nil
	}

	out := "{}"
	for _, flag := range flags {
		name := flag
		value := any(true)
		if i := strings.Index(flag, "="); i >= 0 {
			name = flag[:i]
			value = flag[i+1:]
		}
		if name == "" {
			continue
		}
		if next, err := sjson.Set(out, name, value); err == nil {
			out = next
		}
	}

	env, _ := gjson.Parse(out).Value().(map[string]any)
	if env == nil {
		env = map[string]any{}
	}
	return env
}

func objectList(entries []any, path string) ([]map[string]any, error) {
	list := make([]map[string]any, 0, len(entries))
	for i, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			return nil, errors.New("multi config arrays may only hold configuration objects", errors.CategoryBadInput).
				WithTextCode(codeInvalidConfigShape).
				WithMetadata(map[string]any{
					"path":  path,
					"index": i,
					"type":  fmt.Sprintf("%T", entry),
				})
		}
		list = append(list, obj)
	}
	return list, nil
}

func anyList(list []map[string]any) []any {
	out := make([]any, len(list))
	for i, obj := range list {
		out[i] = obj
	}
	return out
}

func filterByName(list []map[string]any, names []string) []map[string]any {
	var out []map[string]any
	for _, obj := range list {
		name, _ := obj["name"].(string)
		for _, want := range names {
			if name == want {
				out = append(out, obj)
				break
			}
		}
	}
	return out
}

func (r *Resolver) warnBailWatch(options any, path string) {
	for _, obj := range asList(options) {
		if truthy(obj["bail"]) && truthy(obj["watch"]) {
			r.logger.Warn("you are using bail with watch: bail still ends the run on the first error (%s)", path)
		}
	}
}

// injectContext derives the base directory for configs found through
// the nested dot-folder convention: the folder's parent becomes the
// context unless the config already sets one. Applies element-wise.
func injectContext(options any, path string) {
	dir := filepath.Dir(path)
	if filepath.Base(dir) != DotFolder {
		return
	}
	parent := filepath.Dir(dir)
	for _, obj := range asList(options) {
		if _, ok := obj["context"]; !ok {
			obj["context"] = parent
		}
	}
}

func asList(options any) []map[string]any {
	switch v := options.(type) {
	case map[string]any:
		return []map[string]any{v}
	case []map[string]any:
		return v
	}
	return nil
}

func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case int64:
		return val != 0
	case float64:
		return val != 0
	case map[string]any:
		return true
	case []any:
		return true
	}
	return v != nil
}
