package loaders

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/goliatone/go-errors"
)

// ConfigFunc is a function-shaped configuration export. The pipeline
// invokes it once with the environment map and the opaque argv value and
// uses the returned object or array of objects as the configuration.
type ConfigFunc func(ctx context.Context, env map[string]any, argv any) (any, error)

// Module is a loaded configuration document. Content is one of
// map[string]any, []any holding objects, or ConfigFunc.
type Module struct {
	Path    string
	Content any
}

// Strategy loads the configuration document for one file extension.
// Prepare runs once per process before the first Load through the
// registry; repeated preparation must be safe.
type Strategy interface {
	Prepare() error
	Load(ctx context.Context, path string) (any, error)
}

type entry struct {
	strategy Strategy
	once     sync.Once
	prepErr  error
}

// Registry maps file extensions to loading strategies. Extensions keep
// registration order, which doubles as candidate extension priority
// during default lookup.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
	order   []string
}

func NewRegistry() *Registry {
	return &Registry{entries: map[string]*entry{}}
}

// DefaultRegistry returns a registry with the built-in strategies. The
// extension order here determines default candidate priority.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(".json", &JSONStrategy{})
	r.Register(".jsonc", &JSONStrategy{})
	r.Register(".yaml", &YAMLStrategy{})
	r.Register(".yml", &YAMLStrategy{})
	r.Register(".toml", &TOMLStrategy{})
	r.Register(".lua", &LuaStrategy{})
	return r
}

// Register binds ext to s. Re-registering an extension replaces its
// strategy but keeps the original position in the order.
func (r *Registry) Register(ext string, s Strategy) {
	ext = normalizeExt(ext)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[ext]; !ok {
		r.order = append(r.order, ext)
	}
	r.entries[ext] = &entry{strategy: s}
}

// Extensions returns the registered extensions in registration order.
func (r *Registry) Extensions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Ensure returns the strategy for ext with its preparation step run.
// Preparation happens once per registration; a failed Prepare is
// returned again on every later call for that extension.
func (r *Registry) Ensure(ext string) (Strategy, error) {
	ext = normalizeExt(ext)
	r.mu.Lock()
	e, ok := r.entries[ext]
	r.mu.Unlock()
	if !ok {
		return nil, errors.New("no loader registered for extension "+ext, errors.CategoryBadInput).
			WithTextCode("LOADER_NOT_REGISTERED").
			WithMetadata(map[string]any{
				"extension":  ext,
				"registered": r.Extensions(),
			})
	}

	e.once.Do(func() {
		e.prepErr = e.strategy.Prepare()
	})
	if e.prepErr != nil {
		return nil, e.prepErr
	}
	return e.strategy, nil
}

// LoadModule loads the document at path with the strategy for its
// extension. A top-level default-export wrapper field is unwrapped.
// Strategy failures propagate unmodified.
func (r *Registry) LoadModule(ctx context.Context, path string) (*Module, error) {
	s, err := r.Ensure(filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	content, err := s.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	return &Module{Path: path, Content: unwrapDefault(content)}, nil
}

// unwrapDefault unwraps the documented "default" wrapper field used by
// modules that nest their real export.
func unwrapDefault(content any) any {
	if m, ok := content.(map[string]any); ok {
		if v, ok := m["default"]; ok && v != nil {
			return v
		}
	}
	return content
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
