package resolve

import (
	"context"
	"os"

	"github.com/goliatone/go-buildconf/loaders"
	"github.com/goliatone/go-buildconf/logger"
	"github.com/goliatone/go-errors"
)

// Resolver locates, loads, normalizes and optionally merges build
// configuration documents for one run.
type Resolver struct {
	workdir  string
	stems    []string
	aliases  map[string]string
	registry *loaders.Registry
	logger   logger.Logger
}

type Option func(*Resolver) error

func WithWorkdir(dir string) Option {
	return func(r *Resolver) error {
		r.workdir = dir
		return nil
	}
}

// WithStems replaces the default candidate stem priority list.
func WithStems(stems ...string) Option {
	return func(r *Resolver) error {
		r.stems = stems
		return nil
	}
}

// WithModeAliases replaces the mode alias table used during default
// candidate selection.
func WithModeAliases(aliases map[string]string) Option {
	return func(r *Resolver) error {
		r.aliases = aliases
		return nil
	}
}

func WithRegistry(reg *loaders.Registry) Option {
	return func(r *Resolver) error {
		if reg == nil {
			return errors.New("registry cannot be nil", errors.CategoryBadInput).
				WithTextCode("NIL_REGISTRY")
		}
		r.registry = reg
		return nil
	}
}

func WithLogger(l logger.Logger) Option {
	return func(r *Resolver) error {
		r.logger = l
		return nil
	}
}

func New(opts ...Option) (*Resolver, error) {
	r := &Resolver{
		registry: loaders.DefaultRegistry(),
		logger:   logger.NewDefaultLogger("buildconf"),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	if r.workdir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.CategoryOperation, "failed to determine working directory").
				WithTextCode("WORKDIR_FAILED")
		}
		r.workdir = wd
	}

	return r, nil
}

func (r *Resolver) locator() *Locator {
	return NewLocator(r.workdir, r.stems, r.registry.Extensions(), r.aliases)
}

// Resolve runs the pipeline for args and returns the final options.
// Explicit paths win over default lookup; merging, when requested,
// happens after accumulation.
func (r *Resolver) Resolve(ctx context.Context, args Args) (*Result, error) {
	var (
		res *Result
		err error
	)
	if len(args.ConfigPaths) > 0 {
		res, err = r.resolveExplicit(ctx, args)
	} else {
		res, err = r.resolveDefault(ctx, args)
	}
	if err != nil {
		return nil, err
	}

	if args.Merge {
		if err := mergeResult(res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// resolveExplicit loads every user-given path strictly in input order,
// awaiting each before the next, so accumulation stays deterministic.
func (r *Resolver) resolveExplicit(ctx context.Context, args Args) (*Result, error) {
	loc := r.locator()
	out := &Result{OutputOptions: map[string]any{}}

	var acc []map[string]any
	for _, path := range args.ConfigPaths {
		candidates := loc.FromExplicitPath(path)
		if len(candidates) == 0 {
			return nil, newResolutionError(path)
		}

		r.logger.Debug("loading config file %s", candidates[0].Path)
		mod, err := r.registry.LoadModule(ctx, candidates[0].Path)
		if err != nil {
			return nil, err
		}

		res, err := r.finalize(ctx, mod, args)
		if err != nil {
			return nil, err
		}

		// arrays splice into the accumulator, objects append, so the
		// result is never nested deeper than one array level
		switch opts := res.Options.(type) {
		case []map[string]any:
			acc = append(acc, opts...)
		case map[string]any:
			acc = append(acc, opts)
		}
	}

	switch len(acc) {
	case 0:
		out.Options = map[string]any{}
	case 1:
		out.Options = acc[0]
	default:
		out.Options = acc
	}
	return out, nil
}

// resolveDefault loads every existing default candidate, then selects a
// single one for the active mode.
func (r *Resolver) resolveDefault(ctx context.Context, args Args) (*Result, error) {
	loc := r.locator()
	candidates := loc.DefaultCandidates()

	loaded := make(map[string]*loaders.Module, len(candidates))
	for _, c := range candidates {
		mod, err := r.registry.LoadModule(ctx, c.Path)
		if err != nil {
			return nil, err
		}
		loaded[c.Path] = mod
	}

	selected, ok := loc.Select(candidates, args.Mode)
	if !ok {
		return r.finalize(ctx, nil, args)
	}

	r.logger.Debug("using config file %s", selected.Path)
	return r.finalize(ctx, loaded[selected.Path], args)
}
