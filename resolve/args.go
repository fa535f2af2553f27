package resolve

import (
	"github.com/spf13/pflag"
)

// Args is the external input contract for one resolution run.
type Args struct {
	// ConfigPaths are explicit config file paths in input order. When
	// non-empty, default lookup is skipped entirely.
	ConfigPaths []string

	// ConfigNames filters multi-config arrays by their name field.
	ConfigNames []string

	// Mode is the active build profile, used to disambiguate between
	// default config files (development, production, none).
	Mode string

	// Merge folds the resolved configurations into a single object.
	Merge bool

	// Env carries environment flags handed to function configs. A nil
	// slice leaves the environment map unset.
	Env []string

	// Argv is an opaque value forwarded untouched to function configs.
	Argv any
}

// RegisterFlags declares the resolution flags on fs. The boundary CLI
// parses the set and hands it to ArgsFromFlags.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringSliceP("config", "c", nil, "path to a config file")
	fs.StringSlice("config-name", nil, "name of the configuration to use")
	fs.String("mode", "", "build mode: development, production or none")
	fs.Bool("merge", false, "merge the resolved configurations into one")
	fs.StringSlice("env", nil, "environment passed to function configs (name or name=value)")
}

// ArgsFromFlags builds Args from a parsed flag set. argv is forwarded
// opaquely to function configs.
func ArgsFromFlags(fs *pflag.FlagSet, argv any) (Args, error) {
	paths, err := fs.GetStringSlice("config")
	if err != nil {
		return Args{}, err
	}
	names, err := fs.GetStringSlice("config-name")
	if err != nil {
		return Args{}, err
	}
	mode, err := fs.GetString("mode")
	if err != nil {
		return Args{}, err
	}
	merge, err := fs.GetBool("merge")
	if err != nil {
		return Args{}, err
	}
	env, err := fs.GetStringSlice("env")
	if err != nil {
		return Args{}, err
	}

	return Args{
		ConfigPaths: paths,
		ConfigNames: names,
		Mode:        mode,
		Merge:       merge,
		Env:         env,
		Argv:        argv,
	}, nil
}
