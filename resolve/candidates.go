package resolve

import (
	"os"
	"path/filepath"
	"strings"
)

// DotFolder is the nested default-lookup directory convention. Configs
// found inside it get a derived context directory during normalization.
const DotFolder = ".webpack"

// defaultStems is the fixed candidate priority list, stem-major. Each
// stem is crossed with every registered extension.
var defaultStems = []string{
	"webpack.config",
	"webpack.config.dev",
	"webpack.config.development",
	"webpack.config.prod",
	"webpack.config.production",
	".webpack/webpack.config",
	".webpack/webpack.config.none",
	".webpack/webpack.config.dev",
	".webpack/webpack.config.development",
	".webpack/webpack.config.prod",
	".webpack/webpack.config.production",
	".webpack/webpackfile",
}

// defaultModeAliases maps long mode names to the short form used in
// candidate file names.
var defaultModeAliases = map[string]string{
	"production":  "prod",
	"development": "dev",
}

// Candidate is a hypothesized config file location considered during
// lookup.
type Candidate struct {
	Path string
	Ext  string
}

// Locator enumerates default config candidates and resolves explicit
// paths. Stem and mode-alias tables are injected values so the lookup
// rules stay testable in isolation.
type Locator struct {
	workdir string
	stems   []string
	exts    []string
	aliases map[string]string
}

func NewLocator(workdir string, stems, exts []string, aliases map[string]string) *Locator {
	if len(stems) == 0 {
		stems = defaultStems
	}
	if aliases == nil {
		aliases = defaultModeAliases
	}
	return &Locator{
		workdir: workdir,
		stems:   stems,
		exts:    exts,
		aliases: aliases,
	}
}

// DefaultCandidates returns the existing default config candidates in
// stem-major, extension-minor priority order.
func (l *Locator) DefaultCandidates() []Candidate {
	var out []Candidate
	for _, stem := range l.stems {
		for _, ext := range l.exts {
			path := filepath.Join(l.workdir, filepath.FromSlash(stem)+ext)
			if fileExists(path) {
				out = append(out, Candidate{Path: path, Ext: ext})
			}
		}
	}
	return out
}

// FromExplicitPath resolves a user-given path against the workdir. The
// returned slice is empty when no file exists there.
func (l *Locator) FromExplicitPath(path string) []Candidate {
	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(l.workdir, abs)
	}
	if !fileExists(abs) {
		return nil
	}
	return []Candidate{{Path: abs, Ext: filepath.Ext(abs)}}
}

// Select picks the candidate for the active mode: the first whose path
// contains the mode string or its alias. With no match it falls back to
// the last candidate. The fallback-to-last is long-standing lookup
// behavior and is preserved as is; see the selection tests.
func (l *Locator) Select(candidates []Candidate, mode string) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}
	if mode != "" {
		for _, c := range candidates {
			if strings.Contains(c.Path, mode) {
				return c, true
			}
			if alias, ok := l.aliases[mode]; ok && strings.Contains(c.Path, alias) {
				return c, true
			}
		}
	}
	return candidates[len(candidates)-1], true
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
