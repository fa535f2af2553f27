// Package loaders maps configuration file extensions to loading
// strategies. Native data formats (JSON/JSONC, YAML, TOML) decode
// directly; interpreted formats (Lua) run through an embedded
// interpreter and may export a function instead of a plain document.
// Strategies are prepared once per process on first use.
package loaders
