// Package resolve implements the build-configuration resolution
// pipeline: deterministic multi-candidate file lookup with mode-based
// disambiguation, module loading through the extension strategy
// registry, normalization of the legal config shapes (object, array of
// named objects, function), and an optional deterministic deep merge.
//
// The pipeline produces the options object(s) a build engine consumes;
// argument parsing and process lifecycle stay with the caller. All
// failures abort the run; nothing is retried.
package resolve
