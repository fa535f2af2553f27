package resolve

import (
	goerrors "errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-errors"
)

const (
	codeConfigNotFound      = "CONFIG_NOT_FOUND"
	codeLoaderNotRegistered = "LOADER_NOT_REGISTERED"
	codeMergeRequiresMulti  = "MERGE_REQUIRES_MULTIPLE"
	codeNamedConfigNotFound = "NAMED_CONFIG_NOT_FOUND"
	codeInvalidConfigShape  = "INVALID_CONFIG_SHAPE"
	codeConfigFuncFailed    = "CONFIG_FUNC_FAILED"
)

func newResolutionError(path string) error {
	return errors.New(fmt.Sprintf("config file doesn't exist at %s", path), errors.CategoryBadInput).
		WithTextCode(codeConfigNotFound).
		WithMetadata(map[string]any{"path": path})
}

func newMergeError() error {
	return errors.New("at least two configurations are required for merge", errors.CategoryBadInput).
		WithTextCode(codeMergeRequiresMulti)
}

func newNamedConfigNotFound(names []string) error {
	return errors.New(fmt.Sprintf("configuration with name %q was not found", strings.Join(names, ", ")), errors.CategoryBadInput).
		WithTextCode(codeNamedConfigNotFound).
		WithMetadata(map[string]any{"names": names})
}

func hasTextCode(err error, code string) bool {
	var gerr *errors.Error
	if goerrors.As(err, &gerr) {
		return gerr.TextCode == code
	}
	return false
}

// IsResolutionError reports whether err means an explicit config path
// did not resolve to an existing file.
func IsResolutionError(err error) bool {
	return hasTextCode(err, codeConfigNotFound)
}

// IsLoaderRegistrationError reports whether err means no loading
// strategy exists for a candidate's extension.
func IsLoaderRegistrationError(err error) bool {
	return hasTextCode(err, codeLoaderNotRegistered)
}

// IsMergeError reports whether err means merge was requested without a
// multi-config array.
func IsMergeError(err error) bool {
	return hasTextCode(err, codeMergeRequiresMulti)
}

// IsNamedConfigNotFound reports whether err means a requested named
// configuration is absent from a multi-config array. This condition is
// fatal for a build run; the boundary layer decides how to stop.
func IsNamedConfigNotFound(err error) bool {
	return hasTextCode(err, codeNamedConfigNotFound)
}
