package loaders

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/knadh/koanf/providers/file"
	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
)

// JSONStrategy loads .json and .jsonc documents. Line comments, block
// comments, and trailing commas are stripped before decoding. The
// document root may be an object or an array of configuration objects.
type JSONStrategy struct{}

func (s *JSONStrategy) Prepare() error { return nil }

func (s *JSONStrategy) Load(ctx context.Context, path string) (any, error) {
	raw, err := file.Provider(path).ReadBytes()
	if err != nil {
		return nil, err
	}

	data := jsonc.ToJSON(raw)
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON config", errors.CategoryBadInput).
			WithTextCode("CONFIG_PARSE_FAILED").
			WithMetadata(map[string]any{"path": path})
	}

	return gjson.ParseBytes(data).Value(), nil
}
