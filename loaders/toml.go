package loaders

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
)

// TOMLStrategy loads .toml documents. TOML roots are always tables, so
// this strategy only produces object-shaped configurations.
type TOMLStrategy struct{}

func (s *TOMLStrategy) Prepare() error { return nil }

func (s *TOMLStrategy) Load(ctx context.Context, path string) (any, error) {
	raw, err := file.Provider(path).ReadBytes()
	if err != nil {
		return nil, err
	}

	doc, err := toml.Parser().Unmarshal(raw)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryBadInput, "invalid TOML config").
			WithTextCode("CONFIG_PARSE_FAILED").
			WithMetadata(map[string]any{"path": path})
	}

	return doc, nil
}
