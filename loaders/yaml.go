package loaders

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/knadh/koanf/providers/file"
	"gopkg.in/yaml.v3"
)

// YAMLStrategy loads .yaml and .yml documents with an object or
// sequence root.
type YAMLStrategy struct{}

func (s *YAMLStrategy) Prepare() error { return nil }

func (s *YAMLStrategy) Load(ctx context.Context, path string) (any, error) {
	raw, err := file.Provider(path).ReadBytes()
	if err != nil {
		return nil, err
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, errors.CategoryBadInput, "invalid YAML config").
			WithTextCode("CONFIG_PARSE_FAILED").
			WithMetadata(map[string]any{"path": path})
	}

	return doc, nil
}
