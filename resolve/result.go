package resolve

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/goliatone/go-errors"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
)

// Result is the outcome of a resolution run, ready for the build
// engine.
type Result struct {
	// Options is the final configuration: a single object or an array
	// of objects, never nested deeper than one array level.
	Options any

	// OutputOptions is reserved for output-only settings. Currently
	// always empty.
	OutputOptions map[string]any
}

// OptionsList returns the options as a flat slice regardless of shape.
func (r *Result) OptionsList() []map[string]any {
	return asList(r.Options)
}

// Decode unmarshals a single-object options value into v using the
// koanf tag. Multi-config arrays cannot be decoded into one struct;
// decode individual elements instead.
func (r *Result) Decode(v any) error {
	obj, ok := r.Options.(map[string]any)
	if !ok {
		return errors.New("options holds a multi config array, decode one element instead", errors.CategoryBadInput).
			WithTextCode("DECODE_REQUIRES_OBJECT")
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(obj, "."), nil); err != nil {
		return errors.Wrap(err, errors.CategoryOperation, "failed to load options for decoding").
			WithTextCode("DECODE_LOAD_FAILED")
	}

	conf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           v,
			TagName:          "koanf",
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		},
	}
	if err := k.UnmarshalWithConf("", v, conf); err != nil {
		return errors.Wrap(err, errors.CategoryOperation, "failed to decode options").
			WithTextCode("DECODE_FAILED")
	}
	return nil
}
