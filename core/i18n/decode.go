package i18n

import (
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DecodeJSON parses a JSON document into a Dictionary.
// Numbers are kept as float64; like any other non-string leaf they are
// treated as missing translations.
func DecodeJSON(data []byte) (Dictionary, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode json dictionary: %w", err)
	}
	return toDictionary(raw)
}

// DecodeYAML parses a YAML document into a Dictionary.
// Non-string mapping keys such as plural counts (0:, 1:) are converted to
// their string form.
func DecodeYAML(data []byte) (Dictionary, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode yaml dictionary: %w", err)
	}
	return toDictionary(raw)
}

func toDictionary(raw any) (Dictionary, error) {
	if raw == nil {
		return Dictionary{}, nil
	}
	m, ok := normalize(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidDictionary, raw)
	}
	return Dictionary(m), nil
}

// normalize converts decoded mappings to map[string]any at every depth.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[discriminatorKey(k)] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	default:
		return v
	}
}
