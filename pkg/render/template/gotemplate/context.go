package gotemplate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-simplegmap/pkg/render/template"
)

// contextFrom turns render data into a pongo2 context. Context providers are
// used as they are. Structs without one are read through their JSON form so
// templates address fields by JSON name; JSON integers come back as int.
func contextFrom(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case template.ContextProvider:
		return pongo2.Context(v.TemplateContext()), nil
	case pongo2.Context:
		return contextFromMap(v)
	case map[string]any:
		return contextFromMap(v)
	}

	decoded, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	m, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("gotemplate: template data must be an object, got %T", data)
	}
	return pongo2.Context(m), nil
}

func contextFromMap(in map[string]any) (pongo2.Context, error) {
	out := make(pongo2.Context, len(in))
	for key, value := range in {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		converted, err := contextValue(value)
		if err != nil {
			return nil, fmt.Errorf("gotemplate: context key %q: %w", key, err)
		}
		out[key] = converted
	}
	return out, nil
}

func contextValue(value any) (any, error) {
	switch v := value.(type) {
	case nil, string, bool, int, int64, float64, []string, map[string]string:
		return v, nil
	case template.ContextProvider:
		return v.TemplateContext(), nil
	case map[string]any:
		ctx, err := contextFromMap(v)
		return map[string]any(ctx), err
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			converted, err := contextValue(item)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil
	}
	return decodeJSON(value)
}

func decodeJSON(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return fromJSONNumbers(out), nil
}

// fromJSONNumbers replaces json.Number values so pongo2 prints 320 rather
// than 320.000000.
func fromJSONNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return int(i)
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		for key, item := range t {
			t[key] = fromJSONNumbers(item)
		}
	case []any:
		for i, item := range t {
			t[i] = fromJSONNumbers(item)
		}
	}
	return v
}
