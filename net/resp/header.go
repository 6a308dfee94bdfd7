package resp

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
)

// headerFrom converts a loosely typed header mapping into an http.Header.
// Lists become repeated values and nested mappings contribute their values
// in key order. Nil and non-stringable values are skipped.
func headerFrom(m map[string]any) http.Header {
	h := make(http.Header, len(m))
	for _, k := range sortedKeys(m) {
		addHeader(h, k, m[k])
	}
	return h
}

func addHeader(h http.Header, key string, v any) {
	if nested, ok := asMap(v); ok {
		for _, k := range sortedKeys(nested) {
			addHeader(h, key, nested[k])
		}
		return
	}

	switch val := v.(type) {
	case nil:
	case bool:
		// booleans follow string-cast semantics: true is "1", false is empty
		if val {
			h.Add(key, "1")
		} else {
			h.Add(key, "")
		}
	case []string:
		for _, s := range val {
			h.Add(key, s)
		}
	case []any:
		for _, item := range val {
			addHeader(h, key, item)
		}
	default:
		if s, err := cast.ToStringE(val); err == nil {
			h.Add(key, s)
		}
	}
}

// asMap reports whether v is a string-keyed mapping. Typed maps such as
// map[string]int are converted by reflection.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case gin.H:
		return m, true
	case map[any]any:
		return cast.ToStringMap(m), true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out, true
	case nil:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}
