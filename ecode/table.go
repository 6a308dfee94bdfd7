package ecode

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/spf13/cast"
)

// HTTP is the transport part of an error table entry.
type HTTP struct {
	Code    int            `json:"code" yaml:"code"`
	Headers map[string]any `json:"headers,omitempty" yaml:"headers,omitempty"`
}

// Entry describes one configured error.
type Entry struct {
	Message string         `json:"message" yaml:"message"`
	HTTP    HTTP           `json:"http" yaml:"http"`
	Data    map[string]any `json:"data,omitempty" yaml:"data,omitempty"`
}

// Table is an immutable error table. It is safe for concurrent use.
type Table struct {
	entries map[string]Entry
}

// Key returns the normalized table key for an int or string code.
func Key(code any) (string, error) {
	switch c := code.(type) {
	case string:
		return c, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return cast.ToStringE(c)
	default:
		return "", fmt.Errorf("%w: unsupported type %T", ErrInvalidCode, code)
	}
}

// ParseCode converts user input to a code. Canonical decimal integers
// become ints, anything else stays a string.
func ParseCode(s string) any {
	if n, err := strconv.Atoi(s); err == nil && strconv.Itoa(n) == s {
		return n
	}
	return s
}

// NewTable builds a table from entries keyed by int or string codes.
func NewTable(entries map[any]Entry) (*Table, error) {
	normalized := make(map[string]Entry, len(entries))
	for code, entry := range entries {
		key, err := Key(code)
		if err != nil {
			return nil, err
		}
		if _, exists := normalized[key]; exists {
			return nil, fmt.Errorf("duplicate error code %q", key)
		}
		normalized[key] = entry
	}
	return newTable(normalized)
}

// MustTable is like NewTable but panics on error.
func MustTable(entries map[any]Entry) *Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

func newTable(entries map[string]Entry) (*Table, error) {
	t := &Table{entries: make(map[string]Entry, len(entries))}
	for key, entry := range entries {
		if entry.HTTP.Code == 0 {
			entry.HTTP.Code = http.StatusBadRequest
		}
		if entry.HTTP.Code < 100 || entry.HTTP.Code > 599 {
			return nil, fmt.Errorf("error code %q: invalid http code %d", key, entry.HTTP.Code)
		}
		t.entries[key] = cloneEntry(entry)
	}
	return t, nil
}

// Lookup returns a copy of the entry configured for code.
func (t *Table) Lookup(code any) (Entry, error) {
	key, err := Key(code)
	if err != nil {
		return Entry{}, err
	}
	if t != nil {
		if entry, ok := t.entries[key]; ok {
			return cloneEntry(entry), nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrCodeNotFound, key)
}

// Has reports whether code is configured.
func (t *Table) Has(code any) bool {
	_, err := t.Lookup(code)
	return err == nil
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Codes returns the normalized codes in sorted order.
func (t *Table) Codes() []string {
	if t == nil {
		return nil
	}
	codes := make([]string, 0, len(t.entries))
	for code := range t.entries {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func cloneEntry(e Entry) Entry {
	e.HTTP.Headers = cloneMap(e.HTTP.Headers)
	e.Data = cloneMap(e.Data)
	return e
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneMap(val)
	case map[any]any:
		return cloneMap(cast.ToStringMap(val))
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return val
	}
}
