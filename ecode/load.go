package ecode

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// tableKey wraps the entries in a table document. It is optional.
const tableKey = "errors"

// LoadFile reads a table file. The format is taken from the file extension.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read error table: %w", err)
	}
	t, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a table document in the given format: yaml, yml or json.
func Parse(data []byte, format string) (*Table, error) {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "yaml", "yml":
		return parseYAML(data)
	case "json":
		return parseJSON(data)
	default:
		return nil, fmt.Errorf("unsupported error table format %q", format)
	}
}

func parseYAML(data []byte) (*Table, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse error table: %w", err)
	}
	if len(doc.Content) == 0 {
		return newTable(nil)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.New("error table must be a mapping")
	}
	if wrapped := mappingValue(root, tableKey); wrapped != nil {
		root = wrapped
	}
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return newTable(nil)
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%q must be a mapping", tableKey)
	}

	entries := make(map[string]Entry, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: error code must be a scalar", key.Line)
		}
		code := key.Value
		if _, exists := entries[code]; exists {
			return nil, fmt.Errorf("line %d: duplicate error code %q", key.Line, code)
		}
		var entry Entry
		if err := value.Decode(&entry); err != nil {
			return nil, fmt.Errorf("error code %q: %w", code, err)
		}
		entries[code] = entry
	}
	return newTable(entries)
}

// mappingValue returns the value node stored under key, or nil.
func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Kind == yaml.ScalarNode && m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func parseJSON(data []byte) (*Table, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse error table: %w", err)
	}
	if raw, ok := doc[tableKey]; ok {
		doc = nil
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("%q must be an object: %w", tableKey, err)
		}
	}

	entries := make(map[string]Entry, len(doc))
	for code, raw := range doc {
		var entry Entry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, fmt.Errorf("error code %q: %w", code, err)
		}
		entries[code] = entry
	}
	return newTable(entries)
}
