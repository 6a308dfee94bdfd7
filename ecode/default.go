package ecode

import (
	_ "embed"
	"fmt"
)

//go:embed defaults.yaml
var defaultSource []byte

// DefaultSource returns the embedded default table document.
func DefaultSource() []byte {
	out := make([]byte, len(defaultSource))
	copy(out, defaultSource)
	return out
}

// Default returns the embedded default table.
func Default() *Table {
	t, err := parseYAML(defaultSource)
	if err != nil {
		panic(fmt.Sprintf("ecode: invalid embedded table: %v", err))
	}
	return t
}
