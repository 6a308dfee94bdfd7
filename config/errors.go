package config

import (
	"github.com/ncobase/echoapi/ecode"

	"github.com/spf13/viper"
)

// Errors error table config struct
type Errors struct {
	// Path is the table file. Empty means the embedded default table.
	Path string
}

// Table loads the configured error table.
func (e *Errors) Table() (*ecode.Table, error) {
	if e == nil || e.Path == "" {
		return ecode.Default(), nil
	}
	return ecode.LoadFile(e.Path)
}

func getErrorsConfig(v *viper.Viper) *Errors {
	return &Errors{
		Path: v.GetString("errors.path"),
	}
}
