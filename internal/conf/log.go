package conf

import (
	"fmt"
	"slices"
)

type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// File receives log output when set; stderr otherwise.
	File string `yaml:"file"`
}

func (l *Log) setDefaults() {
	if l.Level == "" {
		l.Level = "info"
	}
}

func (l *Log) validate() []error {
	var errors []error

	validLevels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(validLevels, l.Level) {
		errors = append(errors, fmt.Errorf("log level must be one of: debug, info, warn, error"))
	}

	return errors
}
