// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/okutan/tusnet/internal/exam"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Exam        ExamConfig     `toml:"exam"`
	Theoretical []SubjectEntry `toml:"theoretical"`
	Clinical    []SubjectEntry `toml:"clinical"`
}

// ExamConfig maps recording-related settings.
type ExamConfig struct {
	RecordsDir *string `toml:"records-dir"`
}

// SubjectEntry maps one blueprint subject in the config file.
type SubjectEntry struct {
	Name      string `toml:"name"`
	Questions int    `toml:"questions"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Blueprint converts config subject entries to exam blueprint specs.
// Returns nil for an empty list so callers fall back to the defaults.
func Blueprint(entries []SubjectEntry) []exam.SubjectSpec {
	if len(entries) == 0 {
		return nil
	}
	specs := make([]exam.SubjectSpec, len(entries))
	for i, e := range entries {
		specs[i] = exam.SubjectSpec{Name: e.Name, Questions: e.Questions}
	}
	return specs
}
