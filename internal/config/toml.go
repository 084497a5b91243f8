// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Backend   BackendConfig   `toml:"backend"`
	Interview InterviewConfig `toml:"interview"`
	Voice     VoiceConfig     `toml:"voice"`
	Profile   ProfileConfig   `toml:"profile"`
	Types     []TypeConfig    `toml:"types"`
}

// BackendConfig maps backend connection settings.
type BackendConfig struct {
	URL            *string `toml:"url"`
	TimeoutSeconds *int    `toml:"timeout-seconds"`
}

// InterviewConfig maps interview-session settings.
type InterviewConfig struct {
	Type      *string `toml:"type"`
	Duration  *int    `toml:"duration"`
	Questions *int    `toml:"questions"`
	Voice     *bool   `toml:"voice"`
	ReadAloud *bool   `toml:"read-aloud"`
}

// VoiceConfig maps external speech tooling commands.
type VoiceConfig struct {
	CaptureCommand *string `toml:"capture-command"`
	SpeakCommand   *string `toml:"speak-command"`
}

// ProfileConfig maps user profile settings used for peer comparison.
type ProfileConfig struct {
	Region          *string `toml:"region"`
	ExperienceYears *int    `toml:"experience-years"`
}

// TypeConfig defines a custom interview type in the config file.
type TypeConfig struct {
	Name      string   `toml:"name"`
	Duration  int      `toml:"duration"`
	Questions int      `toml:"questions"`
	Skills    []string `toml:"skills"`
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
