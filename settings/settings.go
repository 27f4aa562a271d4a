package settings

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/docsforge/docs-core/logutil"
	"github.com/docsforge/docs-core/repourl"
)

// Environment variable names for policy configuration.
const (
	// EnvAllowPrivateRepos enables private repository access when truthy.
	EnvAllowPrivateRepos = "DOCSFORGE_ALLOW_PRIVATE_REPOS"
	// EnvDebug enables local development mode when truthy.
	EnvDebug = "DOCSFORGE_DEBUG"
)

// Settings holds the validation trust posture.
type Settings struct {
	AllowPrivateRepos bool `yaml:"allowPrivateRepos"`
	Debug             bool `yaml:"debug"`
}

// Load reads settings from the YAML file at path and applies environment
// overrides. A missing file is not an error: defaults (everything off) are
// used. A file that exists but cannot be read or parsed is an error.
func Load(path string) (*Settings, error) {
	s := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read settings: %w", err)
		}
		logutil.Debugf("settings file %s not found, using defaults", path)
	} else if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	s.applyEnv()
	return s, nil
}

// FromEnv builds settings from environment variables only.
func FromEnv() *Settings {
	s := &Settings{}
	s.applyEnv()
	return s
}

// Policy converts the settings into the per-call policy the validators take.
func (s *Settings) Policy() repourl.Policy {
	return repourl.Policy{
		AllowPrivate: s.AllowPrivateRepos,
		Debug:        s.Debug,
	}
}

func (s *Settings) applyEnv() {
	if v, ok := os.LookupEnv(EnvAllowPrivateRepos); ok {
		s.AllowPrivateRepos = truthy(v)
	}
	if v, ok := os.LookupEnv(EnvDebug); ok {
		s.Debug = truthy(v)
	}
}

func truthy(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes":
		return true
	}
	return false
}
