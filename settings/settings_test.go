package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettingsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write settings file: %v", err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	// t.Setenv restores prior values on cleanup; unset after to isolate tests.
	t.Setenv(EnvAllowPrivateRepos, "")
	t.Setenv(EnvDebug, "")
	os.Unsetenv(EnvAllowPrivateRepos)
	os.Unsetenv(EnvDebug)
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	clearEnv(t)

	s, err := Load(filepath.Join(t.TempDir(), "no-such-file.yaml"))
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}
	if s.AllowPrivateRepos || s.Debug {
		t.Errorf("missing file should yield defaults, got %+v", s)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	path := writeSettingsFile(t, "allowPrivateRepos: true\ndebug: true\n")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}
	if !s.AllowPrivateRepos || !s.Debug {
		t.Errorf("file values not applied, got %+v", s)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	clearEnv(t)

	path := writeSettingsFile(t, "allowPrivateRepos: [not a bool\n")
	if _, err := Load(path); err == nil {
		t.Fatal("Load() with malformed YAML should error")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := writeSettingsFile(t, "allowPrivateRepos: true\ndebug: false\n")
	t.Setenv(EnvAllowPrivateRepos, "false")
	t.Setenv(EnvDebug, "yes")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}
	if s.AllowPrivateRepos {
		t.Error("environment should override file value to false")
	}
	if !s.Debug {
		t.Error("environment should override file value to true")
	}
}

func TestFromEnv(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"0", false},
		{"false", false},
		{"anything", false},
	}
	for _, tt := range tests {
		t.Setenv(EnvAllowPrivateRepos, tt.value)
		if got := FromEnv().AllowPrivateRepos; got != tt.want {
			t.Errorf("FromEnv() with %s=%q: AllowPrivateRepos = %v, want %v",
				EnvAllowPrivateRepos, tt.value, got, tt.want)
		}
	}
}

func TestPolicy(t *testing.T) {
	s := &Settings{AllowPrivateRepos: true, Debug: false}
	p := s.Policy()
	if !p.AllowPrivate || p.Debug {
		t.Errorf("Policy() = %+v, want AllowPrivate only", p)
	}
}
