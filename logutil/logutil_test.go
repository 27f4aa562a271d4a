package logutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestDebugfGatedOnSetup(t *testing.T) {
	var buf bytes.Buffer

	t.Setenv(EnvDebug, "")
	SetupWithWriter(&buf, false)
	t.Cleanup(func() { Setup(false) })

	Debugf("hidden %s", "message")
	if buf.Len() != 0 {
		t.Errorf("debug message logged without debug enabled: %q", buf.String())
	}

	SetupWithWriter(&buf, true)
	Debugf("visible %s", "message")
	if !strings.Contains(buf.String(), "visible message") {
		t.Errorf("debug message missing, got %q", buf.String())
	}
}

func TestWarnfAlwaysLogged(t *testing.T) {
	var buf bytes.Buffer

	SetupWithWriter(&buf, false)
	t.Cleanup(func() { Setup(false) })

	Warnf("careful with %s", "that")
	if !strings.Contains(buf.String(), "careful with that") {
		t.Errorf("warning missing, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "WARN") {
		t.Errorf("expected WARN level in output, got %q", buf.String())
	}
}

func TestIsDebugEnabledFromEnv(t *testing.T) {
	SetupWithWriter(&bytes.Buffer{}, false)
	t.Cleanup(func() { Setup(false) })

	if IsDebugEnabled() {
		t.Fatal("debug should be off by default")
	}

	t.Setenv(EnvDebug, "true")
	if !IsDebugEnabled() {
		t.Error("DOCSFORGE_DEBUG=true should enable debug")
	}

	t.Setenv(EnvDebug, "0")
	if IsDebugEnabled() {
		t.Error("DOCSFORGE_DEBUG=0 should not enable debug")
	}
}
