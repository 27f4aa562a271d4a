// Package testutil provides common testing helpers for docs-core packages.
package testutil

import (
	"io"
	"os"
	"testing"
)

// CaptureOutput captures stdout while fn runs and returns what was written.
// The original stdout is restored before returning. If fn returns an error it
// is logged, not fatal, so tests can assert on partial output.
//
// Example:
//
//	out := testutil.CaptureOutput(t, func() error {
//		return cmd.Execute()
//	})
//	if !strings.Contains(out, "valid") {
//		t.Error("expected validation result in output")
//	}
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	outCh := make(chan string, 1)
	go func() {
		data, _ := io.ReadAll(r)
		outCh <- string(data)
	}()

	fnErr := fn()

	if err := w.Close(); err != nil {
		t.Logf("failed to close pipe writer: %v", err)
	}
	os.Stdout = origStdout

	output := <-outCh
	if fnErr != nil {
		t.Logf("captured command error: %v", fnErr)
	}
	return output
}
