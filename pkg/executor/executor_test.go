package executor

import (
	"context"
	"strings"
	"testing"
)

func TestExecuteCapturesStdout(t *testing.T) {
	out, err := New().Execute(context.Background(), "sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out.Stdout) != "hello" {
		t.Errorf("Stdout = %q, want hello", out.Stdout)
	}
}

func TestExecuteCapturesStderrOnSuccess(t *testing.T) {
	// Exit zero with stderr output: both must come back, no error.
	out, err := New().Execute(context.Background(), "sh", "-c", "echo warning >&2")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out.Stderr) != "warning" {
		t.Errorf("Stderr = %q, want warning", out.Stderr)
	}
}

func TestExecuteFailure(t *testing.T) {
	_, err := New().Execute(context.Background(), "sh", "-c", "echo broken >&2; exit 3")
	if err == nil {
		t.Fatal("expected error for nonzero exit")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("stderr not included in error: %v", err)
	}
}

func TestExecuteInDir(t *testing.T) {
	dir := t.TempDir()
	out, err := New().ExecuteInDir(context.Background(), dir, "pwd")
	if err != nil {
		t.Fatalf("ExecuteInDir() error = %v", err)
	}
	if strings.TrimSpace(out.Stdout) != dir {
		t.Errorf("Stdout = %q, want %q", out.Stdout, dir)
	}
}
