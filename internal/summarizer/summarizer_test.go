package summarizer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aptpath/reelforge/internal/logger"
)

func TestSummarizeNoKeys(t *testing.T) {
	s := New(nil, "gemini-2.5-flash", logger.New("error"))

	_, err := s.Summarize(context.Background(), "[0.00 - 2.50] hello world\n")
	if err == nil {
		t.Fatal("expected error with no API keys")
	}
	if !strings.Contains(err.Error(), "no Gemini API keys") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestKeyRotation(t *testing.T) {
	s := New([]string{"a", "b", "c"}, "gemini-2.5-flash", logger.New("error")).(*implSummarizer)

	if got := s.pickKey(); got != "a" {
		t.Errorf("pickKey() = %q, want a", got)
	}
	s.rotateKey()
	if got := s.pickKey(); got != "b" {
		t.Errorf("pickKey() after rotate = %q, want b", got)
	}
	s.rotateKey()
	s.rotateKey()
	if got := s.pickKey(); got != "a" {
		t.Errorf("pickKey() should wrap around, got %q", got)
	}
}

func TestStripInlineMarkers(t *testing.T) {
	got := stripInlineMarkers("**bold** and `code` and __under__")
	if strings.ContainsAny(got, "*`") || strings.Contains(got, "__") {
		t.Errorf("markers not stripped: %q", got)
	}
}

func TestExportDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.docx")
	summary := "1. [0.0s - 2.5s] **Strong** opening hook\n2. [2.5s - 5.0s] Punchline lands\n"

	if err := ExportDocx("clip.mp4", summary, path); err != nil {
		t.Fatalf("ExportDocx() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("docx not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("docx file is empty")
	}
}
