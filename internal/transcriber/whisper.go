package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aptpath/reelforge/internal/logger"
	"github.com/aptpath/reelforge/internal/transcript"
	"github.com/aptpath/reelforge/pkg/executor"
)

type implWhisper struct {
	python   string
	model    string
	language string
	tempDir  string
	executor executor.Executor
	logger   logger.Logger
}

// NewWhisper creates a Transcriber backed by OpenAI Whisper invoked as
// "python -m whisper" with JSON output.
func NewWhisper(python, model, language, tempDir string, exec executor.Executor, log logger.Logger) Transcriber {
	return &implWhisper{
		python:   python,
		model:    model,
		language: language,
		tempDir:  tempDir,
		executor: exec,
		logger:   log,
	}
}

// Transcribe runs Whisper over the audio file and parses its JSON output
// into segments.
func (w *implWhisper) Transcribe(ctx context.Context, audioPath string) ([]transcript.Segment, error) {
	outDir, err := os.MkdirTemp(w.tempDir, "whisper-*")
	if err != nil {
		return nil, fmt.Errorf("create whisper output dir: %w", err)
	}
	defer os.RemoveAll(outDir)

	absAudioPath, err := filepath.Abs(audioPath)
	if err != nil {
		return nil, fmt.Errorf("resolve audio path: %w", err)
	}

	w.logger.Info(ctx, "Transcribing with Whisper (model %s): %s", w.model, audioPath)

	args := []string{
		"-m", "whisper",
		absAudioPath,
		"--model", w.model,
		"--output_dir", outDir,
		"--output_format", "json",
		"--language", w.language,
		"--fp16", "False",
	}

	if _, err := w.executor.Execute(ctx, w.python, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	baseName := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	jsonPath := filepath.Join(outDir, baseName+".json")

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}

	segments, err := parseWhisperOutput(data)
	if err != nil {
		return nil, err
	}

	w.logger.Info(ctx, "Transcription completed: %d segments", len(segments))
	return segments, nil
}

// whisperOutput matches Whisper's JSON output format.
type whisperOutput struct {
	Text     string           `json:"text"`
	Language string           `json:"language"`
	Segments []whisperSegment `json:"segments"`
}

type whisperSegment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

func parseWhisperOutput(data []byte) ([]transcript.Segment, error) {
	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse whisper JSON: %w", err)
	}

	segments := make([]transcript.Segment, len(out.Segments))
	for i, seg := range out.Segments {
		segments[i] = transcript.Segment{
			Start: seg.Start,
			End:   seg.End,
			Text:  strings.TrimSpace(seg.Text),
		}
	}
	return segments, nil
}
