package config

import (
	"os"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Paths: PathsConfig{Data: "data"},
			},
			wantErr: false,
		},
		{
			name:    "missing data path",
			config:  Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{Paths: PathsConfig{Data: "data"}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.FFmpeg.Binary != "ffmpeg" {
		t.Errorf("FFmpeg.Binary = %v, want ffmpeg", cfg.FFmpeg.Binary)
	}
	if cfg.Whisper.Model != "base" {
		t.Errorf("Whisper.Model = %v, want base", cfg.Whisper.Model)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Gemini.Model = %v, want gemini-2.5-flash", cfg.Gemini.Model)
	}
	if cfg.Performance.Workers != 2 {
		t.Errorf("Performance.Workers = %v, want 2", cfg.Performance.Workers)
	}
	if cfg.Performance.StageTimeout() != 15*time.Minute {
		t.Errorf("Performance.StageTimeout() = %v, want 15m", cfg.Performance.StageTimeout())
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %v, want 8080", cfg.Server.Port)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
server:
  port: 9090
  max_upload_size_mb: 100

paths:
  data: "data"
  input: "data/input"

ffmpeg:
  encoder: "libx264"
  video_bitrate: "4M"

whisper:
  model: "small"
  language: "en"

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	t.Setenv("GEMINI_API_KEYS", "key-one, key-two")

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %v, want 9090", cfg.Server.Port)
	}
	if cfg.Whisper.Model != "small" {
		t.Errorf("Model = %v, want small", cfg.Whisper.Model)
	}
	if len(cfg.Gemini.APIKeys) != 2 || cfg.Gemini.APIKeys[1] != "key-two" {
		t.Errorf("APIKeys = %v, want [key-one key-two]", cfg.Gemini.APIKeys)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
