package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Paths       PathsConfig       `yaml:"paths"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Storage     StorageConfig     `yaml:"storage"`
	Performance PerformanceConfig `yaml:"performance"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type ServerConfig struct {
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	MaxUploadSizeMB int    `yaml:"max_upload_size_mb"`
}

type PathsConfig struct {
	Data  string `yaml:"data"`
	Input string `yaml:"input"`
	Temp  string `yaml:"temp"`
}

type FFmpegConfig struct {
	Binary       string `yaml:"binary"`
	Encoder      string `yaml:"encoder"`
	Preset       string `yaml:"preset"`
	VideoBitrate string `yaml:"video_bitrate"`
}

type WhisperConfig struct {
	Python   string `yaml:"python"`
	Model    string `yaml:"model"`
	Language string `yaml:"language"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"-"`
}

type StorageConfig struct {
	Database string `yaml:"database"`
}

type PerformanceConfig struct {
	Workers             int `yaml:"workers"`
	StageTimeoutMinutes int `yaml:"stage_timeout_minutes"`
}

// StageTimeout bounds every external call made by a pipeline stage.
func (p PerformanceConfig) StageTimeout() time.Duration {
	return time.Duration(p.StageTimeoutMinutes) * time.Minute
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads the yaml config file, applies defaults and pulls secrets from
// the environment (GEMINI_API_KEYS, comma separated). Keys never live in the
// config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if keys := os.Getenv("GEMINI_API_KEYS"); keys != "" {
		for _, k := range strings.Split(keys, ",") {
			if k = strings.TrimSpace(k); k != "" {
				cfg.Gemini.APIKeys = append(cfg.Gemini.APIKeys, k)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Paths.Data == "" {
		return fmt.Errorf("paths.data is required")
	}

	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.MaxUploadSizeMB == 0 {
		c.Server.MaxUploadSizeMB = 500
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.FFmpeg.Binary == "" {
		c.FFmpeg.Binary = "ffmpeg"
	}
	if c.FFmpeg.Encoder == "" {
		c.FFmpeg.Encoder = "libx264"
	}
	if c.FFmpeg.Preset == "" {
		c.FFmpeg.Preset = "medium"
	}
	if c.FFmpeg.VideoBitrate == "" {
		c.FFmpeg.VideoBitrate = "5M"
	}
	if c.Whisper.Python == "" {
		c.Whisper.Python = "python"
	}
	if c.Whisper.Model == "" {
		c.Whisper.Model = "base"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Storage.Database == "" {
		c.Storage.Database = "data/jobs.db"
	}
	if c.Performance.Workers == 0 {
		c.Performance.Workers = 2
	}
	if c.Performance.StageTimeoutMinutes == 0 {
		c.Performance.StageTimeoutMinutes = 15
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
