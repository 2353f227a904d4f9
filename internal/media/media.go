package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Kind declares what an asset holds.
type Kind string

const (
	KindSource Kind = "source"
	KindAudio  Kind = "audio"
	KindReel   Kind = "reel"
)

// Asset is a reference to bytes on disk plus its declared kind.
type Asset struct {
	Path string
	Kind Kind
}

// Job identifies one pipeline run. Every derived artifact path is namespaced
// by the job ID, so concurrent jobs never collide. A Job is immutable once
// created.
type Job struct {
	ID         string
	SourceName string
	dataDir    string
}

// NewJob creates a job for the given source file name rooted at dataDir.
func NewJob(dataDir, sourceName string) *Job {
	return &Job{
		ID:         uuid.New().String()[:8],
		SourceName: sanitizeFilename(sourceName),
		dataDir:    dataDir,
	}
}

// RestoreJob rebuilds a job from a known ID (store lookups, re-runs).
func RestoreJob(dataDir, id, sourceName string) *Job {
	return &Job{ID: id, SourceName: sanitizeFilename(sourceName), dataDir: dataDir}
}

func (j *Job) UploadPath() string {
	return filepath.Join(j.dataDir, "uploads", fmt.Sprintf("%s_%s", j.ID, j.SourceName))
}

func (j *Job) AudioPath() string {
	return filepath.Join(j.dataDir, "audio", j.ID+".wav")
}

func (j *Job) TranscriptPath() string {
	return filepath.Join(j.dataDir, "transcripts", j.ID+".txt")
}

func (j *Job) SubtitlePath() string {
	return filepath.Join(j.dataDir, "subtitles", j.ID+".ass")
}

func (j *Job) SummaryPath() string {
	return filepath.Join(j.dataDir, "summaries", j.ID+".md")
}

func (j *Job) SummaryDocxPath() string {
	return filepath.Join(j.dataDir, "summaries", j.ID+".docx")
}

func (j *Job) ReelPath() string {
	return filepath.Join(j.dataDir, "reels", "reel_"+j.ID+".mp4")
}

// SourceAsset points at the uploaded video.
func (j *Job) SourceAsset() Asset {
	return Asset{Path: j.UploadPath(), Kind: KindSource}
}

// EnsureDirs creates the per-artifact directories under dataDir.
func EnsureDirs(dataDir string) error {
	for _, dir := range []string{"uploads", "audio", "transcripts", "subtitles", "summaries", "reels"} {
		if err := os.MkdirAll(filepath.Join(dataDir, dir), 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// supportedFormats is the fixed container allow-list. Checked before any
// external process touches the file.
var supportedFormats = []string{".mp4", ".mov", ".avi", ".mkv"}

// SupportedFormat reports whether the file name carries an allowed video
// container extension.
func SupportedFormat(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, format := range supportedFormats {
		if ext == format {
			return true
		}
	}
	return false
}

// sanitizeFilename strips path separators and other characters unsafe in a
// file name, and caps the length.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_",
		"?", "_", "\"", "_", "<", "_", ">", "_", "|", "_",
	)
	name = replacer.Replace(name)
	if len(name) > 100 {
		ext := filepath.Ext(name)
		name = name[:100-len(ext)] + ext
	}
	return name
}
