package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aptpath/reelforge/internal/media"
)

// Fixed vertical reel canvas. The source is scaled to the target width and
// padded to the canvas, centered.
const (
	reelWidth  = 1080
	reelHeight = 1920
)

// renderReel re-encodes the source into the vertical reel format, burning in
// the subtitle track when one is supplied. The subtitle file is copied into
// a scratch directory and referenced by bare relative filename from there:
// ffmpeg's subtitles filter chokes on platform path separators and drive
// colons, so the filter never sees a full path.
func (p *implPipeline) renderReel(ctx context.Context, src media.Asset, subtitlePath, outputPath string) (media.Asset, error) {
	ctx, cancel := p.stageContext(ctx)
	defer cancel()

	p.logger.Info(ctx, "Rendering reel (%dx%d): %s", reelWidth, reelHeight, src.Path)

	absSrc, err := filepath.Abs(src.Path)
	if err != nil {
		return media.Asset{}, fmt.Errorf("resolve source path: %w", err)
	}
	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		return media.Asset{}, fmt.Errorf("resolve output path: %w", err)
	}

	vf := fmt.Sprintf("scale=%d:-2,pad=%d:%d:(ow-iw)/2:(oh-ih)/2", reelWidth, reelWidth, reelHeight)

	workDir := ""
	if subtitlePath != "" {
		tempDir, err := os.MkdirTemp(p.cfg.Paths.Temp, "reel-*")
		if err != nil {
			return media.Asset{}, fmt.Errorf("create temp dir: %w", err)
		}
		defer os.RemoveAll(tempDir)

		subFilename := "subtitle.ass"
		if err := copyFile(subtitlePath, filepath.Join(tempDir, subFilename)); err != nil {
			return media.Asset{}, fmt.Errorf("copy subtitle to temp: %w", err)
		}

		vf += ",subtitles=" + filepath.ToSlash(subFilename)
		workDir = tempDir
	}

	args := []string{
		"-y",
		"-i", absSrc,
		"-vf", vf,
		"-c:v", p.cfg.FFmpeg.Encoder,
		"-b:v", p.cfg.FFmpeg.VideoBitrate,
	}
	if p.cfg.FFmpeg.Encoder == "libx264" {
		args = append(args, "-preset", p.cfg.FFmpeg.Preset)
	}
	args = append(args, "-c:a", "copy", absOutput)

	if workDir != "" {
		_, err = p.executor.ExecuteInDir(ctx, workDir, p.cfg.FFmpeg.Binary, args...)
	} else {
		_, err = p.executor.Execute(ctx, p.cfg.FFmpeg.Binary, args...)
	}
	if err != nil {
		return media.Asset{}, fmt.Errorf("ffmpeg render reel: %w", err)
	}

	return media.Asset{Path: outputPath, Kind: media.KindReel}, nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	return nil
}
