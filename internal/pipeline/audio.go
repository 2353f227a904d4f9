package pipeline

import (
	"context"
	"fmt"

	"github.com/aptpath/reelforge/internal/media"
)

// extractAudio pulls the audio track out of the source at the best available
// quality (-q:a 0). The output path is scoped to the job, so -y only ever
// overwrites a re-run of the same job.
func (p *implPipeline) extractAudio(ctx context.Context, src media.Asset, audioPath string) (media.Asset, error) {
	ctx, cancel := p.stageContext(ctx)
	defer cancel()

	p.logger.Info(ctx, "Extracting audio: %s -> %s", src.Path, audioPath)

	args := []string{
		"-i", src.Path,
		"-q:a", "0",
		"-map", "a",
		"-y",
		audioPath,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.FFmpeg.Binary, args...); err != nil {
		return media.Asset{}, fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	return media.Asset{Path: audioPath, Kind: media.KindAudio}, nil
}
