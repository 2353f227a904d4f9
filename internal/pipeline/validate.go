package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/aptpath/reelforge/internal/media"
)

// validate runs a full decode pass over the source. Any diagnostic output is
// treated as proof of corruption: even a warning that leaves the file
// playable fails the check. Intentionally strict.
func (p *implPipeline) validate(ctx context.Context, src media.Asset) error {
	ctx, cancel := p.stageContext(ctx)
	defer cancel()

	out, err := p.executor.Execute(ctx, p.cfg.FFmpeg.Binary,
		"-v", "error",
		"-i", src.Path,
		"-f", "null", "-",
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptSource, err)
	}

	if diag := strings.TrimSpace(out.Stderr); diag != "" {
		return fmt.Errorf("%w: %s", ErrCorruptSource, diag)
	}

	return nil
}
