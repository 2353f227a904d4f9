package pipeline

import (
	"context"
	"time"

	"github.com/aptpath/reelforge/internal/config"
	"github.com/aptpath/reelforge/internal/logger"
	"github.com/aptpath/reelforge/internal/summarizer"
	"github.com/aptpath/reelforge/internal/transcriber"
	"github.com/aptpath/reelforge/pkg/executor"
)

type implPipeline struct {
	cfg          *config.Config
	executor     executor.Executor
	transcriber  transcriber.Transcriber
	summarizer   summarizer.Summarizer
	logger       logger.Logger
	stageTimeout time.Duration
}

// New creates a Pipeline instance. All configuration is injected here;
// nothing reads ambient state mid-run.
func New(cfg *config.Config, exec executor.Executor, tr transcriber.Transcriber, sum summarizer.Summarizer, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:          cfg,
		executor:     exec,
		transcriber:  tr,
		summarizer:   sum,
		logger:       log,
		stageTimeout: cfg.Performance.StageTimeout(),
	}
}

// stageContext bounds a single external call. Transcription and generation
// backends have unbounded latency otherwise.
func (p *implPipeline) stageContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.stageTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.stageTimeout)
}
