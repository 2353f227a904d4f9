package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aptpath/reelforge/internal/media"
	"github.com/aptpath/reelforge/internal/transcript"
)

// Run drives one job through every stage, short-circuiting on the first
// fatal failure. Summarization is the single stage allowed to fail without
// aborting: its error lands in Result.SummaryErr and rendering proceeds.
// Artifacts written before a failing stage are left in place.
func (p *implPipeline) Run(ctx context.Context, job *media.Job) (*Result, error) {
	startTime := time.Now()
	res := &Result{Job: job}
	src := job.SourceAsset()

	p.logger.Info(ctx, "Starting job %s: %s", job.ID, job.SourceName)

	// Allow-list check comes first: nothing outside it reaches an external
	// process.
	if !media.SupportedFormat(src.Path) {
		return res, &StageError{StageValidate, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(src.Path))}
	}

	if err := p.validate(ctx, src); err != nil {
		return res, &StageError{StageValidate, err}
	}

	audio, err := p.extractAudio(ctx, src, job.AudioPath())
	if err != nil {
		return res, &StageError{StageExtract, err}
	}

	segments, err := p.transcribe(ctx, audio.Path)
	if err != nil {
		return res, &StageError{StageTranscribe, err}
	}
	res.Transcript = transcript.New(segments)

	plain := res.Transcript.PlainText()
	if err := os.WriteFile(job.TranscriptPath(), []byte(plain), 0644); err != nil {
		return res, &StageError{StageTranscribe, fmt.Errorf("write transcript: %w", err)}
	}
	res.TranscriptPath = job.TranscriptPath()

	if err := os.WriteFile(job.SubtitlePath(), []byte(res.Transcript.ASS()), 0644); err != nil {
		return res, &StageError{StageTranscribe, fmt.Errorf("write subtitle track: %w", err)}
	}
	res.SubtitlePath = job.SubtitlePath()

	p.summarize(ctx, job, plain, res)

	reel, err := p.renderReel(ctx, src, res.SubtitlePath, job.ReelPath())
	if err != nil {
		// Transcript and subtitle artifacts stay valid.
		return res, &StageError{StageRender, err}
	}
	res.ReelPath = reel.Path

	p.logger.Info(ctx, "Job %s completed in %s (reel: %s)", job.ID, time.Since(startTime), res.ReelPath)
	return res, nil
}

func (p *implPipeline) transcribe(ctx context.Context, audioPath string) ([]transcript.Segment, error) {
	ctx, cancel := p.stageContext(ctx)
	defer cancel()
	return p.transcriber.Transcribe(ctx, audioPath)
}

// summarize asks the backend for highlight moments. A silent clip has
// nothing to summarize; every failure is recorded, never propagated.
func (p *implPipeline) summarize(ctx context.Context, job *media.Job, plain string, res *Result) {
	if res.Transcript.Empty() {
		p.logger.Debug(ctx, "Job %s: empty transcript, skipping summary", job.ID)
		return
	}

	sctx, cancel := p.stageContext(ctx)
	defer cancel()

	summary, err := p.summarizer.Summarize(sctx, plain)
	if err != nil {
		p.logger.Warn(ctx, "Job %s: summarization failed (continuing): %v", job.ID, err)
		res.SummaryErr = &StageError{StageSummarize, err}
		return
	}

	res.Summary = summary
	if err := os.WriteFile(job.SummaryPath(), []byte(summary+"\n"), 0644); err != nil {
		p.logger.Warn(ctx, "Job %s: failed to write summary file: %v", job.ID, err)
		res.SummaryErr = &StageError{StageSummarize, err}
		return
	}
	res.SummaryPath = job.SummaryPath()
}
