package queue

import (
	"context"
	"errors"
	"runtime/debug"
	"sync"

	"github.com/aptpath/reelforge/internal/logger"
	"github.com/aptpath/reelforge/internal/media"
	"github.com/aptpath/reelforge/internal/pipeline"
	"github.com/aptpath/reelforge/internal/store"
	"github.com/aptpath/reelforge/internal/summarizer"
)

// WorkerPool pulls queued jobs and runs them through the pipeline. Jobs
// share no mutable state (all artifact paths are ID-namespaced), so workers
// run fully independently.
type WorkerPool struct {
	jobs        chan *media.Job
	workerCount int
	pipeline    pipeline.Pipeline
	store       store.Store
	logger      logger.Logger
	wg          sync.WaitGroup
}

// NewWorkerPool creates a pool of workerCount workers with a buffered queue.
func NewWorkerPool(workerCount int, pl pipeline.Pipeline, st store.Store, log logger.Logger) *WorkerPool {
	return &WorkerPool{
		jobs:        make(chan *media.Job, 100),
		workerCount: workerCount,
		pipeline:    pl,
		store:       st,
		logger:      log,
	}
}

// Start launches the workers. They exit when the queue is closed via Stop or
// the context is cancelled.
func (wp *WorkerPool) Start(ctx context.Context) {
	wp.logger.Info(ctx, "Starting worker pool with %d workers", wp.workerCount)
	for i := 0; i < wp.workerCount; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx, i)
	}
}

// Enqueue adds a job to the queue. The job's store record must already
// exist.
func (wp *WorkerPool) Enqueue(job *media.Job) {
	wp.jobs <- job
}

// Stop closes the queue and waits for in-flight jobs to finish.
func (wp *WorkerPool) Stop() {
	close(wp.jobs)
	wp.wg.Wait()
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	defer wp.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-wp.jobs:
			if !ok {
				return
			}
			wp.runJob(ctx, id, job)
		}
	}
}

// runJob executes the pipeline for one job with panic recovery, persisting
// whatever artifacts the run produced, success or not.
func (wp *WorkerPool) runJob(ctx context.Context, workerID int, job *media.Job) {
	defer func() {
		if r := recover(); r != nil {
			wp.logger.Error(ctx, "Worker %d: panic processing job %s: %v\n%s", workerID, job.ID, r, debug.Stack())
			wp.store.MarkFailed(ctx, job.ID, "panic", "internal error")
		}
	}()

	wp.logger.Info(ctx, "Worker %d: processing job %s", workerID, job.ID)
	if err := wp.store.SetStatus(ctx, job.ID, store.StatusProcessing); err != nil {
		wp.logger.Warn(ctx, "Worker %d: failed to update status for %s: %v", workerID, job.ID, err)
	}

	res, err := wp.pipeline.Run(ctx, job)

	if res != nil {
		artifacts := store.Artifacts{
			TranscriptPath: res.TranscriptPath,
			SubtitlePath:   res.SubtitlePath,
			ReelPath:       res.ReelPath,
			Summary:        res.Summary,
		}
		if serr := wp.store.SetArtifacts(ctx, job.ID, artifacts); serr != nil {
			wp.logger.Warn(ctx, "Worker %d: failed to persist artifacts for %s: %v", workerID, job.ID, serr)
		}
		if res.Summary != "" {
			if derr := summarizer.ExportDocx(job.SourceName, res.Summary, job.SummaryDocxPath()); derr != nil {
				wp.logger.Warn(ctx, "Worker %d: docx export failed for %s: %v", workerID, job.ID, derr)
			}
		}
	}

	if err != nil {
		stage := "pipeline"
		var stageErr *pipeline.StageError
		if errors.As(err, &stageErr) {
			stage = string(stageErr.Stage)
		}
		wp.logger.Error(ctx, "Worker %d: job %s failed at %s: %v", workerID, job.ID, stage, err)
		wp.store.MarkFailed(ctx, job.ID, stage, err.Error())
		return
	}

	if res.SummaryErr != nil {
		wp.logger.Warn(ctx, "Worker %d: job %s finished without summary: %v", workerID, job.ID, res.SummaryErr)
	}

	wp.store.MarkCompleted(ctx, job.ID)
	wp.logger.Info(ctx, "Worker %d: job %s completed", workerID, job.ID)
}
