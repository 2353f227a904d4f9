package queue

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aptpath/reelforge/internal/logger"
	"github.com/aptpath/reelforge/internal/media"
	"github.com/aptpath/reelforge/internal/pipeline"
	"github.com/aptpath/reelforge/internal/store"
)

type fakePipeline struct {
	run func(job *media.Job) (*pipeline.Result, error)
}

func (f *fakePipeline) Run(ctx context.Context, job *media.Job) (*pipeline.Result, error) {
	return f.run(job)
}

func newTestPool(t *testing.T, pl pipeline.Pipeline) (*WorkerPool, store.Store, string) {
	t.Helper()

	dataDir := t.TempDir()
	if err := media.EnsureDirs(dataDir); err != nil {
		t.Fatal(err)
	}

	st, err := store.New(filepath.Join(dataDir, "jobs.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })

	return NewWorkerPool(2, pl, st, logger.New("error")), st, dataDir
}

func TestPoolCompletesJob(t *testing.T) {
	ctx := context.Background()

	pl := &fakePipeline{run: func(job *media.Job) (*pipeline.Result, error) {
		return &pipeline.Result{
			Job:            job,
			TranscriptPath: job.TranscriptPath(),
			SubtitlePath:   job.SubtitlePath(),
			ReelPath:       job.ReelPath(),
		}, nil
	}}
	pool, st, dataDir := newTestPool(t, pl)

	job := media.NewJob(dataDir, "clip.mp4")
	if err := st.Create(ctx, job.ID, job.SourceName); err != nil {
		t.Fatal(err)
	}

	pool.Start(ctx)
	pool.Enqueue(job)
	pool.Stop()

	rec, err := st.Get(ctx, job.ID)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Status != store.StatusCompleted {
		t.Errorf("status = %q, want completed", rec.Status)
	}
	if rec.ReelPath != job.ReelPath() {
		t.Errorf("reel path = %q, want %q", rec.ReelPath, job.ReelPath())
	}
}

func TestPoolRecordsStageFailure(t *testing.T) {
	ctx := context.Background()

	pl := &fakePipeline{run: func(job *media.Job) (*pipeline.Result, error) {
		res := &pipeline.Result{Job: job, TranscriptPath: job.TranscriptPath()}
		return res, &pipeline.StageError{Stage: pipeline.StageRender, Err: errors.New("encoder exploded")}
	}}
	pool, st, dataDir := newTestPool(t, pl)

	job := media.NewJob(dataDir, "clip.mp4")
	if err := st.Create(ctx, job.ID, job.SourceName); err != nil {
		t.Fatal(err)
	}

	pool.Start(ctx)
	pool.Enqueue(job)
	pool.Stop()

	rec, err := st.Get(ctx, job.ID)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Status != store.StatusFailed {
		t.Errorf("status = %q, want failed", rec.Status)
	}
	if !strings.HasPrefix(rec.Error, "render") {
		t.Errorf("error = %q, want render stage tag", rec.Error)
	}
	if rec.TranscriptPath == "" {
		t.Error("partial artifacts must be persisted on failure")
	}
}

func TestPoolRecoversFromPanic(t *testing.T) {
	ctx := context.Background()

	pl := &fakePipeline{run: func(job *media.Job) (*pipeline.Result, error) {
		panic("boom")
	}}
	pool, st, dataDir := newTestPool(t, pl)

	job := media.NewJob(dataDir, "clip.mp4")
	if err := st.Create(ctx, job.ID, job.SourceName); err != nil {
		t.Fatal(err)
	}

	pool.Start(ctx)
	pool.Enqueue(job)
	pool.Stop()

	rec, err := st.Get(ctx, job.ID)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Status != store.StatusFailed {
		t.Errorf("status = %q, want failed after panic", rec.Status)
	}
}

func TestPoolProcessesConcurrentJobs(t *testing.T) {
	ctx := context.Background()

	pl := &fakePipeline{run: func(job *media.Job) (*pipeline.Result, error) {
		return &pipeline.Result{Job: job}, nil
	}}
	pool, st, dataDir := newTestPool(t, pl)

	jobs := make([]*media.Job, 5)
	for i := range jobs {
		jobs[i] = media.NewJob(dataDir, fmt.Sprintf("clip%d.mp4", i))
		if err := st.Create(ctx, jobs[i].ID, jobs[i].SourceName); err != nil {
			t.Fatal(err)
		}
	}

	pool.Start(ctx)
	for _, j := range jobs {
		pool.Enqueue(j)
	}
	pool.Stop()

	for _, j := range jobs {
		rec, err := st.Get(ctx, j.ID)
		if err != nil {
			t.Fatal(err)
		}
		if rec.Status != store.StatusCompleted {
			t.Errorf("job %s status = %q, want completed", j.ID, rec.Status)
		}
	}
}
