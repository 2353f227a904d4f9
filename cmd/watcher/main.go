package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/aptpath/reelforge/internal/config"
	"github.com/aptpath/reelforge/internal/logger"
	"github.com/aptpath/reelforge/internal/media"
	"github.com/aptpath/reelforge/internal/pipeline"
	"github.com/aptpath/reelforge/internal/queue"
	"github.com/aptpath/reelforge/internal/store"
	"github.com/aptpath/reelforge/internal/summarizer"
	"github.com/aptpath/reelforge/internal/transcriber"
	"github.com/aptpath/reelforge/internal/watcher"
	"github.com/aptpath/reelforge/pkg/executor"
)

func main() {
	ctx := context.Background()

	configPath := os.Getenv("REELFORGE_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	if err := media.EnsureDirs(cfg.Paths.Data); err != nil {
		log.Error(ctx, "Failed to create data directories: %v", err)
		os.Exit(1)
	}
	for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Temp} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Error(ctx, "Failed to create directory %s: %v", dir, err)
			os.Exit(1)
		}
	}

	st, err := store.New(cfg.Storage.Database)
	if err != nil {
		log.Error(ctx, "Failed to open job store: %v", err)
		os.Exit(1)
	}
	defer st.Close()

	exec := executor.New()
	tr := transcriber.NewWhisper(cfg.Whisper.Python, cfg.Whisper.Model, cfg.Whisper.Language, cfg.Paths.Temp, exec, log)
	sum := summarizer.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	pl := pipeline.New(cfg, exec, tr, sum, log)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := queue.NewWorkerPool(cfg.Performance.Workers, pl, st, log)
	pool.Start(ctx)

	// Intake: move the dropped file to its job-scoped upload path, record
	// the job and hand it to the pool.
	intake := func(ctx context.Context, path string) error {
		job := media.NewJob(cfg.Paths.Data, filepath.Base(path))
		if err := os.Rename(path, job.UploadPath()); err != nil {
			return fmt.Errorf("move to uploads: %w", err)
		}
		if err := st.Create(ctx, job.ID, job.SourceName); err != nil {
			return fmt.Errorf("record job: %w", err)
		}
		pool.Enqueue(job)
		log.Info(ctx, "Job %s queued (source: %s)", job.ID, job.SourceName)
		return nil
	}

	w, err := watcher.New(cfg.Paths.Input, intake, log)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Reel pipeline is ready")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Data)
	log.Info(ctx, "Workers: %d", cfg.Performance.Workers)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Waiting for in-flight jobs...")
	pool.Stop()
	cancel()
	log.Info(ctx, "Reel pipeline stopped")
}
