package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/aptpath/reelforge/internal/config"
	"github.com/aptpath/reelforge/internal/handlers"
	"github.com/aptpath/reelforge/internal/logger"
	"github.com/aptpath/reelforge/internal/media"
	"github.com/aptpath/reelforge/internal/pipeline"
	"github.com/aptpath/reelforge/internal/queue"
	"github.com/aptpath/reelforge/internal/store"
	"github.com/aptpath/reelforge/internal/summarizer"
	"github.com/aptpath/reelforge/internal/transcriber"
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
	if err := os.MkdirAll(cfg.Paths.Temp, 0755); err != nil {
		log.Error(ctx, "Failed to create temp directory: %v", err)
		os.Exit(1)
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

	app := fiber.New(fiber.Config{
		BodyLimit: cfg.Server.MaxUploadSizeMB * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	uploadHandler := handlers.NewUploadHandler(pool, st, cfg.Paths.Data, cfg.Server.MaxUploadSizeMB, log)
	jobsHandler := handlers.NewJobsHandler(st)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})
	app.Post("/upload", uploadHandler.Handle)
	app.Get("/jobs", jobsHandler.List)
	app.Get("/jobs/:id", jobsHandler.Get)
	app.Get("/jobs/:id/transcript", jobsHandler.Transcript)
	app.Get("/jobs/:id/subtitle", jobsHandler.Subtitle)
	app.Get("/jobs/:id/summary", jobsHandler.Summary)
	app.Get("/jobs/:id/reel", jobsHandler.Reel)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info(ctx, "Server starting on %s", addr)
	log.Info(ctx, "  POST /upload              - upload a video")
	log.Info(ctx, "  GET  /jobs                - list recent jobs")
	log.Info(ctx, "  GET  /jobs/:id            - job status")
	log.Info(ctx, "  GET  /jobs/:id/transcript - timestamped transcript")
	log.Info(ctx, "  GET  /jobs/:id/subtitle   - subtitle track")
	log.Info(ctx, "  GET  /jobs/:id/summary    - highlight summary")
	log.Info(ctx, "  GET  /jobs/:id/reel       - rendered reel")

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info(ctx, "Shutting down gracefully...")
		app.Shutdown()
	}()

	if err := app.Listen(addr); err != nil {
		log.Error(ctx, "Server failed: %v", err)
		os.Exit(1)
	}

	// Let in-flight jobs finish before exiting.
	pool.Stop()
	log.Info(ctx, "Server stopped")
}
