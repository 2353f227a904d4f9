package handlers

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/aptpath/reelforge/internal/logger"
	"github.com/aptpath/reelforge/internal/media"
	"github.com/aptpath/reelforge/internal/queue"
	"github.com/aptpath/reelforge/internal/store"
)

// UploadHandler accepts a video upload and queues it for processing.
type UploadHandler struct {
	pool      *queue.WorkerPool
	store     store.Store
	dataDir   string
	maxSizeMB int
	logger    logger.Logger
}

func NewUploadHandler(pool *queue.WorkerPool, st store.Store, dataDir string, maxSizeMB int, log logger.Logger) *UploadHandler {
	return &UploadHandler{
		pool:      pool,
		store:     st,
		dataDir:   dataDir,
		maxSizeMB: maxSizeMB,
		logger:    log,
	}
}

// Handle processes the upload request. The extension allow-list is checked
// before the file is saved, so rejected uploads never touch the data dir.
func (h *UploadHandler) Handle(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "no file uploaded",
			"code":  "ERR_NO_FILE",
		})
	}

	maxSize := int64(h.maxSizeMB) * 1024 * 1024
	if file.Size > maxSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("file too large (max %dMB)", h.maxSizeMB),
			"code":  "ERR_FILE_TOO_LARGE",
		})
	}
	if file.Size == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "zero-length upload",
			"code":  "ERR_EMPTY_FILE",
		})
	}

	if !media.SupportedFormat(file.Filename) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unsupported video format (allowed: mp4, mov, avi, mkv)",
			"code":  "ERR_INVALID_FORMAT",
		})
	}

	job := media.NewJob(h.dataDir, file.Filename)
	if err := c.SaveFile(file, job.UploadPath()); err != nil {
		h.logger.Error(c.Context(), "Failed to save upload %s: %v", file.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save file",
			"code":  "ERR_SAVE_FAILED",
		})
	}

	if err := h.store.Create(context.Background(), job.ID, job.SourceName); err != nil {
		h.logger.Error(c.Context(), "Failed to record job %s: %v", job.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to record job",
			"code":  "ERR_STORE_FAILED",
		})
	}

	h.pool.Enqueue(job)
	h.logger.Info(c.Context(), "Job %s queued (source: %s)", job.ID, job.SourceName)

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"job_id": job.ID,
		"status": store.StatusQueued,
	})
}
