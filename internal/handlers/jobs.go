package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aptpath/reelforge/internal/store"
)

// JobsHandler serves job status and artifacts.
type JobsHandler struct {
	store store.Store
}

func NewJobsHandler(st store.Store) *JobsHandler {
	return &JobsHandler{store: st}
}

func (h *JobsHandler) lookup(c *fiber.Ctx) (store.Record, bool, error) {
	rec, err := h.store.Get(context.Background(), c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return store.Record{}, false, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "job not found"})
	}
	if err != nil {
		return store.Record{}, false, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return rec, true, nil
}

// Get returns the job record.
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	rec, ok, err := h.lookup(c)
	if !ok {
		return err
	}
	return c.JSON(rec)
}

// List returns recent jobs.
func (h *JobsHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	records, err := h.store.List(context.Background(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(records)
}

// Transcript serves the plain timestamped transcript file.
func (h *JobsHandler) Transcript(c *fiber.Ctx) error {
	rec, ok, err := h.lookup(c)
	if !ok {
		return err
	}
	if rec.TranscriptPath == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "transcript not available"})
	}
	return c.SendFile(rec.TranscriptPath)
}

// Subtitle serves the subtitle-track document.
func (h *JobsHandler) Subtitle(c *fiber.Ctx) error {
	rec, ok, err := h.lookup(c)
	if !ok {
		return err
	}
	if rec.SubtitlePath == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "subtitle track not available"})
	}
	return c.SendFile(rec.SubtitlePath)
}

// Summary returns the highlight summary text.
func (h *JobsHandler) Summary(c *fiber.Ctx) error {
	rec, ok, err := h.lookup(c)
	if !ok {
		return err
	}
	if rec.Summary == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "summary not available"})
	}
	return c.SendString(rec.Summary)
}

// Reel serves the rendered vertical video.
func (h *JobsHandler) Reel(c *fiber.Ctx) error {
	rec, ok, err := h.lookup(c)
	if !ok {
		return err
	}
	if rec.ReelPath == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "reel not available"})
	}
	return c.SendFile(rec.ReelPath)
}
