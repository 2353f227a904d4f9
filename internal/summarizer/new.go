package summarizer

import (
	"sync"

	"github.com/aptpath/reelforge/internal/logger"
)

type implSummarizer struct {
	apiKeys    []string
	currentKey int
	mu         sync.Mutex
	logger     logger.Logger
	model      string
}

// New creates a Summarizer that rotates through the supplied Gemini API keys
// when one hits its quota.
func New(apiKeys []string, model string, log logger.Logger) Summarizer {
	return &implSummarizer{
		apiKeys: apiKeys,
		logger:  log,
		model:   model,
	}
}
