package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const momentsPrompt = `You are an editor for short-form vertical video. Below is a timestamped transcript of a clip, one line per spoken segment in the form [start - end] text (times in seconds).

Identify the 3-5 most engaging moments worth highlighting. Rank them from most to least engaging.

Respond as a numbered list, one moment per line, in exactly this shape:
1. [<start>s - <end>s] <one-line summary of why this moment lands>

Do not add anything before or after the list.

Transcript:
---
%s
---`

// Summarize sends the transcript to Gemini and returns the highlight list.
func (s *implSummarizer) Summarize(ctx context.Context, transcriptText string) (string, error) {
	if len(s.apiKeys) == 0 {
		return "", fmt.Errorf("no Gemini API keys configured")
	}

	prompt := fmt.Sprintf(momentsPrompt, transcriptText)

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.pickKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Gemini key rate limited, rotating...")
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			if strings.TrimSpace(text) == "" {
				return "", fmt.Errorf("empty response from Gemini")
			}
			return strings.TrimSpace(text), nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implSummarizer) pickKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apiKeys[s.currentKey]
}

func (s *implSummarizer) rotateKey() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}
