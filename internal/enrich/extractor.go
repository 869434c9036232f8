// Package enrich turns raw listing rows into structured open-call
// records by querying a generative-text backend once per field, then
// deduplicates the results.
package enrich

import (
	"context"

	"go.uber.org/zap"

	"github.com/mirr-art/opencall-cli/internal/config"
	"github.com/mirr-art/opencall-cli/pkg/anthropic"
)

// ExtractionFailed is the literal marker substituted for a field when the
// backend call fails. Callers must treat it as distinct from a field's
// fallback phrase.
const ExtractionFailed = "Error"

// systemPrompt is the fixed assistant framing for every extraction call.
const systemPrompt = "You are a helpful assistant."

// Extractor derives one field value per call from a serialized listing
// row. It never retries and never propagates backend failures.
type Extractor struct {
	client      anthropic.Client
	model       string
	maxTokens   int64
	temperature float64
}

// NewExtractor creates an Extractor using the given backend client and
// model settings.
func NewExtractor(client anthropic.Client, cfg config.AnthropicConfig) *Extractor {
	return &Extractor{
		client:      client,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}
}

// Extract sends one natural-language query combining the instruction and
// the serialized row, and returns the trimmed first-completion text. On
// any backend failure it logs and returns ExtractionFailed; the fallback
// phrase inside the instruction is advisory for the model only and is
// never applied programmatically here.
func (e *Extractor) Extract(ctx context.Context, rowContext, instruction string) string {
	prompt := "Question: " + instruction + " Data: " + rowContext + "\nAnswer:"

	temp := e.temperature
	resp, err := e.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:       e.model,
		MaxTokens:   e.maxTokens,
		System:      systemPrompt,
		Messages:    []anthropic.Message{{Role: "user", Content: prompt}},
		Temperature: &temp,
	})
	if err != nil {
		zap.L().Warn("enrich: extraction call failed", zap.Error(err))
		return ExtractionFailed
	}

	return resp.Text()
}
