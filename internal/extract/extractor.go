// Package extract turns classified OCR text into a per-document-type field
// map. The LLM does the heavy lifting; hand-written regex tables back up
// the two types (KK, IJAZAH) that matter most to the HR workflows.
package extract

import (
	"context"
	"log/slog"

	"github.com/skylogistic00-crypto/skydev-sub002/internal/classify"
	"github.com/skylogistic00-crypto/skydev-sub002/internal/llm"
)

// KKExtractor is the delegated family-register extraction service.
type KKExtractor interface {
	Extract(ctx context.Context, ocrText string) (map[string]any, error)
}

type Extractor struct {
	gateway llm.Gateway
	kk      KKExtractor
	model   string
}

// NewExtractor builds the extractor. kk may be nil when no delegated
// service is configured; the regex fallback then covers KK documents.
func NewExtractor(gw llm.Gateway, kk KKExtractor, model string) *Extractor {
	return &Extractor{gateway: gw, kk: kk, model: model}
}

// Extract resolves the strategy for docType and returns a field map. It
// never returns an error: every failure path degrades to a smaller (or
// empty) map, and the caller reports emptiness to the client.
func (e *Extractor) Extract(ctx context.Context, docType classify.DocumentType, rawText string) map[string]any {
	var data map[string]any

	switch docType {
	case classify.Ijazah:
		data = e.completeJSON(ctx, docType, rawText)
		if len(data) == 0 {
			slog.Warn("ijazah LLM extraction empty, using regex fallback")
			data = ExtractIjazahFields(rawText)
		}

	case classify.KK:
		if e.kk != nil {
			kkData, err := e.kk.Extract(ctx, rawText)
			if err == nil && len(kkData) > 0 {
				return kkData
			}
			if err != nil {
				slog.Warn("delegated KK extractor failed, falling through", "error", err)
			}
		}
		data = e.completeJSON(ctx, docType, rawText)

	default:
		data = e.completeJSON(ctx, docType, rawText)
	}

	// Last line of defense: a family register must at least yield the
	// fields its printed labels give away.
	if len(data) == 0 && docType == classify.KK {
		data = ExtractKKFields(rawText)
	}

	if data == nil {
		data = map[string]any{}
	}
	return data
}

// completeJSON runs one JSON-mode completion with the type's schema prompt
// and parses the result leniently. Returns an empty map on any failure.
func (e *Extractor) completeJSON(ctx context.Context, docType classify.DocumentType, rawText string) map[string]any {
	if e.gateway == nil {
		return map[string]any{}
	}

	resp, err := e.gateway.Chat(ctx, llm.ChatRequest{
		Model: e.model,
		Messages: []llm.Message{
			{Role: "system", Content: systemPrompt(docType)},
			{Role: "user", Content: rawText},
		},
		Temperature: 0,
		JSONMode:    true,
	})
	if err != nil {
		slog.Warn("LLM extraction failed", "doc_type", docType, "error", err)
		return map[string]any{}
	}

	data, err := parseLLMJSON(resp.Content)
	if err != nil {
		slog.Warn("LLM returned unparsable JSON", "doc_type", docType, "error", err)
		return map[string]any{}
	}

	return data
}
