// Package pipeline chains the single-pass extraction flow:
// normalize -> OCR cascade -> classify -> extract -> assemble.
// Internally failures are ordinary values; only the HTTP handler turns
// them into the wire contract (always 200, error carried in the body).
package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"github.com/skylogistic00-crypto/skydev-sub002/internal/cache"
	"github.com/skylogistic00-crypto/skydev-sub002/internal/classify"
	"github.com/skylogistic00-crypto/skydev-sub002/internal/ocr"
	"github.com/skylogistic00-crypto/skydev-sub002/internal/store"
)

// Request is one extraction invocation, scoped to a single HTTP call.
type Request struct {
	ImageURL string `json:"image_url"`
	FileType string `json:"file_type,omitempty"`
	Hint     string `json:"document_type_hint,omitempty"`
}

// Response is the wire payload. Success means the OCR cascade produced
// non-empty text; extraction quality is judged by the caller from Data
// emptiness and the Error field, never from HTTP status.
type Response struct {
	Success      bool           `json:"success"`
	OCREngine    string         `json:"ocr_engine"`
	JenisDokumen string         `json:"jenis_dokumen"`
	Data         map[string]any `json:"data"`
	RawText      string         `json:"raw_text"`
	CleanText    string         `json:"clean_text"`
	Error        string         `json:"error,omitempty"`
}

// Router is the OCR cascade dependency.
type Router interface {
	Extract(ctx context.Context, in ocr.Input) ocr.Result
}

// FieldExtractor is the structured-extraction dependency.
type FieldExtractor interface {
	Extract(ctx context.Context, docType classify.DocumentType, rawText string) map[string]any
}

type Pipeline struct {
	router    Router
	extractor FieldExtractor
	history   *store.History
	cache     *cache.Cache
	cacheTTL  time.Duration
}

// New wires the pipeline. history and responseCache may be nil; a zero
// cacheTTL disables caching even when a cache client is present.
func New(router Router, extractor FieldExtractor, history *store.History, responseCache *cache.Cache, cacheTTL time.Duration) *Pipeline {
	return &Pipeline{
		router:    router,
		extractor: extractor,
		history:   history,
		cache:     responseCache,
		cacheTTL:  cacheTTL,
	}
}

// Run executes the full flow. It never returns a Go error: total OCR
// failure comes back as a well-formed Response with empty data.
func (p *Pipeline) Run(ctx context.Context, req Request) Response {
	start := time.Now()

	if resp, ok := p.cached(ctx, req); ok {
		return resp
	}

	kind := ocr.Normalize(req.FileType, req.ImageURL)
	res := p.router.Extract(ctx, ocr.Input{URL: req.ImageURL, Kind: kind})

	var resp Response
	if strings.TrimSpace(res.RawText) == "" {
		resp = Response{
			Success:      false,
			OCREngine:    res.Engine,
			JenisDokumen: string(classify.Classify("", req.Hint)),
			Data:         map[string]any{},
			Error:        res.Err,
		}
		if resp.Error == "" {
			resp.Error = "no text could be extracted from the document"
		}
	} else {
		docType := classify.Classify(res.RawText, req.Hint)
		data := p.extractor.Extract(ctx, docType, res.RawText)

		resp = Response{
			Success:      true,
			OCREngine:    res.Engine,
			JenisDokumen: string(docType),
			Data:         data,
			RawText:      res.RawText,
			CleanText:    CleanText(res.RawText),
		}
		p.storeCache(ctx, req, resp)
	}

	slog.Info("extraction pipeline finished",
		"engine", resp.OCREngine,
		"doc_type", resp.JenisDokumen,
		"success", resp.Success,
		"fields", len(resp.Data),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	p.record(ctx, req, resp)
	return resp
}

// Failure shapes an internal error into the same wire payload, for the
// handler's top-level recovery path.
func Failure(msg string) Response {
	return Response{
		Success:      false,
		OCREngine:    "none",
		JenisDokumen: string(classify.Unknown),
		Data:         map[string]any{},
		Error:        msg,
	}
}

// CleanText drops control characters and collapses whitespace runs.
func CleanText(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

func (p *Pipeline) cacheKey(req Request) string {
	sum := sha256.Sum256([]byte(req.ImageURL + "|" + req.FileType + "|" + strings.ToUpper(req.Hint)))
	return "ocr:extract:" + hex.EncodeToString(sum[:])
}

func (p *Pipeline) cached(ctx context.Context, req Request) (Response, bool) {
	if p.cache == nil || p.cacheTTL <= 0 {
		return Response{}, false
	}
	var resp Response
	if err := p.cache.Get(ctx, p.cacheKey(req), &resp); err != nil {
		return Response{}, false
	}
	slog.Debug("extraction served from cache", "url_hash", p.cacheKey(req))
	return resp, true
}

func (p *Pipeline) storeCache(ctx context.Context, req Request, resp Response) {
	if p.cache == nil || p.cacheTTL <= 0 {
		return
	}
	if err := p.cache.Set(ctx, p.cacheKey(req), resp, p.cacheTTL); err != nil {
		slog.Warn("failed to cache extraction response", "error", err)
	}
}

func (p *Pipeline) record(ctx context.Context, req Request, resp Response) {
	if p.history == nil {
		return
	}
	err := p.history.Record(ctx, store.Extraction{
		ImageURL:     req.ImageURL,
		OCREngine:    resp.OCREngine,
		JenisDokumen: resp.JenisDokumen,
		Success:      resp.Success,
		Error:        resp.Error,
		TextLength:   len(resp.RawText),
	})
	if err != nil {
		slog.Warn("failed to record extraction history", "error", err)
	}
}
