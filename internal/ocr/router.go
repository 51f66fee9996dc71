package ocr

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/skylogistic00-crypto/skydev-sub002/internal/config"
)

// Router runs the engine cascade: an ordered list of attempts per input
// kind, terminal on the first non-empty text. Engine failures are logged
// and swallowed; the only terminal failure is "every attempt came back
// empty", and even that is reported as a Result, not an error.
type Router struct {
	pdfText      Engine
	pdfService   Engine
	vision       Engine
	visionDirect Engine
}

func NewRouter(cfg config.OCRConfig) *Router {
	r := &Router{
		pdfText: NewPDFTextEngine(cfg.HTTPTimeout),
	}
	if cfg.PDFServiceURL != "" {
		r.pdfService = NewPDFServiceEngine(cfg.PDFServiceURL, cfg.HTTPTimeout)
	}
	if cfg.VisionServiceURL != "" {
		r.vision = NewVisionServiceEngine(cfg.VisionServiceURL, cfg.HTTPTimeout)
	}
	if cfg.VisionAPIKey != "" {
		r.visionDirect = NewVisionDirectEngine(cfg.VisionAPIKey, cfg.HTTPTimeout)
	}
	return r
}

// NewRouterWithEngines wires explicit engines, for tests and for callers
// that bring their own backends. Nil engines are skipped in the cascade.
func NewRouterWithEngines(pdfText, pdfService, vision, visionDirect Engine) *Router {
	return &Router{
		pdfText:      pdfText,
		pdfService:   pdfService,
		vision:       vision,
		visionDirect: visionDirect,
	}
}

type attempt struct {
	engine Engine
	// name overrides the engine's own name in the result, so the vision
	// proxy reports google_vision_fallback when reached off the PDF path.
	name string
}

func (r *Router) attempts(kind Kind) []attempt {
	if kind == KindPDF {
		return []attempt{
			{engine: r.pdfText},
			{engine: r.pdfService},
			{engine: r.vision, name: "google_vision_fallback"},
			{engine: r.visionDirect},
		}
	}
	return []attempt{
		{engine: r.vision},
		{engine: r.visionDirect},
	}
}

// Extract runs the cascade for the input and never returns a Go error.
func (r *Router) Extract(ctx context.Context, in Input) Result {
	start := time.Now()

	for _, a := range r.attempts(in.Kind) {
		if a.engine == nil {
			continue
		}
		name := a.name
		if name == "" {
			name = a.engine.Name()
		}

		text, err := a.engine.Extract(ctx, in)
		if err != nil {
			slog.Warn("ocr engine failed, trying next",
				"engine", name,
				"kind", in.Kind.String(),
				"error", err,
			)
			continue
		}
		if strings.TrimSpace(text) == "" {
			slog.Debug("ocr engine returned no text", "engine", name)
			continue
		}

		slog.Info("ocr extraction succeeded",
			"engine", name,
			"kind", in.Kind.String(),
			"chars", len(text),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Result{Engine: name, RawText: text}
	}

	return Result{
		Engine: "none",
		Err:    "no text could be extracted after trying all OCR engines",
	}
}
