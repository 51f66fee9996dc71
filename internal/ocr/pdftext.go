package ocr

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
)

// PDFTextEngine reads the embedded text layer of a PDF without calling any
// OCR provider. It only works for born-digital PDFs; scanned PDFs come back
// empty and the cascade moves on to a real OCR backend.
type PDFTextEngine struct {
	httpClient *http.Client
}

func NewPDFTextEngine(timeout time.Duration) *PDFTextEngine {
	return &PDFTextEngine{
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (e *PDFTextEngine) Name() string { return "pdf_text" }

func (e *PDFTextEngine) Extract(ctx context.Context, in Input) (string, error) {
	data, err := fetchBytes(ctx, e.httpClient, in.URL)
	if err != nil {
		return "", err
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open PDF: %w", err)
	}

	var buf strings.Builder
	numPages := reader.NumPage()

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		buf.WriteString(text)
		buf.WriteString("\n")
	}

	return strings.TrimSpace(buf.String()), nil
}
