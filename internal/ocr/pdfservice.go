package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// PDFServiceEngine calls the text-extraction OCR service for PDFs.
// The service runs tesseract behind a one-endpoint JSON contract.
type PDFServiceEngine struct {
	baseURL    string
	httpClient *http.Client
}

func NewPDFServiceEngine(baseURL string, timeout time.Duration) *PDFServiceEngine {
	return &PDFServiceEngine{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (e *PDFServiceEngine) Name() string { return "tesseract" }

func (e *PDFServiceEngine) Extract(ctx context.Context, in Input) (string, error) {
	body, err := json.Marshal(map[string]string{"pdf_url": in.URL})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("pdf ocr service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("pdf ocr service failed (%d): %s", resp.StatusCode, string(b))
	}

	var out struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode pdf ocr response: %w", err)
	}

	return strings.TrimSpace(out.Text), nil
}
