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

// VisionServiceEngine calls the cloud vision OCR proxy. The locator is sent
// under both image_url and signedUrl; older deployments of the proxy only
// read the second name.
type VisionServiceEngine struct {
	baseURL    string
	httpClient *http.Client
}

func NewVisionServiceEngine(baseURL string, timeout time.Duration) *VisionServiceEngine {
	return &VisionServiceEngine{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (e *VisionServiceEngine) Name() string { return "google_vision" }

func (e *VisionServiceEngine) Extract(ctx context.Context, in Input) (string, error) {
	body, err := json.Marshal(map[string]string{
		"image_url": in.URL,
		"signedUrl": in.URL,
	})
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
		return "", fmt.Errorf("vision ocr service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("vision ocr service failed (%d): %s", resp.StatusCode, string(b))
	}

	var out struct {
		Text          string `json:"text"`
		ExtractedText string `json:"extracted_text"`
		Error         string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode vision ocr response: %w", err)
	}
	if out.Error != "" {
		return "", fmt.Errorf("vision ocr service: %s", out.Error)
	}

	text := out.Text
	if text == "" {
		text = out.ExtractedText
	}
	return strings.TrimSpace(text), nil
}
