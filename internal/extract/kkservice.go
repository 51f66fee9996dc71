package extract

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

// KKClient talks to the dedicated family-register extraction service,
// which does its own layout-aware parsing of the member table.
type KKClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewKKClient(baseURL string, timeout time.Duration) *KKClient {
	return &KKClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *KKClient) Extract(ctx context.Context, ocrText string) (map[string]any, error) {
	body, err := json.Marshal(map[string]string{"ocr_text": ocrText})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("kk extractor: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("kk extractor failed (%d): %s", resp.StatusCode, string(b))
	}

	var out struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode kk extractor response: %w", err)
	}
	if !out.Success {
		return nil, fmt.Errorf("kk extractor reported failure")
	}

	return out.Data, nil
}
