package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const visionAnnotateURL = "https://vision.googleapis.com/v1/images:annotate"

// VisionDirectEngine is the last-resort engine: it downloads the document
// bytes itself and calls the Vision REST API synchronously with an API key,
// bypassing every internal proxy.
type VisionDirectEngine struct {
	apiKey      string
	endpoint    string
	httpClient  *http.Client
	fetchClient *http.Client
}

func NewVisionDirectEngine(apiKey string, timeout time.Duration) *VisionDirectEngine {
	return &VisionDirectEngine{
		apiKey:      apiKey,
		endpoint:    visionAnnotateURL,
		httpClient:  &http.Client{Timeout: timeout},
		fetchClient: &http.Client{Timeout: timeout},
	}
}

func (e *VisionDirectEngine) Name() string { return "google_vision_direct" }

type annotateImage struct {
	Content string `json:"content"`
}

type annotateFeature struct {
	Type string `json:"type"`
}

type annotateRequest struct {
	Image    annotateImage     `json:"image"`
	Features []annotateFeature `json:"features"`
}

type annotateBatch struct {
	Requests []annotateRequest `json:"requests"`
}

func (e *VisionDirectEngine) Extract(ctx context.Context, in Input) (string, error) {
	if e.apiKey == "" {
		return "", errors.New("vision API key not configured")
	}

	data, err := fetchBytes(ctx, e.fetchClient, in.URL)
	if err != nil {
		return "", err
	}

	batch := annotateBatch{
		Requests: []annotateRequest{{
			Image:    annotateImage{Content: base64.StdEncoding.EncodeToString(data)},
			Features: []annotateFeature{{Type: "DOCUMENT_TEXT_DETECTION"}},
		}},
	}

	body, err := json.Marshal(batch)
	if err != nil {
		return "", fmt.Errorf("marshal annotate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint+"?key="+e.apiKey, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create annotate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("vision annotate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("vision annotate failed (%d): %s", resp.StatusCode, string(b))
	}

	var out struct {
		Responses []struct {
			FullTextAnnotation struct {
				Text string `json:"text"`
			} `json:"fullTextAnnotation"`
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		} `json:"responses"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode annotate response: %w", err)
	}
	if len(out.Responses) == 0 {
		return "", errors.New("vision annotate: empty response")
	}
	if msg := out.Responses[0].Error.Message; msg != "" {
		return "", fmt.Errorf("vision annotate: %s", msg)
	}

	return strings.TrimSpace(out.Responses[0].FullTextAnnotation.Text), nil
}
