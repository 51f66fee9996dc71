package ocr

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Kind is the normalized input class the router dispatches on.
type Kind int

const (
	KindImage Kind = iota
	KindPDF
)

func (k Kind) String() string {
	if k == KindPDF {
		return "pdf"
	}
	return "image"
}

// Input is one document to run through the cascade.
type Input struct {
	URL  string
	Kind Kind
}

// Result is the terminal output of the cascade. Err is descriptive text,
// not a Go error: the router never fails hard.
type Result struct {
	Engine  string
	RawText string
	Err     string
}

// Engine is a single OCR backend. An empty string with a nil error means
// the engine ran but found no text; the router moves to the next attempt
// in both the error and the empty case.
type Engine interface {
	Name() string
	Extract(ctx context.Context, in Input) (string, error)
}

func fetchBytes(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create fetch request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch document failed (%d)", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
