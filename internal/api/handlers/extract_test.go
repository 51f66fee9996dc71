package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylogistic00-crypto/skydev-sub002/internal/pipeline"
)

type fakeRunner struct {
	resp     pipeline.Response
	panicMsg string
	lastReq  pipeline.Request
}

func (f *fakeRunner) Run(ctx context.Context, req pipeline.Request) pipeline.Response {
	f.lastReq = req
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	return f.resp
}

func doExtract(t *testing.T, runner Runner, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewExtractHandler(runner)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/extract", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.Extract(w, req)
	return w
}

func TestExtractMissingImageURL(t *testing.T) {
	w := doExtract(t, &fakeRunner{}, `{"file_type": "image/png"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "image_url is required", body["error"])
}

func TestExtractInvalidBody(t *testing.T) {
	w := doExtract(t, &fakeRunner{}, `{not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExtractSuccessResponse(t *testing.T) {
	runner := &fakeRunner{resp: pipeline.Response{
		Success:      true,
		OCREngine:    "google_vision",
		JenisDokumen: "KTP",
		Data:         map[string]any{"nik": "3204110101900001"},
		RawText:      "NIK 3204110101900001",
		CleanText:    "NIK 3204110101900001",
	}}

	w := doExtract(t, runner, `{"image_url": "https://x/ktp.jpg", "file_type": "image/jpeg", "document_type_hint": "KTP"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://x/ktp.jpg", runner.lastReq.ImageURL)
	assert.Equal(t, "KTP", runner.lastReq.Hint)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	for _, key := range []string{"success", "ocr_engine", "jenis_dokumen", "data", "raw_text", "clean_text"} {
		assert.Contains(t, body, key)
	}
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "KTP", body["jenis_dokumen"])
}

func TestExtractTotalFailureStill200(t *testing.T) {
	runner := &fakeRunner{resp: pipeline.Response{
		Success:      false,
		OCREngine:    "none",
		JenisDokumen: "UNKNOWN",
		Data:         map[string]any{},
		Error:        "no text could be extracted after trying all OCR engines",
	}}

	w := doExtract(t, runner, `{"image_url": "https://x/blank.jpg"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "none", body["ocr_engine"])
	assert.Empty(t, body["data"])
	assert.NotEmpty(t, body["error"])
}

func TestExtractPanicRecoveredAs200Failure(t *testing.T) {
	w := doExtract(t, &fakeRunner{panicMsg: "nil dereference"}, `{"image_url": "https://x/doc.jpg"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "nil dereference")
}
