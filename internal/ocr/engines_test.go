package ocr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFServiceEngine(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "https://x/doc.pdf", body["pdf_url"])
		json.NewEncoder(w).Encode(map[string]string{"text": "  halaman satu  "})
	}))
	defer srv.Close()

	e := NewPDFServiceEngine(srv.URL, 5*time.Second)
	text, err := e.Extract(context.Background(), Input{URL: "https://x/doc.pdf", Kind: KindPDF})

	require.NoError(t, err)
	assert.Equal(t, "halaman satu", text)
	assert.Equal(t, "tesseract", e.Name())
}

func TestPDFServiceEngineNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	e := NewPDFServiceEngine(srv.URL, 5*time.Second)
	_, err := e.Extract(context.Background(), Input{URL: "https://x/doc.pdf", Kind: KindPDF})

	assert.Error(t, err)
}

func TestVisionServiceEngineSendsBothAliases(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "https://x/ktp.jpg", body["image_url"])
		assert.Equal(t, "https://x/ktp.jpg", body["signedUrl"])
		json.NewEncoder(w).Encode(map[string]string{"text": "NIK 3204"})
	}))
	defer srv.Close()

	e := NewVisionServiceEngine(srv.URL, 5*time.Second)
	text, err := e.Extract(context.Background(), Input{URL: "https://x/ktp.jpg", Kind: KindImage})

	require.NoError(t, err)
	assert.Equal(t, "NIK 3204", text)
}

func TestVisionServiceEngineExtractedTextAlias(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"extracted_text": "KARTU KELUARGA"})
	}))
	defer srv.Close()

	e := NewVisionServiceEngine(srv.URL, 5*time.Second)
	text, err := e.Extract(context.Background(), Input{URL: "https://x/kk.jpg", Kind: KindImage})

	require.NoError(t, err)
	assert.Equal(t, "KARTU KELUARGA", text)
}

func TestVisionServiceEngineErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"error": "quota exceeded"})
	}))
	defer srv.Close()

	e := NewVisionServiceEngine(srv.URL, 5*time.Second)
	_, err := e.Extract(context.Background(), Input{URL: "https://x/kk.jpg", Kind: KindImage})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestVisionDirectEngineMissingKey(t *testing.T) {
	e := NewVisionDirectEngine("", 5*time.Second)
	_, err := e.Extract(context.Background(), Input{URL: "https://x/doc.jpg", Kind: KindImage})
	assert.Error(t, err)
}

func TestVisionDirectEngine(t *testing.T) {
	fileSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fake image bytes"))
	}))
	defer fileSrv.Close()

	visionSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var batch annotateBatch
		require.NoError(t, json.NewDecoder(r.Body).Decode(&batch))
		require.Len(t, batch.Requests, 1)
		assert.NotEmpty(t, batch.Requests[0].Image.Content)
		require.Len(t, batch.Requests[0].Features, 1)
		assert.Equal(t, "DOCUMENT_TEXT_DETECTION", batch.Requests[0].Features[0].Type)

		json.NewEncoder(w).Encode(map[string]any{
			"responses": []map[string]any{
				{"fullTextAnnotation": map[string]string{"text": "SURAT IZIN MENGEMUDI"}},
			},
		})
	}))
	defer visionSrv.Close()

	e := NewVisionDirectEngine("test-key", 5*time.Second)
	e.endpoint = visionSrv.URL

	text, err := e.Extract(context.Background(), Input{URL: fileSrv.URL + "/sim.jpg", Kind: KindImage})

	require.NoError(t, err)
	assert.Equal(t, "SURAT IZIN MENGEMUDI", text)
}

func TestVisionDirectEngineAPIError(t *testing.T) {
	fileSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("bytes"))
	}))
	defer fileSrv.Close()

	visionSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"responses": []map[string]any{
				{"error": map[string]string{"message": "invalid image"}},
			},
		})
	}))
	defer visionSrv.Close()

	e := NewVisionDirectEngine("test-key", 5*time.Second)
	e.endpoint = visionSrv.URL

	_, err := e.Extract(context.Background(), Input{URL: fileSrv.URL, Kind: KindImage})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid image")
}
