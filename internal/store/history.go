// Package store persists one audit row per pipeline invocation. The rest
// of the application database (HR tables, stock, POS) lives behind other
// services; this service only owns the extractions table.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Extraction struct {
	ID           uuid.UUID `json:"id"`
	ImageURL     string    `json:"image_url"`
	OCREngine    string    `json:"ocr_engine"`
	JenisDokumen string    `json:"jenis_dokumen"`
	Success      bool      `json:"success"`
	Error        string    `json:"error,omitempty"`
	TextLength   int       `json:"text_length"`
	CreatedAt    time.Time `json:"created_at"`
}

type History struct {
	db *pgxpool.Pool
}

func NewHistory(db *pgxpool.Pool) *History {
	return &History{db: db}
}

func (h *History) Record(ctx context.Context, e Extraction) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	_, err := h.db.Exec(ctx,
		`INSERT INTO extractions (id, image_url, ocr_engine, jenis_dokumen, success, error, text_length)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.ImageURL, e.OCREngine, e.JenisDokumen, e.Success, e.Error, e.TextLength,
	)
	if err != nil {
		return fmt.Errorf("insert extraction: %w", err)
	}
	return nil
}

func (h *History) List(ctx context.Context, limit, offset int) ([]Extraction, error) {
	rows, err := h.db.Query(ctx,
		`SELECT id, image_url, ocr_engine, jenis_dokumen, success, error, text_length, created_at
		 FROM extractions ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list extractions: %w", err)
	}
	defer rows.Close()

	var out []Extraction
	for rows.Next() {
		var e Extraction
		if err := rows.Scan(&e.ID, &e.ImageURL, &e.OCREngine, &e.JenisDokumen, &e.Success, &e.Error, &e.TextLength, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan extraction: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
