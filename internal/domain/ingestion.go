package domain

import (
	"net/http"
	"time"
)

const (
	IngestionSuccessBody = "Data inserted successfully!"
	IngestionFailureBody = "Failed to connect or insert data!"
)

// IngestionResult é o status único reportado por execução do lote
type IngestionResult struct {
	RunID      string    `json:"run_id"`
	StatusCode int       `json:"statusCode"`
	Body       string    `json:"body"`
	Files      int       `json:"files"`
	Rows       int       `json:"rows"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// Succeeded indica se o lote terminou com status 200
func (r *IngestionResult) Succeeded() bool {
	return r != nil && r.StatusCode == http.StatusOK
}
