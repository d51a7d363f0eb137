package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/ingesting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

// RunIngestion executa o lote de importação de forma síncrona e devolve o status do lote
func RunIngestion(ingester ingesting.Ingester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result := ingester.Run(r.Context())
		if result == nil {
			writeInternalError(w, "Ingestão não retornou resultado")
			return
		}

		if !result.Succeeded() {
			apiErrors.WriteError(w, apiErrors.ErrIngestionFailed, result.Body, result)
			return
		}

		writeJSON(w, result.StatusCode, result)
	}
}
