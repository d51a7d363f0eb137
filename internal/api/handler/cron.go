package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeIngestion = "ingestion"
	CronJobTypeAll       = "all"
)

// SyncTrigger é um agendador que pode ser disparado manualmente
type SyncTrigger interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	IngestionSyncService SyncTrigger
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeIngestion, CronJobTypeAll:
			if services.IngestionSyncService == nil {
				writeInternalError(w, "Serviço de ingestão agendada não disponível")
				return
			}

			started := services.IngestionSyncService.TriggerManualSync()
			message := "Cron job iniciada com sucesso"
			if !started {
				message = "Cron job já está em andamento"
			}

			writeJSON(w, http.StatusAccepted, map[string]any{
				"message": message,
				"type":    cronType,
				"started": started,
			})
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: ingestion, all", nil)
		}
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.IngestionSyncService != nil {
			status[CronJobTypeIngestion] = services.IngestionSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
