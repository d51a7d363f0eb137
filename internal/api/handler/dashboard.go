package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Clock devolve o instante atual; substituível nos testes
type Clock func() time.Time

// GetDashboard retorna o painel completo: cards, gráficos, tabela diária e resumo
func GetDashboard(service dashboarding.Dashboarder, loc *time.Location, now Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, ok := renderDashboard(w, r, service, loc, now)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, dashboard)
	}
}

// GetDailyRecords retorna a tabela diária com realizado, metas e acumulados
func GetDailyRecords(service dashboarding.Dashboarder, loc *time.Location, now Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, ok := renderDashboard(w, r, service, loc, now)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, dashboard.Daily)
	}
}

// GetPeriodSummary retorna apenas os indicadores do período
func GetPeriodSummary(service dashboarding.Dashboarder, loc *time.Location, now Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, ok := renderDashboard(w, r, service, loc, now)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, dashboard.Summary)
	}
}

// renderDashboard resolve a data de referência (?today=yyyy-mm-dd) e traduz o
// desfecho da renderização em resposta de erro quando não há painel
func renderDashboard(
	w http.ResponseWriter,
	r *http.Request,
	service dashboarding.Dashboarder,
	loc *time.Location,
	now Clock,
) (*domain.Dashboard, bool) {
	today := now().In(loc)

	param := r.URL.Query().Get("today")
	date, err := utils.ParseDate(param, loc)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida. Use o formato yyyy-mm-dd", map[string]string{"today": param})
		return nil, false
	}
	if date != nil {
		today = *date
	}

	result := service.Render(r.Context(), today)
	logger := log.ForContext(r.Context()).WithField("status", string(result.Status))

	switch result.Status {
	case domain.RenderStatusOK:
		return result.Dashboard, true
	case domain.RenderStatusEmpty:
		apiErrors.WriteError(w, apiErrors.ErrNoData, result.Message, nil)
	case domain.RenderStatusConnectionFailure:
		apiErrors.WriteError(w, apiErrors.ErrCommunication, result.Message, nil)
	case domain.RenderStatusGoalsUnavailable:
		apiErrors.WriteError(w, apiErrors.ErrGoalsUnavailable, result.Message, nil)
	default:
		logger.Error("Status de renderização desconhecido")
		writeInternalError(w, "Erro ao montar o painel")
	}

	return nil, false
}
