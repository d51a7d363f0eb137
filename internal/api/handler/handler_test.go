package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	dashboardMocks "github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding/mocks"
	ingestionMocks "github.com/vfg2006/sales-dashboard-api/internal/usecases/ingesting/mocks"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

var fixedNow = func() time.Time { return time.Date(2025, 8, 15, 14, 30, 0, 0, time.UTC) }

// serve monta o router com as rotas e injeta as claims do operador
func serve(routes []router.Route, req *http.Request, roleID int) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(routes...))
	if roleID > 0 {
		claims := &domain.Claims{UserRoleID: roleID}
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func okDashboard() *domain.RenderResult {
	return &domain.RenderResult{
		Status: domain.RenderStatusOK,
		Dashboard: &domain.Dashboard{
			Title: "Vendas Mês Agosto",
			Cards: []domain.MetricCard{{Key: "receita_total", Title: "Receita Total", Value: "R$ 600,000.00"}},
			Daily: []domain.DailyRecord{{Label: "01-08", GoalOrders: 24}},
			Summary: domain.PeriodSummary{
				TotalRevenue:          decimal.RequireFromString("600000"),
				TotalOrders:           300,
				RemainingBusinessDays: 10,
			},
		},
	}
}

func TestDashboardHandlers(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		result         *domain.RenderResult
		expectedToday  time.Time
		expectedStatus int
		validate       func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:           "Painel completo",
			path:           "/v1/dashboard",
			result:         okDashboard(),
			expectedToday:  fixedNow(),
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var body domain.Dashboard
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "Vendas Mês Agosto", body.Title)
				assert.Len(t, body.Cards, 1)
			},
		},
		{
			name:           "Data de referência pela query",
			path:           "/v1/dashboard/summary?today=2025-08-31",
			result:         okDashboard(),
			expectedToday:  time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var body domain.PeriodSummary
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, 300, body.TotalOrders)
				assert.Equal(t, 10, body.RemainingBusinessDays)
			},
		},
		{
			name:           "Tabela diária",
			path:           "/v1/dashboard/daily",
			result:         okDashboard(),
			expectedToday:  fixedNow(),
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var body []domain.DailyRecord
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				require.Len(t, body, 1)
				assert.Equal(t, "01-08", body[0].Label)
			},
		},
		{
			name:           "Sem dados no período",
			path:           "/v1/dashboard",
			result:         &domain.RenderResult{Status: domain.RenderStatusEmpty, Message: "Nenhum dado disponível para exibir."},
			expectedToday:  fixedNow(),
			expectedStatus: http.StatusNotFound,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				apiErr := decodeError(t, rec)
				assert.Equal(t, apiErrors.ErrNoData, apiErr.Code)
				assert.Equal(t, "Nenhum dado disponível para exibir.", apiErr.Message)
			},
		},
		{
			name:           "Falha de conexão",
			path:           "/v1/dashboard",
			result:         &domain.RenderResult{Status: domain.RenderStatusConnectionFailure, Message: "erro"},
			expectedToday:  fixedNow(),
			expectedStatus: http.StatusServiceUnavailable,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrCommunication, decodeError(t, rec).Code)
			},
		},
		{
			name:           "Metas indisponíveis",
			path:           "/v1/dashboard",
			result:         &domain.RenderResult{Status: domain.RenderStatusGoalsUnavailable, Message: "erro"},
			expectedToday:  fixedNow(),
			expectedStatus: http.StatusInternalServerError,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrGoalsUnavailable, decodeError(t, rec).Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := dashboardMocks.NewMockDashboarder(ctrl)
			service.EXPECT().Render(gomock.Any(), tt.expectedToday).Return(tt.result)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := serve(Dashboard(service, time.UTC, fixedNow), req, middleware.RoleClient)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.validate(t, rec)
		})
	}
}

func TestDashboardHandlers_InvalidToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := dashboardMocks.NewMockDashboarder(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard?today=31/08/2025", nil)
	rec := serve(Dashboard(service, time.UTC, fixedNow), req, middleware.RoleAdmin)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
}

func TestRunIngestion(t *testing.T) {
	tests := []struct {
		name           string
		roleID         int
		result         *domain.IngestionResult
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Lote importado",
			roleID:         middleware.RoleAdmin,
			result:         &domain.IngestionResult{StatusCode: http.StatusOK, Body: domain.IngestionSuccessBody, Rows: 2},
			expectedStatus: http.StatusOK,
			expectedBody:   domain.IngestionSuccessBody,
		},
		{
			name:           "Lote com falha",
			roleID:         middleware.RoleAdmin,
			result:         &domain.IngestionResult{StatusCode: http.StatusInternalServerError, Body: domain.IngestionFailureBody},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   domain.IngestionFailureBody,
		},
		{
			name:           "Supervisor não pode importar",
			roleID:         middleware.RoleSupervisor,
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ingester := ingestionMocks.NewMockIngester(ctrl)
			if tt.result != nil {
				ingester.EXPECT().Run(gomock.Any()).Return(tt.result)
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/ingestion/run", nil)
			rec := serve(Ingestion(ingester), req, tt.roleID)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
		})
	}
}

type fakeSync struct {
	started bool
	calls   int
}

func (f *fakeSync) TriggerManualSync() bool {
	f.calls++
	return f.started
}

func (f *fakeSync) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true}
}

func TestCronHandlers(t *testing.T) {
	t.Run("Dispara a ingestão", func(t *testing.T) {
		sync := &fakeSync{started: true}
		req := httptest.NewRequest(http.MethodPost, "/v1/cron/ingestion/run", nil)

		rec := serve(CronJobs(CronJobServices{IngestionSyncService: sync}), req, middleware.RoleAdmin)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, sync.calls)
		assert.Contains(t, rec.Body.String(), `"started":true`)
	})

	t.Run("Execução já em andamento", func(t *testing.T) {
		sync := &fakeSync{started: false}
		req := httptest.NewRequest(http.MethodPost, "/v1/cron/all/run", nil)

		rec := serve(CronJobs(CronJobServices{IngestionSyncService: sync}), req, middleware.RoleAdmin)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Contains(t, rec.Body.String(), "já está em andamento")
	})

	t.Run("Tipo inválido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/cron/meta/run", nil)

		rec := serve(CronJobs(CronJobServices{IngestionSyncService: &fakeSync{}}), req, middleware.RoleAdmin)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Serviço ausente", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/cron/ingestion/run", nil)

		rec := serve(CronJobs(CronJobServices{}), req, middleware.RoleAdmin)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("Status", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)

		rec := serve(CronJobs(CronJobServices{IngestionSyncService: &fakeSync{}}), req, middleware.RoleAdmin)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ingestion":{"sync_enabled":true}}`, rec.Body.String())
	})

	t.Run("Status visível para supervisor", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)

		rec := serve(CronJobs(CronJobServices{IngestionSyncService: &fakeSync{}}), req, middleware.RoleSupervisor)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Supervisor não dispara execução", func(t *testing.T) {
		sync := &fakeSync{started: true}
		req := httptest.NewRequest(http.MethodPost, "/v1/cron/ingestion/run", nil)

		rec := serve(CronJobs(CronJobServices{IngestionSyncService: sync}), req, middleware.RoleSupervisor)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Zero(t, sync.calls)
	})
}

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error {
	return f.err
}

func TestHealthcheck(t *testing.T) {
	rec := serve(Healthcheck(fakePinger{}), httptest.NewRequest(http.MethodGet, "/healthcheck", nil), 0)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(Healthcheck(fakePinger{err: errors.New("down")}), httptest.NewRequest(http.MethodGet, "/healthcheck", nil), 0)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetrics(t *testing.T) {
	rec := serve(Metrics(), httptest.NewRequest(http.MethodGet, "/metrics", nil), 0)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
