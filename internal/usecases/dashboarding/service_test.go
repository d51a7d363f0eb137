package dashboarding

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	goalsMocks "github.com/vfg2006/sales-dashboard-api/infrastructure/goals/mocks"
	repoMocks "github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestService_Render(t *testing.T) {
	today := time.Date(2025, 8, 3, 10, 0, 0, 0, time.UTC)
	period := augustPeriod()

	tests := []struct {
		name     string
		setup    func(sales *repoMocks.MockSalesRecordRepository, goals *goalsMocks.MockGoalRepository)
		validate func(t *testing.T, result *domain.RenderResult)
	}{
		{
			name: "Painel calculado com sucesso",
			setup: func(sales *repoMocks.MockSalesRecordRepository, goals *goalsMocks.MockGoalRepository) {
				sales.EXPECT().GetPeriodTotals(gomock.Any(), period.Start, period.End).
					Return(&domain.PeriodTotals{TotalRevenue: decimal.RequireFromString("2700"), UniqueCustomers: 15, TotalOrders: 21}, nil)
				sales.EXPECT().GetDailyRealized(gomock.Any(), period.Start, period.End).
					Return([]*domain.DailyRealized{realized(1, 8, "800", 7), realized(2, 8, "1500", 12), realized(3, 8, "400", 2)}, nil)
				goals.EXPECT().LoadGoals(gomock.Any()).
					Return(augustGoals(31), nil)
			},
			validate: func(t *testing.T, result *domain.RenderResult) {
				assert.Equal(t, domain.RenderStatusOK, result.Status)
				assert.Empty(t, result.Message)
				require.NotNil(t, result.Dashboard)
				assert.Len(t, result.Dashboard.Daily, 31)
				assert.Len(t, result.Dashboard.Cards, 8)
				assert.Len(t, result.Dashboard.Charts, 4)
				assert.Equal(t, 21, result.Dashboard.Summary.TotalOrders)
				assert.Equal(t, 19, result.Dashboard.Daily[1].CumulativeRealizedOrders)
				require.True(t, result.Dashboard.Summary.RevenueSinceYesterday.Valid)
				assert.Equal(t, "400", result.Dashboard.Summary.RevenueSinceYesterday.Decimal.String())
			},
		},
		{
			name: "Falha ao consultar totais",
			setup: func(sales *repoMocks.MockSalesRecordRepository, goals *goalsMocks.MockGoalRepository) {
				sales.EXPECT().GetPeriodTotals(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, result *domain.RenderResult) {
				assert.Equal(t, domain.RenderStatusConnectionFailure, result.Status)
				assert.Equal(t, MessageConnectionFailure, result.Message)
				assert.Nil(t, result.Dashboard)
			},
		},
		{
			name: "Falha ao consultar vendas por dia",
			setup: func(sales *repoMocks.MockSalesRecordRepository, goals *goalsMocks.MockGoalRepository) {
				sales.EXPECT().GetPeriodTotals(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.PeriodTotals{TotalOrders: 1}, nil)
				sales.EXPECT().GetDailyRealized(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, result *domain.RenderResult) {
				assert.Equal(t, domain.RenderStatusConnectionFailure, result.Status)
				assert.Nil(t, result.Dashboard)
			},
		},
		{
			name: "Período sem vendas",
			setup: func(sales *repoMocks.MockSalesRecordRepository, goals *goalsMocks.MockGoalRepository) {
				sales.EXPECT().GetPeriodTotals(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.PeriodTotals{TotalRevenue: decimal.Zero}, nil)
				sales.EXPECT().GetDailyRealized(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]*domain.DailyRealized{}, nil)
			},
			validate: func(t *testing.T, result *domain.RenderResult) {
				assert.Equal(t, domain.RenderStatusEmpty, result.Status)
				assert.Equal(t, MessageNoData, result.Message)
				assert.Nil(t, result.Dashboard)
			},
		},
		{
			name: "Metas indisponíveis",
			setup: func(sales *repoMocks.MockSalesRecordRepository, goals *goalsMocks.MockGoalRepository) {
				sales.EXPECT().GetPeriodTotals(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.PeriodTotals{TotalRevenue: decimal.NewFromInt(10), TotalOrders: 1}, nil)
				sales.EXPECT().GetDailyRealized(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]*domain.DailyRealized{realized(1, 8, "10", 1)}, nil)
				goals.EXPECT().LoadGoals(gomock.Any()).
					Return(nil, errors.New("arquivo não encontrado"))
			},
			validate: func(t *testing.T, result *domain.RenderResult) {
				assert.Equal(t, domain.RenderStatusGoalsUnavailable, result.Status)
				assert.Equal(t, MessageGoalsUnavailable, result.Message)
			},
		},
		{
			name: "Tabela de metas vazia",
			setup: func(sales *repoMocks.MockSalesRecordRepository, goals *goalsMocks.MockGoalRepository) {
				sales.EXPECT().GetPeriodTotals(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.PeriodTotals{TotalRevenue: decimal.NewFromInt(10), TotalOrders: 1}, nil)
				sales.EXPECT().GetDailyRealized(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]*domain.DailyRealized{realized(1, 8, "10", 1)}, nil)
				goals.EXPECT().LoadGoals(gomock.Any()).
					Return([]*domain.DailyGoal{}, nil)
			},
			validate: func(t *testing.T, result *domain.RenderResult) {
				assert.Equal(t, domain.RenderStatusEmpty, result.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sales := repoMocks.NewMockSalesRecordRepository(ctrl)
			goals := goalsMocks.NewMockGoalRepository(ctrl)
			tt.setup(sales, goals)

			service := NewService(sales, goals, period)
			tt.validate(t, service.Render(context.Background(), today))
		})
	}
}
