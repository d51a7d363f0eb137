package dashboarding

import (
	"context"
	"time"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/goals"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/metrics"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

type Service struct {
	salesRepo repository.SalesRecordRepository
	goalRepo  goals.GoalRepository
	period    domain.ReportingPeriod
}

func NewService(
	salesRepo repository.SalesRecordRepository,
	goalRepo goals.GoalRepository,
	period domain.ReportingPeriod,
) *Service {
	return &Service{
		salesRepo: salesRepo,
		goalRepo:  goalRepo,
		period:    period,
	}
}

func (s *Service) Render(ctx context.Context, today time.Time) *domain.RenderResult {
	startTime := time.Now()
	result := s.render(ctx, today)

	metrics.DashboardRendersTotal.WithLabelValues(string(result.Status)).Inc()
	metrics.DashboardRenderDuration.Observe(time.Since(startTime).Seconds())

	return result
}

func (s *Service) render(ctx context.Context, today time.Time) *domain.RenderResult {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"period_start": s.period.Start.Format(time.DateOnly),
		"period_end":   s.period.End.Format(time.DateOnly),
		"today":        today.Format(time.DateOnly),
	})

	totals, err := s.salesRepo.GetPeriodTotals(ctx, s.period.Start, s.period.End)
	if err != nil {
		logger.WithError(err).Error("dashboard: erro ao consultar totais do período")
		return failure(domain.RenderStatusConnectionFailure, MessageConnectionFailure)
	}

	realized, err := s.salesRepo.GetDailyRealized(ctx, s.period.Start, s.period.End)
	if err != nil {
		logger.WithError(err).Error("dashboard: erro ao consultar vendas por dia")
		return failure(domain.RenderStatusConnectionFailure, MessageConnectionFailure)
	}

	if totals.IsEmpty() || len(realized) == 0 {
		logger.Warn("dashboard: nenhuma venda encontrada no período")
		return failure(domain.RenderStatusEmpty, MessageNoData)
	}

	dailyGoals, err := s.goalRepo.LoadGoals(ctx)
	if err != nil {
		logger.WithError(err).Error("dashboard: erro ao carregar metas diárias")
		return failure(domain.RenderStatusGoalsUnavailable, MessageGoalsUnavailable)
	}

	if len(dailyGoals) == 0 {
		logger.Warn("dashboard: tabela de metas vazia")
		return failure(domain.RenderStatusEmpty, MessageNoData)
	}

	records := Accumulate(MergeSeries(dailyGoals, realized))
	summary := CalculateSummary(*totals, s.period, today, records)

	logger.WithFields(log.Fields{
		"days":              len(records),
		"days_with_sales":   len(realized),
		"total_orders":      summary.TotalOrders,
		"remaining_bdays":   summary.RemainingBusinessDays,
		"revenue_delta_set": summary.RevenueDeltaVsGoal.Valid,
	}).Info("dashboard: painel calculado com sucesso")

	return &domain.RenderResult{
		Status:    domain.RenderStatusOK,
		Dashboard: BuildDashboard(s.period, today, records, summary),
	}
}

func failure(status domain.RenderStatus, message string) *domain.RenderResult {
	return &domain.RenderResult{
		Status:  status,
		Message: message,
	}
}
