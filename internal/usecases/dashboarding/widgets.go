package dashboarding

import (
	"fmt"
	"strconv"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// DashboardTitle retorna o título do painel para o mês do período
func DashboardTitle(period domain.ReportingPeriod) string {
	return fmt.Sprintf("Vendas Mês %s", monthNames[period.Start.Month()-1])
}

// BuildDashboard converte a tabela diária e o resumo nos cards e gráficos do painel
func BuildDashboard(
	period domain.ReportingPeriod,
	today time.Time,
	records []domain.DailyRecord,
	summary domain.PeriodSummary,
) *domain.Dashboard {
	return &domain.Dashboard{
		Title:       DashboardTitle(period),
		Period:      period,
		Today:       today,
		Cards:       buildCards(summary),
		Charts:      buildCharts(records),
		Daily:       records,
		Summary:     summary,
		GeneratedAt: time.Now(),
	}
}

func buildCards(summary domain.PeriodSummary) []domain.MetricCard {
	revenueCard := domain.MetricCard{
		Key:   "receita_total",
		Title: fmt.Sprintf("Receita Total | Meta - %s", utils.FormatCurrency(summary.MonthlyRevenueGoal)),
		Value: utils.FormatCurrency(summary.TotalRevenue),
	}
	if summary.RevenueDeltaVsGoal.Valid {
		revenueCard.Delta = stringPtr(fmt.Sprintf("%s Reais", utils.FormatThousands(summary.RevenueDeltaVsGoal.Decimal)))
	}

	ordersCard := domain.MetricCard{
		Key:   "pedidos_realizados",
		Title: fmt.Sprintf("Pedidos Realizados | Meta - %d Pedidos", summary.MonthlyOrdersGoal),
		Value: strconv.Itoa(summary.TotalOrders),
	}
	if summary.OrdersDeltaVsGoal != nil {
		ordersCard.Delta = stringPtr(fmt.Sprintf("%d Pedidos", *summary.OrdersDeltaVsGoal))
	}

	return []domain.MetricCard{
		revenueCard,
		ordersCard,
		{
			Key:   "clientes_unicos",
			Title: "Clientes Únicos",
			Value: strconv.Itoa(summary.UniqueCustomers),
		},
		{
			Key:      "pct_pedidos_realizados",
			Title:    "Pedidos Realizados",
			Value:    formatPercent(summary.PctOrdersAchieved),
			Progress: float64Ptr(utils.ClampPercent(summary.PctOrdersAchieved)),
		},
		{
			Key:      "pct_receita_realizada",
			Title:    "Receitas Realizadas",
			Value:    formatPercent(summary.PctRevenueAchieved),
			Progress: float64Ptr(utils.ClampPercent(summary.PctRevenueAchieved)),
		},
		{
			Key:   "dias_uteis_restantes",
			Title: "Dias Úteis Restantes",
			Value: strconv.Itoa(summary.RemainingBusinessDays),
		},
		{
			Key:   "meta_pedidos_diaria",
			Title: "Meta Pedidos Diária Atualizada",
			Value: strconv.Itoa(int(summary.DailyOrdersTargetRemaining)),
		},
		{
			Key:   "meta_receita_diaria",
			Title: "Meta Receita Diária Atualizada",
			Value: utils.FormatCurrency(summary.DailyRevenueTargetRemaining),
		},
	}
}

func buildCharts(records []domain.DailyRecord) []domain.Chart {
	labels := make([]string, len(records))
	cumulativeRevenue := make([]float64, len(records))
	cumulativeGoalRevenue := make([]float64, len(records))
	cumulativeOrders := make([]float64, len(records))
	cumulativeGoalOrders := make([]float64, len(records))
	dailyOrders := make([]float64, len(records))
	dailyRevenue := make([]float64, len(records))

	for i, record := range records {
		labels[i] = record.Label
		cumulativeRevenue[i] = record.CumulativeRealizedRevenue.InexactFloat64()
		cumulativeGoalRevenue[i] = record.CumulativeGoalRevenue.InexactFloat64()
		cumulativeOrders[i] = float64(record.CumulativeRealizedOrders)
		cumulativeGoalOrders[i] = float64(record.CumulativeGoalOrders)

		if record.RealizedOrders != nil {
			dailyOrders[i] = float64(*record.RealizedOrders)
		}
		if record.RealizedRevenue.Valid {
			dailyRevenue[i] = record.RealizedRevenue.Decimal.InexactFloat64()
		}
	}

	return []domain.Chart{
		{
			Key:    "receita_acumulada",
			Title:  "Receita acumulada x meta",
			Kind:   domain.ChartKindLine,
			Labels: labels,
			Series: []domain.ChartSeries{
				{Name: "receita_total_acumulada", Values: cumulativeRevenue},
				{Name: "receita_acumulada", Values: cumulativeGoalRevenue},
			},
		},
		{
			Key:    "pedidos_acumulados",
			Title:  "Pedidos acumulados x meta",
			Kind:   domain.ChartKindLine,
			Labels: labels,
			Series: []domain.ChartSeries{
				{Name: "pedidos_total_acumulada", Values: cumulativeOrders},
				{Name: "pedidos_acumulado", Values: cumulativeGoalOrders},
			},
		},
		{
			Key:    "pedidos_por_dia",
			Title:  "Pedidos por dia",
			Kind:   domain.ChartKindBar,
			Labels: labels,
			Series: []domain.ChartSeries{{Name: "pedidos", Values: dailyOrders}},
		},
		{
			Key:    "receita_por_dia",
			Title:  "Receita por dia",
			Kind:   domain.ChartKindLine,
			Labels: labels,
			Series: []domain.ChartSeries{{Name: "receita_total", Values: dailyRevenue}},
		},
	}
}

func formatPercent(ratio float64) string {
	return fmt.Sprintf("%.2f%%", ratio*100)
}

func stringPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}
