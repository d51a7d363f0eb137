package dashboarding

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// RemainingBusinessDays conta os dias de segunda a sexta depois de hoje até o
// último dia do mês, inclusive. No último dia do mês o resultado é zero.
func RemainingBusinessDays(today time.Time) int {
	year, month, day := today.Date()
	loc := today.Location()
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()

	count := 0
	for d := day + 1; d <= lastDay; d++ {
		switch time.Date(year, month, d, 12, 0, 0, 0, loc).Weekday() {
		case time.Saturday, time.Sunday:
		default:
			count++
		}
	}

	return count
}

func businessDaysDivisor(remaining int) int {
	if remaining < 1 {
		return 1
	}
	return remaining
}

func ratio(value, goal decimal.Decimal) float64 {
	if goal.IsZero() {
		return 0
	}
	return value.Div(goal).InexactFloat64()
}

// CalculateSummary monta os indicadores do período a partir dos totais agregados,
// das metas mensais e da data de hoje. As comparações com ontem só são preenchidas
// quando existe registro para o dia anterior.
func CalculateSummary(
	totals domain.PeriodTotals,
	period domain.ReportingPeriod,
	today time.Time,
	records []domain.DailyRecord,
) domain.PeriodSummary {
	remaining := RemainingBusinessDays(today)
	divisor := businessDaysDivisor(remaining)
	monthlyOrdersGoal := decimal.NewFromInt(int64(period.MonthlyOrdersGoal))

	summary := domain.PeriodSummary{
		TotalRevenue:          totals.TotalRevenue,
		UniqueCustomers:       totals.UniqueCustomers,
		TotalOrders:           totals.TotalOrders,
		MonthlyRevenueGoal:    period.MonthlyRevenueGoal,
		MonthlyOrdersGoal:     period.MonthlyOrdersGoal,
		PctRevenueAchieved:    ratio(totals.TotalRevenue, period.MonthlyRevenueGoal),
		PctOrdersAchieved:     ratio(decimal.NewFromInt(int64(totals.TotalOrders)), monthlyOrdersGoal),
		RemainingBusinessDays: remaining,
		DailyRevenueTargetRemaining: period.MonthlyRevenueGoal.
			Sub(totals.TotalRevenue).
			Div(decimal.NewFromInt(int64(divisor))),
		DailyOrdersTargetRemaining: float64(period.MonthlyOrdersGoal-totals.TotalOrders) / float64(divisor),
	}

	yesterday, ok := findDay(records, today.AddDate(0, 0, -1))
	if !ok {
		return summary
	}

	summary.RevenueDeltaVsGoal = decimal.NewNullDecimal(totals.TotalRevenue.Sub(yesterday.CumulativeGoalRevenue))
	summary.RevenueSinceYesterday = decimal.NewNullDecimal(totals.TotalRevenue.Sub(yesterday.CumulativeRealizedRevenue))

	ordersVsGoal := totals.TotalOrders - yesterday.CumulativeGoalOrders
	ordersSinceYesterday := totals.TotalOrders - yesterday.CumulativeRealizedOrders
	summary.OrdersDeltaVsGoal = &ordersVsGoal
	summary.OrdersSinceYesterday = &ordersSinceYesterday

	return summary
}

func findDay(records []domain.DailyRecord, day time.Time) (domain.DailyRecord, bool) {
	label := domain.DayLabel(day)
	for _, record := range records {
		if record.Label == label {
			return record, true
		}
	}
	return domain.DailyRecord{}, false
}
