package dashboarding

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestRemainingBusinessDays(t *testing.T) {
	tests := []struct {
		name     string
		today    time.Time
		expected int
	}{
		{name: "Último dia do mês", today: time.Date(2025, 8, 31, 10, 0, 0, 0, time.UTC), expected: 0},
		{name: "Sexta antes do fim de semana final", today: time.Date(2025, 8, 29, 9, 0, 0, 0, time.UTC), expected: 0},
		{name: "Meio de agosto", today: time.Date(2025, 8, 15, 9, 0, 0, 0, time.UTC), expected: 10},
		{name: "Meio de outubro", today: time.Date(2025, 10, 15, 23, 59, 0, 0, time.UTC), expected: 12},
		{name: "Fevereiro bissexto", today: time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC), expected: 1},
		{name: "Virada de ano", today: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), expected: 0},
		{name: "Primeiro dia do mês", today: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), expected: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RemainingBusinessDays(tt.today))
		})
	}
}

func TestCalculateSummary_PercentOfGoal(t *testing.T) {
	totals := domain.PeriodTotals{
		TotalRevenue:    decimal.RequireFromString("600000"),
		UniqueCustomers: 250,
		TotalOrders:     300,
	}

	summary := CalculateSummary(totals, augustPeriod(), time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC), nil)

	assert.InDelta(t, 0.4158, summary.PctRevenueAchieved, 0.0001)
	assert.InDelta(t, 300.0/735.0, summary.PctOrdersAchieved, 1e-9)
	assert.Equal(t, 250, summary.UniqueCustomers)
	assert.Equal(t, 10, summary.RemainingBusinessDays)
	assert.True(t, decimal.RequireFromString("84290.946").Equal(summary.DailyRevenueTargetRemaining))
	assert.InDelta(t, 43.5, summary.DailyOrdersTargetRemaining, 1e-9)
}

func TestCalculateSummary_LastDayOfMonthUsesDivisorOne(t *testing.T) {
	totals := domain.PeriodTotals{
		TotalRevenue: decimal.RequireFromString("600000"),
		TotalOrders:  700,
	}

	summary := CalculateSummary(totals, augustPeriod(), time.Date(2025, 8, 31, 18, 0, 0, 0, time.UTC), nil)

	assert.Equal(t, 0, summary.RemainingBusinessDays)
	assert.True(t, decimal.RequireFromString("842909.46").Equal(summary.DailyRevenueTargetRemaining))
	assert.Equal(t, 35.0, summary.DailyOrdersTargetRemaining)
}

func TestCalculateSummary_GoalExceededIsNotClamped(t *testing.T) {
	totals := domain.PeriodTotals{
		TotalRevenue: decimal.RequireFromString("2000000"),
		TotalOrders:  900,
	}

	summary := CalculateSummary(totals, augustPeriod(), time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC), nil)

	assert.Greater(t, summary.PctRevenueAchieved, 1.0)
	assert.Greater(t, summary.PctOrdersAchieved, 1.0)
	assert.True(t, summary.DailyRevenueTargetRemaining.IsNegative())
}

func TestCalculateSummary_ZeroGoals(t *testing.T) {
	period := augustPeriod()
	period.MonthlyRevenueGoal = decimal.Zero
	period.MonthlyOrdersGoal = 0

	summary := CalculateSummary(domain.PeriodTotals{TotalRevenue: decimal.NewFromInt(10), TotalOrders: 1}, period, time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC), nil)

	assert.Equal(t, 0.0, summary.PctRevenueAchieved)
	assert.Equal(t, 0.0, summary.PctOrdersAchieved)
}

func TestCalculateSummary_YesterdayComparisons(t *testing.T) {
	records := Accumulate(MergeSeries(
		[]*domain.DailyGoal{goal(1, 8, "1000", 10), goal(2, 8, "1000", 10), goal(3, 8, "1000", 10)},
		[]*domain.DailyRealized{realized(1, 8, "800", 7), realized(2, 8, "1500", 12), realized(3, 8, "400", 2)},
	))
	totals := domain.PeriodTotals{TotalRevenue: decimal.RequireFromString("2700"), TotalOrders: 21}

	summary := CalculateSummary(totals, augustPeriod(), time.Date(2025, 8, 3, 12, 0, 0, 0, time.UTC), records)

	require.True(t, summary.RevenueDeltaVsGoal.Valid)
	assert.Equal(t, "700", summary.RevenueDeltaVsGoal.Decimal.String()) // 2700 - 2000
	require.NotNil(t, summary.OrdersDeltaVsGoal)
	assert.Equal(t, 1, *summary.OrdersDeltaVsGoal) // 21 - 20

	require.True(t, summary.RevenueSinceYesterday.Valid)
	assert.Equal(t, "400", summary.RevenueSinceYesterday.Decimal.String()) // 2700 - 2300
	require.NotNil(t, summary.OrdersSinceYesterday)
	assert.Equal(t, 2, *summary.OrdersSinceYesterday) // 21 - 19
}

func TestCalculateSummary_NoYesterdayRecord(t *testing.T) {
	records := Accumulate(MergeSeries(augustGoals(30), nil))
	totals := domain.PeriodTotals{TotalRevenue: decimal.RequireFromString("10"), TotalOrders: 1}

	// 1º de agosto: não existe 31-07 na tabela
	summary := CalculateSummary(totals, augustPeriod(), time.Date(2025, 8, 1, 8, 0, 0, 0, time.UTC), records)

	assert.False(t, summary.RevenueDeltaVsGoal.Valid)
	assert.Nil(t, summary.OrdersDeltaVsGoal)
	assert.False(t, summary.RevenueSinceYesterday.Valid)
	assert.Nil(t, summary.OrdersSinceYesterday)
}
