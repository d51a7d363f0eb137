package dashboarding

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func day(d, m int) time.Time {
	return time.Date(2025, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func goal(d, m int, revenue string, orders int) *domain.DailyGoal {
	return &domain.DailyGoal{
		Day:     day(d, m),
		Label:   domain.DayLabel(day(d, m)),
		Revenue: decimal.RequireFromString(revenue),
		Orders:  orders,
	}
}

func realized(d, m int, revenue string, orders int) *domain.DailyRealized {
	return &domain.DailyRealized{
		Day:     day(d, m),
		Label:   domain.DayLabel(day(d, m)),
		Revenue: decimal.RequireFromString(revenue),
		Orders:  orders,
	}
}

// augustGoals monta metas iguais a partir de 01-08
func augustGoals(days int) []*domain.DailyGoal {
	goals := make([]*domain.DailyGoal, 0, days)
	for d := 1; d <= days; d++ {
		goals = append(goals, goal(d, 8, "1000", 24))
	}
	return goals
}

func augustPeriod() domain.ReportingPeriod {
	return domain.ReportingPeriod{
		Start:              day(1, 8),
		End:                day(31, 8),
		MonthlyRevenueGoal: decimal.RequireFromString("1442909.46"),
		MonthlyOrdersGoal:  735,
	}
}

func intPtr(i int) *int {
	return &i
}
