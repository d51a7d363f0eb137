package dashboarding

import (
	"github.com/shopspring/decimal"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Accumulate devolve uma cópia dos registros com os acumulados preenchidos.
// A entrada precisa estar em ordem crescente de dia; realizado ausente conta como zero.
func Accumulate(records []domain.DailyRecord) []domain.DailyRecord {
	out := make([]domain.DailyRecord, len(records))

	realizedRevenue := decimal.Zero
	realizedOrders := 0
	goalRevenue := decimal.Zero
	goalOrders := 0

	for i, record := range records {
		if record.RealizedRevenue.Valid {
			realizedRevenue = realizedRevenue.Add(record.RealizedRevenue.Decimal)
		}
		if record.RealizedOrders != nil {
			orders := *record.RealizedOrders
			realizedOrders += orders
			record.RealizedOrders = &orders
		}
		goalRevenue = goalRevenue.Add(record.GoalRevenue)
		goalOrders += record.GoalOrders

		record.CumulativeRealizedRevenue = realizedRevenue
		record.CumulativeRealizedOrders = realizedOrders
		record.CumulativeGoalRevenue = goalRevenue
		record.CumulativeGoalOrders = goalOrders

		out[i] = record
	}

	return out
}
