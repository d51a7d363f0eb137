package dashboarding

import (
	"github.com/shopspring/decimal"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// MergeSeries faz o left join das metas com o realizado pela chave dd-mm.
// Cada meta gera exatamente um registro, na mesma ordem; dias sem venda ficam
// com o realizado ausente e vendas sem meta correspondente são descartadas.
func MergeSeries(goals []*domain.DailyGoal, realized []*domain.DailyRealized) []domain.DailyRecord {
	byLabel := make(map[string]*domain.DailyRealized, len(realized))
	for _, day := range realized {
		if day == nil {
			continue
		}

		// Mesmo dd-mm repetido é somado para preservar uma linha por meta
		if existing, ok := byLabel[day.Label]; ok {
			byLabel[day.Label] = &domain.DailyRealized{
				Day:     existing.Day,
				Label:   existing.Label,
				Revenue: existing.Revenue.Add(day.Revenue),
				Orders:  existing.Orders + day.Orders,
			}
			continue
		}
		byLabel[day.Label] = day
	}

	records := make([]domain.DailyRecord, 0, len(goals))
	for _, goal := range goals {
		if goal == nil {
			continue
		}

		record := domain.DailyRecord{
			Day:         goal.Day,
			Label:       goal.Label,
			GoalRevenue: goal.Revenue,
			GoalOrders:  goal.Orders,
		}

		if day, ok := byLabel[goal.Label]; ok {
			orders := day.Orders
			record.RealizedRevenue = decimal.NewNullDecimal(day.Revenue)
			record.RealizedOrders = &orders
		}

		records = append(records, record)
	}

	return records
}
