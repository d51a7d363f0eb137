package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyGoal é uma linha da tabela estática de metas diárias
type DailyGoal struct {
	Day     time.Time       `json:"day"`
	Label   string          `json:"label"`
	Revenue decimal.Decimal `json:"goal_revenue"`
	Orders  int             `json:"goal_orders"`
}

// DailyRealized é o realizado de um dia com pelo menos uma venda
type DailyRealized struct {
	Day     time.Time       `json:"day"`
	Label   string          `json:"label"`
	Revenue decimal.Decimal `json:"realized_revenue"`
	Orders  int             `json:"realized_orders"`
}

// DailyRecord é a linha da tabela mesclada (meta + realizado + acumulados).
// RealizedRevenue e RealizedOrders ficam ausentes quando não houve venda no dia.
type DailyRecord struct {
	Day   time.Time `json:"day"`
	Label string    `json:"label"`

	RealizedRevenue decimal.NullDecimal `json:"realized_revenue"`
	RealizedOrders  *int                `json:"realized_orders"`

	GoalRevenue decimal.Decimal `json:"goal_revenue"`
	GoalOrders  int             `json:"goal_orders"`

	CumulativeRealizedRevenue decimal.Decimal `json:"cumulative_realized_revenue"`
	CumulativeRealizedOrders  int             `json:"cumulative_realized_orders"`
	CumulativeGoalRevenue     decimal.Decimal `json:"cumulative_goal_revenue"`
	CumulativeGoalOrders      int             `json:"cumulative_goal_orders"`
}
