package domain

import "github.com/shopspring/decimal"

// PeriodSummary reúne os indicadores do período calculados a cada renderização
type PeriodSummary struct {
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	UniqueCustomers int             `json:"unique_customers"`
	TotalOrders     int             `json:"total_orders"`

	MonthlyRevenueGoal decimal.Decimal `json:"monthly_revenue_goal"`
	MonthlyOrdersGoal  int             `json:"monthly_orders_goal"`

	// Razões sem limite superior: acima de 1 significa meta superada
	PctRevenueAchieved float64 `json:"pct_revenue_achieved"`
	PctOrdersAchieved  float64 `json:"pct_orders_achieved"`

	RemainingBusinessDays int `json:"remaining_business_days"`

	DailyRevenueTargetRemaining decimal.Decimal `json:"daily_revenue_target_remaining"`
	DailyOrdersTargetRemaining  float64         `json:"daily_orders_target_remaining"`

	// Comparações com ontem; nulas quando não existe registro do dia anterior
	RevenueDeltaVsGoal    decimal.NullDecimal `json:"revenue_delta_vs_goal"`
	OrdersDeltaVsGoal     *int                `json:"orders_delta_vs_goal"`
	RevenueSinceYesterday decimal.NullDecimal `json:"revenue_since_yesterday"`
	OrdersSinceYesterday  *int                `json:"orders_since_yesterday"`
}
