package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayLabelLayout é o formato dd-mm usado como chave de junção entre metas e vendas
const DayLabelLayout = "02-01"

// ReportingPeriod representa a janela mensal de apuração e as metas do mês
type ReportingPeriod struct {
	Start              time.Time       `json:"start"`
	End                time.Time       `json:"end"`
	MonthlyRevenueGoal decimal.Decimal `json:"monthly_revenue_goal"`
	MonthlyOrdersGoal  int             `json:"monthly_orders_goal"`
}

// DayLabel formata a data no rótulo dd-mm
func DayLabel(t time.Time) string {
	return t.Format(DayLabelLayout)
}
