package domain

import "github.com/shopspring/decimal"

// SalesTable é a tabela de vendas do mês alimentada pela ingestão
const SalesTable = "tb_vendas_mes"

// SaleRecord representa uma linha de tb_vendas_mes
type SaleRecord struct {
	ID       int64           `json:"id"`
	Date     string          `json:"data"` // yyyy-mm-dd
	Customer string          `json:"cliente"`
	Revenue  decimal.Decimal `json:"receita"`
	Status   string          `json:"status"`
}

// PeriodTotals é o resultado agregado do período inteiro
type PeriodTotals struct {
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	UniqueCustomers int             `json:"unique_customers"`
	TotalOrders     int             `json:"total_orders"`
}

// IsEmpty indica que a consulta agregada não encontrou vendas no período
func (t *PeriodTotals) IsEmpty() bool {
	return t == nil || t.TotalOrders == 0
}
