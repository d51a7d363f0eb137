package ingesting

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/ingester.go -package=mocks

// Ingester executa o lote de importação das planilhas de vendas
type Ingester interface {
	// Run processa todas as planilhas do bucket e reporta um único status para o lote
	Run(ctx context.Context) *domain.IngestionResult
}
