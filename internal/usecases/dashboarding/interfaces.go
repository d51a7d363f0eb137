package dashboarding

import (
	"context"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/dashboarder.go -package=mocks

// Dashboarder define a renderização do painel de vendas
type Dashboarder interface {
	// Render recalcula o painel do zero para a data informada; nunca devolve erro,
	// o desfecho fica em RenderResult.Status
	Render(ctx context.Context, today time.Time) *domain.RenderResult
}
