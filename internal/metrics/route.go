package metrics

import "context"

// UnmatchedRoute rotula requisições que não casaram com nenhuma rota registrada
const UnmatchedRoute = "unmatched"

type routeKey struct{}

type routeLabel struct {
	path string
}

// WithRouteLabel prepara o contexto para receber o template da rota casada.
// A função devolvida lê o template depois que o handler termina.
func WithRouteLabel(ctx context.Context) (context.Context, func() string) {
	label := &routeLabel{path: UnmatchedRoute}
	return context.WithValue(ctx, routeKey{}, label), func() string {
		return label.path
	}
}

// ObservePath registra o template da rota (ex.: /v1/cron/:type/run) que atendeu a requisição
func ObservePath(ctx context.Context, path string) {
	if label, ok := ctx.Value(routeKey{}).(*routeLabel); ok {
		label.path = path
	}
}
