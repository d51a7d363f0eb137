package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteLabel(t *testing.T) {
	t.Run("Sem rota casada", func(t *testing.T) {
		_, route := WithRouteLabel(context.Background())
		assert.Equal(t, UnmatchedRoute, route())
	})

	t.Run("Template da rota casada", func(t *testing.T) {
		ctx, route := WithRouteLabel(context.Background())
		ObservePath(ctx, "/v1/cron/:type/run")
		assert.Equal(t, "/v1/cron/:type/run", route())
	})

	t.Run("Contexto sem rótulo é ignorado", func(t *testing.T) {
		assert.NotPanics(t, func() { ObservePath(context.Background(), "/v1/dashboard") })
	})
}
