// Package metrics expõe os indicadores Prometheus da API de vendas
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sales_dashboard"

var (
	// DashboardRendersTotal conta renderizações por status (ok, empty, connection_failure, goals_unavailable)
	DashboardRendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Total de renderizações do dashboard",
		},
		[]string{"status"},
	)

	DashboardRenderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Tempo de renderização do dashboard (segundos)",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)
)

var (
	IngestionRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingestion_runs_total",
			Help:      "Total de execuções da ingestão de planilhas",
		},
		[]string{"status"}, // success, failed
	)

	IngestionRowsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingestion_rows_total",
			Help:      "Total de vendas gravadas pela ingestão",
		},
	)

	IngestionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ingestion_duration_seconds",
			Help:      "Tempo de execução da ingestão (segundos)",
			Buckets:   []float64{0.5, 1, 5, 10, 30, 60, 120, 300},
		},
	)
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de requisições HTTP atendidas",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Tempo de resposta das requisições HTTP (segundos)",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)
