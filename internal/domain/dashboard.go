package domain

import "time"

// RenderStatus descreve o desfecho de uma renderização do dashboard
type RenderStatus string

const (
	RenderStatusOK                RenderStatus = "ok"
	RenderStatusEmpty             RenderStatus = "empty"
	RenderStatusConnectionFailure RenderStatus = "connection_failure"
	RenderStatusGoalsUnavailable  RenderStatus = "goals_unavailable"
)

type ChartKind string

const (
	ChartKindLine ChartKind = "line"
	ChartKindBar  ChartKind = "bar"
)

// MetricCard é um card de indicador exibido no topo do dashboard
type MetricCard struct {
	Key      string   `json:"key"`
	Title    string   `json:"title"`
	Value    string   `json:"value"`
	Delta    *string  `json:"delta,omitempty"`
	Progress *float64 `json:"progress,omitempty"` // 0-100, limitado apenas para exibição
}

type ChartSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

type Chart struct {
	Key    string        `json:"key"`
	Title  string        `json:"title"`
	Kind   ChartKind     `json:"kind"`
	Labels []string      `json:"labels"`
	Series []ChartSeries `json:"series"`
}

// Dashboard é o conjunto de widgets entregue para a camada de apresentação
type Dashboard struct {
	Title       string          `json:"title"`
	Period      ReportingPeriod `json:"period"`
	Today       time.Time       `json:"today"`
	Cards       []MetricCard    `json:"cards"`
	Charts      []Chart         `json:"charts"`
	Daily       []DailyRecord   `json:"daily"`
	Summary     PeriodSummary   `json:"summary"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// RenderResult distingue sucesso, ausência de dados e falha de conexão
type RenderResult struct {
	Status    RenderStatus `json:"status"`
	Message   string       `json:"message,omitempty"`
	Dashboard *Dashboard   `json:"dashboard,omitempty"`
}
