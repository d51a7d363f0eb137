// Package goals carrega a tabela estática de metas diárias
package goals

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=csv.go -destination=mocks/goals.go -package=mocks

var (
	ErrMissingDayColumn  = errors.New("coluna dia ausente no arquivo de metas")
	ErrMissingGoalColumn = errors.New("colunas de meta ausentes no arquivo de metas")
	ErrDuplicatedDay     = errors.New("dia duplicado no arquivo de metas")
)

type GoalRepository interface {
	LoadGoals(ctx context.Context) ([]*domain.DailyGoal, error)
}

type csvGoalRepository struct {
	path     string
	location *time.Location
}

func NewCSVGoalRepository(path string, location *time.Location) GoalRepository {
	if location == nil {
		location = time.UTC
	}
	return &csvGoalRepository{
		path:     path,
		location: location,
	}
}

// LoadGoals lê o arquivo a cada chamada; nada é mantido em memória entre renderizações
func (r *csvGoalRepository) LoadGoals(ctx context.Context) ([]*domain.DailyGoal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir arquivo de metas %s: %w", r.path, err)
	}
	defer file.Close()

	return ParseGoals(file, r.location)
}

type goalColumns struct {
	day        int
	revenue    int
	orders     int
	cumulative bool
}

func resolveColumns(header []string) (goalColumns, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}

	cols := goalColumns{day: -1, revenue: -1, orders: -1}
	if i, ok := index["dia"]; ok {
		cols.day = i
	} else {
		return cols, ErrMissingDayColumn
	}

	daily := [][2]string{{"receita_meta", "pedidos_meta"}, {"goal_revenue", "goal_orders"}}
	for _, pair := range daily {
		rev, okRev := index[pair[0]]
		ord, okOrd := index[pair[1]]
		if okRev && okOrd {
			cols.revenue, cols.orders = rev, ord
			return cols, nil
		}
	}

	// Exportação da planilha de metas: valores acumulados por dia
	rev, okRev := index["receita_acumulada"]
	ord, okOrd := index["pedidos_acumulado"]
	if okRev && okOrd {
		cols.revenue, cols.orders, cols.cumulative = rev, ord, true
		return cols, nil
	}

	return cols, ErrMissingGoalColumn
}

// ParseGoals converte o CSV em metas diárias ordenadas por dia.
// Quando o arquivo traz metas acumuladas, a meta de cada dia é a diferença para o dia anterior.
func ParseGoals(r io.Reader, location *time.Location) ([]*domain.DailyGoal, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler cabeçalho do arquivo de metas: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	goals := make([]*domain.DailyGoal, 0, 31)
	seen := make(map[string]bool)
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("erro ao ler linha %d do arquivo de metas: %w", line, err)
		}

		day, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(record[cols.day]), location)
		if err != nil {
			return nil, fmt.Errorf("data inválida na linha %d: %w", line, err)
		}

		revenue, err := parseDecimal(record[cols.revenue])
		if err != nil {
			return nil, fmt.Errorf("meta de receita inválida na linha %d: %w", line, err)
		}

		orders, err := parseDecimal(record[cols.orders])
		if err != nil {
			return nil, fmt.Errorf("meta de pedidos inválida na linha %d: %w", line, err)
		}

		label := domain.DayLabel(day)
		if seen[label] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatedDay, label)
		}
		seen[label] = true

		goals = append(goals, &domain.DailyGoal{
			Day:     day,
			Label:   label,
			Revenue: revenue,
			Orders:  int(orders.Round(0).IntPart()),
		})
	}

	sort.SliceStable(goals, func(i, j int) bool {
		return goals[i].Day.Before(goals[j].Day)
	})

	if cols.cumulative {
		fromCumulative(goals)
	}

	return goals, nil
}

func fromCumulative(goals []*domain.DailyGoal) {
	previousRevenue := decimal.Zero
	previousOrders := 0
	for _, goal := range goals {
		cumulativeRevenue, cumulativeOrders := goal.Revenue, goal.Orders
		goal.Revenue = cumulativeRevenue.Sub(previousRevenue)
		goal.Orders = cumulativeOrders - previousOrders
		previousRevenue, previousOrders = cumulativeRevenue, cumulativeOrders
	}
}

func parseDecimal(raw string) (decimal.Decimal, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(value)
}
