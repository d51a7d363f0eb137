package goals

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGoals(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantLabels  []string
		wantRevenue []string
		wantOrders  []int
		wantErr     error
	}{
		{
			name:        "Metas diárias",
			input:       "dia,receita_meta,pedidos_meta\n2025-08-01,1000.50,24\n2025-08-02,1000,25\n",
			wantLabels:  []string{"01-08", "02-08"},
			wantRevenue: []string{"1000.5", "1000"},
			wantOrders:  []int{24, 25},
		},
		{
			name:        "Metas acumuladas são convertidas para metas do dia",
			input:       "dia,receita_acumulada,pedidos_acumulado\n2025-08-01,1000,24\n2025-08-02,2500,60\n2025-08-03,2500,60\n",
			wantLabels:  []string{"01-08", "02-08", "03-08"},
			wantRevenue: []string{"1000", "1500", "0"},
			wantOrders:  []int{24, 36, 0},
		},
		{
			name:        "Linhas fora de ordem são ordenadas por dia",
			input:       "dia,goal_revenue,goal_orders\n2025-08-03,300,3\n2025-08-01,100,1\n",
			wantLabels:  []string{"01-08", "03-08"},
			wantRevenue: []string{"100", "300"},
			wantOrders:  []int{1, 3},
		},
		{
			name:    "Sem coluna dia",
			input:   "data,receita_meta,pedidos_meta\n2025-08-01,1,1\n",
			wantErr: ErrMissingDayColumn,
		},
		{
			name:    "Sem colunas de meta",
			input:   "dia,receita\n2025-08-01,1\n",
			wantErr: ErrMissingGoalColumn,
		},
		{
			name:    "Dia duplicado",
			input:   "dia,receita_meta,pedidos_meta\n2025-08-01,1,1\n2025-08-01,2,2\n",
			wantErr: ErrDuplicatedDay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goals, err := ParseGoals(strings.NewReader(tt.input), time.UTC)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Len(t, goals, len(tt.wantLabels))
			for i, goal := range goals {
				assert.Equal(t, tt.wantLabels[i], goal.Label)
				assert.True(t, decimal.RequireFromString(tt.wantRevenue[i]).Equal(goal.Revenue), "receita do dia %s", goal.Label)
				assert.Equal(t, tt.wantOrders[i], goal.Orders)
			}
		})
	}
}

func TestParseGoals_InvalidDate(t *testing.T) {
	_, err := ParseGoals(strings.NewReader("dia,receita_meta,pedidos_meta\n01/08/2025,1,1\n"), time.UTC)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "linha 2")
}

func TestCSVGoalRepository_LoadGoals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meta_agosto.csv")
	require.NoError(t, os.WriteFile(path, []byte("dia,receita_meta,pedidos_meta\n2025-08-01,1000,24\n"), 0o600))

	repo := NewCSVGoalRepository(path, time.UTC)
	goals, err := repo.LoadGoals(context.Background())

	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "01-08", goals[0].Label)
}

func TestCSVGoalRepository_LoadGoals_MissingFile(t *testing.T) {
	repo := NewCSVGoalRepository(filepath.Join(t.TempDir(), "nao_existe.csv"), nil)

	goals, err := repo.LoadGoals(context.Background())

	assert.Nil(t, goals)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
