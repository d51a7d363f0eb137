package ingesting

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/spreadsheet"
)

func exportColumns(width int) []string {
	columns := make([]string, width)
	for i := range columns {
		columns[i] = spreadsheet.UnnamedColumn(i)
	}
	return columns
}

func TestConcat_AlignsColumnsByName(t *testing.T) {
	files := []SourceFile{
		{Key: "a.xlsx", Table: &spreadsheet.Table{
			Columns: []string{"Unnamed: 0", "Unnamed: 1"},
			Rows:    [][]string{{"x", "1"}},
		}},
		{Key: "b.xlsx", Table: &spreadsheet.Table{
			Columns: []string{"Unnamed: 1", "Unnamed: 2"},
			Rows:    [][]string{{"2", "2025-08-02"}},
		}},
	}

	table := Concat(files)

	assert.Equal(t, []string{"Unnamed: 0", "Unnamed: 1", SourceColumn, "Unnamed: 2"}, table.Columns)
	assert.Equal(t, [][]string{
		{"x", "1", "a.xlsx", ""},
		{"", "2", "b.xlsx", "2025-08-02"},
	}, table.Rows)
}

func TestNormalize(t *testing.T) {
	files := []SourceFile{
		{Key: "vendas/agosto-1.xlsx", Table: &spreadsheet.Table{
			Columns: exportColumns(9),
			Rows: [][]string{
				{"", "101", "45870", "Maria", "150.5", "Faturado", "Loja 1", "", ""},
				{"", "102", "2025-08-02", "João", "99.90", "Faturado", "Loja 1", "nota", "x"},
				{"Total", "", "", "", "250.40", "", "", "", ""},
			},
		}},
		{Key: "vendas/agosto-2.xlsx", Table: &spreadsheet.Table{
			Columns: exportColumns(7),
			Rows: [][]string{
				{"", "103.0", "03/08/2025", " Ana ", "10", "Pendente", "Loja 2"},
				{"", "104", "2025-08-04", "Bia", "20", "Faturado", ""},
			},
		}},
	}

	records, err := Normalize(files)

	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, int64(101), records[0].ID)
	assert.Equal(t, "2025-08-01", records[0].Date)
	assert.Equal(t, "Maria", records[0].Customer)
	assert.True(t, decimal.RequireFromString("150.5").Equal(records[0].Revenue))
	assert.Equal(t, "Faturado", records[0].Status)

	assert.Equal(t, int64(102), records[1].ID)
	assert.Equal(t, "2025-08-02", records[1].Date)

	assert.Equal(t, int64(103), records[2].ID)
	assert.Equal(t, "2025-08-03", records[2].Date)
	assert.Equal(t, "Ana", records[2].Customer)
}

func TestNormalize_Errors(t *testing.T) {
	tests := []struct {
		name    string
		files   []SourceFile
		wantErr error
	}{
		{
			name: "Coluna posicional ausente",
			files: []SourceFile{{Key: "a.xlsx", Table: &spreadsheet.Table{
				Columns: exportColumns(4),
				Rows:    [][]string{{"", "1", "2025-08-01", "Maria"}},
			}}},
			wantErr: ErrMissingColumn,
		},
		{
			name: "Id não numérico",
			files: []SourceFile{{Key: "a.xlsx", Table: &spreadsheet.Table{
				Columns: exportColumns(6),
				Rows:    [][]string{{"", "abc", "2025-08-01", "Maria", "10", "Faturado"}},
			}}},
			wantErr: ErrInvalidID,
		},
		{
			name: "Receita inválida",
			files: []SourceFile{{Key: "a.xlsx", Table: &spreadsheet.Table{
				Columns: exportColumns(6),
				Rows:    [][]string{{"", "1", "2025-08-01", "Maria", "R$ 10,00", "Faturado"}},
			}}},
			wantErr: ErrInvalidRevenue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Normalize(tt.files)

			assert.Nil(t, records)
			assert.True(t, errors.Is(err, tt.wantErr), "erro inesperado: %v", err)
		})
	}
}

func TestNormalize_ErrorMentionsSourceFile(t *testing.T) {
	files := []SourceFile{{Key: "vendas/ruim.xlsx", Table: &spreadsheet.Table{
		Columns: exportColumns(6),
		Rows:    [][]string{{"", "x1", "2025-08-01", "Maria", "10", "Faturado"}},
	}}}

	_, err := Normalize(files)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "vendas/ruim.xlsx")
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "45870", expected: "2025-08-01"},
		{input: "45870.5", expected: "2025-08-01"},
		{input: "2025-08-15", expected: "2025-08-15"},
		{input: "2025-08-15 00:00:00", expected: "2025-08-15"},
		{input: "15/08/2025", expected: "2025-08-15"},
		{input: "agosto", expected: "agosto"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeDate(tt.input))
		})
	}
}
