package ingesting

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// SourceColumn identifica o arquivo de origem de cada linha
const SourceColumn = "Arquivo"

var droppedColumns = []string{
	spreadsheet.UnnamedColumn(0),
	spreadsheet.UnnamedColumn(7),
	spreadsheet.UnnamedColumn(8),
}

// Colunas posicionais da exportação de vendas, na ordem id, data, cliente, receita, status
var saleColumns = []string{
	spreadsheet.UnnamedColumn(1),
	spreadsheet.UnnamedColumn(2),
	spreadsheet.UnnamedColumn(3),
	spreadsheet.UnnamedColumn(4),
	spreadsheet.UnnamedColumn(5),
}

var dateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	"2006-01-02T15:04:05",
	"02/01/2006",
	"02/01/2006 15:04:05",
}

// SourceFile é uma planilha lida do bucket
type SourceFile struct {
	Key   string
	Table *spreadsheet.Table
}

// Concat empilha as planilhas alinhando as colunas pelo nome, na ordem em que
// aparecem, e acrescenta a coluna Arquivo. Colunas ausentes em um arquivo ficam vazias.
func Concat(files []SourceFile) *spreadsheet.Table {
	columns := make([]string, 0)
	positions := make(map[string]int)
	addColumn := func(name string) {
		if _, ok := positions[name]; !ok {
			positions[name] = len(columns)
			columns = append(columns, name)
		}
	}

	for _, file := range files {
		for _, column := range file.Table.Columns {
			addColumn(column)
		}
		addColumn(SourceColumn)
	}

	rows := make([][]string, 0)
	for _, file := range files {
		for _, row := range file.Table.Rows {
			out := make([]string, len(columns))
			for i, column := range file.Table.Columns {
				if i < len(row) {
					out[positions[column]] = row[i]
				}
			}
			out[positions[SourceColumn]] = file.Key
			rows = append(rows, out)
		}
	}

	return &spreadsheet.Table{Columns: columns, Rows: rows}
}

func dropColumns(table *spreadsheet.Table, names ...string) *spreadsheet.Table {
	drop := make(map[string]struct{}, len(names))
	for _, name := range names {
		drop[name] = struct{}{}
	}

	keep := make([]int, 0, len(table.Columns))
	columns := make([]string, 0, len(table.Columns))
	for i, column := range table.Columns {
		if _, ok := drop[column]; ok {
			continue
		}
		keep = append(keep, i)
		columns = append(columns, column)
	}

	rows := make([][]string, len(table.Rows))
	for r, row := range table.Rows {
		rows[r] = make([]string, len(keep))
		for j, i := range keep {
			rows[r][j] = row[i]
		}
	}

	return &spreadsheet.Table{Columns: columns, Rows: rows}
}

func dropIncompleteRows(table *spreadsheet.Table) *spreadsheet.Table {
	rows := make([][]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		complete := true
		for _, cell := range row {
			if strings.TrimSpace(cell) == "" {
				complete = false
				break
			}
		}
		if complete {
			rows = append(rows, row)
		}
	}

	return &spreadsheet.Table{Columns: table.Columns, Rows: rows}
}

// Normalize aplica a limpeza da exportação e converte as linhas em vendas
func Normalize(files []SourceFile) ([]*domain.SaleRecord, error) {
	table := dropIncompleteRows(dropColumns(Concat(files), droppedColumns...))

	indexes := make([]int, len(saleColumns))
	for i, column := range saleColumns {
		indexes[i] = table.ColumnIndex(column)
		if indexes[i] < 0 {
			return nil, errors.Wrap(ErrMissingColumn, column)
		}
	}
	source := table.ColumnIndex(SourceColumn)

	records := make([]*domain.SaleRecord, 0, len(table.Rows))
	for r, row := range table.Rows {
		record, err := toSaleRecord(
			row[indexes[0]],
			row[indexes[1]],
			row[indexes[2]],
			row[indexes[3]],
			row[indexes[4]],
		)
		if err != nil {
			return nil, errors.Wrapf(err, "arquivo %s, linha %d", row[source], r+1)
		}
		records = append(records, record)
	}

	return records, nil
}

func toSaleRecord(id, date, customer, revenue, status string) (*domain.SaleRecord, error) {
	parsedID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	parsedRevenue, err := decimal.NewFromString(strings.TrimSpace(revenue))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidRevenue, "%q", revenue)
	}

	return &domain.SaleRecord{
		ID:       parsedID,
		Date:     normalizeDate(date),
		Customer: strings.TrimSpace(customer),
		Revenue:  parsedRevenue,
		Status:   strings.TrimSpace(status),
	}, nil
}

// parseID aceita inteiros e números com casas decimais, truncando a parte fracionária
func parseID(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if id, err := strconv.ParseInt(value, 10, 64); err == nil {
		return id, nil
	}

	number, err := decimal.NewFromString(value)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidID, "%q", value)
	}
	return number.IntPart(), nil
}

// normalizeDate converte números seriais do Excel e datas em texto para YYYY-MM-DD.
// Texto em formato desconhecido é mantido como está.
func normalizeDate(value string) string {
	value = strings.TrimSpace(value)

	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t.Format(time.DateOnly)
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(time.DateOnly)
		}
	}

	return value
}
