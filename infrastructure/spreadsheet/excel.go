// Package spreadsheet lê a primeira aba das planilhas exportadas de vendas
package spreadsheet

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// UnnamedColumn é o nome dado às colunas de uma planilha sem cabeçalho
func UnnamedColumn(index int) string {
	return fmt.Sprintf("Unnamed: %d", index)
}

// Table é uma aba lida como colunas nomeadas e linhas de texto.
// Toda linha tem exatamente len(Columns) células; células ausentes ficam vazias.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex retorna a posição da coluna ou -1
func (t *Table) ColumnIndex(name string) int {
	for i, column := range t.Columns {
		if column == name {
			return i
		}
	}
	return -1
}

// ReadFirstSheet lê a primeira aba do arquivo xlsx. A primeira linha não vazia é
// o cabeçalho; células de cabeçalho vazias viram "Unnamed: i" pela posição e
// nomes repetidos ganham o sufixo ".n".
func ReadFirstSheet(content []byte) (*Table, error) {
	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir planilha: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("planilha sem abas")
	}

	rows, err := file.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("erro ao ler aba %s: %w", sheets[0], err)
	}

	rows = skipBlankRows(rows)

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	table := &Table{
		Columns: make([]string, width),
		Rows:    make([][]string, 0, max(len(rows)-1, 0)),
	}
	if len(rows) == 0 {
		return table, nil
	}

	header := rows[0]
	used := make(map[string]bool, width)
	for i := range table.Columns {
		name := ""
		if i < len(header) {
			name = strings.TrimSpace(header[i])
		}
		if name == "" {
			name = UnnamedColumn(i)
		}
		name = dedupe(name, used)
		used[name] = true
		table.Columns[i] = name
	}

	for _, row := range rows[1:] {
		padded := make([]string, width)
		copy(padded, row)
		table.Rows = append(table.Rows, padded)
	}

	return table, nil
}

// skipBlankRows descarta as linhas vazias antes do cabeçalho
func skipBlankRows(rows [][]string) [][]string {
	for i, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				return rows[i:]
			}
		}
	}
	return nil
}

func dedupe(name string, used map[string]bool) string {
	if !used[name] {
		return name
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s.%d", name, n)
		if !used[candidate] {
			return candidate
		}
	}
}
