package ingesting

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrNoSpreadsheets = errors.New("nenhuma planilha encontrada no bucket")
	ErrMissingColumn  = errors.New("coluna obrigatória ausente")
	ErrInvalidID      = errors.New("id inválido")
	ErrInvalidRevenue = errors.New("receita inválida")
)

// Etapas do lote em que um erro pode ocorrer
const (
	StageList      = "list"
	StageDownload  = "download"
	StageRead      = "read"
	StageNormalize = "normalize"
	StageUpsert    = "upsert"
)

// IngestionError é um erro com contexto da etapa e do arquivo envolvido
type IngestionError struct {
	Err   error  // Erro base
	Stage string // Etapa do lote
	Key   string // Chave do arquivo no bucket (quando aplicável)
}

func (e *IngestionError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("ingestão falhou na etapa %s (%s): %s", e.Stage, e.Key, e.Err.Error())
	}
	return fmt.Sprintf("ingestão falhou na etapa %s: %s", e.Stage, e.Err.Error())
}

// Unwrap retorna o erro subjacente
func (e *IngestionError) Unwrap() error {
	return e.Err
}

func NewIngestionError(err error, stage string, key string) *IngestionError {
	return &IngestionError{
		Err:   err,
		Stage: stage,
		Key:   key,
	}
}
