package ingesting

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/objectstore"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/metrics"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

type Service struct {
	store      objectstore.ObjectStore
	salesRepo  repository.SalesRecordRepository
	bucket     string
	prefix     string
	fileSuffix string
}

func NewService(
	store objectstore.ObjectStore,
	salesRepo repository.SalesRecordRepository,
	storage config.ObjectStorage,
	ingestion config.Ingestion,
) *Service {
	return &Service{
		store:      store,
		salesRepo:  salesRepo,
		bucket:     storage.Bucket,
		prefix:     storage.Prefix,
		fileSuffix: ingestion.FileSuffix,
	}
}

func (s *Service) Run(ctx context.Context) *domain.IngestionResult {
	runID, err := utils.GenerateID(utils.RunIDLength)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("ingestion: erro ao gerar ID da execução")
	}
	ctx = log.WithRunID(ctx, runID)
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"bucket": s.bucket,
		"prefix": s.prefix,
	})

	result := &domain.IngestionResult{
		RunID:     runID,
		StartedAt: time.Now(),
	}

	files, rows, err := s.ingest(ctx)
	result.Files = files
	result.Rows = rows
	result.FinishedAt = time.Now()

	status := "success"
	if err != nil {
		status = "failed"
		result.StatusCode = http.StatusInternalServerError
		result.Body = domain.IngestionFailureBody
		logger.WithError(err).Error("ingestion: falha ao importar planilhas")
	} else {
		result.StatusCode = http.StatusOK
		result.Body = domain.IngestionSuccessBody
		logger.WithFields(log.Fields{
			"files":    files,
			"rows":     rows,
			"duration": result.FinishedAt.Sub(result.StartedAt).String(),
		}).Info("ingestion: vendas importadas com sucesso")
	}

	metrics.IngestionRunsTotal.WithLabelValues(status).Inc()
	metrics.IngestionRowsTotal.Add(float64(rows))
	metrics.IngestionDuration.Observe(result.FinishedAt.Sub(result.StartedAt).Seconds())

	return result
}

// ingest retorna quantos arquivos foram lidos e quantas vendas foram gravadas
func (s *Service) ingest(ctx context.Context) (int, int, error) {
	logger := log.ForContext(ctx)

	keys, err := s.listSpreadsheets(ctx)
	if err != nil {
		return 0, 0, err
	}

	files := make([]SourceFile, 0, len(keys))
	for _, key := range keys {
		logger.WithField("file", key).Info("ingestion: lendo planilha")

		content, err := s.store.Get(ctx, s.bucket, key)
		if err != nil {
			return len(files), 0, NewIngestionError(err, StageDownload, key)
		}

		table, err := spreadsheet.ReadFirstSheet(content)
		if err != nil {
			return len(files), 0, NewIngestionError(err, StageRead, key)
		}

		files = append(files, SourceFile{Key: key, Table: table})
	}

	records, err := Normalize(files)
	if err != nil {
		return len(files), 0, NewIngestionError(err, StageNormalize, "")
	}

	logger.WithFields(log.Fields{
		"files": len(files),
		"rows":  len(records),
	}).Debug("ingestion: planilhas normalizadas")

	upserted, err := s.salesRepo.UpsertAll(ctx, records)
	if err != nil {
		return len(files), 0, NewIngestionError(err, StageUpsert, "")
	}

	return len(files), upserted, nil
}

func (s *Service) listSpreadsheets(ctx context.Context) ([]string, error) {
	objects, err := s.store.List(ctx, s.bucket, s.prefix)
	if err != nil {
		return nil, NewIngestionError(err, StageList, "")
	}

	keys := make([]string, 0, len(objects))
	for _, key := range objects {
		if strings.HasSuffix(key, s.fileSuffix) {
			keys = append(keys, key)
		}
	}

	if len(keys) == 0 {
		return nil, NewIngestionError(ErrNoSpreadsheets, StageList, "")
	}

	return keys, nil
}
