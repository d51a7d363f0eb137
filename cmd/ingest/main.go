// Command ingest executa uma única vez o lote de importação das planilhas do S3
// para o banco de vendas e imprime o status do lote.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/objectstore"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/ingesting"
)

func main() {
	os.Exit(run())
}

// run executa o lote e devolve o código de saída; os defers rodam antes do os.Exit
func run() int {
	logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar configuração")
		return 1
	}

	if level, err := logrus.ParseLevel(cfg.App.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		logrus.WithError(err).Error("Erro ao configurar conexão com PostgreSQL")
		return 1
	}
	defer conn.Close()

	store, err := objectstore.NewS3Store(ctx, cfg.ObjectStorage)
	if err != nil {
		logrus.WithError(err).Error("Erro ao configurar o cliente do S3")
		return 1
	}

	service := ingesting.NewService(store, repository.NewSalesRecordRepository(conn), cfg.ObjectStorage, cfg.Ingestion)
	return execute(ctx, service, os.Stdout)
}

// execute roda um lote, escreve o status em out e devolve 0 apenas em caso de sucesso
func execute(ctx context.Context, ingester ingesting.Ingester, out io.Writer) int {
	result := ingester.Run(ctx)

	if err := jsoniter.NewEncoder(out).Encode(result); err != nil {
		logrus.WithError(err).Error("Erro ao escrever o status do lote")
	}

	if !result.Succeeded() {
		return 1
	}
	return 0
}
