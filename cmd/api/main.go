package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/goals"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/objectstore"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/ingesting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	period, err := cfg.ReportingPeriod()
	if err != nil {
		logrus.WithError(err).Fatal("Período de apuração inválido")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	salesRepo := repository.NewSalesRecordRepository(pgConn)
	goalRepo := goals.NewCSVGoalRepository(cfg.Report.GoalsCSVPath, cfg.Location())

	dashboardService := dashboarding.NewService(salesRepo, goalRepo, period)

	store, err := objectstore.NewS3Store(ctx, cfg.ObjectStorage)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o cliente do S3")
	}
	ingestionService := ingesting.NewService(store, salesRepo, cfg.ObjectStorage, cfg.Ingestion)

	authenticator := authenticating.NewService(cfg)

	ingestionSyncService := scheduler.NewIngestionSyncService(ingestionService, cfg)
	if err := ingestionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de ingestão das planilhas")
	} else {
		logrus.Info("Agendador de ingestão das planilhas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		ingestionService,
		authenticator,
		ingestionSyncService,
		pgConn,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn abre o pool do banco de vendas; a indisponibilidade só gera aviso
// porque cada renderização do painel reporta a falha de conexão
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar conexão com PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Warn("PostgreSQL indisponível na inicialização")
		return conn
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
