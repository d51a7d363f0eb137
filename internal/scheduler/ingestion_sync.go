package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/ingesting"
)

// IngestionSyncConfig representa a configuração do agendador da ingestão de planilhas
type IngestionSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// IngestionSyncService agenda e executa a importação das planilhas de vendas
type IngestionSyncService struct {
	scheduler           *gocron.Scheduler
	config              IngestionSyncConfig
	ingester            ingesting.Ingester
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.IngestionResult
}

func NewIngestionSyncService(ingester ingesting.Ingester, appConfig *config.Config) *IngestionSyncService {
	syncConfig := IngestionSyncConfig{
		CronSchedule: appConfig.IngestionSync.CronSchedule,
		SyncEnabled:  appConfig.IngestionSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de ingestão carregada")

	return &IngestionSyncService{
		scheduler: gocron.NewScheduler(appConfig.Location()),
		config:    syncConfig,
		ingester:  ingester,
	}
}

// Start inicia o agendador
func (s *IngestionSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Ingestão agendada desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de ingestão de planilhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runIngestion(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar ingestão de planilhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de ingestão de planilhas")
		s.scheduler.Stop()
	}()

	return nil
}

// runIngestion executa um lote; execuções concorrentes são ignoradas
func (s *IngestionSyncService) runIngestion(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Ingestão de planilhas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	result := s.ingester.Run(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastResult = result
	s.syncMutex.Unlock()

	if !result.Succeeded() {
		logrus.WithField("run_id", result.RunID).Warn("Ingestão agendada terminou com falha")
	}
}

// TriggerManualSync dispara uma ingestão em segundo plano. Retorna false se já
// existe uma execução em andamento.
func (s *IngestionSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Ingestão de planilhas já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando ingestão manual de planilhas")
	go s.runIngestion(context.Background())
	return true
}

// GetStatus retorna o status atual do agendador
func (s *IngestionSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
	}
}
