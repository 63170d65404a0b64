// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-copilot-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-copilot-api/infrastructure/repository"
	"github.com/vfg2006/ads-copilot-api/internal/config"
	"github.com/vfg2006/ads-copilot-api/internal/domain"
	"github.com/vfg2006/ads-copilot-api/internal/usecases/insighting"
)

type PerformanceSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	// Token de serviço usado fora do contexto de um usuário autenticado
	AccessToken string
}

// PerformanceSyncService calcula e persiste um snapshot diário de
// desempenho por conta de anúncio
type PerformanceSyncService struct {
	scheduler           *gocron.Scheduler
	integrator          meta.Integrator
	insighter           insighting.Insighter
	snapshotRepo        repository.PerformanceSnapshotRepository
	config              PerformanceSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewPerformanceSyncService(
	integrator meta.Integrator,
	insighter insighting.Insighter,
	snapshotRepo repository.PerformanceSnapshotRepository,
	cfg *config.Config,
) *PerformanceSyncService {
	syncConfig := PerformanceSyncConfig{
		CronSchedule: cfg.PerformanceSync.CronSchedule, // Default: 3h da manhã todos os dias
		SyncEnabled:  cfg.PerformanceSync.Enabled,      // Default: desabilitado
		AccessToken:  cfg.Meta.AccessToken,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador de snapshots de desempenho carregada")

	return &PerformanceSyncService{
		scheduler:    scheduler,
		integrator:   integrator,
		insighter:    insighter,
		snapshotRepo: snapshotRepo,
		config:       syncConfig,
	}
}

func (s *PerformanceSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de snapshots de desempenho desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshots de desempenho")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncAccountPerformance(); err != nil {
			logrus.WithError(err).Error("Erro na sincronização de snapshots de desempenho")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots de desempenho: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshots de desempenho")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncAccountPerformance percorre as contas de anúncio acessíveis pelo
// token de serviço e grava o snapshot do dia de cada uma
func (s *PerformanceSyncService) SyncAccountPerformance() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Sincronização de snapshots de desempenho já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de snapshots de desempenho")

	accounts, err := s.integrator.ListAdAccounts(s.config.AccessToken)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar contas de anúncio para snapshots")
		return err
	}

	if len(accounts) == 0 {
		logrus.Info("Nenhuma conta de anúncio acessível pelo token de serviço")
		return nil
	}

	date := time.Now().Format(time.DateOnly)
	var failures int

	for _, account := range accounts {
		performance, err := s.insighter.AccountPerformance(account.ID, s.config.AccessToken)
		if err != nil {
			logrus.WithError(err).WithField("account_id", account.ID).Error("Erro ao calcular desempenho da conta")
			failures++
			continue
		}

		snapshot := &domain.PerformanceSnapshot{
			AccountID:        account.ID,
			Date:             date,
			TotalCampaigns:   performance.TotalCampaigns,
			ActiveCampaigns:  performance.ActiveCampaigns,
			TotalSpend:       performance.TotalSpend,
			TotalImpressions: performance.TotalImpressions,
			TotalClicks:      performance.TotalClicks,
			AvgCTR:           performance.AvgCTR,
			AvgCPC:           performance.AvgCPC,
		}

		if err := s.snapshotRepo.SaveOrUpdateSnapshot(snapshot); err != nil {
			logrus.WithError(err).WithField("account_id", account.ID).Error("Erro ao salvar snapshot de desempenho")
			failures++
			continue
		}

		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"date":       date,
		}).Info("Snapshot de desempenho salvo com sucesso")
	}

	if failures > 0 {
		return fmt.Errorf("sincronização de snapshots concluída com %d falha(s)", failures)
	}

	return nil
}

// TriggerManualSync inicia manualmente uma sincronização de snapshots
func (s *PerformanceSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de snapshots de desempenho")
	go func() {
		if err := s.SyncAccountPerformance(); err != nil {
			logrus.WithError(err).Error("Erro na sincronização manual de snapshots de desempenho")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *PerformanceSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
