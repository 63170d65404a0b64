package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metamocks "github.com/vfg2006/ads-copilot-api/infrastructure/integrator/meta/mocks"
	repomocks "github.com/vfg2006/ads-copilot-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-copilot-api/internal/config"
	"github.com/vfg2006/ads-copilot-api/internal/domain"
	"github.com/vfg2006/ads-copilot-api/internal/usecases/insighting"
	"go.uber.org/mock/gomock"
)

func newSyncService(t *testing.T) (*PerformanceSyncService, *metamocks.MockIntegrator, *repomocks.MockPerformanceSnapshotRepository) {
	ctrl := gomock.NewController(t)
	integrator := metamocks.NewMockIntegrator(ctrl)
	snapshotRepo := repomocks.NewMockPerformanceSnapshotRepository(ctrl)

	cfg := &config.Config{}
	cfg.PerformanceSync.CronSchedule = "0 3 * * *"
	cfg.PerformanceSync.Enabled = false
	cfg.Meta.AccessToken = "service-token"

	insighter := insighting.NewService(integrator, snapshotRepo)
	service := NewPerformanceSyncService(integrator, insighter, snapshotRepo, cfg)
	return service, integrator, snapshotRepo
}

func TestSyncAccountPerformance(t *testing.T) {
	t.Run("grava um snapshot por conta", func(t *testing.T) {
		service, integrator, snapshotRepo := newSyncService(t)

		integrator.EXPECT().ListAdAccounts("service-token").Return([]domain.AdAccount{
			{ID: "act_1", Name: "Conta 1"},
			{ID: "act_2", Name: "Conta 2"},
		}, nil)

		campaigns := []domain.Campaign{
			{ID: "c1", Status: domain.StatusActive, Spend: 2450, Impressions: 125000, Clicks: 3200, CTR: 2.56, CPC: 0.77},
			{ID: "c2", Status: domain.StatusPaused, Spend: 1890, Impressions: 89000, Clicks: 1200, CTR: 1.35, CPC: 1.58},
		}
		integrator.EXPECT().ListCampaigns("act_1", "service-token").Return(campaigns, nil)
		integrator.EXPECT().ListCampaigns("act_2", "service-token").Return([]domain.Campaign{}, nil)

		var saved []*domain.PerformanceSnapshot
		snapshotRepo.EXPECT().SaveOrUpdateSnapshot(gomock.Any()).Times(2).DoAndReturn(func(s *domain.PerformanceSnapshot) error {
			saved = append(saved, s)
			return nil
		})

		err := service.SyncAccountPerformance()
		require.NoError(t, err)
		require.Len(t, saved, 2)

		assert.Equal(t, "act_1", saved[0].AccountID)
		assert.Equal(t, 2, saved[0].TotalCampaigns)
		assert.Equal(t, 1, saved[0].ActiveCampaigns)
		assert.Equal(t, int64(4340), saved[0].TotalSpend)
		assert.NotEmpty(t, saved[0].Date)

		// Conta sem campanhas ainda gera snapshot zerado
		assert.Equal(t, "act_2", saved[1].AccountID)
		assert.Zero(t, saved[1].TotalCampaigns)
	})

	t.Run("falha em uma conta não impede as demais", func(t *testing.T) {
		service, integrator, snapshotRepo := newSyncService(t)

		integrator.EXPECT().ListAdAccounts("service-token").Return([]domain.AdAccount{
			{ID: "act_1"},
			{ID: "act_2"},
		}, nil)
		integrator.EXPECT().ListCampaigns("act_1", "service-token").Return([]domain.Campaign{}, nil)
		integrator.EXPECT().ListCampaigns("act_2", "service-token").Return([]domain.Campaign{}, nil)

		snapshotRepo.EXPECT().SaveOrUpdateSnapshot(gomock.Any()).Return(errors.New("constraint violation"))
		snapshotRepo.EXPECT().SaveOrUpdateSnapshot(gomock.Any()).Return(nil)

		err := service.SyncAccountPerformance()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 falha")
	})

	t.Run("nenhuma conta acessível encerra sem erro", func(t *testing.T) {
		service, integrator, _ := newSyncService(t)

		integrator.EXPECT().ListAdAccounts("service-token").Return([]domain.AdAccount{}, nil)

		err := service.SyncAccountPerformance()
		assert.NoError(t, err)
	})
}

func TestGetStatus(t *testing.T) {
	service, _, _ := newSyncService(t)

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, false, status["sync_running"])
}
