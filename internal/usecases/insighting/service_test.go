package insighting_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metamocks "github.com/vfg2006/ads-copilot-api/infrastructure/integrator/meta/mocks"
	repomocks "github.com/vfg2006/ads-copilot-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-copilot-api/internal/domain"
	"github.com/vfg2006/ads-copilot-api/internal/usecases/insighting"
	"go.uber.org/mock/gomock"
)

var testCampaigns = []domain.Campaign{
	{
		ID: "c1", Name: "Summer Sale 2024", Status: domain.StatusActive,
		DailyBudget: 10000, Spend: 2450, Impressions: 125000, Clicks: 3200,
		CTR: 2.56, CPC: 0.77,
	},
	{
		ID: "c2", Name: "Brand Awareness Q1", Status: domain.StatusPaused,
		DailyBudget: 5000, Spend: 1890, Impressions: 89000, Clicks: 1200,
		CTR: 1.35, CPC: 1.58,
	},
	{
		ID: "c3", Name: "Lead Generation", Status: domain.StatusActive,
		DailyBudget: 7500, Spend: 3200, Impressions: 156000, Clicks: 4100,
		CTR: 2.63, CPC: 0.78,
	},
}

func newService(t *testing.T) (insighting.Insighter, *metamocks.MockIntegrator, *repomocks.MockPerformanceSnapshotRepository) {
	ctrl := gomock.NewController(t)
	integrator := metamocks.NewMockIntegrator(ctrl)
	snapshotRepo := repomocks.NewMockPerformanceSnapshotRepository(ctrl)
	return insighting.NewService(integrator, snapshotRepo), integrator, snapshotRepo
}

func TestSummarizeCampaigns(t *testing.T) {
	service, _, _ := newService(t)

	t.Run("agrega métricas e conta campanhas ativas", func(t *testing.T) {
		summary := service.SummarizeCampaigns(testCampaigns)

		assert.Equal(t, 3, summary.TotalCampaigns)
		assert.Equal(t, 2, summary.ActiveCampaigns)
		assert.Equal(t, int64(7540), summary.TotalSpend)
		assert.Equal(t, int64(370000), summary.TotalImpressions)
		assert.Equal(t, int64(8500), summary.TotalClicks)
		assert.InDelta(t, 2.18, summary.AvgCTR, 0.01)
		assert.InDelta(t, 1.04, summary.AvgCPC, 0.01)
	})

	t.Run("lista vazia produz resumo zerado", func(t *testing.T) {
		summary := service.SummarizeCampaigns(nil)

		assert.Equal(t, 0, summary.TotalCampaigns)
		assert.Zero(t, summary.AvgCTR)
		assert.Zero(t, summary.AvgCPC)
	})
}

func TestRecommend(t *testing.T) {
	service, _, _ := newService(t)

	t.Run("CTR baixo e gasto alto podem disparar juntos", func(t *testing.T) {
		campaigns := []domain.Campaign{
			{ID: "c1", Name: "Queima de estoque", Status: domain.StatusActive, CTR: 1.1, Spend: 250000},
		}

		recs := service.Recommend(campaigns)
		require.Len(t, recs, 2)
		assert.Equal(t, domain.RecommendationLowCTR, recs[0].Kind)
		assert.Equal(t, domain.RecommendationSpendReview, recs[1].Kind)
	})

	t.Run("gasto acima de 2000 centavos dispara revisão", func(t *testing.T) {
		campaigns := []domain.Campaign{
			{ID: "c1", Name: "Summer Sale 2024", Status: domain.StatusActive, CTR: 2.56, Spend: 2450},
		}

		recs := service.Recommend(campaigns)
		require.Len(t, recs, 1)
		assert.Equal(t, domain.RecommendationSpendReview, recs[0].Kind)
	})

	t.Run("gasto alto em campanha pausada não dispara revisão", func(t *testing.T) {
		campaigns := []domain.Campaign{
			{ID: "c2", Name: "Pausada", Status: domain.StatusPaused, CTR: 2.0, Spend: 500000},
		}

		recs := service.Recommend(campaigns)
		assert.Empty(t, recs)
	})

	t.Run("preserva a ordem das campanhas", func(t *testing.T) {
		recs := service.Recommend(testCampaigns)

		// Apenas a segunda campanha tem CTR < 1.5; primeira e terceira
		// disparam revisão de gasto
		require.Len(t, recs, 3)
		assert.Equal(t, "c1", recs[0].CampaignID)
		assert.Equal(t, domain.RecommendationSpendReview, recs[0].Kind)
		assert.Equal(t, "c2", recs[1].CampaignID)
		assert.Equal(t, domain.RecommendationLowCTR, recs[1].Kind)
		assert.Equal(t, "c3", recs[2].CampaignID)
		assert.Equal(t, domain.RecommendationSpendReview, recs[2].Kind)
	})
}

func TestGenerateStrategies(t *testing.T) {
	t.Run("só campanhas ativas, na ordem da plataforma", func(t *testing.T) {
		service, integrator, _ := newService(t)

		integrator.EXPECT().ListCampaigns("act_1", "token").Return(testCampaigns, nil)
		integrator.EXPECT().GetInsights("c1", "token", gomock.Any()).Return([]domain.Insight{
			{Date: "2024-01-05", Spend: 14000, Impressions: 7100, Clicks: 185, CTR: 2.61, CPC: 0.76, Reach: 5600},
		}, nil)
		integrator.EXPECT().GetInsights("c3", "token", gomock.Any()).Return([]domain.Insight{}, nil)

		strategies, err := service.GenerateStrategies("act_1", "token")
		require.NoError(t, err)
		require.Len(t, strategies, 2)

		assert.Equal(t, "c1", strategies[0].CampaignID)
		assert.Equal(t, "c3", strategies[1].CampaignID)
		assert.Equal(t, "act_1", strategies[0].AccountID)
		assert.NotEmpty(t, strategies[0].ID)
		assert.NotEqual(t, strategies[0].ID, strategies[1].ID)
	})

	t.Run("ações derivadas do insight mais recente", func(t *testing.T) {
		service, integrator, _ := newService(t)

		integrator.EXPECT().ListCampaigns("act_1", "token").Return([]domain.Campaign{
			{ID: "c9", Name: "Sem tração", Status: domain.StatusActive, DailyBudget: 10000},
		}, nil)
		integrator.EXPECT().GetInsights("c9", "token", gomock.Any()).Return([]domain.Insight{
			{Date: "2024-01-04", CTR: 2.5, CPC: 0.9, Reach: 20000},
			{Date: "2024-01-05", CTR: 0.8, CPC: 2.4, Reach: 4000},
		}, nil)

		strategies, err := service.GenerateStrategies("act_1", "token")
		require.NoError(t, err)
		require.Len(t, strategies, 1)

		actions := strategies[0].Actions
		assert.True(t, actions.PauseLowPerforming, "ctr 0.8 < 1.0")
		assert.False(t, actions.IncreaseBudget)
		assert.True(t, actions.AdjustBidding, "cpc 2.4 > 2.0")
		assert.True(t, actions.ExpandAudience, "alcance 4000 < 10000")

		rules := strategies[0].Rules
		assert.Equal(t, 1.0, rules.MinCTR)
		assert.Equal(t, 2.0, rules.MaxCPC)
		assert.Equal(t, 15.0, rules.TargetCPM)
		assert.Equal(t, 80.0, rules.BudgetThreshold)
	})

	t.Run("alcance zerado no insight ainda sugere expansão", func(t *testing.T) {
		strategy := insighting.BuildStrategy(
			domain.Campaign{ID: "c11", Name: "Sem alcance", Status: domain.StatusActive, DailyBudget: 5000},
			[]domain.Insight{{Date: "2024-01-05", CTR: 2.5, CPC: 0.9, Reach: 0}},
		)

		assert.True(t, strategy.Actions.ExpandAudience, "alcance 0 < 10000")
		assert.True(t, strings.HasPrefix(strategy.ID, "strat_"))
		assert.Len(t, strategy.ID, len("strat_")+8)
	})

	t.Run("sem insights usa métricas da campanha e não julga alcance", func(t *testing.T) {
		service, integrator, _ := newService(t)

		integrator.EXPECT().ListCampaigns("act_1", "token").Return([]domain.Campaign{
			{ID: "c10", Name: "Boa performance", Status: domain.StatusActive, DailyBudget: 5000, CTR: 2.5, CPC: 0.9},
		}, nil)
		integrator.EXPECT().GetInsights("c10", "token", gomock.Any()).Return([]domain.Insight{}, nil)

		strategies, err := service.GenerateStrategies("act_1", "token")
		require.NoError(t, err)
		require.Len(t, strategies, 1)

		actions := strategies[0].Actions
		assert.False(t, actions.PauseLowPerforming)
		assert.True(t, actions.IncreaseBudget, "cpc 0.9 < 1.5 e ctr 2.5 > 2.0")
		assert.False(t, actions.ExpandAudience)
	})
}

func TestExecuteStrategy(t *testing.T) {
	t.Run("pausa campanha de baixa performance", func(t *testing.T) {
		service, integrator, _ := newService(t)

		integrator.EXPECT().UpdateCampaignStatus("c2", "token", domain.StatusPaused).Return(true)

		execution, err := service.ExecuteStrategy(&domain.OptimizationStrategy{
			ID:         "strat_1",
			AccountID:  "act_1",
			CampaignID: "c2",
			Actions:    domain.StrategyActions{PauseLowPerforming: true},
		}, "token")
		require.NoError(t, err)
		assert.Equal(t, "completed", execution.Status)
		assert.Equal(t, []string{"pause_low_performing"}, execution.Executed)
		assert.Empty(t, execution.Failed)
	})

	t.Run("aumenta orçamento em 20%", func(t *testing.T) {
		service, integrator, _ := newService(t)

		integrator.EXPECT().ListCampaigns("act_1", "token").Return(testCampaigns, nil)
		integrator.EXPECT().UpdateCampaignBudget("c1", "token", int64(12000)).Return(true)

		execution, err := service.ExecuteStrategy(&domain.OptimizationStrategy{
			ID:         "strat_2",
			AccountID:  "act_1",
			CampaignID: "c1",
			Actions:    domain.StrategyActions{IncreaseBudget: true},
		}, "token")
		require.NoError(t, err)
		assert.Equal(t, "completed", execution.Status)
		assert.Equal(t, []string{"increase_budget"}, execution.Executed)
	})

	t.Run("falha de escrita marca execução como failed", func(t *testing.T) {
		service, integrator, _ := newService(t)

		integrator.EXPECT().UpdateCampaignStatus("c2", "token", domain.StatusPaused).Return(false)

		execution, err := service.ExecuteStrategy(&domain.OptimizationStrategy{
			CampaignID: "c2",
			Actions:    domain.StrategyActions{PauseLowPerforming: true},
		}, "token")
		require.NoError(t, err)
		assert.Equal(t, "failed", execution.Status)
		assert.Equal(t, []string{"pause_low_performing"}, execution.Failed)
	})

	t.Run("sem ações sugeridas é noop", func(t *testing.T) {
		service, _, _ := newService(t)

		execution, err := service.ExecuteStrategy(&domain.OptimizationStrategy{CampaignID: "c1"}, "token")
		require.NoError(t, err)
		assert.Equal(t, "noop", execution.Status)
	})

	t.Run("estratégia sem campanha é inválida", func(t *testing.T) {
		service, _, _ := newService(t)

		_, err := service.ExecuteStrategy(&domain.OptimizationStrategy{}, "token")
		assert.Error(t, err)
	})
}

func TestAccountPerformance(t *testing.T) {
	service, integrator, _ := newService(t)

	integrator.EXPECT().ListCampaigns("act_1", "token").Return(testCampaigns, nil)

	performance, err := service.AccountPerformance("act_1", "token")
	require.NoError(t, err)
	assert.Equal(t, "act_1", performance.AccountID)
	assert.Equal(t, 3, performance.TotalCampaigns)
	assert.Equal(t, 2, performance.ActiveCampaigns)
	assert.Equal(t, int64(7540), performance.TotalSpend)
	assert.False(t, performance.LastUpdated.IsZero())
}

func TestPerformanceHistory(t *testing.T) {
	service, _, snapshotRepo := newService(t)

	snapshots := []*domain.PerformanceSnapshot{
		{AccountID: "act_1", Date: "2024-01-05"},
		{AccountID: "act_1", Date: "2024-01-04"},
	}

	// Limite não informado cai no padrão de 30 dias
	snapshotRepo.EXPECT().ListByAccountID("act_1", 30).Return(snapshots, nil)

	history, err := service.PerformanceHistory("act_1", 0)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}
