package insighting

import (
	"fmt"
	"time"

	"github.com/vfg2006/ads-copilot-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-copilot-api/infrastructure/repository"
	"github.com/vfg2006/ads-copilot-api/internal/domain"
	"github.com/vfg2006/ads-copilot-api/pkg/log"
	"github.com/vfg2006/ads-copilot-api/pkg/utils"
)

// Limiares das recomendações exibidas no chat
const (
	recommendationMinCTR = 1.5
	// Em centavos: campanhas ativas acima deste gasto pedem revisão
	recommendationSpendThreshold = int64(2000)
)

const strategyInsightWindowDays = 7

type Insighter interface {
	SummarizeCampaigns(campaigns []domain.Campaign) *domain.CampaignSummary
	Recommend(campaigns []domain.Campaign) []domain.Recommendation
	GenerateStrategies(accountID, accessToken string) ([]*domain.OptimizationStrategy, error)
	ExecuteStrategy(strategy *domain.OptimizationStrategy, accessToken string) (*domain.StrategyExecution, error)
	AccountPerformance(accountID, accessToken string) (*domain.AccountPerformance, error)
	PerformanceHistory(accountID string, limit int) ([]*domain.PerformanceSnapshot, error)
}

type Service struct {
	integrator   meta.Integrator
	snapshotRepo repository.PerformanceSnapshotRepository
}

func NewService(integrator meta.Integrator, snapshotRepo repository.PerformanceSnapshotRepository) Insighter {
	return &Service{
		integrator:   integrator,
		snapshotRepo: snapshotRepo,
	}
}

// SummarizeCampaigns agrega as métricas da lista de campanhas.
// Lista vazia produz um resumo zerado, sem divisão por zero.
func (s *Service) SummarizeCampaigns(campaigns []domain.Campaign) *domain.CampaignSummary {
	summary := &domain.CampaignSummary{
		TotalCampaigns: len(campaigns),
	}

	if len(campaigns) == 0 {
		return summary
	}

	var sumCTR, sumCPC float64
	for _, c := range campaigns {
		if c.Status == domain.StatusActive {
			summary.ActiveCampaigns++
		}
		summary.TotalSpend += c.Spend
		summary.TotalImpressions += c.Impressions
		summary.TotalClicks += c.Clicks
		sumCTR += c.CTR
		sumCPC += c.CPC
	}

	summary.AvgCTR = utils.RoundWithTwoDecimalPlace(sumCTR / float64(len(campaigns)))
	summary.AvgCPC = utils.RoundWithTwoDecimalPlace(sumCPC / float64(len(campaigns)))

	return summary
}

// Recommend gera recomendações na ordem das campanhas recebidas.
// Uma mesma campanha pode disparar mais de uma recomendação.
func (s *Service) Recommend(campaigns []domain.Campaign) []domain.Recommendation {
	recommendations := make([]domain.Recommendation, 0)

	for _, c := range campaigns {
		if c.CTR < recommendationMinCTR {
			recommendations = append(recommendations, domain.Recommendation{
				CampaignID:   c.ID,
				CampaignName: c.Name,
				Kind:         domain.RecommendationLowCTR,
				Message: fmt.Sprintf(
					"A campanha '%s' está com CTR de %.2f%%, abaixo de %.1f%%. Considere revisar os criativos ou o público-alvo.",
					c.Name, c.CTR, recommendationMinCTR,
				),
			})
		}

		if c.Spend > recommendationSpendThreshold && c.Status == domain.StatusActive {
			recommendations = append(recommendations, domain.Recommendation{
				CampaignID:   c.ID,
				CampaignName: c.Name,
				Kind:         domain.RecommendationSpendReview,
				Message: fmt.Sprintf(
					"A campanha '%s' já gastou %s. Vale revisar se o retorno justifica o investimento.",
					c.Name, utils.FormatMoney(c.Spend),
				),
			})
		}
	}

	return recommendations
}

// GenerateStrategies monta uma estratégia de otimização por campanha ativa,
// na ordem retornada pela plataforma, usando os insights dos últimos dias
func (s *Service) GenerateStrategies(accountID, accessToken string) ([]*domain.OptimizationStrategy, error) {
	campaigns, err := s.integrator.ListCampaigns(accountID, accessToken)
	if err != nil {
		return nil, err
	}

	filters := &domain.InsightFilters{
		StartDate: time.Now().AddDate(0, 0, -strategyInsightWindowDays).Format("2006-01-02"),
		EndDate:   time.Now().Format("2006-01-02"),
	}

	strategies := make([]*domain.OptimizationStrategy, 0, len(campaigns))
	for _, campaign := range campaigns {
		if campaign.Status != domain.StatusActive {
			continue
		}

		insights, err := s.integrator.GetInsights(campaign.ID, accessToken, filters)
		if err != nil {
			return nil, err
		}

		strategy := BuildStrategy(campaign, insights)
		strategy.AccountID = accountID
		strategies = append(strategies, strategy)
	}

	return strategies, nil
}

// BuildStrategy deriva a estratégia de uma campanha a partir do insight
// mais recente; sem insights, usa as métricas agregadas da campanha
func BuildStrategy(campaign domain.Campaign, insights []domain.Insight) *domain.OptimizationStrategy {
	metrics := domain.StrategyMetrics{
		Spend:       campaign.Spend,
		Impressions: campaign.Impressions,
		Clicks:      campaign.Clicks,
		CTR:         campaign.CTR,
		CPC:         campaign.CPC,
	}

	fromInsight := len(insights) > 0
	if fromInsight {
		latest := insights[len(insights)-1]
		metrics.Spend = latest.Spend
		metrics.Impressions = latest.Impressions
		metrics.Clicks = latest.Clicks
		metrics.CTR = latest.CTR
		metrics.CPC = latest.CPC
		metrics.CPM = latest.CPM
		metrics.Reach = latest.Reach
	}

	actions := domain.StrategyActions{
		PauseLowPerforming: metrics.CTR < domain.StrategyMinCTR,
		IncreaseBudget:     metrics.CPC < domain.StrategyIncreaseCPC && metrics.CTR > domain.StrategyIncreaseCTR,
		AdjustBidding:      metrics.CPC > domain.StrategyMaxCPC,
	}

	// As métricas agregadas da campanha não trazem alcance; só há como
	// julgar a expansão de público com um insight
	if fromInsight {
		actions.ExpandAudience = metrics.Reach < domain.StrategyMinReach
	}

	now := time.Now()
	return &domain.OptimizationStrategy{
		ID:           fmt.Sprintf("strat_%s", utils.MustGenerateID()),
		CampaignID:   campaign.ID,
		CampaignName: campaign.Name,
		Type:         "performance_optimization",
		Status:       "suggested",
		Rules: domain.StrategyRules{
			MinCTR:          domain.StrategyMinCTR,
			MaxCPC:          domain.StrategyMaxCPC,
			TargetCPM:       domain.StrategyTargetCPM,
			BudgetThreshold: utils.RoundWithTwoDecimalPlace(utils.MinorToMajor(campaign.DailyBudget) * domain.StrategyBudgetFactor),
		},
		Actions:   actions,
		Metrics:   metrics,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ExecuteStrategy aplica as ações sugeridas contra a plataforma.
// Pausa vem antes de orçamento; uma falha não impede as demais ações.
func (s *Service) ExecuteStrategy(strategy *domain.OptimizationStrategy, accessToken string) (*domain.StrategyExecution, error) {
	if strategy == nil || strategy.CampaignID == "" {
		return nil, fmt.Errorf("estratégia inválida: campanha não informada")
	}

	execution := &domain.StrategyExecution{
		StrategyID: strategy.ID,
		CampaignID: strategy.CampaignID,
		Executed:   []string{},
		Failed:     []string{},
		ExecutedAt: time.Now(),
	}

	if strategy.Actions.PauseLowPerforming {
		if s.integrator.UpdateCampaignStatus(strategy.CampaignID, accessToken, domain.StatusPaused) {
			execution.Executed = append(execution.Executed, "pause_low_performing")
		} else {
			execution.Failed = append(execution.Failed, "pause_low_performing")
		}
	}

	if strategy.Actions.IncreaseBudget {
		campaigns, err := s.integrator.ListCampaigns(strategy.AccountID, accessToken)
		if err != nil {
			return nil, err
		}

		var current *domain.Campaign
		for i := range campaigns {
			if campaigns[i].ID == strategy.CampaignID {
				current = &campaigns[i]
				break
			}
		}

		if current == nil || current.DailyBudget == 0 {
			log.L.WithField("campaign_id", strategy.CampaignID).Warn("insighting: campaign without daily budget, skipping increase")
			execution.Failed = append(execution.Failed, "increase_budget")
		} else {
			newBudget := int64(float64(current.DailyBudget) * domain.StrategyBudgetRaise)
			if s.integrator.UpdateCampaignBudget(strategy.CampaignID, accessToken, newBudget) {
				execution.Executed = append(execution.Executed, "increase_budget")
			} else {
				execution.Failed = append(execution.Failed, "increase_budget")
			}
		}
	}

	switch {
	case len(execution.Executed) == 0 && len(execution.Failed) == 0:
		execution.Status = "noop"
	case len(execution.Failed) == 0:
		execution.Status = "completed"
	case len(execution.Executed) == 0:
		execution.Status = "failed"
	default:
		execution.Status = "partial"
	}

	return execution, nil
}

// AccountPerformance calcula o resumo de desempenho da conta sob demanda
func (s *Service) AccountPerformance(accountID, accessToken string) (*domain.AccountPerformance, error) {
	campaigns, err := s.integrator.ListCampaigns(accountID, accessToken)
	if err != nil {
		return nil, err
	}

	summary := s.SummarizeCampaigns(campaigns)

	return &domain.AccountPerformance{
		AccountID:        accountID,
		TotalCampaigns:   summary.TotalCampaigns,
		ActiveCampaigns:  summary.ActiveCampaigns,
		TotalSpend:       summary.TotalSpend,
		TotalImpressions: summary.TotalImpressions,
		TotalClicks:      summary.TotalClicks,
		AvgCTR:           summary.AvgCTR,
		AvgCPC:           summary.AvgCPC,
		LastUpdated:      time.Now(),
	}, nil
}

// PerformanceHistory lista os snapshots diários persistidos pelo agendador,
// do mais recente para o mais antigo
func (s *Service) PerformanceHistory(accountID string, limit int) ([]*domain.PerformanceSnapshot, error) {
	if limit <= 0 {
		limit = 30
	}

	return s.snapshotRepo.ListByAccountID(accountID, limit)
}
