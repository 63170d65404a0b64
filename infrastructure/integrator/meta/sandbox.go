package meta

import (
	"sync"

	metadomain "github.com/vfg2006/ads-copilot-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-copilot-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-copilot-api/internal/domain"
	"github.com/vfg2006/ads-copilot-api/pkg/log"
)

// SandboxIntegrator responde com dados fixos, sem chamar a Graph API.
// Útil para desenvolvimento local e para contas sem token da Meta.
// Escritas alteram o estado em memória e valem até o restart.
type SandboxIntegrator struct {
	mu        sync.RWMutex
	accounts  []domain.AdAccount
	campaigns []domain.Campaign
	adsets    []domain.AdSet
	ads       []domain.Ad
	insights  []domain.Insight
}

func NewSandboxIntegrator() Integrator {
	return &SandboxIntegrator{
		accounts: []domain.AdAccount{
			{ID: "act_123456789", Name: "Conta Principal", Status: domain.StatusActive, Currency: "BRL", Timezone: "America/Sao_Paulo"},
			{ID: "act_987654321", Name: "Conta Secundária", Status: domain.StatusActive, Currency: "BRL", Timezone: "America/Sao_Paulo"},
		},
		campaigns: []domain.Campaign{
			{
				ID: "23851234567890001", Name: "Summer Sale 2024", Status: domain.StatusActive,
				Objective: "OUTCOME_SALES", DailyBudget: 10000, Spend: 2450,
				Impressions: 125000, Clicks: 3200, CTR: 2.56, CPC: 0.77,
			},
			{
				ID: "23851234567890002", Name: "Brand Awareness Q1", Status: domain.StatusPaused,
				Objective: "OUTCOME_AWARENESS", DailyBudget: 5000, Spend: 1890,
				Impressions: 89000, Clicks: 1200, CTR: 1.35, CPC: 1.58,
			},
			{
				ID: "23851234567890003", Name: "Lead Generation", Status: domain.StatusActive,
				Objective: "OUTCOME_LEADS", DailyBudget: 7500, Spend: 3200,
				Impressions: 156000, Clicks: 4100, CTR: 2.63, CPC: 0.78,
			},
		},
		adsets: []domain.AdSet{
			{ID: "23861234567890001", Name: "Público 25-34 interesses moda", Status: domain.StatusActive, CampaignID: "23851234567890001", DailyBudget: 5000},
		},
		ads: []domain.Ad{
			{
				ID: "23871234567890001", Name: "Criativo carrossel verão", Status: domain.StatusActive,
				AdSetID: "23861234567890001",
				Creative: &domain.AdCreative{
					ID:    "23881234567890001",
					Title: "Ofertas de verão",
					Body:  "Até 50% de desconto na coleção de verão. Aproveite!",
				},
			},
		},
		insights: []domain.Insight{
			{Date: "2024-01-01", Spend: 10000, Impressions: 5200, Clicks: 130, CTR: 2.5, CPC: 0.77, CPM: 19.23, Reach: 4100, Frequency: 1.27},
			{Date: "2024-01-02", Spend: 12000, Impressions: 6100, Clicks: 158, CTR: 2.59, CPC: 0.76, CPM: 19.67, Reach: 4800, Frequency: 1.27},
			{Date: "2024-01-03", Spend: 11000, Impressions: 5700, Clicks: 142, CTR: 2.49, CPC: 0.77, CPM: 19.3, Reach: 4500, Frequency: 1.27},
			{Date: "2024-01-04", Spend: 13000, Impressions: 6600, Clicks: 171, CTR: 2.59, CPC: 0.76, CPM: 19.7, Reach: 5200, Frequency: 1.27},
			{Date: "2024-01-05", Spend: 14000, Impressions: 7100, Clicks: 185, CTR: 2.61, CPC: 0.76, CPM: 19.72, Reach: 5600, Frequency: 1.27},
		},
	}
}

func (s *SandboxIntegrator) ListAdAccounts(_ string) ([]domain.AdAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.AdAccount, len(s.accounts))
	copy(out, s.accounts)
	return out, nil
}

func (s *SandboxIntegrator) ListCampaigns(accountID, _ string) ([]domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	log.L.WithField("account_id", accountID).Debug("sandbox: listing campaigns")

	out := make([]domain.Campaign, len(s.campaigns))
	copy(out, s.campaigns)
	return out, nil
}

func (s *SandboxIntegrator) ListAdSets(campaignID, _ string) ([]domain.AdSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.AdSet, 0, len(s.adsets))
	for _, a := range s.adsets {
		if a.CampaignID == campaignID || campaignID == "" {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *SandboxIntegrator) ListAds(adsetID, _ string) ([]domain.Ad, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Ad, 0, len(s.ads))
	for _, a := range s.ads {
		if a.AdSetID == adsetID || adsetID == "" {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *SandboxIntegrator) GetInsights(_, _ string, filters *domain.InsightFilters) ([]domain.Insight, error) {
	if filters != nil {
		if (filters.StartDate == "") != (filters.EndDate == "") {
			return nil, metaclient.ErrPartialDateRange
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Insight, 0, len(s.insights))
	for _, in := range s.insights {
		if filters != nil && filters.StartDate != "" {
			if in.Date < filters.StartDate || in.Date > filters.EndDate {
				continue
			}
		}
		out = append(out, in)
	}
	return out, nil
}

func (s *SandboxIntegrator) UpdateCampaignStatus(campaignID, _, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for idx := range s.campaigns {
		if s.campaigns[idx].ID == campaignID {
			s.campaigns[idx].Status = status
			return true
		}
	}
	return false
}

func (s *SandboxIntegrator) UpdateCampaignBudget(campaignID, _ string, dailyBudget int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for idx := range s.campaigns {
		if s.campaigns[idx].ID == campaignID {
			s.campaigns[idx].DailyBudget = dailyBudget
			return true
		}
	}
	return false
}

func (s *SandboxIntegrator) ValidateAccessToken(_ string) bool {
	return true
}

func (s *SandboxIntegrator) GetUserInfo(_ string) (*metadomain.MetaUser, error) {
	return &metadomain.MetaUser{ID: "10001", Name: "Usuário Sandbox", Email: "sandbox@example.com"}, nil
}
