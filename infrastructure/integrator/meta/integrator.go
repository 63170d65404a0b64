package meta

import (
	"errors"

	metadomain "github.com/vfg2006/ads-copilot-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-copilot-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-copilot-api/internal/domain"
	"github.com/vfg2006/ads-copilot-api/pkg/log"
)

// Integrator expõe a plataforma de anúncios já no vocabulário interno.
// Leituras degradam falhas do upstream para coleções vazias; apenas erros
// de validação (ex.: período parcial de insights) chegam ao chamador.
// Escritas respondem com um booleano de sucesso.
type Integrator interface {
	ListAdAccounts(accessToken string) ([]domain.AdAccount, error)
	ListCampaigns(accountID, accessToken string) ([]domain.Campaign, error)
	ListAdSets(campaignID, accessToken string) ([]domain.AdSet, error)
	ListAds(adsetID, accessToken string) ([]domain.Ad, error)
	GetInsights(objectID, accessToken string, filters *domain.InsightFilters) ([]domain.Insight, error)
	UpdateCampaignStatus(campaignID, accessToken, status string) bool
	UpdateCampaignBudget(campaignID, accessToken string, dailyBudget int64) bool
	ValidateAccessToken(accessToken string) bool
	GetUserInfo(accessToken string) (*metadomain.MetaUser, error)
}

type MetaIntegrator struct {
	client metaclient.Client
}

func NewIntegrator(client metaclient.Client) Integrator {
	return &MetaIntegrator{client: client}
}

func (i *MetaIntegrator) ListAdAccounts(accessToken string) ([]domain.AdAccount, error) {
	raw, err := i.client.ListAdAccounts(accessToken)
	if err != nil {
		log.L.WithError(err).Error("meta: failed to list ad accounts")
		return []domain.AdAccount{}, nil
	}

	accounts := make([]domain.AdAccount, 0, len(raw))
	for _, a := range raw {
		accounts = append(accounts, FactoryAdAccount(a))
	}

	return accounts, nil
}

func (i *MetaIntegrator) ListCampaigns(accountID, accessToken string) ([]domain.Campaign, error) {
	raw, err := i.client.ListCampaigns(accountID, accessToken)
	if err != nil {
		log.L.WithError(err).WithField("account_id", accountID).Error("meta: failed to list campaigns")
		return []domain.Campaign{}, nil
	}

	campaigns := make([]domain.Campaign, 0, len(raw))
	for _, c := range raw {
		campaigns = append(campaigns, FactoryCampaign(c))
	}

	return campaigns, nil
}

func (i *MetaIntegrator) ListAdSets(campaignID, accessToken string) ([]domain.AdSet, error) {
	raw, err := i.client.ListAdSets(campaignID, accessToken)
	if err != nil {
		log.L.WithError(err).WithField("campaign_id", campaignID).Error("meta: failed to list ad sets")
		return []domain.AdSet{}, nil
	}

	adsets := make([]domain.AdSet, 0, len(raw))
	for _, a := range raw {
		adsets = append(adsets, FactoryAdSet(a))
	}

	return adsets, nil
}

func (i *MetaIntegrator) ListAds(adsetID, accessToken string) ([]domain.Ad, error) {
	raw, err := i.client.ListAds(adsetID, accessToken)
	if err != nil {
		log.L.WithError(err).WithField("adset_id", adsetID).Error("meta: failed to list ads")
		return []domain.Ad{}, nil
	}

	ads := make([]domain.Ad, 0, len(raw))
	for _, a := range raw {
		ads = append(ads, FactoryAd(a))
	}

	return ads, nil
}

func (i *MetaIntegrator) GetInsights(objectID, accessToken string, filters *domain.InsightFilters) ([]domain.Insight, error) {
	raw, err := i.client.GetInsights(objectID, accessToken, filters)
	if err != nil {
		if errors.Is(err, metaclient.ErrPartialDateRange) {
			return nil, err
		}

		log.L.WithError(err).WithField("object_id", objectID).Error("meta: failed to get insights")
		return []domain.Insight{}, nil
	}

	insights := make([]domain.Insight, 0, len(raw))
	for _, in := range raw {
		insights = append(insights, FactoryInsight(in))
	}

	return insights, nil
}

func (i *MetaIntegrator) UpdateCampaignStatus(campaignID, accessToken, status string) bool {
	if err := i.client.UpdateCampaignStatus(campaignID, accessToken, status); err != nil {
		log.L.WithError(err).WithField("campaign_id", campaignID).Error("meta: failed to update campaign status")
		return false
	}
	return true
}

func (i *MetaIntegrator) UpdateCampaignBudget(campaignID, accessToken string, dailyBudget int64) bool {
	if err := i.client.UpdateCampaignBudget(campaignID, accessToken, dailyBudget); err != nil {
		log.L.WithError(err).WithField("campaign_id", campaignID).Error("meta: failed to update campaign budget")
		return false
	}
	return true
}

func (i *MetaIntegrator) GetUserInfo(accessToken string) (*metadomain.MetaUser, error) {
	user, err := i.client.GetUserInfo(accessToken)
	if err != nil {
		log.L.WithError(err).Error("meta: failed to get user info")
		return nil, err
	}
	return user, nil
}

func (i *MetaIntegrator) ValidateAccessToken(accessToken string) bool {
	valid, err := i.client.ValidateAccessToken(accessToken)
	if err != nil {
		log.L.WithError(err).Error("meta: failed to validate access token")
		return false
	}
	return valid
}
