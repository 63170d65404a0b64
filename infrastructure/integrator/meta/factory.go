package meta

import (
	"strconv"

	metadomain "github.com/vfg2006/ads-copilot-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-copilot-api/internal/domain"
	"github.com/vfg2006/ads-copilot-api/pkg/utils"
)

// Status de conta na Graph API: 1 = ativa, 2 = desativada
const (
	accountStatusActive   = 1
	accountStatusDisabled = 2
)

// FactoryAdAccount converte o formato da Graph API para o modelo interno
func FactoryAdAccount(in metadomain.AdAccount) domain.AdAccount {
	status := "OTHER"
	switch in.AccountStatus {
	case accountStatusActive:
		status = domain.StatusActive
	case accountStatusDisabled:
		status = domain.StatusPaused
	}

	return domain.AdAccount{
		ID:       in.ID,
		Name:     in.Name,
		Status:   status,
		Currency: in.Currency,
		Timezone: in.TimezoneName,
	}
}

// FactoryCampaign converte a campanha da Graph API para o modelo interno.
// Valores monetários em string (unidades da moeda) viram centavos;
// budgets já chegam em centavos.
func FactoryCampaign(in metadomain.Campaign) domain.Campaign {
	campaign := domain.Campaign{
		ID:             in.ID,
		Name:           in.Name,
		Status:         in.Status,
		Objective:      in.Objective,
		DailyBudget:    parseInt(in.DailyBudget),
		LifetimeBudget: parseInt(in.LifetimeBudget),
		Spend:          parseCurrencyToMinor(in.Spend),
		Impressions:    parseInt(in.Impressions),
		Clicks:         parseInt(in.Clicks),
		CTR:            parseFloat(in.CTR),
		CPC:            parseFloat(in.CPC),
	}

	// A Graph API nem sempre retorna ctr/cpc; recalcular quando ausentes
	if campaign.CTR == 0 && campaign.CPC == 0 {
		campaign.ComputeDerivedMetrics()
	}

	return campaign
}

func FactoryAdSet(in metadomain.AdSet) domain.AdSet {
	return domain.AdSet{
		ID:             in.ID,
		Name:           in.Name,
		Status:         in.Status,
		CampaignID:     in.CampaignID,
		DailyBudget:    parseInt(in.DailyBudget),
		LifetimeBudget: parseInt(in.LifetimeBudget),
	}
}

func FactoryAd(in metadomain.Ad) domain.Ad {
	ad := domain.Ad{
		ID:      in.ID,
		Name:    in.Name,
		Status:  in.Status,
		AdSetID: in.AdSetID,
	}

	if in.Creative != nil {
		ad.Creative = &domain.AdCreative{
			ID:       in.Creative.ID,
			Title:    in.Creative.Title,
			Body:     in.Creative.Body,
			ImageURL: in.Creative.ImageURL,
		}
	}

	return ad
}

func FactoryInsight(in metadomain.Insight) domain.Insight {
	return domain.Insight{
		Date:        in.DateStart,
		Spend:       parseCurrencyToMinor(in.Spend),
		Impressions: parseInt(in.Impressions),
		Clicks:      parseInt(in.Clicks),
		CTR:         parseFloat(in.CTR),
		CPC:         parseFloat(in.CPC),
		CPM:         parseFloat(in.CPM),
		Reach:       parseInt(in.Reach),
		Frequency:   parseFloat(in.Frequency),
	}
}

func parseInt(s string) int64 {
	if s == "" {
		return 0
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(v)
}

// parseCurrencyToMinor converte um valor em unidades da moeda ("24.50")
// para centavos (2450)
func parseCurrencyToMinor(s string) int64 {
	if s == "" {
		return 0
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int64(v*100 + 0.5)
}
