package domain

import "github.com/vfg2006/ads-copilot-api/pkg/utils"

// Status possíveis para contas e campanhas na plataforma de anúncios
const (
	StatusActive = "ACTIVE"
	StatusPaused = "PAUSED"
)

type AdAccount struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Currency string `json:"currency"`
	Timezone string `json:"timezone_name"`
}

// Campaign representa uma campanha com seu pacote de métricas.
// Valores monetários (spend, budgets) são inteiros em centavos.
type Campaign struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Status         string  `json:"status"`
	Objective      string  `json:"objective"`
	DailyBudget    int64   `json:"daily_budget"`
	LifetimeBudget int64   `json:"lifetime_budget"`
	Spend          int64   `json:"spend"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	CTR            float64 `json:"ctr"`
	CPC            float64 `json:"cpc"`
}

// ComputeDerivedMetrics recalcula CTR e CPC a partir dos valores brutos.
// CTR = cliques/impressões*100 (0 quando não há impressões);
// CPC = gasto/cliques em unidades da moeda (0 quando não há cliques).
func (c *Campaign) ComputeDerivedMetrics() {
	c.CTR = 0
	c.CPC = 0

	if c.Impressions > 0 {
		c.CTR = utils.RoundWithTwoDecimalPlace(float64(c.Clicks) / float64(c.Impressions) * 100)
	}

	if c.Clicks > 0 {
		c.CPC = utils.RoundWithTwoDecimalPlace(float64(c.Spend) / 100 / float64(c.Clicks))
	}
}

type AdSet struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	CampaignID     string `json:"campaign_id"`
	DailyBudget    int64  `json:"daily_budget"`
	LifetimeBudget int64  `json:"lifetime_budget"`
}

type Ad struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Status   string      `json:"status"`
	AdSetID  string      `json:"adset_id"`
	Creative *AdCreative `json:"creative,omitempty"`
}

type AdCreative struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	ImageURL string `json:"image_url"`
}

// Insight é um recorte diário de métricas de uma entidade
// (conta, campanha, conjunto ou anúncio). Spend em centavos.
type Insight struct {
	Date        string  `json:"date"`
	Spend       int64   `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
	CPM         float64 `json:"cpm"`
	Reach       int64   `json:"reach"`
	Frequency   float64 `json:"frequency"`
}

// InsightFilters delimita o período de consulta de insights.
// Ambas as datas devem ser informadas juntas ou nenhuma delas.
type InsightFilters struct {
	StartDate string
	EndDate   string
}
