package domain

// ResourceKind discrimina o tipo de dado buscado na plataforma de anúncios
// durante o despacho por palavras-chave do chat.
type ResourceKind string

const (
	ResourceNone      ResourceKind = ""
	ResourceAccounts  ResourceKind = "accounts"
	ResourceCampaigns ResourceKind = "campaigns"
	ResourceInsights  ResourceKind = "insights"
	ResourceAdSets    ResourceKind = "adsets"
	ResourceAds       ResourceKind = "ads"
)

// FetchedData carrega o resultado do despacho como variante etiquetada:
// Kind indica qual dos slices está preenchido.
type FetchedData struct {
	Kind      ResourceKind `json:"kind"`
	Accounts  []AdAccount  `json:"accounts,omitempty"`
	Campaigns []Campaign   `json:"campaigns,omitempty"`
	Insights  []Insight    `json:"insights,omitempty"`
	AdSets    []AdSet      `json:"adsets,omitempty"`
	Ads       []Ad         `json:"ads,omitempty"`
}

// IsEmpty indica se nenhum dado foi buscado ou se a busca retornou vazia
func (d *FetchedData) IsEmpty() bool {
	if d == nil || d.Kind == ResourceNone {
		return true
	}

	return len(d.Accounts) == 0 && len(d.Campaigns) == 0 &&
		len(d.Insights) == 0 && len(d.AdSets) == 0 && len(d.Ads) == 0
}

type ChatMessageRequest struct {
	Content string        `json:"content"`
	History []ChatMessage `json:"history,omitempty"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatReply struct {
	Response        string           `json:"response"`
	Data            *FetchedData     `json:"data"`
	ChartSpec       *ChartSpec       `json:"chart_spec,omitempty"`
	Recommendations []Recommendation `json:"recommendations"`
}

// CampaignSummary agrega as métricas de uma lista de campanhas
type CampaignSummary struct {
	TotalCampaigns   int     `json:"total_campaigns"`
	ActiveCampaigns  int     `json:"active_campaigns"`
	TotalSpend       int64   `json:"total_spend"`
	TotalImpressions int64   `json:"total_impressions"`
	TotalClicks      int64   `json:"total_clicks"`
	AvgCTR           float64 `json:"avg_ctr"`
	AvgCPC           float64 `json:"avg_cpc"`
}

type ChatAnalysis struct {
	Analysis        *CampaignSummary `json:"analysis"`
	Recommendations []Recommendation `json:"recommendations"`
	ChartSpec       *ChartSpec       `json:"chart_spec,omitempty"`
}
