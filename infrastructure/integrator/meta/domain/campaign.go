package metadomain

// Campaign é o formato de campanha retornado pela Graph API.
// Métricas numéricas chegam como string e budgets como centavos.
type Campaign struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	Objective      string `json:"objective"`
	DailyBudget    string `json:"daily_budget"`
	LifetimeBudget string `json:"lifetime_budget"`
	Spend          string `json:"spend"`
	Impressions    string `json:"impressions"`
	Clicks         string `json:"clicks"`
	CTR            string `json:"ctr"`
	CPC            string `json:"cpc"`
}

type AdSet struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	CampaignID     string `json:"campaign_id"`
	DailyBudget    string `json:"daily_budget"`
	LifetimeBudget string `json:"lifetime_budget"`
}

type Ad struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Status   string    `json:"status"`
	AdSetID  string    `json:"adset_id"`
	Creative *Creative `json:"creative,omitempty"`
}

type Creative struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	ImageURL string `json:"image_url"`
}
