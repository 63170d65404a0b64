package metadomain

// Insight é o formato de métricas diárias retornado pela Graph API
type Insight struct {
	DateStart   string `json:"date_start"`
	DateStop    string `json:"date_stop"`
	Spend       string `json:"spend"`
	Impressions string `json:"impressions"`
	Clicks      string `json:"clicks"`
	CTR         string `json:"ctr"`
	CPC         string `json:"cpc"`
	CPM         string `json:"cpm"`
	Reach       string `json:"reach"`
	Frequency   string `json:"frequency"`
}

// MetaUser é o retorno do endpoint /me
type MetaUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
