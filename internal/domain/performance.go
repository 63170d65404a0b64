package domain

import "time"

// AccountPerformance é o resumo de desempenho de uma conta, calculado
// sob demanda a partir das campanhas e persistido pelo agendador de snapshots.
type AccountPerformance struct {
	AccountID        string    `json:"account_id"`
	TotalCampaigns   int       `json:"total_campaigns"`
	ActiveCampaigns  int       `json:"active_campaigns"`
	TotalSpend       int64     `json:"total_spend"`
	TotalImpressions int64     `json:"total_impressions"`
	TotalClicks      int64     `json:"total_clicks"`
	AvgCTR           float64   `json:"average_ctr"`
	AvgCPC           float64   `json:"average_cpc"`
	LastUpdated      time.Time `json:"last_updated"`
}

// PerformanceSnapshot é a linha persistida pelo agendador diário
type PerformanceSnapshot struct {
	ID               int       `json:"id"`
	AccountID        string    `json:"account_id"`
	Date             string    `json:"date"`
	TotalCampaigns   int       `json:"total_campaigns"`
	ActiveCampaigns  int       `json:"active_campaigns"`
	TotalSpend       int64     `json:"total_spend"`
	TotalImpressions int64     `json:"total_impressions"`
	TotalClicks      int64     `json:"total_clicks"`
	AvgCTR           float64   `json:"average_ctr"`
	AvgCPC           float64   `json:"average_cpc"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
