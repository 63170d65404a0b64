package domain

// Tipos de recomendação gerados a partir das métricas de campanha
const (
	RecommendationLowCTR      = "low_ctr"
	RecommendationSpendReview = "spend_review"
)

type Recommendation struct {
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	Kind         string `json:"kind"`
	Message      string `json:"message"`
}
