package domain

// Tipos de gráfico suportados pelo frontend de chat
const (
	ChartTypeLine = "line"
	ChartTypeBar  = "bar"

	ChartCampaignPerformance = "campaign_performance"
	ChartSpendTrend          = "spend_trend"
)

// ChartSpec é uma descrição declarativa de gráfico no formato esperado
// pelo frontend (compatível com Chart.js). Nunca é persistida.
type ChartSpec struct {
	Kind    string       `json:"kind"`
	Type    string       `json:"type"`
	Title   string       `json:"title"`
	Labels  []string     `json:"labels"`
	Series  []ChartSerie `json:"series"`
}

type ChartSerie struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"border_color,omitempty"`
	BackgroundColor string    `json:"background_color,omitempty"`
}
