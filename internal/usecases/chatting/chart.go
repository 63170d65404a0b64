package chatting

import (
	"github.com/vfg2006/ads-copilot-api/internal/domain"
	"github.com/vfg2006/ads-copilot-api/pkg/utils"
)

// Cores padrão dos gráficos, alinhadas com o frontend
const (
	colorBlue   = "#36A2EB"
	colorBlueBg = "rgba(54, 162, 235, 0.5)"
	colorRed    = "#FF6384"
	colorRedBg  = "rgba(255, 99, 132, 0.5)"
)

// BuildCampaignPerformanceChart monta o gráfico de barras com um par
// CTR/gasto por campanha, na ordem recebida
func BuildCampaignPerformanceChart(campaigns []domain.Campaign) *domain.ChartSpec {
	labels := make([]string, 0, len(campaigns))
	ctr := make([]float64, 0, len(campaigns))
	spend := make([]float64, 0, len(campaigns))

	for _, c := range campaigns {
		labels = append(labels, c.Name)
		ctr = append(ctr, c.CTR)
		spend = append(spend, utils.MinorToMajor(c.Spend))
	}

	return &domain.ChartSpec{
		Kind:   domain.ChartCampaignPerformance,
		Type:   domain.ChartTypeBar,
		Title:  "Desempenho das campanhas",
		Labels: labels,
		Series: []domain.ChartSerie{
			{
				Label:           "CTR (%)",
				Data:            ctr,
				BorderColor:     colorBlue,
				BackgroundColor: colorBlueBg,
			},
			{
				Label:           "Gasto (R$)",
				Data:            spend,
				BorderColor:     colorRed,
				BackgroundColor: colorRedBg,
			},
		},
	}
}

// BuildSpendTrendChart monta o gráfico de linha com o gasto diário,
// na ordem cronológica dos insights
func BuildSpendTrendChart(insights []domain.Insight) *domain.ChartSpec {
	labels := make([]string, 0, len(insights))
	spend := make([]float64, 0, len(insights))

	for _, in := range insights {
		labels = append(labels, in.Date)
		spend = append(spend, utils.MinorToMajor(in.Spend))
	}

	return &domain.ChartSpec{
		Kind:   domain.ChartSpendTrend,
		Type:   domain.ChartTypeLine,
		Title:  "Tendência de gastos",
		Labels: labels,
		Series: []domain.ChartSerie{
			{
				Label:           "Gasto diário (R$)",
				Data:            spend,
				BorderColor:     colorBlue,
				BackgroundColor: colorBlueBg,
			},
		},
	}
}
