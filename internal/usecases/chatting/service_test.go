package chatting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-copilot-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-copilot-api/internal/domain"
	"github.com/vfg2006/ads-copilot-api/internal/usecases/chatting"
	"github.com/vfg2006/ads-copilot-api/internal/usecases/insighting"
)

// Os testes usam o integrador sandbox: dados determinísticos
// sem depender da Graph API
func newChatService() chatting.Chatter {
	integrator := meta.NewSandboxIntegrator()
	insighter := insighting.NewService(integrator, nil)
	return chatting.NewService(integrator, insighter)
}

func handle(t *testing.T, content string) *domain.ChatReply {
	t.Helper()

	service := newChatService()
	reply, err := service.HandleMessage(nil, "", &domain.ChatMessageRequest{Content: content})
	require.NoError(t, err)
	return reply
}

func TestHandleMessageDispatch(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    domain.ResourceKind
	}{
		{"campanhas em inglês", "Show me my campaigns", domain.ResourceCampaigns},
		{"campanhas em português", "mostre minhas campanhas", domain.ResourceCampaigns},
		{"contas exigem a frase composta", "list my ad accounts", domain.ResourceAccounts},
		{"contas em português", "quais são minhas contas de anúncio?", domain.ResourceAccounts},
		{"insights", "how is my performance this month", domain.ResourceInsights},
		{"gasto", "qual foi meu gasto na última semana?", domain.ResourceInsights},
		{"conjuntos", "show my ad sets targeting", domain.ResourceAdSets},
		{"anúncios", "which ads are running?", domain.ResourceAds},
		{"criativos", "mostre meus criativos", domain.ResourceAds},
		{"sem palavra-chave", "bom dia!", domain.ResourceNone},

		// "accounts" sozinho é termo genérico: campanha vence
		{"campanhas e accounts", "show me my campaigns and accounts", domain.ResourceCampaigns},

		// "campaigns" vence "performance" pela prioridade fixa
		{"campanhas antes de insights", "performance of my campaigns", domain.ResourceCampaigns},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := handle(t, tt.content)
			assert.Equal(t, tt.want, reply.Data.Kind)
		})
	}
}

func TestHandleMessageCampaigns(t *testing.T) {
	reply := handle(t, "Show me my campaigns")

	require.Len(t, reply.Data.Campaigns, 3)
	assert.Contains(t, reply.Response, "3 campanha(s)")
	assert.Contains(t, reply.Response, "Summer Sale 2024")
	assert.Contains(t, reply.Response, "Brand Awareness Q1")

	// Só a segunda campanha tem CTR < 1.5; primeira e terceira
	// disparam revisão de gasto
	kinds := map[string][]string{}
	for _, r := range reply.Recommendations {
		kinds[r.Kind] = append(kinds[r.Kind], r.CampaignID)
	}
	assert.Equal(t, []string{"23851234567890002"}, kinds[domain.RecommendationLowCTR])
	assert.Len(t, kinds[domain.RecommendationSpendReview], 2)
	assert.Contains(t, reply.Response, "Recomendações:")
}

func TestHandleMessageChart(t *testing.T) {
	t.Run("palavra-chave de gráfico anexa chart de campanhas", func(t *testing.T) {
		reply := handle(t, "mostre um gráfico das minhas campanhas")

		require.NotNil(t, reply.ChartSpec)
		assert.Equal(t, domain.ChartCampaignPerformance, reply.ChartSpec.Kind)
		assert.Equal(t, domain.ChartTypeBar, reply.ChartSpec.Type)

		// N campanhas → N rótulos e N pontos por série
		require.Len(t, reply.ChartSpec.Labels, 3)
		require.Len(t, reply.ChartSpec.Series, 2)
		assert.Len(t, reply.ChartSpec.Series[0].Data, 3)
		assert.Len(t, reply.ChartSpec.Series[1].Data, 3)
		assert.Contains(t, reply.Response, "gráfico")
	})

	t.Run("tendência de gastos vira gráfico de linha", func(t *testing.T) {
		reply := handle(t, "visualize my spend trend")

		require.NotNil(t, reply.ChartSpec)
		assert.Equal(t, domain.ChartSpendTrend, reply.ChartSpec.Kind)
		assert.Equal(t, domain.ChartTypeLine, reply.ChartSpec.Type)
		assert.Len(t, reply.ChartSpec.Labels, 5)
		assert.Len(t, reply.ChartSpec.Series[0].Data, 5)
	})

	t.Run("sem palavra-chave de gráfico não anexa chart", func(t *testing.T) {
		reply := handle(t, "liste minhas campanhas")
		assert.Nil(t, reply.ChartSpec)
	})
}

func TestHandleMessageFallbacks(t *testing.T) {
	t.Run("mensagem sem palavra-chave recebe ajuda estática", func(t *testing.T) {
		reply := handle(t, "olá, tudo bem?")

		assert.Equal(t, domain.ResourceNone, reply.Data.Kind)
		assert.Nil(t, reply.ChartSpec)
		assert.Contains(t, reply.Response, "Posso ajudar")
	})

	t.Run("pergunta de desempenho ganha bloco de dica", func(t *testing.T) {
		reply := handle(t, "how can I improve my campaigns?")
		assert.Contains(t, reply.Response, "Dica:")
	})
}

func TestAnalyze(t *testing.T) {
	service := newChatService()

	analysis, err := service.Analyze(nil, "")
	require.NoError(t, err)

	require.NotNil(t, analysis.Analysis)
	assert.Equal(t, 3, analysis.Analysis.TotalCampaigns)
	assert.Equal(t, 2, analysis.Analysis.ActiveCampaigns)

	require.NotNil(t, analysis.ChartSpec)
	assert.Len(t, analysis.ChartSpec.Labels, 3)

	assert.NotEmpty(t, analysis.Recommendations)
}

func TestSuggestions(t *testing.T) {
	service := newChatService()

	suggestions := service.Suggestions()
	require.NotEmpty(t, suggestions)

	// Toda sugestão precisa casar com alguma palavra-chave do despacho
	for _, s := range suggestions {
		reply, err := service.HandleMessage(nil, "", &domain.ChatMessageRequest{Content: s})
		require.NoError(t, err)
		assert.NotEqual(t, domain.ResourceNone, reply.Data.Kind, "sugestão sem palavra-chave: %s", s)
	}
}
