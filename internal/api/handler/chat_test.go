package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-copilot-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-copilot-api/internal/api/handler"
	"github.com/vfg2006/ads-copilot-api/internal/config"
	"github.com/vfg2006/ads-copilot-api/internal/domain"
	"github.com/vfg2006/ads-copilot-api/internal/usecases/chatting"
	"github.com/vfg2006/ads-copilot-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-copilot-api/pkg/log"
	"github.com/vfg2006/ads-copilot-api/pkg/middleware"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

func sandboxConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Meta.SandboxEnabled = true
	return cfg
}

func authenticated(r *http.Request) *http.Request {
	claims := &domain.Claims{
		UserID:     1,
		UserEmail:  "ana@example.com",
		UserActive: true,
		UserRoleID: domain.RoleUser,
	}
	ctx := context.WithValue(r.Context(), middleware.ContextKeyUser, claims)
	return r.WithContext(ctx)
}

func newChatHandler() http.HandlerFunc {
	integrator := meta.NewSandboxIntegrator()
	insighter := insighting.NewService(integrator, nil)
	chatter := chatting.NewService(integrator, insighter)
	return handler.ChatMessage(chatter, nil, sandboxConfig())
}

func TestChatMessageEndToEnd(t *testing.T) {
	chatHandler := newChatHandler()

	t.Run("listagem de campanhas com recomendações", func(t *testing.T) {
		body := `{"content":"Show me my campaigns"}`
		req := authenticated(httptest.NewRequest(http.MethodPost, "/v1/chat/message", strings.NewReader(body)))
		rec := httptest.NewRecorder()

		chatHandler(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var reply domain.ChatReply
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))

		assert.Contains(t, reply.Response, "3 campanha(s)")
		assert.Contains(t, reply.Response, "Summer Sale 2024")
		require.Len(t, reply.Data.Campaigns, 3)

		// Entre as campanhas do sandbox, apenas Brand Awareness Q1 tem CTR < 1.5
		var lowCTR []string
		for _, r := range reply.Recommendations {
			if r.Kind == domain.RecommendationLowCTR {
				lowCTR = append(lowCTR, r.CampaignName)
			}
		}
		assert.Equal(t, []string{"Brand Awareness Q1"}, lowCTR)
	})

	t.Run("mensagem vazia retorna 400 com código de validação", func(t *testing.T) {
		req := authenticated(httptest.NewRequest(http.MethodPost, "/v1/chat/message", strings.NewReader(`{"content":""}`)))
		rec := httptest.NewRecorder()

		chatHandler(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_002")
	})

	t.Run("sem autenticação retorna 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/chat/message", strings.NewReader(`{"content":"campaigns"}`))
		rec := httptest.NewRecorder()

		chatHandler(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("pedido de gráfico anexa chart_spec", func(t *testing.T) {
		body := `{"content":"mostre um gráfico das minhas campanhas"}`
		req := authenticated(httptest.NewRequest(http.MethodPost, "/v1/chat/message", strings.NewReader(body)))
		rec := httptest.NewRecorder()

		chatHandler(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var reply domain.ChatReply
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))

		require.NotNil(t, reply.ChartSpec)
		assert.Equal(t, domain.ChartCampaignPerformance, reply.ChartSpec.Kind)
		assert.Len(t, reply.ChartSpec.Labels, 3)
	})
}

func TestChatSuggestionsEndpoint(t *testing.T) {
	integrator := meta.NewSandboxIntegrator()
	insighter := insighting.NewService(integrator, nil)
	chatter := chatting.NewService(integrator, insighter)

	req := authenticated(httptest.NewRequest(http.MethodGet, "/v1/chat/suggestions", nil))
	rec := httptest.NewRecorder()

	handler.ChatSuggestions(chatter)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.NotEmpty(t, response["suggestions"])
}

func TestChatAnalyzeEndpoint(t *testing.T) {
	integrator := meta.NewSandboxIntegrator()
	insighter := insighting.NewService(integrator, nil)
	chatter := chatting.NewService(integrator, insighter)

	req := authenticated(httptest.NewRequest(http.MethodPost, "/v1/chat/analyze", nil))
	rec := httptest.NewRecorder()

	handler.ChatAnalyze(chatter, nil, sandboxConfig())(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var analysis domain.ChatAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))

	require.NotNil(t, analysis.Analysis)
	assert.Equal(t, 3, analysis.Analysis.TotalCampaigns)
	assert.NotNil(t, analysis.ChartSpec)
	assert.NotEmpty(t, analysis.Recommendations)
}
