package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-copilot-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-copilot-api/internal/api/handler"
	"github.com/vfg2006/ads-copilot-api/internal/config"
	"github.com/vfg2006/ads-copilot-api/internal/domain"
	"github.com/vfg2006/ads-copilot-api/internal/usecases/insighting"
)

// withParams injeta os parâmetros de rota como o httprouter faria
func withParams(r *http.Request, params httprouter.Params) *http.Request {
	ctx := context.WithValue(r.Context(), httprouter.ParamsKey, params)
	return r.WithContext(ctx)
}

func TestInsightListValidation(t *testing.T) {
	integrator := meta.NewSandboxIntegrator()

	t.Run("período parcial retorna 400", func(t *testing.T) {
		req := authenticated(httptest.NewRequest(http.MethodGet, "/v1/meta/insights/act_1?start_date=2024-01-01", nil))
		rec := httptest.NewRecorder()

		handler.InsightList(integrator, nil, sandboxConfig())(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_002")
	})

	t.Run("data mal formatada retorna 400", func(t *testing.T) {
		req := authenticated(httptest.NewRequest(http.MethodGet, "/v1/meta/insights/act_1?start_date=01-2024&end_date=2024-01-05", nil))
		rec := httptest.NewRecorder()

		handler.InsightList(integrator, nil, sandboxConfig())(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_003")
	})

	t.Run("sem período usa a janela padrão", func(t *testing.T) {
		req := authenticated(httptest.NewRequest(http.MethodGet, "/v1/meta/insights/act_1", nil))
		rec := httptest.NewRecorder()

		handler.InsightList(integrator, nil, sandboxConfig())(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var response struct {
			Insights []domain.Insight `json:"insights"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Len(t, response.Insights, 5)
	})
}

func TestUpdateCampaignStatusHandler(t *testing.T) {
	integrator := meta.NewSandboxIntegrator()

	t.Run("status inválido retorna 400", func(t *testing.T) {
		body := `{"status":"DELETED"}`
		req := authenticated(httptest.NewRequest(http.MethodPost, "/v1/meta/campaigns/c1/status", strings.NewReader(body)))
		rec := httptest.NewRecorder()

		handler.UpdateCampaignStatus(integrator, nil, sandboxConfig())(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_003")
	})

	t.Run("campanha inexistente degrada para erro de serviço externo", func(t *testing.T) {
		body := `{"status":"PAUSED"}`
		req := authenticated(httptest.NewRequest(http.MethodPost, "/v1/meta/campaigns/desconhecida/status", strings.NewReader(body)))
		req = withParams(req, httprouter.Params{{Key: "id", Value: "desconhecida"}})
		rec := httptest.NewRecorder()

		handler.UpdateCampaignStatus(integrator, nil, sandboxConfig())(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "SRV_003")
	})
}

func TestStrategyEndpoints(t *testing.T) {
	integrator := meta.NewSandboxIntegrator()
	insighter := insighting.NewService(integrator, nil)

	t.Run("geração de estratégias só para campanhas ativas", func(t *testing.T) {
		req := authenticated(httptest.NewRequest(http.MethodGet, "/v1/meta/strategies/act_123456789", nil))
		rec := httptest.NewRecorder()

		handler.StrategyList(insighter, nil, sandboxConfig())(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var response struct {
			Strategies []*domain.OptimizationStrategy `json:"strategies"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

		// O sandbox tem 3 campanhas, uma delas pausada
		require.Len(t, response.Strategies, 2)
		for _, s := range response.Strategies {
			assert.NotEmpty(t, s.ID)
			assert.NotEmpty(t, s.CampaignID)
		}
	})

	t.Run("execução sem estratégia retorna 400", func(t *testing.T) {
		req := authenticated(httptest.NewRequest(http.MethodPost, "/v1/meta/strategies/execute", strings.NewReader(`{}`)))
		rec := httptest.NewRecorder()

		handler.StrategyExecute(insighter, nil, sandboxConfig())(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMetaCredentialsWithoutToken(t *testing.T) {
	integrator := meta.NewSandboxIntegrator()

	cfg := &config.Config{}
	cfg.Meta.SandboxEnabled = false

	// Usuário sem token vinculado, sem access_token na query e fora do sandbox
	req := authenticated(httptest.NewRequest(http.MethodGet, "/v1/meta/ad-accounts", nil))
	rec := httptest.NewRecorder()

	handler.AdAccountList(integrator, nil, cfg)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "AUTH_008")
	assert.Contains(t, rec.Body.String(), "token da Meta não configurado")
}

func TestValidateMetaTokenHandler(t *testing.T) {
	integrator := meta.NewSandboxIntegrator()

	t.Run("sem access_token retorna 400", func(t *testing.T) {
		req := authenticated(httptest.NewRequest(http.MethodGet, "/v1/meta/validate-token", nil))
		rec := httptest.NewRecorder()

		handler.ValidateMetaToken(integrator)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("token aceito no sandbox", func(t *testing.T) {
		req := authenticated(httptest.NewRequest(http.MethodGet, "/v1/meta/validate-token?access_token=abc", nil))
		rec := httptest.NewRecorder()

		handler.ValidateMetaToken(integrator)(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, true, response["valid"])
	})
}
