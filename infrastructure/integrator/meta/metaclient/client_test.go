package metaclient

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-copilot-api/internal/config"
	"github.com/vfg2006/ads-copilot-api/internal/domain"
)

func newTestClient(serverURL string) *MetaClient {
	cfg := &config.Config{}
	cfg.Meta.URL = serverURL
	return NewClient(cfg).(*MetaClient)
}

func TestGetInsightsDateRange(t *testing.T) {
	t.Run("sem filtros usa a janela padrão de 30 dias", func(t *testing.T) {
		var gotQuery map[string][]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Write([]byte(`{"data":[{"date_start":"2024-01-01","spend":"100.00","impressions":"5200","clicks":"130"}]}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		insights, err := client.GetInsights("act_1", "tok", nil)
		require.NoError(t, err)
		require.Len(t, insights, 1)
		assert.Equal(t, "2024-01-01", insights[0].DateStart)
		assert.Equal(t, []string{"last_30d"}, gotQuery["date_preset"])
		assert.Empty(t, gotQuery["time_range"])
	})

	t.Run("período completo vira time_range", func(t *testing.T) {
		var gotQuery map[string][]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Write([]byte(`{"data":[]}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.GetInsights("act_1", "tok", &domain.InsightFilters{
			StartDate: "2024-01-01",
			EndDate:   "2024-01-31",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{`{"since":"2024-01-01","until":"2024-01-31"}`}, gotQuery["time_range"])
		assert.Empty(t, gotQuery["date_preset"])
	})

	t.Run("período parcial é rejeitado sem chamar a API", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.GetInsights("act_1", "tok", &domain.InsightFilters{StartDate: "2024-01-01"})
		assert.ErrorIs(t, err, ErrPartialDateRange)

		_, err = client.GetInsights("act_1", "tok", &domain.InsightFilters{EndDate: "2024-01-31"})
		assert.ErrorIs(t, err, ErrPartialDateRange)

		assert.False(t, called)
	})
}

func TestHandleResponseErrors(t *testing.T) {
	t.Run("payload de erro embutido vira erro mesmo com status 200", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"error":{"message":"Unsupported get request","type":"GraphMethodException","code":100}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.ListCampaigns("act_1", "tok")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "código 100")
		// O token nunca pode vazar na mensagem de erro
		assert.NotContains(t, err.Error(), "tok")
	})

	t.Run("erro de token expirado é identificado pelo código 190", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"Error validating access token","type":"OAuthException","code":190}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.ListAdAccounts("tok")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "token inválido ou expirado")
	})

	t.Run("status não-2xx sem payload de erro vira erro", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("Bad Gateway"))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.ListAdAccounts("tok")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})
}

func TestListCampaigns(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/act_123/campaigns", r.URL.Path)
		assert.Equal(t, "tok", r.URL.Query().Get("access_token"))
		w.Write([]byte(`{"data":[
			{"id":"c1","name":"Summer Sale","status":"ACTIVE","daily_budget":"10000","spend":"2450.00","impressions":"125000","clicks":"3200"}
		]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	// O prefixo act_ é adicionado quando ausente
	campaigns, err := client.ListCampaigns("123", "tok")
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	assert.Equal(t, "c1", campaigns[0].ID)
	assert.Equal(t, "2450.00", campaigns[0].Spend)
}

func TestUpdateCampaignStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/c1", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "PAUSED", r.PostForm.Get("status"))
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	err := client.UpdateCampaignStatus("c1", "tok", "PAUSED")
	assert.NoError(t, err)
}

func TestValidateAccessToken(t *testing.T) {
	t.Run("token válido", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":"10001","name":"Ana"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		valid, err := client.ValidateAccessToken("tok")
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("token rejeitado pela plataforma retorna false sem erro", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"Invalid OAuth access token","type":"OAuthException","code":190}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		valid, err := client.ValidateAccessToken("tok")
		require.NoError(t, err)
		assert.False(t, valid)
	})
}
