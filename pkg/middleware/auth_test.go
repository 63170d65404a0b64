package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-copilot-api/internal/config"
	"github.com/vfg2006/ads-copilot-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-copilot-api/pkg/middleware"
)

func protectedHandler(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.Auth.SecretKey = "segredo-de-teste"
	cfg.Auth.TokenTTLMinutes = 60

	// ValidateToken não toca o repositório de usuários
	service := authenticating.NewService(nil, cfg)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return middleware.AuthMiddleware(service)(next)
}

func TestAuthMiddleware(t *testing.T) {
	handler := protectedHandler(t)

	t.Run("rota pública passa sem token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("sem header Authorization retorna 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/meta/ad-accounts", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token adulterado retorna 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/meta/ad-accounts", nil)
		req.Header.Set("Authorization", "Bearer nao.e.um.jwt")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid or expired token")
	})
}
