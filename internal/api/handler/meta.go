package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-copilot-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-copilot-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-copilot-api/internal/config"
	"github.com/vfg2006/ads-copilot-api/internal/domain"
	"github.com/vfg2006/ads-copilot-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-copilot-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-copilot-api/pkg/apiErrors"
	"github.com/vfg2006/ads-copilot-api/pkg/middleware"
	"github.com/vfg2006/ads-copilot-api/pkg/utils"
)

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type UpdateBudgetRequest struct {
	DailyBudget int64 `json:"daily_budget"`
}

type ExecuteStrategyRequest struct {
	Strategy *domain.OptimizationStrategy `json:"strategy"`
}

// metaCredentials resolve o token de acesso à plataforma: o parâmetro
// access_token tem precedência; sem ele, usa o token vinculado ao usuário.
// No modo sandbox o token pode ficar vazio.
func metaCredentials(w http.ResponseWriter, r *http.Request, auth authenticating.Authenticator, cfg *config.Config) (string, *string, bool) {
	userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return "", nil, false
	}

	if token := r.URL.Query().Get("access_token"); token != "" {
		return token, userClaims.MetaAccountID, true
	}

	if userClaims.HasMetaToken {
		user, err := auth.GetUserProfile(userClaims.UserID)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao obter dados do usuário", nil)
			return "", nil, false
		}

		if user.MetaAccessToken != nil && *user.MetaAccessToken != "" {
			return *user.MetaAccessToken, user.MetaAccountID, true
		}
	}

	if !cfg.Meta.SandboxEnabled {
		handleAuthError(w, authenticating.NewUserAuthError(
			authenticating.ErrMissingMetaToken, apiErrors.ErrMissingMetaToken, userClaims.UserID,
			"vincule um token da plataforma de anúncios ao seu usuário ou informe access_token",
		), "Erro ao resolver credenciais da plataforma de anúncios")
		return "", nil, false
	}

	return "", userClaims.MetaAccountID, true
}

func pathParam(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

func AdAccountList(integrator meta.Integrator, auth authenticating.Authenticator, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken, _, ok := metaCredentials(w, r, auth, cfg)
		if !ok {
			return
		}

		accounts, err := integrator.ListAdAccounts(accessToken)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao listar contas de anúncio", nil)
			return
		}

		writeJSON(w, map[string]any{"accounts": accounts})
	}
}

func CampaignList(integrator meta.Integrator, auth authenticating.Authenticator, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken, _, ok := metaCredentials(w, r, auth, cfg)
		if !ok {
			return
		}

		campaigns, err := integrator.ListCampaigns(pathParam(r, "id"), accessToken)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao listar campanhas", nil)
			return
		}

		writeJSON(w, map[string]any{"campaigns": campaigns})
	}
}

func InsightList(integrator meta.Integrator, auth authenticating.Authenticator, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken, _, ok := metaCredentials(w, r, auth, cfg)
		if !ok {
			return
		}

		filters := &domain.InsightFilters{
			StartDate: r.URL.Query().Get("start_date"),
			EndDate:   r.URL.Query().Get("end_date"),
		}

		for _, dateStr := range []string{filters.StartDate, filters.EndDate} {
			if _, err := utils.ParseDate(dateStr); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
				return
			}
		}

		insights, err := integrator.GetInsights(pathParam(r, "id"), accessToken, filters)
		if err != nil {
			if errors.Is(err, metaclient.ErrPartialDateRange) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar insights", nil)
			return
		}

		writeJSON(w, map[string]any{"insights": insights})
	}
}

func AdSetList(integrator meta.Integrator, auth authenticating.Authenticator, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken, _, ok := metaCredentials(w, r, auth, cfg)
		if !ok {
			return
		}

		adsets, err := integrator.ListAdSets(pathParam(r, "id"), accessToken)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao listar conjuntos de anúncios", nil)
			return
		}

		writeJSON(w, map[string]any{"adsets": adsets})
	}
}

func AdList(integrator meta.Integrator, auth authenticating.Authenticator, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken, _, ok := metaCredentials(w, r, auth, cfg)
		if !ok {
			return
		}

		ads, err := integrator.ListAds(pathParam(r, "id"), accessToken)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao listar anúncios", nil)
			return
		}

		writeJSON(w, map[string]any{"ads": ads})
	}
}

func UpdateCampaignStatus(integrator meta.Integrator, auth authenticating.Authenticator, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken, _, ok := metaCredentials(w, r, auth, cfg)
		if !ok {
			return
		}

		var req UpdateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Status != domain.StatusActive && req.Status != domain.StatusPaused {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Status deve ser ACTIVE ou PAUSED", nil)
			return
		}

		campaignID := pathParam(r, "id")
		if !integrator.UpdateCampaignStatus(campaignID, accessToken, req.Status) {
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao atualizar status da campanha", nil)
			return
		}

		writeJSON(w, map[string]any{
			"success": true,
			"message": "Status da campanha atualizado para " + req.Status,
		})
	}
}

func UpdateCampaignBudget(integrator meta.Integrator, auth authenticating.Authenticator, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken, _, ok := metaCredentials(w, r, auth, cfg)
		if !ok {
			return
		}

		var req UpdateBudgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.DailyBudget <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Orçamento diário deve ser maior que zero", nil)
			return
		}

		campaignID := pathParam(r, "id")
		if !integrator.UpdateCampaignBudget(campaignID, accessToken, req.DailyBudget) {
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao atualizar orçamento da campanha", nil)
			return
		}

		writeJSON(w, map[string]any{
			"success": true,
			"message": "Orçamento diário da campanha atualizado",
		})
	}
}

func StrategyList(insighter insighting.Insighter, auth authenticating.Authenticator, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken, _, ok := metaCredentials(w, r, auth, cfg)
		if !ok {
			return
		}

		strategies, err := insighter.GenerateStrategies(pathParam(r, "id"), accessToken)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao gerar estratégias de otimização", nil)
			return
		}

		writeJSON(w, map[string]any{"strategies": strategies})
	}
}

func StrategyExecute(insighter insighting.Insighter, auth authenticating.Authenticator, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken, _, ok := metaCredentials(w, r, auth, cfg)
		if !ok {
			return
		}

		var req ExecuteStrategyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Strategy == nil || req.Strategy.CampaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Estratégia com campanha é obrigatória", nil)
			return
		}

		execution, err := insighter.ExecuteStrategy(req.Strategy, accessToken)
		if err != nil {
			logrus.WithError(err).Error("meta: failed to execute strategy")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao executar estratégia", nil)
			return
		}

		if execution.Status == "failed" {
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Nenhuma ação da estratégia pôde ser aplicada", execution)
			return
		}

		writeJSON(w, map[string]any{
			"success":   true,
			"message":   "Estratégia executada",
			"execution": execution,
		})
	}
}

func AccountPerformance(insighter insighting.Insighter, auth authenticating.Authenticator, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken, _, ok := metaCredentials(w, r, auth, cfg)
		if !ok {
			return
		}

		performance, err := insighter.AccountPerformance(pathParam(r, "id"), accessToken)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao calcular desempenho da conta", nil)
			return
		}

		writeJSON(w, performance)
	}
}

func PerformanceHistory(insighter insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		history, err := insighter.PerformanceHistory(pathParam(r, "id"), limit)
		if err != nil {
			logrus.WithError(err).Error("meta: failed to load performance history")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar histórico de desempenho", nil)
			return
		}

		writeJSON(w, map[string]any{"history": history})
	}
}

// ValidateMetaToken verifica um token da plataforma e, quando válido,
// retorna os dados do usuário dono do token
func ValidateMetaToken(integrator meta.Integrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken := r.URL.Query().Get("access_token")
		if accessToken == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro access_token é obrigatório", nil)
			return
		}

		valid := integrator.ValidateAccessToken(accessToken)

		response := map[string]any{"valid": valid}
		if valid {
			if user, err := integrator.GetUserInfo(accessToken); err == nil {
				response["user"] = user
			}
		}

		writeJSON(w, response)
	}
}
