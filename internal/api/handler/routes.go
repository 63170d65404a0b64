package handler

import (
	"net/http"

	"github.com/vfg2006/ads-copilot-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-copilot-api/internal/api/handler/router"
	"github.com/vfg2006/ads-copilot-api/internal/config"
	"github.com/vfg2006/ads-copilot-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-copilot-api/internal/usecases/chatting"
	"github.com/vfg2006/ads-copilot-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-copilot-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service, cfg),
		},
		{
			Path:    "/v1/auth/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/auth/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/auth/refresh",
			Method:      http.MethodPost,
			Handler:     Refresh(service, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func Chat(service chatting.Chatter, auth authenticating.Authenticator, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/chat/message",
			Method:      http.MethodPost,
			Handler:     ChatMessage(service, auth, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/chat/suggestions",
			Method:      http.MethodGet,
			Handler:     ChatSuggestions(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/chat/analyze",
			Method:      http.MethodPost,
			Handler:     ChatAnalyze(service, auth, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Meta(
	integrator meta.Integrator,
	insighter insighting.Insighter,
	auth authenticating.Authenticator,
	cfg *config.Config,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/meta/ad-accounts",
			Method:      http.MethodGet,
			Handler:     AdAccountList(integrator, auth, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/meta/campaigns/:id",
			Method:      http.MethodGet,
			Handler:     CampaignList(integrator, auth, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/meta/insights/:id",
			Method:      http.MethodGet,
			Handler:     InsightList(integrator, auth, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/meta/ad-sets/:id",
			Method:      http.MethodGet,
			Handler:     AdSetList(integrator, auth, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/meta/ads/:id",
			Method:      http.MethodGet,
			Handler:     AdList(integrator, auth, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/meta/campaigns/:id/status",
			Method:      http.MethodPost,
			Handler:     UpdateCampaignStatus(integrator, auth, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/meta/campaigns/:id/budget",
			Method:      http.MethodPost,
			Handler:     UpdateCampaignBudget(integrator, auth, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/meta/strategies/:id",
			Method:      http.MethodGet,
			Handler:     StrategyList(insighter, auth, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/meta/strategies/execute",
			Method:      http.MethodPost,
			Handler:     StrategyExecute(insighter, auth, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/meta/performance/:id",
			Method:      http.MethodGet,
			Handler:     AccountPerformance(insighter, auth, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/meta/performance/:id/history",
			Method:      http.MethodGet,
			Handler:     PerformanceHistory(insighter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/meta/validate-token",
			Method:      http.MethodGet,
			Handler:     ValidateMetaToken(integrator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     CronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
