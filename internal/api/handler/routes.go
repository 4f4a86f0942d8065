package handler

import (
	"net/http"

	"github.com/vfg2006/content-insights-api/infrastructure/integrator/google"
	"github.com/vfg2006/content-insights-api/internal/api/handler/router"
	"github.com/vfg2006/content-insights-api/internal/config"
	"github.com/vfg2006/content-insights-api/internal/usecases/opportunity"
	"github.com/vfg2006/content-insights-api/internal/usecases/performance"
	"github.com/vfg2006/content-insights-api/internal/usecases/recommending"
	"github.com/vfg2006/content-insights-api/pkg/middleware"
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

// SearchConnection retorna as rotas do ciclo de vida da conexão com o Google
func SearchConnection(service *google.Integrator, recommender recommending.Recommender, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/search/connect",
			Method:      http.MethodGet,
			Handler:     ConnectSearchAccount(service, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			// Rota pública: o Google chama sem o nosso JWT, o state assinado
			// identifica o usuário
			Path:    "/v1/search/callback",
			Method:  http.MethodGet,
			Handler: SearchCallback(service, cfg),
		},
		{
			Path:        "/v1/search/status",
			Method:      http.MethodGet,
			Handler:     SearchConnectionStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/search/connection",
			Method:      http.MethodDelete,
			Handler:     DisconnectSearchAccount(service, recommender),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func SearchInsights(opportunist opportunity.Opportunist, comparator performance.Comparator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/search/opportunities",
			Method:      http.MethodGet,
			Handler:     GetSearchOpportunities(opportunist),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/search/performance",
			Method:      http.MethodGet,
			Handler:     GetSearchPerformance(comparator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Recommendations(service recommending.Recommender) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/search/recommendations",
			Method:      http.MethodGet,
			Handler:     GetRecommendations(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/search/recommendations",
			Method:      http.MethodDelete,
			Handler:     InvalidateRecommendations(service),
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
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
