package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/content-insights-api/internal/usecases/recommending"
	"github.com/vfg2006/content-insights-api/pkg/apiErrors"
	"github.com/vfg2006/content-insights-api/pkg/log"
	"github.com/vfg2006/content-insights-api/pkg/middleware"
)

// GetRecommendations devolve as recomendações de conteúdo do usuário.
// refresh=true força a regeneração ignorando o cache
func GetRecommendations(service recommending.Recommender) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		forceRefresh := r.URL.Query().Get("refresh") == "true"

		logger.WithFields(log.Fields{
			"user_id":       claims.UserID,
			"force_refresh": forceRefresh,
		}).Info("search: fetching content recommendations")

		result, err := service.GetRecommendations(r.Context(), claims.UserID, forceRefresh)
		if err != nil {
			writeSearchError(w, logger, claims.UserID, err)
			return
		}

		logger.WithFields(log.Fields{
			"user_id":         claims.UserID,
			"recommendations": len(result.Recommendations),
			"cached":          result.Cached,
		}).Info("search: successfully retrieved recommendations")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	})
}

// InvalidateRecommendations descarta o cache de recomendações do usuário.
// A próxima leitura regenera o conjunto
func InvalidateRecommendations(service recommending.Recommender) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if err := service.InvalidateRecommendations(claims.UserID); err != nil {
			logger.WithFields(log.Fields{
				"user_id": claims.UserID,
				"error":   err.Error(),
			}).Error("search: failed to invalidate recommendation cache")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao descartar recomendações", nil)
			return
		}

		logger.WithField("user_id", claims.UserID).Info("search: recommendation cache invalidated")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Recomendações descartadas com sucesso",
		})
	})
}
