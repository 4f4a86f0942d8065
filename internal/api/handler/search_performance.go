package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/content-insights-api/internal/usecases/performance"
	"github.com/vfg2006/content-insights-api/pkg/apiErrors"
	"github.com/vfg2006/content-insights-api/pkg/log"
	"github.com/vfg2006/content-insights-api/pkg/middleware"
)

// GetSearchPerformance devolve as métricas por página com o diff do período
// anterior equivalente
func GetSearchPerformance(service performance.Comparator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		filters, err := parseSearchFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"user_id": claims.UserID,
				"error":   err.Error(),
			}).Warn("search: invalid date filters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas inválidas, use o formato YYYY-MM-DD", nil)
			return
		}

		logger.WithField("user_id", claims.UserID).Info("search: fetching page performance comparison")

		result, err := service.GetPagePerformance(r.Context(), claims.UserID, filters)
		if err != nil {
			writeSearchError(w, logger, claims.UserID, err)
			return
		}

		logger.WithFields(log.Fields{
			"user_id": claims.UserID,
			"pages":   len(result.Pages),
		}).Info("search: successfully retrieved page performance")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	})
}
