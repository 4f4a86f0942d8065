package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/content-insights-api/internal/domain"
	"github.com/vfg2006/content-insights-api/internal/usecases/opportunity"
	"github.com/vfg2006/content-insights-api/pkg/apiErrors"
	"github.com/vfg2006/content-insights-api/pkg/log"
	"github.com/vfg2006/content-insights-api/pkg/middleware"
	"github.com/vfg2006/content-insights-api/pkg/utils"
)

// GetSearchOpportunities devolve as consultas pontuadas como oportunidades
// de conteúdo para o período filtrado
func GetSearchOpportunities(service opportunity.Opportunist) http.Handler {
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

		logger.WithField("user_id", claims.UserID).Info("search: fetching content opportunities")

		result, err := service.GetOpportunities(r.Context(), claims.UserID, filters)
		if err != nil {
			writeSearchError(w, logger, claims.UserID, err)
			return
		}

		logger.WithFields(log.Fields{
			"user_id":       claims.UserID,
			"opportunities": len(result.Opportunities),
		}).Info("search: successfully retrieved opportunities")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	})
}

// parseSearchFilters interpreta start_date e end_date da query string.
// Ambos ausentes significa "use a janela padrão"; apenas um presente é erro
func parseSearchFilters(r *http.Request) (*domain.SearchFilters, error) {
	startParam := r.URL.Query().Get("start_date")
	endParam := r.URL.Query().Get("end_date")

	if startParam == "" && endParam == "" {
		return nil, nil
	}
	if startParam == "" || endParam == "" {
		return nil, errors.New("start_date e end_date devem ser informados juntos")
	}

	startDate, err := utils.ParseDate(startParam)
	if err != nil {
		return nil, err
	}

	endDate, err := utils.ParseDate(endParam)
	if err != nil {
		return nil, err
	}

	if endDate.Before(*startDate) {
		return nil, errors.New("end_date anterior a start_date")
	}

	return &domain.SearchFilters{
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

// writeSearchError traduz os erros tipados do motor para a resposta da API
func writeSearchError(w http.ResponseWriter, logger log.Logger, userID int, err error) {
	switch {
	case errors.Is(err, domain.ErrNotConnected):
		logger.WithField("user_id", userID).Info("search: user has no google connection")
		apiErrors.WriteError(w, apiErrors.ErrSearchNotConnected, "Conecte sua conta do Google para ver os dados de busca", nil)
	case errors.Is(err, domain.ErrTokenRefreshFailed):
		logger.WithField("user_id", userID).Warn("search: google credential requires reauthorization")
		apiErrors.WriteError(w, apiErrors.ErrSearchReauthRequired, "Credencial expirada, reconecte sua conta do Google", nil)
	default:
		logger.WithFields(log.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Error("search: provider request failed")
		apiErrors.WriteError(w, apiErrors.ErrSearchProvider, "Erro ao consultar o provedor de busca", nil)
	}
}
