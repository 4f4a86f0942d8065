package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/content-insights-api/infrastructure/integrator/google"
	"github.com/vfg2006/content-insights-api/internal/config"
	"github.com/vfg2006/content-insights-api/internal/domain"
	"github.com/vfg2006/content-insights-api/internal/usecases/recommending"
	"github.com/vfg2006/content-insights-api/pkg/apiErrors"
	"github.com/vfg2006/content-insights-api/pkg/log"
	"github.com/vfg2006/content-insights-api/pkg/middleware"
)

// stateTTL limita a vida do state do OAuth: o consentimento do Google
// normalmente leva segundos, nunca mais que alguns minutos
const stateTTL = 10 * time.Minute

// ConnectSearchAccount inicia o fluxo OAuth devolvendo a URL de
// consentimento. O state é um JWT curto carregando o usuário, validado de
// volta no callback
func ConnectSearchAccount(service *google.Integrator, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		state, err := buildStateToken(claims.UserID, cfg.SecretKey)
		if err != nil {
			logger.WithError(err).Error("search: failed to sign oauth state token")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar conexão", nil)
			return
		}

		logger.WithField("user_id", claims.UserID).Info("search: starting google connection flow")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"auth_url": service.AuthCodeURL(state),
		})
	})
}

// SearchCallback finaliza o fluxo OAuth. Rota pública: quem autentica a
// requisição é o state assinado, não o JWT de sessão
func SearchCallback(service *google.Integrator, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if oauthErr := r.URL.Query().Get("error"); oauthErr != "" {
			logger.WithField("oauth_error", oauthErr).Warn("search: user denied google consent")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Consentimento negado pelo usuário", nil)
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro code ausente", nil)
			return
		}

		userID, err := parseStateToken(r.URL.Query().Get("state"), cfg.SecretKey)
		if err != nil {
			logger.WithError(err).Warn("search: invalid oauth state token")
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "State inválido ou expirado", nil)
			return
		}

		if err := service.CompleteConnection(r.Context(), userID, code); err != nil {
			logger.WithFields(log.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Error("search: failed to exchange authorization code")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao trocar código de autorização", nil)
			return
		}

		logger.WithField("user_id", userID).Info("search: google account connected")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Conta do Google conectada com sucesso",
		})
	})
}

// SearchConnectionStatus informa o estado da conexão do usuário
func SearchConnectionStatus(service *google.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		status, err := service.ConnectionStatus(claims.UserID)
		if err != nil {
			logger.WithFields(log.Fields{
				"user_id": claims.UserID,
				"error":   err.Error(),
			}).Error("search: failed to read connection status")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar conexão", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	})
}

// DisconnectSearchAccount remove a conexão com o Google e descarta as
// recomendações cacheadas, que dependiam dos dados do provedor
func DisconnectSearchAccount(service *google.Integrator, recommender recommending.Recommender) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if err := service.Disconnect(claims.UserID); err != nil {
			logger.WithFields(log.Fields{
				"user_id": claims.UserID,
				"error":   err.Error(),
			}).Error("search: failed to disconnect google account")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover conexão", nil)
			return
		}

		if err := recommender.InvalidateRecommendations(claims.UserID); err != nil {
			logger.WithFields(log.Fields{
				"user_id": claims.UserID,
				"error":   err.Error(),
			}).Warn("search: failed to invalidate recommendations on disconnect")
		}

		logger.WithField("user_id", claims.UserID).Info("search: google account disconnected")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Conexão removida com sucesso",
		})
	})
}

func buildStateToken(userID int, secretKey string) (string, error) {
	claims := &domain.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(stateTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func parseStateToken(state, secretKey string) (int, error) {
	claims, err := middleware.ValidateToken(state, secretKey)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}
