package google

import (
	"context"
	"errors"
	"math"

	"github.com/sirupsen/logrus"
	googledomain "github.com/vfg2006/content-insights-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/content-insights-api/infrastructure/integrator/google/googleclient"
	"github.com/vfg2006/content-insights-api/internal/config"
	"github.com/vfg2006/content-insights-api/internal/domain"
)

// Integrator expõe as métricas do Search Console para os casos de uso.
// Erros de autenticação do provedor viram sentinelas de domínio para que
// as camadas de cima não dependam do formato de erro do Google
type Integrator struct {
	cfg    *config.Config
	Client googleclient.Client
}

func New(cfg *config.Config, client googleclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
	}
}

// QueryMetrics consulta métricas de busca agregadas pelas dimensões pedidas
func (s *Integrator) QueryMetrics(ctx context.Context, userID int, query *domain.SearchQuery) ([]domain.SearchMetricRow, error) {
	resp, err := s.Client.QuerySearchAnalytics(ctx, userID, query)
	if err != nil {
		if errors.Is(err, domain.ErrNotConnected) || errors.Is(err, domain.ErrTokenRefreshFailed) {
			return nil, err
		}

		var provErr *googledomain.ProviderError
		if errors.As(err, &provErr) && provErr.IsAuthError() {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"status":  provErr.StatusCode,
			}).Error("search: provider rejected the access token")
			return nil, domain.ErrTokenRefreshFailed
		}

		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Error("search: failed to query search analytics")
		return nil, err
	}

	rows := make([]domain.SearchMetricRow, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		rows = append(rows, domain.SearchMetricRow{
			Keys:        row.Keys,
			Clicks:      int(math.Round(row.Clicks)),
			Impressions: int(math.Round(row.Impressions)),
			CTR:         row.CTR,
			Position:    row.Position,
		})
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"rows":    len(rows),
	}).Debug("search: successfully retrieved search analytics")

	return rows, nil
}

// AuthCodeURL monta a URL de consentimento para o fluxo de conexão
func (s *Integrator) AuthCodeURL(state string) string {
	return s.Client.AuthCodeURL(state)
}

// CompleteConnection finaliza o fluxo OAuth trocando o código por tokens
func (s *Integrator) CompleteConnection(ctx context.Context, userID int, code string) error {
	return s.Client.ExchangeAuthCode(ctx, userID, code)
}

// ConnectionStatus informa o estado da conexão do usuário
func (s *Integrator) ConnectionStatus(userID int) (*domain.ConnectionStatus, error) {
	return s.Client.ConnectionStatus(userID)
}

// Disconnect remove a conexão do usuário com o Google
func (s *Integrator) Disconnect(userID int) error {
	return s.Client.Disconnect(userID)
}
