package googleclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	googledomain "github.com/vfg2006/content-insights-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/content-insights-api/internal/domain"
)

// QuerySearchAnalytics consulta o endpoint searchAnalytics/query do
// Search Console para o site configurado. O rowLimit é limitado ao
// máximo aceito pela API
func (c *GoogleClient) QuerySearchAnalytics(ctx context.Context, userID int, query *domain.SearchQuery) (*googledomain.SearchAnalyticsResponse, error) {
	accessToken, err := c.TokenManager.GetValidAccessToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	rowLimit := query.RowLimit
	if rowLimit <= 0 || rowLimit > domain.MaxSearchRowLimit {
		rowLimit = domain.MaxSearchRowLimit
	}

	// Sem dimensões o provedor responde uma única linha agregada, sem
	// chaves. Agrupar por consulta é o comportamento esperado aqui
	dimensions := query.Dimensions
	if len(dimensions) == 0 {
		dimensions = []string{domain.DimensionQuery}
	}

	reqBody := &googledomain.SearchAnalyticsRequest{
		StartDate:  query.StartDate.Format(time.DateOnly),
		EndDate:    query.EndDate.Format(time.DateOnly),
		Dimensions: dimensions,
		RowLimit:   rowLimit,
		StartRow:   query.StartRow,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar consulta: %w", err)
	}

	endpoint := fmt.Sprintf("%s/sites/%s/searchAnalytics/query",
		c.Cfg.Google.SearchConsoleURL,
		url.PathEscape(c.Cfg.Google.SiteURL),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"status":  resp.StatusCode,
		}).Errorf("Erro na consulta ao Search Console. Resposta: %s", string(body))
		return nil, &googledomain.ProviderError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var response googledomain.SearchAnalyticsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &response, nil
}
