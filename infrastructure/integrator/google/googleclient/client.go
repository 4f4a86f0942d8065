package googleclient

import (
	"context"
	"net/http"
	"time"

	googledomain "github.com/vfg2006/content-insights-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/content-insights-api/internal/config"
	"github.com/vfg2006/content-insights-api/internal/domain"
)

type Client interface {
	QuerySearchAnalytics(ctx context.Context, userID int, query *domain.SearchQuery) (*googledomain.SearchAnalyticsResponse, error)
	AuthCodeURL(state string) string
	ExchangeAuthCode(ctx context.Context, userID int, code string) error
	ConnectionStatus(userID int) (*domain.ConnectionStatus, error)
	Disconnect(userID int) error
}

type GoogleClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
	httpClient   *http.Client
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	client := &GoogleClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	return client
}

// AuthCodeURL monta a URL de consentimento para iniciar a conexão
func (c *GoogleClient) AuthCodeURL(state string) string {
	return AuthCodeURL(
		c.Cfg.Google.OAuthAuthURL,
		c.Cfg.Google.ClientID,
		c.Cfg.Google.RedirectURI,
		c.Cfg.Google.Scope,
		state,
	)
}

// ExchangeAuthCode troca o código do callback por tokens e os persiste
func (c *GoogleClient) ExchangeAuthCode(ctx context.Context, userID int, code string) error {
	tokenResp, err := ExchangeAuthCode(
		ctx,
		c.Cfg.Google.OAuthTokenURL,
		code,
		c.Cfg.Google.ClientID,
		c.Cfg.Google.ClientSecret,
		c.Cfg.Google.RedirectURI,
	)
	if err != nil {
		return err
	}

	return c.TokenManager.StoreTokens(userID, tokenResp)
}

// ConnectionStatus informa o estado da conexão do usuário
func (c *GoogleClient) ConnectionStatus(userID int) (*domain.ConnectionStatus, error) {
	return c.TokenManager.ConnectionStatus(userID)
}

// Disconnect remove a conexão do usuário
func (c *GoogleClient) Disconnect(userID int) error {
	return c.TokenManager.Disconnect(userID)
}
