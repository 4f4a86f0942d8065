package googleclient

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	googledomain "github.com/vfg2006/content-insights-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/content-insights-api/infrastructure/repository"
	"github.com/vfg2006/content-insights-api/internal/config"
	"github.com/vfg2006/content-insights-api/internal/domain"
)

// TokenManager gerencia os tokens OAuth do Google por usuário.
// A renovação é serializada por usuário para evitar que requisições
// concorrentes disparem múltiplos refreshes do mesmo refresh token
type TokenManager struct {
	cfg       *config.Config
	tokenRepo repository.GoogleTokenRepository

	mu        sync.Mutex
	userLocks map[int]*sync.Mutex

	// now é injetável para os testes de janela de expiração
	now func() time.Time
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(cfg *config.Config, tokenRepo repository.GoogleTokenRepository) *TokenManager {
	return &TokenManager{
		cfg:       cfg,
		tokenRepo: tokenRepo,
		userLocks: make(map[int]*sync.Mutex),
		now:       time.Now,
	}
}

func (tm *TokenManager) lockFor(userID int) *sync.Mutex {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	lock, ok := tm.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		tm.userLocks[userID] = lock
	}
	return lock
}

func (tm *TokenManager) expiryBuffer() time.Duration {
	return time.Duration(tm.cfg.Google.TokenBufferMinutes) * time.Minute
}

// StoreTokens persiste os tokens obtidos na troca do código de autorização
func (tm *TokenManager) StoreTokens(userID int, tokenResp *googledomain.TokenResponse) error {
	token := &domain.GoogleToken{
		UserID:       userID,
		AccessToken:  tokenResp.AccessToken,
		RefreshToken: tokenResp.RefreshToken,
		ExpiresAt:    CalculateTokenExpiration(tokenResp.ExpiresIn, tm.now()),
		Scope:        tokenResp.Scope,
	}

	if err := tm.tokenRepo.Upsert(token); err != nil {
		return fmt.Errorf("erro ao persistir tokens do usuário: %w", err)
	}

	logrus.WithField("user_id", userID).Infof("Tokens do Google armazenados com sucesso. Expira em: %s",
		token.ExpiresAt.Format(time.RFC3339))

	return nil
}

// GetValidAccessToken devolve um access token válido para o usuário,
// renovando-o quando estiver dentro da janela de expiração
func (tm *TokenManager) GetValidAccessToken(ctx context.Context, userID int) (string, error) {
	lock := tm.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	token, err := tm.tokenRepo.GetByUserID(userID)
	if err != nil {
		return "", fmt.Errorf("erro ao buscar token do usuário: %w", err)
	}
	if token == nil {
		return "", domain.ErrNotConnected
	}

	if !token.ExpiresWithin(tm.expiryBuffer(), tm.now()) {
		return token.AccessToken, nil
	}

	logrus.WithField("user_id", userID).Info("Token do Google dentro da janela de expiração. Renovando...")

	refreshed, err := tm.refresh(ctx, token)
	if err != nil {
		return "", err
	}

	return refreshed.AccessToken, nil
}

// refresh renova o access token do usuário e persiste o resultado.
// Precisa ser chamado com o lock do usuário em posse
func (tm *TokenManager) refresh(ctx context.Context, token *domain.GoogleToken) (*domain.GoogleToken, error) {
	if token.RefreshToken == "" {
		return nil, domain.ErrMissingRefreshToken
	}

	tokenResp, err := RefreshAccessToken(
		ctx,
		tm.cfg.Google.OAuthTokenURL,
		token.RefreshToken,
		tm.cfg.Google.ClientID,
		tm.cfg.Google.ClientSecret,
	)
	if err != nil {
		var provErr *googledomain.ProviderError
		if errors.As(err, &provErr) && provErr.StatusCode >= 400 && provErr.StatusCode < 500 {
			logrus.WithField("user_id", token.UserID).
				Error("O refresh token foi revogado ou expirou. É necessário reconectar a conta")
			return nil, fmt.Errorf("%w: %v", domain.ErrTokenRefreshFailed, err)
		}
		return nil, fmt.Errorf("erro ao renovar token: %w", err)
	}

	token.AccessToken = tokenResp.AccessToken
	token.ExpiresAt = CalculateTokenExpiration(tokenResp.ExpiresIn, tm.now())
	if tokenResp.RefreshToken != "" {
		token.RefreshToken = tokenResp.RefreshToken
	}
	if tokenResp.Scope != "" {
		token.Scope = tokenResp.Scope
	}

	if err := tm.tokenRepo.Upsert(token); err != nil {
		return nil, fmt.Errorf("erro ao persistir token renovado: %w", err)
	}

	logrus.WithField("user_id", token.UserID).Infof("Token do Google renovado com sucesso. Expira em: %s",
		token.ExpiresAt.Format(time.RFC3339))

	return token, nil
}

// ConnectionStatus informa se o usuário tem uma conexão ativa com o Google
func (tm *TokenManager) ConnectionStatus(userID int) (*domain.ConnectionStatus, error) {
	token, err := tm.tokenRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar token do usuário: %w", err)
	}
	if token == nil {
		return &domain.ConnectionStatus{Connected: false}, nil
	}

	return &domain.ConnectionStatus{
		Connected:   true,
		Scope:       token.Scope,
		ConnectedAt: &token.CreatedAt,
		ExpiresAt:   &token.ExpiresAt,
	}, nil
}

// Disconnect remove os tokens do usuário
func (tm *TokenManager) Disconnect(userID int) error {
	lock := tm.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	if err := tm.tokenRepo.DeleteByUserID(userID); err != nil {
		return fmt.Errorf("erro ao remover tokens do usuário: %w", err)
	}

	logrus.WithField("user_id", userID).Info("Conexão com o Google removida")

	return nil
}
