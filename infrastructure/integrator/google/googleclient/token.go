package googleclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	googledomain "github.com/vfg2006/content-insights-api/infrastructure/integrator/google/domain"
)

// AuthCodeURL monta a URL de consentimento do OAuth do Google.
// O state é devolvido intacto no callback e é usado para identificar o usuário
func AuthCodeURL(authURL, clientID, redirectURI, scope, state string) string {
	params := url.Values{}
	params.Add("client_id", clientID)
	params.Add("redirect_uri", redirectURI)
	params.Add("response_type", "code")
	params.Add("scope", scope)
	params.Add("access_type", "offline")
	params.Add("prompt", "consent")
	params.Add("state", state)

	return authURL + "?" + params.Encode()
}

// ExchangeAuthCode troca o código de autorização por tokens de acesso e refresh
func ExchangeAuthCode(ctx context.Context, tokenURL, code, clientID, clientSecret, redirectURI string) (*googledomain.TokenResponse, error) {
	if code == "" {
		return nil, fmt.Errorf("código de autorização não pode ser vazio")
	}

	params := url.Values{}
	params.Add("grant_type", "authorization_code")
	params.Add("code", code)
	params.Add("client_id", clientID)
	params.Add("client_secret", clientSecret)
	params.Add("redirect_uri", redirectURI)

	return postTokenRequest(ctx, tokenURL, params)
}

// RefreshAccessToken obtém um novo access token a partir do refresh token.
// O Google normalmente omite o refresh_token nessa resposta
func RefreshAccessToken(ctx context.Context, tokenURL, refreshToken, clientID, clientSecret string) (*googledomain.TokenResponse, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("refresh token não pode ser vazio")
	}

	params := url.Values{}
	params.Add("grant_type", "refresh_token")
	params.Add("refresh_token", refreshToken)
	params.Add("client_id", clientID)
	params.Add("client_secret", clientSecret)

	return postTokenRequest(ctx, tokenURL, params)
}

func postTokenRequest(ctx context.Context, tokenURL string, params url.Values) (*googledomain.TokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao chamar endpoint de token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.Errorf("Erro obtendo token do Google. Status: %d, Resposta: %s", resp.StatusCode, string(body))
		return nil, &googledomain.ProviderError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var tokenResp googledomain.TokenResponse
	err = json.Unmarshal(body, &tokenResp)
	if err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token retornado pela API é vazio")
	}

	return &tokenResp, nil
}

// CalculateTokenExpiration calcula a data de expiração do token com base
// no tempo de expiração em segundos informado pelo Google
func CalculateTokenExpiration(expiresIn int64, now time.Time) time.Time {
	return now.Add(time.Duration(expiresIn) * time.Second)
}
