package domain

import (
	"errors"
	"time"
)

// Erros da camada de tokens e do provedor de analytics. São sentinelas
// tipados: os chamadores decidem a experiência do usuário por errors.Is,
// nunca por comparação de substrings de mensagem
var (
	// ErrNotConnected indica que o usuário nunca conectou a conta do Google.
	// A ação esperada é "conectar sua conta", não uma nova tentativa
	ErrNotConnected = errors.New("conta do Google não conectada")

	// ErrTokenRefreshFailed indica que o provedor rejeitou o refresh token
	// armazenado; a credencial não é mais utilizável e o usuário precisa
	// reautorizar
	ErrTokenRefreshFailed = errors.New("falha ao renovar o token de acesso")

	// ErrMissingRefreshToken indica uma tentativa de gravar um primeiro
	// token sem refresh token
	ErrMissingRefreshToken = errors.New("refresh token ausente na concessão inicial")
)

// GoogleToken é o registro de credenciais OAuth de um usuário. Um registro
// por usuário (semântica de upsert); mutado apenas na concessão inicial e
// nas renovações
type GoogleToken struct {
	UserID       int       `json:"user_id"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	ExpiresAt    time.Time `json:"expires_at"`
	Scope        string    `json:"scope"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ExpiresWithin informa se o token expira dentro da janela de segurança,
// tratando como vencido um token que morreria no meio de uma requisição
func (t *GoogleToken) ExpiresWithin(buffer time.Duration, now time.Time) bool {
	return !now.Before(t.ExpiresAt.Add(-buffer))
}

// ConnectionStatus descreve o estado da conexão com o Google para a UI
type ConnectionStatus struct {
	Connected   bool       `json:"connected"`
	Scope       string     `json:"scope,omitempty"`
	ConnectedAt *time.Time `json:"connected_at,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}
