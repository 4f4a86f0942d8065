package googledomain

import (
	"fmt"
	"net/http"
)

// ProviderError representa uma resposta de erro das APIs do Google.
// Carrega o status HTTP e o corpo bruto para diagnóstico
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("erro na API do Google. Status: %d, Resposta: %s", e.StatusCode, e.Body)
}

// IsAuthError indica se o erro exige reconexão do usuário
func (e *ProviderError) IsAuthError() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}
