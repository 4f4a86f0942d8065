package recommending

import (
	"context"

	"github.com/vfg2006/content-insights-api/internal/domain"
)

// TextGenerator define a interface para o modelo generativo de texto
type TextGenerator interface {
	// GenerateContent envia um prompt e devolve o texto bruto da resposta
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Opportunist define a interface para obter as oportunidades pontuadas
type Opportunist interface {
	// GetOpportunities obtém as oportunidades de conteúdo do período filtrado
	GetOpportunities(ctx context.Context, userID int, filters *domain.SearchFilters) (*domain.OpportunityResponse, error)
}

// Recommender define a interface do caso de uso de recomendações
type Recommender interface {
	// GetRecommendations devolve as recomendações do usuário, regenerando
	// quando o cache está vazio, vencido ou quando forceRefresh é pedido
	GetRecommendations(ctx context.Context, userID int, forceRefresh bool) (*domain.RecommendationResponse, error)

	// InvalidateRecommendations descarta o cache do usuário
	InvalidateRecommendations(userID int) error
}
