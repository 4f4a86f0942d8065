package domain

import "time"

// RecommendationType define o tipo de ação de conteúdo sugerida
type RecommendationType string

const (
	RecommendationNewPost  RecommendationType = "new_post"
	RecommendationOptimize RecommendationType = "optimize"
	RecommendationQuickWin RecommendationType = "quick_win"
	RecommendationLongTail RecommendationType = "long_tail"
)

// Níveis de confiança e prioridade atribuídos pelo modelo generativo
const (
	LevelHigh   = "high"
	LevelMedium = "medium"
	LevelLow    = "low"
)

// Recommendation é uma recomendação de conteúdo gerada pelo modelo a partir
// das oportunidades pontuadas. Campos opcionais ficam vazios em vez de nulos
type Recommendation struct {
	ID                   string             `json:"id"`
	Type                 RecommendationType `json:"type"`
	Title                string             `json:"title"`
	TargetKeyword        string             `json:"target_keyword"`
	SuggestedTitle       string             `json:"suggested_title,omitempty"`
	Explanation          string             `json:"explanation"`
	EstimatedOpportunity int                `json:"estimated_opportunity"`
	Confidence           string             `json:"confidence"`
	Priority             string             `json:"priority"`
	RelatedQueries       []string           `json:"related_queries"`
	ExistingPostID       string             `json:"existing_post_id,omitempty"`
}

// RecommendationCacheEntry é o conjunto de recomendações persistido para um
// usuário. Invariante: no máximo uma entrada viva (não expirada) por usuário;
// a escrita substitui integralmente as entradas anteriores
type RecommendationCacheEntry struct {
	ID              string           `json:"id"`
	UserID          int              `json:"user_id"`
	Recommendations []Recommendation `json:"recommendations"`
	CreatedAt       time.Time        `json:"created_at"`
	ExpiresAt       time.Time        `json:"expires_at"`
}

// Expired informa se a entrada está vencida no instante informado
func (e *RecommendationCacheEntry) Expired(now time.Time) bool {
	return !e.ExpiresAt.After(now)
}

// RecommendationResponse é a resposta do endpoint de recomendações
type RecommendationResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
	Cached          bool             `json:"cached"`
	GeneratedAt     time.Time        `json:"generated_at"`
	ExpiresAt       time.Time        `json:"expires_at"`
}
