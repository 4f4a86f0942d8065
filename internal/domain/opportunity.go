package domain

// OpportunityCategory classifica uma consulta de busca pelo tipo de conteúdo
// que melhor a atenderia
type OpportunityCategory string

const (
	CategoryHowTo   OpportunityCategory = "how-to"
	CategoryColor   OpportunityCategory = "color"
	CategoryProduct OpportunityCategory = "product"
	CategoryGeneral OpportunityCategory = "general"
)

// Opportunity é uma consulta de busca pontuada como valendo conteúdo novo ou
// otimizado. Derivada por requisição, nunca persistida
type Opportunity struct {
	Query              string              `json:"query"`
	Category           OpportunityCategory `json:"category"`
	Impressions        int                 `json:"impressions"`
	Clicks             int                 `json:"clicks"`
	CTR                float64             `json:"ctr"`
	Position           float64             `json:"position"`
	Score              float64             `json:"score"`
	EstimatedPotential int                 `json:"estimated_potential"`
}

// OpportunityResponse é a resposta do endpoint de oportunidades
type OpportunityResponse struct {
	Opportunities []Opportunity  `json:"opportunities"`
	TotalRows     int            `json:"total_rows"`
	Filters       *SearchFilters `json:"filters,omitempty"`
}
