package googledomain

// SearchAnalyticsRequest representa o corpo da consulta enviada ao
// endpoint searchAnalytics/query do Search Console
type SearchAnalyticsRequest struct {
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	Dimensions []string `json:"dimensions,omitempty"`
	RowLimit   int      `json:"rowLimit,omitempty"`
	StartRow   int      `json:"startRow,omitempty"`
}

// SearchAnalyticsResponse representa a resposta do Search Console
type SearchAnalyticsResponse struct {
	Rows                    []SearchAnalyticsRow `json:"rows"`
	ResponseAggregationType string               `json:"responseAggregationType,omitempty"`
}

// SearchAnalyticsRow é uma linha de métricas agregadas pelas dimensões
// pedidas na consulta. Keys segue a ordem das dimensões
type SearchAnalyticsRow struct {
	Keys        []string `json:"keys"`
	Clicks      float64  `json:"clicks"`
	Impressions float64  `json:"impressions"`
	CTR         float64  `json:"ctr"`
	Position    float64  `json:"position"`
}

// TokenResponse representa a resposta do endpoint de token do OAuth do Google
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int64  `json:"expires_in"`
	Scope        string `json:"scope"`
	TokenType    string `json:"token_type"`
}
