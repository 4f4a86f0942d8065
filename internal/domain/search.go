package domain

import "time"

// Dimensões aceitas pelo Search Console na consulta de analytics.
// A ordem das dimensões na consulta define a ordem das chaves nas linhas.
const (
	DimensionQuery            = "query"
	DimensionPage             = "page"
	DimensionCountry          = "country"
	DimensionDevice           = "device"
	DimensionSearchAppearance = "searchAppearance"
)

// MaxSearchRowLimit é o teto de linhas por consulta imposto pelo provedor.
const MaxSearchRowLimit = 1000

// SearchFilters define o período de uma consulta de métricas de busca
type SearchFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// SearchQuery representa uma consulta de métricas ao Search Console
type SearchQuery struct {
	StartDate  time.Time
	EndDate    time.Time
	Dimensions []string
	RowLimit   int
	StartRow   int
}

// SearchMetricRow é uma linha de métricas dimensionadas retornada pelo
// provedor. Keys é posicional: Keys[0] corresponde à primeira dimensão
// solicitada, Keys[1] à segunda
type SearchMetricRow struct {
	Keys        []string `json:"keys"`
	Clicks      int      `json:"clicks"`
	Impressions int      `json:"impressions"`
	CTR         float64  `json:"ctr"`
	Position    float64  `json:"position"`
}

// Query retorna a primeira chave da linha, que por convenção do motor é o
// texto da consulta de busca quando a dimensão "query" foi solicitada
func (r SearchMetricRow) Query() string {
	if len(r.Keys) == 0 {
		return ""
	}
	return r.Keys[0]
}

// Page retorna a segunda chave da linha quando duas dimensões foram
// solicitadas (ex.: query + page)
func (r SearchMetricRow) Page() string {
	if len(r.Keys) < 2 {
		return ""
	}
	return r.Keys[1]
}
