package domain

import "time"

// Period é um intervalo fechado de datas (ambas inclusivas)
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// LengthDays retorna o comprimento do período em dias de calendário,
// contando as pontas. As datas são normalizadas para UTC para que
// transições de horário de verão não distorçam a contagem
func (p Period) LengthDays() int {
	start := time.Date(p.Start.Year(), p.Start.Month(), p.Start.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(p.End.Year(), p.End.Month(), p.End.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours()/24) + 1
}

// PeriodComparison compara as métricas de uma página entre o período atual e
// o período anterior equivalente. Presente apenas quando a página teve dados
// no período anterior
type PeriodComparison struct {
	PreviousClicks      int     `json:"previous_clicks"`
	PreviousImpressions int     `json:"previous_impressions"`
	ClicksChange        int     `json:"clicks_change"`
	ImpressionsChange   int     `json:"impressions_change"`
	ClicksChangePct     float64 `json:"clicks_change_pct"`
	NeedsAttention      bool    `json:"needs_attention"`
}

// PagePerformance agrega as métricas de busca de uma página do site no
// período consultado, com o diff do período anterior quando existir
type PagePerformance struct {
	Page        string            `json:"page"`
	Slug        string            `json:"slug"`
	PostID      string            `json:"post_id,omitempty"`
	PostTitle   string            `json:"post_title,omitempty"`
	Clicks      int               `json:"clicks"`
	Impressions int               `json:"impressions"`
	CTR         float64           `json:"ctr"`
	Position    float64           `json:"position"`
	Comparison  *PeriodComparison `json:"comparison,omitempty"`
}

// PerformanceResponse é a resposta do endpoint de comparação de períodos
type PerformanceResponse struct {
	Pages          []PagePerformance `json:"pages"`
	CurrentPeriod  Period            `json:"current_period"`
	PreviousPeriod Period            `json:"previous_period"`
}
