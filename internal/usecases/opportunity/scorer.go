package opportunity

import (
	"math"
	"sort"
	"strings"

	"github.com/vfg2006/content-insights-api/internal/config"
	"github.com/vfg2006/content-insights-api/internal/domain"
)

// Vocabulários de categorização. A ordem das regras importa: how-to tem
// precedência sobre color, que tem precedência sobre product
var (
	howToTerms = []string{"how to", "guide", "tutorial", "instructions", "tips"}

	colorTerms = []string{
		"indigo", "madder", "weld", "walnut",
		"blue", "red", "yellow", "brown", "green", "purple", "pink", "orange",
		"natural dye", "plant dye", "botanical dye",
	}

	productTerms = []string{
		"yarn", "wool", "fiber", "fibre", "skein",
		"hand dyed", "hand-dyed", "merino", "sock yarn",
	}
)

// Categorize classifica uma consulta de busca pelo tipo de conteúdo que
// melhor a atenderia. Função pura: depende apenas do texto da consulta
func Categorize(query string) domain.OpportunityCategory {
	q := strings.ToLower(query)

	if strings.HasPrefix(q, "how to") || containsAny(q, howToTerms) {
		return domain.CategoryHowTo
	}
	if containsAny(q, colorTerms) {
		return domain.CategoryColor
	}
	if containsAny(q, productTerms) {
		return domain.CategoryProduct
	}

	return domain.CategoryGeneral
}

func containsAny(q string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(q, term) {
			return true
		}
	}
	return false
}

// Score pontua uma linha de métricas. A fórmula premia consultas com muita
// visibilidade, pouco clique e posição ruim: quanto maior, maior a
// oportunidade
func Score(row domain.SearchMetricRow, cfg config.Opportunity) float64 {
	return float64(row.Impressions) * (1 - row.CTR) * (row.Position / cfg.PositionDivisor)
}

// EstimatedPotential estima os cliques adicionais se a consulta chegasse à
// primeira posição. Pode ser negativo; o pipeline de filtragem descarta
// esses casos
func EstimatedPotential(row domain.SearchMetricRow, cfg config.Opportunity) int {
	ctr := cfg.CTRAtPositionOne
	if row.Position <= cfg.NearTopMaxPosition {
		ctr = cfg.CTRNearTop
	}
	return int(math.Round(float64(row.Impressions)*ctr - float64(row.Clicks)))
}

// BuildOpportunities aplica o pipeline completo: pontua, filtra pelos
// limiares configurados, ordena por score decrescente e trunca no topo
// configurado. Determinística para as mesmas linhas e configuração
func BuildOpportunities(rows []domain.SearchMetricRow, cfg config.Opportunity) []domain.Opportunity {
	opportunities := make([]domain.Opportunity, 0, len(rows))

	for _, row := range rows {
		if row.Impressions < cfg.MinImpressions {
			continue
		}
		if row.CTR >= cfg.MaxCTR {
			continue
		}
		if row.Position <= cfg.MinPosition {
			continue
		}

		potential := EstimatedPotential(row, cfg)
		if potential <= 0 {
			continue
		}

		opportunities = append(opportunities, domain.Opportunity{
			Query:              row.Query(),
			Category:           Categorize(row.Query()),
			Impressions:        row.Impressions,
			Clicks:             row.Clicks,
			CTR:                row.CTR,
			Position:           row.Position,
			Score:              Score(row, cfg),
			EstimatedPotential: potential,
		})
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		if opportunities[i].Score != opportunities[j].Score {
			return opportunities[i].Score > opportunities[j].Score
		}
		if opportunities[i].Impressions != opportunities[j].Impressions {
			return opportunities[i].Impressions > opportunities[j].Impressions
		}
		return opportunities[i].Query < opportunities[j].Query
	})

	if len(opportunities) > cfg.TopLimit {
		opportunities = opportunities[:cfg.TopLimit]
	}

	return opportunities
}
