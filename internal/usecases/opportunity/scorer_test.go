package opportunity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/content-insights-api/internal/config"
	"github.com/vfg2006/content-insights-api/internal/domain"
)

func defaultOpportunityConfig() config.Opportunity {
	return config.Opportunity{
		MinImpressions:     10,
		MaxCTR:             0.05,
		MinPosition:        5.0,
		PositionDivisor:    10.0,
		CTRAtPositionOne:   0.3,
		CTRNearTop:         0.3,
		NearTopMaxPosition: 3.0,
		TopLimit:           50,
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected domain.OpportunityCategory
	}{
		{
			name:     "Consulta iniciando com how to",
			query:    "how to set up a dye bath",
			expected: domain.CategoryHowTo,
		},
		{
			name:     "How-to tem precedência sobre color",
			query:    "how to dye wool indigo",
			expected: domain.CategoryHowTo,
		},
		{
			name:     "Termo de tutorial no meio da consulta",
			query:    "shibori folding tutorial",
			expected: domain.CategoryHowTo,
		},
		{
			name:     "Color tem precedência sobre product",
			query:    "indigo wool",
			expected: domain.CategoryColor,
		},
		{
			name:     "Vocabulário de corante natural",
			query:    "madder root dye bath",
			expected: domain.CategoryColor,
		},
		{
			name:     "Consulta de produto",
			query:    "hand dyed sock yarn",
			expected: domain.CategoryProduct,
		},
		{
			name:     "Variante com hífen",
			query:    "hand-dyed merino",
			expected: domain.CategoryProduct,
		},
		{
			name:     "Fallback para general",
			query:    "shipping times",
			expected: domain.CategoryGeneral,
		},
		{
			name:     "Case insensitive",
			query:    "INDIGO Dye Bath",
			expected: domain.CategoryColor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Categorize(tt.query))
			// Determinística: repetir a chamada produz o mesmo resultado
			assert.Equal(t, tt.expected, Categorize(tt.query))
		})
	}
}

func TestScore_MonotonicInImpressions(t *testing.T) {
	cfg := defaultOpportunityConfig()

	base := domain.SearchMetricRow{
		Keys:        []string{"natural dye kit"},
		CTR:         0.02,
		Position:    8.0,
		Impressions: 100,
	}
	bigger := base
	bigger.Impressions = 500

	assert.GreaterOrEqual(t, Score(bigger, cfg), Score(base, cfg))
}

func TestBuildOpportunities_EndToEnd(t *testing.T) {
	cfg := defaultOpportunityConfig()

	rows := []domain.SearchMetricRow{
		{
			Keys:        []string{"hand dyed sock yarn"},
			Impressions: 500,
			Clicks:      10,
			CTR:         0.02,
			Position:    8.0,
		},
	}

	result := BuildOpportunities(rows, cfg)

	assert.Len(t, result, 1)
	assert.Equal(t, "hand dyed sock yarn", result[0].Query)
	assert.Equal(t, domain.CategoryProduct, result[0].Category)
	assert.InDelta(t, 392.0, result[0].Score, 0.0001)
	assert.Equal(t, 140, result[0].EstimatedPotential)
}

func TestBuildOpportunities_Filtering(t *testing.T) {
	cfg := defaultOpportunityConfig()

	tests := []struct {
		name string
		row  domain.SearchMetricRow
	}{
		{
			name: "Impressões abaixo do mínimo",
			row: domain.SearchMetricRow{
				Keys:        []string{"weld dye"},
				Impressions: 9,
				CTR:         0.01,
				Position:    12.0,
			},
		},
		{
			name: "CTR acima do teto",
			row: domain.SearchMetricRow{
				Keys:        []string{"weld dye"},
				Impressions: 200,
				Clicks:      12,
				CTR:         0.06,
				Position:    12.0,
			},
		},
		{
			name: "Posição já boa demais",
			row: domain.SearchMetricRow{
				Keys:        []string{"weld dye"},
				Impressions: 200,
				Clicks:      4,
				CTR:         0.02,
				Position:    4.0,
			},
		},
		{
			name: "Potencial estimado não positivo",
			row: domain.SearchMetricRow{
				Keys:        []string{"weld dye"},
				Impressions: 20,
				Clicks:      10,
				CTR:         0.04,
				Position:    9.0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BuildOpportunities([]domain.SearchMetricRow{tt.row}, cfg)
			assert.Empty(t, result)
		})
	}
}

func TestBuildOpportunities_PotentialAlwaysPositive(t *testing.T) {
	cfg := defaultOpportunityConfig()

	rows := []domain.SearchMetricRow{
		{Keys: []string{"indigo vat recipe"}, Impressions: 300, Clicks: 5, CTR: 0.016, Position: 15.0},
		{Keys: []string{"sock yarn"}, Impressions: 50, Clicks: 14, CTR: 0.028, Position: 7.0},
		{Keys: []string{"merino skein"}, Impressions: 1000, Clicks: 20, CTR: 0.02, Position: 22.0},
	}

	for _, opp := range BuildOpportunities(rows, cfg) {
		assert.Greater(t, opp.EstimatedPotential, 0)
	}
}

func TestBuildOpportunities_SortAndTruncate(t *testing.T) {
	cfg := defaultOpportunityConfig()
	cfg.TopLimit = 2

	rows := []domain.SearchMetricRow{
		{Keys: []string{"indigo vat recipe"}, Impressions: 300, Clicks: 5, CTR: 0.016, Position: 15.0},
		{Keys: []string{"merino skein"}, Impressions: 1000, Clicks: 20, CTR: 0.02, Position: 22.0},
		{Keys: []string{"madder bath"}, Impressions: 120, Clicks: 2, CTR: 0.016, Position: 11.0},
	}

	result := BuildOpportunities(rows, cfg)

	assert.Len(t, result, 2)
	assert.Equal(t, "merino skein", result[0].Query)
	assert.Equal(t, "indigo vat recipe", result[1].Query)
	assert.GreaterOrEqual(t, result[0].Score, result[1].Score)
}
