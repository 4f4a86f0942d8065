package recommending

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/content-insights-api/internal/config"
	"github.com/vfg2006/content-insights-api/internal/domain"
	"github.com/vfg2006/content-insights-api/internal/usecases/recommending/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Recommendation.PromptLimit = 30
	cfg.Recommendation.CacheTTLDays = 7
	return cfg
}

func sampleOpportunities() []domain.Opportunity {
	return []domain.Opportunity{
		{
			Query:              "how to dye wool indigo",
			Category:           domain.CategoryHowTo,
			Impressions:        500,
			Clicks:             10,
			CTR:                0.02,
			Position:           8.0,
			Score:              392.0,
			EstimatedPotential: 140,
		},
	}
}

func TestGenerator_Generate_ParsesModelOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockModel := mocks.NewMockTextGenerator(ctrl)
	generator := NewGenerator(testConfig(), mockModel)

	// Resposta com cerca de markdown e prosa ao redor do array
	mockModel.EXPECT().
		GenerateContent(gomock.Any(), gomock.Any()).
		Return("Aqui estão as recomendações:\n```json\n[\n  {\n    \"type\": \"new_post\",\n    \"title\": \"Guia de tingimento com índigo\",\n    \"target_keyword\": \"how to dye wool indigo\",\n    \"suggested_title\": \"Como tingir lã com índigo: guia completo\",\n    \"explanation\": \"Alta visibilidade sem conteúdo dedicado\",\n    \"estimated_opportunity\": 140,\n    \"confidence\": \"high\",\n    \"priority\": \"high\",\n    \"related_queries\": [\"indigo vat\"]\n  }\n]\n```\nEspero que ajude!", nil)

	result := generator.Generate(context.Background(), 1, sampleOpportunities(), []string{"Tons de madder"})

	assert.Len(t, result, 1)
	assert.NotEmpty(t, result[0].ID)
	assert.Equal(t, domain.RecommendationNewPost, result[0].Type)
	assert.Equal(t, "how to dye wool indigo", result[0].TargetKeyword)
	assert.Equal(t, "high", result[0].Confidence)
	assert.Equal(t, []string{"indigo vat"}, result[0].RelatedQueries)
}

func TestGenerator_Generate_DegradesToEmpty(t *testing.T) {
	tests := []struct {
		name     string
		response string
		err      error
	}{
		{
			name: "Erro na chamada ao modelo",
			err:  assert.AnError,
		},
		{
			name:     "Resposta sem array JSON",
			response: "Não consegui gerar recomendações desta vez.",
		},
		{
			name:     "Array JSON malformado",
			response: "[{\"type\": \"new_post\", \"title\": ]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockModel := mocks.NewMockTextGenerator(ctrl)
			generator := NewGenerator(testConfig(), mockModel)

			mockModel.EXPECT().
				GenerateContent(gomock.Any(), gomock.Any()).
				Return(tt.response, tt.err)

			result := generator.Generate(context.Background(), 1, sampleOpportunities(), nil)

			assert.NotNil(t, result)
			assert.Empty(t, result)
		})
	}
}

func TestGenerator_Generate_SkipsModelCallWithoutOpportunities(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockModel := mocks.NewMockTextGenerator(ctrl)
	generator := NewGenerator(testConfig(), mockModel)

	result := generator.Generate(context.Background(), 1, nil, nil)

	assert.Empty(t, result)
}

func TestParseRecommendations_Validation(t *testing.T) {
	raw := `[
		{"type": "new_post", "title": "Título A", "target_keyword": "kw a", "explanation": "x", "confidence": "high", "priority": "medium"},
		{"type": "banana", "title": "Título B", "target_keyword": "kw b"},
		{"type": "optimize", "title": "", "target_keyword": "kw c"},
		{"type": "quick_win", "title": "Título D", "target_keyword": "kw d", "confidence": "altíssima", "priority": ""}
	]`

	result, err := parseRecommendations(raw)

	assert.NoError(t, err)
	assert.Len(t, result, 2)

	// Itens com tipo desconhecido ou campos obrigatórios vazios são descartados
	assert.Equal(t, "Título A", result[0].Title)
	assert.Equal(t, "Título D", result[1].Title)

	// Níveis desconhecidos caem para low em vez de propagar lixo
	assert.Equal(t, domain.LevelLow, result[1].Confidence)
	assert.Equal(t, domain.LevelLow, result[1].Priority)

	// RelatedQueries ausente vira lista vazia, nunca nil
	assert.NotNil(t, result[0].RelatedQueries)

	// Identificadores novos a cada geração
	assert.NotEmpty(t, result[0].ID)
	assert.NotEqual(t, result[0].ID, result[1].ID)
}

func TestBuildPrompt_LimitsOpportunities(t *testing.T) {
	cfg := testConfig()
	cfg.Recommendation.PromptLimit = 2

	generator := NewGenerator(cfg, nil)

	opportunities := []domain.Opportunity{
		{Query: "primeira consulta", Impressions: 100},
		{Query: "segunda consulta", Impressions: 90},
		{Query: "terceira consulta", Impressions: 80},
	}

	prompt := generator.buildPrompt(opportunities, []string{"Post existente"})

	assert.Contains(t, prompt, "primeira consulta")
	assert.Contains(t, prompt, "segunda consulta")
	assert.NotContains(t, prompt, "terceira consulta")
	assert.Contains(t, prompt, "Post existente")
}
