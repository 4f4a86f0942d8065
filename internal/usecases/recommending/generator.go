package recommending

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/content-insights-api/internal/config"
	"github.com/vfg2006/content-insights-api/internal/domain"
)

// jsonArrayPattern captura o primeiro array JSON do texto, tolerando prosa
// e cercas de markdown ao redor
var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

var validTypes = map[domain.RecommendationType]bool{
	domain.RecommendationNewPost:  true,
	domain.RecommendationOptimize: true,
	domain.RecommendationQuickWin: true,
	domain.RecommendationLongTail: true,
}

var validLevels = map[string]bool{
	domain.LevelHigh:   true,
	domain.LevelMedium: true,
	domain.LevelLow:    true,
}

// Generator monta o prompt com as oportunidades pontuadas e interpreta a
// resposta do modelo. Falhas degradam para uma lista vazia: a funcionalidade
// é consultiva, nunca caminho crítico
type Generator struct {
	cfg       *config.Config
	generator TextGenerator
}

// NewGenerator cria uma nova instância do gerador de recomendações
func NewGenerator(cfg *config.Config, generator TextGenerator) *Generator {
	return &Generator{
		cfg:       cfg,
		generator: generator,
	}
}

// Generate produz recomendações a partir das oportunidades e dos títulos de
// conteúdo existentes. Nunca devolve erro ao chamador: qualquer falha do
// modelo ou do parse vira uma lista vazia, que ainda assim vale cache
func (g *Generator) Generate(ctx context.Context, userID int, opportunities []domain.Opportunity, existingTitles []string) []domain.Recommendation {
	if len(opportunities) == 0 {
		logrus.WithField("user_id", userID).Debug("search: no opportunities to generate recommendations from")
		return []domain.Recommendation{}
	}

	prompt := g.buildPrompt(opportunities, existingTitles)

	raw, err := g.generator.GenerateContent(ctx, prompt)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Error("search: text generation failed, degrading to empty recommendations")
		return []domain.Recommendation{}
	}

	recommendations, err := parseRecommendations(raw)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Error("search: failed to parse generated recommendations, degrading to empty")
		return []domain.Recommendation{}
	}

	logrus.WithFields(logrus.Fields{
		"user_id":         userID,
		"recommendations": len(recommendations),
	}).Debug("search: successfully generated recommendations")

	return recommendations
}

func (g *Generator) buildPrompt(opportunities []domain.Opportunity, existingTitles []string) string {
	limit := g.cfg.Recommendation.PromptLimit
	if limit <= 0 || limit > len(opportunities) {
		limit = len(opportunities)
	}

	var b strings.Builder

	b.WriteString("Você é um estrategista de conteúdo para um blog de tingimento natural de fios e lãs.\n")
	b.WriteString("Com base nas oportunidades de busca abaixo, gere recomendações de conteúdo.\n\n")

	b.WriteString("Oportunidades (consulta, impressões, cliques, posição média, CTR, potencial estimado de cliques):\n")
	for _, opp := range opportunities[:limit] {
		fmt.Fprintf(&b, "- %q [%s]: %d impressões, %d cliques, posição %.1f, CTR %.3f, potencial %d\n",
			opp.Query, opp.Category, opp.Impressions, opp.Clicks, opp.Position, opp.CTR, opp.EstimatedPotential)
	}

	b.WriteString("\nConteúdo já publicado no blog:\n")
	if len(existingTitles) == 0 {
		b.WriteString("- (nenhum)\n")
	}
	for _, title := range existingTitles {
		fmt.Fprintf(&b, "- %s\n", title)
	}

	b.WriteString(`
Tipos de recomendação:
- "new_post": a consulta não é coberta por nenhum conteúdo existente.
- "optimize": já existe conteúdo relacionado que pode ser melhorado para a consulta.
- "quick_win": posição entre 5 e 15 com bom volume, pequeno esforço traz retorno rápido.
- "long_tail": consulta específica de baixo volume mas com intenção clara.

Priority e confidence usam "high", "medium" ou "low". Priorize potencial
estimado alto e posição ruim para new_post; use confidence "high" apenas
quando a intenção da consulta for inequívoca.

Responda APENAS com um array JSON, sem texto adicional, onde cada item tem:
{"type": "...", "title": "...", "target_keyword": "...", "suggested_title": "...",
"explanation": "...", "estimated_opportunity": 0, "confidence": "...",
"priority": "...", "related_queries": [], "existing_post_id": ""}
`)

	return b.String()
}

// parseRecommendations extrai o array JSON da resposta em texto livre do
// modelo e valida cada item. Itens com tipo ou níveis desconhecidos são
// descartados em vez de derrubar o lote
func parseRecommendations(raw string) ([]domain.Recommendation, error) {
	cleaned := stripMarkdownFences(raw)

	match := jsonArrayPattern.FindString(cleaned)
	if match == "" {
		return nil, fmt.Errorf("resposta do modelo não contém um array JSON")
	}

	var parsed []domain.Recommendation
	if err := jsoniter.Unmarshal([]byte(match), &parsed); err != nil {
		return nil, fmt.Errorf("erro ao deserializar recomendações: %w", err)
	}

	recommendations := make([]domain.Recommendation, 0, len(parsed))
	for _, rec := range parsed {
		if !validTypes[rec.Type] {
			logrus.WithField("type", rec.Type).Warn("search: dropping recommendation with unknown type")
			continue
		}
		if rec.Title == "" || rec.TargetKeyword == "" {
			logrus.Warn("search: dropping recommendation with missing required fields")
			continue
		}
		if !validLevels[rec.Confidence] {
			rec.Confidence = domain.LevelLow
		}
		if !validLevels[rec.Priority] {
			rec.Priority = domain.LevelLow
		}
		if rec.RelatedQueries == nil {
			rec.RelatedQueries = []string{}
		}

		rec.ID = uuid.New().String()
		recommendations = append(recommendations, rec)
	}

	return recommendations, nil
}

func stripMarkdownFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
