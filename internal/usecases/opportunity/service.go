package opportunity

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/content-insights-api/internal/config"
	"github.com/vfg2006/content-insights-api/internal/domain"
	"github.com/vfg2006/content-insights-api/pkg/utils"
)

// SearchMetricsFetcher define a interface para obter métricas do provedor de busca
type SearchMetricsFetcher interface {
	QueryMetrics(ctx context.Context, userID int, query *domain.SearchQuery) ([]domain.SearchMetricRow, error)
}

// Opportunist define a interface do caso de uso de oportunidades
type Opportunist interface {
	// GetOpportunities obtém as oportunidades de conteúdo do período filtrado
	GetOpportunities(ctx context.Context, userID int, filters *domain.SearchFilters) (*domain.OpportunityResponse, error)
}

// Service implementa a interface Opportunist
type Service struct {
	cfg     *config.Config
	fetcher SearchMetricsFetcher
}

// NewService cria uma nova instância do serviço de oportunidades
func NewService(cfg *config.Config, fetcher SearchMetricsFetcher) Opportunist {
	return &Service{
		cfg:     cfg,
		fetcher: fetcher,
	}
}

// GetOpportunities busca as métricas por consulta no provedor e aplica o
// pipeline de pontuação. Sem filtro de datas, usa a janela retroativa padrão
func (s *Service) GetOpportunities(ctx context.Context, userID int, filters *domain.SearchFilters) (*domain.OpportunityResponse, error) {
	start, end := s.resolvePeriod(filters)

	rows, err := s.fetcher.QueryMetrics(ctx, userID, &domain.SearchQuery{
		StartDate:  start,
		EndDate:    end,
		Dimensions: []string{domain.DimensionQuery},
		RowLimit:   domain.MaxSearchRowLimit,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Error("search: failed to fetch query metrics for opportunities")
		return nil, err
	}

	opportunities := BuildOpportunities(rows, s.cfg.Opportunity)

	logrus.WithFields(logrus.Fields{
		"user_id":       userID,
		"total_rows":    len(rows),
		"opportunities": len(opportunities),
	}).Debug("search: successfully scored opportunities")

	return &domain.OpportunityResponse{
		Opportunities: opportunities,
		TotalRows:     len(rows),
		Filters: &domain.SearchFilters{
			StartDate: &start,
			EndDate:   &end,
		},
	}, nil
}

func (s *Service) resolvePeriod(filters *domain.SearchFilters) (time.Time, time.Time) {
	if filters != nil && filters.StartDate != nil && filters.EndDate != nil {
		return *filters.StartDate, *filters.EndDate
	}

	end := utils.TruncateToDay(time.Now())
	start := end.AddDate(0, 0, -(s.cfg.Opportunity.LookbackDays - 1))

	return start, end
}
