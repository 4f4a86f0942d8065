package performance

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/content-insights-api/infrastructure/repository"
	"github.com/vfg2006/content-insights-api/internal/config"
	"github.com/vfg2006/content-insights-api/internal/domain"
	"github.com/vfg2006/content-insights-api/pkg/utils"
)

// SearchMetricsFetcher define a interface para obter métricas do provedor de busca
type SearchMetricsFetcher interface {
	QueryMetrics(ctx context.Context, userID int, query *domain.SearchQuery) ([]domain.SearchMetricRow, error)
}

// Comparator define a interface do caso de uso de comparação de períodos
type Comparator interface {
	// GetPagePerformance compara as métricas por página entre o período
	// filtrado e o período anterior equivalente
	GetPagePerformance(ctx context.Context, userID int, filters *domain.SearchFilters) (*domain.PerformanceResponse, error)
}

// Service implementa a interface Comparator
type Service struct {
	cfg          *config.Config
	fetcher      SearchMetricsFetcher
	blogPostRepo repository.BlogPostRepository
}

// NewService cria uma nova instância do serviço de comparação de períodos
func NewService(cfg *config.Config, fetcher SearchMetricsFetcher, blogPostRepo repository.BlogPostRepository) Comparator {
	return &Service{
		cfg:          cfg,
		fetcher:      fetcher,
		blogPostRepo: blogPostRepo,
	}
}

// GetPagePerformance busca as métricas por página dos dois períodos e monta
// o diff. Páginas sem dados no período anterior ficam sem comparação em vez
// de tratar o anterior ausente como zero
func (s *Service) GetPagePerformance(ctx context.Context, userID int, filters *domain.SearchFilters) (*domain.PerformanceResponse, error) {
	current := s.resolvePeriod(filters)
	previous := PreviousPeriod(current)

	currentRows, err := s.queryPages(ctx, userID, current)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Error("search: failed to fetch current period page metrics")
		return nil, err
	}

	previousRows, err := s.queryPages(ctx, userID, previous)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Error("search: failed to fetch previous period page metrics")
		return nil, err
	}

	previousBySlug := make(map[string]domain.SearchMetricRow, len(previousRows))
	for _, row := range previousRows {
		previousBySlug[utils.SlugFromURL(row.Query())] = row
	}

	postsBySlug := s.loadPostsBySlug(userID)

	pages := make([]domain.PagePerformance, 0, len(currentRows))
	for _, row := range currentRows {
		slug := utils.SlugFromURL(row.Query())

		page := domain.PagePerformance{
			Page:        row.Query(),
			Slug:        slug,
			Clicks:      row.Clicks,
			Impressions: row.Impressions,
			CTR:         row.CTR,
			Position:    row.Position,
		}

		if post, ok := postsBySlug[slug]; ok {
			page.PostID = post.ID
			page.PostTitle = post.Title
		}

		if prev, ok := previousBySlug[slug]; ok {
			clicksChange := row.Clicks - prev.Clicks
			comparison := &domain.PeriodComparison{
				PreviousClicks:      prev.Clicks,
				PreviousImpressions: prev.Impressions,
				ClicksChange:        clicksChange,
				ImpressionsChange:   row.Impressions - prev.Impressions,
				NeedsAttention:      NeedsAttention(clicksChange, prev.Clicks),
			}
			if prev.Clicks > 0 {
				comparison.ClicksChangePct = utils.RoundWithTwoDecimalPlace(float64(clicksChange) / float64(prev.Clicks))
			}
			page.Comparison = comparison
		}

		pages = append(pages, page)
	}

	sort.SliceStable(pages, func(i, j int) bool {
		return pages[i].Clicks > pages[j].Clicks
	})

	return &domain.PerformanceResponse{
		Pages:          pages,
		CurrentPeriod:  current,
		PreviousPeriod: previous,
	}, nil
}

func (s *Service) queryPages(ctx context.Context, userID int, period domain.Period) ([]domain.SearchMetricRow, error) {
	return s.fetcher.QueryMetrics(ctx, userID, &domain.SearchQuery{
		StartDate:  period.Start,
		EndDate:    period.End,
		Dimensions: []string{domain.DimensionPage},
		RowLimit:   domain.MaxSearchRowLimit,
	})
}

// loadPostsBySlug carrega os posts publicados para enriquecer as páginas.
// Falha aqui não derruba a resposta: o diff de métricas continua útil sem
// os títulos
func (s *Service) loadPostsBySlug(userID int) map[string]*domain.BlogPost {
	posts, err := s.blogPostRepo.ListPublishedByUserID(userID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Warn("search: failed to load blog posts for slug matching")
		return map[string]*domain.BlogPost{}
	}

	bySlug := make(map[string]*domain.BlogPost, len(posts))
	for _, post := range posts {
		bySlug[post.Slug] = post
	}
	return bySlug
}

func (s *Service) resolvePeriod(filters *domain.SearchFilters) domain.Period {
	if filters != nil && filters.StartDate != nil && filters.EndDate != nil {
		return domain.Period{Start: *filters.StartDate, End: *filters.EndDate}
	}

	end := utils.TruncateToDay(time.Now())
	start := end.AddDate(0, 0, -(s.cfg.Opportunity.LookbackDays - 1))

	return domain.Period{Start: start, End: end}
}
