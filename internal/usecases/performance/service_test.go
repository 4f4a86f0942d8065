package performance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/content-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/content-insights-api/internal/config"
	"github.com/vfg2006/content-insights-api/internal/domain"
	"github.com/vfg2006/content-insights-api/internal/usecases/performance/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_GetPagePerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := mocks.NewMockSearchMetricsFetcher(ctrl)
	mockBlogPostRepo := repomocks.NewMockBlogPostRepository(ctrl)

	cfg := &config.Config{}
	cfg.Opportunity.LookbackDays = 28

	service := NewService(cfg, mockFetcher, mockBlogPostRepo)

	userID := 42
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 7, 0, 0, 0, 0, time.UTC)
	filters := &domain.SearchFilters{StartDate: &start, EndDate: &end}

	currentRows := []domain.SearchMetricRow{
		{
			Keys:        []string{"https://example.com/blog/indigo-vat-guide"},
			Clicks:      8,
			Impressions: 300,
			CTR:         0.026,
			Position:    6.2,
		},
		{
			Keys:        []string{"https://example.com/blog/new-madder-post"},
			Clicks:      3,
			Impressions: 90,
			CTR:         0.033,
			Position:    9.5,
		},
	}
	previousRows := []domain.SearchMetricRow{
		{
			Keys:        []string{"https://example.com/blog/indigo-vat-guide"},
			Clicks:      20,
			Impressions: 280,
			CTR:         0.071,
			Position:    5.8,
		},
	}

	// Primeira chamada com o período atual, segunda com o anterior
	gomock.InOrder(
		mockFetcher.EXPECT().
			QueryMetrics(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, query *domain.SearchQuery) ([]domain.SearchMetricRow, error) {
				assert.Equal(t, start, query.StartDate)
				assert.Equal(t, end, query.EndDate)
				assert.Equal(t, []string{domain.DimensionPage}, query.Dimensions)
				return currentRows, nil
			}),
		mockFetcher.EXPECT().
			QueryMetrics(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, query *domain.SearchQuery) ([]domain.SearchMetricRow, error) {
				assert.Equal(t, time.Date(2026, 7, 25, 0, 0, 0, 0, time.UTC), query.StartDate)
				assert.Equal(t, time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC), query.EndDate)
				return previousRows, nil
			}),
	)

	mockBlogPostRepo.EXPECT().
		ListPublishedByUserID(userID).
		Return([]*domain.BlogPost{
			{
				ID:     "post-001",
				UserID: userID,
				Title:  "Guia completo do vat de índigo",
				Slug:   "indigo-vat-guide",
				Status: domain.BlogPostStatusPublished,
			},
		}, nil)

	result, err := service.GetPagePerformance(context.Background(), userID, filters)

	assert.NoError(t, err)
	assert.Len(t, result.Pages, 2)

	// Ordenado por cliques decrescentes
	guide := result.Pages[0]
	assert.Equal(t, "indigo-vat-guide", guide.Slug)
	assert.Equal(t, "post-001", guide.PostID)
	assert.Equal(t, "Guia completo do vat de índigo", guide.PostTitle)
	assert.NotNil(t, guide.Comparison)
	assert.Equal(t, 20, guide.Comparison.PreviousClicks)
	assert.Equal(t, -12, guide.Comparison.ClicksChange)
	assert.Equal(t, 20, guide.Comparison.ImpressionsChange)
	assert.InDelta(t, -0.6, guide.Comparison.ClicksChangePct, 0.0001)
	assert.True(t, guide.Comparison.NeedsAttention)

	// Página sem dados no período anterior fica sem comparação
	fresh := result.Pages[1]
	assert.Equal(t, "new-madder-post", fresh.Slug)
	assert.Empty(t, fresh.PostID)
	assert.Nil(t, fresh.Comparison)

	assert.Equal(t, domain.Period{Start: start, End: end}, result.CurrentPeriod)
	assert.Equal(t, 7, result.PreviousPeriod.LengthDays())
}

func TestService_GetPagePerformance_BlogPostFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := mocks.NewMockSearchMetricsFetcher(ctrl)
	mockBlogPostRepo := repomocks.NewMockBlogPostRepository(ctrl)

	cfg := &config.Config{}
	cfg.Opportunity.LookbackDays = 28

	service := NewService(cfg, mockFetcher, mockBlogPostRepo)

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)

	mockFetcher.EXPECT().
		QueryMetrics(gomock.Any(), 7, gomock.Any()).
		Return([]domain.SearchMetricRow{
			{Keys: []string{"https://example.com/blog/weld-yellow"}, Clicks: 4, Impressions: 50, CTR: 0.08, Position: 3.1},
		}, nil).
		Times(2)

	mockBlogPostRepo.EXPECT().
		ListPublishedByUserID(7).
		Return(nil, assert.AnError)

	result, err := service.GetPagePerformance(context.Background(), 7, &domain.SearchFilters{StartDate: &start, EndDate: &end})

	assert.NoError(t, err)
	assert.Len(t, result.Pages, 1)
	assert.Empty(t, result.Pages[0].PostID)
	assert.NotNil(t, result.Pages[0].Comparison)
}
