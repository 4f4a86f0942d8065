package recommending

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/content-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/content-insights-api/internal/domain"
	"github.com/vfg2006/content-insights-api/internal/usecases/recommending/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_GetRecommendations_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCacheRepo := repomocks.NewMockRecommendationCacheRepository(ctrl)
	mockBlogPostRepo := repomocks.NewMockBlogPostRepository(ctrl)
	mockOpportunist := mocks.NewMockOpportunist(ctrl)
	mockModel := mocks.NewMockTextGenerator(ctrl)

	cfg := testConfig()
	service := NewService(cfg, NewGenerator(cfg, mockModel), mockOpportunist, mockCacheRepo, mockBlogPostRepo)

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	cached := &domain.RecommendationCacheEntry{
		ID:     "entry-1",
		UserID: 42,
		Recommendations: []domain.Recommendation{
			{ID: "rec-1", Type: domain.RecommendationNewPost, Title: "Guia de índigo", TargetKeyword: "indigo"},
		},
		CreatedAt: now.AddDate(0, 0, -2),
		ExpiresAt: now.AddDate(0, 0, 5),
	}

	mockCacheRepo.EXPECT().
		GetActive(42, now).
		Return(cached, nil)

	result, err := service.GetRecommendations(context.Background(), 42, false)

	assert.NoError(t, err)
	assert.True(t, result.Cached)
	assert.Len(t, result.Recommendations, 1)
	assert.Equal(t, cached.CreatedAt, result.GeneratedAt)
	assert.Equal(t, cached.ExpiresAt, result.ExpiresAt)
}

func TestService_GetRecommendations_CacheMissRegenerates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCacheRepo := repomocks.NewMockRecommendationCacheRepository(ctrl)
	mockBlogPostRepo := repomocks.NewMockBlogPostRepository(ctrl)
	mockOpportunist := mocks.NewMockOpportunist(ctrl)
	mockModel := mocks.NewMockTextGenerator(ctrl)

	cfg := testConfig()
	service := NewService(cfg, NewGenerator(cfg, mockModel), mockOpportunist, mockCacheRepo, mockBlogPostRepo)

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	// Miss nas duas leituras: antes e depois de adquirir o lock
	mockCacheRepo.EXPECT().
		GetActive(42, now).
		Return(nil, nil).
		Times(2)

	mockOpportunist.EXPECT().
		GetOpportunities(gomock.Any(), 42, nil).
		Return(&domain.OpportunityResponse{Opportunities: sampleOpportunities()}, nil)

	mockBlogPostRepo.EXPECT().
		ListPublishedByUserID(42).
		Return([]*domain.BlogPost{
			{ID: "post-1", Title: "Tons de madder", Slug: "tons-de-madder"},
		}, nil)

	mockModel.EXPECT().
		GenerateContent(gomock.Any(), gomock.Any()).
		Return(`[{"type": "new_post", "title": "Guia de índigo", "target_keyword": "indigo", "confidence": "high", "priority": "high"}]`, nil)

	mockCacheRepo.EXPECT().
		Replace(gomock.Any()).
		DoAndReturn(func(entry *domain.RecommendationCacheEntry) error {
			assert.Equal(t, 42, entry.UserID)
			assert.NotEmpty(t, entry.ID)
			assert.Equal(t, now, entry.CreatedAt)
			assert.Equal(t, now.AddDate(0, 0, 7), entry.ExpiresAt)
			assert.Len(t, entry.Recommendations, 1)
			return nil
		})

	result, err := service.GetRecommendations(context.Background(), 42, false)

	assert.NoError(t, err)
	assert.False(t, result.Cached)
	assert.Len(t, result.Recommendations, 1)
	assert.Equal(t, now.AddDate(0, 0, 7), result.ExpiresAt)
}

func TestService_GetRecommendations_ForceRefreshBypassesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCacheRepo := repomocks.NewMockRecommendationCacheRepository(ctrl)
	mockBlogPostRepo := repomocks.NewMockBlogPostRepository(ctrl)
	mockOpportunist := mocks.NewMockOpportunist(ctrl)
	mockModel := mocks.NewMockTextGenerator(ctrl)

	cfg := testConfig()
	service := NewService(cfg, NewGenerator(cfg, mockModel), mockOpportunist, mockCacheRepo, mockBlogPostRepo)

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	// Nenhuma leitura do cache acontece com force refresh
	mockOpportunist.EXPECT().
		GetOpportunities(gomock.Any(), 42, nil).
		Return(&domain.OpportunityResponse{Opportunities: sampleOpportunities()}, nil)

	mockBlogPostRepo.EXPECT().
		ListPublishedByUserID(42).
		Return(nil, nil)

	mockModel.EXPECT().
		GenerateContent(gomock.Any(), gomock.Any()).
		Return(`[]`, nil)

	mockCacheRepo.EXPECT().
		Replace(gomock.Any()).
		Return(nil)

	result, err := service.GetRecommendations(context.Background(), 42, true)

	assert.NoError(t, err)
	assert.False(t, result.Cached)
	assert.Empty(t, result.Recommendations)
}

func TestService_GetRecommendations_EmptyGenerationIsStillCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCacheRepo := repomocks.NewMockRecommendationCacheRepository(ctrl)
	mockBlogPostRepo := repomocks.NewMockBlogPostRepository(ctrl)
	mockOpportunist := mocks.NewMockOpportunist(ctrl)
	mockModel := mocks.NewMockTextGenerator(ctrl)

	cfg := testConfig()
	service := NewService(cfg, NewGenerator(cfg, mockModel), mockOpportunist, mockCacheRepo, mockBlogPostRepo)

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	mockCacheRepo.EXPECT().
		GetActive(7, now).
		Return(nil, nil).
		Times(2)

	mockOpportunist.EXPECT().
		GetOpportunities(gomock.Any(), 7, nil).
		Return(&domain.OpportunityResponse{Opportunities: sampleOpportunities()}, nil)

	mockBlogPostRepo.EXPECT().
		ListPublishedByUserID(7).
		Return(nil, nil)

	// Falha do modelo degrada para lista vazia, que ainda assim vale cache
	mockModel.EXPECT().
		GenerateContent(gomock.Any(), gomock.Any()).
		Return("", assert.AnError)

	mockCacheRepo.EXPECT().
		Replace(gomock.Any()).
		DoAndReturn(func(entry *domain.RecommendationCacheEntry) error {
			assert.Empty(t, entry.Recommendations)
			assert.Equal(t, now.AddDate(0, 0, 7), entry.ExpiresAt)
			return nil
		})

	result, err := service.GetRecommendations(context.Background(), 7, false)

	assert.NoError(t, err)
	assert.Empty(t, result.Recommendations)
}

func TestService_InvalidateRecommendations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCacheRepo := repomocks.NewMockRecommendationCacheRepository(ctrl)

	cfg := testConfig()
	service := NewService(cfg, nil, nil, mockCacheRepo, nil)

	mockCacheRepo.EXPECT().
		Invalidate(42).
		Return(nil)

	assert.NoError(t, service.InvalidateRecommendations(42))
}
