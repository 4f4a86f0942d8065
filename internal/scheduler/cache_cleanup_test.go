package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/content-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/content-insights-api/internal/config"
	"go.uber.org/mock/gomock"
)

func newTestCleanupService(t *testing.T, enabled bool) (*CacheCleanupService, *mocks.MockRecommendationCacheRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockCacheRepo := mocks.NewMockRecommendationCacheRepository(ctrl)

	cfg := &config.Config{}
	cfg.CacheCleanup.CronSchedule = "0 4 * * *"
	cfg.CacheCleanup.Enabled = enabled

	return NewCacheCleanupService(mockCacheRepo, cfg), mockCacheRepo
}

func TestCacheCleanupService_CleanupExpiredEntries(t *testing.T) {
	service, mockCacheRepo := newTestCleanupService(t, true)

	mockCacheRepo.EXPECT().
		DeleteExpired(gomock.Any()).
		Return(int64(3), nil)

	service.cleanupExpiredEntries()

	status := service.GetStatus()
	assert.Equal(t, int64(3), status["last_removed_count"])
	assert.NotEqual(t, time.Time{}, status["last_cleanup_started_at"])
	assert.NotEqual(t, time.Time{}, status["last_cleanup_ended_at"])
}

func TestCacheCleanupService_CleanupFailureKeepsRunningFlagClean(t *testing.T) {
	service, mockCacheRepo := newTestCleanupService(t, true)

	mockCacheRepo.EXPECT().
		DeleteExpired(gomock.Any()).
		Return(int64(0), assert.AnError).
		Times(2)

	service.cleanupExpiredEntries()
	// Uma falha não pode travar as execuções seguintes
	service.cleanupExpiredEntries()
}

func TestCacheCleanupService_GetStatus(t *testing.T) {
	service, _ := newTestCleanupService(t, false)

	status := service.GetStatus()

	assert.Equal(t, false, status["cleanup_enabled"])
	assert.Equal(t, "0 4 * * *", status["cleanup_cron"])
}
