package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/content-insights-api/infrastructure/repository"
	"github.com/vfg2006/content-insights-api/internal/config"
)

// CacheCleanupConfig representa a configuração do agendador de limpeza de cache
type CacheCleanupConfig struct {
	CronSchedule string
	Enabled      bool
}

// CacheCleanupService remove periodicamente as recomendações vencidas. As
// leituras nunca devolvem entradas expiradas, então a limpeza é apenas
// higiene de armazenamento e pode rodar em horário de baixo tráfego
type CacheCleanupService struct {
	scheduler            *gocron.Scheduler
	config               CacheCleanupConfig
	cacheRepo            repository.RecommendationCacheRepository
	cleanupRunning       bool
	cleanupMutex         sync.Mutex
	lastCleanupStartedAt time.Time
	lastCleanupEndedAt   time.Time
	lastRemovedCount     int64
}

// NewCacheCleanupService cria uma nova instância do serviço de limpeza de cache
func NewCacheCleanupService(
	cacheRepo repository.RecommendationCacheRepository,
	appConfig *config.Config,
) *CacheCleanupService {
	cleanupConfig := CacheCleanupConfig{
		CronSchedule: appConfig.CacheCleanup.CronSchedule,
		Enabled:      appConfig.CacheCleanup.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   cleanupConfig.CronSchedule,
		"cleanup_enabled": cleanupConfig.Enabled,
	}).Info("Configuração do agendador de limpeza de cache carregada")

	return &CacheCleanupService{
		scheduler:      scheduler,
		config:         cleanupConfig,
		cacheRepo:      cacheRepo,
		cleanupRunning: false,
	}
}

// Start inicia o agendador
func (s *CacheCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de cache de recomendações desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de cache de recomendações")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.cleanupExpiredEntries()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de cache de recomendações: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de cache de recomendações")
		s.scheduler.Stop()
	}()

	return nil
}

// cleanupExpiredEntries remove as entradas vencidas do cache
func (s *CacheCleanupService) cleanupExpiredEntries() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de cache já em andamento, ignorando")
		return
	}
	s.cleanupRunning = true
	s.cleanupMutex.Unlock()

	s.lastCleanupStartedAt = time.Now()

	defer func() {
		s.cleanupMutex.Lock()
		s.cleanupRunning = false
		s.cleanupMutex.Unlock()
	}()

	logrus.Info("Iniciando limpeza de recomendações vencidas")

	removed, err := s.cacheRepo.DeleteExpired(time.Now())
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover recomendações vencidas")
		return
	}

	s.lastCleanupEndedAt = time.Now()
	s.lastRemovedCount = removed

	logrus.WithFields(logrus.Fields{
		"removed":  removed,
		"duration": s.lastCleanupEndedAt.Sub(s.lastCleanupStartedAt).String(),
	}).Info("Limpeza de recomendações vencidas concluída")
}

// TriggerManualSync inicia manualmente uma limpeza de cache
func (s *CacheCleanupService) TriggerManualSync() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de cache já em andamento, ignorando solicitação manual")
		return
	}
	s.cleanupMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de recomendações vencidas")
	go s.cleanupExpiredEntries()
}

// GetStatus retorna o status atual do agendador
func (s *CacheCleanupService) GetStatus() map[string]any {
	return map[string]any{
		"cleanup_enabled":         s.config.Enabled,
		"cleanup_cron":            s.config.CronSchedule,
		"last_cleanup_started_at": s.lastCleanupStartedAt,
		"last_cleanup_ended_at":   s.lastCleanupEndedAt,
		"last_removed_count":      s.lastRemovedCount,
	}
}
