package recommending

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/content-insights-api/infrastructure/repository"
	"github.com/vfg2006/content-insights-api/internal/config"
	"github.com/vfg2006/content-insights-api/internal/domain"
	"github.com/vfg2006/content-insights-api/pkg/utils"
)

// Service implementa a interface Recommender. A regeneração é serializada
// por usuário: requisições concorrentes no mesmo cache vencido coalescem em
// uma única chamada ao modelo
type Service struct {
	cfg          *config.Config
	generator    *Generator
	opportunist  Opportunist
	cacheRepo    repository.RecommendationCacheRepository
	blogPostRepo repository.BlogPostRepository

	mu        sync.Mutex
	userLocks map[int]*sync.Mutex

	// now é injetável para os testes de janela de TTL
	now func() time.Time
}

// NewService cria uma nova instância do serviço de recomendações
func NewService(
	cfg *config.Config,
	generator *Generator,
	opportunist Opportunist,
	cacheRepo repository.RecommendationCacheRepository,
	blogPostRepo repository.BlogPostRepository,
) *Service {
	return &Service{
		cfg:          cfg,
		generator:    generator,
		opportunist:  opportunist,
		cacheRepo:    cacheRepo,
		blogPostRepo: blogPostRepo,
		userLocks:    make(map[int]*sync.Mutex),
		now:          time.Now,
	}
}

func (s *Service) lockFor(userID int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	return lock
}

// GetRecommendations devolve o conjunto cacheado quando ainda válido, senão
// regenera e persiste antes de responder: o cliente pode confiar que o dado
// devolvido também já está no cache
func (s *Service) GetRecommendations(ctx context.Context, userID int, forceRefresh bool) (*domain.RecommendationResponse, error) {
	if !forceRefresh {
		entry, err := s.cacheRepo.GetActive(userID, s.now())
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Error("search: failed to read recommendation cache")
			return nil, err
		}
		if entry != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":         userID,
				"recommendations": len(entry.Recommendations),
			}).Debug("search: recommendation cache hit")

			return &domain.RecommendationResponse{
				Recommendations: entry.Recommendations,
				Cached:          true,
				GeneratedAt:     entry.CreatedAt,
				ExpiresAt:       entry.ExpiresAt,
			}, nil
		}
	}

	lock := s.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	// Outra requisição pode ter regenerado enquanto esperávamos o lock
	if !forceRefresh {
		entry, err := s.cacheRepo.GetActive(userID, s.now())
		if err == nil && entry != nil {
			return &domain.RecommendationResponse{
				Recommendations: entry.Recommendations,
				Cached:          true,
				GeneratedAt:     entry.CreatedAt,
				ExpiresAt:       entry.ExpiresAt,
			}, nil
		}
	}

	return s.regenerate(ctx, userID)
}

func (s *Service) regenerate(ctx context.Context, userID int) (*domain.RecommendationResponse, error) {
	opportunities, err := s.opportunist.GetOpportunities(ctx, userID, nil)
	if err != nil {
		return nil, err
	}

	titles := s.loadExistingTitles(userID)

	recommendations := s.generator.Generate(ctx, userID, opportunities.Opportunities, titles)

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	now := s.now()
	entry := &domain.RecommendationCacheEntry{
		ID:              id,
		UserID:          userID,
		Recommendations: recommendations,
		CreatedAt:       now,
		ExpiresAt:       now.AddDate(0, 0, s.cfg.Recommendation.CacheTTLDays),
	}

	// Um resultado vazio também vale cache: evita martelar o modelo a cada
	// carregamento de página dentro da janela de TTL
	if err := s.cacheRepo.Replace(entry); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Error("search: failed to persist regenerated recommendations")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":         userID,
		"recommendations": len(recommendations),
		"expires_at":      entry.ExpiresAt.Format(time.RFC3339),
	}).Info("search: recommendations regenerated and cached")

	return &domain.RecommendationResponse{
		Recommendations: recommendations,
		Cached:          false,
		GeneratedAt:     entry.CreatedAt,
		ExpiresAt:       entry.ExpiresAt,
	}, nil
}

// loadExistingTitles carrega os títulos publicados para a detecção de
// lacunas. Falha aqui não impede a geração, apenas empobrece o prompt
func (s *Service) loadExistingTitles(userID int) []string {
	posts, err := s.blogPostRepo.ListPublishedByUserID(userID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Warn("search: failed to load blog titles for prompt")
		return nil
	}

	titles := make([]string, 0, len(posts))
	for _, post := range posts {
		titles = append(titles, post.Title)
	}
	return titles
}

// InvalidateRecommendations descarta o cache do usuário. A próxima leitura
// será um miss forçado
func (s *Service) InvalidateRecommendations(userID int) error {
	return s.cacheRepo.Invalidate(userID)
}
