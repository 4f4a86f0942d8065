package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/content-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/content-insights-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/content-insights-api/infrastructure/integrator/google"
	"github.com/vfg2006/content-insights-api/infrastructure/integrator/google/googleclient"
	"github.com/vfg2006/content-insights-api/infrastructure/repository"
	"github.com/vfg2006/content-insights-api/internal/api"
	"github.com/vfg2006/content-insights-api/internal/config"
	"github.com/vfg2006/content-insights-api/internal/scheduler"
	"github.com/vfg2006/content-insights-api/internal/usecases/opportunity"
	"github.com/vfg2006/content-insights-api/internal/usecases/performance"
	"github.com/vfg2006/content-insights-api/internal/usecases/recommending"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	tokenRepo := repository.NewGoogleTokenRepository(pgConn)
	cacheRepo := repository.NewRecommendationCacheRepository(pgConn)
	blogPostRepo := repository.NewBlogPostRepository(pgConn)

	// Integração com o Google Search Console
	tokenManager := googleclient.NewTokenManager(cfg, tokenRepo)
	googleClient := googleclient.NewClient(cfg, tokenManager)
	searchService := google.New(cfg, googleClient)

	// Integração com o modelo generativo
	geminiClient := geminiclient.NewClient(cfg)

	opportunityService := opportunity.NewService(cfg, searchService)
	performanceService := performance.NewService(cfg, searchService, blogPostRepo)

	recommendationGenerator := recommending.NewGenerator(cfg, geminiClient)
	recommendationService := recommending.NewService(
		cfg,
		recommendationGenerator,
		opportunityService,
		cacheRepo,
		blogPostRepo,
	)

	// Agendador de limpeza do cache de recomendações
	cacheCleanupService := scheduler.NewCacheCleanupService(cacheRepo, cfg)

	if err := cacheCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de cache")
	} else {
		logrus.Info("Agendador de limpeza de cache iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		searchService,
		opportunityService,
		performanceService,
		recommendationService,
		cacheCleanupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
