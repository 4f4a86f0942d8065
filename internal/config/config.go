package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Google         Google         `mapstructure:",squash"`
	Gemini         Gemini         `mapstructure:",squash"`
	Opportunity    Opportunity    `mapstructure:",squash"`
	Recommendation Recommendation `mapstructure:",squash"`
	CacheCleanup   CacheCleanup   `mapstructure:",squash"`
	SecretKey      string         `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Google struct {
	OAuthTokenURL      string `mapstructure:"google_oauth_token_url"`
	OAuthAuthURL       string `mapstructure:"google_oauth_auth_url"`
	SearchConsoleURL   string `mapstructure:"google_search_console_url"`
	ClientID           string `mapstructure:"google_client_id"`
	ClientSecret       string `mapstructure:"google_client_secret"`
	RedirectURI        string `mapstructure:"google_redirect_uri"`
	Scope              string `mapstructure:"google_oauth_scope"`
	SiteURL            string `mapstructure:"google_site_url"`
	TokenBufferMinutes int    `mapstructure:"google_token_buffer_minutes"`
}

type Gemini struct {
	BaseURL   string `mapstructure:"gemini_base_url"`
	APIKey    string `mapstructure:"gemini_api_key"`
	Model     string `mapstructure:"gemini_model"`
	MaxTokens int    `mapstructure:"gemini_max_tokens"`
}

// Opportunity concentra os parâmetros de pontuação de oportunidades. Nenhuma
// das constantes tem fonte de calibração empírica documentada, por isso tudo
// é configurável em vez de fixo no código
type Opportunity struct {
	MinImpressions     int     `mapstructure:"opportunity_min_impressions"`
	MaxCTR             float64 `mapstructure:"opportunity_max_ctr"`
	MinPosition        float64 `mapstructure:"opportunity_min_position"`
	PositionDivisor    float64 `mapstructure:"opportunity_position_divisor"`
	CTRAtPositionOne   float64 `mapstructure:"opportunity_ctr_at_position_one"`
	CTRNearTop         float64 `mapstructure:"opportunity_ctr_near_top"`
	NearTopMaxPosition float64 `mapstructure:"opportunity_near_top_max_position"`
	TopLimit           int     `mapstructure:"opportunity_top_limit"`
	LookbackDays       int     `mapstructure:"opportunity_lookback_days"`
}

type Recommendation struct {
	CacheTTLDays int `mapstructure:"recommendation_cache_ttl_days"`
	PromptLimit  int `mapstructure:"recommendation_prompt_limit"`
}

type CacheCleanup struct {
	CronSchedule string `mapstructure:"cache_cleanup_cron"`
	Enabled      bool   `mapstructure:"cache_cleanup_enabled"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/content_insights")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("GOOGLE_OAUTH_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GOOGLE_OAUTH_AUTH_URL", "https://accounts.google.com/o/oauth2/v2/auth")
	viper.SetDefault("GOOGLE_SEARCH_CONSOLE_URL", "https://www.googleapis.com/webmasters/v3")
	viper.SetDefault("GOOGLE_CLIENT_ID", "your_client_id")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "your_client_secret")
	viper.SetDefault("GOOGLE_REDIRECT_URI", "http://localhost:8000/v1/search/callback")
	viper.SetDefault("GOOGLE_OAUTH_SCOPE", "https://www.googleapis.com/auth/webmasters.readonly")
	viper.SetDefault("GOOGLE_SITE_URL", "sc-domain:example.com")
	viper.SetDefault("GOOGLE_TOKEN_BUFFER_MINUTES", 5) // Renovar antes do token morrer no meio da requisição

	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("GEMINI_API_KEY", "your_api_key")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("GEMINI_MAX_TOKENS", 4096)

	// Defaults da pontuação de oportunidades
	viper.SetDefault("OPPORTUNITY_MIN_IMPRESSIONS", 10)
	viper.SetDefault("OPPORTUNITY_MAX_CTR", 0.05)
	viper.SetDefault("OPPORTUNITY_MIN_POSITION", 5.0)
	viper.SetDefault("OPPORTUNITY_POSITION_DIVISOR", 10.0)
	viper.SetDefault("OPPORTUNITY_CTR_AT_POSITION_ONE", 0.3) // Estimativa conservadora para conteúdo de nicho
	viper.SetDefault("OPPORTUNITY_CTR_NEAR_TOP", 0.3)
	viper.SetDefault("OPPORTUNITY_NEAR_TOP_MAX_POSITION", 3.0)
	viper.SetDefault("OPPORTUNITY_TOP_LIMIT", 50)
	viper.SetDefault("OPPORTUNITY_LOOKBACK_DAYS", 28)

	// Defaults do cache de recomendações
	viper.SetDefault("RECOMMENDATION_CACHE_TTL_DAYS", 7)
	viper.SetDefault("RECOMMENDATION_PROMPT_LIMIT", 30)

	// Defaults da limpeza do cache
	viper.SetDefault("CACHE_CLEANUP_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("CACHE_CLEANUP_ENABLED", false)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
