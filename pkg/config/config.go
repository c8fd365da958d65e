package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Redis           RedisConfig
	JWT             JWTConfig
	CORS            CORSConfig
	Log             LogConfig
	Ratings         RatingsConfig
	Recommendations RecommendationsConfig
	Users           UsersConfig
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// RatingsConfig tunes the professor rating lookup and its cache.
type RatingsConfig struct {
	Enabled       bool
	SearchBaseURL string
	FetchTimeout  time.Duration
	CacheTTL      time.Duration
	CacheMaxSize  int
}

// RecommendationsConfig tunes the recommendation engine.
type RecommendationsConfig struct {
	MaxResults       int
	CategoryTarget   int
	ResponseCacheTTL time.Duration
}

// UsersConfig controls where user profiles are kept. An empty StorageFile
// keeps profiles in memory only.
type UsersConfig struct {
	StorageFile string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Redis = RedisConfig{
		Enabled:  v.GetBool("REDIS_ENABLED"),
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.JWT = JWTConfig{
		Secret:     v.GetString("JWT_SECRET"),
		Expiration: parseDuration(v.GetString("JWT_EXPIRATION"), 24*time.Hour),
		Issuer:     v.GetString("JWT_ISSUER"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Ratings = RatingsConfig{
		Enabled:       v.GetBool("ENABLE_RATINGS"),
		SearchBaseURL: v.GetString("RATINGS_SEARCH_BASE_URL"),
		FetchTimeout:  parseDuration(v.GetString("RATINGS_FETCH_TIMEOUT"), 10*time.Second),
		CacheTTL:      parseDuration(v.GetString("RATINGS_CACHE_TTL"), 12*time.Hour),
		CacheMaxSize:  v.GetInt("RATINGS_CACHE_MAX_SIZE"),
	}

	cfg.Recommendations = RecommendationsConfig{
		MaxResults:       v.GetInt("RECOMMENDATIONS_MAX_RESULTS"),
		CategoryTarget:   v.GetInt("RECOMMENDATIONS_CATEGORY_TARGET"),
		ResponseCacheTTL: parseDuration(v.GetString("RECOMMENDATIONS_CACHE_TTL"), 5*time.Minute),
	}

	cfg.Users = UsersConfig{
		StorageFile: v.GetString("USERS_STORAGE_FILE"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "24h")
	v.SetDefault("JWT_ISSUER", "advisor-api")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_RATINGS", true)
	v.SetDefault("RATINGS_SEARCH_BASE_URL", "https://www.ratemyprofessors.com")
	v.SetDefault("RATINGS_FETCH_TIMEOUT", "10s")
	v.SetDefault("RATINGS_CACHE_TTL", "12h")
	v.SetDefault("RATINGS_CACHE_MAX_SIZE", 1024)

	v.SetDefault("RECOMMENDATIONS_MAX_RESULTS", 6)
	v.SetDefault("RECOMMENDATIONS_CATEGORY_TARGET", 3)
	v.SetDefault("RECOMMENDATIONS_CACHE_TTL", "5m")

	v.SetDefault("USERS_STORAGE_FILE", "")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
