package config

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// ErrMissingJWTSecret is returned when no signing secret is configured.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

type Config struct {
	Server       Server
	Database     Database
	Auth         Auth
	Seed         Seed
	LogLevel     string
	GeminiApiKey string
	GeminiModel  string
}

type Server struct {
	Port      string
	GinMode   string
	StaticDir string // optional prebuilt SPA bundle
}

type Database struct {
	Driver   string // "sqlite" or "postgres"
	Path     string // sqlite file
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Auth struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

type Seed struct {
	AdminEmail    string
	AdminPassword string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "3000")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_PATH", "medquest.db")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("SEED_ADMIN_EMAIL", "admin@medquest.com")
	v.SetDefault("SEED_ADMIN_PASSWORD", "admin123")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	var config Config

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.GinMode = v.GetString("GIN_MODE")
	config.Server.StaticDir = v.GetString("STATIC_DIR")
	config.LogLevel = v.GetString("LOG_LEVEL")

	config.Database.Driver = v.GetString("DATABASE_DRIVER")
	config.Database.Path = v.GetString("DATABASE_PATH")
	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")

	config.Auth.JWTSecret = v.GetString("JWT_SECRET")
	config.Auth.TokenTTL = v.GetDuration("JWT_TTL")
	config.Auth.BcryptCost = v.GetInt("BCRYPT_COST")

	config.Seed.AdminEmail = v.GetString("SEED_ADMIN_EMAIL")
	config.Seed.AdminPassword = v.GetString("SEED_ADMIN_PASSWORD")

	config.GeminiApiKey = v.GetString("GEMINI_API_KEY")
	config.GeminiModel = v.GetString("GEMINI_MODEL")

	// JWT_SECRET has no default.
	if config.Auth.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	log.Info().
		Str("port", config.Server.Port).
		Str("db_driver", config.Database.Driver).
		Dur("token_ttl", config.Auth.TokenTTL).
		Bool("gemini_enabled", config.GeminiApiKey != "").
		Msg("Config loaded")
	return &config, nil
}
