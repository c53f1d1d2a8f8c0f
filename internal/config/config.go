package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/loginverify/loginverify/backend/go-services/pkg/logger"
	"github.com/spf13/viper"
)

const (
	DefaultMailFrom      = "no-reply@example.com"
	DefaultVerifyBaseURL = "https://example.com"

	StoreMongo  = "mongo"
	StoreRedis  = "redis"
	StoreMemory = "memory"

	TransportSendGrid = "sendgrid"
	TransportSMTP     = "smtp"
)

// Config holds application configuration. It is built once at startup and
// treated as read-only afterwards.
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	Redis   RedisConfig
	Store   StoreConfig
	Mail    MailConfig
	Verify  VerifyConfig
	CORS    CORSConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type StoreConfig struct {
	Backend string
}

type MailConfig struct {
	APIKey       string
	From         string
	FromName     string
	Transport    string
	SendGridHost string
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
}

// Enabled reports whether mail credentials are present. Without them the
// mailer runs in degraded mode and skips delivery.
func (m MailConfig) Enabled() bool { return m.APIKey != "" }

type VerifyConfig struct {
	// BaseURL is the decision endpoint the approve/deny links point at.
	BaseURL string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// LoadConfig loads configuration from environment variables, an optional .env
// file and the runtime config document (RUNTIME_CONFIG_PATH).
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_ENVIRONMENT", "development")
	v.SetDefault("MONGODB_DATABASE", "loginverify")
	v.SetDefault("MONGODB_TIMEOUT", 10)
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("MAIL_TRANSPORT", TransportSendGrid)
	v.SetDefault("SENDGRID_HOST", "https://api.sendgrid.com")
	v.SetDefault("SMTP_HOST", "smtp.sendgrid.net")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USER", "apikey")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RUNTIME_CONFIG_PATH", ".runtimeconfig.json")

	rc := loadRuntimeConfig(v.GetString("RUNTIME_CONFIG_PATH"))

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetString("SERVER_PORT"),
			Host:         v.GetString("SERVER_HOST"),
			Environment:  v.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		MongoDB: MongoDBConfig{
			URI:      v.GetString("MONGODB_URI"),
			Database: v.GetString("MONGODB_DATABASE"),
			Timeout:  time.Duration(v.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Mail: MailConfig{
			APIKey:       layered(v, "SENDGRID_API_KEY", rc, "sendgrid.key", ""),
			From:         layered(v, "MAIL_FROM", rc, "mail.from", DefaultMailFrom),
			FromName:     v.GetString("MAIL_FROM_NAME"),
			Transport:    strings.ToLower(v.GetString("MAIL_TRANSPORT")),
			SendGridHost: v.GetString("SENDGRID_HOST"),
			SMTPHost:     v.GetString("SMTP_HOST"),
			SMTPPort:     v.GetInt("SMTP_PORT"),
			SMTPUser:     v.GetString("SMTP_USER"),
		},
		Verify: VerifyConfig{
			BaseURL: layered(v, "VERIFY_BASE_URL", rc, "verify.base_url", DefaultVerifyBaseURL),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}
	cfg.Store.Backend = storeBackend(strings.ToLower(v.GetString("STORE_BACKEND")), cfg)

	if !cfg.Mail.Enabled() {
		logger.Warnf("SENDGRID_API_KEY is not set; verification emails will be skipped")
	}

	return cfg, nil
}

// layered resolves a setting from the environment first, then the runtime
// config document, then the default. Empty values fall through.
func layered(env *viper.Viper, envKey string, rc *viper.Viper, rcKey, def string) string {
	if s := env.GetString(envKey); s != "" {
		return s
	}
	if s := rc.GetString(rcKey); s != "" {
		return s
	}
	return def
}

// loadRuntimeConfig reads the platform runtime config document. A missing or
// unreadable document yields an empty source.
func loadRuntimeConfig(path string) *viper.Viper {
	rc := viper.New()
	if path == "" {
		return rc
	}
	rc.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		rc.SetConfigType("json")
	}
	if err := rc.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debugf("runtime config %s not found", path)
		} else {
			logger.Warnf("ignoring runtime config %s: %v", path, err)
		}
	}
	return rc
}

func storeBackend(requested string, cfg *Config) string {
	switch requested {
	case StoreMongo, StoreRedis, StoreMemory:
		return requested
	case "":
	default:
		logger.Warnf("unknown STORE_BACKEND %q; selecting automatically", requested)
	}
	if cfg.MongoDB.URI != "" {
		return StoreMongo
	}
	if cfg.Redis.Host != "" {
		return StoreRedis
	}
	return StoreMemory
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
