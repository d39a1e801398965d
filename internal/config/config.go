package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"

	LocalStateMemory = "memory"
	LocalStateSQLite = "sqlite"
)

type HTTPConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

type StoreConfig struct {
	Driver    string
	SeedDemo  bool
	LocalMode string
	LocalPath string
}

type AuthConfig struct {
	AccessSecret string
	TokenTTL     time.Duration
	MockOTP      string
}

type PricingConfig struct {
	URL     string
	Timeout time.Duration
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Store       StoreConfig
	Auth        AuthConfig
	Pricing     PricingConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	v.SetDefault("STORE_SEED_DEMO", true)

	_ = v.ReadInConfig()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host:           v.GetString("HTTP_HOST"),
			Port:           v.GetInt("HTTP_PORT"),
			AllowedOrigins: parseList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
		},
		Store: StoreConfig{
			Driver:    strings.ToLower(v.GetString("STORE_DRIVER")),
			SeedDemo:  v.GetBool("STORE_SEED_DEMO"),
			LocalMode: strings.ToLower(v.GetString("LOCAL_STATE_DRIVER")),
			LocalPath: v.GetString("LOCAL_STATE_PATH"),
		},
		Auth: AuthConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
			TokenTTL:     v.GetDuration("JWT_TTL"),
			MockOTP:      v.GetString("AUTH_MOCK_OTP"),
		},
		Pricing: PricingConfig{
			URL:     v.GetString("PRICING_URL"),
			Timeout: v.GetDuration("PRICING_TIMEOUT"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7090
	}
	if len(cfg.HTTP.AllowedOrigins) == 0 {
		cfg.HTTP.AllowedOrigins = []string{"*"}
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = StoreMemory
	}
	if cfg.Store.LocalMode == "" {
		cfg.Store.LocalMode = LocalStateMemory
	}
	if cfg.Store.LocalPath == "" {
		cfg.Store.LocalPath = "local_state.db"
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = 24 * time.Hour
	}
	if cfg.Auth.MockOTP == "" {
		cfg.Auth.MockOTP = "123456"
	}
	if cfg.Pricing.Timeout == 0 {
		cfg.Pricing.Timeout = 10 * time.Second
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Store.Driver {
	case StoreMemory:
	case StorePostgres:
		if cfg.DB.DSN == "" {
			return fmt.Errorf("DB_DSN is required when STORE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
	switch cfg.Store.LocalMode {
	case LocalStateMemory, LocalStateSQLite:
	default:
		return fmt.Errorf("unknown LOCAL_STATE_DRIVER %q", cfg.Store.LocalMode)
	}
	if cfg.Auth.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	return nil
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
