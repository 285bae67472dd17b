package configs

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Database DatabaseConfig `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Log      LogConfig      `mapstructure:"log"`
	Seed     SeedConfig     `mapstructure:"seed"`
}

type AppConfig struct {
	Name           string        `mapstructure:"name"`
	Environment    string        `mapstructure:"environment"`
	Port           string        `mapstructure:"port"`
	CorsOrigins    []string      `mapstructure:"cors_origins"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	Name         string `mapstructure:"name"`
	SSLMode      string `mapstructure:"sslmode"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	AutoMigrate  bool   `mapstructure:"auto_migrate"`
}

// DSN builds the postgres URL with a statement timeout matching the HTTP guard.
func (d DatabaseConfig) DSN(appName string) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=%s&options=-c statement_timeout=3000",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode, appName,
	)
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Channel  string `mapstructure:"channel"`
}

func (r RedisConfig) Enabled() bool { return strings.TrimSpace(r.Addr) != "" }

type AuthConfig struct {
	JWTSecret         string        `mapstructure:"jwt_secret"`
	TokenTTL          time.Duration `mapstructure:"token_ttl"`
	BlacklistTTLDays  int           `mapstructure:"blacklist_ttl_days"`
	BlacklistSweepInt time.Duration `mapstructure:"blacklist_sweep_interval"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type SeedConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	AdminEmail    string `mapstructure:"admin_email"`
	AdminPassword string `mapstructure:"admin_password"`
	AdminName     string `mapstructure:"admin_name"`
}

// Load reads .env (when present), configs/config.yaml (optional) and the
// environment, in increasing order of precedence.
func Load() (*Config, error) {
	LoadEnv()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	// CORS_ORIGINS arrives comma separated
	cfg.App.CorsOrigins = splitList(strings.Join(cfg.App.CorsOrigins, ","))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "frontdesk")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.port", "3000")
	v.SetDefault("app.cors_origins", "http://localhost:5173")
	v.SetDefault("app.request_timeout", 5*time.Second)

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.sslmode", "require")
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.auto_migrate", true)

	v.SetDefault("redis.channel", "frontdesk:intake-events")

	v.SetDefault("auth.token_ttl", 12*time.Hour)
	v.SetDefault("auth.blacklist_ttl_days", 7)
	v.SetDefault("auth.blacklist_sweep_interval", 24*time.Hour)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("seed.enabled", true)
	v.SetDefault("seed.admin_name", "Front Desk Admin")
}

// bindEnv keeps the flat env names used by the deployment (DB_HOST, JWT_SECRET, ...).
func bindEnv(v *viper.Viper) {
	pairs := map[string]string{
		"app.name":                      "APP_NAME",
		"app.environment":               "APP_ENVIRONMENT",
		"app.port":                      "PORT",
		"app.cors_origins":              "CORS_ORIGINS",
		"app.request_timeout":           "REQUEST_TIMEOUT",
		"db.host":                       "DB_HOST",
		"db.port":                       "DB_PORT",
		"db.user":                       "DB_USER",
		"db.password":                   "DB_PASSWORD",
		"db.name":                       "DB_NAME",
		"db.sslmode":                    "DB_SSLMODE",
		"db.auto_migrate":               "DB_AUTO_MIGRATE",
		"redis.addr":                    "REDIS_ADDR",
		"redis.password":                "REDIS_PASSWORD",
		"redis.db":                      "REDIS_DB",
		"redis.channel":                 "REDIS_CHANNEL",
		"auth.jwt_secret":               "JWT_SECRET",
		"auth.token_ttl":                "JWT_TTL",
		"auth.blacklist_ttl_days":       "TOKEN_BLACKLIST_TTL_DAYS",
		"auth.blacklist_sweep_interval": "TOKEN_BLACKLIST_SWEEP_INTERVAL",
		"log.level":                     "LOG_LEVEL",
		"log.format":                    "LOG_FORMAT",
		"seed.enabled":                  "SEED_ENABLED",
		"seed.admin_email":              "SEED_ADMIN_EMAIL",
		"seed.admin_password":           "SEED_ADMIN_PASSWORD",
		"seed.admin_name":               "SEED_ADMIN_NAME",
	}
	for key, env := range pairs {
		_ = v.BindEnv(key, env)
	}
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive")
	}
	if c.App.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Seed.Enabled && c.Seed.AdminEmail != "" && len(c.Seed.AdminPassword) < 8 {
		return fmt.Errorf("SEED_ADMIN_PASSWORD must be at least 8 characters")
	}
	return nil
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") != "" {
		log.Println("Running in Railway, using system ENV")
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, using system ENV")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
