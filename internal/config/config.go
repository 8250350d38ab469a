package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/netgenix/printshop-api/internal/secrets"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Business  BusinessConfig
	Storage   StorageConfig
	Backup    BackupConfig
	Secrets   SecretsConfig
	Logging   LoggingConfig
	Server    ServerConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Port        int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
}

// AuthConfig holds JWT authentication settings. The signing secret comes from
// the secrets provider in staging/production.
type AuthConfig struct {
	JWTSecret string
	Issuer    string
}

// BusinessConfig holds the defaults used to seed the business_settings row on
// first boot. After seeding, the database row is authoritative.
type BusinessConfig struct {
	Name              string
	TPIN              string
	Currency          string
	VATRate           float64
	TurnoverTaxRate   float64
	DefaultAlertLevel float64
}

// StorageConfig holds settings for the backup archive store
type StorageConfig struct {
	Mode                  string // "local" or "azure"
	LocalBasePath         string
	CloudConnectionString string
	CloudContainer        string
}

// BackupConfig controls the scheduled database backup job
type BackupConfig struct {
	Enabled bool
	// Cron is a robfig/cron expression; default is weekly, Sunday 02:00
	Cron string
}

type SecretsConfig struct {
	// Source determines where secrets are loaded from: "environment", "vault", or "auto"
	Source       string
	KeyVaultName string
	CacheEnabled bool
	CacheTTL     int // seconds
}

type LoggingConfig struct {
	Level  string
	Format string
}

type ServerConfig struct {
	ReadTimeout    int
	WriteTimeout   int
	RequestTimeout int
	EnableSwagger  bool
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerMinute int
	WhitelistPaths    []string
}

// ConnectionString builds PostgreSQL connection string
func (d *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// ConnMaxLifetimeDuration returns connection max lifetime as duration
func (d *DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(d.ConnMaxLifetime) * time.Second
}

// ReadTimeoutDuration returns read timeout as duration
func (s *ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

// WriteTimeoutDuration returns write timeout as duration
func (s *ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

// RequestTimeoutDuration returns request timeout as duration
func (s *ServerConfig) RequestTimeoutDuration() time.Duration {
	return time.Duration(s.RequestTimeout) * time.Second
}

// CacheTTLDuration returns the secrets cache TTL as duration
func (s *SecretsConfig) CacheTTLDuration() time.Duration {
	return time.Duration(s.CacheTTL) * time.Second
}

// Load loads configuration from file and environment variables.
// This is a basic load that doesn't fetch secrets from vault.
// Use LoadWithSecrets for full secret resolution.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables override config file
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Database.Password == "" {
		cfg.Database.Password = v.GetString("DATABASE_PASSWORD")
	}
	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = v.GetString("JWT_SECRET")
	}
	if cfg.Secrets.KeyVaultName == "" {
		cfg.Secrets.KeyVaultName = v.GetString("AZURE_KEY_VAULT_NAME")
	}
	if cfg.Storage.CloudConnectionString == "" {
		cfg.Storage.CloudConnectionString = v.GetString("STORAGE_CONNECTION_STRING")
	}

	return &cfg, nil
}

// LoadWithSecrets loads configuration and resolves secrets from the
// configured source. In development secrets come from environment variables;
// in staging/production they come from Azure Key Vault.
func LoadWithSecrets(ctx context.Context, logger *zap.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	provider, err := secrets.NewProvider(&secrets.ProviderConfig{
		Source:       secrets.SecretSource(cfg.Secrets.Source),
		VaultName:    cfg.Secrets.KeyVaultName,
		Environment:  cfg.App.Environment,
		CacheEnabled: cfg.Secrets.CacheEnabled,
		CacheTTL:     cfg.Secrets.CacheTTLDuration(),
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize secrets provider: %w", err)
	}

	if !provider.IsVaultEnabled() {
		return cfg, nil
	}

	cfg.Database.Password = provider.GetSecretOrEnvWithDefault(
		ctx, "DATABASE-PASSWORD", "DATABASE_PASSWORD", cfg.Database.Password)
	cfg.Auth.JWTSecret = provider.GetSecretOrEnvWithDefault(
		ctx, "JWT-SECRET", "JWT_SECRET", cfg.Auth.JWTSecret)
	cfg.Storage.CloudConnectionString = provider.GetSecretOrEnvWithDefault(
		ctx, "STORAGE-CONNECTION-STRING", "STORAGE_CONNECTION_STRING", cfg.Storage.CloudConnectionString)

	return cfg, nil
}

// Validate checks that required configuration is present
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwtsecret is required (set JWT_SECRET)")
	}
	if c.Database.Host == "" || c.Database.Name == "" {
		return fmt.Errorf("database host and name are required")
	}
	if c.Business.VATRate < 0 || c.Business.VATRate >= 1 {
		return fmt.Errorf("business.vatrate must be in [0, 1)")
	}
	if c.Business.TurnoverTaxRate < 0 || c.Business.TurnoverTaxRate >= 1 {
		return fmt.Errorf("business.turnovertaxrate must be in [0, 1)")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "printshop-api")
	v.SetDefault("app.environment", envOrDefault("APP_ENVIRONMENT", "development"))
	v.SetDefault("app.port", 8080)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "printshop")
	v.SetDefault("database.user", "printshop_user")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.maxopenconns", 25)
	v.SetDefault("database.maxidleconns", 5)
	v.SetDefault("database.connmaxlifetime", 300)

	v.SetDefault("auth.issuer", "printshop-api")

	v.SetDefault("business.name", "NetGenix")
	v.SetDefault("business.currency", "ZMW")
	v.SetDefault("business.vatrate", 0.16)
	v.SetDefault("business.turnovertaxrate", 0.05)
	v.SetDefault("business.defaultalertlevel", 5.0)

	v.SetDefault("storage.mode", "local")
	v.SetDefault("storage.localbasepath", "./data/backups")
	v.SetDefault("storage.cloudcontainer", "backups")

	v.SetDefault("backup.enabled", false)
	v.SetDefault("backup.cron", "0 0 2 * * SUN")

	v.SetDefault("secrets.source", "auto")
	v.SetDefault("secrets.cacheenabled", true)
	v.SetDefault("secrets.cachettl", 300)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("server.readtimeout", 15)
	v.SetDefault("server.writetimeout", 30)
	v.SetDefault("server.requesttimeout", 60)
	v.SetDefault("server.enableswagger", true)

	v.SetDefault("cors.allowedorigins", []string{"*"})
	v.SetDefault("cors.allowedmethods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowedheaders", []string{"Accept", "Authorization", "Content-Type"})
	v.SetDefault("cors.exposedheaders", []string{"Content-Disposition"})
	v.SetDefault("cors.allowcredentials", false)
	v.SetDefault("cors.maxage", 300)

	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.requestsperminute", 300)
	v.SetDefault("ratelimit.whitelistpaths", []string{"/health"})
}

func envOrDefault(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
