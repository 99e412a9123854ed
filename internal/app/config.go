package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageModeLocal = "local"
)

type Config struct {
	LogMode     string `mapstructure:"LOG_MODE"`
	Port        string `mapstructure:"PORT"`
	Environment string `mapstructure:"APP_ENV"`

	DBDriver         string `mapstructure:"DB_DRIVER"`
	PostgresHost     string `mapstructure:"POSTGRES_HOST"`
	PostgresPort     string `mapstructure:"POSTGRES_PORT"`
	PostgresUser     string `mapstructure:"POSTGRES_USER"`
	PostgresPassword string `mapstructure:"POSTGRES_PASSWORD"`
	PostgresName     string `mapstructure:"POSTGRES_NAME"`
	PostgresSSLMode  string `mapstructure:"POSTGRES_SSLMODE"`
	SQLitePath       string `mapstructure:"SQLITE_PATH"`
	SeedDefaultTheme bool   `mapstructure:"SEED_DEFAULT_THEME"`

	UploadDir           string `mapstructure:"UPLOAD_DIR"`
	MaxUploadBytes      int64  `mapstructure:"MAX_UPLOAD_BYTES"`
	ObjectStorageMode   string `mapstructure:"OBJECT_STORAGE_MODE"`
	StorageEmulatorHost string `mapstructure:"STORAGE_EMULATOR_HOST"`
	UploadsBucketName   string `mapstructure:"UPLOADS_BUCKET_NAME"`

	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	ThemeCacheTTL time.Duration `mapstructure:"THEME_CACHE_TTL"`

	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	MetricsEnabled        bool          `mapstructure:"METRICS_ENABLED"`
	MetricsScrapeInterval time.Duration `mapstructure:"METRICS_SCRAPE_INTERVAL"`
	OtelEnabled           bool          `mapstructure:"OTEL_ENABLED"`
	OtelServiceName       string        `mapstructure:"OTEL_SERVICE_NAME"`
	OtelEndpoint          string        `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelHeaders           string        `mapstructure:"OTEL_EXPORTER_OTLP_HEADERS"`
	OtelInsecure          bool          `mapstructure:"OTEL_EXPORTER_OTLP_INSECURE"`
	OtelSamplerRatio      float64       `mapstructure:"OTEL_SAMPLER_RATIO"`
	ServiceVersion        string        `mapstructure:"SERVICE_VERSION"`
}

var configDefaults = map[string]any{
	"LOG_MODE": "development",
	"PORT":     "8080",
	"APP_ENV":  "development",

	"DB_DRIVER":          "postgres",
	"POSTGRES_HOST":      "localhost",
	"POSTGRES_PORT":      "5432",
	"POSTGRES_USER":      "postgres",
	"POSTGRES_PASSWORD":  "",
	"POSTGRES_NAME":      "profiles",
	"POSTGRES_SSLMODE":   "disable",
	"SQLITE_PATH":        "data/profiles.db",
	"SEED_DEFAULT_THEME": true,

	"UPLOAD_DIR":            "uploads",
	"MAX_UPLOAD_BYTES":      int64(10 << 20),
	"OBJECT_STORAGE_MODE":   StorageModeLocal,
	"STORAGE_EMULATOR_HOST": "",
	"UPLOADS_BUCKET_NAME":   "",

	"REDIS_ADDR":      "",
	"REDIS_PASSWORD":  "",
	"REDIS_DB":        0,
	"THEME_CACHE_TTL": "10m",

	"CORS_ALLOWED_ORIGINS": "",

	"METRICS_ENABLED":             false,
	"METRICS_SCRAPE_INTERVAL":     "15s",
	"OTEL_ENABLED":                false,
	"OTEL_SERVICE_NAME":           "profile-backend",
	"OTEL_EXPORTER_OTLP_ENDPOINT": "",
	"OTEL_EXPORTER_OTLP_HEADERS":  "",
	"OTEL_EXPORTER_OTLP_INSECURE": false,
	"OTEL_SAMPLER_RATIO":          0.1,
	"SERVICE_VERSION":             "dev",
}

// LoadConfig reads an optional app.env from path, then the environment.
// Environment variables win over the file, the file wins over defaults.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, val := range configDefaults {
		v.SetDefault(key, val)
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	c.ObjectStorageMode = strings.ToLower(strings.TrimSpace(c.ObjectStorageMode))
	origins := c.CORSAllowedOrigins[:0]
	for _, o := range c.CORSAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	c.CORSAllowedOrigins = origins
}

func (c Config) Validate() error {
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes)
	}
	if c.ObjectStorageMode == StorageModeLocal && strings.TrimSpace(c.UploadDir) == "" {
		return fmt.Errorf("UPLOAD_DIR required when OBJECT_STORAGE_MODE=%s", StorageModeLocal)
	}
	return nil
}

func (c Config) Addr() string {
	port := strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
	return ":" + port
}
