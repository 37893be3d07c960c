package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig // catalog change events
	JWT      JWTConfig
	Log      LogConfig
	Storage  StorageConfig
	Catalog  CatalogConfig
}

type AppConfig struct {
	Name        string
	Port        string
	Env         string
	CORSOrigins string // comma separated
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig สำหรับ cache ของ menu และ component list
type RedisConfig struct {
	URL      string // redis://localhost:6379, empty = cache disabled
	Password string
	DB       int
}

type NATSConfig struct {
	URL           string // nats://localhost:4222, empty = events disabled
	SubjectPrefix string // catalog
}

type JWTConfig struct {
	Secret string
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string // logs/app.log
	MaxSize    int    // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// StorageConfig ที่เก็บ SVG logo ของ category/subcategory
type StorageConfig struct {
	Type          string // local, s3
	BasePath      string // ./uploads
	BaseURL       string // http://localhost:8080/files
	MaxUploadSize int64  // bytes
	S3            S3Config
}

type S3Config struct {
	Endpoint  string // minio:9000 or xxx.r2.cloudflarestorage.com
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Region    string
	PublicURL string
}

type CatalogConfig struct {
	ProbeTimeout     time.Duration // per image probe
	ProbeConcurrency int
	CacheTTL         time.Duration
	ReconcileCron    string // empty = scheduled reconcile disabled
}

func LoadConfig() (*Config, error) {
	// .env is optional; plain environment variables work too
	_ = godotenv.Load()

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	maxUploadSize, _ := strconv.ParseInt(getEnv("STORAGE_MAX_UPLOAD_SIZE", "2097152"), 10, 64) // 2MB
	s3UseSSL := getEnv("S3_USE_SSL", "false") == "true"

	probeConcurrency, err := strconv.Atoi(getEnv("IMAGE_PROBE_CONCURRENCY", "8"))
	if err != nil || probeConcurrency < 1 {
		probeConcurrency = 8
	}

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Component Marketplace"),
			Port:        getEnv("APP_PORT", "8080"),
			Env:         getEnv("APP_ENV", "development"),
			CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "component_marketplace"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      os.Getenv("REDIS_URL"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		NATS: NATSConfig{
			URL:           os.Getenv("NATS_URL"),
			SubjectPrefix: getEnv("NATS_SUBJECT_PREFIX", "catalog"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key"),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   logCompress,
		},
		Storage: StorageConfig{
			Type:          getEnv("STORAGE_TYPE", "local"),
			BasePath:      getEnv("STORAGE_BASE_PATH", "./uploads"),
			BaseURL:       getEnv("STORAGE_BASE_URL", "http://localhost:8080/files"),
			MaxUploadSize: maxUploadSize,
			S3: S3Config{
				Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
				AccessKey: getEnv("S3_ACCESS_KEY", "minioadmin"),
				SecretKey: getEnv("S3_SECRET_KEY", "minioadmin"),
				Bucket:    getEnv("S3_BUCKET", "logos"),
				UseSSL:    s3UseSSL,
				Region:    getEnv("S3_REGION", "auto"),
				PublicURL: getEnv("S3_PUBLIC_URL", ""),
			},
		},
		Catalog: CatalogConfig{
			ProbeTimeout:     getDuration("IMAGE_PROBE_TIMEOUT", 5*time.Second),
			ProbeConcurrency: probeConcurrency,
			CacheTTL:         getDuration("CACHE_TTL", 5*time.Minute),
			ReconcileCron:    os.Getenv("MENU_RECONCILE_CRON"),
		},
	}

	if _, ok := os.LookupEnv("MENU_RECONCILE_CRON"); !ok {
		config.Catalog.ReconcileCron = "*/30 * * * *"
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getDuration อ่านค่าแบบ time.ParseDuration ("5s", "2m")
func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

// AllowedOrigins แปลง CORS_ORIGINS เป็น slice
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.App.CORSOrigins, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
