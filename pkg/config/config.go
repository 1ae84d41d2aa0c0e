package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port    string
	GinMode string

	DBDriver    string
	DatabaseURL string
	SQLitePath  string

	StorageDriver  string
	IconDir        string
	IconMaxBytes   int64
	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOUseSSL    bool

	AdminJWTSecret string
	AdminTokenTTL  time.Duration

	LogLevel string
	LogFile  string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=howtouseai port=5432 sslmode=disable")
	v.SetDefault("SQLITE_PATH", "howtouseai.db")
	v.SetDefault("STORAGE_DRIVER", "local")
	v.SetDefault("ICON_DIR", "static/images/categories")
	v.SetDefault("ICON_MAX_BYTES", 5*1024*1024)
	v.SetDefault("MINIO_ENDPOINT", "localhost:9000")
	v.SetDefault("MINIO_BUCKET", "category-icons")
	v.SetDefault("MINIO_USE_SSL", false)
	v.SetDefault("ADMIN_TOKEN_TTL", 24*time.Hour)
	v.SetDefault("LOG_LEVEL", "info")

	return &Config{
		Port:           v.GetString("PORT"),
		GinMode:        v.GetString("GIN_MODE"),
		DBDriver:       strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		SQLitePath:     v.GetString("SQLITE_PATH"),
		StorageDriver:  strings.ToLower(v.GetString("STORAGE_DRIVER")),
		IconDir:        v.GetString("ICON_DIR"),
		IconMaxBytes:   v.GetInt64("ICON_MAX_BYTES"),
		MinIOEndpoint:  v.GetString("MINIO_ENDPOINT"),
		MinIOAccessKey: v.GetString("MINIO_ACCESS_KEY"),
		MinIOSecretKey: v.GetString("MINIO_SECRET_KEY"),
		MinIOBucket:    v.GetString("MINIO_BUCKET"),
		MinIOUseSSL:    v.GetBool("MINIO_USE_SSL"),
		AdminJWTSecret: v.GetString("ADMIN_JWT_SECRET"),
		AdminTokenTTL:  v.GetDuration("ADMIN_TOKEN_TTL"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		LogFile:        v.GetString("LOG_FILE"),
	}
}
