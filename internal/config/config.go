package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr     string
	RedisPassword string

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	GinMode    string
	ServerPort string

	UploadDir string
	MediaURL  string

	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
}

func Load() *Config {
	// Missing .env is fine, plain environment variables still apply.
	_ = godotenv.Load()

	return &Config{
		DBDriver:   getEnv("DB_DRIVER", "mysql"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "bloguser"),
		DBPassword: getEnv("DB_PASSWORD", "blogpassword"),
		DBName:     getEnv("DB_NAME", "blog"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		JWTSecret:       getEnv("JWT_SECRET", "default-secret-key-change-me"),
		AccessTokenTTL:  getDuration("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenTTL: getDuration("REFRESH_TOKEN_TTL", 24*time.Hour),

		GinMode:    getEnv("GIN_MODE", "debug"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
		MediaURL:  getEnv("MEDIA_URL", "/media"),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogPath:       getEnv("LOG_PATH", ""),
		LogMaxSizeMB:  getInt("LOG_MAX_SIZE_MB", 100),
		LogMaxBackups: getInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getInt("LOG_MAX_AGE_DAYS", 7),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
