package config

import (
	"os"
	"strconv"

	"github.com/openhire/job-board-api/internal/constants"
)

type Config struct {
	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	RedisHost      string
	RedisPort      string
	SessionSecret  string
	SessionTimeout int // seconds of inactivity before a session expires
	GinMode        string
	AllowedOrigins string
	SMTPHost       string
	SMTPPort       string
	SMTPFrom       string
}

func Load() *Config {
	return &Config{
		DBDriver:       getEnv("DB_DRIVER", "postgres"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "jobboard"),
		DBPassword:     getEnv("DB_PASSWORD", "jobboard"),
		DBName:         getEnv("DB_NAME", "jobboard"),
		RedisHost:      getEnv("REDIS_HOST", ""),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		SessionSecret:  getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		SessionTimeout: getEnvInt("SESSION_TIMEOUT_SECONDS", constants.DefaultSessionTimeoutSeconds),
		GinMode:        getEnv("GIN_MODE", "debug"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPPort:       getEnv("SMTP_PORT", "25"),
		SMTPFrom:       getEnv("SMTP_FROM", "no-reply@jobboard.local"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
