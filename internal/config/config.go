package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/valeriaulyamaeva/finance-tracker/internal/database"
)

type Config struct {
	HTTPPort string
	GinMode  string

	Store database.Options

	CORSOrigins []string

	// ExportDir и ExportSchedule управляют ежедневной выгрузкой CSV.
	// Пустое расписание отключает выгрузку.
	ExportDir      string
	ExportSchedule string

	CategoryCache    bool
	DemoTransactions int
}

// Load читает .env по пути path (если файл есть) и переменные окружения.
// Переменные окружения имеют приоритет над .env.
func Load(path string) (Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("ошибка загрузки %s: %w", path, err)
		}
	}

	cfg := Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "release"),
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:3001")),
		ExportDir:      getEnv("EXPORT_DIR", "exports"),
		ExportSchedule: getEnv("EXPORT_SCHEDULE", ""),
		Store: database.Options{
			Driver:        getEnv("STORE_DRIVER", database.DriverPostgres),
			DatabaseURL:   getEnv("DATABASE_URL", ""),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
		},
	}

	var err error
	if cfg.Store.RedisDB, err = getInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.DemoTransactions, err = getInt("DEMO_TRANSACTIONS", 0); err != nil {
		return Config{}, err
	}
	if cfg.CategoryCache, err = getBool("CATEGORY_CACHE", true); err != nil {
		return Config{}, err
	}

	if cfg.Store.Driver == database.DriverPostgres && cfg.Store.DatabaseURL == "" {
		cfg.Store.DatabaseURL = postgresURL()
	}
	return cfg, nil
}

// postgresURL собирает строку подключения из DB_USER, DB_PASSWORD, DB_HOST, DB_PORT и DB_NAME
func postgresURL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(getEnv("DB_USER", "postgres"), getEnv("DB_PASSWORD", "")),
		Host:   getEnv("DB_HOST", "localhost") + ":" + getEnv("DB_PORT", "5432"),
		Path:   getEnv("DB_NAME", "finance_db"),
	}
	return u.String()
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("некорректное значение %s=%q: %w", key, raw, err)
	}
	return v, nil
}

func getBool(key string, fallback bool) (bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("некорректное значение %s=%q: %w", key, raw, err)
	}
	return v, nil
}

func splitList(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
