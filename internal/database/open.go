package database

import (
	"context"
	"fmt"

	"github.com/go-redis/redis"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
	DriverRedis    = "redis"
)

// Options - параметры подключения к выбранному бэкенду
type Options struct {
	Driver        string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Open создает хранилище по имени драйвера и проверяет соединение.
// Схему не трогает, для этого есть Initialize.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Driver {
	case DriverMemory:
		return NewMemoryStore(), nil

	case DriverPostgres:
		pool, err := ConnectDB(ctx, opts.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return NewPostgresStore(pool), nil

	case DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		})
		if err := client.WithContext(ctx).Ping().Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("Redis недоступен: %w", err)
		}
		return NewRedisStore(client), nil

	default:
		return nil, fmt.Errorf("неизвестный драйвер хранилища %q", opts.Driver)
	}
}
