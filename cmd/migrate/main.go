package main

import (
	"context"
	"flag"
	"log"

	"github.com/valeriaulyamaeva/finance-tracker/internal/config"
	"github.com/valeriaulyamaeva/finance-tracker/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker/internal/repository"
)

// Приводит хранилище к актуальной версии схемы и заполняет категории,
// не поднимая HTTP-сервер.
func main() {
	configPath := flag.String("config-path", ".env", "путь к .env файлу")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	ctx := context.Background()
	store, err := database.Open(ctx, cfg.Store)
	if err != nil {
		log.Fatalf("Ошибка подключения к хранилищу: %v", err)
	}
	defer store.Close()

	if err := store.Initialize(ctx); err != nil {
		log.Fatalf("Ошибка миграции: %v", err)
	}
	version, err := store.SchemaVersion(ctx)
	if err != nil {
		log.Fatalf("Ошибка чтения версии схемы: %v", err)
	}

	added, err := repository.New(store).SeedCategories(ctx)
	if err != nil {
		log.Fatalf("Ошибка заполнения категорий: %v", err)
	}

	log.Printf("Миграция завершена успешно: %s, версия %d, добавлено категорий %d", database.StoreName, version, added)
}
