package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/finance-tracker/internal/config"
	"github.com/valeriaulyamaeva/finance-tracker/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker/internal/repository"
	"github.com/valeriaulyamaeva/finance-tracker/internal/routes"
	"github.com/valeriaulyamaeva/finance-tracker/internal/scheduler"
	"github.com/valeriaulyamaeva/finance-tracker/utils"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config-path", ".env", "путь к .env файлу")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// run сам закрывает хранилище и расписание, здесь остается только выйти
	if err := run(ctx, *configPath); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}
	gin.SetMode(cfg.GinMode)

	store, err := database.Open(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("ошибка подключения к хранилищу: %w", err)
	}
	defer store.Close()

	if err := store.Initialize(ctx); err != nil {
		return fmt.Errorf("ошибка инициализации хранилища: %w", err)
	}

	var opts []repository.Option
	if cfg.CategoryCache {
		cache, err := repository.NewCategoryCache()
		if err != nil {
			return fmt.Errorf("ошибка создания кэша: %w", err)
		}
		defer cache.Close()
		opts = append(opts, repository.WithCategoryCache(cache))
	}
	repo := repository.New(store, opts...)

	added, err := repo.SeedCategories(ctx)
	if err != nil {
		return fmt.Errorf("ошибка заполнения категорий: %w", err)
	}
	if added > 0 {
		log.Printf("Добавлено категорий по умолчанию: %d", added)
	}

	if cfg.DemoTransactions > 0 {
		n, err := utils.GenerateTestTransactions(ctx, repo, cfg.DemoTransactions)
		if err != nil {
			log.Printf("Ошибка генерации демо-данных: %v", err)
		}
		log.Printf("Сгенерировано демо-транзакций: %d", n)
	}

	c, err := scheduler.ScheduleExport(repo, cfg.ExportDir, cfg.ExportSchedule)
	if err != nil {
		return fmt.Errorf("ошибка настройки расписания: %w", err)
	}
	// выполняется раньше store.Close, незаконченная выгрузка успевает дописать файл
	defer scheduler.Stop(c)
	if c != nil {
		log.Printf("Экспорт в %s по расписанию %q", cfg.ExportDir, cfg.ExportSchedule)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: routes.SetupRouter(repo, cfg.CORSOrigins),
	}
	log.Printf("Сервер запущен на порту %s (хранилище %s)", cfg.HTTPPort, cfg.Store.Driver)
	return serve(ctx, srv)
}

// serve обслуживает запросы до отмены ctx или ошибки запуска сервера
func serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ошибка запуска сервера: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Остановка сервера...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("ошибка остановки сервера: %w", err)
	}
	return nil
}
