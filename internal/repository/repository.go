package repository

import (
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/valeriaulyamaeva/finance-tracker/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker/models"
)

// Repository - типизированный доступ к коллекциям и отчеты поверх них.
// Ошибки хранилища (*database.StoreError) возвращаются вызывающему без изменений.
type Repository struct {
	store      database.Store
	categories *ristretto.Cache
	now        func() time.Time
}

type Option func(*Repository)

// WithClock подменяет источник текущего времени
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		r.now = now
	}
}

// WithCategoryCache включает кэш категорий по id
func WithCategoryCache(cache *ristretto.Cache) Option {
	return func(r *Repository) {
		r.categories = cache
	}
}

func New(store database.Store, opts ...Option) *Repository {
	r := &Repository{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Repository) today() string {
	return models.DateKey(r.now())
}

// Now - текущее время по часам репозитория
func (r *Repository) Now() time.Time {
	return r.now()
}
