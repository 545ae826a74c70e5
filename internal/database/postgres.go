package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/valeriaulyamaeva/finance-tracker/models"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

// PostgresStore хранит коллекции в таблицах PostgreSQL.
// Версия схемы ведется goose-миграциями.
type PostgresStore struct {
	life *lifecycle
	pool *pgxpool.Pool
	db   *sql.DB
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		life: &lifecycle{},
		pool: pool,
		db:   stdlib.OpenDBFromPool(pool),
	}
}

// Initialize применяет недостающие миграции. Повторный вызов ничего не меняет.
func (s *PostgresStore) Initialize(ctx context.Context) error {
	if err := s.life.check(ctx, "initialize", ""); err != nil {
		return err
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(log.Default())
	if err := goose.SetDialect("postgres"); err != nil {
		return storeErr("initialize", "", err)
	}
	if err := goose.UpContext(ctx, s.db, migrationsDir); err != nil {
		return storeErr("initialize", "", fmt.Errorf("ошибка применения миграций: %w", err))
	}
	return nil
}

func (s *PostgresStore) SchemaVersion(ctx context.Context) (int64, error) {
	if err := s.life.check(ctx, "version", ""); err != nil {
		return 0, err
	}
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return 0, storeErr("version", "", err)
	}
	version, err := goose.GetDBVersionContext(ctx, s.db)
	if err != nil {
		return 0, storeErr("version", "", err)
	}
	return version, nil
}

func (s *PostgresStore) Transactions() Collection[models.Transaction] {
	return &pgCollection[models.Transaction]{life: s.life, pool: s.pool, table: transactionsTable}
}

func (s *PostgresStore) Plans() Collection[models.Plan] {
	return &pgCollection[models.Plan]{life: s.life, pool: s.pool, table: plansTable}
}

func (s *PostgresStore) Categories() Collection[models.Category] {
	return &pgCollection[models.Category]{life: s.life, pool: s.pool, table: categoriesTable}
}

func (s *PostgresStore) Budgets() Collection[models.Budget] {
	return &pgCollection[models.Budget]{life: s.life, pool: s.pool, table: budgetsTable}
}

func (s *PostgresStore) Goals() Collection[models.Goal] {
	return &pgCollection[models.Goal]{life: s.life, pool: s.pool, table: goalsTable}
}

func (s *PostgresStore) Reminders() Collection[models.Reminder] {
	return &pgCollection[models.Reminder]{life: s.life, pool: s.pool, table: remindersTable}
}

func (s *PostgresStore) Close() error {
	if s.life.closed.Swap(true) {
		return nil
	}
	err := s.db.Close()
	s.pool.Close()
	return err
}

// pgTable описывает отображение записи на таблицу.
// columns не включает id, scan читает id первым.
type pgTable[T any] struct {
	name    string
	columns []string
	values  func(rec T) []any
	scan    func(row pgx.Row) (T, error)
}

func (t pgTable[T]) selectList() string {
	return "id, " + strings.Join(t.columns, ", ")
}

func placeholders(from, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(parts, ", ")
}

type pgCollection[T any] struct {
	life  *lifecycle
	pool  *pgxpool.Pool
	table pgTable[T]
}

func (c *pgCollection[T]) Add(ctx context.Context, rec T) (int64, error) {
	if err := c.life.check(ctx, "add", c.table.name); err != nil {
		return 0, err
	}
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING id`,
		c.table.name, strings.Join(c.table.columns, ", "), placeholders(1, len(c.table.columns)))

	var id int64
	if err := c.pool.QueryRow(ctx, query, c.table.values(rec)...).Scan(&id); err != nil {
		return 0, storeErr("add", c.table.name, err)
	}
	return id, nil
}

func (c *pgCollection[T]) Put(ctx context.Context, id int64, rec T) error {
	if err := c.life.check(ctx, "put", c.table.name); err != nil {
		return err
	}
	updates := make([]string, len(c.table.columns))
	for i, col := range c.table.columns {
		updates[i] = fmt.Sprintf("%s = EXCLUDED.%s", col, col)
	}
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (id) DO UPDATE SET %s`,
		c.table.name, c.table.selectList(), placeholders(1, len(c.table.columns)+1), strings.Join(updates, ", "))

	args := append([]any{id}, c.table.values(rec)...)
	if _, err := c.pool.Exec(ctx, query, args...); err != nil {
		return storeErr("put", c.table.name, err)
	}

	// последовательность не должна выдать уже занятый id
	seq := fmt.Sprintf(`SELECT setval('%[1]s_id_seq', $1::bigint) WHERE $1::bigint >= (SELECT last_value FROM %[1]s_id_seq)`,
		c.table.name)
	if _, err := c.pool.Exec(ctx, seq, id); err != nil {
		return storeErr("put", c.table.name, err)
	}
	return nil
}

func (c *pgCollection[T]) Remove(ctx context.Context, id int64) error {
	if err := c.life.check(ctx, "remove", c.table.name); err != nil {
		return err
	}
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, c.table.name)
	if _, err := c.pool.Exec(ctx, query, id); err != nil {
		return storeErr("remove", c.table.name, err)
	}
	return nil
}

func (c *pgCollection[T]) Get(ctx context.Context, id int64) (*T, error) {
	if err := c.life.check(ctx, "get", c.table.name); err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, c.table.selectList(), c.table.name)

	rec, err := c.table.scan(c.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get", c.table.name, err)
	}
	return &rec, nil
}

func (c *pgCollection[T]) All(ctx context.Context) ([]T, error) {
	if err := c.life.check(ctx, "getAll", c.table.name); err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY id`, c.table.selectList(), c.table.name)

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, storeErr("getAll", c.table.name, err)
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		rec, err := c.table.scan(rows)
		if err != nil {
			return nil, storeErr("getAll", c.table.name, err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("getAll", c.table.name, err)
	}
	return result, nil
}
