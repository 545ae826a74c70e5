package database

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-redis/redis"
	"github.com/valeriaulyamaeva/finance-tracker/models"
)

// RedisStore хранит каждую коллекцию в отдельном hash: поле - id, значение - запись в JSON.
// Счетчик id лежит в ключе <prefix>:<коллекция>:seq и не отстает от самого большого id.
type RedisStore struct {
	life   *lifecycle
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		life:   &lifecycle{},
		client: client,
		prefix: StoreName,
	}
}

func (s *RedisStore) metaKey() string {
	return s.prefix + ":meta"
}

// Initialize фиксирует версию схемы и список коллекций.
// Hash-и коллекций Redis создает сам при первой записи.
func (s *RedisStore) Initialize(ctx context.Context) error {
	if err := s.life.check(ctx, "initialize", ""); err != nil {
		return err
	}
	client := s.client.WithContext(ctx)

	version, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}
	if version >= SchemaVersion {
		return nil
	}

	fields := map[string]interface{}{
		"version":     SchemaVersion,
		"collections": strings.Join(Collections, ","),
	}
	if err := client.HMSet(s.metaKey(), fields).Err(); err != nil {
		return storeErr("initialize", "", err)
	}
	return nil
}

func (s *RedisStore) SchemaVersion(ctx context.Context) (int64, error) {
	if err := s.life.check(ctx, "version", ""); err != nil {
		return 0, err
	}
	raw, err := s.client.WithContext(ctx).HGet(s.metaKey(), "version").Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, storeErr("version", "", err)
	}
	version, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, storeErr("version", "", fmt.Errorf("некорректная версия схемы %q: %w", raw, err))
	}
	return version, nil
}

func (s *RedisStore) Transactions() Collection[models.Transaction] {
	return newRedisCollection[models.Transaction](s, CollectionTransactions)
}

func (s *RedisStore) Plans() Collection[models.Plan] {
	return newRedisCollection[models.Plan](s, CollectionPlans)
}

func (s *RedisStore) Categories() Collection[models.Category] {
	return newRedisCollection[models.Category](s, CollectionCategories)
}

func (s *RedisStore) Budgets() Collection[models.Budget] {
	return newRedisCollection[models.Budget](s, CollectionBudgets)
}

func (s *RedisStore) Goals() Collection[models.Goal] {
	return newRedisCollection[models.Goal](s, CollectionGoals)
}

func (s *RedisStore) Reminders() Collection[models.Reminder] {
	return newRedisCollection[models.Reminder](s, CollectionReminders)
}

func (s *RedisStore) Close() error {
	if s.life.closed.Swap(true) {
		return nil
	}
	return s.client.Close()
}

type redisCollection[T record[T]] struct {
	life   *lifecycle
	client *redis.Client
	name   string
	key    string
}

func newRedisCollection[T record[T]](s *RedisStore, name string) *redisCollection[T] {
	return &redisCollection[T]{
		life:   s.life,
		client: s.client,
		name:   name,
		key:    s.prefix + ":" + name,
	}
}

// bumpSeq поднимает счетчик id до ARGV[1], если он меньше
var bumpSeq = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
if current < tonumber(ARGV[1]) then
	redis.call('SET', KEYS[1], ARGV[1])
end
return 0
`)

func (c *redisCollection[T]) seqKey() string {
	return c.key + ":seq"
}

func (c *redisCollection[T]) encode(op string, id int64, rec T) ([]byte, error) {
	data, err := json.Marshal(rec.WithID(id))
	if err != nil {
		return nil, storeErr(op, c.name, err)
	}
	return data, nil
}

// Add берет следующий id из счетчика. Если поле уже занято, запись не перезаписывается.
func (c *redisCollection[T]) Add(ctx context.Context, rec T) (int64, error) {
	if err := c.life.check(ctx, "add", c.name); err != nil {
		return 0, err
	}
	client := c.client.WithContext(ctx)

	id, err := client.Incr(c.seqKey()).Result()
	if err != nil {
		return 0, storeErr("add", c.name, err)
	}
	data, err := c.encode("add", id, rec)
	if err != nil {
		return 0, err
	}
	created, err := client.HSetNX(c.key, strconv.FormatInt(id, 10), data).Result()
	if err != nil {
		return 0, storeErr("add", c.name, err)
	}
	if !created {
		return 0, storeErr("add", c.name, fmt.Errorf("%w: id %d", ErrConflict, id))
	}
	return id, nil
}

// Put создает или заменяет запись и не дает счетчику отстать от id
func (c *redisCollection[T]) Put(ctx context.Context, id int64, rec T) error {
	if err := c.life.check(ctx, "put", c.name); err != nil {
		return err
	}
	client := c.client.WithContext(ctx)

	data, err := c.encode("put", id, rec)
	if err != nil {
		return err
	}
	if err := client.HSet(c.key, strconv.FormatInt(id, 10), data).Err(); err != nil {
		return storeErr("put", c.name, err)
	}
	if err := bumpSeq.Run(client, []string{c.seqKey()}, id).Err(); err != nil {
		return storeErr("put", c.name, err)
	}
	return nil
}

func (c *redisCollection[T]) Remove(ctx context.Context, id int64) error {
	if err := c.life.check(ctx, "remove", c.name); err != nil {
		return err
	}
	if err := c.client.WithContext(ctx).HDel(c.key, strconv.FormatInt(id, 10)).Err(); err != nil {
		return storeErr("remove", c.name, err)
	}
	return nil
}

func (c *redisCollection[T]) Get(ctx context.Context, id int64) (*T, error) {
	if err := c.life.check(ctx, "get", c.name); err != nil {
		return nil, err
	}
	raw, err := c.client.WithContext(ctx).HGet(c.key, strconv.FormatInt(id, 10)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("get", c.name, err)
	}
	var rec T
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, storeErr("get", c.name, err)
	}
	return &rec, nil
}

func (c *redisCollection[T]) All(ctx context.Context) ([]T, error) {
	if err := c.life.check(ctx, "getAll", c.name); err != nil {
		return nil, err
	}
	values, err := c.client.WithContext(ctx).HGetAll(c.key).Result()
	if err != nil {
		return nil, storeErr("getAll", c.name, err)
	}

	ids := make([]int64, 0, len(values))
	for field := range values {
		id, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, storeErr("getAll", c.name, fmt.Errorf("некорректный id %q: %w", field, err))
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := make([]T, 0, len(ids))
	for _, id := range ids {
		var rec T
		if err := json.Unmarshal([]byte(values[strconv.FormatInt(id, 10)]), &rec); err != nil {
			return nil, storeErr("getAll", c.name, err)
		}
		result = append(result, rec)
	}
	return result, nil
}
