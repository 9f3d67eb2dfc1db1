package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"credcheck/types"
)

const (
	entryKeyPrefix = "history:entry:"
	ownerKeyPrefix = "history:user:"
)

// RedisConfig configures the Redis connection backing the store.
type RedisConfig struct {
	Addr     string // e.g. localhost:6379
	Password string
	DB       int
}

// RedisStore keeps each entry as a JSON value and maintains a per-owner
// sorted set scored by creation time for newest-first listing.
type RedisStore struct {
	client *redis.Client
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore connects to Redis and verifies connectivity.
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	return &RedisStore{client: client}, nil
}

// Close closes the underlying Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Record assigns the entry's ID and CreatedAt and writes both the entry
// value and its owner-index member in one pipeline.
func (s *RedisStore) Record(ctx context.Context, entry types.HistoryEntry) (types.HistoryEntry, error) {
	if entry.OwnerID == "" {
		return types.HistoryEntry{}, fmt.Errorf("record: missing owner id")
	}

	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now().UTC()

	raw, err := json.Marshal(entry)
	if err != nil {
		return types.HistoryEntry{}, fmt.Errorf("marshal entry: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, entryKey(entry.ID), raw, 0)
	pipe.ZAdd(ctx, ownerKey(entry.OwnerID), redis.Z{
		Score:  float64(entry.CreatedAt.UnixNano()),
		Member: entry.ID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return types.HistoryEntry{}, fmt.Errorf("persist entry: %w", err)
	}

	return entry, nil
}

// List walks the owner index newest-first and loads each entry. Index
// members whose entry value is gone are skipped rather than failing the
// whole listing.
func (s *RedisStore) List(ctx context.Context, ownerID string) ([]types.HistoryEntry, error) {
	ids, err := s.client.ZRevRange(ctx, ownerKey(ownerID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list owner index: %w", err)
	}
	if len(ids) == 0 {
		return []types.HistoryEntry{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = entryKey(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}

	entries := make([]types.HistoryEntry, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var entry types.HistoryEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, fmt.Errorf("unmarshal entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Delete removes the entry only when it exists and OwnerID matches.
// A missing entry and a foreign-owned entry both report ErrNotFound.
func (s *RedisStore) Delete(ctx context.Context, ownerID, entryID string) error {
	raw, err := s.client.Get(ctx, entryKey(entryID)).Result()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("load entry: %w", err)
	}

	var entry types.HistoryEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return fmt.Errorf("unmarshal entry: %w", err)
	}
	if entry.OwnerID != ownerID {
		return ErrNotFound
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, entryKey(entryID))
	pipe.ZRem(ctx, ownerKey(ownerID), entryID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	return nil
}

func entryKey(id string) string {
	return entryKeyPrefix + id
}

func ownerKey(ownerID string) string {
	return ownerKeyPrefix + ownerID
}
