// Package sessionstore implements session storage in memory and in Redis.
package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/maze-ball/game"
	"github.com/beka-birhanu/maze-ball/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyFmt = "%s:session:%s"
	lockSuffix    = ":lock"
	unlockTimeout = time.Second
)

var (
	ErrInvalidTTL    = errors.New("session ttl must be positive")
	ErrInvalidPrefix = errors.New("session key prefix is empty")
)

var _ i.SessionStore = &RedisSessionStore{}

// RedisSessionStore keeps sessions as JSON values in Redis with TTL support.
type RedisSessionStore struct {
	client *redis.Client
	locker *redsync.Redsync
	prefix string
	ttl    time.Duration
}

// NewRedisSessionStore initializes a RedisSessionStore with the provided Redis client, key prefix and TTL.
func NewRedisSessionStore(client *redis.Client, prefix string, ttl time.Duration) (*RedisSessionStore, error) {
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	if prefix == "" {
		return nil, ErrInvalidPrefix
	}

	store := &RedisSessionStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
	pool := goredis.NewPool(client)
	store.locker = redsync.New(pool)
	return store, nil
}

// Save writes the session and resets its expiration.
func (r *RedisSessionStore) Save(ctx context.Context, s *game.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding session %s: %w", s.ID, err)
	}
	return r.client.Set(ctx, r.key(s.ID), data, r.ttl).Err()
}

// ByID reads and decodes a session.
func (r *RedisSessionStore) ByID(ctx context.Context, id uuid.UUID) (*game.Session, error) {
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, i.ErrSessionNotFound
		}
		return nil, err
	}

	var s game.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding session %s: %w", id, err)
	}
	return &s, nil
}

// Update holds a per-session lock while it reads, applies fn and writes back.
func (r *RedisSessionStore) Update(ctx context.Context, id uuid.UUID, fn func(*game.Session) error) (*game.Session, error) {
	mutex := r.locker.NewMutex(r.key(id) + lockSuffix)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("locking session %s: %w", id, err)
	}
	defer func() {
		// The request context may already be done; release the lock regardless.
		unlockCtx, cancel := context.WithTimeout(context.Background(), unlockTimeout)
		defer cancel()
		_, _ = mutex.UnlockContext(unlockCtx)
	}()

	s, err := r.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(s); err != nil {
		return nil, err
	}
	if err := r.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Delete removes a session.
func (r *RedisSessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.Del(ctx, r.key(id)).Err()
}

func (r *RedisSessionStore) key(id uuid.UUID) string {
	return fmt.Sprintf(sessionKeyFmt, r.prefix, id)
}
