package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStore keeps sessions as JSON documents in Redis so several server
// instances can share them. The in-flight marker is a separate key set with
// SET NX and its own TTL, so a crashed request cannot hold a session forever.
// The marker holds a per-acquire token so that a request whose marker already
// expired cannot clear the marker of the request that took over.
type RedisStore struct {
	client  *redis.Client
	ttl     time.Duration
	lockTTL time.Duration
	logger  *zap.Logger
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client, ttl, lockTTL time.Duration, logger *zap.Logger) *RedisStore {
	return &RedisStore{
		client:  client,
		ttl:     ttl,
		lockTTL: lockTTL,
		logger:  logger.Named("RedisSessionStore"),
	}
}

// releaseLock deletes KEYS[1] only while it still holds ARGV[1].
var releaseLock = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func stateKey(id string) string { return fmt.Sprintf("session:%s", id) }
func lockKey(id string) string  { return fmt.Sprintf("session:%s:lock", id) }

func (r *RedisStore) Create(ctx context.Context) (*State, error) {
	s := New(time.Now())
	if err := r.write(ctx, s); err != nil {
		return nil, err
	}
	r.logger.Debug("Session created", zap.String("session_id", s.ID))
	return s, nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (*State, error) {
	data, err := r.client.Get(ctx, stateKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session %s from redis: %w", id, err)
	}

	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return &s, nil
}

// Save overwrites an existing session. SET XX never recreates a session that
// expired in the meantime.
func (r *RedisStore) Save(ctx context.Context, s *State) error {
	stored := s.Clone()
	stored.UpdatedAt = time.Now()

	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", s.ID, err)
	}
	ok, err := r.client.SetXX(ctx, stateKey(s.ID), data, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to store session %s in redis: %w", s.ID, err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (r *RedisStore) Acquire(ctx context.Context, id string) (string, error) {
	exists, err := r.client.Exists(ctx, stateKey(id)).Result()
	if err != nil {
		return "", fmt.Errorf("failed to check session %s in redis: %w", id, err)
	}
	if exists == 0 {
		return "", ErrNotFound
	}

	token := uuid.NewString()
	ok, err := r.client.SetNX(ctx, lockKey(id), token, r.lockTTL).Result()
	if err != nil {
		return "", fmt.Errorf("failed to lock session %s: %w", id, err)
	}
	if !ok {
		return "", ErrBusy
	}
	return token, nil
}

func (r *RedisStore) Release(ctx context.Context, id, token string) error {
	if err := releaseLock.Run(ctx, r.client, []string{lockKey(id)}, token).Err(); err != nil {
		r.logger.Error("Failed to release session lock", zap.String("session_id", id), zap.Error(err))
		return fmt.Errorf("failed to unlock session %s: %w", id, err)
	}
	return nil
}

func (r *RedisStore) write(ctx context.Context, s *State) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", s.ID, err)
	}
	if err := r.client.Set(ctx, stateKey(s.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session %s in redis: %w", s.ID, err)
	}
	return nil
}
