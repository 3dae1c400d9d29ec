package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const sessionLockTTL = 15 * time.Second

// RedisStore persists sessions in Redis so conversations survive process
// restarts and can be served by any replica.
type RedisStore struct {
	redis  *redis.Client
	ttl    time.Duration
	tracer trace.Tracer
}

func NewRedisStore(client *redis.Client, ttl time.Duration, tracer trace.Tracer) *RedisStore {
	if client == nil {
		panic("chat: redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if tracer == nil {
		tracer = otel.Tracer("leadchat.internal.chat.store")
	}
	return &RedisStore{
		redis:  client,
		ttl:    ttl,
		tracer: tracer,
	}
}

func (r *RedisStore) Create(ctx context.Context, s *Session) error {
	return r.Save(ctx, s)
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	ctx, span := r.tracer.Start(ctx, "chat.load_session")
	defer span.End()

	data, err := r.redis.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("chat: failed to load session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("chat: failed to decode session: %w", err)
	}
	return &s, nil
}

func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	ctx, span := r.tracer.Start(ctx, "chat.save_session")
	defer span.End()

	data, err := json.Marshal(s)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("chat: failed to marshal session: %w", err)
	}
	if err := r.redis.Set(ctx, sessionKey(s.ID), data, r.ttl).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("chat: failed to persist session: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	ctx, span := r.tracer.Start(ctx, "chat.delete_session")
	defer span.End()

	if err := r.redis.Del(ctx, sessionKey(id), sessionLockKey(id)).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("chat: failed to delete session: %w", err)
	}
	return nil
}

// TryLock takes the per-session busy lock. The TTL guards against a crashed
// worker leaving a session locked forever.
func (r *RedisStore) TryLock(ctx context.Context, id string) (bool, error) {
	ok, err := r.redis.SetNX(ctx, sessionLockKey(id), "1", sessionLockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("chat: failed to lock session: %w", err)
	}
	return ok, nil
}

func (r *RedisStore) Unlock(ctx context.Context, id string) error {
	if err := r.redis.Del(ctx, sessionLockKey(id)).Err(); err != nil {
		return fmt.Errorf("chat: failed to unlock session: %w", err)
	}
	return nil
}

func sessionKey(id string) string {
	return fmt.Sprintf("chat:session:%s", id)
}

func sessionLockKey(id string) string {
	return fmt.Sprintf("chat:session_lock:%s", id)
}
