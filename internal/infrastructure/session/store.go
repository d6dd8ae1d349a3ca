// Package session keeps login sessions in Redis. A session is a uuid id
// mapped to the JSON-encoded admin identity with a fixed TTL.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"folio/internal/domain/dto"
)

type Config struct {
	URI        string
	TTLSeconds int64 `yaml:"ttl_in_sec"`
}

const keyPrefix = "session:"

type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStore(cfg *Config) (*Store, error) {
	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Store{
		redis: redis.NewClient(opt),
		ttl:   ttl,
	}, nil
}

func (s *Store) Create(ctx context.Context, user dto.User) (string, error) {
	payload, err := json.Marshal(user)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	if err := s.redis.Set(ctx, keyPrefix+id, payload, s.ttl).Err(); err != nil {
		return "", err
	}

	return id, nil
}

// Get returns (nil, nil) for unknown or expired sessions.
func (s *Store) Get(ctx context.Context, id string) (*dto.User, error) {
	payload, err := s.redis.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, err
	}

	var user dto.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *Store) Destroy(ctx context.Context, id string) error {
	return s.redis.Del(ctx, keyPrefix+id).Err()
}

func (s *Store) Close() error {
	return s.redis.Close()
}
