package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"purple-insta/internal/domain/entities"
)

// RedisService caches representative lookups per zip code. It is optional;
// a nil *RedisService is a valid "no cache" configuration and every method
// on it degrades to a miss.
type RedisService struct {
	client *redis.Client
}

func NewRedisService(addr, password string, db int) *RedisService {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisService{client: client}
}

func repKey(zipCode string) string {
	return "reps:" + zipCode
}

func (s *RedisService) GetRepresentatives(ctx context.Context, zipCode string) ([]entities.Representative, error) {
	if s == nil {
		return nil, nil
	}

	data, err := s.client.Get(ctx, repKey(zipCode)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis error: %w", err)
	}

	var reps []entities.Representative
	if err := json.Unmarshal([]byte(data), &reps); err != nil {
		return nil, err
	}
	return reps, nil
}

func (s *RedisService) SetRepresentatives(ctx context.Context, zipCode string, reps []entities.Representative, ttl time.Duration) error {
	if s == nil {
		return nil
	}

	data, err := json.Marshal(reps)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, repKey(zipCode), data, ttl).Err()
}

func (s *RedisService) Close() error {
	if s == nil {
		return nil
	}
	return s.client.Close()
}
