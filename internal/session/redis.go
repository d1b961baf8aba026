package session

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:%s"

// RedisStore keeps sessions in Redis so they survive restarts and are
// shared across instances.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore returns a Store backed by the given Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func redisKey(token string) string {
	return fmt.Sprintf(redisKeyPrefix, token)
}

func (s *RedisStore) Set(ctx context.Context, token string, userID uint, ttl time.Duration) error {
	return s.client.Set(ctx, redisKey(token), strconv.FormatUint(uint64(userID), 10), ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, token string) (uint, bool, error) {
	val, err := s.client.Get(ctx, redisKey(token)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	userID, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, false, err
	}
	return uint(userID), true, nil
}

func (s *RedisStore) Del(ctx context.Context, token string) error {
	return s.client.Del(ctx, redisKey(token)).Err()
}

// NewRedisClient connects to Redis at addr (host:port or redis:// URL).
// It returns nil when the connection fails; the caller falls back to the
// in-memory store.
func NewRedisClient(addr string) *redis.Client {
	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			log.Printf("Redis connection warning: invalid REDIS_URL %q: %v (using in-memory sessions)", addr, err)
			return nil
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection warning: %v (using in-memory sessions)", err)
		return nil
	}
	log.Println("Redis connected successfully")
	return client
}
