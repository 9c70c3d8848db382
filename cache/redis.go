package cache

import (
	"time"

	"github.com/go-redis/redis"
	"github.com/hospice/hospital-locator-api/config"
	log "github.com/hospice/hospital-locator-api/pkg/logger"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

type RedisRepository struct {
	client *redis.Client
}

func NewRedisRepository(cfg config.RedisConfig) *RedisRepository {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       0,
	})

	return &RedisRepository{client: client}
}

func (repository *RedisRepository) SetKey(key string, value interface{}, ttl time.Duration) {
	status := repository.client.Set(key, value, ttl)
	if _, err := status.Result(); err != nil {
		log.Logger().Warn("redis set failed", zap.String("key", key), zap.Error(err))
	}
}

// GetBytes returns the raw value stored at key, or nil on a miss or error.
func (repository *RedisRepository) GetBytes(key string) []byte {
	data, err := repository.client.Get(key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Logger().Warn("redis get failed", zap.String("key", key), zap.Error(err))
		}
		return nil
	}

	return data
}

// Get decodes the JSON value stored at key into out and reports whether it was found.
func (repository *RedisRepository) Get(key string, out interface{}) bool {
	data := repository.GetBytes(key)
	if data == nil {
		return false
	}

	if err := jsoniter.Unmarshal(data, out); err != nil {
		log.Logger().Warn("redis value is not json", zap.String("key", key), zap.Error(err))
		return false
	}

	return true
}

func (repository *RedisRepository) Delete(key string) error {
	status := repository.client.Del(key)
	if status.Err() != nil {
		return status.Err()
	}

	return nil
}

func (repository *RedisRepository) Prune() error {
	resp := repository.client.FlushDB()
	return resp.Err()
}

func (repository *RedisRepository) Ping() error {
	return repository.client.Ping().Err()
}
