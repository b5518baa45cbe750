package scheduling

import (
	"context"
	"errors"
	"studynexus/internal/models"
	"studynexus/internal/providers"
	"studynexus/internal/scheduling/interfaces"
	"studynexus/internal/structures"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisKey = "studynexus:storage"

type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Close() error
}

// RedisStore keeps the snapshot under a single key.
type RedisStore struct {
	client     redisKV
	key        string
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewRedisStore(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Persistence.RedisAddr,
		Password: conf.Persistence.RedisPassword,
		DB:       conf.Persistence.RedisDB,
	})
	return newRedisStore(client, conf.Persistence.RedisKey, compressor, logger)
}

func newRedisStore(client redisKV, key string, compressor interfaces.CompressorInterface, logger providers.Logger) *RedisStore {
	if key == "" {
		key = defaultRedisKey
	}
	return &RedisStore{client: client, key: key, compressor: compressor, logger: logger}
}

func (r *RedisStore) Save(ctx context.Context, storage *models.Storage) error {
	data, err := encodeStorage(r.compressor, storage)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key, data, 0).Err()
}

func (r *RedisStore) Load(ctx context.Context) (*models.Storage, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeStorage(r.compressor, r.logger, data)
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
