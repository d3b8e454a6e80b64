package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/letsssgooo/zoobot/internal/domain/models"
	"github.com/letsssgooo/zoobot/internal/storage"
)

// Store реализует storage.Store поверх Redis. Профиль хранится как JSON
// по ключу profile:<external_id>, без TTL: прогресс пользователя не истекает.
type Store struct {
	rdb *redis.Client
}

// NewStore создаёт хранилище профилей поверх Redis.
func NewStore(addr, password string, db int) *Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &Store{rdb: rdb}
}

// Ping проверяет соединение с Redis.
func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// Close закрывает соединение с Redis.
func (s *Store) Close() error {
	return s.rdb.Close()
}

func profileKey(externalID int64) string {
	return fmt.Sprintf("profile:%d", externalID)
}

// GetOrCreate возвращает профиль, создавая запись при первом обращении.
// SetNX гарантирует, что повторный вызов не перезапишет существующий прогресс.
func (s *Store) GetOrCreate(ctx context.Context, externalID int64, name string) (*models.Profile, error) {
	fresh := models.NewProfile(externalID, name)

	data, err := json.Marshal(fresh)
	if err != nil {
		return nil, err
	}

	if err = s.rdb.SetNX(ctx, profileKey(externalID), data, 0).Err(); err != nil {
		return nil, err
	}

	return s.Get(ctx, externalID)
}

// Get возвращает профиль по внешнему идентификатору.
func (s *Store) Get(ctx context.Context, externalID int64) (*models.Profile, error) {
	rawVal, err := s.rdb.Get(ctx, profileKey(externalID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, storage.ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	profile := &models.Profile{}
	if err = json.Unmarshal(rawVal, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// Save сохраняет прогресс существующего профиля.
func (s *Store) Save(ctx context.Context, profile *models.Profile) error {
	exists, err := s.rdb.Exists(ctx, profileKey(profile.ExternalID)).Result()
	if err != nil {
		return err
	}

	if exists == 0 {
		return storage.ErrNotFound
	}

	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	return s.rdb.Set(ctx, profileKey(profile.ExternalID), data, 0).Err()
}
