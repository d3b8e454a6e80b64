package storage

import (
	"context"
	"sync"

	"github.com/letsssgooo/zoobot/internal/domain/models"
)

// MemoryStore реализует Store в памяти. Используется в тестах и при локальной
// разработке без базы данных.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[int64]*models.Profile
}

// NewMemoryStore создаёт новый MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[int64]*models.Profile),
	}
}

// GetOrCreate возвращает профиль, создавая его при первом обращении.
func (s *MemoryStore) GetOrCreate(ctx context.Context, externalID int64, name string) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if profile, ok := s.profiles[externalID]; ok {
		return profile.Clone(), nil
	}

	profile := models.NewProfile(externalID, name)
	s.profiles[externalID] = profile

	return profile.Clone(), nil
}

// Get возвращает профиль по внешнему идентификатору.
func (s *MemoryStore) Get(ctx context.Context, externalID int64) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[externalID]
	if !ok {
		return nil, ErrNotFound
	}

	return profile.Clone(), nil
}

// Save сохраняет прогресс существующего профиля.
func (s *MemoryStore) Save(ctx context.Context, profile *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[profile.ExternalID]; !ok {
		return ErrNotFound
	}

	s.profiles[profile.ExternalID] = profile.Clone()

	return nil
}
