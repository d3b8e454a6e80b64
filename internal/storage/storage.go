package storage

import (
	"context"
	"errors"

	"github.com/letsssgooo/zoobot/internal/domain/models"
)

// ErrNotFound возвращается, когда профиль с указанным идентификатором не существует.
var ErrNotFound = errors.New("profile not found")

// Store определяет интерфейс для хранения профилей пользователей.
type Store interface {
	// GetOrCreate возвращает профиль по внешнему идентификатору, создавая его
	// при первом обращении. Повторный вызов с тем же идентификатором
	// возвращает уже существующий профиль без изменений.
	GetOrCreate(ctx context.Context, externalID int64, name string) (*models.Profile, error)

	// Get возвращает профиль по внешнему идентификатору.
	Get(ctx context.Context, externalID int64) (*models.Profile, error)

	// Save сохраняет прогресс существующего профиля.
	Save(ctx context.Context, profile *models.Profile) error
}
