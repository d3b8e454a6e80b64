package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letsssgooo/zoobot/internal/domain/models"
)

func TestMemoryStore_GetOrCreate_Idempotent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first, err := store.GetOrCreate(ctx, 1, "ivan")
	require.NoError(t, err)
	assert.Equal(t, models.StatusNotStarted, first.Status)
	assert.Equal(t, 1, first.Question)
	assert.Equal(t, models.TotemUndetermined, first.Totem)

	first.Points = 7
	require.NoError(t, store.Save(ctx, first))

	// Повторный вызов возвращает существующий профиль без изменений,
	// даже с другим именем.
	second, err := store.GetOrCreate(ctx, 1, "other")
	require.NoError(t, err)
	assert.Equal(t, "ivan", second.Name)
	assert.Equal(t, 7, second.Points)
}

func TestMemoryStore_Get_NotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Save_NotFound(t *testing.T) {
	store := NewMemoryStore()

	err := store.Save(context.Background(), models.NewProfile(404, "ghost"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_SaveAndGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	profile, err := store.GetOrCreate(ctx, 1, "ivan")
	require.NoError(t, err)

	profile.Status = models.StatusCompleted
	profile.Question = 5
	profile.Points = 12
	profile.Totem = "лев"
	require.NoError(t, store.Save(ctx, profile))

	got, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)
	assert.Equal(t, 5, got.Question)
	assert.Equal(t, 12, got.Points)
	assert.Equal(t, "лев", got.Totem)
}

// TestMemoryStore_ReturnsCopies: изменение профиля после чтения не влияет
// на сохранённое состояние, пока Save не вызван явно.
func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	profile, err := store.GetOrCreate(ctx, 1, "ivan")
	require.NoError(t, err)

	profile.Points = 100

	got, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Points)
}
