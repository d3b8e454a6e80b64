package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/letsssgooo/zoobot/internal/domain/models"
	"github.com/letsssgooo/zoobot/internal/storage"
)

// Store реализует storage.Store поверх PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore создаёт хранилище профилей по строке подключения dsn.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &Store{pool: pool}, nil
}

// Close освобождает пул соединений.
func (s *Store) Close() {
	s.pool.Close()
}

// GetOrCreate возвращает профиль, создавая запись при первом обращении.
// Вставка идемпотентна: повторный вызов с тем же external_id не меняет запись.
func (s *Store) GetOrCreate(ctx context.Context, externalID int64, name string) (*models.Profile, error) {
	insert := `
	INSERT INTO profiles (external_id, name, status, question, points, totem)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (external_id) DO NOTHING
	`

	fresh := models.NewProfile(externalID, name)

	_, err := s.pool.Exec(
		ctx, insert,
		fresh.ExternalID, fresh.Name, string(fresh.Status), fresh.Question, fresh.Points, fresh.Totem,
	)
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, externalID)
}

// Get возвращает профиль по внешнему идентификатору.
func (s *Store) Get(ctx context.Context, externalID int64) (*models.Profile, error) {
	query := `
	SELECT external_id, name, status, question, points, totem FROM profiles WHERE external_id = $1
	`

	profile := &models.Profile{}

	var status string

	err := s.pool.QueryRow(ctx, query, externalID).Scan(
		&profile.ExternalID, &profile.Name, &status, &profile.Question, &profile.Points, &profile.Totem,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	profile.Status = migrateStatus(status, profile.Question)

	return profile, nil
}

// Save сохраняет прогресс существующего профиля.
func (s *Store) Save(ctx context.Context, profile *models.Profile) error {
	query := `
	UPDATE profiles SET status = $1, question = $2, points = $3, totem = $4 WHERE external_id = $5
	`

	tag, err := s.pool.Exec(
		ctx, query,
		string(profile.Status), profile.Question, profile.Points, profile.Totem, profile.ExternalID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// migrateStatus переводит унаследованные текстовые статусы в закрытое
// перечисление. Ранние версии бота писали в эту колонку человекочитаемые
// строки; различить "не начато" и "в процессе" среди них можно только по
// номеру текущего вопроса.
func migrateStatus(status string, question int) models.Status {
	switch status {
	case string(models.StatusNotStarted), string(models.StatusInProgress), string(models.StatusCompleted):
		return models.Status(status)
	case "Пройдено":
		return models.StatusCompleted
	}

	if question > 1 {
		return models.StatusInProgress
	}

	return models.StatusNotStarted
}
