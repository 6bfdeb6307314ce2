package repository

import (
	"context"
	"errors"
	"fmt"

	"riget-zoo/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SettingRepository interface {
	// Get returns the stored value, or def when the key is absent.
	Get(ctx context.Context, key, def string) (string, error)
	// Set upserts the key. Overwrites in place; no history is kept.
	Set(ctx context.Context, key, value string) error
}

type settingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSettingRepository(db database.PgxIface, log *zap.Logger) SettingRepository {
	return &settingRepository{
		db:  db,
		log: log.With(zap.String("repository", "setting")),
	}
}

func (r *settingRepository) Get(ctx context.Context, key, def string) (string, error) {
	query := `SELECT value FROM settings WHERE key = $1`

	var value string
	err := r.db.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		r.log.Error("Failed to get setting",
			zap.Error(err),
			zap.String("key", key),
		)
		return def, fmt.Errorf("get setting %s: %w", key, err)
	}

	return value, nil
}

func (r *settingRepository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`

	_, err := r.db.Exec(ctx, query, key, value)
	if err != nil {
		r.log.Error("Failed to set setting",
			zap.Error(err),
			zap.String("key", key),
		)
		return fmt.Errorf("set setting %s: %w", key, err)
	}

	return nil
}
