package entity

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	Token     uuid.UUID `db:"token"`
	UserID    int64     `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}
