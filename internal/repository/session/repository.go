package session

import (
	"context"
	"time"
)

type Session struct {
	Token     string
	OwnerID   string
	Email     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, session Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}
