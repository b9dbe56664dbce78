package identity

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"storefront/internal/domain"
	sessionrepo "storefront/internal/repository/session"
)

type sessionRepo interface {
	Create(ctx context.Context, session sessionrepo.Session) error
	Get(ctx context.Context, token string) (*sessionrepo.Session, error)
	Delete(ctx context.Context, token string) error
}

// Service issues and resolves bearer session tokens that bridge an
// external identity provider to request-scoped identities.
type Service struct {
	sessions sessionRepo
	ttl      time.Duration
	logger   *log.Logger
}

func New(sessions sessionRepo, ttl time.Duration, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{sessions: sessions, ttl: ttl, logger: logger}
}

func (s *Service) Issue(ctx context.Context, userID, email string) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}
	expiresAt := time.Now().Add(s.ttl)
	for i := 0; i < 5; i++ {
		token, err := randomToken()
		if err != nil {
			return "", err
		}
		err = s.sessions.Create(ctx, sessionrepo.Session{
			Token:     token,
			OwnerID:   userID,
			Email:     email,
			ExpiresAt: expiresAt,
		})
		if err == nil {
			s.logger.Printf("session issued: user=%s", userID)
			return token, nil
		}
		if errors.Is(err, domain.ErrAlreadyExists) {
			continue
		}
		return "", err
	}
	return "", errors.New("token collision")
}

// Resolve maps a bearer token to the identity it was issued for.
// Unknown and expired tokens yield domain.ErrUnauthenticated; expired
// sessions are removed on sight.
func (s *Service) Resolve(ctx context.Context, token string) (domain.Identity, error) {
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Identity{}, domain.ErrUnauthenticated
		}
		return domain.Identity{}, err
	}
	if time.Now().After(session.ExpiresAt) {
		_ = s.sessions.Delete(ctx, token)
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return domain.Identity{UserID: session.OwnerID, Email: session.Email}, nil
}

func (s *Service) Revoke(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
