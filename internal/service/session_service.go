package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lumengallery/internal/db"
	"gorm.io/gorm"
)

var ErrSessionNotFound = errors.New("session not found")

// DefaultSessionTTL is the lifetime of a session record from issuance.
const DefaultSessionTTL = 24 * time.Hour

// SessionService persists server-side session records keyed by an
// opaque token. The cookie transport is handled at the HTTP layer.
type SessionService struct {
	db  *gorm.DB
	ttl time.Duration
}

// NewSessionService creates a SessionService with the default TTL.
func NewSessionService(gdb *gorm.DB) *SessionService {
	return &SessionService{db: gdb, ttl: DefaultSessionTTL}
}

// TTL returns the configured session lifetime.
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// Create issues a new session record for the given user.
func (s *SessionService) Create(userID uint) (*db.Session, error) {
	session := db.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// Get resolves a token to its session record. Expired records are
// removed lazily and reported as not found.
func (s *SessionService) Get(token string) (*db.Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	var session db.Session
	if err := s.db.First(&session, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if time.Now().After(session.ExpiresAt) {
		if err := s.Destroy(token); err != nil {
			return nil, err
		}
		return nil, ErrSessionNotFound
	}

	return &session, nil
}

// Destroy removes a session record. Destroying an unknown token is not
// an error.
func (s *SessionService) Destroy(token string) error {
	if token == "" {
		return nil
	}
	return s.db.Delete(&db.Session{}, "token = ?", token).Error
}

// PurgeExpired removes every session past its expiry and returns the
// number of rows deleted.
func (s *SessionService) PurgeExpired() (int64, error) {
	result := s.db.Delete(&db.Session{}, "expires_at <= ?", time.Now())
	return result.RowsAffected, result.Error
}
