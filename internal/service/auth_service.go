package service

import (
	"errors"
	"strings"

	"github.com/lumengallery/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("not authenticated")
)

// AuthService verifies credentials and manages the session lifecycle.
type AuthService struct {
	db       *gorm.DB
	sessions *SessionService
}

// NewAuthService creates an AuthService backed by the given session store.
func NewAuthService(gdb *gorm.DB, sessions *SessionService) *AuthService {
	return &AuthService{db: gdb, sessions: sessions}
}

// Login verifies the credentials and establishes a fresh session.
// A missing user and a wrong password are indistinguishable to the
// caller; the hash comparison is constant-time via bcrypt.
func (s *AuthService) Login(username, password string) (*db.User, *db.Session, error) {
	var user db.User
	if err := s.db.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	session, err := s.sessions.Create(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return &user, session, nil
}

// CurrentUser resolves a session token to its user record.
func (s *AuthService) CurrentUser(token string) (*db.User, error) {
	session, err := s.sessions.Get(token)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	var user db.User
	if err := s.db.First(&user, session.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return &user, nil
}

// Logout invalidates the session record. Idempotent.
func (s *AuthService) Logout(token string) error {
	return s.sessions.Destroy(token)
}
