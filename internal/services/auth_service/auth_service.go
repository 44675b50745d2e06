package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"milesalone/internal/config"
	"milesalone/internal/domain/models"
	"milesalone/internal/lib/logger/sl"
	"milesalone/internal/repository"
	"milesalone/internal/storage"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService gates the admin surface. There is a single admin identity
// taken from config; sessions are opaque tokens stored server-side with
// a TTL.
type AuthService struct {
	log        *slog.Logger
	sessions   repository.SessionRepository
	username   string
	passHash   []byte
	sessionTTL time.Duration
}

func NewAuthService(log *slog.Logger, sessions repository.SessionRepository, cfg config.AdminConfig, sessionTTL time.Duration) (*AuthService, error) {
	const op = "auth_service.NewAuthService"

	hash := []byte(cfg.PasswordHash)
	if len(hash) == 0 {
		generated, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		hash = generated
	}

	return &AuthService{
		log:        log,
		sessions:   sessions,
		username:   cfg.Username,
		passHash:   hash,
		sessionTTL: sessionTTL,
	}, nil
}

// Login checks the credentials and mints a session token on success.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	const op = "auth_service.Login"
	log := s.log.With(slog.String("op", op), slog.String("username", username))

	log.Info("attempting admin login")

	if subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) != 1 {
		log.Warn("unknown admin username")
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(s.passHash, []byte(password)); err != nil {
		log.Warn("password mismatch")
		return "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := s.sessions.SaveSession(ctx, token, s.sessionTTL); err != nil {
		log.Error("failed to save session", sl.Err(err))
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	log.Info("admin logged in")
	return token, nil
}

// ValidateSession reports whether the token still has a live server-side
// record.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (bool, error) {
	const op = "auth_service.ValidateSession"

	if token == "" {
		return false, nil
	}

	ok, err := s.sessions.SessionExists(ctx, token)
	if err != nil {
		s.log.With(slog.String("op", op)).Error("failed to check session", sl.Err(err))
		return false, fmt.Errorf("failed to check session: %w", err)
	}

	return ok, nil
}

// Logout drops the server-side session. A token that already expired is
// not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	const op = "auth_service.Logout"
	log := s.log.With(slog.String("op", op))

	log.Info("logging out admin")

	if err := s.sessions.DeleteSession(ctx, token); err != nil {
		if errors.Is(err, storage.ErrSessionExpired) {
			return nil
		}
		log.Error("failed to delete session", sl.Err(err))
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// Profile is the fixed admin identity returned by /api/auth/user.
func (s *AuthService) Profile() models.AdminProfile {
	return models.AdminProfile{
		ID:       "admin",
		Name:     "Administrator",
		Username: s.username,
	}
}
