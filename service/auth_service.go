package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"mediride/config"
	"mediride/pkg/logger"
	"mediride/pkg/models"
	"mediride/storage"
)

// ErrInvalidCredentials is returned by Login when email or password is
// empty. The session user is left unchanged.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context)
}

type authService struct {
	stg storage.ISessionStorage
	cfg config.Config
	log logger.ILogger
}

func NewAuthService(stg storage.IStorage, cfg config.Config, log logger.ILogger) AuthService {
	return &authService{
		stg: stg.Session(),
		cfg: cfg,
		log: log,
	}
}

// Login validates the credentials against the mock policy (both fields
// non-empty) and installs a fabricated profile as the session user. The
// busy flag is held for the simulated round-trip.
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	s.stg.SetBusy(ctx, true)
	defer s.stg.SetBusy(ctx, false)

	time.Sleep(s.cfg.LoginDelay)

	if email == "" || password == "" {
		s.log.Warning("login rejected", logger.String("reason", "empty email or password"))
		return nil, ErrInvalidCredentials
	}

	user := &models.User{
		ID:         "user-" + uuid.NewString(),
		Name:       "John Doe",
		Email:      email,
		Phone:      "+1 (555) 123-4567",
		IsLoggedIn: true,
	}
	s.stg.SetUser(ctx, user)

	s.log.Info("user logged in", logger.String("user_id", user.ID), logger.String("email", email))
	return user, nil
}

// Logout clears the session user. It has no failure mode.
func (s *authService) Logout(ctx context.Context) {
	s.stg.ClearUser(ctx)
	s.log.Info("user logged out")
}
