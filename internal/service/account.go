package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Skotchmaster/catalog_admin/internal/events"
	"github.com/Skotchmaster/catalog_admin/internal/logging"
	"github.com/Skotchmaster/catalog_admin/internal/models"
	"github.com/Skotchmaster/catalog_admin/internal/repo"
)

type UserStore interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CountUsersByEmail(ctx context.Context, email string) (int64, error)
	CreateUser(ctx context.Context, u *models.User) error
}

type Credentials interface {
	HashPassword(password string) (string, error)
	CheckPassword(hash, password string) bool
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName *string
	LastName  *string
}

type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type AccountService struct {
	Repo   UserStore
	Hasher Credentials
	Events *events.Emitter
}

func (s *AccountService) Register(ctx context.Context, in RegisterInput) error {
	l := logging.FromContext(ctx).With("svc", "account.register")

	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return invalid("Email and password are required.")
	}

	// Advisory only; the unique index decides under concurrency.
	n, err := s.Repo.CountUsersByEmail(ctx, email)
	if err != nil {
		return fromStore(err, nil)
	}
	if n > 0 {
		return ErrConflict
	}

	pwHash, err := s.Hasher.HashPassword(in.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return invalid("Password must be at most 72 bytes.")
		}
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Email:     email,
		Password:  pwHash,
		FirstName: optional(in.FirstName),
		LastName:  optional(in.LastName),
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		return fromStore(err, nil)
	}

	s.Events.Emit(ctx, events.TopicUsers, "user_registered", user.ID, "")
	return nil
}

// Login reports ErrUnauthenticated for an unknown email and for a wrong
// password alike.
func (s *AccountService) Login(ctx context.Context, email, password string) (*UserInfo, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrUnauthenticated
	}

	user, err := s.Repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fromStore(err, nil)
	}

	if !s.Hasher.CheckPassword(user.Password, password) {
		return nil, ErrUnauthenticated
	}
	return &UserInfo{ID: user.ID, Email: user.Email}, nil
}
