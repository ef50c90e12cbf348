package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"inquirykit/internal/model"
	"inquirykit/internal/util"
)

var (
	// ErrEmailExists is returned by Register when the address is taken.
	ErrEmailExists = errors.New("email already exists")
	// ErrInvalidCredentials is returned by Login for a bad email or
	// password. Deliberately one error for both so login responses do not
	// reveal which addresses are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserStore is the account persistence AuthService needs.
type UserStore interface {
	CreateUser(ctx context.Context, u *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type AuthService struct {
	users     UserStore
	jwtSecret string
}

func NewAuthService(users UserStore, jwtSecret string) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: jwtSecret,
	}
}

// Register creates an account for a new consultant. The email must not be
// in use; the password is stored as a bcrypt hash.
func (s *AuthService) Register(ctx context.Context, email, password string) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.users.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Login verifies credentials and returns a signed session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if !util.CheckPassword(password, u.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return util.GenerateJWT(u.ID, s.jwtSecret)
}
