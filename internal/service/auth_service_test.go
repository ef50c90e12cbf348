package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"

	"inquirykit/internal/model"
	"inquirykit/internal/util"
)

type memUserStore struct {
	users  map[string]*model.User
	nextID int
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[string]*model.User{}, nextID: 1}
}

func (m *memUserStore) CreateUser(ctx context.Context, u *model.User) error {
	u.ID = m.nextID
	m.nextID++
	m.users[u.Email] = u
	return nil
}

func (m *memUserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return u, nil
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newMemUserStore(), "test-secret")
	ctx := context.Background()

	u, err := svc.Register(ctx, "chair@example.org", "hunter22")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.ID == 0 {
		t.Error("expected an id to be assigned")
	}
	if u.PasswordHash == "hunter22" {
		t.Error("password stored in plaintext")
	}

	token, err := svc.Login(ctx, "chair@example.org", "hunter22")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	gotID, err := util.ParseJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if gotID != u.ID {
		t.Errorf("token carries user %d, want %d", gotID, u.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newMemUserStore(), "test-secret")
	ctx := context.Background()

	if _, err := svc.Register(ctx, "chair@example.org", "hunter22"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, err := svc.Register(ctx, "chair@example.org", "other-pass")
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("got %v, want ErrEmailExists", err)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	svc := NewAuthService(newMemUserStore(), "test-secret")
	ctx := context.Background()

	if _, err := svc.Register(ctx, "chair@example.org", "hunter22"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "chair@example.org", "not-it"},
		{"unknown email", "nobody@example.org", "hunter22"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.email, tt.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("got %v, want ErrInvalidCredentials", err)
			}
		})
	}
}
