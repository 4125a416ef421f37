package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/himalayancrown/hotel-reservation/internal/model"
	"github.com/himalayancrown/hotel-reservation/internal/repository"
)

// AuthService handles registration, login, logout and the current-session
// pointer.  Login is lookup-by-email only: a password is accepted at
// registration for form compatibility but never stored or checked, so this
// is identity bookkeeping, not an authentication boundary.
type AuthService struct {
	users    *repository.UserRepo
	sessions *repository.SessionRepo

	// adminDomain is the house email domain whose addresses get the admin
	// role at registration, alongside any email containing "admin".  This
	// heuristic mirrors the marketing site's behavior and is a known weak
	// point, not a real authorization boundary.
	adminDomain string
}

func NewAuthService(users *repository.UserRepo, sessions *repository.SessionRepo, adminDomain string) *AuthService {
	return &AuthService{users: users, sessions: sessions, adminDomain: adminDomain}
}

// Register creates a user with a role derived from the email pattern.  The
// role is assigned once and never changed.  A duplicate email rejects with
// repository.ErrEmailExists and leaves the collection untouched.
func (s *AuthService) Register(ctx context.Context, name, email, _password string) (model.User, error) {
	email = repository.NormalizeEmail(email)
	u := model.User{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		Email:     email,
		Role:      s.roleFor(email),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.users.Append(ctx, u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// Login looks the user up by email only.  On success the process-wide
// current-session pointer is persisted to the store.
func (s *AuthService) Login(ctx context.Context, email string) (model.User, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return model.User{}, err
	}
	if err := s.sessions.Set(ctx, u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// Logout clears the persisted session pointer.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// CurrentUser returns the persisted session pointer, or
// repository.ErrUserNotFound when nobody is logged in.
func (s *AuthService) CurrentUser(ctx context.Context) (model.User, error) {
	return s.sessions.Current(ctx)
}

// Users lists every registered user (admin console).
func (s *AuthService) Users(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// UserByID resolves a user record by id.
func (s *AuthService) UserByID(ctx context.Context, id string) (model.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *AuthService) roleFor(email string) string {
	if strings.Contains(email, "admin") || strings.Contains(email, s.adminDomain) {
		return model.RoleAdmin
	}
	return model.RoleGuest
}
