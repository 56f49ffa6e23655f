package core

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/estately/estately/pkg/crypto"
)

// UserService covers first-login bootstrap, credential login, and the
// admin-side user operations including the listing ownership cascade.
type UserService struct {
	users      UserStore
	properties PropertyStore
	hasher     crypto.PasswordHandler
}

func NewUserService(users UserStore, properties PropertyStore, hasher crypto.PasswordHandler) *UserService {
	return &UserService{users: users, properties: properties, hasher: hasher}
}

// UpsertInput is the first-login payload. Password is optional; social
// logins carry none.
type UpsertInput struct {
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	Password *string `json:"password,omitempty"`
}

// Upsert registers the user on first login. The write is a single
// conditional insert: when the email already exists the stored record comes
// back unchanged, whatever the new payload said.
func (s *UserService) Upsert(ctx context.Context, input UpsertInput) (*User, error) {
	if input.Email == "" {
		return nil, ErrEmailRequired
	}

	user := &User{
		Email: input.Email,
		Name:  input.Name,
		Role:  RoleUnset,
	}

	if input.Password != nil && *input.Password != "" {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = &hash
	}

	stored, _, err := s.users.UpsertUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	return stored, nil
}

// Authenticate validates a login exchange before a token is issued. When
// the stored record carries a password hash the supplied password must
// verify against it; accounts without one authenticate on subject alone.
func (s *UserService) Authenticate(ctx context.Context, email string, password *string) (*User, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if user.PasswordHash != nil {
		if password == nil {
			return nil, ErrInvalidCredentials
		}
		valid, err := s.hasher.Verify(*password, *user.PasswordHash)
		if err != nil {
			return nil, fmt.Errorf("failed to verify password: %w", err)
		}
		if !valid {
			return nil, ErrInvalidCredentials
		}
	}

	return user, nil
}

// GetRole exposes a user's role for the first-login bootstrap, before any
// token exists.
func (s *UserService) GetRole(ctx context.Context, email string) (Role, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return RoleUnset, err
	}
	return user.Role, nil
}

// List returns all user records. Admin-gated at the HTTP surface.
func (s *UserService) List(ctx context.Context) ([]*User, error) {
	return s.users.ListUsers(ctx)
}

// Delete removes a user record. Admin-gated at the HTTP surface.
func (s *UserService) Delete(ctx context.Context, email string) error {
	return s.users.DeleteUser(ctx, email)
}

// ChangeRole applies an admin role change and cascades the same field value
// onto every property the target owns, so demoting an agent flags their
// listings in the same stroke.
//
// The two writes are not transactional. When the cascade write fails the
// role change has already landed; cascadePending reports that state so the
// handler can surface it instead of hiding it. Recovery is re-issuing the
// change, which is idempotent; there is no retry queue.
func (s *UserService) ChangeRole(ctx context.Context, email string, role Role) (cascadePending bool, err error) {
	if err := s.users.SetUserRole(ctx, email, role); err != nil {
		return false, fmt.Errorf("failed to set role: %w", err)
	}

	if _, err := s.properties.SetStatusByAgent(ctx, email, string(role)); err != nil {
		log.Printf("role cascade pending: user %s updated to %q but listings not flagged: %v", email, role, err)
		return true, fmt.Errorf("failed to cascade role onto listings: %w", err)
	}
	return false, nil
}
