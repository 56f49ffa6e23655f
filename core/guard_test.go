package core

import (
	"context"
	"errors"
	"testing"
)

func newTestGuard(store *fakeStore) *Guard {
	tokens := NewTokenService([]byte(testSecret))
	return NewGuard(tokens, NewIdentityResolver(store))
}

func TestGuard_RequireAdmin(t *testing.T) {
	tests := []struct {
		name    string
		role    Role
		noUser  bool
		wantErr error
	}{
		{name: "admin admitted", role: RoleAdmin, wantErr: nil},
		{name: "agent denied", role: RoleAgent, wantErr: ErrForbiddenRole},
		{name: "plain user denied", role: RoleUser, wantErr: ErrForbiddenRole},
		{name: "unset role denied", role: RoleUnset, wantErr: ErrForbiddenRole},
		{name: "unknown subject denied", noUser: true, wantErr: ErrForbiddenRole},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			store := newFakeStore()
			if !test.noUser {
				store.users["caller@example.com"] = &User{Email: "caller@example.com", Role: test.role}
			}
			guard := newTestGuard(store)

			err := guard.Require(context.Background(), "caller@example.com", RoleAdmin)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("Require() error = %v, want %v", err, test.wantErr)
			}
		})
	}
}

// A role revoked mid-session must take effect on the very next check: the
// guard re-reads the store every time and never caches.
func TestGuard_RevocationTakesEffectImmediately(t *testing.T) {
	store := newFakeStore()
	store.users["agent@example.com"] = &User{Email: "agent@example.com", Role: RoleAgent}
	guard := newTestGuard(store)
	ctx := context.Background()

	if err := guard.Require(ctx, "agent@example.com", RoleAgent); err != nil {
		t.Fatalf("Require() before revocation error = %v", err)
	}

	store.users["agent@example.com"].Role = RoleUser

	if err := guard.Require(ctx, "agent@example.com", RoleAgent); !errors.Is(err, ErrForbiddenRole) {
		t.Fatalf("Require() after revocation error = %v, want ErrForbiddenRole", err)
	}
}

func TestGuard_AuthenticateRejectsBadToken(t *testing.T) {
	guard := newTestGuard(newFakeStore())

	if _, err := guard.Authenticate(""); err == nil {
		t.Fatal("Authenticate(\"\") succeeded, want failure")
	}
	if _, err := guard.Authenticate("garbage"); err == nil {
		t.Fatal("Authenticate(garbage) succeeded, want failure")
	}
}
