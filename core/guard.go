package core

import (
	"context"
	"errors"
)

// Guard gates every state-changing operation: token verification first,
// then an optional role check against the identity resolved right now.
// Ownership checks are not the guard's job; they live in the workflow
// services because they depend on the specific record being mutated.
type Guard struct {
	tokens   *TokenService
	identity *IdentityResolver
}

func NewGuard(tokens *TokenService, identity *IdentityResolver) *Guard {
	return &Guard{tokens: tokens, identity: identity}
}

// Authenticate verifies the raw token and returns the subject. Any failure
// means the pipeline halts before a handler runs.
func (g *Guard) Authenticate(token string) (string, error) {
	return g.tokens.Verify(token)
}

// Require checks that the subject's current role equals the required one.
// A missing user record is the same failure as a role mismatch: the caller
// learns only "unauthorized".
func (g *Guard) Require(ctx context.Context, subject string, role Role) error {
	resolved, err := g.identity.Resolve(ctx, subject)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrForbiddenRole
		}
		return err
	}
	if resolved != role {
		return ErrForbiddenRole
	}
	return nil
}
