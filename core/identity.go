package core

import "context"

// IdentityResolver maps a verified token subject onto the subject's current
// role. Every call is a fresh store read: a role revoked mid-session takes
// effect on the very next request.
type IdentityResolver struct {
	users UserStore
}

func NewIdentityResolver(users UserStore) *IdentityResolver {
	return &IdentityResolver{users: users}
}

// Resolve returns the subject's role at this point in time, or
// ErrUserNotFound when the subject has no user record.
func (r *IdentityResolver) Resolve(ctx context.Context, subject string) (Role, error) {
	user, err := r.users.GetUserByEmail(ctx, subject)
	if err != nil {
		return RoleUnset, err
	}
	return user.Role, nil
}
