package pgx

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/estately/estately/core"
)

// UpsertUser is a single conditional write: ON CONFLICT DO NOTHING leaves
// an existing record untouched, then the stored row is read back so the
// caller always sees what persistence holds.
func (a *Adapter) UpsertUser(ctx context.Context, user *core.User) (*core.User, bool, error) {
	q := `INSERT INTO public.users (email, name, role, password_hash)
	      VALUES ($1, $2, $3, $4)
	      ON CONFLICT (email) DO NOTHING`

	tag, err := a.pool.Exec(ctx, q, user.Email, user.Name, string(user.Role), user.PasswordHash)
	if err != nil {
		return nil, false, err
	}

	stored, err := a.GetUserByEmail(ctx, user.Email)
	if err != nil {
		return nil, false, err
	}
	return stored, tag.RowsAffected() == 1, nil
}

func (a *Adapter) GetUserByEmail(ctx context.Context, email string) (*core.User, error) {
	q := `SELECT email, name, role, password_hash, created_at FROM public.users WHERE email = $1`

	user := &core.User{}
	var role string
	err := a.pool.QueryRow(ctx, q, email).Scan(&user.Email, &user.Name, &role, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrUserNotFound
		}
		return nil, err
	}
	user.Role = core.Role(role)
	return user, nil
}

func (a *Adapter) ListUsers(ctx context.Context) ([]*core.User, error) {
	q := `SELECT email, name, role, password_hash, created_at FROM public.users ORDER BY created_at`

	rows, err := a.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*core.User
	for rows.Next() {
		user := &core.User{}
		var role string
		if err := rows.Scan(&user.Email, &user.Name, &role, &user.PasswordHash, &user.CreatedAt); err != nil {
			return nil, err
		}
		user.Role = core.Role(role)
		users = append(users, user)
	}
	return users, rows.Err()
}

func (a *Adapter) SetUserRole(ctx context.Context, email string, role core.Role) error {
	tag, err := a.pool.Exec(ctx, `UPDATE public.users SET role = $1 WHERE email = $2`, string(role), email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrUserNotFound
	}
	return nil
}

func (a *Adapter) DeleteUser(ctx context.Context, email string) error {
	tag, err := a.pool.Exec(ctx, `DELETE FROM public.users WHERE email = $1`, email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrUserNotFound
	}
	return nil
}
