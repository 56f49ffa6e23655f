package pgx

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/estately/estately/core"
)

const propertyColumns = `id, title, location, image, description, price_min, price_max,
	agent_email, agent_name, verified, advertised, status, created_at, updated_at`

func scanProperty(row pgx.Row) (*core.Property, error) {
	p := &core.Property{}
	err := row.Scan(&p.ID, &p.Title, &p.Location, &p.Image, &p.Description,
		&p.PriceMin, &p.PriceMax, &p.AgentEmail, &p.AgentName,
		&p.Verified, &p.Advertised, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (a *Adapter) InsertProperty(ctx context.Context, p *core.Property) error {
	q := `INSERT INTO public.properties
	      (id, title, location, image, description, price_min, price_max, agent_email, agent_name)
	      VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	      RETURNING created_at, updated_at`
	return a.pool.QueryRow(ctx, q, p.ID, p.Title, p.Location, p.Image, p.Description,
		p.PriceMin, p.PriceMax, p.AgentEmail, p.AgentName).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (a *Adapter) GetProperty(ctx context.Context, id string) (*core.Property, error) {
	q := `SELECT ` + propertyColumns + ` FROM public.properties WHERE id = $1`
	p, err := scanProperty(a.pool.QueryRow(ctx, q, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrPropertyNotFound
		}
		return nil, err
	}
	return p, nil
}

func (a *Adapter) listProperties(ctx context.Context, q string, args ...any) ([]*core.Property, error) {
	rows, err := a.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []*core.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

func (a *Adapter) ListProperties(ctx context.Context) ([]*core.Property, error) {
	q := `SELECT ` + propertyColumns + ` FROM public.properties ORDER BY created_at DESC`
	return a.listProperties(ctx, q)
}

func (a *Adapter) ListPropertiesByAgent(ctx context.Context, agentEmail string) ([]*core.Property, error) {
	q := `SELECT ` + propertyColumns + ` FROM public.properties WHERE agent_email = $1 ORDER BY created_at DESC`
	return a.listProperties(ctx, q, agentEmail)
}

func (a *Adapter) UpdateProperty(ctx context.Context, p *core.Property) error {
	q := `UPDATE public.properties
	      SET title = $1, location = $2, image = $3, description = $4,
	          price_min = $5, price_max = $6, updated_at = now()
	      WHERE id = $7
	      RETURNING updated_at`
	err := a.pool.QueryRow(ctx, q, p.Title, p.Location, p.Image, p.Description,
		p.PriceMin, p.PriceMax, p.ID).Scan(&p.UpdatedAt)
	if err == pgx.ErrNoRows {
		return core.ErrPropertyNotFound
	}
	return err
}

func (a *Adapter) SetPropertyFlags(ctx context.Context, id string, verified, advertised bool) error {
	q := `UPDATE public.properties SET verified = $1, advertised = $2, updated_at = now() WHERE id = $3`
	tag, err := a.pool.Exec(ctx, q, verified, advertised, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrPropertyNotFound
	}
	return nil
}

func (a *Adapter) DeleteProperty(ctx context.Context, id string) error {
	tag, err := a.pool.Exec(ctx, `DELETE FROM public.properties WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrPropertyNotFound
	}
	return nil
}

// SetStatusByAgent is the cascade write behind an admin role change: one
// statement flags every listing the agent owns.
func (a *Adapter) SetStatusByAgent(ctx context.Context, agentEmail, status string) (int, error) {
	q := `UPDATE public.properties SET status = $1, updated_at = now() WHERE agent_email = $2`
	tag, err := a.pool.Exec(ctx, q, status, agentEmail)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
