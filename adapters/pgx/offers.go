package pgx

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/estately/estately/core"
)

const offerColumns = `id, property_id, title, location, image, user_email, user_name,
	agent_email, offer_price, message, buying_date, status, created_at`

func scanOffer(row pgx.Row) (*core.Offer, error) {
	o := &core.Offer{}
	err := row.Scan(&o.ID, &o.PropertyID, &o.Title, &o.Location, &o.Image,
		&o.UserEmail, &o.UserName, &o.AgentEmail,
		&o.OfferPrice, &o.Message, &o.BuyingDate, &o.Status, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// InsertOfferIfAbsent relies on the unique index over (property_id,
// user_email): ON CONFLICT DO NOTHING makes two near-simultaneous saves of
// the same pair race-free, and the read-back returns whichever record won.
func (a *Adapter) InsertOfferIfAbsent(ctx context.Context, o *core.Offer) (*core.Offer, bool, error) {
	q := `INSERT INTO public.offers
	      (id, property_id, title, location, image, user_email, user_name, agent_email)
	      VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	      ON CONFLICT (property_id, user_email) DO NOTHING`

	tag, err := a.pool.Exec(ctx, q, o.ID, o.PropertyID, o.Title, o.Location, o.Image,
		o.UserEmail, o.UserName, o.AgentEmail)
	if err != nil {
		return nil, false, err
	}

	sel := `SELECT ` + offerColumns + ` FROM public.offers WHERE property_id = $1 AND user_email = $2`
	stored, err := scanOffer(a.pool.QueryRow(ctx, sel, o.PropertyID, o.UserEmail))
	if err != nil {
		return nil, false, err
	}
	return stored, tag.RowsAffected() == 1, nil
}

func (a *Adapter) GetOffer(ctx context.Context, id string) (*core.Offer, error) {
	q := `SELECT ` + offerColumns + ` FROM public.offers WHERE id = $1`
	o, err := scanOffer(a.pool.QueryRow(ctx, q, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrOfferNotFound
		}
		return nil, err
	}
	return o, nil
}

func (a *Adapter) SetOfferTerms(ctx context.Context, id string, price float64, message, buyingDate *string) error {
	q := `UPDATE public.offers
	      SET offer_price = $1, message = $2, buying_date = $3, status = $4
	      WHERE id = $5`
	tag, err := a.pool.Exec(ctx, q, price, message, buyingDate, core.StatusPending, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrOfferNotFound
	}
	return nil
}

func (a *Adapter) SetOfferStatus(ctx context.Context, id, status string) error {
	tag, err := a.pool.Exec(ctx, `UPDATE public.offers SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrOfferNotFound
	}
	return nil
}

func (a *Adapter) listOffers(ctx context.Context, q string, args ...any) ([]*core.Offer, error) {
	rows, err := a.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []*core.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

func (a *Adapter) ListSavedByUser(ctx context.Context, userEmail string) ([]*core.Offer, error) {
	q := `SELECT ` + offerColumns + ` FROM public.offers
	      WHERE user_email = $1 AND status IS NULL ORDER BY created_at DESC`
	return a.listOffers(ctx, q, userEmail)
}

func (a *Adapter) ListOfferedByUser(ctx context.Context, userEmail string) ([]*core.Offer, error) {
	q := `SELECT ` + offerColumns + ` FROM public.offers
	      WHERE user_email = $1 AND status IS NOT NULL ORDER BY created_at DESC`
	return a.listOffers(ctx, q, userEmail)
}

// ListOffersForAgent excludes bare saves on purpose: agents never see a
// wishlist entry nobody has made an offer on.
func (a *Adapter) ListOffersForAgent(ctx context.Context, agentEmail string) ([]*core.Offer, error) {
	q := `SELECT ` + offerColumns + ` FROM public.offers
	      WHERE agent_email = $1 AND status IS NOT NULL ORDER BY created_at DESC`
	return a.listOffers(ctx, q, agentEmail)
}

func (a *Adapter) DeleteOffer(ctx context.Context, id string) error {
	tag, err := a.pool.Exec(ctx, `DELETE FROM public.offers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrOfferNotFound
	}
	return nil
}
