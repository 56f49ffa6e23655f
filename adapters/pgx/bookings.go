package pgx

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/estately/estately/core"
)

const bookingColumns = `id, property_id, title, user_email, agent_email, offer_price, status, created_at`

func scanBooking(row pgx.Row) (*core.Booking, error) {
	b := &core.Booking{}
	err := row.Scan(&b.ID, &b.PropertyID, &b.Title, &b.UserEmail, &b.AgentEmail,
		&b.OfferPrice, &b.Status, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (a *Adapter) InsertBooking(ctx context.Context, b *core.Booking) error {
	q := `INSERT INTO public.bookings (id, property_id, title, user_email, agent_email, offer_price)
	      VALUES ($1, $2, $3, $4, $5, $6)
	      RETURNING created_at`
	return a.pool.QueryRow(ctx, q, b.ID, b.PropertyID, b.Title, b.UserEmail, b.AgentEmail, b.OfferPrice).
		Scan(&b.CreatedAt)
}

func (a *Adapter) listBookings(ctx context.Context, q string, args ...any) ([]*core.Booking, error) {
	rows, err := a.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*core.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (a *Adapter) ListBookingsByUser(ctx context.Context, userEmail string) ([]*core.Booking, error) {
	q := `SELECT ` + bookingColumns + ` FROM public.bookings WHERE user_email = $1 ORDER BY created_at DESC`
	return a.listBookings(ctx, q, userEmail)
}

func (a *Adapter) ListBookingsByAgent(ctx context.Context, agentEmail string) ([]*core.Booking, error) {
	q := `SELECT ` + bookingColumns + ` FROM public.bookings WHERE agent_email = $1 ORDER BY created_at DESC`
	return a.listBookings(ctx, q, agentEmail)
}

func (a *Adapter) SetBookingStatus(ctx context.Context, id, status string) error {
	tag, err := a.pool.Exec(ctx, `UPDATE public.bookings SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrBookingNotFound
	}
	return nil
}

func (a *Adapter) SumOfferPriceByAgent(ctx context.Context, agentEmail string) (float64, error) {
	q := `SELECT COALESCE(SUM(offer_price), 0) FROM public.bookings WHERE agent_email = $1`
	var total float64
	if err := a.pool.QueryRow(ctx, q, agentEmail).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
