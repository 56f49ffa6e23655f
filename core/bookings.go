package core

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// BookingService records paid outcomes. A booking is only ever created from
// an offer the agent has accepted, belongs to the paying user, and never
// changes afterwards except for its fulfillment status.
type BookingService struct {
	bookings BookingStore
	offers   OfferStore
}

func NewBookingService(bookings BookingStore, offers OfferStore) *BookingService {
	return &BookingService{bookings: bookings, offers: offers}
}

// BookInput names the accepted offer being paid for.
type BookInput struct {
	OfferID string `json:"offerId"`
}

// Book creates the booking for an accepted offer and marks the offer bought.
func (s *BookingService) Book(ctx context.Context, userEmail string, input BookInput) (*Booking, error) {
	offer, err := s.offers.GetOffer(ctx, input.OfferID)
	if err != nil {
		return nil, err
	}
	if offer.UserEmail != userEmail {
		return nil, ErrNotOwner
	}
	if offer.Status == nil || *offer.Status != StatusAccepted {
		return nil, ErrOfferNotAccepted
	}

	var price float64
	if offer.OfferPrice != nil {
		price = *offer.OfferPrice
	}

	booking := &Booking{
		ID:         uuid.NewString(),
		PropertyID: offer.PropertyID,
		Title:      offer.Title,
		UserEmail:  offer.UserEmail,
		AgentEmail: offer.AgentEmail,
		OfferPrice: price,
	}

	if err := s.bookings.InsertBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}

	// Best effort: the booking is the durable record, the offer flag is a
	// convenience for the user's purchased view.
	_ = s.offers.SetOfferStatus(ctx, offer.ID, StatusBought)

	return booking, nil
}

// ListByUser returns the caller's own bookings.
func (s *BookingService) ListByUser(ctx context.Context, userEmail string) ([]*Booking, error) {
	return s.bookings.ListBookingsByUser(ctx, userEmail)
}

// ListByAgent returns bookings addressed to the agent.
func (s *BookingService) ListByAgent(ctx context.Context, agentEmail string) ([]*Booking, error) {
	return s.bookings.ListBookingsByAgent(ctx, agentEmail)
}

// SetStatus updates fulfillment tracking on a booking the agent owns.
func (s *BookingService) SetStatus(ctx context.Context, agentEmail, id, status string) error {
	bookings, err := s.bookings.ListBookingsByAgent(ctx, agentEmail)
	if err != nil {
		return err
	}
	for _, b := range bookings {
		if b.ID == id {
			return s.bookings.SetBookingStatus(ctx, id, status)
		}
	}
	return ErrBookingNotFound
}

// SalesTotal returns the sum of offer prices across the agent's bookings,
// zero when there are none. Base-currency arithmetic only, no conversion.
func (s *BookingService) SalesTotal(ctx context.Context, agentEmail string) (float64, error) {
	return s.bookings.SumOfferPriceByAgent(ctx, agentEmail)
}
