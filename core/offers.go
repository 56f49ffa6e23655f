package core

import (
	"context"
	"fmt"

	"github.com/estately/estately/pkg/crypto"
)

// OfferService is the wishlist → offer → decision state machine.
//
// States: Saved (no status) → "pending" → "accepted" | "rejected", with
// later fulfillment values set by the owning agent. Every transition checks
// the caller against the record itself: users mutate only their own
// records, agents only records for properties they own.
type OfferService struct {
	offers     OfferStore
	properties PropertyStore
	nanoid     *crypto.NanoIDGenerator
}

func NewOfferService(offers OfferStore, properties PropertyStore) *OfferService {
	nanoid, _ := crypto.NewNanoID()
	return &OfferService{offers: offers, properties: properties, nanoid: nanoid}
}

// SaveInput identifies the property a user wants on their wishlist.
type SaveInput struct {
	PropertyID string `json:"propertyId"`
	UserName   string `json:"userName"`
}

// Save creates the initial Saved record. At most one record exists per
// (property, user) pair: the insert is conditional and a duplicate save
// returns the existing record unchanged.
func (s *OfferService) Save(ctx context.Context, userEmail string, input SaveInput) (*Offer, error) {
	property, err := s.properties.GetProperty(ctx, input.PropertyID)
	if err != nil {
		return nil, err
	}

	id, err := s.nanoid.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate ID: %w", err)
	}

	offer := &Offer{
		ID:         id,
		PropertyID: property.ID,
		Title:      property.Title,
		Location:   property.Location,
		Image:      property.Image,
		UserEmail:  userEmail,
		UserName:   input.UserName,
		AgentEmail: property.AgentEmail,
	}

	stored, _, err := s.offers.InsertOfferIfAbsent(ctx, offer)
	if err != nil {
		return nil, fmt.Errorf("failed to save offer: %w", err)
	}
	return stored, nil
}

// OfferInput carries the terms a user attaches when turning a save into a
// pending offer.
type OfferInput struct {
	OfferPrice float64 `json:"offerPrice"`
	Message    *string `json:"message,omitempty"`
	BuyingDate *string `json:"buyingDate,omitempty"`
}

// Submit moves a record from Saved to "pending". Only the record's own user
// may do this, and only while no offer has been submitted yet.
func (s *OfferService) Submit(ctx context.Context, userEmail, id string, input OfferInput) (*Offer, error) {
	offer, err := s.offers.GetOffer(ctx, id)
	if err != nil {
		return nil, err
	}
	if offer.UserEmail != userEmail {
		return nil, ErrNotOwner
	}
	if !offer.Saved() {
		return nil, ErrOfferNotSaved
	}

	if err := s.offers.SetOfferTerms(ctx, id, input.OfferPrice, input.Message, input.BuyingDate); err != nil {
		return nil, fmt.Errorf("failed to submit offer: %w", err)
	}
	return s.offers.GetOffer(ctx, id)
}

// Decide moves a pending offer to "accepted" or "rejected". Only the agent
// named on the record may decide, and only while the offer is pending.
func (s *OfferService) Decide(ctx context.Context, agentEmail, id, status string) (*Offer, error) {
	if status != StatusAccepted && status != StatusRejected {
		return nil, ErrUnknownStatus
	}

	offer, err := s.offers.GetOffer(ctx, id)
	if err != nil {
		return nil, err
	}
	if offer.AgentEmail != agentEmail {
		return nil, ErrNotOwner
	}
	if offer.Status == nil || *offer.Status != StatusPending {
		return nil, ErrOfferNotPending
	}

	if err := s.offers.SetOfferStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to set offer status: %w", err)
	}
	offer.Status = &status
	return offer, nil
}

// SetFulfillment reuses the status field for delivery/closing state once a
// decision exists. Agent-only, same ownership rule as Decide.
func (s *OfferService) SetFulfillment(ctx context.Context, agentEmail, id, status string) error {
	offer, err := s.offers.GetOffer(ctx, id)
	if err != nil {
		return err
	}
	if offer.AgentEmail != agentEmail {
		return ErrNotOwner
	}
	if offer.Status == nil {
		return ErrOfferNotPending
	}
	return s.offers.SetOfferStatus(ctx, id, status)
}

// Delete removes a record by explicit user action. Permitted only for the
// record's own user and only before payment locks it in: an accepted or
// bought offer stays.
func (s *OfferService) Delete(ctx context.Context, userEmail, id string) error {
	offer, err := s.offers.GetOffer(ctx, id)
	if err != nil {
		return err
	}
	if offer.UserEmail != userEmail {
		return ErrNotOwner
	}
	if offer.Status != nil && (*offer.Status == StatusAccepted || *offer.Status == StatusBought) {
		return ErrOfferLocked
	}
	return s.offers.DeleteOffer(ctx, id)
}

// ListSaved returns the user's bare wishlist saves (no status yet).
func (s *OfferService) ListSaved(ctx context.Context, userEmail string) ([]*Offer, error) {
	return s.offers.ListSavedByUser(ctx, userEmail)
}

// ListOffered returns the user's records that carry any status: their offer
// history and purchases.
func (s *OfferService) ListOffered(ctx context.Context, userEmail string) ([]*Offer, error) {
	return s.offers.ListOfferedByUser(ctx, userEmail)
}

// ListForAgent returns records addressed to the agent that carry a status.
// Agents never see bare, unacted-upon wishlist saves.
func (s *OfferService) ListForAgent(ctx context.Context, agentEmail string) ([]*Offer, error) {
	return s.offers.ListOffersForAgent(ctx, agentEmail)
}

// Get returns one record, visible only to its user or its agent.
func (s *OfferService) Get(ctx context.Context, callerEmail, id string) (*Offer, error) {
	offer, err := s.offers.GetOffer(ctx, id)
	if err != nil {
		return nil, err
	}
	if offer.UserEmail != callerEmail && offer.AgentEmail != callerEmail {
		return nil, ErrNotOwner
	}
	return offer, nil
}
