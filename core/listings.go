package core

import (
	"context"
	"fmt"

	"github.com/estately/estately/pkg/crypto"
)

const listingCacheKey = "properties:all"

// ListingService owns the property lifecycle. Agents mutate only their own
// listings; admins touch only the verification/advertisement flags.
type ListingService struct {
	properties PropertyStore
	cache      ListingCache // optional, nil disables caching
	nanoid     *crypto.NanoIDGenerator
}

func NewListingService(properties PropertyStore, cache ListingCache) *ListingService {
	nanoid, _ := crypto.NewNanoID()
	return &ListingService{properties: properties, cache: cache, nanoid: nanoid}
}

// AddInput carries the agent-supplied listing fields. Ownership comes from
// the authenticated subject, never from the payload.
type AddInput struct {
	Title       string  `json:"title"`
	Location    string  `json:"location"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	PriceMin    float64 `json:"priceMin"`
	PriceMax    float64 `json:"priceMax"`
	AgentName   string  `json:"agentName"`
}

// Add creates a listing owned by the calling agent.
func (s *ListingService) Add(ctx context.Context, agentEmail string, input AddInput) (*Property, error) {
	id, err := s.nanoid.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate ID: %w", err)
	}

	property := &Property{
		ID:          id,
		Title:       input.Title,
		Location:    input.Location,
		Image:       input.Image,
		Description: input.Description,
		PriceMin:    input.PriceMin,
		PriceMax:    input.PriceMax,
		AgentEmail:  agentEmail,
		AgentName:   input.AgentName,
	}

	if err := s.properties.InsertProperty(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to insert property: %w", err)
	}
	s.invalidate(ctx)
	return property, nil
}

// List returns the full catalog, served from the cache when a fresh
// snapshot exists.
func (s *ListingService) List(ctx context.Context) ([]*Property, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, listingCacheKey); err == nil {
			return cached, nil
		}
	}

	properties, err := s.properties.ListProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	if s.cache != nil {
		// Cache failures never fail the read.
		_ = s.cache.Set(ctx, listingCacheKey, properties)
	}
	return properties, nil
}

// Get returns one listing by id.
func (s *ListingService) Get(ctx context.Context, id string) (*Property, error) {
	return s.properties.GetProperty(ctx, id)
}

// ListByAgent returns the calling agent's own listings.
func (s *ListingService) ListByAgent(ctx context.Context, agentEmail string) ([]*Property, error) {
	return s.properties.ListPropertiesByAgent(ctx, agentEmail)
}

// UpdateInput carries the owner-editable listing fields.
type UpdateInput struct {
	Title       string  `json:"title"`
	Location    string  `json:"location"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	PriceMin    float64 `json:"priceMin"`
	PriceMax    float64 `json:"priceMax"`
}

// Update mutates a listing after checking the caller owns it.
func (s *ListingService) Update(ctx context.Context, agentEmail, id string, input UpdateInput) (*Property, error) {
	property, err := s.properties.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}
	if property.AgentEmail != agentEmail {
		return nil, ErrNotOwner
	}

	property.Title = input.Title
	property.Location = input.Location
	property.Image = input.Image
	property.Description = input.Description
	property.PriceMin = input.PriceMin
	property.PriceMax = input.PriceMax

	if err := s.properties.UpdateProperty(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}
	s.invalidate(ctx)
	return property, nil
}

// SetFlags sets the verification/advertisement flags on any listing.
// Admin-gated at the HTTP surface.
func (s *ListingService) SetFlags(ctx context.Context, id string, verified, advertised bool) error {
	if err := s.properties.SetPropertyFlags(ctx, id, verified, advertised); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Delete removes a listing after checking the caller owns it.
func (s *ListingService) Delete(ctx context.Context, agentEmail, id string) error {
	property, err := s.properties.GetProperty(ctx, id)
	if err != nil {
		return err
	}
	if property.AgentEmail != agentEmail {
		return ErrNotOwner
	}

	if err := s.properties.DeleteProperty(ctx, id); err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *ListingService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}
