package core

import "context"

// Ports define interfaces for external dependencies. The store handle is
// constructed once in main and injected; no package-level connection exists.

// UserStore defines user-related store operations.
type UserStore interface {
	// UpsertUser inserts the user if the email is unknown and returns the
	// stored record. When the email already exists the stored record is
	// returned unchanged; created reports which case occurred. The insert
	// must be a single conditional write, not a read-then-write.
	UpsertUser(ctx context.Context, u *User) (stored *User, created bool, err error)

	GetUserByEmail(ctx context.Context, email string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	SetUserRole(ctx context.Context, email string, role Role) error
	DeleteUser(ctx context.Context, email string) error
}

// PropertyStore defines listing store operations.
type PropertyStore interface {
	InsertProperty(ctx context.Context, p *Property) error
	GetProperty(ctx context.Context, id string) (*Property, error)
	ListProperties(ctx context.Context) ([]*Property, error)
	ListPropertiesByAgent(ctx context.Context, agentEmail string) ([]*Property, error)
	UpdateProperty(ctx context.Context, p *Property) error
	SetPropertyFlags(ctx context.Context, id string, verified, advertised bool) error
	DeleteProperty(ctx context.Context, id string) error

	// SetStatusByAgent applies one status value to every property owned by
	// the agent. Backs the admin role-change cascade.
	SetStatusByAgent(ctx context.Context, agentEmail, status string) (int, error)
}

// OfferStore defines wishlist/offer store operations.
type OfferStore interface {
	// InsertOfferIfAbsent inserts the record unless one already exists for
	// the same (property, user) pair, in which case the existing record is
	// returned untouched. Must be atomic under concurrent identical saves.
	InsertOfferIfAbsent(ctx context.Context, o *Offer) (stored *Offer, created bool, err error)

	GetOffer(ctx context.Context, id string) (*Offer, error)
	SetOfferTerms(ctx context.Context, id string, price float64, message, buyingDate *string) error
	SetOfferStatus(ctx context.Context, id, status string) error
	ListSavedByUser(ctx context.Context, userEmail string) ([]*Offer, error)
	ListOfferedByUser(ctx context.Context, userEmail string) ([]*Offer, error)
	ListOffersForAgent(ctx context.Context, agentEmail string) ([]*Offer, error)
	DeleteOffer(ctx context.Context, id string) error
}

// BookingStore defines booking store operations.
type BookingStore interface {
	InsertBooking(ctx context.Context, b *Booking) error
	ListBookingsByUser(ctx context.Context, userEmail string) ([]*Booking, error)
	ListBookingsByAgent(ctx context.Context, agentEmail string) ([]*Booking, error)
	SetBookingStatus(ctx context.Context, id, status string) error

	// SumOfferPriceByAgent returns the arithmetic sum of offer prices across
	// the agent's bookings, zero when none exist.
	SumOfferPriceByAgent(ctx context.Context, agentEmail string) (float64, error)
}

// Store is the composite port a full backend implements.
type Store interface {
	UserStore
	PropertyStore
	OfferStore
	BookingStore
}

// IntentAuthorizer is the external payment authority: it exchanges a
// validated minor-unit amount for an opaque client-usable handle.
type IntentAuthorizer interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (clientSecret string, err error)
}

// ListingCache caches catalog snapshots. Identity and role data must never
// pass through here; authorization always re-reads the store.
type ListingCache interface {
	Get(ctx context.Context, key string) ([]*Property, error)
	Set(ctx context.Context, key string, properties []*Property) error
	Invalidate(ctx context.Context) error
}
