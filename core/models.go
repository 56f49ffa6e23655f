package core

import "time"

// Role is the closed set of roles a user can hold. Authorization decisions
// compare against these values only; an empty role means the user signed up
// but was never assigned anything.
type Role string

const (
	RoleUnset Role = ""
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
	RoleAdmin Role = "admin"
)

// ParseRole maps a wire string onto the closed role set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAgent, RoleAdmin:
		return Role(s), nil
	case RoleUnset:
		return RoleUnset, nil
	default:
		return RoleUnset, ErrUnknownRole
	}
}

// User represents an identity record, keyed by email.
//
// PasswordHash is set only for accounts created with a password credential;
// social-login accounts carry none and authenticate on subject match alone.
type User struct {
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	PasswordHash *string   `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Property is a listing owned by exactly one agent, identified by the
// agent's email stored on the record.
type Property struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Location    string  `json:"location"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	PriceMin    float64 `json:"priceMin"`
	PriceMax    float64 `json:"priceMax"`
	AgentEmail  string  `json:"agentEmail"`
	AgentName   string  `json:"agentName"`
	Verified    bool    `json:"verified"`
	Advertised  bool    `json:"advertised"`
	// Status carries the admin cascade flag; empty for listings of agents
	// in good standing.
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Offer statuses. A nil status is its own state: the record is a bare
// wishlist save that no offer has been made on yet.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
	StatusBought   = "bought"
)

// Offer is the wishlist/offer record at the center of the workflow.
//
// PropertyID is the listing's pre-migration identifier, carried as an
// opaque foreign key. AgentEmail is denormalized from the property so
// agent-side queries need no join. Status is optional on purpose: absence
// is the initial Saved state, distinct from every named status.
type Offer struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	Title      string    `json:"title"`
	Location   string    `json:"location"`
	Image      string    `json:"image"`
	UserEmail  string    `json:"userEmail"`
	UserName   string    `json:"userName"`
	AgentEmail string    `json:"agentEmail"`
	OfferPrice *float64  `json:"offerPrice,omitempty"`
	Message    *string   `json:"message,omitempty"`
	BuyingDate *string   `json:"buyingDate,omitempty"`
	Status     *string   `json:"status,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Saved reports whether the record is still a bare wishlist save.
func (o *Offer) Saved() bool { return o.Status == nil }

// Decided reports whether an agent has acted on the offer.
func (o *Offer) Decided() bool {
	return o.Status != nil && *o.Status != StatusPending
}

// Booking is created once an accepted offer is paid. Immutable afterwards
// except for the fulfillment status.
type Booking struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	Title      string    `json:"title"`
	UserEmail  string    `json:"userEmail"`
	AgentEmail string    `json:"agentEmail"`
	OfferPrice float64   `json:"offerPrice"`
	Status     *string   `json:"status,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
