package core

import (
	"fmt"

	"github.com/estately/estately/pkg/crypto"
)

const minSecretLen = 32

// Config wires the external collaborators into the domain services. Store
// and Secret are mandatory; everything else has a sensible default.
type Config struct {
	Secret    string
	Store     Store
	Authority IntentAuthorizer

	// Optional config
	Cache          ListingCache
	PasswordHasher crypto.PasswordHandler
}

// App bundles the constructed services. Handlers receive this, nothing
// reaches into package-level state.
type App struct {
	Tokens   *TokenService
	Identity *IdentityResolver
	Guard    *Guard
	Users    *UserService
	Listings *ListingService
	Offers   *OfferService
	Bookings *BookingService
	Payments *PaymentService
}

// New validates the config and assembles the application services.
func New(config Config) (*App, error) {
	if config.Secret == "" {
		return nil, ErrSecretRequired
	}
	if len(config.Secret) < minSecretLen {
		return nil, fmt.Errorf("%w - minimum of %d characters", ErrSecretTooShort, minSecretLen)
	}
	if config.Store == nil {
		return nil, ErrStoreRequired
	}
	if config.Authority == nil {
		return nil, ErrAuthorityRequired
	}

	hasher := config.PasswordHasher
	if hasher == nil {
		hasher = crypto.NewArgon2()
	}

	tokens := NewTokenService([]byte(config.Secret))
	identity := NewIdentityResolver(config.Store)

	return &App{
		Tokens:   tokens,
		Identity: identity,
		Guard:    NewGuard(tokens, identity),
		Users:    NewUserService(config.Store, config.Store, hasher),
		Listings: NewListingService(config.Store, config.Cache),
		Offers:   NewOfferService(config.Store, config.Store),
		Bookings: NewBookingService(config.Store, config.Store),
		Payments: NewPaymentService(config.Authority),
	}, nil
}
