package core

import "errors"

// Authentication errors. All of these surface as 401 with one fixed message
// so callers cannot distinguish a bad token from a missing one.
var (
	ErrMissingToken = errors.New("missing session token") // 401
	ErrInvalidToken = errors.New("invalid session token") // 401
	ErrTokenExpired = errors.New("session token expired") // 401
)

// Authorization errors. Deliberately indistinguishable from authentication
// errors at the HTTP surface.
var (
	ErrForbiddenRole = errors.New("role not permitted")     // 401
	ErrNotOwner      = errors.New("caller does not own record") // 401
)

// Record errors
var (
	ErrUserNotFound     = errors.New("user not found")     // 404
	ErrPropertyNotFound = errors.New("property not found") // 404
	ErrOfferNotFound    = errors.New("offer not found")    // 404
	ErrBookingNotFound  = errors.New("booking not found")  // 404
)

// Validation errors (client input)
var (
	ErrEmailRequired      = errors.New("email is required")                    // 400
	ErrUnknownRole        = errors.New("unknown role")                        // 400
	ErrUnknownStatus      = errors.New("unknown offer status")               // 400
	ErrInvalidAmount      = errors.New("amount must be at least one minor unit") // 400
	ErrInvalidCredentials = errors.New("invalid email or password")           // 401
	ErrOfferNotPending    = errors.New("offer has no pending decision")       // 409
	ErrOfferNotSaved      = errors.New("offer already submitted")             // 409
	ErrOfferLocked        = errors.New("offer already accepted")              // 409
	ErrOfferNotAccepted   = errors.New("offer is not accepted")               // 409
)

// Cache errors
var (
	ErrCacheMiss = errors.New("listing snapshot not in cache")
)

// Config errors (server-side configuration)
var (
	ErrStoreRequired     = errors.New("store is required")      // 500
	ErrSecretRequired    = errors.New("token secret is required") // 500
	ErrSecretTooShort    = errors.New("token secret too short")   // 500
	ErrAuthorityRequired = errors.New("payment authority is required") // 500
)
