package core

import (
	"context"
	"fmt"
	"math"
)

// Currency is the fixed settlement currency. No conversion happens here.
const Currency = "usd"

// MinorUnits converts a base-currency price to the authority's minor-unit
// amount (10.00 -> 1000).
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// PaymentService validates amounts and exchanges them with the external
// payment authority for an opaque client-usable handle. No retries: an
// authority failure propagates to the handler as-is.
type PaymentService struct {
	authority IntentAuthorizer
}

func NewPaymentService(authority IntentAuthorizer) *PaymentService {
	return &PaymentService{authority: authority}
}

// IntentInput carries the price the client wants to authorize.
type IntentInput struct {
	Price *float64 `json:"price"`
}

// CreateIntent rejects a missing price or any amount below one minor unit,
// then returns the authority's client handle for the amount.
func (s *PaymentService) CreateIntent(ctx context.Context, input IntentInput) (string, error) {
	if input.Price == nil {
		return "", ErrInvalidAmount
	}
	amount := MinorUnits(*input.Price)
	if amount < 1 {
		return "", ErrInvalidAmount
	}

	clientSecret, err := s.authority.CreateIntent(ctx, amount, Currency)
	if err != nil {
		return "", fmt.Errorf("payment authority failed: %w", err)
	}
	return clientSecret, nil
}
