package payments

import (
	"context"
	"errors"
)

const (
	GatewayStripe = "stripe"
	GatewayPayPal = "paypal"
)

var (
	ErrNotConfigured = errors.New("payment gateway is not configured")
	ErrNotSucceeded  = errors.New("payment has not succeeded")
)

// Intent is what the storefront needs to drive the gateway widget: the
// gateway-side id plus, for Stripe, the client secret.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret,omitempty"`
}

// Gateway abstracts the two checkout providers. CreateIntent registers a
// pending payment for the given amount; Verify confirms with the provider
// that the payment actually completed and reports the amount it settled for.
type Gateway interface {
	CreateIntent(ctx context.Context, amount float64, currency string) (Intent, error)
	Verify(ctx context.Context, id string) (float64, error)
}
