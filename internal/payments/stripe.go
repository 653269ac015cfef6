package payments

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"

	"github.com/bookhaven/server/internal/logger"
)

type StripeGateway struct {
	api *client.API
}

func NewStripe(secretKey string) (*StripeGateway, error) {
	if secretKey == "" {
		return nil, ErrNotConfigured
	}
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}, nil
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amount float64, currency string) (Intent, error) {
	log := logger.Get()
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(toCents(amount)),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		log.Error().Err(err).Msg("stripe payment intent failed")
		return Intent{}, err
	}
	log.Debug().Str("intent", pi.ID).Msg("stripe payment intent created")
	return Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

func (g *StripeGateway) Verify(ctx context.Context, id string) (float64, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	pi, err := g.api.PaymentIntents.Get(id, params)
	if err != nil {
		return 0, err
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return 0, fmt.Errorf("%w: intent status %s", ErrNotSucceeded, pi.Status)
	}
	return float64(pi.Amount) / 100, nil
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
