package payments

import (
	"context"
	"fmt"
	"strconv"

	"github.com/plutov/paypal/v4"

	"github.com/bookhaven/server/internal/logger"
)

type PayPalGateway struct {
	client *paypal.Client
}

func NewPayPal(clientID, secret string, sandbox bool) (*PayPalGateway, error) {
	if clientID == "" || secret == "" {
		return nil, ErrNotConfigured
	}
	base := paypal.APIBaseLive
	if sandbox {
		base = paypal.APIBaseSandBox
	}
	c, err := paypal.NewClient(clientID, secret, base)
	if err != nil {
		return nil, err
	}
	if _, err := c.GetAccessToken(context.Background()); err != nil {
		return nil, err
	}
	return &PayPalGateway{client: c}, nil
}

func (g *PayPalGateway) CreateIntent(ctx context.Context, amount float64, currency string) (Intent, error) {
	log := logger.Get()
	order, err := g.client.CreateOrder(ctx, paypal.OrderIntentCapture,
		[]paypal.PurchaseUnitRequest{{
			Amount: &paypal.PurchaseUnitAmount{
				Currency: currency,
				Value:    fmt.Sprintf("%.2f", amount),
			},
		}}, nil, nil)
	if err != nil {
		log.Error().Err(err).Msg("paypal order failed")
		return Intent{}, err
	}
	log.Debug().Str("order", order.ID).Msg("paypal order created")
	return Intent{ID: order.ID}, nil
}

func (g *PayPalGateway) Verify(ctx context.Context, id string) (float64, error) {
	capture, err := g.client.CaptureOrder(ctx, id, paypal.CaptureOrderRequest{})
	if err != nil {
		return 0, err
	}
	if capture.Status != "COMPLETED" {
		return 0, fmt.Errorf("%w: order status %s", ErrNotSucceeded, capture.Status)
	}
	var total float64
	for _, unit := range capture.PurchaseUnits {
		if unit.Payments == nil {
			continue
		}
		for _, c := range unit.Payments.Captures {
			if c.Amount == nil {
				continue
			}
			v, err := strconv.ParseFloat(c.Amount.Value, 64)
			if err != nil {
				return 0, err
			}
			total += v
		}
	}
	return total, nil
}
