package tests

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bookhaven/server/internal/domain/models"
	"github.com/bookhaven/server/internal/payments"
	"github.com/bookhaven/server/internal/server"
	"github.com/bookhaven/server/internal/server/mocks"
)

// stubGateway stands in for a payment provider: it records the amount it was
// asked to charge and answers Verify from a canned amount and error.
type stubGateway struct {
	amount    float64
	captured  float64
	verifyErr error
}

func (g *stubGateway) CreateIntent(_ context.Context, amount float64, _ string) (payments.Intent, error) {
	g.amount = amount
	return payments.Intent{ID: "pi_test", ClientSecret: "pi_test_secret"}, nil
}

func (g *stubGateway) Verify(_ context.Context, _ string) (float64, error) {
	return g.captured, g.verifyErr
}

func testCartSummary() models.CartSummary {
	return models.CartSummary{
		Items:        []models.CartItem{{BID: "b1", Title: "1984", Price: 9.99, Quantity: 2}},
		DiscountCode: "SAVE10",
		Subtotal:     19.98,
		Discount:     2.00,
		Total:        17.98,
	}
}

func TestServer_createPaymentIntent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)

	t.Run("amount comes from the server-side cart", func(t *testing.T) {
		gw := &stubGateway{}
		s := &server.Server{Storage: mockStorage, Gateways: map[string]payments.Gateway{payments.GatewayStripe: gw}}

		expectCartOwner(mockStorage)
		mockStorage.EXPECT().GetCart(testCartID).Return(testCartSummary(), nil)

		w := httptest.NewRecorder()
		ctx := jsonCtx(w, http.MethodPost, "/payments/create-intent", `{"gateway":"stripe"}`, testUID)

		s.CreatePaymentIntent(ctx)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "pi_test_secret")
		assert.Equal(t, 17.98, gw.amount)
	})

	t.Run("empty cart has nothing to pay for", func(t *testing.T) {
		gw := &stubGateway{}
		s := &server.Server{Storage: mockStorage, Gateways: map[string]payments.Gateway{payments.GatewayStripe: gw}}

		expectCartOwner(mockStorage)
		mockStorage.EXPECT().GetCart(testCartID).Return(models.CartSummary{}, nil)

		w := httptest.NewRecorder()
		ctx := jsonCtx(w, http.MethodPost, "/payments/create-intent", `{"gateway":"stripe"}`, testUID)

		s.CreatePaymentIntent(ctx)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "cart is empty")
	})

	t.Run("unconfigured gateway", func(t *testing.T) {
		s := &server.Server{Storage: mockStorage, Gateways: map[string]payments.Gateway{}}

		w := httptest.NewRecorder()
		ctx := jsonCtx(w, http.MethodPost, "/payments/create-intent", `{"gateway":"paypal"}`, testUID)

		s.CreatePaymentIntent(ctx)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestServer_verifyPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mocks.NewMockStorage(ctrl)

	t.Run("confirmed payment creates the order and clears the cart", func(t *testing.T) {
		gw := &stubGateway{captured: 17.98}
		s := &server.Server{Storage: mockStorage, Gateways: map[string]payments.Gateway{payments.GatewayStripe: gw}}

		expectCartOwner(mockStorage)
		mockStorage.EXPECT().GetCart(testCartID).Return(testCartSummary(), nil)
		mockStorage.EXPECT().
			CreateOrder(gomock.Any()).
			DoAndReturn(func(order models.Order) (string, error) {
				assert.Equal(t, testUID, order.UID)
				assert.Equal(t, models.OrderPending, order.Status)
				assert.Equal(t, 17.98, order.Total)
				assert.Equal(t, []models.OrderItem{{BID: "b1", Title: "1984", Quantity: 2, Price: 9.99}}, order.Items)
				return "order-1", nil
			})
		mockStorage.EXPECT().ClearCart(testCartID).Return(nil)

		w := httptest.NewRecorder()
		ctx := jsonCtx(w, http.MethodPost, "/payments/verify", `{"gateway":"stripe","intent_id":"pi_test"}`, testUID)

		s.VerifyPayment(ctx)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "order-1")
	})

	t.Run("failed payment leaves the cart untouched", func(t *testing.T) {
		gw := &stubGateway{verifyErr: errors.New("card declined")}
		s := &server.Server{Storage: mockStorage, Gateways: map[string]payments.Gateway{payments.GatewayStripe: gw}}

		expectCartOwner(mockStorage)
		mockStorage.EXPECT().GetCart(testCartID).Return(testCartSummary(), nil)
		// No CreateOrder or ClearCart expectations: the mock fails the test
		// if either is called.

		w := httptest.NewRecorder()
		ctx := jsonCtx(w, http.MethodPost, "/payments/verify", `{"gateway":"stripe","intent_id":"pi_test"}`, testUID)

		s.VerifyPayment(ctx)

		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})

	t.Run("cart grown since the intent was created is not fulfilled", func(t *testing.T) {
		gw := &stubGateway{captured: 17.98}
		s := &server.Server{Storage: mockStorage, Gateways: map[string]payments.Gateway{payments.GatewayStripe: gw}}

		grown := testCartSummary()
		grown.Items = append(grown.Items, models.CartItem{BID: "b2", Title: "Brave New World", Price: 11.25, Quantity: 4})
		grown.Subtotal = 64.98
		grown.Discount = 6.50
		grown.Total = 58.48

		expectCartOwner(mockStorage)
		mockStorage.EXPECT().GetCart(testCartID).Return(grown, nil)
		// The gateway settled 17.98 for a 58.48 cart: no order, cart intact.

		w := httptest.NewRecorder()
		ctx := jsonCtx(w, http.MethodPost, "/payments/verify", `{"gateway":"stripe","intent_id":"pi_test"}`, testUID)

		s.VerifyPayment(ctx)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "cart changed")
	})

	t.Run("empty cart cannot be checked out", func(t *testing.T) {
		gw := &stubGateway{}
		s := &server.Server{Storage: mockStorage, Gateways: map[string]payments.Gateway{payments.GatewayStripe: gw}}

		expectCartOwner(mockStorage)
		mockStorage.EXPECT().GetCart(testCartID).Return(models.CartSummary{}, nil)

		w := httptest.NewRecorder()
		ctx := jsonCtx(w, http.MethodPost, "/payments/verify", `{"gateway":"stripe","intent_id":"pi_test"}`, testUID)

		s.VerifyPayment(ctx)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("missing intent id", func(t *testing.T) {
		s := &server.Server{Storage: mockStorage, Gateways: map[string]payments.Gateway{}}

		w := httptest.NewRecorder()
		ctx := jsonCtx(w, http.MethodPost, "/payments/verify", `{"gateway":"stripe"}`, testUID)

		s.VerifyPayment(ctx)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
