package server

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bookhaven/server/internal/domain/models"
	"github.com/bookhaven/server/internal/logger"
	"github.com/bookhaven/server/internal/payments"
	storerrros "github.com/bookhaven/server/internal/storage/errors"
)

const checkoutCurrency = "USD"

type intentRequest struct {
	Gateway string `json:"gateway" binding:"required"`
}

type verifyRequest struct {
	Gateway  string `json:"gateway" binding:"required"`
	IntentID string `json:"intent_id" binding:"required"`
}

func (s *Server) gateway(ctx *gin.Context, name string) (payments.Gateway, bool) {
	g, ok := s.Gateways[name]
	if !ok || g == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "payment gateway is not configured"})
		return nil, false
	}
	return g, true
}

// CreatePaymentIntent registers a pending payment for the caller's current
// cart total. The amount always comes from the server-side cart, never from
// the request.
func (s *Server) CreatePaymentIntent(ctx *gin.Context) {
	log := logger.Get()

	var req intentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "gateway is required"})
		return
	}
	g, ok := s.gateway(ctx, req.Gateway)
	if !ok {
		return
	}

	cartID, ok := s.cartID(ctx)
	if !ok {
		return
	}
	summary, err := s.Storage.GetCart(cartID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cart for checkout")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get cart"})
		return
	}
	if len(summary.Items) == 0 {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "cart is empty"})
		return
	}

	intent, err := g.CreateIntent(ctx.Request.Context(), summary.Total, checkoutCurrency)
	if err != nil {
		log.Error().Err(err).Str("gateway", req.Gateway).Msg("create payment intent failed")
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "failed to create payment intent"})
		return
	}
	ctx.JSON(http.StatusOK, intent)
}

// VerifyPayment completes a checkout. On gateway-confirmed success the order
// is created from the cart snapshot and the cart is cleared; on failure the
// cart is left untouched.
func (s *Server) VerifyPayment(ctx *gin.Context) {
	log := logger.Get()

	var req verifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "gateway and intent_id are required"})
		return
	}
	g, ok := s.gateway(ctx, req.Gateway)
	if !ok {
		return
	}

	uid := ctx.GetString("uid")
	cartID, ok := s.cartID(ctx)
	if !ok {
		return
	}
	summary, err := s.Storage.GetCart(cartID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cart for checkout")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get cart"})
		return
	}
	if len(summary.Items) == 0 {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "cart is empty"})
		return
	}

	charged, err := g.Verify(ctx.Request.Context(), req.IntentID)
	if err != nil {
		log.Error().Err(err).Str("gateway", req.Gateway).Msg("payment verification failed")
		ctx.JSON(http.StatusPaymentRequired, gin.H{"error": "payment verification failed"})
		return
	}
	// The cart may have changed between create-intent and verify; an order is
	// only created for the amount the gateway actually settled.
	if math.Abs(charged-summary.Total) > 0.01 {
		log.Error().Float64("charged", charged).Float64("total", summary.Total).
			Msg("cart total no longer matches the charged amount")
		ctx.JSON(http.StatusConflict, gin.H{"error": "cart changed after the payment was created"})
		return
	}

	order := models.Order{
		UID:       uid,
		CreatedAt: time.Now(),
		Total:     summary.Total,
		Status:    models.OrderPending,
	}
	for _, item := range summary.Items {
		order.Items = append(order.Items, models.OrderItem{
			BID:      item.BID,
			Title:    item.Title,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	orderID, err := s.Storage.CreateOrder(order)
	if err != nil {
		if errors.Is(err, storerrros.ErrOutOfStock) {
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Error().Err(err).Msg("failed to create order")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
		return
	}
	if err := s.Storage.ClearCart(cartID); err != nil {
		log.Error().Err(err).Str("order_id", orderID).Msg("failed to clear cart after checkout")
	}
	if s.Tracker != nil {
		s.Tracker.OrderCompleted(summary.Total)
	}

	ctx.JSON(http.StatusCreated, gin.H{"order_id": orderID, "message": "payment confirmed, order created"})
}
