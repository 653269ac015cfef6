package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookhaven/server/internal/logger"
	storerrros "github.com/bookhaven/server/internal/storage/errors"
)

// cartID resolves the caller's cart from the authenticated uid.
func (s *Server) cartID(ctx *gin.Context) (string, bool) {
	log := logger.Get()
	uid := ctx.GetString("uid")
	if uid == "" {
		log.Error().Msg("user ID not found")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found"})
		return "", false
	}
	user, err := s.Storage.GetUser(uid)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve cart owner")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch user details"})
		return "", false
	}
	return user.CartID, true
}

type addItemRequest struct {
	BID      string `json:"bid" binding:"required"`
	Quantity int    `json:"quantity"`
}

func (s *Server) AddCartItem(ctx *gin.Context) {
	log := logger.Get()
	cartID, ok := s.cartID(ctx)
	if !ok {
		return
	}

	var req addItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "bid is required"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := s.Storage.AddToCart(cartID, req.BID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, storerrros.ErrBookNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		case errors.Is(err, storerrros.ErrInvalidQuantity):
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, storerrros.ErrOutOfStock):
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			log.Error().Err(err).Msg("failed to add book to cart")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Book added to cart"})
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (s *Server) UpdateCartItem(ctx *gin.Context) {
	log := logger.Get()
	itemID := ctx.Param("id")

	var req updateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := s.Storage.UpdateCartItem(itemID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, storerrros.ErrItemNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "book not found in cart"})
		case errors.Is(err, storerrros.ErrInvalidQuantity):
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			log.Error().Err(err).Msg("failed to update cart item")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart item"})
		}
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "quantity updated"})
}

func (s *Server) RemoveCartItem(ctx *gin.Context) {
	log := logger.Get()
	itemID := ctx.Param("id")
	if itemID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "item_id is required"})
		return
	}

	if err := s.Storage.RemoveCartItem(itemID); err != nil {
		if errors.Is(err, storerrros.ErrItemNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "book not found in cart"})
			return
		}
		log.Error().Err(err).Msg("failed to remove book from cart")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove book from cart"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "book removed from cart"})
}

func (s *Server) ClearCart(ctx *gin.Context) {
	log := logger.Get()
	cartID, ok := s.cartID(ctx)
	if !ok {
		return
	}

	if err := s.Storage.ClearCart(cartID); err != nil {
		if errors.Is(err, storerrros.ErrCartNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}
		log.Error().Err(err).Msg("failed to clear cart")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}

func (s *Server) GetCart(ctx *gin.Context) {
	log := logger.Get()
	cartID, ok := s.cartID(ctx)
	if !ok {
		return
	}

	summary, err := s.Storage.GetCart(cartID)
	if err != nil {
		if errors.Is(err, storerrros.ErrCartNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}
		log.Error().Err(err).Msg("failed to get cart items")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, summary)
}

type discountRequest struct {
	Code string `json:"code" binding:"required"`
}

// ApplyDiscount stores a valid code on the cart. Any other code clears the
// discount and reports the inline error the storefront shows.
func (s *Server) ApplyDiscount(ctx *gin.Context) {
	log := logger.Get()
	cartID, ok := s.cartID(ctx)
	if !ok {
		return
	}

	var req discountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}

	if err := s.Storage.ApplyDiscount(cartID, req.Code); err != nil {
		switch {
		case errors.Is(err, storerrros.ErrInvalidDiscount):
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid discount code"})
		case errors.Is(err, storerrros.ErrCartNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		default:
			log.Error().Err(err).Msg("failed to apply discount")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply discount"})
		}
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "discount applied"})
}
