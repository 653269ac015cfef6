package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookhaven/server/internal/domain/models"
	"github.com/bookhaven/server/internal/logger"
	storerrros "github.com/bookhaven/server/internal/storage/errors"
)

func (s *Server) ListOrders(ctx *gin.Context) {
	log := logger.Get()
	uid := ctx.GetString("uid")

	orders, err := s.Storage.GetOrders(uid)
	if err != nil {
		log.Error().Err(err).Msg("failed to get orders")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get orders"})
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

// OrderInfo only ever shows the caller their own orders; someone else's
// order id behaves like a missing one.
func (s *Server) OrderInfo(ctx *gin.Context) {
	uid := ctx.GetString("uid")
	orderID := ctx.Param("id")

	order, err := s.Storage.GetOrder(uid, orderID)
	if err != nil {
		if errors.Is(err, storerrros.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get order"})
		return
	}
	ctx.JSON(http.StatusOK, order)
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (s *Server) UpdateOrderStatus(ctx *gin.Context) {
	log := logger.Get()
	orderID := ctx.Param("id")

	var req statusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	status := models.OrderStatus(req.Status)
	if !status.Valid() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown order status"})
		return
	}

	if err := s.Storage.UpdateOrderStatus(orderID, status); err != nil {
		if errors.Is(err, storerrros.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		log.Error().Err(err).Msg("failed to update order status")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "order status updated"})
}
