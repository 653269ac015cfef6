package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookhaven/server/internal/domain/models"
	"github.com/bookhaven/server/internal/logger"
	storerrros "github.com/bookhaven/server/internal/storage/errors"
)

type reviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// AddReview stores a new review for moderation. Nothing reaches storage
// unless both fields are usable.
func (s *Server) AddReview(ctx *gin.Context) {
	log := logger.Get()
	uid := ctx.GetString("uid")

	var req reviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Rating < 1 || req.Rating > 5 || req.Comment == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Please provide both a rating and a comment"})
		return
	}

	user, err := s.Storage.GetUser(uid)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve reviewer")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch user details"})
		return
	}

	reviewID, err := s.Storage.SaveReview(models.Review{
		BID:      ctx.Param("id"),
		UID:      uid,
		UserName: user.Name,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to save review")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save review"})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"review_id": reviewID, "message": "review submitted for moderation"})
}

// BookReviews returns approved reviews plus the average rating rendered the
// way the storefront shows it: one decimal, or "N/A" with no approved set.
func (s *Server) BookReviews(ctx *gin.Context) {
	bid := ctx.Param("id")

	reviews, err := s.Storage.GetApprovedReviews(bid)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get reviews"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"reviews":        reviews,
		"average_rating": models.AverageRating(reviews),
	})
}

func (s *Server) PendingReviews(ctx *gin.Context) {
	bid := ctx.Param("id")

	reviews, err := s.Storage.GetPendingReviews(bid)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get reviews"})
		return
	}
	ctx.JSON(http.StatusOK, reviews)
}

func (s *Server) ApproveReview(ctx *gin.Context) {
	reviewID := ctx.Param("id")

	if err := s.Storage.ApproveReview(reviewID); err != nil {
		if errors.Is(err, storerrros.ErrReviewNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to approve review"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "review approved"})
}

func (s *Server) DeleteReview(ctx *gin.Context) {
	reviewID := ctx.Param("id")

	if err := s.Storage.DeleteReview(reviewID); err != nil {
		if errors.Is(err, storerrros.ErrReviewNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete review"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}
