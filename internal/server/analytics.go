package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookhaven/server/internal/domain/models"
	"github.com/bookhaven/server/internal/logger"
)

type eventRequest struct {
	Name  string `json:"name" binding:"required"`
	Label string `json:"label"`
}

// TrackEvent is fire-and-forget from the client's point of view; a storage
// failure is logged but still acknowledged.
func (s *Server) TrackEvent(ctx *gin.Context) {
	log := logger.Get()

	var req eventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	if err := s.Storage.SaveEvent(models.Event{Name: req.Name, Label: req.Label}); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("failed to store event")
	}
	if s.Tracker != nil {
		s.Tracker.Event(req.Name)
	}
	ctx.JSON(http.StatusAccepted, gin.H{"message": "event recorded"})
}

func (s *Server) AnalyticsSummary(ctx *gin.Context) {
	log := logger.Get()

	summary, err := s.Storage.GetAnalyticsSummary()
	if err != nil {
		log.Error().Err(err).Msg("failed to build analytics summary")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build analytics summary"})
		return
	}
	ctx.JSON(http.StatusOK, summary)
}
