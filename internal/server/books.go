package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bookhaven/server/internal/domain/models"
	"github.com/bookhaven/server/internal/logger"
	storerrros "github.com/bookhaven/server/internal/storage/errors"
)

// AllBooks returns the whole catalog.
func (s *Server) AllBooks(ctx *gin.Context) {
	books, err := s.Storage.GetBooks()
	if err != nil {
		if errors.Is(err, storerrros.ErrEmptyCatalog) {
			ctx.String(http.StatusNotFound, err.Error())
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, books)
}

// SearchBooks runs the filter/sort/paginate pipeline. An empty result is a
// 404 with a message the client renders as "no results", not a failure.
func (s *Server) SearchBooks(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	query := models.CatalogQuery{
		Title:    ctx.DefaultQuery("title", ""),
		Author:   ctx.DefaultQuery("author", ""),
		Category: ctx.DefaultQuery("category", ""),
		Sort:     ctx.DefaultQuery("sort", "release_date"),
		Page:     page,
	}

	result, err := s.Storage.SearchBooks(query)
	if err != nil {
		if errors.Is(err, storerrros.ErrEmptyCatalog) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "no books matched your search"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (s *Server) BookInfo(ctx *gin.Context) {
	id := ctx.Param("id")
	book, err := s.Storage.GetBook(id)
	if err != nil {
		if errors.Is(err, storerrros.ErrBookNotFound) {
			ctx.String(http.StatusNotFound, err.Error())
			return
		}
		ctx.String(http.StatusInternalServerError, err.Error())
		return
	}
	ctx.JSON(http.StatusOK, book)
}

func (s *Server) AddBook(ctx *gin.Context) {
	log := logger.Get()

	var book models.Book
	if err := ctx.ShouldBindJSON(&book); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := s.valid.Struct(book); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bid, err := s.Storage.SaveBook(book)
	if err != nil {
		log.Error().Err(err).Msg("save book failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"bid": bid, "message": "book added"})
}

func (s *Server) RemoveBook(ctx *gin.Context) {
	log := logger.Get()

	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing book ID"})
		return
	}

	if err := s.Storage.DeleteBook(id); err != nil {
		if errors.Is(err, storerrros.ErrBookNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
			return
		}
		log.Error().Err(err).Msg("failed to delete book")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete book"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "book deleted"})
}
