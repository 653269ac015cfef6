package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookhaven/server/internal/domain/consts"
	"github.com/bookhaven/server/internal/domain/models"
	"github.com/bookhaven/server/internal/logger"
	storerrros "github.com/bookhaven/server/internal/storage/errors"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Pass     string `json:"pass" validate:"required,min=8"`
	AdminKey string `json:"adminKey"`
}

type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Pass  string `json:"pass" validate:"required"`
}

func (s *Server) Register(ctx *gin.Context) {
	var req registerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.String(http.StatusBadRequest, "incorrectly entered data")
		return
	}
	if err := s.valid.Struct(req); err != nil {
		ctx.String(http.StatusBadRequest, "incorrectly entered data")
		return
	}

	role := consts.RoleUser
	if req.AdminKey != "" && req.AdminKey == s.adminKey {
		role = consts.RoleAdmin
	}

	uid, err := s.Storage.SaveUser(models.User{
		Name:  req.Name,
		Email: req.Email,
		Pass:  req.Pass,
		Role:  role,
	})
	if err != nil {
		ctx.String(http.StatusConflict, "User already exists")
		return
	}

	token, err := createJWTToken(uid, role)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.Header("Authorization", token)
	ctx.String(http.StatusCreated, token)
}

func (s *Server) Login(ctx *gin.Context) {
	log := logger.Get()
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Error().Err(err).Msg("unmarshal body failed")
		ctx.String(http.StatusBadRequest, "incorrectly entered data")
		return
	}

	uid, err := s.Storage.ValidUser(req.Email, req.Pass)
	if err != nil {
		if errors.Is(err, storerrros.ErrUserNotFound) {
			log.Error().Err(err).Msg("user not found")
			ctx.String(http.StatusNotFound, "invalid login or password")
			return
		}
		if errors.Is(err, storerrros.ErrInvalidPassword) {
			log.Error().Err(err).Msg("invalid pass")
			ctx.String(http.StatusUnauthorized, err.Error())
			return
		}
		log.Error().Err(err).Msg("validate user failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user, err := s.Storage.GetUser(uid)
	if err != nil {
		log.Error().Err(err).Msg("failed to retrieve user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch user details"})
		return
	}

	token, err := createJWTToken(uid, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("create jwt failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.Header("Authorization", token)
	ctx.String(http.StatusOK, token)
}

// Logout only acknowledges; the token is discarded client-side.
func (s *Server) Logout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (s *Server) Profile(ctx *gin.Context) {
	log := logger.Get()
	uid := ctx.GetString("uid")

	user, err := s.Storage.GetUser(uid)
	if err != nil {
		log.Error().Err(err).Msg("failed get user from db")
		if errors.Is(err, storerrros.ErrUserNotFound) {
			ctx.String(http.StatusNotFound, err.Error())
			return
		}
		ctx.String(http.StatusInternalServerError, err.Error())
		return
	}
	user.Pass = ""
	ctx.JSON(http.StatusOK, user)
}

type profileRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email" validate:"required,email"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
}

func (s *Server) UpdateProfile(ctx *gin.Context) {
	log := logger.Get()
	uid := ctx.GetString("uid")

	var req profileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.String(http.StatusBadRequest, "incorrectly entered data")
		return
	}
	if err := s.valid.Struct(req); err != nil {
		ctx.String(http.StatusBadRequest, "incorrectly entered data")
		return
	}

	err := s.Storage.UpdateUser(models.User{
		UID:           uid,
		Name:          req.Name,
		Email:         req.Email,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		if errors.Is(err, storerrros.ErrUserNotFound) {
			ctx.String(http.StatusNotFound, err.Error())
			return
		}
		log.Error().Err(err).Msg("failed to update profile")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}
