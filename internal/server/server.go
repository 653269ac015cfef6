package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bookhaven/server/internal/analytics"
	"github.com/bookhaven/server/internal/config"
	"github.com/bookhaven/server/internal/domain/consts"
	"github.com/bookhaven/server/internal/domain/models"
	"github.com/bookhaven/server/internal/logger"
	"github.com/bookhaven/server/internal/payments"
)

//go:generate mockgen -source=server.go -destination=./mocks/storage_mock.go -package=mocks

var SecretKey = "VerySecurKey2000Cat" //nolint:gochecknoglobals //demo var

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	jwt.RegisteredClaims
	UserID string
	Role   string
}

type Storage interface {
	SaveBook(models.Book) (string, error)
	GetBooks() ([]models.Book, error)
	GetBook(string) (models.Book, error)
	DeleteBook(string) error
	SearchBooks(models.CatalogQuery) (models.CatalogPage, error)

	AddToCart(cartID, bid string, quantity int) error
	UpdateCartItem(itemID string, quantity int) error
	RemoveCartItem(itemID string) error
	ClearCart(cartID string) error
	GetCart(cartID string) (models.CartSummary, error)
	ApplyDiscount(cartID, code string) error

	SaveReview(models.Review) (string, error)
	GetApprovedReviews(bid string) ([]models.Review, error)
	GetPendingReviews(bid string) ([]models.Review, error)
	ApproveReview(reviewID string) error
	DeleteReview(reviewID string) error

	CreateOrder(models.Order) (string, error)
	GetOrders(uid string) ([]models.Order, error)
	GetOrder(uid, orderID string) (models.Order, error)
	UpdateOrderStatus(orderID string, status models.OrderStatus) error

	SaveUser(models.User) (string, error)
	ValidUser(email, pass string) (string, error)
	GetUser(uid string) (models.User, error)
	UpdateUser(models.User) error

	SaveEvent(models.Event) error
	GetAnalyticsSummary() (models.AnalyticsSummary, error)
	RollupDaily(day time.Time) error
}

type Server struct {
	serv     *http.Server
	valid    *validator.Validate
	Storage  Storage
	Gateways map[string]payments.Gateway
	Tracker  *analytics.Tracker
	adminKey string
	ErrChan  chan error
}

func New(cfg config.Config, stor Storage, gateways map[string]payments.Gateway, tracker *analytics.Tracker) *Server {
	server := http.Server{ //nolint:gosec // not today
		Addr: cfg.Addr,
	}
	if cfg.JWTSecret != "" {
		SecretKey = cfg.JWTSecret
	}
	return &Server{
		serv:     &server,
		valid:    validator.New(),
		Storage:  stor,
		Gateways: gateways,
		Tracker:  tracker,
		adminKey: cfg.AdminKey,
		ErrChan:  make(chan error),
	}
}

func (s *Server) ShutdownServer() error {
	return s.serv.Shutdown(context.Background())
}

func (s *Server) Run(ctx context.Context) error {
	log := logger.Get()
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))
	router.GET("/", func(ctx *gin.Context) { ctx.String(http.StatusOK, "BookHaven") })
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	books := router.Group("/books")
	{
		books.GET("/", s.AllBooks)
		books.GET("/search", s.SearchBooks)
		books.GET("/:id", s.BookInfo)
		books.POST("/", s.JWTAuthRoleMiddleware(consts.RoleAdmin), s.AddBook)
		books.DELETE("/:id", s.JWTAuthRoleMiddleware(consts.RoleAdmin), s.RemoveBook)

		books.GET("/:id/reviews", s.BookReviews)
		books.POST("/:id/reviews", s.JWTAuthMiddleware(), s.AddReview)
		books.GET("/:id/reviews/pending", s.JWTAuthRoleMiddleware(consts.RoleAdmin), s.PendingReviews)
	}

	reviews := router.Group("/reviews", s.JWTAuthRoleMiddleware(consts.RoleAdmin))
	{
		reviews.PATCH("/:id/approve", s.ApproveReview)
		reviews.DELETE("/:id", s.DeleteReview)
	}

	cart := router.Group("/cart", s.JWTAuthMiddleware())
	{
		cart.GET("", s.GetCart)
		cart.POST("/items", s.AddCartItem)
		cart.PUT("/items/:id", s.UpdateCartItem)
		cart.DELETE("/items/:id", s.RemoveCartItem)
		cart.DELETE("", s.ClearCart)
		cart.POST("/discount", s.ApplyDiscount)
	}

	orders := router.Group("/orders", s.JWTAuthMiddleware())
	{
		orders.GET("", s.ListOrders)
		orders.GET("/:id", s.OrderInfo)
		orders.PATCH("/:id/status", s.JWTAuthRoleMiddleware(consts.RoleAdmin), s.UpdateOrderStatus)
	}

	users := router.Group("/users")
	{
		users.POST("/register", s.Register)
		users.POST("/login", s.Login)
		users.POST("/logout", s.JWTAuthMiddleware(), s.Logout)
		users.GET("/profile", s.JWTAuthMiddleware(), s.Profile)
		users.PUT("/profile", s.JWTAuthMiddleware(), s.UpdateProfile)
	}

	router.POST("/payments/create-intent", s.JWTAuthMiddleware(), s.CreatePaymentIntent)
	router.POST("/payments/verify", s.JWTAuthMiddleware(), s.VerifyPayment)

	router.POST("/analytics/events", s.TrackEvent)
	router.GET("/analytics/summary", s.JWTAuthRoleMiddleware(consts.RoleAdmin), s.AnalyticsSummary)

	s.serv.Handler = router
	log.Info().Str("host", s.serv.Addr).Msg("server started")
	if err := s.serv.ListenAndServe(); err != nil {
		return err
	}
	return nil
}

func (s *Server) Close() error {
	return s.serv.Shutdown(context.TODO())
}

func (s *Server) JWTAuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		log := logger.Get()
		tokenHeader := ctx.GetHeader("Authorization")
		if tokenHeader == "" {
			ctx.String(http.StatusUnauthorized, "Authorization header is required")
			ctx.Abort()
			return
		}

		tokenParts := strings.Split(tokenHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			ctx.String(http.StatusUnauthorized, "Invalid token format")
			ctx.Abort()
			return
		}

		uid, role, err := validToken(tokenParts[1])
		if err != nil {
			log.Error().Err(err).Msg("validate jwt failed")
			ctx.String(http.StatusUnauthorized, "Invalid token")
			ctx.Abort()
			return
		}

		ctx.Set("uid", uid)
		ctx.Set("role", role)
		ctx.Next()
	}
}

func (s *Server) JWTAuthRoleMiddleware(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenHeader := ctx.GetHeader("Authorization")
		if tokenHeader == "" {
			ctx.String(http.StatusUnauthorized, "Authorization header is required")
			ctx.Abort()
			return
		}

		tokenParts := strings.Split(tokenHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			ctx.String(http.StatusUnauthorized, "Invalid token format")
			ctx.Abort()
			return
		}

		uid, role, err := validToken(tokenParts[1])
		if err != nil {
			ctx.String(http.StatusUnauthorized, "Invalid token")
			ctx.Abort()
			return
		}

		if len(roles) > 0 {
			isAllowed := false
			for _, allowedRole := range roles {
				if role == allowedRole {
					isAllowed = true
					break
				}
			}
			if !isAllowed {
				ctx.String(http.StatusForbidden, "Access denied")
				ctx.Abort()
				return
			}
		}
		ctx.Set("uid", uid)
		ctx.Set("role", role)
		ctx.Next()
	}
}

func validToken(tokenStr string) (string, string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(SecretKey), nil
	})
	if err != nil || !token.Valid {
		return "", "", ErrInvalidToken
	}
	return claims.UserID, claims.Role, nil
}

func createJWTToken(uid, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 3)),
		},
		UserID: uid,
		Role:   role,
	})
	tokenStr, err := token.SignedString([]byte(SecretKey))
	if err != nil {
		return "", err
	}
	return tokenStr, nil
}
