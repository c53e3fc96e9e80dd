package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/playvenue/sports-booking-backend/internal/auth"
	"github.com/playvenue/sports-booking-backend/internal/booking"
	bookingHttp "github.com/playvenue/sports-booking-backend/internal/booking/http"
	"github.com/playvenue/sports-booking-backend/internal/facility"
	facilityHttp "github.com/playvenue/sports-booking-backend/internal/facility/http"
	"github.com/playvenue/sports-booking-backend/internal/photo"
	photoHttp "github.com/playvenue/sports-booking-backend/internal/photo/http"
	"github.com/playvenue/sports-booking-backend/internal/pkg/apperror"
	"github.com/playvenue/sports-booking-backend/internal/pkg/response"
	"github.com/playvenue/sports-booking-backend/internal/user"
)

// RouterConfig carries everything NewRouter needs to assemble the engine.
type RouterConfig struct {
	IsProduction bool
	ProdOrigins  []string

	UserService     user.Service
	FacilityService facility.Service
	BookingService  booking.Service
	PhotoService    photo.Service
	JWTManager      *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Outside production, error envelopes carry the underlying error chain.
	if !cfg.IsProduction {
		r.Use(response.Debug())
	}

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && len(cfg.ProdOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.ProdOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.Required(cfg.JWTManager)
	// Role guards re-read the user so stale tokens cannot outlive a role change.
	adminMiddleware := RequireRole(cfg.UserService, user.RoleAdmin)
	userMiddleware := RequireRole(cfg.UserService, user.RoleUser)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	authHandler := NewAuthHandler(cfg.UserService, cfg.JWTManager)
	facilityHandler := facilityHttp.NewHandler(cfg.FacilityService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	photoHandler := photoHttp.NewHandler(cfg.PhotoService)

	r.GET("/", func(c *gin.Context) {
		response.OK(c, http.StatusOK, "Welcome to the Sports Facility Booking Platform API", nil)
	})

	// Register API routes under /api
	api := r.Group("/api")
	{
		RegisterAuthRoutes(api, authHandler)
		facilityHttp.RegisterRoutes(api, facilityHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(api, bookingHandler, authMiddleware, userMiddleware, adminMiddleware)
		photoHttp.RegisterRoutes(api, photoHandler, authMiddleware, adminMiddleware)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.Envelope{
			Success:    false,
			StatusCode: http.StatusNotFound,
			Message:    "Not Found",
			ErrorMessages: []apperror.FieldError{
				{Path: c.Request.URL.Path, Message: "Your requested path is not found!"},
			},
		})
	})

	return r
}
