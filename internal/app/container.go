package app

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/playvenue/sports-booking-backend/internal/api"
	"github.com/playvenue/sports-booking-backend/internal/auth"
	"github.com/playvenue/sports-booking-backend/internal/booking"
	"github.com/playvenue/sports-booking-backend/internal/facility"
	"github.com/playvenue/sports-booking-backend/internal/photo"
	"github.com/playvenue/sports-booking-backend/internal/pkg/storage"
	"github.com/playvenue/sports-booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	UploadDir    string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasher(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Facility Module
	facilityRepo := facility.NewPgxRepository(cfg.DBPool)
	facilityService := facility.NewService(facilityRepo)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, facilityService)

	// Photo Module
	localStorage, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, err
	}
	photoRepo := photo.NewPgxRepository(cfg.DBPool)
	photoService := photo.NewService(photoRepo, facilityService, localStorage)

	// Router
	router := api.NewRouter(api.RouterConfig{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     splitOrigins(cfg.ProdOrigins),
		UserService:     userService,
		FacilityService: facilityService,
		BookingService:  bookingService,
		PhotoService:    photoService,
		JWTManager:      jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}

// splitOrigins turns a comma-separated origin list into a slice,
// dropping empty entries.
func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
