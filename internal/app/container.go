package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shizukanami/salon-booking-backend/internal/api"
	"github.com/shizukanami/salon-booking-backend/internal/auth"
	"github.com/shizukanami/salon-booking-backend/internal/course"
	"github.com/shizukanami/salon-booking-backend/internal/notification"
	"github.com/shizukanami/salon-booking-backend/internal/points"
	"github.com/shizukanami/salon-booking-backend/internal/reservation"
	"github.com/shizukanami/salon-booking-backend/internal/schedule"
	"github.com/shizukanami/salon-booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction   bool
	ProdOrigins    []string
	MetricsEnabled bool
	AuthRateRPS    float64
	AuthRateBurst  int
	DBPool         *pgxpool.Pool
	JWTSecret      string
	JWTTTL         time.Duration
	BcryptCost     int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Course Module
	courseRepo := course.NewPgxRepository(cfg.DBPool)
	courseService := course.NewService(courseRepo)

	// Schedule Module
	scheduleRepo := schedule.NewPgxRepository(cfg.DBPool)
	scheduleService := schedule.NewService(scheduleRepo)

	// Reservation Module
	reservationRepo := reservation.NewPgxRepository(cfg.DBPool)
	reservationService := reservation.NewService(reservationRepo, userService, courseService, scheduleService)

	// Points Module
	pointsRepo := points.NewPgxRepository(cfg.DBPool)
	pointsService := points.NewService(pointsRepo, userService)

	// Notification Module
	notificationRepo := notification.NewPgxRepository(cfg.DBPool)
	notificationService := notification.NewService(notificationRepo)

	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		MetricsEnabled: cfg.MetricsEnabled,
		AuthRateRPS:    cfg.AuthRateRPS,
		AuthRateBurst:  cfg.AuthRateBurst,

		JWTManager:          jwtManager,
		UserService:         userService,
		CourseService:       courseService,
		ScheduleService:     scheduleService,
		ReservationService:  reservationService,
		PointsService:       pointsService,
		NotificationService: notificationService,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}
