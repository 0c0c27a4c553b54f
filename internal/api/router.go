package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shizukanami/salon-booking-backend/internal/auth"
	"github.com/shizukanami/salon-booking-backend/internal/course"
	courseHttp "github.com/shizukanami/salon-booking-backend/internal/course/http"
	"github.com/shizukanami/salon-booking-backend/internal/notification"
	notificationHttp "github.com/shizukanami/salon-booking-backend/internal/notification/http"
	"github.com/shizukanami/salon-booking-backend/internal/points"
	pointsHttp "github.com/shizukanami/salon-booking-backend/internal/points/http"
	"github.com/shizukanami/salon-booking-backend/internal/reservation"
	reservationHttp "github.com/shizukanami/salon-booking-backend/internal/reservation/http"
	"github.com/shizukanami/salon-booking-backend/internal/schedule"
	scheduleHttp "github.com/shizukanami/salon-booking-backend/internal/schedule/http"
	"github.com/shizukanami/salon-booking-backend/internal/user"
	userHttp "github.com/shizukanami/salon-booking-backend/internal/user/http"
)

// Config holds the settings and services required to assemble the API.
type Config struct {
	IsProduction   bool
	ProdOrigins    []string
	MetricsEnabled bool
	AuthRateRPS    float64
	AuthRateBurst  int

	JWTManager          *auth.JWTManager
	UserService         user.Service
	CourseService       course.Service
	ScheduleService     schedule.Service
	ReservationService  reservation.Service
	PointsService       points.Service
	NotificationService notification.Service
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (CORS, Logger, Auth, rate limiting) and registers
// routes for each module under /v1.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = cfg.ProdOrigins
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000", // local web client
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	adminMiddleware := RequireAdmin(cfg.UserService)
	authRateLimit := RateLimit(NewRateLimiter(cfg.AuthRateRPS, cfg.AuthRateBurst))

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	courseHandler := courseHttp.NewHandler(cfg.CourseService)
	scheduleHandler := scheduleHttp.NewHandler(cfg.ScheduleService)
	reservationHandler := reservationHttp.NewHandler(cfg.ReservationService)
	pointsHandler := pointsHttp.NewHandler(cfg.PointsService)
	notificationHandler := notificationHttp.NewHandler(cfg.NotificationService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware, authRateLimit)
		courseHttp.RegisterRoutes(v1, courseHandler, authMiddleware, adminMiddleware)
		scheduleHttp.RegisterRoutes(v1, scheduleHandler, authMiddleware, adminMiddleware)
		reservationHttp.RegisterRoutes(v1, reservationHandler, authMiddleware, adminMiddleware)
		pointsHttp.RegisterRoutes(v1, pointsHandler, authMiddleware, adminMiddleware)
		notificationHttp.RegisterRoutes(v1, notificationHandler, authMiddleware, adminMiddleware)
	}

	return r
}
