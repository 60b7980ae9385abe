package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-ai/controllers"
	"github.com/yeremiapane/restaurant-ai/middlewares"
	"github.com/yeremiapane/restaurant-ai/models"
	"github.com/yeremiapane/restaurant-ai/services"
	"gorm.io/gorm"
)

// Options configures the optional parts of the router. Sessions enables the /auth
// and /admin routes, without it only /health is served. OTP adds the /auth/otp routes
// when Sessions is set too. LoginAttempts is per client IP and minute on the login routes.
type Options struct {
	Sessions       *services.SessionService
	OTP            *services.OTPService
	AllowedOrigins []string
	LoginAttempts  int
}

// SetupRouter exposes the state of an initialized store. Business endpoints live elsewhere.
func SetupRouter(db *gorm.DB, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(opts.AllowedOrigins))

	healthCtrl := controllers.NewHealthController(db)
	r.GET("/health", healthCtrl.Liveness)

	if opts.Sessions == nil {
		return r
	}

	authService := services.NewAuthService(db)
	sessionCtrl := controllers.NewSessionController(authService, opts.Sessions)
	limiter := middlewares.NewRateLimiter(opts.LoginAttempts, time.Minute)

	auth := r.Group("/auth")
	{
		auth.POST("/login", limiter.RateLimit(), sessionCtrl.Login)
		auth.POST("/restaurant/login", limiter.RateLimit(), sessionCtrl.RestaurantLogin)
		auth.POST("/logout", middlewares.SessionAuth(opts.Sessions), sessionCtrl.Logout)
	}

	if opts.OTP != nil {
		otpCtrl := controllers.NewOTPController(authService, opts.OTP, opts.Sessions)
		auth.POST("/otp/request", limiter.RateLimit(), otpCtrl.Request)
		auth.POST("/otp/verify", limiter.RateLimit(), otpCtrl.Verify)
	}

	admin := r.Group("/admin")
	admin.Use(middlewares.SessionAuth(opts.Sessions))
	admin.Use(middlewares.RoleCheck(db, models.RoleSuperadmin))
	{
		admin.GET("/seed", healthCtrl.SeedCounts)
	}

	return r
}
