package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fixserve/account-service/internal/api/handler"
	"github.com/fixserve/account-service/internal/api/middleware"
	"github.com/fixserve/account-service/internal/core/domain"
	"github.com/fixserve/account-service/internal/core/service"
	mongostore "github.com/fixserve/account-service/internal/infrastructure/db/mongo"
	redisdb "github.com/fixserve/account-service/internal/infrastructure/db/redis"
	"github.com/fixserve/account-service/internal/infrastructure/http/handlers"
	"github.com/fixserve/account-service/internal/pkg/config"
	"github.com/fixserve/account-service/internal/security"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	adminStore := mongostore.NewAdminStore(db)
	technicianStore := mongostore.NewTechnicianStore(db)
	userStore := mongostore.NewUserStore(db)

	hasher := security.NewBcryptHasher()
	policy := security.NewStrengthPolicy()
	issuer := security.NewJWTIssuer(cfg.JWTSecret, cfg.TokenTTL)
	profileCache := redisdb.NewProfileCache(rdb, log)

	authService := service.NewAuthService(adminStore, technicianStore, userStore, hasher, policy, issuer, log)
	profileService := service.NewProfileService(adminStore, technicianStore, userStore, profileCache, log)

	authHandler := handler.NewAuthHandler(authService, cfg.TokenTTL)
	profileHandler := handler.NewProfileHandler(profileService)
	authMiddleware := middleware.Auth(issuer)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.POST("/auth/register/user", authHandler.RegisterUser)
	e.POST("/auth/register/technician", authHandler.RegisterTechnician,
		authMiddleware, middleware.RequireRole(domain.RoleAdmin))
	e.PUT("/auth/password", authHandler.ChangePassword, authMiddleware)

	// --- Profile routes ---
	e.GET("/profile", profileHandler.GetProfile, authMiddleware)
	e.PUT("/profile", profileHandler.UpdateProfile, authMiddleware)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
