package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	_ "github.com/123fakturera/pricelist-system/docs"
	"github.com/123fakturera/pricelist-system/internal/api/handler"
	"github.com/123fakturera/pricelist-system/internal/api/middleware"
	"github.com/123fakturera/pricelist-system/internal/core/service"
	mongodb "github.com/123fakturera/pricelist-system/internal/infrastructure/db/mongo"
	redisdb "github.com/123fakturera/pricelist-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("pricelist"))
	e.Use(middleware.Locale())

	// --- Dependencies ---
	authRepo := mongodb.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, jwtSecret, 24*time.Hour)
	authHandler := handler.NewAuthHandler(authService)

	translationRepo := mongodb.NewTranslationRepository(db)
	translationCache := redisdb.NewTranslationCache(rdb)
	translationService := service.NewTranslationService(translationRepo, translationCache, log)
	translationHandler := handler.NewTranslationHandler(translationService)

	termsRepo := mongodb.NewTermsRepository(db)
	termsHandler := handler.NewTermsHandler(service.NewTermsService(termsRepo))

	pricelistRepo := mongodb.NewPricelistRepository(db)
	pricelistService := service.NewPricelistService(pricelistRepo, log)
	pricelistHandler := handler.NewPricelistHandler(pricelistService)

	authMiddleware := middleware.Auth(jwtSecret)

	// Login is throttled per client IP; everything else is unmetered.
	loginLimiter := echomiddleware.RateLimiter(
		echomiddleware.NewRateLimiterMemoryStore(rate.Limit(5)),
	)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register, loginLimiter)
	e.POST("/auth/login", authHandler.Login, loginLimiter)
	e.POST("/translation/change", translationHandler.Change)
	e.GET("/translation/support", translationHandler.Support)
	e.GET("/terms", termsHandler.Get)

	// --- Authenticated routes ---
	pl := e.Group("/pricelist", authMiddleware)
	pl.GET("", pricelistHandler.List)
	pl.POST("", pricelistHandler.Create)
	pl.PUT("/:id", pricelistHandler.Update)
	pl.DELETE("/:id", pricelistHandler.Delete)

	// --- Observability & docs ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
