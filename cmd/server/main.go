package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/fermerce/backend/internal/application/catalog"
	geoapp "github.com/fermerce/backend/internal/application/geo"
	identityapp "github.com/fermerce/backend/internal/application/identity"
	marketapp "github.com/fermerce/backend/internal/application/market"
	paymentapp "github.com/fermerce/backend/internal/application/payment"
	"github.com/fermerce/backend/internal/infrastructure/auth"
	"github.com/fermerce/backend/internal/infrastructure/config"
	"github.com/fermerce/backend/internal/infrastructure/gateway/paystack"
	"github.com/fermerce/backend/internal/infrastructure/logger"
	"github.com/fermerce/backend/internal/infrastructure/persistence"
	"github.com/fermerce/backend/internal/interfaces/http/handler"
	"github.com/fermerce/backend/internal/interfaces/http/middleware"
	"github.com/fermerce/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting fermerce backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database, with GORM logging routed through zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Redis-backed token blacklist
	blacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer func() {
		if err := blacklist.Close(); err != nil {
			log.Error("Error closing redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// Payment gateway
	gateway, err := paystack.NewAdapter(paystack.ConfigFromApp(cfg.Paystack))
	if err != nil {
		log.Fatal("Failed to configure payment gateway", zap.Error(err))
	}

	// Repositories
	countryRepo := persistence.NewGormCountryRepository(db.DB)
	stateRepo := persistence.NewGormStateRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	addressRepo := persistence.NewGormAddressRepository(db.DB)
	sessionRepo := persistence.NewGormAuthSessionRepository(db.DB)
	sellingUnitRepo := persistence.NewGormSellingUnitRepository(db.DB)
	statusRepo := persistence.NewGormStatusRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	trackingRepo := persistence.NewGormTrackingRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	cardRepo := persistence.NewGormSavedCardRepository(db.DB)
	recipientRepo := persistence.NewGormRecipientRepository(db.DB)
	transferRepo := persistence.NewGormTransferRepository(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, sessionRepo, jwtService, blacklist)
	userService := identityapp.NewUserService(userRepo)
	addressService := identityapp.NewAddressService(addressRepo, stateRepo, countryRepo)
	countryService := geoapp.NewCountryService(countryRepo)
	stateService := geoapp.NewStateService(stateRepo)
	sellingUnitService := catalogapp.NewSellingUnitService(sellingUnitRepo)
	statusService := marketapp.NewStatusService(statusRepo)
	trackingService := marketapp.NewTrackingService(trackingRepo, orderRepo)
	paymentService := paymentapp.NewPaymentService(paymentRepo, cardRepo, orderRepo, statusRepo, gateway)
	cardService := paymentapp.NewCardService(cardRepo)
	recipientService := paymentapp.NewRecipientService(recipientRepo, statusRepo)
	transferService := paymentapp.NewTransferService(transferRepo, recipientRepo, statusRepo)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.GET("/health", healthHandler(db))

	authMiddleware := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths:      router.PublicPaths("v1"),
		Logger:         log,
	})

	router.Setup(engine, "v1", authMiddleware, router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		User:        handler.NewUserHandler(userService),
		Address:     handler.NewAddressHandler(addressService),
		Country:     handler.NewCountryHandler(countryService),
		State:       handler.NewStateHandler(stateService),
		SellingUnit: handler.NewSellingUnitHandler(sellingUnitService),
		Status:      handler.NewStatusHandler(statusService),
		Tracking:    handler.NewTrackingHandler(trackingService),
		Payment:     handler.NewPaymentHandler(paymentService),
		Card:        handler.NewCardHandler(cardService),
		Recipient:   handler.NewRecipientHandler(recipientService),
		Transfer:    handler.NewTransferHandler(transferService),
	})

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}

	log.Info("Server stopped")
}

// healthHandler reports liveness and database reachability
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "degraded",
				"error":  "database unreachable",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
