package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appbrowse "github.com/pankecas/backend/internal/application/browse"
	"github.com/pankecas/backend/internal/application/ordering"
	"github.com/pankecas/backend/internal/domain/browse"
	"github.com/pankecas/backend/internal/domain/cart"
	"github.com/pankecas/backend/internal/infrastructure/config"
	"github.com/pankecas/backend/internal/infrastructure/handoff"
	"github.com/pankecas/backend/internal/infrastructure/logger"
	"github.com/pankecas/backend/internal/infrastructure/menu"
	"github.com/pankecas/backend/internal/infrastructure/persistence"
	"github.com/pankecas/backend/internal/infrastructure/tracking"
	"github.com/pankecas/backend/internal/interfaces/http/handler"
	"github.com/pankecas/backend/internal/interfaces/http/middleware"
	"github.com/pankecas/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Cardápio Digital backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Load the menu catalog
	catalog, err := menu.Load(cfg.Catalog.MenuFile)
	if err != nil {
		log.Fatal("Failed to load menu", zap.String("file", cfg.Catalog.MenuFile), zap.Error(err))
	}
	log.Info("Menu loaded",
		zap.String("file", cfg.Catalog.MenuFile),
		zap.Int("items", len(catalog.Items())),
		zap.Int("categories", len(catalog.Categories())),
	)

	// Session stores: Redis when enabled, in-memory otherwise
	var carts cart.Repository
	var states browse.Repository
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to connect to Redis", zap.String("addr", cfg.Redis.Addr()), zap.Error(err))
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Error("Error closing Redis client", zap.Error(err))
			}
		}()
		carts = persistence.NewRedisCartRepository(client, catalog, cfg.Session.TTL)
		states = persistence.NewRedisBrowseRepository(client, cfg.Session.TTL)
		log.Info("Redis connected", zap.String("addr", cfg.Redis.Addr()))
	} else {
		carts = persistence.NewMemoryCartRepository()
		states = persistence.NewMemoryBrowseRepository()
	}

	// Conversion channels. The analytics sink always runs; the pixel and
	// relay channels are optional.
	var sink tracking.EventSink
	var memorySink *tracking.MemorySink
	switch cfg.Tracking.SinkMode {
	case "log":
		sink = tracking.NewLogSink(log)
	default:
		memorySink = tracking.NewMemorySink()
		sink = memorySink
	}

	var pixel tracking.PurchaseTracker
	if cfg.Tracking.PixelEnabled {
		pixel = tracking.NewLogTracker(log)
	}

	var relay *tracking.RelayClient
	if cfg.Tracking.RelayEnabled {
		relay, err = tracking.NewRelayClient(&tracking.RelayConfig{
			Endpoint:       cfg.Tracking.RelayEndpoint,
			AccessToken:    cfg.Tracking.RelayAccessToken,
			TimeoutSeconds: cfg.Tracking.RelayTimeoutSeconds,
		})
		if err != nil {
			log.Fatal("Failed to configure conversion relay", zap.Error(err))
		}
		log.Info("Conversion relay enabled", zap.String("endpoint", cfg.Tracking.RelayEndpoint))
	}

	dispatcher := tracking.NewDispatcher(sink, pixel, relay, log)

	// Messaging handoff scheduler
	scheduler := handoff.NewScheduler(handoff.NewLogOpener(log), cfg.Handoff.Delay, log)

	// Application services
	browseService := appbrowse.NewService(catalog, states, cfg.Observer, log)
	cartService := ordering.NewCartService(carts, catalog, dispatcher, log)
	checkoutService := ordering.NewCheckoutService(carts, dispatcher, scheduler, cfg.Handoff.StoreNumber, log)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID, panic recovery, request logging,
	// CORS, then the session cookie
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.Session(middleware.SessionConfig{
		CookieName: cfg.Session.CookieName,
		MaxAge:     int(cfg.Session.TTL.Seconds()),
		Secure:     cfg.Session.Secure,
	}))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewMenuHandler(browseService)).
		Register(handler.NewCartHandler(cartService)).
		Register(handler.NewOrderHandler(checkoutService)).
		Register(handler.NewSystemHandler())

	// The data-layer endpoint only exists when events are buffered
	if memorySink != nil {
		r.Register(handler.NewTrackingHandler(memorySink))
	}

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	// Cancel pending handoffs and wait for in-flight conversion reports
	scheduler.Shutdown()
	dispatcher.Flush()

	log.Info("Server exited gracefully")
}
