package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/Rasel9360/building-management-system-server-site/internal/config"
	"github.com/Rasel9360/building-management-system-server-site/internal/handler"
	"github.com/Rasel9360/building-management-system-server-site/internal/handler/middleware"
	"github.com/Rasel9360/building-management-system-server-site/internal/metrics"
	"github.com/Rasel9360/building-management-system-server-site/internal/repository/mongodb"
	"github.com/Rasel9360/building-management-system-server-site/internal/service"
	"github.com/Rasel9360/building-management-system-server-site/pkg/jwt"
	"github.com/Rasel9360/building-management-system-server-site/pkg/lock"
	"github.com/Rasel9360/building-management-system-server-site/pkg/payment"
	"github.com/Rasel9360/building-management-system-server-site/pkg/validator"
)

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := slog.Default()

	// Initialize database connection
	client, err := initDB(parent, cfg)
	if err != nil {
		return err
	}
	defer closeDB(client)
	db := client.Database(cfg.Mongo.Database)
	log.Info("database connection established", "database", cfg.Mongo.Database)

	indexCtx, cancel := context.WithTimeout(parent, 30*time.Second)
	err = mongodb.EnsureIndexes(indexCtx, db)
	cancel()
	if err != nil {
		return err
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.NewCollector(registry)

	// Booking lock: shared through Redis when configured
	var locker lock.Locker
	if cfg.Redis.Enabled() {
		redisClient, err := initRedis(parent, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("error closing redis connection", "error", err)
			}
		}()
		locker = lock.NewRedisLocker(redisClient, cfg.Booking.LockTTL)
		log.Info("redis connection established", "addr", cfg.Redis.Addr)
	} else {
		locker = lock.NewLocalLocker(cfg.Booking.LockTTL)
		log.Info("REDIS_ADDR not set, using in-process booking lock")
	}

	tokenService, err := jwt.NewTokenService([]byte(cfg.JWT.Secret), cfg.JWT.Expiry)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}

	validate := validator.NewValidator()

	// Initialize repositories
	userRepo := mongodb.NewUserRepository(db)
	agreementRepo := mongodb.NewAgreementRepository(db)
	apartmentRepo := mongodb.NewApartmentRepository(db)
	couponRepo := mongodb.NewCouponRepository(db)
	announcementRepo := mongodb.NewAnnouncementRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	roleService := service.NewRoleService(userRepo)
	agreementService := service.NewAgreementService(agreementRepo, locker, recorder)
	apartmentService := service.NewApartmentService(apartmentRepo)
	couponService := service.NewCouponService(couponRepo)
	announcementService := service.NewAnnouncementService(announcementRepo)
	paymentService := service.NewPaymentService(paymentRepo, payment.NewStripeProcessor(cfg.Stripe.SecretKey))

	app := fiber.New(fiber.Config{
		AppName:      "Building API",
		ErrorHandler: handler.ErrorHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})

	// Setup global middlewares
	app.Use(middleware.RecoveryMiddleware())
	app.Use(middleware.LoggerMiddleware(log, recorder))
	app.Use(middleware.CORSMiddleware(cfg))

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, 10*time.Minute)
	defer limiter.Stop()

	handler.SetupRoutes(app,
		handler.Handlers{
			Auth:         handler.NewAuthHandler(tokenService, validate),
			User:         handler.NewUserHandler(userService, validate),
			Agreement:    handler.NewAgreementHandler(agreementService, validate),
			Apartment:    handler.NewApartmentHandler(apartmentService),
			Coupon:       handler.NewCouponHandler(couponService, validate),
			Announcement: handler.NewAnnouncementHandler(announcementService, validate),
			Payment:      handler.NewPaymentHandler(paymentService, validate),
			Health: handler.NewHealthHandler(func(ctx context.Context) error {
				return client.Ping(ctx, readpref.Primary())
			}),
			Metrics: metrics.Handler(registry),
		},
		handler.Guards{
			Auth:         middleware.AuthMiddleware(tokenService, recorder),
			RequireAdmin: middleware.RequireAdmin(roleService, recorder),
			RateLimit:    limiter.Handler(),
		},
	)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		log.Info("server starting", "addr", addr, "environment", cfg.Server.Environment)
		if err := app.Listen(addr); err != nil {
			log.Error("server failed to start", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
	return nil
}

// initDB connects to MongoDB with retry logic
func initDB(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	var (
		client *mongo.Client
		err    error
	)

	maxRetries := 5
	retryInterval := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		client, err = mongodb.NewClient(connectCtx, cfg.Mongo.ConnectionURI())
		cancel()
		if err == nil {
			return client, nil
		}

		slog.Warn("failed to connect to database",
			"attempt", i+1,
			"max_attempts", maxRetries,
			"error", err,
		)
		if i < maxRetries-1 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("failed to connect to database: %w", ctx.Err())
			case <-time.After(retryInterval):
			}
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

func closeDB(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		slog.Error("error closing database connection", "error", err)
	}
}

// initRedis initializes Redis client and verifies connection
func initRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		if closeErr := client.Close(); closeErr != nil {
			slog.Error("error closing redis after ping failure", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}
