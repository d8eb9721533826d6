package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	httpapi "ptoshare-backend/internal/api/http"
	"ptoshare-backend/internal/config"
	"ptoshare-backend/internal/logger"
	"ptoshare-backend/internal/repository/postgres"
	"ptoshare-backend/internal/security"
	"ptoshare-backend/internal/service"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting PTO Share backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "health_address", cfg.GetHealthAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize Database
	db, err := postgres.Open(ctx, cfg.GetDatabaseConnectionString(), cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)

	// Initialize outbound notification channels
	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	pushSvc, err := service.NewPushService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		logger.Error("Failed to initialize push notifications", "error", err)
		log.Fatalf("Failed to initialize push notifications: %v", err)
	}

	// Initialize Services
	ledgerSvc := service.NewLedgerService(store.LedgerStore)
	svcs := httpapi.Services{
		Auth: service.NewAuthService(
			store.UserRepository,
			store.PasswordResetRepository,
			tokenManager,
			emailSvc,
			cfg.App.PublicURL,
			time.Duration(cfg.App.PasswordResetExpiryMins)*time.Minute,
		),
		User:           service.NewUserService(store.UserRepository, store.CompanyRepository),
		Company:        service.NewCompanyService(store.CompanyRepository, store.UserRepository),
		SupportRequest: service.NewSupportRequestService(store.SupportRequestRepository, store.DonationRepository, store.UserRepository),
		Donation: service.NewDonationService(
			ledgerSvc,
			store.DonationRepository,
			store.UserRepository,
			store.NotificationRepository,
			emailSvc,
			pushSvc,
		),
		Stats:        service.NewStatsService(store.StatsRepository, int32(cfg.App.TopDonorsLimit)),
		Notification: service.NewNotificationService(store.NotificationRepository),
		Admin:        service.NewAdminService(store.UserRepository),
	}

	limiter := httpapi.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.TrustedProxies...)
	router := httpapi.NewRouter(svcs, tokenManager, httpapi.RouterOptions{
		StaticDir: cfg.Static.Dir,
		Limiter:   limiter,
		Ping:      db.PingContext,
	})

	httpServer := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	// gRPC health checking for load balancers and orchestrators
	healthSrv := health.NewServer()
	grpcServer := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthSrv)
	// Register reflection service for grpcurl
	reflection.Register(grpcServer)

	healthLis, err := net.Listen("tcp", cfg.GetHealthAddress())
	if err != nil {
		logger.Error("Failed to listen", "error", err, "address", cfg.GetHealthAddress())
		log.Fatalf("Failed to listen: %v", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("HTTP server listening", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("gRPC health server listening", "address", cfg.GetHealthAddress())
		return grpcServer.Serve(healthLis)
	})

	g.Go(func() error {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			status := healthpb.HealthCheckResponse_SERVING
			pingCtx, cancel := context.WithTimeout(gctx, 5*time.Second)
			if err := db.PingContext(pingCtx); err != nil {
				logger.Warn("Database ping failed", "error", err)
				status = healthpb.HealthCheckResponse_NOT_SERVING
			}
			cancel()
			healthSrv.SetServingStatus("", status)
			limiter.Prune()

			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
			}
		}
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down servers...")
		healthSrv.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := httpServer.Shutdown(shutdownCtx)
		grpcServer.GracefulStop()
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped. Goodbye!")
}
