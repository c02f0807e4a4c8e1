package main

import (
	"flag"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ridemate/ridemate/internal/pkg/config"
	"github.com/ridemate/ridemate/internal/pkg/constants"
	"github.com/ridemate/ridemate/internal/pkg/database"
	"github.com/ridemate/ridemate/internal/pkg/health"
	"github.com/ridemate/ridemate/internal/pkg/logger"
	"github.com/ridemate/ridemate/internal/pkg/middleware"
	"github.com/ridemate/ridemate/internal/pkg/nsq"
	"github.com/ridemate/ridemate/internal/pkg/observability"
	"github.com/ridemate/ridemate/internal/pkg/server"

	drivershandler "github.com/ridemate/ridemate/services/drivers/handler"
	drivershttp "github.com/ridemate/ridemate/services/drivers/handler/http"
	driversrepo "github.com/ridemate/ridemate/services/drivers/repository"
	driversuc "github.com/ridemate/ridemate/services/drivers/usecase"
	ridesgateway "github.com/ridemate/ridemate/services/rides/gateway"
	rideshandler "github.com/ridemate/ridemate/services/rides/handler"
	rideshttp "github.com/ridemate/ridemate/services/rides/handler/http"
	ridesrepo "github.com/ridemate/ridemate/services/rides/repository"
	ridesuc "github.com/ridemate/ridemate/services/rides/usecase"
	statshandler "github.com/ridemate/ridemate/services/stats/handler"
	statshttp "github.com/ridemate/ridemate/services/stats/handler/http"
	statsrepo "github.com/ridemate/ridemate/services/stats/repository"
	statsuc "github.com/ridemate/ridemate/services/stats/usecase"
	usershandler "github.com/ridemate/ridemate/services/users/handler"
	usershttp "github.com/ridemate/ridemate/services/users/handler/http"
	usersrepo "github.com/ridemate/ridemate/services/users/repository"
	usersuc "github.com/ridemate/ridemate/services/users/usecase"
)

const rateLimitPerMinute = 100

func main() {
	configPath := flag.String("config", "", "path to env config file")
	flag.Parse()

	cfg := config.InitConfig(*configPath)

	zapLogger, err := logger.NewZapLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	pgClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to postgres", logger.Err(err))
	}
	defer pgClient.Close()

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to redis", logger.Err(err))
	}
	defer redisClient.Close()

	var producer *nsq.Producer
	if cfg.NSQ.Enabled {
		producer, err = nsq.NewProducer(cfg.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		defer producer.Stop()
	} else {
		zapLogger.Info("NSQ disabled, ride events will not be published")
	}

	// Repositories
	userRepo := usersrepo.NewUserRepo(pgClient)
	driverRepo := driversrepo.NewDriverRepo(pgClient)
	locationRepo := driversrepo.NewLocationRepo(redisClient)
	rideRepo := ridesrepo.NewRideRepo(pgClient)
	driverFinder := ridesrepo.NewDriverFinder(pgClient)
	statsRepo := statsrepo.NewStatsRepo(pgClient)

	// Gateways
	rideGW := ridesgateway.NewRideGW(producer)

	// Usecases
	userUC := usersuc.NewUserUC(userRepo, cfg)
	driverUC := driversuc.NewDriverUC(driverRepo, locationRepo, userRepo, cfg)
	rideUC := ridesuc.NewRideUC(rideRepo, driverFinder, rideGW, cfg)
	statsUC := statsuc.NewStatsUC(statsRepo)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))
	e.Use(observability.MetricsMiddleware())
	e.Use(middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: redisClient.GetClient(),
		Key:         constants.KeyRateLimit,
		Limit:       rateLimitPerMinute,
		Period:      time.Minute,
	}))

	health.RegisterHealthEndpoints(e, cfg.App.Name)
	observability.RegisterMetricsEndpoint(e)

	usershandler.NewHandler(
		usershttp.NewAuthHandler(userUC),
		usershttp.NewUserHandler(userUC),
		cfg,
	).RegisterRoutes(e)
	drivershandler.NewHandler(drivershttp.NewDriverHandler(driverUC), cfg).RegisterRoutes(e)
	rideshandler.NewHandler(rideshttp.NewRideHandler(rideUC), cfg).RegisterRoutes(e)
	statshandler.NewHandler(statshttp.NewStatsHandler(statsUC), cfg).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, cfg.Server.Port,
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}
