package main

import (
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/caronago/caronago/internal/pkg/config"
	"github.com/caronago/caronago/internal/pkg/database"
	httppkg "github.com/caronago/caronago/internal/pkg/http"
	"github.com/caronago/caronago/internal/pkg/logger"
	"github.com/caronago/caronago/internal/pkg/middleware"
	nsqpkg "github.com/caronago/caronago/internal/pkg/nsq"
	"github.com/caronago/caronago/internal/pkg/server"
	"github.com/caronago/caronago/internal/utils"

	addressGateway "github.com/caronago/caronago/services/addresses/gateway"
	addressHandler "github.com/caronago/caronago/services/addresses/handler"
	addressHTTP "github.com/caronago/caronago/services/addresses/handler/http"
	addressRepository "github.com/caronago/caronago/services/addresses/repository"
	addressUsecase "github.com/caronago/caronago/services/addresses/usecase"
	feedbackGateway "github.com/caronago/caronago/services/feedback/gateway"
	feedbackHandler "github.com/caronago/caronago/services/feedback/handler"
	feedbackHTTP "github.com/caronago/caronago/services/feedback/handler/http"
	feedbackRepository "github.com/caronago/caronago/services/feedback/repository"
	feedbackUsecase "github.com/caronago/caronago/services/feedback/usecase"
	travelGateway "github.com/caronago/caronago/services/travels/gateway"
	travelHandler "github.com/caronago/caronago/services/travels/handler"
	travelHTTP "github.com/caronago/caronago/services/travels/handler/http"
	travelRepository "github.com/caronago/caronago/services/travels/repository"
	travelUsecase "github.com/caronago/caronago/services/travels/usecase"
	userGateway "github.com/caronago/caronago/services/users/gateway"
	userHandler "github.com/caronago/caronago/services/users/handler"
	userHTTP "github.com/caronago/caronago/services/users/handler/http"
	userRepository "github.com/caronago/caronago/services/users/repository"
	userUsecase "github.com/caronago/caronago/services/users/usecase"
)

func main() {
	cfg := config.InitConfig(".env")

	zapLogger, err := logger.InitZapLoggerFromConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	postgres, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to postgres", logger.Err(err))
	}
	defer postgres.Close()

	redis, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to redis", logger.Err(err))
	}
	defer redis.Close()

	producer, err := nsqpkg.NewProducer(cfg.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to nsq", logger.Err(err))
	}
	defer producer.Stop()

	db := postgres.GetDB()

	mediaClient := httppkg.NewAPIKeyClient(cfg.Media.BaseURL, cfg.Media.APIKey)
	if cfg.Media.Timeout > 0 {
		mediaClient.SetTimeout(time.Duration(cfg.Media.Timeout) * time.Second)
	}

	// Repositories
	userRepo := userRepository.NewUserRepo(cfg, db)
	tokenRepo := userRepository.NewTokenRepo(redis)
	travelRepo := travelRepository.NewTravelRepo(cfg, db)
	addressRepo := addressRepository.NewAddressRepo(cfg, db)
	feedbackRepo := feedbackRepository.NewFeedbackRepo(cfg, db)

	// Gateways
	userGW := userGateway.NewUserGW(producer, mediaClient, cfg)
	travelGW := travelGateway.NewTravelGW(producer)
	addressGW := addressGateway.NewAddressGW(cfg)
	feedbackGW := feedbackGateway.NewFeedbackGW(producer)

	// Usecases
	userUC := userUsecase.NewUserUC(userRepo, tokenRepo, userGW, cfg)
	travelUC := travelUsecase.NewTravelUC(travelRepo, travelGW, cfg)
	addressUC := addressUsecase.NewAddressUC(addressRepo, addressGW, cfg)
	feedbackUC := feedbackUsecase.NewFeedbackUC(feedbackRepo, feedbackGW, cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(echomw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return utils.SuccessResponse(c, http.StatusOK, "OK", map[string]string{
			"service": cfg.App.Name,
			"version": cfg.App.Version,
		})
	})

	authMW := middleware.JWTAuthMiddleware(cfg.JWT, tokenRepo)

	userHandler.NewHandler(
		userHTTP.NewUserHandler(userUC),
		userHTTP.NewAuthHandler(userUC),
	).RegisterRoutes(e, authMW)
	travelHandler.NewHandler(travelHTTP.NewTravelHandler(travelUC)).RegisterRoutes(e, authMW)
	addressHandler.NewHandler(addressHTTP.NewAddressHandler(addressUC)).RegisterRoutes(e, authMW)
	feedbackHandler.NewHandler(feedbackHTTP.NewFeedbackHandler(feedbackUC)).RegisterRoutes(e, authMW)

	srv := server.NewGracefulServer(e, zapLogger, cfg.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server exited with error", logger.Err(err))
	}
}
