package main

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/ridebook/internal/pkg/database"
	"github.com/piresc/ridebook/internal/pkg/health"
	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/piresc/ridebook/internal/pkg/server"
	"github.com/piresc/ridebook/internal/pkg/token"
	authHandler "github.com/piresc/ridebook/services/auth/handler"
	authRepository "github.com/piresc/ridebook/services/auth/repository"
	authUsecase "github.com/piresc/ridebook/services/auth/usecase"
	ridesHandler "github.com/piresc/ridebook/services/rides/handler"
	ridesRepository "github.com/piresc/ridebook/services/rides/repository"
	ridesUsecase "github.com/piresc/ridebook/services/rides/usecase"
	"github.com/sirupsen/logrus"
)

// newRouter wires repositories, use cases and handlers onto a fresh Echo
// instance. The OTP store lives as long as the returned router.
func newRouter(configs *models.Config, log logrus.FieldLogger, store database.DocumentStore) *echo.Echo {
	e := server.NewEcho(configs.Server, log)

	healthService := health.NewHealthService(log)
	healthService.AddChecker("document_store", health.CheckerFunc(store.Ping))
	health.RegisterHealthEndpoints(e, configs.App.Name, healthService)

	otpStore := authRepository.NewOTPStore()
	authUC := authUsecase.NewAuthUC(otpStore, configs, log)
	authHandler.NewHandler(authUC).RegisterRoutes(e)

	verifier := token.NewStaticVerifier(configs.Auth.SessionToken)
	rideRepo := ridesRepository.NewRideRepository(store)
	rideUC := ridesUsecase.NewRideUC(rideRepo, log)
	ridesHandler.NewHandler(rideUC, verifier).RegisterRoutes(e)

	return e
}
