package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Teru3301/FinanceApp/api"
	"github.com/Teru3301/FinanceApp/internal/auth"
	"github.com/Teru3301/FinanceApp/internal/config"
	"github.com/Teru3301/FinanceApp/internal/logging"
	"github.com/Teru3301/FinanceApp/internal/service"
	"github.com/Teru3301/FinanceApp/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("finance-app starting")

	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(context.Background(), envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	issuer := auth.NewTokenIssuer(envConfig.JWTSecret, auth.TokenTTL)
	svc := service.NewService(dbStorage, issuer, envConfig.BcryptCost)

	httpRest := api.Rest{
		Logger:   logger,
		Port:     envConfig.HTTPPort,
		Verifier: issuer,
		Services: svc,
	}
	if err := httpRest.Serve(); err != nil {
		logrus.WithError(err).Fatal("api.Rest.Serve")
	}
}
