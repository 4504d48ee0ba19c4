package main

import (
	"context"
	"fmt"
	"os"

	"workshop-service/internal/config"
	"workshop-service/internal/db"
	httphandler "workshop-service/internal/http"
	"workshop-service/internal/logger"
	"workshop-service/internal/repository"
	"workshop-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to create upload directory")
	}

	userRepo := repository.NewUserRepository(database)
	clientRepo := repository.NewClientRepository(database)
	vehicleRepo := repository.NewVehicleRepository(database)
	recordRepo := repository.NewServiceRecordRepository(database)

	authService := service.NewAuthService(userRepo)
	clientService := service.NewClientService(clientRepo)
	vehicleService := service.NewVehicleService(vehicleRepo, clientRepo)
	recordService := service.NewServiceRecordService(recordRepo, vehicleRepo)
	importService := service.NewImportService(vehicleRepo, clientRepo)

	created, err := authService.EnsureAdminUser(context.Background(), cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to bootstrap admin user")
	}
	if created {
		appLogger.Info().Str("username", cfg.Admin.Username).Msg("default admin user created")
	}

	handler := httphandler.NewHandler(
		authService,
		clientService,
		vehicleService,
		recordService,
		importService,
		cfg.UploadDir,
		appLogger,
	)
	router := httphandler.NewRouter(handler, cfg, appLogger)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting workshop service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
