package main

import (
	"context"
	"log"

	"screening-booking/cmd"
	"screening-booking/internal/data/repository"
	"screening-booking/internal/wire"
	"screening-booking/pkg/database"
	"screening-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		logger.Fatal("Failed to ensure schema", zap.Error(err))
	}

	repos := repository.NewRepository(db, logger)

	app := wire.Wiring(repos, config, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
