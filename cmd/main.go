package main

import (
	"os"
	"os/signal"
	"syscall"

	"Recipe-Book/cmd/config"
	migration "Recipe-Book/cmd/database/migrate"
	"Recipe-Book/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("connecting database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("migrating database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("building app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = ":8080"
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(port); err != nil {
			log.Fatalf("server failed to start: %v", err)
		}
	}()

	<-quit
	log.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Errorf("error during shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("server stopped")
}
