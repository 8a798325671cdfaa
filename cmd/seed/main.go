// main.go
//
// Multi-step job application form state service.
// One-shot seeder: loads .env, migrates and inserts the reference data.

package main

import (
	"flag"
	"log"

	"github.com/hireflow/formstate/internal/config"
	"github.com/hireflow/formstate/internal/database"
	"github.com/hireflow/formstate/internal/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	if envFilename != "" {
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer zlog.Sync()

	db, err := database.Connect(cfg, zlog)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		zlog.Fatal("migrations failed", zap.Error(err))
	}

	if err := database.Seed(db, zlog); err != nil {
		zlog.Fatal("seed failed", zap.Error(err))
	}

	zlog.Info("seed complete")
}
