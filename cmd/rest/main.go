package main

import (
	"context"
	"log"

	"legalchat-be/internal/bootstrap"
	"legalchat-be/internal/config"
	"legalchat-be/internal/model"
	"legalchat-be/internal/server"
	"legalchat-be/internal/tracer"
	"legalchat-be/pkg/database"

	"github.com/fatih/color"
	"gorm.io/gorm"
)

func main() {
	// 0. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	var (
		gormDB *gorm.DB
		err    error
	)
	switch cfg.Database.Driver {
	case "postgres":
		gormDB, err = database.NewPostgresDBFromDSN(cfg.Database.Connection)
	default:
		gormDB, err = database.NewSqliteDB(cfg.Database.SqlitePath)
	}
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.ChatSession{}, &model.ChatMessage{}); err != nil {
		log.Panicf("Unable to migrate database schema: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Initialize Server
	srv := server.New(cfg, container)

	color.Green("LegalChat backend ready (driver=%s, model=%s)", cfg.Database.Driver, cfg.Ai.LLMModel)

	// 5. Run Server
	log.Fatal(srv.Run())
}
