package main

import (
	"context"
	"log"

	"gorm.io/gorm"

	"prism-brain-be/internal/bootstrap"
	"prism-brain-be/internal/config"
	"prism-brain-be/internal/server"
	"prism-brain-be/internal/tracer"
	"prism-brain-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Snapshot Archive Database (optional)
	var gormDB *gorm.DB
	if cfg.Database.Connection != "" {
		var err error
		gormDB, err = database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
	} else {
		log.Println("[INFO] DB_CONNECTION_STRING not set, snapshot archive disabled")
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
