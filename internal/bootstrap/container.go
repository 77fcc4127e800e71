package bootstrap

import (
	"context"
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"prism-brain-be/internal/config"
	"prism-brain-be/internal/controller"
	"prism-brain-be/internal/handler"
	"prism-brain-be/internal/pkg/logger"
	"prism-brain-be/internal/pkg/mailer"
	"prism-brain-be/internal/pkg/serverutils"
	"prism-brain-be/internal/repository/contract"
	"prism-brain-be/internal/repository/implementation"
	"prism-brain-be/internal/repository/memory"
	"prism-brain-be/internal/service"
	"prism-brain-be/internal/websocket"
	"prism-brain-be/pkg/connector/figma"
	"prism-brain-be/pkg/connector/transcribe"
	pktNats "prism-brain-be/pkg/nats"
)

type Container struct {
	// Controllers
	ProjectController controller.IProjectController
	IngestController  controller.IIngestController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Activity Feed
	ActivityHandler *handler.ActivityHandler
	WebSocketHub    *websocket.Hub
}

// NewContainer wires every dependency by hand. db may be nil; the report
// snapshot archive is simply skipped then.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	var emailService mailer.IEmailService
	if cfg.SMTP.Host != "" {
		emailService = mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.SenderName,
		)
	} else {
		log.Println("[INFO] SMTP not configured, report sharing disabled")
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/activity.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Repositories
	projectRepo := memory.NewProjectRepository()

	var snapshotRepo contract.SnapshotRepository
	if db != nil {
		snapshotRepo = implementation.NewSnapshotRepository(db)
	}

	// 4. Services
	locker := service.NewProjectLocker()

	publisherService := service.NewPublisherService(pubSub, cfg.App.RefreshTopic)

	projectService := service.NewProjectService(
		projectRepo,
		snapshotRepo,
		locker,
		emailService,
		natsPub,
		wsHub,
		sysLogger,
	)

	figmaClient := figma.NewClient(cfg.Connectors.FigmaToken)
	transcriber := transcribe.NewClient(cfg.Connectors.WhisperBaseURL, cfg.Connectors.WhisperModel)

	ingestService := service.NewIngestService(
		projectRepo,
		locker,
		figmaClient,
		transcriber,
		publisherService,
		natsPub,
		wsHub,
		sysLogger,
	)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.RefreshTopic,
		projectService,
	)

	// Activity audit trail (Worker)
	if natsSub != nil {
		activityService := service.NewActivityService(natsSub, wsLogger)
		go activityService.Start()
	}

	// Handler
	activityHandler := handler.NewActivityHandler(wsHub, wsLogger)

	// Auth is optional; without a secret the API runs open.
	var auth fiber.Handler
	if cfg.App.JwtSecret != "" {
		auth = serverutils.NewJwtMiddleware(cfg.App.JwtSecret)
	}

	// 5. Controllers
	return &Container{
		ProjectController: controller.NewProjectController(projectService, auth),
		IngestController:  controller.NewIngestController(ingestService, auth),
		ConsumerService:   consumerService,
		ActivityHandler:   activityHandler,
		WebSocketHub:      wsHub,
	}
}
