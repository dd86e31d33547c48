package bootstrap

import (
	"log"

	"github.com/mrsameer/rag-with-gemini/internal/config"
	"github.com/mrsameer/rag-with-gemini/internal/controller"
	"github.com/mrsameer/rag-with-gemini/internal/handler"
	"github.com/mrsameer/rag-with-gemini/internal/pkg/logger"
	"github.com/mrsameer/rag-with-gemini/internal/repository/memory"
	"github.com/mrsameer/rag-with-gemini/internal/service"
	"github.com/mrsameer/rag-with-gemini/internal/websocket"
	"github.com/mrsameer/rag-with-gemini/pkg/genai"
	pktNats "github.com/mrsameer/rag-with-gemini/pkg/nats"
)

type Container struct {
	// Controllers
	SessionController  controller.ISessionController
	StoreController    controller.IStoreController
	DocumentController controller.IDocumentController
	ChatController     controller.IChatController

	// Background services (exposed for main.go to run)
	ProgressRelay IProgressRelayRunner

	// WebSockets
	ProgressHandler *handler.ProgressHandler
	WebSocketHub    *websocket.Hub

	Logger logger.ILogger
}

// IProgressRelayRunner re-exports the relay contract so main.go does not
// import the service package directly.
type IProgressRelayRunner = service.IProgressRelay

func NewContainer(cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	if cfg.Keys.GoogleGemini == "" {
		log.Println("[WARN] GEMINI_API_KEY is empty; remote calls will be rejected")
	}
	client := genai.NewClient(cfg.Keys.GoogleGemini)

	// In-memory session storage
	sessionRepo := memory.NewSessionRepository()

	// 2. Event bus
	progressPublisher := service.NewProgressPublisher(sysLogger)

	// NATS mirror is optional; a missing broker only costs the mirror.
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/progress.log")
	wsHub := websocket.NewHub(wsLogger)
	go wsHub.Run()

	progressRelay := service.NewProgressRelay(progressPublisher, wsHub, natsPub, sysLogger)

	// 3. Services
	storeService := service.NewStoreService(
		client,
		sessionRepo,
		sysLogger,
		cfg.FileSearch.StoreName,
		cfg.FileSearch.StoreDisplayName,
	)
	documentService := service.NewDocumentService(client, sysLogger)
	ingestService := service.NewIngestService(
		client,
		service.NewOperationPoller(),
		progressPublisher,
		sysLogger,
		cfg.FileSearch.OperationTimeout,
	)
	chatService := service.NewChatService(
		client,
		storeService,
		sessionRepo,
		sysLogger,
		cfg.FileSearch.Model,
	)

	// 4. Controllers
	return &Container{
		SessionController: controller.NewSessionController(sessionRepo, chatService),
		StoreController:   controller.NewStoreController(storeService, documentService, sessionRepo),
		DocumentController: controller.NewDocumentController(
			ingestService,
			documentService,
			storeService,
			sessionRepo,
			cfg.FileSearch.ChunkTokens,
			cfg.FileSearch.OverlapTokens,
		),
		ChatController:  controller.NewChatController(chatService, sessionRepo),
		ProgressRelay:   progressRelay,
		ProgressHandler: handler.NewProgressHandler(wsHub, wsLogger),
		WebSocketHub:    wsHub,
		Logger:          sysLogger,
	}
}
