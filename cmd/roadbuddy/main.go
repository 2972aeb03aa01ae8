package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/Mat0512/roadbuddy-client/internal/pkg/config"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/health"
	httpclient "github.com/Mat0512/roadbuddy-client/internal/pkg/http"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/logger"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/middleware"
	natspkg "github.com/Mat0512/roadbuddy-client/internal/pkg/nats"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/realtime"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/retry"
	"github.com/Mat0512/roadbuddy-client/internal/pkg/server"
	wspkg "github.com/Mat0512/roadbuddy-client/internal/pkg/websocket"
	chatGateway "github.com/Mat0512/roadbuddy-client/services/chat/gateway"
	chatHandler "github.com/Mat0512/roadbuddy-client/services/chat/handler"
	chatUsecase "github.com/Mat0512/roadbuddy-client/services/chat/usecase"
	"github.com/Mat0512/roadbuddy-client/services/requests/gateway"
	"github.com/Mat0512/roadbuddy-client/services/requests/handler"
	"github.com/Mat0512/roadbuddy-client/services/requests/repository"
	"github.com/Mat0512/roadbuddy-client/services/requests/usecase"
	trackingGateway "github.com/Mat0512/roadbuddy-client/services/tracking/gateway"
	trackingUsecase "github.com/Mat0512/roadbuddy-client/services/tracking/usecase"
)

func main() {
	appName := "roadbuddy-client"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/roadbuddy.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Connect to NATS, retrying so a briefly unavailable broker does not
	// fail startup
	var natsClient *natspkg.Client
	retrier := retry.NewWithDefaults()
	err = retrier.Execute(context.Background(), func(ctx context.Context) error {
		var dialErr error
		natsClient, dialErr = natspkg.NewClient(configs.NATS.URL,
			nats.MaxReconnects(-1),
			nats.ReconnectWait(2*time.Second),
		)
		return dialErr
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Realtime channel on top of NATS
	rt := realtime.New(natsClient)

	// Backend REST client
	backendClient := httpclient.NewClient(
		configs.Backend.BaseURL,
		configs.Backend.AuthToken,
		time.Duration(configs.Backend.Timeout)*time.Second,
	)

	// Countdown status store
	store := repository.NewStatusStore(configs)

	// WebSocket manager for dashboard views
	wsManager := wspkg.NewManager(configs.JWT)
	notifier := gateway.NewWSNotifier(wsManager)

	// Requests service
	requestGW := gateway.NewRequestGW(backendClient)
	requestUC := usecase.NewLifecycleUC(configs, requestGW, store, notifier)

	// Tracking service
	trackingGW := trackingGateway.NewTrackingGW(backendClient, rt)
	geolocator := trackingGateway.NewHTTPGeolocator(configs)
	trackingUC := trackingUsecase.NewRelayUC(configs, trackingGW, geolocator)

	// Chat service
	chatGW := chatGateway.NewChatGW(backendClient, rt)
	chatUC := chatUsecase.NewChatUC(chatGW)

	// Handlers
	requestsHandler := handler.NewHandler(requestUC, trackingUC, chatUC, store, rt, wsManager, configs)
	chatRoutes := chatHandler.NewHandler(chatUC)

	requestsHandler.Start()

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	readiness := health.NewReadinessChecker()
	readiness.Add("nats", health.NewNATSHealthChecker(natsClient))
	readiness.Add("backend", health.NewBackendHealthChecker(backendClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, readiness)
	requestsHandler.RegisterRoutes(e)
	chatRoutes.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.OnShutdown(requestsHandler.Stop)
	srv.OnShutdown(func() {
		if closer, ok := requestUC.(interface{ Close() }); ok {
			closer.Close()
		}
	})

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
