package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/ace-ify/Blud-Dona/api/handler"
	"github.com/ace-ify/Blud-Dona/internal/config"
	gatewayInfra "github.com/ace-ify/Blud-Dona/internal/infrastructure/gateway"
	"github.com/ace-ify/Blud-Dona/internal/infrastructure/monitor"
	redisInfra "github.com/ace-ify/Blud-Dona/internal/infrastructure/redis"
	"github.com/ace-ify/Blud-Dona/internal/middleware"
	"github.com/ace-ify/Blud-Dona/internal/router"
	"github.com/ace-ify/Blud-Dona/internal/services/lifecycle"
	appValidator "github.com/ace-ify/Blud-Dona/internal/validator"
	"github.com/ace-ify/Blud-Dona/pkg/httpcontext"
	"github.com/ace-ify/Blud-Dona/pkg/logger"
	gatewayRepo "github.com/ace-ify/Blud-Dona/repository/gateway"
	redisRepo "github.com/ace-ify/Blud-Dona/repository/redis"
	dashboardUC "github.com/ace-ify/Blud-Dona/usecase/dashboard"
	profileUC "github.com/ace-ify/Blud-Dona/usecase/profile"
	requestUC "github.com/ace-ify/Blud-Dona/usecase/request"
	sessionUC "github.com/ace-ify/Blud-Dona/usecase/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	gatewayClient, err := gatewayInfra.NewClient(cfg.Gateway)
	if err != nil {
		zapLogger.Fatal("gateway client failed", zap.Error(err))
	}

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	mon := monitor.New(gatewayClient, redisClient, cfg.Monitor.Schedule, zapLogger)
	if err := mon.Start(); err != nil {
		zapLogger.Fatal("monitor failed to start", zap.Error(err))
	}
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	requestRepo := gatewayRepo.NewRequestRepository(gatewayClient)
	appointmentRepo := gatewayRepo.NewAppointmentRepository(gatewayClient)
	notificationRepo := gatewayRepo.NewNotificationRepository(gatewayClient)
	userRepo := gatewayRepo.NewUserRepository(gatewayClient)
	sessionRepo := redisRepo.NewSessionRepository(redisClient, cfg.Session.CacheTTL)

	formValidator := appValidator.New()

	sessionUseCase := sessionUC.New(userRepo, sessionRepo, cfg.Session.CacheTTL, zapLogger)
	dashboardUseCase := dashboardUC.New(requestRepo, appointmentRepo, notificationRepo, zapLogger)
	requestUseCase := requestUC.New(requestRepo, formValidator, zapLogger)
	profileUseCase := profileUC.New(userRepo, formValidator, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Dashboard: apiHandler.NewDashboardHandler(dashboardUseCase, sessionUseCase, ctxAdapter, zapLogger),
		Request:   apiHandler.NewRequestHandler(requestUseCase, sessionUseCase, ctxAdapter, zapLogger),
		Profile:   apiHandler.NewProfileHandler(profileUseCase, sessionUseCase, ctxAdapter, zapLogger),
		Health:    apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.JWTAuth(cfg.JWT.Secret, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
