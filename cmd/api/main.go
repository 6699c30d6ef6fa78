package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/config"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/handler"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/model"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/repository"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/service"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/ws"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/pkg/database"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Setup Logger
	zlog, err := logger.New(cfg.Server.Env, cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	zlog.Info("Starting pos back office",
		zap.String("environment", cfg.Server.Env),
		zap.Int("port", cfg.Server.Port))

	// 3. Setup Database
	db, err := database.Open(cfg.Database, zlog)
	if err != nil {
		zlog.Fatal("Failed to connect to database", append(cfg.Database.Fields(), zap.Error(err))...)
	}
	zlog.Info("Database connection established", cfg.Database.Fields()...)

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(model.All()...); err != nil {
			zlog.Fatal("Failed to migrate schema", zap.Error(err))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Setup WebSocket Hub
	var hub *ws.Hub
	var notifier service.Notifier
	if cfg.WS.Enabled {
		hub = ws.NewHub(zlog)
		go hub.Run(ctx)
		notifier = hub
	}

	// 5. Dependency Injection (Wiring Layers)
	store := repository.NewStore(db)
	services := service.NewServices(service.Deps{
		Store:    store,
		Notifier: notifier,
		Logger:   zlog,
	})

	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	app := handler.NewApp(handler.Options{
		Services:    services,
		Store:       store,
		Logger:      zlog,
		Hub:         hub,
		MetricsPath: metricsPath,
	})

	// 6. Graceful Shutdown
	go func() {
		if err := app.Listen(cfg.Addr()); err != nil {
			zlog.Panic("Server error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	zlog.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
		zlog.Error("Server forced to shutdown", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	zlog.Info("Server exited")
}
