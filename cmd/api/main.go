package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contact-relay/config"
	"contact-relay/internal/delivery/http/admin"
	v1 "contact-relay/internal/delivery/http/v1"
	"contact-relay/internal/usecase"
	"contact-relay/pkg/logger"
	"contact-relay/pkg/telegram"
	"contact-relay/pkg/validation"

	"github.com/gin-gonic/gin"
)

// @title           Contact Relay API
// @version         1.0
// @description     Relays contact form submissions to a Telegram channel.
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(logger.Options{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	logger.Log.Info("Starting contact relay", "port", cfg.Port, "cors", cfg.CORSEnabled)
	gin.SetMode(cfg.GinMode)

	// 3. Setup Notifier
	notifier := telegram.NewClient(telegram.Config{
		APIURL:    cfg.TelegramAPIURL,
		BotToken:  cfg.TelegramBotToken,
		ChannelID: cfg.TelegramChannelID,
		Timeout:   cfg.TelegramTimeout,
	}, nil)

	// 4. Setup UseCases
	contactUC := usecase.NewContactUsecase(notifier, validation.New())
	healthUC := usecase.NewHealthUsecase(cfg.CORSEnabled)

	// 5. Setup Routers
	servers := []*http.Server{{
		Addr: ":" + cfg.Port,
		Handler: v1.NewRouter(v1.RouterDeps{
			ContactUC:   contactUC,
			CORSEnabled: cfg.CORSEnabled,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}}
	if cfg.AdminEnabled {
		servers = append(servers, &http.Server{
			Addr:              ":" + cfg.AdminPort,
			Handler:           admin.NewRouter(healthUC),
			ReadHeaderTimeout: 10 * time.Second,
		})
	}

	// 6. Start Servers
	for _, srv := range servers {
		go func(srv *http.Server) {
			logger.Log.Info("Listening", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Log.Error("Listen failed", "addr", srv.Addr, "error", err)
				os.Exit(1)
			}
		}(srv)
	}

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	for _, srv := range servers {
		if err := srv.Shutdown(ctx); err != nil {
			logger.Log.Error("Server forced to shutdown", "addr", srv.Addr, "error", err)
		}
	}

	logger.Log.Info("Server exiting")
}
