package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"whaleportfolio/internal/config"
	"whaleportfolio/internal/db"
	"whaleportfolio/internal/handler"
	"whaleportfolio/internal/logger"
	mongorepository "whaleportfolio/internal/repository/mongo"
	"whaleportfolio/internal/service"
)

func main() {
	cfgPath := os.Getenv("WP_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if raw := os.Getenv("WP_ENV_ONLY"); raw != "" {
		envOnly = strings.EqualFold(raw, "true") || raw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Quantity and price fields render as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	handle, err := db.Open(cfg.Mongo)
	if err != nil {
		log.Fatal("mongo open failed", zap.Error(err))
	}
	defer db.Close(handle)

	pingCtx, pingCancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	if err := handle.Ping(pingCtx); err != nil {
		// Connection failures surface as operation-time errors; startup
		// only reports them.
		log.Warn("mongo not reachable at startup", zap.Error(err))
	}
	pingCancel()

	store := mongorepository.New(handle, cfg.Mongo.PortfolioCollection, cfg.Mongo.TransactionCollection)
	portfolioSvc := &service.PortfolioService{Repo: store}
	transactionSvc := &service.TransactionService{Repo: store}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(handler.CORSMiddleware())
	engine.Use(handler.RequestIDMiddleware())
	engine.Use(handler.AccessLogMiddleware(log))

	healthHandler := &handler.HealthHandler{DB: handle}
	healthHandler.Register(engine)
	portfolioHandler := &handler.PortfolioHandler{Service: portfolioSvc, Logger: log}
	portfolioHandler.Register(engine)
	transactionHandler := &handler.TransactionHandler{Service: transactionSvc, Logger: log}
	transactionHandler.Register(engine)

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
