package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-greeting-cards/internal/adapter"
	"github.com/feral-file/ff-greeting-cards/internal/api/live"
	"github.com/feral-file/ff-greeting-cards/internal/api/middleware"
	"github.com/feral-file/ff-greeting-cards/internal/api/server"
	"github.com/feral-file/ff-greeting-cards/internal/api/shared/executor"
	"github.com/feral-file/ff-greeting-cards/internal/collection"
	"github.com/feral-file/ff-greeting-cards/internal/config"
	"github.com/feral-file/ff-greeting-cards/internal/loader"
	"github.com/feral-file/ff-greeting-cards/internal/logger"
	"github.com/feral-file/ff-greeting-cards/internal/providers/ethereum"
	"github.com/feral-file/ff-greeting-cards/internal/search"
	"github.com/feral-file/ff-greeting-cards/internal/wallet"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "greeting-cards-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Feral File Greeting Cards API")

	// Connect to the chain
	client, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Ethereum RPC", zap.Error(err))
	}
	defer client.Close()
	logger.InfoCtx(ctx, "Connected to Ethereum RPC", zap.Int64("chain_id", cfg.Ethereum.ChainID))

	// Wallet session starts disconnected unless a key is configured
	session := wallet.NewSession()
	if cfg.Wallet.PrivateKey != "" {
		if err := session.Connect(cfg.Wallet.PrivateKey); err != nil {
			logger.FatalCtx(ctx, "Failed to connect wallet", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Wallet connected", zap.String("address", session.Status().Address))
	} else {
		logger.WarnCtx(ctx, "Wallet private key not configured, card actions are disabled")
	}

	ledger, err := ethereum.NewLedger(ethereum.Config{
		ChainID:             cfg.Ethereum.ChainID,
		ContractAddress:     cfg.Ethereum.ContractAddress,
		ReceiptTimeout:      cfg.Ethereum.ReceiptTimeout,
		ReceiptPollInterval: cfg.Ethereum.ReceiptPollInterval,
	}, client, session)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create ledger", zap.Error(err))
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	clock := adapter.NewClock()
	cardLoader := loader.NewLoader(loader.Config{
		MaxConcurrency: cfg.Loader.MaxConcurrency,
	}, ledger, clock, loader.NewMetrics(registry))
	defer cardLoader.Close()

	cards := collection.NewCollection(collection.Config{
		WindowSize: cfg.Loader.WindowSize,
	}, cardLoader, ledger, clock)

	// The server still starts when the first load fails, reads report the error until a reload succeeds
	if snap, err := cards.Reload(ctx); err != nil {
		logger.WarnCtx(ctx, "Initial collection load failed", zap.Error(err))
	} else {
		logger.InfoCtx(ctx, "Collection loaded", zap.Int("cards", len(snap.Records)))
	}

	locale, err := cfg.Search.Tag()
	if err != nil {
		logger.FatalCtx(ctx, "Failed to parse search locale", zap.Error(err))
	}
	engine := search.NewEngine(locale, clock)

	exec := executor.NewExecutor(cards, engine, session, cfg.Ethereum.ChainID)
	liveHandler := live.NewHandler(live.Config{
		QuietPeriod:    cfg.Search.QuietPeriod,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, cards, engine, clock)

	// Create server config
	serverConfig := server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, exec, liveHandler, registry)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
