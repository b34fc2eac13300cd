package main

import (
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"bookmcp/internal/book"
	"bookmcp/internal/config"
	"bookmcp/internal/httpx"
	"bookmcp/internal/mcpserver"
)

func main() {
	cfg := config.Load()

	logger := mustBuildLogger(cfg.LogLevel)
	defer logger.Sync()

	books, err := book.LoadFile(cfg.DataFile, logger)
	if err != nil {
		logger.Fatal("cannot load dataset", zap.String("path", cfg.DataFile), zap.Error(err))
	}

	server := mcpserver.New(books, &mcpserver.Options{Logger: logger})

	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)

	rateLimit := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)

	router := http.NewServeMux()
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("/mcp", httpx.Chain(mcpHandler,
		httpx.RequestIDMiddleware,
		httpx.RecoveryMiddleware(logger),
		httpx.AccessLogMiddleware(logger),
		rateLimit.Middleware,
	))

	// No WriteTimeout: the streamable MCP transport holds long-lived
	// responses open.
	httpServer := &http.Server{
		Addr:        cfg.Addr,
		Handler:     router,
		ReadTimeout: 5 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	logger.Info("starting server", zap.String("addr", cfg.Addr))
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}

func mustBuildLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
