package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/team-Roy/prototype-sub000/internal/rest"
	"github.com/team-Roy/prototype-sub000/internal/setup"
	"github.com/team-Roy/prototype-sub000/internal/setup/telemetry"
	"go.uber.org/zap"
)

// RESTLogDir specifies where REST server log files are stored.
const RESTLogDir = "logs/rest_logs"

// Server timeout fallbacks used when the config leaves them at zero.
const (
	DefaultReadTimeout  = 5 * time.Second
	DefaultWriteTimeout = 10 * time.Second
	ShutdownTimeout     = 30 * time.Second
)

func main() {
	// Initialize application with required dependencies
	app, err := setup.InitializeApp(context.Background(), telemetry.ServiceREST, RESTLogDir)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Cleanup()

	// Create server
	handler, err := rest.NewServer(app.DB, app.Registry, app.Logger, &app.Config.REST)
	if err != nil {
		app.Logger.Fatal("Failed to create REST server", zap.Error(err))
	}

	serverCfg := app.Config.REST.Server
	addr := fmt.Sprintf("%s:%d", serverCfg.Host, serverCfg.Port)

	// Create HTTP server with timeouts
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  secondsOr(serverCfg.ReadTimeout, DefaultReadTimeout),
		WriteTimeout: secondsOr(serverCfg.WriteTimeout, DefaultWriteTimeout),
	}

	// Start server in a goroutine
	go func() {
		app.Logger.Info("REST server started", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Logger.Error("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	app.Logger.Info("Shutting down REST server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		app.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	app.Logger.Info("Server gracefully stopped")
}

func secondsOr(seconds int, fallback time.Duration) time.Duration {
	if seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
