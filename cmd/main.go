package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"rig-lab/contract"
	"rig-lab/controller"
	"rig-lab/infrastructure/http/server"
	"rig-lab/repositories"
	"rig-lab/runtime"
	"rig-lab/runtime/workers"
	"rig-lab/sink"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting,
// so that every deferred cleanup runs before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Transcript archive (BadgerDB), optional
	var transcriptSink contract.TranscriptSink
	if config.ArchiveEnabled() {
		db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
			WithLoggingLevel(badger.WARNING))
		if err != nil {
			return fmt.Errorf("database opening failed: %w", err)
		}
		defer func() {
			log.Info("Closing BadgerDB...")
			_ = db.Close()
		}()
		transcriptSink = sink.NewTranscriptSink(repositories.NewTranscriptRepository(db, log), log)
	}

	// 3. Session layer & collaboration
	registry := runtime.NewSessionRegistry()
	supervisor := workers.NewSupervisor(log, config.RestartInterval)
	manager := runtime.NewCollaborationManager(log, supervisor, registry, transcriptSink, config.PollInterval)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	manager.Start(ctx)
	defer manager.Stop()

	// 5. HTTP Server Setup
	address := net.JoinHostPort(config.Host, fmt.Sprint(config.Port))
	collabServer := server.NewCollabServer(log,
		controller.NewCollaborationController(log, manager), registry, manager)
	httpServer := &http.Server{
		Addr:              address,
		Handler:           collabServer.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting rig collaboration server", "address", address, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 6. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 7. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP server shutdown incomplete", "error", err)
	}
	log.Info("Program stopped cleanly")
	return nil
}
