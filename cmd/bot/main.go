package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"search-bot/commands"
	"search-bot/domain/chat"
	"search-bot/infrastructure/console"
	"search-bot/infrastructure/index"
	"search-bot/infrastructure/storage"
	"search-bot/internal"
	"search-bot/redact"
	"search-bot/runtime"
	"search-bot/runtime/workers"
	"search-bot/services"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bot terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the bot lifecycle, and centralizes error reporting.
// This pattern keeps 'defer' statements (like database cleanup) running before the program
// exits and decouples the initialization logic from the main entry point.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	maskChar, err := internal.CharacterRune(config.RedactChar)
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx := context.Background()

	// 2. Storage (BadgerDB) & Index (Bluge)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		// Defer ensures the database lock is released and buffers are flushed before the function returns.
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	// 3. Pipeline wiring
	messageRepository := storage.NewMessageRepository(db, logger, config.LimitMessages)
	indexClient := index.NewClient(blugeWriter, logger, config.SearchLimit)

	redactor, err := redact.NewRedactor(config.RedactedTermList(), maskChar)
	if err != nil {
		return exitConfig, fmt.Errorf("redactor setup failed: %w", err)
	}

	// No recognized errors registered: a malformed time frame reads the same
	// as a backend failure to the user.
	errorHandler := services.NewErrorHandler(logger)

	adapter := console.NewAdapter(logger, os.Stdout, config.ArtifactsDir)
	searchService := services.NewSearchService(logger, indexClient, adapter, errorHandler, redactor)
	ingestService := services.NewIngestService(logger, messageRepository, indexClient)

	controller := runtime.NewController(logger, config.BufferSize, func(msg chat.Message) {
		if err := ingestService.Ingest(msg); err != nil {
			logger.Error("Failed to ingest message", "error", err)
		}
	})
	commands.NewSearchCommand(logger, searchService).Configure(controller)

	sup := workers.NewSupervisor(logger, config.RestartInterval)
	sup.Add(
		controller,
		workers.NewListenerWorker(logger, os.Stdin, controller,
			config.BotUser, config.BotTeam, config.BotChannel),
		workers.NewSelfMonitorWorker(logger, config.MetricInterval),
	)

	// 4. Context & Signals
	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		logger.Info("Starting supervisor...")
		sup.Run(ctx)
		close(done)
	}()

	// 5. Wait for Stop
	// The execution blocks here until a signal is received or every worker finishes.
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case <-done:
		logger.Info("All workers finished")
	}

	// 6. Final Cleanup (Graceful Shutdown)
	logger.Info("Shutting down gracefully...")
	sup.Stop()
	<-done
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}
