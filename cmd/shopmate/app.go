package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/shopmate/internal/application/storefront"
	"github.com/alexisbeaulieu97/shopmate/internal/config"
	"github.com/alexisbeaulieu97/shopmate/internal/domain/session"
	"github.com/alexisbeaulieu97/shopmate/internal/domain/theme"
	"github.com/alexisbeaulieu97/shopmate/internal/infrastructure/api"
	"github.com/alexisbeaulieu97/shopmate/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/shopmate/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/shopmate/internal/infrastructure/storage"
	"github.com/alexisbeaulieu97/shopmate/internal/ports"
)

// appContext bundles the services a command needs.
type appContext struct {
	ctx     context.Context
	cfg     *config.Config
	store   *storage.LocalStore
	logger  ports.Logger
	service *storefront.Service
	close   func()
}

// logTarget selects where a command writes its log.
type logTarget int

const (
	// logToStderr writes to stderr when --verbose is set and to the log
	// file otherwise.
	logToStderr logTarget = iota
	// logToFile always writes to the log file, keeping the screen clean for
	// the interactive UI.
	logToFile
)

func newAppContext(cmd *cobra.Command, flags *rootFlags, target logTarget) (*appContext, error) {
	overrides := config.Overrides{APIURL: flags.apiURL, DataDir: flags.dataDir}
	if flags.verbose {
		overrides.LogLevel = "debug"
	}

	cfg, err := config.Load(config.LoadOptions{Path: flags.configPath, Overrides: overrides})
	if err != nil {
		return nil, newCommandError("start", "loading configuration", err, "Check ~/.shopmate/config.yaml and SHOPMATE_* environment variables.")
	}
	if err := cfg.EnsureDataDir(); err != nil {
		return nil, newCommandError("start", "preparing the data directory", err, "Pass --data-dir with a writable directory.")
	}

	writer, closeLog, err := openLogWriter(cmd, cfg, flags.verbose && target == logToStderr)
	if err != nil {
		return nil, newCommandError("start", "opening the log file", err, "Check permissions on "+cfg.DataDir+".")
	}

	logger, err := logging.New(logging.Options{
		Writer:        writer,
		Level:         cfg.LogLevel,
		HumanReadable: cfg.LogFormat == "console",
		Layer:         "cli",
		Component:     cmd.Name(),
	})
	if err != nil {
		closeLog()
		return nil, newCommandError("start", "creating the logger", err, "Use one of debug, info, warn or error for log_level.")
	}

	store, err := storage.NewLocalStore(cfg.StorePath())
	if err != nil {
		closeLog()
		return nil, newCommandError("start", "opening the local store", err, "Remove "+cfg.StorePath()+" if it is corrupt.")
	}

	client, err := api.New(api.Options{BaseURL: cfg.APIURL, Logger: logger.With("component", "api")})
	if err != nil {
		closeLog()
		return nil, newCommandError("start", "configuring the API client", err, "Set a valid http(s) URL with --api-url.")
	}

	svc, err := storefront.New(storefront.Deps{
		Products: client,
		Auth:     client,
		Theme:    theme.Load(store),
		Session:  session.Open(store),
		Events:   events.NewAuditLog(logger.With("component", "events")),
		Logger:   logger.With("layer", "application"),
	})
	if err != nil {
		closeLog()
		return nil, newCommandError("start", "building the storefront", err, "This is a bug; please report it.")
	}

	ctx := ports.WithCorrelationID(cmd.Context(), ports.GenerateCorrelationID())
	logger.Debug(ctx, "configuration resolved", "api_url", cfg.APIURL, "data_dir", cfg.DataDir, "config", cfg.Source)

	return &appContext{
		ctx:     ctx,
		cfg:     cfg,
		store:   store,
		logger:  logger,
		service: svc,
		close:   closeLog,
	}, nil
}

func openLogWriter(cmd *cobra.Command, cfg *config.Config, toStderr bool) (io.Writer, func(), error) {
	if toStderr {
		return cmd.ErrOrStderr(), func() {}, nil
	}
	file, err := os.OpenFile(cfg.LogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return file, func() { _ = file.Close() }, nil
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
