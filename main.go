package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/danielhkuo/coinserver/cliparse"
	"github.com/danielhkuo/coinserver/db"
	"github.com/danielhkuo/coinserver/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cmd, err := newRootCmd()
	if err != nil {
		slog.Error("Error building command", "error", err)
		os.Exit(1)
	}

	if err := cmd.Execute(); err != nil {
		slog.Error("Server exited", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() (*cobra.Command, error) {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "coinserver",
		Short:         "Coin flip API with access logging",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Parse configuration
			cfg, err := cliparse.Load(v)
			if err != nil {
				return err
			}
			setupLogger(cfg.LogLevel)
			return serve(cfg)
		},
	}

	if err := cliparse.BindFlags(cmd.Flags(), v); err != nil {
		return nil, err
	}
	return cmd, nil
}

// setupLogger installs a text handler for terminals and JSON otherwise
func setupLogger(level slog.Level) {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func serve(cfg cliparse.Config) error {
	// Connect to the access log database
	var store db.AccessLogStore
	if cfg.LogEnabled || cfg.DebugEnabled {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		s, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
		cancel()
		if err != nil {
			return err
		}
		defer s.Close()
		store = s
		slog.Info("Database schema ready", "type", cfg.DatabaseType)
	}

	// Open the combined-format access log
	var accessLog io.Writer
	if cfg.LogEnabled {
		f, err := openAccessLog(cfg.LogFile)
		if err != nil {
			return err
		}
		defer f.Close()
		accessLog = f
	}

	// Create server
	server := &http.Server{
		Handler:           router.NewRouter(store, cfg, accessLog),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(ctrlc)

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		// Wait for Ctrl-C signal
		if _, ok := <-ctrlc; !ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Forced shutdown", "error", err)
		}
	}()

	// Start server
	slog.Info("App listening on port", "port", cfg.Port, "debug", cfg.DebugEnabled, "log", cfg.LogEnabled)
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-shutdownDone
	slog.Info("Server stopped")
	return nil
}

func openAccessLog(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open access log: %w", err)
	}

	if info, err := f.Stat(); err == nil {
		slog.Info("Access log open", "path", path, "size", humanize.Bytes(uint64(info.Size())))
	}
	return f, nil
}
