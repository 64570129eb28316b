// Command stackwm is a tiling window manager for X11. Windows on each
// workspace live in a focus-tracking stack; every key binding is an
// operation on that stack followed by a re-tile.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/stackwm/internal/config"
	"github.com/1broseidon/stackwm/internal/wm"
	"github.com/1broseidon/stackwm/internal/x11"
	"golang.org/x/term"
)

func main() {
	configPath := flag.String("config", "", "path to the config file (default ~/.config/stackwm/stackwm.yaml)")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	flag.Parse()

	logger, err := newLogger(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	slog.SetDefault(logger)

	if err := run(*configPath, logger); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		// journald and friends stamp their own timestamps
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		}
	}

	return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
}

func run(configPath string, logger *slog.Logger) error {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFromPath(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	conn, err := x11.NewConnection()
	if err != nil {
		return fmt.Errorf("failed to connect to X server: %w", err)
	}
	defer conn.Close()

	if err := conn.BecomeWM(); err != nil {
		return err
	}

	manager, err := wm.NewManager(cfg.Workspaces, cfg.Layout)
	if err != nil {
		return err
	}

	w := &windowManager{
		conn:    conn,
		manager: manager,
		cfg:     cfg,
		logger:  logger,
	}

	w.adoptExisting()
	w.registerEvents()

	if err := w.registerHotkeys(); err != nil {
		return err
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		logger.Info("shutting down")
		conn.Quit()
	}()

	logger.Info("stackwm started",
		"workspaces", len(cfg.Workspaces),
		"layout", cfg.Layout)

	conn.EventLoop()
	return nil
}
