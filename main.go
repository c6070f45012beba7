package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/epeers/stocklens/config"
	"github.com/epeers/stocklens/internal/api"
	"github.com/epeers/stocklens/internal/handlers"
	"github.com/epeers/stocklens/internal/prefs"
	"github.com/epeers/stocklens/internal/theme"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{})
	log.SetLevel(cfg.LogLevel)

	// Initialize API client
	client := api.NewClient(cfg.APIURL, api.WithTimeout(cfg.Timeout))

	// Initialize output and theme preference
	printer := handlers.NewPrinter(os.Stdout, useColor())
	themes := theme.NewStore(prefs.NewFileStore(cfg.PrefsFile), printer, func() (theme.Theme, bool) {
		return theme.FromColorFGBG(os.Getenv("COLORFGBG"))
	})

	handler := handlers.NewHandler(client, themes, printer)

	// Cancel in-flight requests on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := handler.Run(ctx, os.Args[1:]); err != nil {
		stop()
		if !errors.Is(err, handlers.ErrUsage) {
			log.Debugf("Command failed: %+v", err)
		}
		fmt.Fprintf(os.Stderr, "stocklens: %v\n", err)
		os.Exit(1)
	}
}

// useColor reports whether stdout is a terminal and NO_COLOR is unset
func useColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
