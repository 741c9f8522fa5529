// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sundial-foundation/sundial/lib/adjtime"
	"github.com/sundial-foundation/sundial/lib/authority"
	"github.com/sundial-foundation/sundial/lib/config"
	"github.com/sundial-foundation/sundial/lib/service"
	"github.com/sundial-foundation/sundial/lib/tzdb"
	"github.com/sundial-foundation/sundial/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath  string
		logLevel    string
		showVersion bool
	)

	flag.StringVar(&configPath, "config", os.Getenv("SUNDIAL_CONFIG"), "path to YAML config (default: built-in system paths)")
	flag.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "print version information and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("sundiald %s\n", version.Info())
		return nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The daemon authorizes all mutations as itself: requests arrive
	// over a root-owned socket, so the socket is the admission control
	// and the policy service sees the daemon's own credentials.
	subject, err := authority.OwnSubject()
	if err != nil {
		return fmt.Errorf("resolving own subject: %w", err)
	}
	gate := authority.NewGate(
		authority.NewClient(cfg.PolicySocketPath),
		subject,
		authority.SysCaps{},
	)
	logger.Info("authorization gate ready",
		"policy_socket", cfg.PolicySocketPath,
		"subject", subject.String(),
	)

	timedate := &TimedateService{
		tz:      tzdb.NewResolver(cfg.ZoneinfoRoot, cfg.LocaltimePath, cfg.TimezoneOverride),
		rtcMode: adjtime.NewStore(cfg.AdjtimePath),
		kernel:  sysClock{},
		rtcDev:  deviceClock{path: cfg.RTCDevice},
		gate:    gate,
		logger:  logger,
	}

	server := service.NewSocketServer(cfg.SocketPath, logger)
	timedate.registerActions(server)

	logger.Info("sundiald running",
		"socket", cfg.SocketPath,
		"rtc_device", cfg.RTCDevice,
		"zoneinfo_root", cfg.ZoneinfoRoot,
	)

	// Serve blocks until the signal context is cancelled, then drains
	// active connections. Post-authorization mutations run inside those
	// connections, so the drain guarantees none is cut off mid-write.
	if err := server.Serve(ctx); err != nil {
		return fmt.Errorf("socket server: %w", err)
	}
	logger.Info("shut down cleanly")
	return nil
}
