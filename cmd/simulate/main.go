// Command simulate publishes synthetic sensor frames, one per client every
// SIM_INTERVAL, the same way the real sensors do.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/bjhara/temp-hum-logger/internal/config"
	"github.com/bjhara/temp-hum-logger/internal/logging"
	"github.com/bjhara/temp-hum-logger/internal/mqtt"
)

const appName = "simulate"

var version = "dev"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, ".env: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stdout, cfg, version, appName)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("run failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	pub := mqtt.NewPublisher(cfg, cfg.MQTTClientID+"-sim", logger)
	if err := pub.Connect(ctx); err != nil {
		return err
	}
	defer pub.Disconnect()

	sensors := newSensors(cfg.SimClients, time.Now().UnixNano())
	logger.Info("simulating", "clients", len(sensors), "interval", cfg.SimInterval)

	ticker := time.NewTicker(cfg.SimInterval)
	defer ticker.Stop()

	for {
		now := time.Now()
		for _, s := range sensors {
			if err := pub.PublishFrame(s.id, s.next(now)); err != nil {
				// Keep going; paho reconnects on its own.
				logger.Warn("publish failed", "client_id", s.id, "error", err)
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
