package app

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bjhara/temp-hum-logger/internal/config"
	"github.com/bjhara/temp-hum-logger/internal/db"
	"github.com/bjhara/temp-hum-logger/internal/httpapi"
	"github.com/bjhara/temp-hum-logger/internal/migrate"
	"github.com/bjhara/temp-hum-logger/internal/modules/telemetry"
	"github.com/bjhara/temp-hum-logger/internal/modules/telemetry/views"
	"github.com/bjhara/temp-hum-logger/internal/mqtt"
)

const (
	mqttConnectTimeout = 5 * time.Second
	shutdownTimeout    = 10 * time.Second
)

// App is the assembled server: database, MQTT ingest and HTTP routes.
type App struct {
	cfg        config.Config
	logger     *slog.Logger
	db         *sql.DB
	subscriber *mqtt.Subscriber
	handler    http.Handler
}

// New opens and migrates the database and wires every route. The MQTT
// subscriber is created with its frame handler attached but not connected.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	logger.Info("config loaded",
		"appEnv", cfg.AppEnv,
		"logLevel", cfg.LogLevel.String(),
		"httpAddr", cfg.HTTPAddr,
		"staticDir", cfg.StaticDir,
		"sqliteDriver", cfg.SQLiteDriver,
		"sqlitePath", cfg.SQLitePath,
		"sqliteMaxOpenConns", cfg.SQLiteMaxOpenConns,
		"sqliteLogSQL", cfg.SQLiteLogSQL,
		"mqttBroker", cfg.MQTTBroker,
		"mqttPort", cfg.MQTTPort,
		"mqttTopic", cfg.MQTTTopic,
	)

	conn, err := db.Open(cfg, logger)
	if err != nil {
		return nil, err
	}
	if _, err := migrate.Run(ctx, conn, logger); err != nil {
		_ = db.Close(conn)
		return nil, err
	}
	logger.Info("database ready")

	if err := views.LoadTemplates(); err != nil {
		_ = db.Close(conn)
		return nil, err
	}

	// The handler must be attached before Connect: the broker may deliver
	// right after CONNACK.
	subscriber := mqtt.NewSubscriber(cfg, logger.With("component", "mqtt"))
	mux := httpapi.NewMux(conn, subscriber, logger)
	telemetry.RegisterFeature(mux, conn, subscriber, cfg.StaticDir, logger)

	return &App{
		cfg:        cfg,
		logger:     logger,
		db:         conn,
		subscriber: subscriber,
		handler:    mux,
	}, nil
}

func (a *App) Handler() http.Handler { return a.handler }

func (a *App) Close() error {
	a.subscriber.Disconnect()
	return db.Close(a.db)
}

// Run serves until ctx is done, then shuts down gracefully.
func Run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error("close", "error", err)
		}
	}()

	connectCtx, cancel := context.WithTimeout(ctx, mqttConnectTimeout)
	err = a.subscriber.Connect(connectCtx)
	cancel()
	if err != nil {
		// Stored data stays browsable while the broker is down. The client
		// keeps retrying and subscribes once the broker answers.
		logger.Warn("mqtt not connected yet, retrying in background", "error", err)
	}

	srv := httpapi.NewServer(cfg, a.handler, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http listening", "addr", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	logger.Info("http shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}
