package telemetry

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/bjhara/temp-hum-logger/internal/modules/telemetry/controller"
	"github.com/bjhara/temp-hum-logger/internal/modules/telemetry/repository"
	"github.com/bjhara/temp-hum-logger/internal/modules/telemetry/service"
	"github.com/bjhara/temp-hum-logger/internal/mqtt"
)

// RegisterFeature wires ingest and HTTP routes for measurements.
func RegisterFeature(mux *http.ServeMux, db *sql.DB, subscriber mqtt.FrameSubscriber, staticDir string, logger *slog.Logger) {
	repo := repository.NewRepository(db)
	service.NewService(repo, logger.With("module", "telemetry")).Register(subscriber)
	controller.NewTelemetryController(repo, staticDir, logger).RegisterRoutes(mux)
}
