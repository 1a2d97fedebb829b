package controller

import (
	"log/slog"
	"net/http"

	"github.com/bjhara/temp-hum-logger/internal/modules/telemetry/repository"
)

const (
	uiPath       = "/ui/"
	staticPrefix = "/ui/static/"
)

type TelemetryController interface {
	RegisterRoutes(mux *http.ServeMux)
}

type telemetryControllerImpl struct {
	repository repository.MeasurementRepository
	staticDir  string
	logger     *slog.Logger
}

// NewTelemetryController serves the JSON API and the dashboard page. Files
// under staticDir (main.wasm, wasm_exec.js) are served below /ui/static/.
func NewTelemetryController(repository repository.MeasurementRepository, staticDir string, logger *slog.Logger) TelemetryController {
	if logger == nil {
		logger = slog.Default()
	}
	return &telemetryControllerImpl{repository: repository, staticDir: staticDir, logger: logger}
}

func (c *telemetryControllerImpl) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /clients", c.handleClients)
	mux.HandleFunc("GET /clients/{id}", c.handleMeasurements)

	mux.HandleFunc("GET /{$}", c.handleRoot)
	mux.HandleFunc("GET /ui", c.handleRoot)
	mux.HandleFunc("GET /ui/{$}", c.handleIndex)
	mux.Handle("GET "+staticPrefix, http.StripPrefix(staticPrefix, http.FileServer(http.Dir(c.staticDir))))
}
