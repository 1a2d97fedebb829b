package httpapi

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/bjhara/temp-hum-logger/internal/utils"
)

// ConnState reports broker connectivity for /healthz.
type ConnState interface {
	IsConnected() bool
}

type healthchecker struct {
	db     *sql.DB
	mqtt   ConnState
	logger *slog.Logger
}

func (h *healthchecker) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	var ok int
	if err := h.db.QueryRowContext(ctx, `SELECT 1`).Scan(&ok); err != nil {
		h.logger.Error("failed to check database connectivity", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to check database connectivity")
		return
	}

	body := map[string]any{"status": "ok"}
	// A broker outage degrades ingest but the API still serves stored data.
	if h.mqtt != nil {
		body["mqtt"] = h.mqtt.IsConnected()
	}
	utils.WriteJSON(w, http.StatusOK, body)
}

func registerHealthcheck(mux *http.ServeMux, db *sql.DB, mqtt ConnState, logger *slog.Logger) {
	h := &healthchecker{db: db, mqtt: mqtt, logger: logger}
	mux.HandleFunc("GET /healthz", h.handleHealthz)
}
