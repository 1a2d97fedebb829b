package httpapi

import (
	"database/sql"
	"log/slog"
	"net/http"
)

// NewMux returns a mux with /healthz registered. mqtt may be nil.
func NewMux(db *sql.DB, mqtt ConnState, logger *slog.Logger) *http.ServeMux {
	if logger == nil {
		logger = slog.Default()
	}
	mux := http.NewServeMux()
	registerHealthcheck(mux, db, mqtt, logger)
	return mux
}
