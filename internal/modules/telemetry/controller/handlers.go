package controller

import (
	"io"
	"net/http"

	"github.com/bjhara/temp-hum-logger/internal/modules/telemetry/types"
	"github.com/bjhara/temp-hum-logger/internal/modules/telemetry/views"
	"github.com/bjhara/temp-hum-logger/internal/utils"
)

func (c *telemetryControllerImpl) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, uiPath, http.StatusTemporaryRedirect)
}

func (c *telemetryControllerImpl) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := views.NewIndexData(staticPrefix)
	err := utils.WriteHTML(w, http.StatusOK, func(out io.Writer) error {
		return views.RenderIndex(out, data)
	})
	if err != nil {
		c.logger.Error("index template render failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to render page")
	}
}

func (c *telemetryControllerImpl) handleClients(w http.ResponseWriter, r *http.Request) {
	clients, err := c.repository.GetClients(r.Context())
	if err != nil {
		c.logger.Error("get clients failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load clients")
		return
	}
	if clients == nil {
		clients = []string{}
	}
	utils.WriteJSON(w, http.StatusOK, clients)
}

func (c *telemetryControllerImpl) handleMeasurements(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.WriteError(w, http.StatusBadRequest, "missing client id")
		return
	}

	measurements, err := c.repository.GetMeasurements(r.Context(), id)
	if err != nil {
		c.logger.Error("get measurements failed", "client_id", id, "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load measurements")
		return
	}

	out := make([]types.Sample, 0, len(measurements))
	for _, m := range measurements {
		out = append(out, types.Sample{
			Timestamp: roundMinute(m.Timestamp),
			Temp:      m.Temp,
			Hum:       m.Hum,
		})
	}
	utils.WriteJSON(w, http.StatusOK, out)
}
