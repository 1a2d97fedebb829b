// Package dashboard drives the page: it fetches every client and renders one
// chart section per client, in list order.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bjhara/temp-hum-logger/internal/ui/chart"
	"github.com/bjhara/temp-hum-logger/internal/ui/measurement"
	"github.com/bjhara/temp-hum-logger/internal/ui/surface"
)

type Orchestrator struct {
	source    Source
	renderer  *chart.Renderer
	container surface.Element
	logger    *slog.Logger
}

func New(source Source, renderer *chart.Renderer, container surface.Element, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{source: source, renderer: renderer, container: container, logger: logger}
}

// Run processes clients one at a time: client N+1 is not fetched before client
// N has been rendered. The first failure stops the run; sections rendered so
// far stay on the page and are returned with the error.
func (o *Orchestrator) Run(ctx context.Context) ([]*chart.View, error) {
	ids, err := o.source.ClientIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	o.logger.Info("clients loaded", "count", len(ids))

	views := make([]*chart.View, 0, len(ids))
	for _, id := range ids {
		samples, err := o.source.Measurements(ctx, id)
		if err != nil {
			return views, fmt.Errorf("client %q: %w", id, err)
		}

		temp, hum := measurement.Split(samples)
		view, err := o.renderer.Render(o.container, id, temp, hum)
		if err != nil {
			return views, fmt.Errorf("client %q: %w", id, err)
		}
		views = append(views, view)
	}
	return views, nil
}
