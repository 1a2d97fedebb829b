//go:build js && wasm

package jsdom

import (
	"encoding/json"
	"errors"
	"fmt"
	"syscall/js"

	"github.com/bjhara/temp-hum-logger/internal/ui/chart"
	"github.com/bjhara/temp-hum-logger/internal/ui/surface"
)

// ChartJS draws through the global Chart constructor.
type ChartJS struct{}

func (ChartJS) Plot(canvas surface.Element, cfg chart.Config) error {
	el, ok := canvas.(*Element)
	if !ok {
		return fmt.Errorf("canvas is %T, not a DOM element", canvas)
	}
	ctor := js.Global().Get("Chart")
	if ctor.IsUndefined() {
		return errors.New("global Chart constructor not found")
	}

	b, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal chart config: %w", err)
	}
	return catch(func() {
		opts := js.Global().Get("JSON").Call("parse", string(b))
		ctor.New(el.v, opts)
	})
}
