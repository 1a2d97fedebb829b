//go:build js && wasm

// The dashboard page. Build with:
//
//	GOOS=js GOARCH=wasm go build -o static/main.wasm ./cmd/dashboard
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/bjhara/temp-hum-logger/internal/config"
	"github.com/bjhara/temp-hum-logger/internal/logging"
	"github.com/bjhara/temp-hum-logger/internal/ui/alias"
	"github.com/bjhara/temp-hum-logger/internal/ui/chart"
	"github.com/bjhara/temp-hum-logger/internal/ui/dashboard"
	"github.com/bjhara/temp-hum-logger/internal/ui/jsdom"
)

const appName = "dashboard"

var version = "dev"

func main() {
	logger := logging.New(os.Stdout, config.Config{AppEnv: "dev", LogLevel: slog.LevelInfo}, version, appName)
	slog.SetDefault(logger)

	doc := jsdom.NewDocument()
	container, err := doc.ElementByID("charts")
	if err != nil {
		slog.Error("page setup failed", "error", err)
		return
	}

	kv, err := jsdom.NewLocalStorage()
	if err != nil {
		slog.Error("alias storage unavailable", "error", err)
		return
	}
	aliases := alias.NewStore(kv, logger)
	renderer := chart.NewRenderer(doc, aliases, jsdom.ChartJS{}, logger)
	source := dashboard.NewHTTPSource(jsdom.Origin(), nil)

	views, err := dashboard.New(source, renderer, container, logger).Run(context.Background())
	if err != nil {
		slog.Error("dashboard stopped", "rendered", len(views), "error", err)
		diag := doc.CreateElement("p")
		diag.SetAttr("class", "error")
		diag.SetText("Could not load all sensors: " + err.Error())
		container.Append(diag)
	}

	// Edit handlers live as long as the page.
	select {}
}
