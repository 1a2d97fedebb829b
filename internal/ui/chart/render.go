// Package chart renders one client's measurements as a dual-axis chart
// section with a renameable heading.
package chart

import (
	"fmt"
	"log/slog"

	"github.com/bjhara/temp-hum-logger/internal/ui/alias"
	"github.com/bjhara/temp-hum-logger/internal/ui/editor"
	"github.com/bjhara/temp-hum-logger/internal/ui/measurement"
	"github.com/bjhara/temp-hum-logger/internal/ui/sanitize"
	"github.com/bjhara/temp-hum-logger/internal/ui/surface"
)

// Plotter draws a chart onto a canvas element.
type Plotter interface {
	Plot(canvas surface.Element, cfg Config) error
}

// View is a rendered client section.
type View struct {
	ClientID   string
	Section    surface.Element
	Header     surface.Element
	Heading    surface.Element
	EditButton surface.Element
	Canvas     surface.Element
	Config     Config
	Editor     *editor.Editor
}

type Renderer struct {
	doc     surface.Document
	aliases *alias.Store
	plotter Plotter
	logger  *slog.Logger
}

func NewRenderer(doc surface.Document, aliases *alias.Store, plotter Plotter, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{doc: doc, aliases: aliases, plotter: plotter, logger: logger}
}

// Render appends a section for id to container and plots temp and hum into it.
func (r *Renderer) Render(container surface.Element, id string, temp, hum measurement.Series) (*View, error) {
	name := sanitize.Sanitize(r.aliases.DisplayName(id))

	section := r.doc.CreateElement("section")
	section.SetAttr("class", "client")
	section.SetAttr("data-client-id", id)

	header := r.doc.CreateElement("header")
	heading := r.doc.CreateElement(editor.HeadingTag)
	heading.SetText(name)

	edit := r.doc.CreateElement("button")
	edit.SetAttr("type", "button")
	edit.SetAttr("class", "edit")
	edit.SetAttr("title", "Rename")
	edit.SetText("Edit")

	canvas := r.doc.CreateElement("canvas")

	header.Append(heading, edit)
	section.Append(header, canvas)
	container.Append(section)

	// Chart.js sizes the canvas from its layout, so it must be attached before
	// plotting. A section that could not be plotted is taken off the page.
	cfg := BuildConfig(temp, hum)
	if err := r.plotter.Plot(canvas, cfg); err != nil {
		section.Remove()
		return nil, fmt.Errorf("plot %q: %w", id, err)
	}

	ed := editor.New(r.doc, r.aliases, id, header, r.logger)
	edit.OnClick(ed.Open)

	r.logger.Debug("chart rendered",
		"client_id", id,
		"points", len(temp),
		"show_points", bool(cfg.Options.Datasets.Line.PointStyle),
	)

	return &View{
		ClientID:   id,
		Section:    section,
		Header:     header,
		Heading:    heading,
		EditButton: edit,
		Canvas:     canvas,
		Config:     cfg,
		Editor:     ed,
	}, nil
}

// Plot is one recorded Plotter call.
type Plot struct {
	Canvas surface.Element
	Config Config
}

// Recorder is a Plotter that keeps configurations instead of drawing them.
// Hosts without a canvas (tests, server-side snapshots) use it.
type Recorder struct {
	Plots []Plot
	Err   error
}

func (r *Recorder) Plot(canvas surface.Element, cfg Config) error {
	if r.Err != nil {
		return r.Err
	}
	r.Plots = append(r.Plots, Plot{Canvas: canvas, Config: cfg})
	return nil
}
