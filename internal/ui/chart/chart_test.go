package chart

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjhara/temp-hum-logger/internal/ui/alias"
	"github.com/bjhara/temp-hum-logger/internal/ui/editor"
	"github.com/bjhara/temp-hum-logger/internal/ui/headless"
	"github.com/bjhara/temp-hum-logger/internal/ui/measurement"
)

func series(n int) measurement.Series {
	s := make(measurement.Series, n)
	for i := range s {
		s[i] = measurement.Point{X: float64(i) * 60000, Y: float64(i)}
	}
	return s
}

func TestShowPoints(t *testing.T) {
	tests := []struct {
		temp, hum int
		want      bool
	}{
		{temp: 0, hum: 0, want: true},
		{temp: 50, hum: 99, want: true},
		{temp: 99, hum: 99, want: true},
		{temp: 99, hum: 150, want: false},
		{temp: 100, hum: 1, want: false},
		{temp: 100, hum: 100, want: false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ShowPoints(series(tt.temp), series(tt.hum)), "temp=%d hum=%d", tt.temp, tt.hum)
	}
}

func TestBuildConfig_Axes(t *testing.T) {
	cfg := BuildConfig(series(1), series(1))

	assert.Equal(t, "line", cfg.Type)
	require.Len(t, cfg.Data.Datasets, 2)
	assert.Equal(t, "Temperature", cfg.Data.Datasets[0].Label)
	assert.Equal(t, TempAxisID, cfg.Data.Datasets[0].YAxisID)
	assert.Equal(t, "Humidity", cfg.Data.Datasets[1].Label)
	assert.Equal(t, HumAxisID, cfg.Data.Datasets[1].YAxisID)

	x := cfg.Options.Scales["x"]
	assert.Equal(t, "time", x.Type)
	require.NotNil(t, x.Time)
	assert.Equal(t, "yyyy-MM-dd HH:mm:ss", x.Time.TooltipFormat)
	assert.Equal(t, "mm:ss", x.Time.DisplayFormats["second"])
	assert.Equal(t, "HH:mm", x.Time.DisplayFormats["minute"])
	assert.Equal(t, "MM-dd HH:mm", x.Time.DisplayFormats["hour"])
	assert.Equal(t, "yyyy-MM-dd", x.Time.DisplayFormats["day"])
	assert.Equal(t, "yyyy-MM-dd", x.Time.DisplayFormats["week"])
	assert.Equal(t, "yyyy-MM-dd", x.Time.DisplayFormats["month"])
	assert.Equal(t, "yyyy", x.Time.DisplayFormats["year"])

	temp := cfg.Options.Scales[TempAxisID]
	assert.Equal(t, "linear", temp.Type)
	assert.Equal(t, -25.0, *temp.Min)
	assert.Equal(t, 55.0, *temp.Max)
	assert.Equal(t, "right", temp.Position)
	assert.Equal(t, "Celsius", temp.Title.Text)

	hum := cfg.Options.Scales[HumAxisID]
	assert.Equal(t, 0.0, *hum.Min)
	assert.Equal(t, 100.0, *hum.Max)
	assert.Equal(t, "left", hum.Position)
	assert.Equal(t, "% RH", hum.Title.Text)
}

func TestBuildConfig_JSON(t *testing.T) {
	b, err := json.Marshal(BuildConfig(nil, nil))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))

	opts := raw["options"].(map[string]any)
	line := opts["datasets"].(map[string]any)["line"].(map[string]any)
	assert.Equal(t, "circle", line["pointStyle"])

	hum := opts["scales"].(map[string]any)["hum"].(map[string]any)
	assert.Equal(t, 0.0, hum["min"], "zero bound must be encoded")

	datasets := raw["data"].(map[string]any)["datasets"].([]any)
	assert.Equal(t, []any{}, datasets[0].(map[string]any)["data"])

	b, err = json.Marshal(BuildConfig(series(100), nil))
	require.NoError(t, err)
	var back Config
	require.NoError(t, json.Unmarshal(b, &back))
	assert.False(t, bool(back.Options.Datasets.Line.PointStyle))
}

func TestRender_Section(t *testing.T) {
	doc := headless.NewDocument()
	container := doc.NewRoot("div", "charts")
	kv := alias.NewMemoryKV()
	aliases := alias.NewStore(kv, nil)
	require.NoError(t, aliases.Set("a", "Kitchen"))
	rec := &Recorder{}

	view, err := NewRenderer(doc, aliases, rec, nil).Render(container, "a", series(3), series(3))
	require.NoError(t, err)

	sections := container.FindAll("section", "client")
	require.Len(t, sections, 1)
	assert.Equal(t, "a", sections[0].Attr("data-client-id"))
	assert.Same(t, view.Section, sections[0])

	assert.Equal(t, "Kitchen", view.Heading.Text())
	assert.Equal(t, "h2", view.Heading.Tag())
	assert.Equal(t, "edit", view.EditButton.Attr("class"))

	require.Len(t, rec.Plots, 1)
	assert.Same(t, view.Canvas, rec.Plots[0].Canvas)
	assert.Same(t, sections[0].Find("canvas", ""), rec.Plots[0].Canvas)
	assert.True(t, bool(rec.Plots[0].Config.Options.Datasets.Line.PointStyle))
}

func TestRender_LargeSeriesHidesPoints(t *testing.T) {
	doc := headless.NewDocument()
	rec := &Recorder{}
	r := NewRenderer(doc, alias.NewStore(alias.NewMemoryKV(), nil), rec, nil)

	_, err := r.Render(doc.NewRoot("div", ""), "a", series(99), series(150))
	require.NoError(t, err)
	_, err = r.Render(doc.NewRoot("div", ""), "b", series(50), series(99))
	require.NoError(t, err)

	require.Len(t, rec.Plots, 2)
	assert.False(t, bool(rec.Plots[0].Config.Options.Datasets.Line.PointStyle))
	assert.True(t, bool(rec.Plots[1].Config.Options.Datasets.Line.PointStyle))
}

func TestRender_SanitizesID(t *testing.T) {
	doc := headless.NewDocument()
	container := doc.NewRoot("div", "")
	r := NewRenderer(doc, alias.NewStore(alias.NewMemoryKV(), nil), &Recorder{}, nil)

	view, err := r.Render(container, `<img src=x>`, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "img src=x", view.Heading.Text())
}

func TestRender_EditButtonOpensEditor(t *testing.T) {
	doc := headless.NewDocument()
	container := doc.NewRoot("div", "")
	r := NewRenderer(doc, alias.NewStore(alias.NewMemoryKV(), nil), &Recorder{}, nil)

	view, err := r.Render(container, "a", nil, nil)
	require.NoError(t, err)

	view.EditButton.(*headless.Element).Click()
	assert.Equal(t, editor.Editing, view.Editor.State())
	assert.NotNil(t, container.Find("form", "rename"))
}

func TestRender_PlotError(t *testing.T) {
	doc := headless.NewDocument()
	boom := errors.New("no canvas context")
	r := NewRenderer(doc, alias.NewStore(alias.NewMemoryKV(), nil), &Recorder{Err: boom}, nil)

	container := doc.NewRoot("div", "")
	_, err := r.Render(container, "a", nil, nil)
	require.ErrorIs(t, err, boom)
	assert.Empty(t, container.FindAll("section", "client"))
	assert.Nil(t, container.Find("button", "edit"))
}
