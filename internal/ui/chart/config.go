package chart

import (
	"encoding/json"

	"github.com/bjhara/temp-hum-logger/internal/ui/measurement"
)

const (
	TempAxisID = "temp"
	HumAxisID  = "hum"

	// PointMarkerLimit is the series length from which point markers are
	// no longer drawn.
	PointMarkerLimit = 100

	TooltipFormat = "yyyy-MM-dd HH:mm:ss"
)

// DisplayFormats maps a time-axis resolution to its tick label format.
var DisplayFormats = map[string]string{
	"second": "mm:ss",
	"minute": "HH:mm",
	"hour":   "MM-dd HH:mm",
	"day":    "yyyy-MM-dd",
	"week":   "yyyy-MM-dd",
	"month":  "yyyy-MM-dd",
	"year":   "yyyy",
}

// Config is a Chart.js chart configuration.
type Config struct {
	Type    string  `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

type Data struct {
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Label   string             `json:"label"`
	YAxisID string             `json:"yAxisID"`
	Data    measurement.Series `json:"data"`
}

type Options struct {
	Datasets DatasetOptions   `json:"datasets"`
	Scales   map[string]Scale `json:"scales"`
}

type DatasetOptions struct {
	Line LineOptions `json:"line"`
}

type LineOptions struct {
	PointStyle PointStyle `json:"pointStyle"`
}

// PointStyle encodes as "circle" when markers are drawn and false otherwise.
type PointStyle bool

func (p PointStyle) MarshalJSON() ([]byte, error) {
	if p {
		return []byte(`"circle"`), nil
	}
	return []byte(`false`), nil
}

func (p *PointStyle) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case bool:
		*p = PointStyle(t)
	case string:
		*p = PointStyle(t != "")
	default:
		*p = false
	}
	return nil
}

type Scale struct {
	Type     string       `json:"type"`
	Min      *float64     `json:"min,omitempty"`
	Max      *float64     `json:"max,omitempty"`
	Position string       `json:"position,omitempty"`
	Title    *Title       `json:"title,omitempty"`
	Time     *TimeOptions `json:"time,omitempty"`
}

type Title struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
	Align   string `json:"align,omitempty"`
}

type TimeOptions struct {
	IsoWeekday     bool              `json:"isoWeekday"`
	TooltipFormat  string            `json:"tooltipFormat"`
	DisplayFormats map[string]string `json:"displayFormats"`
}

// ShowPoints reports whether point markers are drawn: only when both series
// stay below PointMarkerLimit.
func ShowPoints(temp, hum measurement.Series) bool {
	return len(temp) < PointMarkerLimit && len(hum) < PointMarkerLimit
}

// BuildConfig returns a line chart with temperature on a right-hand
// [-25, 55] °C axis and humidity on a left-hand [0, 100] %RH axis, sharing a
// time X axis.
func BuildConfig(temp, hum measurement.Series) Config {
	formats := make(map[string]string, len(DisplayFormats))
	for k, v := range DisplayFormats {
		formats[k] = v
	}

	return Config{
		Type: "line",
		Data: Data{
			Datasets: []Dataset{
				{Label: "Temperature", YAxisID: TempAxisID, Data: nonNil(temp)},
				{Label: "Humidity", YAxisID: HumAxisID, Data: nonNil(hum)},
			},
		},
		Options: Options{
			Datasets: DatasetOptions{
				Line: LineOptions{PointStyle: PointStyle(ShowPoints(temp, hum))},
			},
			Scales: map[string]Scale{
				"x": {
					Type: "time",
					Time: &TimeOptions{
						IsoWeekday:     true,
						TooltipFormat:  TooltipFormat,
						DisplayFormats: formats,
					},
				},
				TempAxisID: {
					Type:     "linear",
					Min:      bound(-25),
					Max:      bound(55),
					Position: "right",
					Title:    &Title{Display: true, Text: "Celsius", Align: "end"},
				},
				HumAxisID: {
					Type:     "linear",
					Min:      bound(0),
					Max:      bound(100),
					Position: "left",
					Title:    &Title{Display: true, Text: "% RH", Align: "end"},
				},
			},
		},
	}
}

func bound(v float64) *float64 {
	return &v
}

// Chart.js wants [] rather than null for an empty dataset.
func nonNil(s measurement.Series) measurement.Series {
	if s == nil {
		return measurement.Series{}
	}
	return s
}
