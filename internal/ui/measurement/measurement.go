// Package measurement turns raw temperature/humidity samples into plottable
// series.
package measurement

// Sample is one reading as delivered by GET /clients/{id}. Timestamp is in
// seconds since the epoch and may be any JSON number.
type Sample struct {
	Timestamp float64 `json:"timestamp"`
	Temp      float64 `json:"temp"`
	Hum       float64 `json:"hum"`
}

// Point is a single chart point. X is in milliseconds since the epoch.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Series is an ordered run of points for one metric.
type Series []Point

// Split emits one temperature and one humidity point per sample, in input
// order. Nothing is filtered, sorted or deduplicated.
func Split(samples []Sample) (temp Series, hum Series) {
	temp = make(Series, len(samples))
	hum = make(Series, len(samples))
	for i, s := range samples {
		x := s.Timestamp * 1000
		temp[i] = Point{X: x, Y: s.Temp}
		hum[i] = Point{X: x, Y: s.Hum}
	}
	return temp, hum
}
