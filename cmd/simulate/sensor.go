package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/bjhara/temp-hum-logger/internal/wire"
)

// sensor random-walks around a base reading so charts look plausible.
type sensor struct {
	id       string
	temp     float64
	hum      float64
	rng      *rand.Rand
	lastSent uint32
}

func newSensors(n int, seed int64) []*sensor {
	out := make([]*sensor, 0, n)
	for i := range n {
		rng := rand.New(rand.NewPCG(uint64(seed), uint64(i)))
		out = append(out, &sensor{
			id:   fmt.Sprintf("sim-%02d", i+1),
			temp: 18 + rng.Float64()*6,
			hum:  35 + rng.Float64()*20,
			rng:  rng,
		})
	}
	return out
}

func (s *sensor) next(now time.Time) wire.Frame {
	s.temp = clamp(s.temp+s.rng.NormFloat64()*0.3, 0, 45)
	s.hum = clamp(s.hum+s.rng.NormFloat64()*1.0, 5, 100)

	// Frames are keyed by (client, second); never repeat a second.
	ts := uint32(now.Unix())
	if ts <= s.lastSent {
		ts = s.lastSent + 1
	}
	s.lastSent = ts

	return wire.Frame{Timestamp: ts, Temp: uint8(s.temp + 0.5), Hum: uint8(s.hum + 0.5)}
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
