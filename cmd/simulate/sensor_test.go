package main

import (
	"testing"
	"time"
)

func TestNewSensors(t *testing.T) {
	sensors := newSensors(3, 42)
	if len(sensors) != 3 {
		t.Fatalf("len = %d; want 3", len(sensors))
	}
	seen := map[string]bool{}
	for _, s := range sensors {
		if seen[s.id] {
			t.Errorf("duplicate id %q", s.id)
		}
		seen[s.id] = true
	}
	if sensors[0].id != "sim-01" {
		t.Errorf("first id = %q; want sim-01", sensors[0].id)
	}
}

func TestSensorNext(t *testing.T) {
	s := newSensors(1, 7)[0]
	now := time.Unix(1700000000, 0)

	var prev uint32
	for i := range 500 {
		f := s.next(now)
		if f.Hum < 5 || f.Hum > 100 || f.Temp > 45 {
			t.Fatalf("frame %d out of range: %+v", i, f)
		}
		if i > 0 && f.Timestamp <= prev {
			t.Fatalf("frame %d timestamp %d not after %d", i, f.Timestamp, prev)
		}
		prev = f.Timestamp
	}
}
