// Package wire is the sensor frame format carried over MQTT: a fixed 6-byte
// big-endian record of uint32 unix seconds, uint8 °C and uint8 %RH, published
// on "<prefix>/<client id>".
package wire

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"
)

const FrameSize = 6

type Frame struct {
	Timestamp uint32
	Temp      uint8
	Hum       uint8
}

func (f Frame) Time() time.Time {
	return time.Unix(int64(f.Timestamp), 0).UTC()
}

func Encode(f Frame) []byte {
	buf := make([]byte, FrameSize)
	binary.BigEndian.PutUint32(buf[0:4], f.Timestamp)
	buf[4] = f.Temp
	buf[5] = f.Hum
	return buf
}

func Decode(b []byte) (Frame, error) {
	if len(b) != FrameSize {
		return Frame{}, fmt.Errorf("frame length %d, want %d", len(b), FrameSize)
	}
	return Frame{
		Timestamp: binary.BigEndian.Uint32(b[0:4]),
		Temp:      b[4],
		Hum:       b[5],
	}, nil
}

// ClientFromTopic returns the last segment of topic.
func ClientFromTopic(topic string) (string, error) {
	i := strings.LastIndexByte(topic, '/')
	if i < 0 {
		return "", fmt.Errorf("topic %q has no client segment", topic)
	}
	id := topic[i+1:]
	if id == "" {
		return "", fmt.Errorf("topic %q has an empty client segment", topic)
	}
	return id, nil
}

// Topic joins the prefix of a single-level filter such as "test_topic/+"
// with a client id.
func Topic(filter, clientID string) string {
	prefix := strings.TrimSuffix(strings.TrimSuffix(filter, "+"), "/")
	return prefix + "/" + clientID
}
