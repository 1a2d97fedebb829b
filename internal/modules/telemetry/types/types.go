package types

// Measurement is one stored sensor frame. Timestamp is unix seconds.
type Measurement struct {
	ClientID  string
	Timestamp int64
	Temp      int
	Hum       int
}

// Sample is the wire shape served by GET /clients/{id}.
type Sample struct {
	Timestamp int64 `json:"timestamp"`
	Temp      int   `json:"temp"`
	Hum       int   `json:"hum"`
}
