package mqtt

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bjhara/temp-hum-logger/internal/config"
	"github.com/bjhara/temp-hum-logger/internal/wire"

	paho "github.com/eclipse/paho.mqtt.golang"
)

// Handler receives one decoded frame together with the client id taken from
// the topic.
type Handler func(clientID string, f wire.Frame) error

// FrameSubscriber is what feature modules need from the ingest side.
type FrameSubscriber interface {
	SetHandler(h Handler)
}

type Subscriber struct {
	*conn
	topic string

	subscribed atomic.Bool

	hmu     sync.RWMutex
	handler Handler
}

func NewSubscriber(cfg config.Config, logger *slog.Logger) *Subscriber {
	s := &Subscriber{topic: cfg.MQTTTopic}
	s.conn = newConn(cfg, cfg.MQTTClientID, logger, s.subscribe)
	return s
}

func (s *Subscriber) SetHandler(h Handler) {
	s.hmu.Lock()
	s.handler = h
	s.hmu.Unlock()
}

// subscribe runs from the paho connect callback and must not block on the
// token for long.
func (s *Subscriber) subscribe() {
	s.subscribed.Store(false)
	token := s.client.Subscribe(s.topic, 1, func(_ paho.Client, msg paho.Message) {
		s.HandleMessage(msg.Topic(), msg.Payload())
	})
	go func() {
		if err := wait(token, "subscribe "+s.topic); err != nil {
			s.logger.Error("mqtt subscribe failed", "topic", s.topic, "error", err)
			return
		}
		s.subscribed.Store(true)
		s.logger.Info("subscribed to mqtt topic", "topic", s.topic, "qos", 1)
	}()
}

// IsConnected is true once the broker has acknowledged the subscription.
func (s *Subscriber) IsConnected() bool {
	return s.subscribed.Load() && s.conn.IsConnected()
}

// HandleMessage decodes one raw broker message and passes it to the handler.
// Invalid messages are logged and dropped.
func (s *Subscriber) HandleMessage(topic string, payload []byte) {
	s.logger.Debug("received mqtt message", "topic", topic, "size", len(payload))

	frame, err := wire.Decode(payload)
	if err != nil {
		s.logger.Warn("dropping mqtt message", "topic", topic, "error", err)
		return
	}
	clientID, err := wire.ClientFromTopic(topic)
	if err != nil {
		s.logger.Warn("dropping mqtt message", "topic", topic, "error", err)
		return
	}

	s.hmu.RLock()
	h := s.handler
	s.hmu.RUnlock()
	if h == nil {
		return
	}
	if err := h(clientID, frame); err != nil {
		s.logger.Error("frame handler failed", "client_id", clientID, "timestamp", frame.Timestamp, "error", err)
		return
	}
	s.logger.Debug("stored frame", "client_id", clientID, "timestamp", frame.Timestamp)
}

// Disconnect unsubscribes before closing the connection.
func (s *Subscriber) Disconnect() {
	if s.client != nil && s.IsConnected() {
		s.client.Unsubscribe(s.topic).WaitTimeout(2 * time.Second)
	}
	s.subscribed.Store(false)
	s.conn.Disconnect()
}
