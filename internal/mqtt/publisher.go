package mqtt

import (
	"fmt"
	"log/slog"

	"github.com/bjhara/temp-hum-logger/internal/config"
	"github.com/bjhara/temp-hum-logger/internal/wire"
)

// Publisher sends frames the way a sensor does: one 6-byte message per
// reading on "<topic prefix>/<client id>".
type Publisher struct {
	*conn
	filter string
}

func NewPublisher(cfg config.Config, clientID string, logger *slog.Logger) *Publisher {
	return &Publisher{
		conn:   newConn(cfg, clientID, logger, nil),
		filter: cfg.MQTTTopic,
	}
}

func (p *Publisher) PublishFrame(clientID string, f wire.Frame) error {
	if !p.IsConnected() {
		return fmt.Errorf("mqtt client not connected")
	}
	topic := wire.Topic(p.filter, clientID)
	if err := wait(p.client.Publish(topic, 1, false, wire.Encode(f)), "publish "+topic); err != nil {
		p.logger.Error("failed to publish frame", "topic", topic, "error", err)
		return err
	}
	p.logger.Debug("published frame", "topic", topic, "timestamp", f.Timestamp, "temp", f.Temp, "hum", f.Hum)
	return nil
}
