package mqtt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bjhara/temp-hum-logger/internal/config"

	paho "github.com/eclipse/paho.mqtt.golang"
)

var errStopped = errors.New("mqtt client stopped")

// connectRetryInterval is the pause between attempts while the broker is
// unreachable.
var connectRetryInterval = 5 * time.Second

// conn owns a paho client and tracks connection state from its callbacks.
// onConnect runs after every (re)connect, so subscriptions survive broker
// restarts.
type conn struct {
	client paho.Client
	logger *slog.Logger

	mu        sync.RWMutex
	connected bool
	// pending is the in-flight connect token; paho keeps retrying it until
	// the broker answers or Disconnect is called.
	pending paho.Token

	stopCh   chan struct{}
	stopOnce sync.Once
}

func newConn(cfg config.Config, clientID string, logger *slog.Logger, onConnect func()) *conn {
	c := &conn{
		logger: logger,
		stopCh: make(chan struct{}),
	}

	opts := paho.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s:%d", cfg.MQTTBroker, cfg.MQTTPort))
	opts.SetClientID(clientID)
	opts.SetCleanSession(true)

	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(connectRetryInterval)
	opts.SetMaxReconnectInterval(60 * time.Second)

	opts.SetKeepAlive(30 * time.Second)
	opts.SetPingTimeout(10 * time.Second)

	opts.SetOnConnectHandler(func(_ paho.Client) {
		c.setConnected(true)
		logger.Info("mqtt connected", "broker", cfg.MQTTBroker, "port", cfg.MQTTPort, "client_id", clientID)
		if onConnect != nil {
			onConnect()
		}
	})
	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		c.setConnected(false)
		logger.Warn("mqtt connection lost", "error", err)
	})

	c.client = paho.NewClient(opts)
	return c
}

// Connect waits for the first connection to the broker. When ctx is done it
// stops waiting but the attempt keeps retrying in the background; a later
// Connect waits on the same attempt. Disconnect ends it.
func (c *conn) Connect(ctx context.Context) error {
	select {
	case <-c.stopCh:
		return errStopped
	default:
	}
	if c.IsConnected() {
		return nil
	}

	token := c.connectToken()

	const poll = 200 * time.Millisecond
	for {
		if token.WaitTimeout(poll) {
			c.clearPending(token)
			if err := token.Error(); err != nil {
				return fmt.Errorf("mqtt connect: %w", err)
			}
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("mqtt connect (still retrying): %w", ctx.Err())
		case <-c.stopCh:
			return errStopped
		default:
		}
	}
}

func (c *conn) connectToken() paho.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		c.pending = c.client.Connect()
	}
	return c.pending
}

func (c *conn) clearPending(t paho.Token) {
	c.mu.Lock()
	if c.pending == t {
		c.pending = nil
	}
	c.mu.Unlock()
}

func (c *conn) IsConnected() bool {
	c.mu.RLock()
	connected := c.connected
	c.mu.RUnlock()
	return connected && c.client.IsConnected()
}

// Disconnect is idempotent. Connect returns an error afterwards.
func (c *conn) Disconnect() {
	c.stopOnce.Do(func() { close(c.stopCh) })
	if c.client != nil {
		c.client.Disconnect(250)
	}
	c.setConnected(false)
	c.logger.Info("mqtt disconnected")
}

func (c *conn) setConnected(v bool) {
	c.mu.Lock()
	c.connected = v
	c.mu.Unlock()
}

func wait(t paho.Token, what string) error {
	if !t.WaitTimeout(5 * time.Second) {
		return fmt.Errorf("%s: timeout", what)
	}
	if err := t.Error(); err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}
