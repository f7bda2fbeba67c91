// Package mqtt publishes the state of all appliances and zones to an MQTT broker.
//
// After each update, the state of every appliance and zone is published to <prefix>/<id>/state.
// Device information is published, retained, to <prefix>/<id>/device whenever it changes.
package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/clambin/remeha-exporter/internal/poller"
	paho "github.com/eclipse/paho.mqtt.golang"
)

const (
	DefaultPrefix  = "remeha"
	DefaultTimeout = 10 * time.Second
)

var ErrTimeout = errors.New("timeout")

//go:generate mockery --name Client
type Client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

type Publisher struct {
	Poller  poller.Poller
	Client  Client
	Prefix  string
	QoS     byte
	Timeout time.Duration
	Logger  *slog.Logger
	devices map[string]poller.DeviceInfo
}

func New(p poller.Poller, client Client, prefix string, logger *slog.Logger) *Publisher {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Publisher{
		Poller:  p,
		Client:  client,
		Prefix:  prefix,
		Timeout: DefaultTimeout,
		Logger:  logger,
		devices: make(map[string]poller.DeviceInfo),
	}
}

// Connect connects to the broker. The returned client reconnects automatically if the connection is lost.
func Connect(broker, clientID string, timeout time.Duration, logger *slog.Logger) (paho.Client, error) {
	opts := paho.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectionLostHandler(func(_ paho.Client, err error) {
			logger.Warn("connection to mqtt broker lost", "err", err)
		}).
		SetOnConnectHandler(func(_ paho.Client) {
			logger.Debug("connected to mqtt broker", "broker", broker)
		})

	c := paho.NewClient(opts)
	if err := wait(c.Connect(), timeout); err != nil {
		return nil, fmt.Errorf("mqtt connect: %w", err)
	}
	return c, nil
}

func (p *Publisher) Run(ctx context.Context) error {
	p.Logger.Debug("started")
	defer p.Logger.Debug("stopped")

	ch := p.Poller.Subscribe()
	defer p.Poller.Unsubscribe(ch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-ch:
			if err := p.publish(update); err != nil {
				p.Logger.Warn("failed to publish update", "err", err)
			}
		}
	}
}

func (p *Publisher) publish(update poller.Update) error {
	var errs []error
	for _, item := range update.Items() {
		if err := p.send(p.topic(item.ItemID(), "state"), false, item); err != nil {
			errs = append(errs, err)
		}
	}
	for id, device := range update.Devices {
		if current, ok := p.devices[id]; ok && current == device {
			continue
		}
		if err := p.send(p.topic(id, "device"), true, device); err != nil {
			errs = append(errs, err)
			continue
		}
		p.devices[id] = device
	}
	return errors.Join(errs...)
}

func (p *Publisher) topic(id, kind string) string {
	return p.Prefix + "/" + id + "/" + kind
}

func (p *Publisher) send(topic string, retained bool, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%s: encode: %w", topic, err)
	}
	if err = wait(p.Client.Publish(topic, p.QoS, retained, payload), p.Timeout); err != nil {
		return fmt.Errorf("%s: %w", topic, err)
	}
	p.Logger.Debug("published", "topic", topic, "retained", retained)
	return nil
}

func wait(token paho.Token, timeout time.Duration) error {
	if !token.WaitTimeout(timeout) {
		return ErrTimeout
	}
	return token.Error()
}
