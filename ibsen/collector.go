package ibsen

import (
	"context"
	"crypto/tls"
	"net"
	"net/url"
	"strings"

	MQTT "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

type Collector interface {
	Run(context.Context) error
}

// Writer is the part of the engine a collector needs.
type Writer interface {
	Write(ctx context.Context, topic string, entries [][]byte) (int, error)
}

type CollectorConfig struct {
	Broker   string
	Username string
	Password string
	// Pattern is the MQTT subscription pattern.
	Pattern string
	// Prefix is prepended to every topic derived from a MQTT topic.
	Prefix string
}

type mqttCollector struct {
	opts    *MQTT.ClientOptions
	config  CollectorConfig
	writer  Writer
	connect func(*MQTT.ClientOptions) MQTT.Client
}

// CollectorTopic returns the topic MQTT messages published on mqttTopic are written to.
func CollectorTopic(prefix, mqttTopic string) string {
	topic := strings.Map(func(r rune) rune {
		switch r {
		case '/':
			return '.'
		case '+', '#', 0, '\\':
			return -1
		}
		return r
	}, mqttTopic)
	return strings.TrimLeft(prefix+topic, ".")
}

func (m *mqttCollector) handle(ctx context.Context, mqttTopic string, payload []byte, retained bool) {
	if retained {
		return
	}
	topic := CollectorTopic(m.config.Prefix, mqttTopic)
	L(ctx).Debug("mqtt message collected",
		zap.String("mqtt_topic", mqttTopic), zap.String("topic", topic), zap.Int("mqtt_payload_size", len(payload)))
	_, err := m.writer.Write(ctx, topic, [][]byte{payload})
	if err != nil {
		L(ctx).Warn("failed to store mqtt message", zap.String("mqtt_topic", mqttTopic), zap.Error(err))
	}
}

func (m *mqttCollector) Run(ctx context.Context) error {
	m.opts.OnConnect = func(c MQTT.Client) {
		L(ctx).Info("subscribing to mqtt pattern", zap.String("mqtt_pattern", m.config.Pattern))
		token := c.Subscribe(m.config.Pattern, 1, func(client MQTT.Client, msg MQTT.Message) {
			m.handle(ctx, msg.Topic(), msg.Payload(), msg.Retained())
		})
		if token.Wait() && token.Error() != nil {
			L(ctx).Error("failed to subscribe to mqtt pattern", zap.Error(token.Error()))
		}
	}
	c := m.connect(m.opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	<-ctx.Done()
	c.Disconnect(500)
	return nil
}

func MQTTCollector(writer Writer, config CollectorConfig) (Collector, error) {
	opts := MQTT.NewClientOptions().AddBroker(config.Broker)
	opts.Username = config.Username
	opts.Password = config.Password
	if config.Pattern == "" {
		config.Pattern = "#"
	}
	brokerURL, err := url.Parse(config.Broker)
	if err != nil {
		return nil, err
	}
	if brokerURL.Scheme == "tls" {
		host, _, _ := net.SplitHostPort(brokerURL.Host)
		opts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
			ServerName: host,
		}
	}
	opts.AutoReconnect = true

	return &mqttCollector{
		opts:    opts,
		config:  config,
		writer:  writer,
		connect: MQTT.NewClient,
	}, nil
}
