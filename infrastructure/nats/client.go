package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/Madhavladani/adeptjs64/pkg/logger"
)

const (
	// StreamName เก็บ catalog events ไว้ให้ consumer ย้อนอ่านได้
	StreamName     = "CATALOG_EVENTS"
	streamMaxAge   = 7 * 24 * time.Hour
	connectTimeout = 5 * time.Second
)

// Client wraps NATS connection with JetStream context
type Client struct {
	conn          *nats.Conn
	js            jetstream.JetStream
	subjectPrefix string
}

type ClientConfig struct {
	URL           string // nats://localhost:4222
	SubjectPrefix string // catalog
}

// NewClient เชื่อมต่อ NATS และเตรียม stream สำหรับ subject "<prefix>.>"
func NewClient(cfg ClientConfig) (*Client, error) {
	nc, err := nats.Connect(cfg.URL,
		nats.Name("component-marketplace-api"),
		nats.Timeout(connectTimeout),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	prefix := cfg.SubjectPrefix
	if prefix == "" {
		prefix = "catalog"
	}

	client := &Client{conn: nc, js: js, subjectPrefix: prefix}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := client.setupStream(ctx); err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to setup stream: %w", err)
	}

	logger.Info("NATS client initialized", "url", cfg.URL, "stream", StreamName, "subjects", prefix+".>")
	return client, nil
}

func (c *Client) setupStream(ctx context.Context) error {
	_, err := c.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:        StreamName,
		Subjects:    []string{c.subjectPrefix + ".>"},
		Storage:     jetstream.FileStorage,
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      streamMaxAge,
		Replicas:    1,
		Description: "Catalog and menu change events",
	})
	return err
}

// Subject สร้าง subject เช่น "catalog.category.created"
func (c *Client) Subject(entity, eventType string) string {
	return c.subjectPrefix + "." + entity + "." + eventType
}

func (c *Client) JetStream() jetstream.JetStream {
	return c.js
}

func (c *Client) Close() error {
	if c.conn != nil {
		c.conn.Close()
		logger.Info("NATS connection closed")
	}
	return nil
}

func (c *Client) IsConnected() bool {
	return c.conn != nil && c.conn.IsConnected()
}
