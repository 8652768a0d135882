package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

// Publisher delivers domain events. Publishing is fire and forget: a failure never fails the request.
type Publisher interface {
	Publish(ctx context.Context, e Event)
	Close()
}

type NATSPublisher struct {
	conn *nats.Conn
}

func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("devconnect"), nats.MaxReconnects(-1))
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	log.Info().Str("url", conn.ConnectedUrl()).Msg("Connected to NATS")
	return &NATSPublisher{conn: conn}, nil
}

func (p *NATSPublisher) Publish(ctx context.Context, e Event) {
	if p.conn == nil || !p.conn.IsConnected() {
		log.Warn().Str("subject", e.EventType).Msg("NATS connection is closed, event dropped")
		return
	}
	data, err := json.Marshal(e)
	if err != nil {
		log.Error().Err(err).Str("subject", e.EventType).Msg("cannot encode event")
		return
	}
	if err := p.conn.Publish(e.EventType, data); err != nil {
		log.Error().Err(err).Str("subject", e.EventType).Msg("Failed to publish event")
	}
}

// Ping reports whether the connection to the server is up.
func (p *NATSPublisher) Ping(ctx context.Context) error {
	if p.conn == nil {
		return fmt.Errorf("nats connection is not open")
	}
	if !p.conn.IsConnected() {
		return fmt.Errorf("nats connection is %s", p.conn.Status())
	}
	return nil
}

func (p *NATSPublisher) Close() {
	if p.conn != nil {
		if err := p.conn.Drain(); err != nil {
			p.conn.Close()
		}
	}
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, e Event) {}
func (NoopPublisher) Close()                               {}

// RecordingPublisher keeps every event in memory.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []Event
}

func (r *RecordingPublisher) Publish(ctx context.Context, e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *RecordingPublisher) Close() {}

func (r *RecordingPublisher) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Types returns the event types in publishing order.
func (r *RecordingPublisher) Types() []string {
	events := r.Events()
	types := make([]string, 0, len(events))
	for _, e := range events {
		types = append(types, e.EventType)
	}
	return types
}
