package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

// Publisher delivers order events to interested consumers.
type Publisher interface {
	Publish(envelope Envelope)
	Start(ctx context.Context)
	Close()
}

// KafkaPublisher writes envelopes to a kafka topic through a buffered inbox,
// so publishing never blocks request handling.
type KafkaPublisher struct {
	writer  *kafka.Writer
	inbox   chan kafka.Message
	closeCh chan struct{}
	logger  *slog.Logger
}

func NewKafkaPublisher(brokers []string, topic string, buf int, logger *slog.Logger) *KafkaPublisher {
	if buf <= 0 {
		buf = 1024
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
		inbox:   make(chan kafka.Message, buf),
		closeCh: make(chan struct{}),
		logger:  logger,
	}
}

// Start drains the inbox until the context is cancelled, then flushes
// whatever is still buffered before closing the writer.
func (p *KafkaPublisher) Start(ctx context.Context) {
	go func() {
		defer close(p.closeCh)
		for {
			select {
			case <-ctx.Done():
				close(p.inbox)
				for m := range p.inbox {
					p.write(context.Background(), m)
				}
				_ = p.writer.Close()
				return
			case m, ok := <-p.inbox:
				if !ok {
					_ = p.writer.Close()
					return
				}
				p.write(ctx, m)
			}
		}
	}()
}

// Publish queues the envelope. Drops it with a warning when the inbox is
// full rather than stalling the caller.
func (p *KafkaPublisher) Publish(envelope Envelope) {
	raw, err := json.Marshal(envelope)
	if err != nil {
		p.logger.Error("failed to encode event", "type", envelope.Type, "error", err)
		return
	}
	msg := kafka.Message{
		Key:   []byte(envelope.EventID),
		Value: raw,
		Time:  time.Now(),
	}
	select {
	case p.inbox <- msg:
	default:
		p.logger.Warn("event inbox full, dropping event", "type", envelope.Type, "event_id", envelope.EventID)
	}
}

// Close waits for the drain goroutine to finish.
func (p *KafkaPublisher) Close() {
	<-p.closeCh
}

func (p *KafkaPublisher) write(ctx context.Context, m kafka.Message) {
	if err := p.writer.WriteMessages(ctx, m); err != nil {
		p.logger.Error("failed to publish event", "error", err)
	}
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(Envelope)      {}
func (NoopPublisher) Start(context.Context) {}
func (NoopPublisher) Close()                {}
