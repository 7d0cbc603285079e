package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

const DefaultTopic = "agenda.appointments"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes one message per event, keyed by seller so that a
// seller's changes land on one partition in commit order. The writer is
// asynchronous: Publish only enqueues, and delivery failures are reported
// to the handler set with WithDeliveryFailureHandler.
type KafkaPublisher struct {
	writer    messageWriter
	onFailure func(n int, err error)
}

type KafkaOption func(*KafkaPublisher)

func WithDeliveryFailureHandler(fn func(n int, err error)) KafkaOption {
	return func(p *KafkaPublisher) {
		if fn != nil {
			p.onFailure = fn
		}
	}
}

func NewKafkaPublisher(brokers []string, topic string, opts ...KafkaOption) *KafkaPublisher {
	if strings.TrimSpace(topic) == "" {
		topic = DefaultTopic
	}
	p := &KafkaPublisher{onFailure: func(int, error) {}}
	for _, opt := range opts {
		opt(p)
	}
	p.writer = &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
		Async:        true,
		Completion:   p.completion,
	}
	return p
}

func (p *KafkaPublisher) completion(msgs []kafka.Message, err error) {
	if err != nil {
		p.onFailure(len(msgs), err)
	}
}

type appointmentPayload struct {
	ID         string    `json:"id"`
	SellerID   string    `json:"seller_id"`
	ClientName string    `json:"client_name"`
	Notes      string    `json:"notes,omitempty"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
}

type eventPayload struct {
	EventID     string             `json:"event_id"`
	EventType   string             `json:"event_type"`
	OccurredAt  time.Time          `json:"occurred_at"`
	Appointment appointmentPayload `json:"appointment"`
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev Event) error {
	msg, err := toMessage(ev)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func toMessage(ev Event) (kafka.Message, error) {
	a := ev.Appointment
	value, err := json.Marshal(eventPayload{
		EventID:    ev.ID.String(),
		EventType:  string(ev.Type),
		OccurredAt: ev.OccurredAt,
		Appointment: appointmentPayload{
			ID:         a.ID.String(),
			SellerID:   a.SellerID,
			ClientName: a.ClientName,
			Notes:      a.Notes,
			StartTime:  a.StartTime.UTC(),
			EndTime:    a.EndTime.UTC(),
		},
	})
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(a.SellerID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(ev.ID.String())},
			{Key: "event_type", Value: []byte(ev.Type)},
		},
		Time: ev.OccurredAt,
	}, nil
}

func SplitBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
