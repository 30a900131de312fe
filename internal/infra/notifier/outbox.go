package notifier

import (
	"context"
	"encoding/json"
	"time"

	"service-broker/internal/usecase/shared"
)

// message is the wire shape shared by the outbox and Mongo sinks.
type message struct {
	Kind          string    `json:"kind" bson:"kind"`
	RecipientType string    `json:"recipient_type" bson:"recipient_type"`
	RecipientID   string    `json:"recipient_id" bson:"recipient_id"`
	RequestID     string    `json:"request_id" bson:"request_id"`
	QuoteID       *string   `json:"quote_id,omitempty" bson:"quote_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at" bson:"occurred_at"`
}

func toMessage(n shared.Notification) message {
	m := message{
		Kind:          string(n.Kind),
		RecipientType: string(n.RecipientType),
		RecipientID:   n.RecipientID.String(),
		RequestID:     n.RequestID.String(),
		OccurredAt:    n.OccurredAt,
	}
	if n.QuoteID != nil {
		s := n.QuoteID.String()
		m.QuoteID = &s
	}
	return m
}

type JobWriter interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}

// OutboxNotifier queues notifications in notification_jobs for an external
// delivery worker. It writes through the pool, after the business commit.
type OutboxNotifier struct {
	jobs JobWriter
}

func NewOutboxNotifier(jobs JobWriter) *OutboxNotifier {
	return &OutboxNotifier{jobs: jobs}
}

func (n *OutboxNotifier) Notify(ctx context.Context, msg shared.Notification) error {
	payload, err := json.Marshal(toMessage(msg))
	if err != nil {
		return err
	}
	return n.jobs.CreateJob(ctx, string(msg.Kind), msg.Topic(), payload, msg.OccurredAt)
}
