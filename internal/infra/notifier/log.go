package notifier

import (
	"context"
	"log/slog"

	"service-broker/internal/usecase/shared"
)

// LogNotifier writes one structured line per notification.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, msg shared.Notification) error {
	attrs := []any{
		"kind", msg.Kind,
		"recipient", msg.Topic(),
		"request_id", msg.RequestID,
		"occurred_at", msg.OccurredAt,
	}
	if msg.QuoteID != nil {
		attrs = append(attrs, "quote_id", *msg.QuoteID)
	}
	n.logger.InfoContext(ctx, "notification", attrs...)
	return nil
}
