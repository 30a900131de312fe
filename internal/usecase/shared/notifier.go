package shared

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	NotifyRequestCreated    NotificationKind = "request_created"
	NotifyQuoteSubmitted    NotificationKind = "quote_submitted"
	NotifyQuoteAccepted     NotificationKind = "quote_accepted"
	NotifyQuoteRejected     NotificationKind = "quote_rejected"
	NotifyQuoteExpiringSoon NotificationKind = "quote_expiring_soon"
	NotifyRequestCancelled  NotificationKind = "request_cancelled"
)

type RecipientType string

const (
	RecipientAgency    RecipientType = "agency"
	RecipientApplicant RecipientType = "applicant"
)

type Notification struct {
	Kind          NotificationKind
	RecipientType RecipientType
	RecipientID   uuid.UUID
	RequestID     uuid.UUID
	QuoteID       *uuid.UUID
	OccurredAt    time.Time
}

// Topic groups notifications per recipient for delivery workers.
func (n Notification) Topic() string {
	return string(n.RecipientType) + ":" + n.RecipientID.String()
}

// Notifier hands notifications to an external delivery channel.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Dispatch is fire-and-forget: it runs after commit and only logs failures.
func Dispatch(ctx context.Context, notifier Notifier, notifications ...Notification) {
	if notifier == nil {
		return
	}
	for _, n := range notifications {
		if err := notifier.Notify(ctx, n); err != nil {
			slog.WarnContext(ctx, "notification dispatch failed",
				"kind", n.Kind,
				"recipient", n.Topic(),
				"request_id", n.RequestID,
				"error", err.Error())
		}
	}
}
