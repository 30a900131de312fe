package repository

import (
	"context"
	"time"

	"service-broker/internal/infra"
	sqlc "service-broker/internal/infra/sqlc/generated"
	"service-broker/internal/pkg/pgconv"
)

const NotificationStatusQueued = "queued"

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
}

// NotificationRepository appends to the notification_jobs outbox.
type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
		Status:  NotificationStatusQueued,
	}

	err := r.queries.CreateNotificationJob(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}
