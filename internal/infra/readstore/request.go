package readstore

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"service-broker/internal/infra"
	sqlc "service-broker/internal/infra/sqlc/generated"
	"service-broker/internal/pkg/pgconv"
	"service-broker/internal/usecase/queries"
)

type RequestReadQueries interface {
	GetRequestView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetRequestViewRow, error)
	ListRequestsByApplicant(ctx context.Context, db sqlc.DBTX, applicantID uuid.UUID) ([]sqlc.ListRequestsByApplicantRow, error)
	CountQuotesByRequestAndAgency(ctx context.Context, db sqlc.DBTX, arg sqlc.CountQuotesByRequestAndAgencyParams) (int64, error)
}

type RequestReadStore struct {
	queries RequestReadQueries
	db      sqlc.DBTX
}

func NewRequestReadStore(queries RequestReadQueries, db sqlc.DBTX) *RequestReadStore {
	return &RequestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	row, err := r.queries.GetRequestView(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find request", err)
	}

	payload := map[string]any{}
	if len(row.Payload) > 0 {
		if err := json.Unmarshal(row.Payload, &payload); err != nil {
			return nil, infra.WrapRepoErr("stored request payload is corrupt", err, infra.KindDBFailure)
		}
	}

	return &queries.RequestView{
		ID:                row.ID,
		ApplicantID:       row.ApplicantID,
		CategoryID:        row.CategoryID,
		CategoryName:      row.CategoryName,
		AssignmentPolicy:  row.AssignmentPolicy,
		Status:            row.Status,
		WinningAgencyID:   pgconv.UUIDPtrFromPgtype(row.WinningAgencyID),
		WinningAgencyName: pgconv.StringPtrFromPgtype(row.WinningAgencyName),
		Payload:           payload,
		CancelReason:      pgconv.StringPtrFromPgtype(row.CancelReason),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		AcceptedAt:        pgconv.TimePtrFromPgtype(row.AcceptedAt),
		CompletedAt:       pgconv.TimePtrFromPgtype(row.CompletedAt),
		CancelledAt:       pgconv.TimePtrFromPgtype(row.CancelledAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *RequestReadStore) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]*queries.RequestSummaryView, error) {
	rows, err := r.queries.ListRequestsByApplicant(ctx, r.db, applicantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests", err)
	}

	views := make([]*queries.RequestSummaryView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.RequestSummaryView{
			ID:              row.ID,
			CategoryID:      row.CategoryID,
			CategoryName:    row.CategoryName,
			Status:          row.Status,
			WinningAgencyID: pgconv.UUIDPtrFromPgtype(row.WinningAgencyID),
			PendingQuotes:   int(row.PendingQuotes),
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return views, nil
}

func (r *RequestReadStore) HasQuoteFrom(ctx context.Context, requestID, agencyID uuid.UUID) (bool, error) {
	n, err := r.queries.CountQuotesByRequestAndAgency(ctx, r.db, sqlc.CountQuotesByRequestAndAgencyParams{
		RequestID: requestID,
		AgencyID:  agencyID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to count agency quotes", err)
	}
	return n > 0, nil
}
