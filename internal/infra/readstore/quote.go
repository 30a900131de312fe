package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"service-broker/internal/infra"
	sqlc "service-broker/internal/infra/sqlc/generated"
	"service-broker/internal/pkg/pgconv"
	"service-broker/internal/usecase/queries"
	"service-broker/internal/usecase/shared"
)

type QuoteReadQueries interface {
	GetQuoteView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetQuoteViewRow, error)
	ListQuoteViewsByRequest(ctx context.Context, db sqlc.DBTX, requestID uuid.UUID) ([]sqlc.ListQuoteViewsByRequestRow, error)
	ListQuoteViewsByAgency(ctx context.Context, db sqlc.DBTX, agencyID uuid.UUID) ([]sqlc.ListQuoteViewsByAgencyRow, error)
	ListQuotesExpiringBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.ListQuotesExpiringBetweenParams) ([]sqlc.ListQuotesExpiringBetweenRow, error)
}

type QuoteReadStore struct {
	queries QuoteReadQueries
	db      sqlc.DBTX
}

func NewQuoteReadStore(queries QuoteReadQueries, db sqlc.DBTX) *QuoteReadStore {
	return &QuoteReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *QuoteReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.QuoteView, uuid.UUID, error) {
	row, err := r.queries.GetQuoteView(ctx, r.db, id)
	if err != nil {
		return nil, uuid.Nil, infra.WrapRepoErr("failed to find quote", err)
	}
	view, err := toQuoteView(quoteColumns{
		ID: row.ID, RequestID: row.RequestID, AgencyID: row.AgencyID, AgencyName: row.AgencyName,
		Amount: row.Amount, PlatformCommission: row.PlatformCommission, AgencyEarnings: row.AgencyEarnings,
		ProcessingDays: row.ProcessingDays, ValidUntil: row.ValidUntil, Status: row.Status,
		CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt, DecidedAt: row.DecidedAt,
	})
	if err != nil {
		return nil, uuid.Nil, err
	}
	return view, row.ApplicantID, nil
}

func (r *QuoteReadStore) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*queries.QuoteView, error) {
	rows, err := r.queries.ListQuoteViewsByRequest(ctx, r.db, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list quotes of request", err)
	}

	views := make([]*queries.QuoteView, 0, len(rows))
	for _, row := range rows {
		view, err := toQuoteView(quoteColumns(row))
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (r *QuoteReadStore) ListByAgency(ctx context.Context, agencyID uuid.UUID) ([]*queries.AgencyQuoteView, error) {
	rows, err := r.queries.ListQuoteViewsByAgency(ctx, r.db, agencyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list agency quotes", err)
	}

	views := make([]*queries.AgencyQuoteView, 0, len(rows))
	for _, row := range rows {
		view, err := toQuoteView(quoteColumns{
			ID: row.ID, RequestID: row.RequestID, AgencyID: row.AgencyID, AgencyName: row.AgencyName,
			Amount: row.Amount, PlatformCommission: row.PlatformCommission, AgencyEarnings: row.AgencyEarnings,
			ProcessingDays: row.ProcessingDays, ValidUntil: row.ValidUntil, Status: row.Status,
			CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt, DecidedAt: row.DecidedAt,
		})
		if err != nil {
			return nil, err
		}
		views = append(views, &queries.AgencyQuoteView{QuoteView: *view, RequestStatus: row.RequestStatus})
	}
	return views, nil
}

// ExpiringBetween lists pending quotes whose deadline falls in (from, to].
func (r *QuoteReadStore) ExpiringBetween(ctx context.Context, from, to time.Time) ([]shared.ExpiringQuote, error) {
	rows, err := r.queries.ListQuotesExpiringBetween(ctx, r.db, sqlc.ListQuotesExpiringBetweenParams{
		ValidUntil:   pgconv.TimeToPgtype(from),
		ValidUntil_2: pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expiring quotes", err)
	}

	out := make([]shared.ExpiringQuote, 0, len(rows))
	for _, row := range rows {
		out = append(out, shared.ExpiringQuote{
			QuoteID:     row.ID,
			RequestID:   row.RequestID,
			AgencyID:    row.AgencyID,
			ApplicantID: row.ApplicantID,
			ValidUntil:  pgconv.TimeFromPgtype(row.ValidUntil),
		})
	}
	return out, nil
}

// quoteColumns mirrors ListQuoteViewsByRequestRow; the other view rows are
// copied into it field by field.
type quoteColumns struct {
	ID                 uuid.UUID
	RequestID          uuid.UUID
	AgencyID           uuid.UUID
	AgencyName         string
	Amount             pgtype.Numeric
	PlatformCommission pgtype.Numeric
	AgencyEarnings     pgtype.Numeric
	ProcessingDays     int32
	ValidUntil         pgtype.Timestamptz
	Status             string
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
	DecidedAt          pgtype.Timestamptz
}

func toQuoteView(c quoteColumns) (*queries.QuoteView, error) {
	amount, err := pgconv.DecimalFromNumeric(c.Amount)
	if err != nil {
		return nil, infra.WrapRepoErr("stored quote amount is corrupt", err, infra.KindDBFailure)
	}
	commission, err := pgconv.DecimalFromNumeric(c.PlatformCommission)
	if err != nil {
		return nil, infra.WrapRepoErr("stored quote commission is corrupt", err, infra.KindDBFailure)
	}
	earnings, err := pgconv.DecimalFromNumeric(c.AgencyEarnings)
	if err != nil {
		return nil, infra.WrapRepoErr("stored quote earnings are corrupt", err, infra.KindDBFailure)
	}
	return &queries.QuoteView{
		ID:                 c.ID,
		RequestID:          c.RequestID,
		AgencyID:           c.AgencyID,
		AgencyName:         c.AgencyName,
		Amount:             amount,
		PlatformCommission: commission,
		AgencyEarnings:     earnings,
		ProcessingDays:     int(c.ProcessingDays),
		ValidUntil:         pgconv.TimeFromPgtype(c.ValidUntil),
		Status:             c.Status,
		CreatedAt:          pgconv.TimeFromPgtype(c.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(c.UpdatedAt),
		DecidedAt:          pgconv.TimePtrFromPgtype(c.DecidedAt),
	}, nil
}
