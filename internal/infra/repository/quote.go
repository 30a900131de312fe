package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"service-broker/internal/domain/quote"
	"service-broker/internal/infra"
	"service-broker/internal/infra/repository/converter"
	sqlc "service-broker/internal/infra/sqlc/generated"
	"service-broker/internal/pkg/pgconv"
)

type QuoteWriteQueries interface {
	CreateQuote(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateQuoteParams) error
	GetQuote(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Quotes, error)
	GetPendingQuoteForAgencyForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPendingQuoteForAgencyForUpdateParams) (sqlc.Quotes, error)
	ListQuotesByRequestForUpdate(ctx context.Context, db sqlc.DBTX, requestID uuid.UUID) ([]sqlc.Quotes, error)
	UpdateQuoteTerms(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateQuoteTermsParams) (int64, error)
	UpdateQuoteStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateQuoteStatusParams) (int64, error)
	ExpireOverdueQuotes(ctx context.Context, db sqlc.DBTX, decidedAt pgtype.Timestamptz) (int64, error)
	ExpireOverdueQuotesForRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.ExpireOverdueQuotesForRequestParams) (int64, error)
}

type QuoteRepository struct {
	queries QuoteWriteQueries
	db      sqlc.DBTX
}

func NewQuoteRepository(queries QuoteWriteQueries, db sqlc.DBTX) *QuoteRepository {
	return &QuoteRepository{
		queries: queries,
		db:      db,
	}
}

func (r *QuoteRepository) Create(ctx context.Context, q *quote.Quote) error {
	if err := r.queries.CreateQuote(ctx, r.db, converter.QuoteToCreateParams(q)); err != nil {
		// quotes_one_live_per_agency surfaces as KindDuplicateKey
		return infra.WrapRepoErr("failed to create quote", err)
	}
	return nil
}

func (r *QuoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*quote.Quote, error) {
	row, err := r.queries.GetQuote(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load quote", err)
	}
	return toQuote(row)
}

// FindPendingForAgency locks the agency's live quote on the request, if any.
func (r *QuoteRepository) FindPendingForAgency(ctx context.Context, requestID, agencyID uuid.UUID) (*quote.Quote, error) {
	row, err := r.queries.GetPendingQuoteForAgencyForUpdate(ctx, r.db, sqlc.GetPendingQuoteForAgencyForUpdateParams{
		RequestID: requestID,
		AgencyID:  agencyID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load pending quote", err)
	}
	return toQuote(row)
}

// LockByRequest locks every quote of the request in id order.
func (r *QuoteRepository) LockByRequest(ctx context.Context, requestID uuid.UUID) ([]*quote.Quote, error) {
	rows, err := r.queries.ListQuotesByRequestForUpdate(ctx, r.db, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock request quotes", err)
	}
	quotes, err := converter.QuotesToDomain(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("stored quote is corrupt", err, infra.KindDBFailure)
	}
	return quotes, nil
}

func (r *QuoteRepository) UpdateTerms(ctx context.Context, q *quote.Quote) error {
	n, err := r.queries.UpdateQuoteTerms(ctx, r.db, converter.QuoteToTermsParams(q))
	return affected("failed to update quote terms", n, err)
}

func (r *QuoteRepository) UpdateStatus(ctx context.Context, q *quote.Quote) error {
	n, err := r.queries.UpdateQuoteStatus(ctx, r.db, converter.QuoteToStatusParams(q))
	return affected("failed to update quote status", n, err)
}

func (r *QuoteRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	n, err := r.queries.ExpireOverdueQuotes(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire overdue quotes", err)
	}
	return n, nil
}

func (r *QuoteRepository) ExpireOverdueForRequest(ctx context.Context, requestID uuid.UUID, now time.Time) (int64, error) {
	n, err := r.queries.ExpireOverdueQuotesForRequest(ctx, r.db, sqlc.ExpireOverdueQuotesForRequestParams{
		RequestID: requestID,
		DecidedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire overdue quotes of request", err)
	}
	return n, nil
}

func toQuote(row sqlc.Quotes) (*quote.Quote, error) {
	q, err := converter.QuoteToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored quote is corrupt", err, infra.KindDBFailure)
	}
	return q, nil
}

func affected(msg string, n int64, err error) error {
	if err != nil {
		return infra.WrapRepoErr(msg, err)
	}
	if n == 0 {
		return infra.WrapRepoErr("quote not found", nil, infra.KindNotFound)
	}
	return nil
}
