package converter

import (
	"fmt"
	"math"

	"service-broker/internal/domain/quote"
	sqlc "service-broker/internal/infra/sqlc/generated"
	"service-broker/internal/pkg/pgconv"
)

func QuoteToCreateParams(q *quote.Quote) sqlc.CreateQuoteParams {
	return sqlc.CreateQuoteParams{
		ID:                 q.ID(),
		RequestID:          q.RequestID(),
		AgencyID:           q.AgencyID(),
		Amount:             pgconv.DecimalToNumeric(q.Amount()),
		PlatformCommission: pgconv.DecimalToNumeric(q.PlatformCommission()),
		AgencyEarnings:     pgconv.DecimalToNumeric(q.AgencyEarnings()),
		ProcessingDays:     processingDays(q.ProcessingDays()),
		ValidUntil:         pgconv.TimeToPgtype(q.ValidUntil()),
		Status:             q.Status().String(),
		CreatedAt:          pgconv.TimeToPgtype(q.CreatedAt()),
		UpdatedAt:          pgconv.TimeToPgtype(q.UpdatedAt()),
		DecidedAt:          pgconv.TimePtrToPgtype(q.DecidedAt()),
	}
}

func QuoteToTermsParams(q *quote.Quote) sqlc.UpdateQuoteTermsParams {
	return sqlc.UpdateQuoteTermsParams{
		ID:                 q.ID(),
		Amount:             pgconv.DecimalToNumeric(q.Amount()),
		PlatformCommission: pgconv.DecimalToNumeric(q.PlatformCommission()),
		AgencyEarnings:     pgconv.DecimalToNumeric(q.AgencyEarnings()),
		ProcessingDays:     processingDays(q.ProcessingDays()),
		ValidUntil:         pgconv.TimeToPgtype(q.ValidUntil()),
		UpdatedAt:          pgconv.TimeToPgtype(q.UpdatedAt()),
	}
}

func QuoteToStatusParams(q *quote.Quote) sqlc.UpdateQuoteStatusParams {
	return sqlc.UpdateQuoteStatusParams{
		ID:        q.ID(),
		Status:    q.Status().String(),
		DecidedAt: pgconv.TimePtrToPgtype(q.DecidedAt()),
		UpdatedAt: pgconv.TimeToPgtype(q.UpdatedAt()),
	}
}

func QuoteToDomain(row sqlc.Quotes) (*quote.Quote, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, err
	}
	commission, err := pgconv.DecimalFromNumeric(row.PlatformCommission)
	if err != nil {
		return nil, err
	}
	earnings, err := pgconv.DecimalFromNumeric(row.AgencyEarnings)
	if err != nil {
		return nil, err
	}
	return quote.ReconstructQuote(
		row.ID, row.RequestID, row.AgencyID,
		amount, commission, earnings,
		int(row.ProcessingDays),
		pgconv.TimeFromPgtype(row.ValidUntil),
		quote.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
		pgconv.TimePtrFromPgtype(row.DecidedAt),
	), nil
}

func QuotesToDomain(rows []sqlc.Quotes) ([]*quote.Quote, error) {
	out := make([]*quote.Quote, 0, len(rows))
	for _, row := range rows {
		q, err := QuoteToDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

// quote.MaxProcessingDays keeps this well inside int32
func processingDays(days int) int32 {
	if days > math.MaxInt32 || days < 0 {
		panic(fmt.Sprintf("processing days out of int32 range: %d", days))
	}
	return int32(days)
}
