package quote

import (
	"time"

	"service-broker/internal/domain/commission"
	"service-broker/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveProcessingDays = errs.Wrap(errs.ErrValidation, "processing time must be a positive number of days")
	ErrValidityInPast            = errs.Wrap(errs.ErrValidation, "validity deadline must be in the future")
	ErrProcessingDaysTooLarge    = errs.Wrapf(errs.ErrValidation, "processing days must not exceed %d", MaxProcessingDays)
	ErrNotPending                = errs.Wrap(errs.ErrAlreadyDecided, "quote is no longer pending")
	ErrExpired                   = errs.Wrap(errs.ErrQuoteExpired, "quote validity deadline has passed")
)

const MaxProcessingDays = 3650

// Terms is what an agency bids: price, turnaround and how long the offer holds.
type Terms struct {
	Amount         decimal.Decimal
	ProcessingDays int
	ValidUntil     time.Time
}

func (t Terms) validate(now time.Time) error {
	if t.ProcessingDays <= 0 {
		return ErrNonPositiveProcessingDays
	}
	if t.ProcessingDays > MaxProcessingDays {
		return ErrProcessingDaysTooLarge
	}
	if !t.ValidUntil.After(now) {
		return ErrValidityInPast
	}
	return nil
}

type Quote struct {
	id             uuid.UUID
	requestID      uuid.UUID
	agencyID       uuid.UUID
	amount         decimal.Decimal
	commission     decimal.Decimal
	earnings       decimal.Decimal
	processingDays int
	validUntil     time.Time
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
	decidedAt      *time.Time
}

func NewQuote(
	calc commission.Calculator,
	requestID, agencyID uuid.UUID,
	terms Terms,
	commissionRate decimal.Decimal,
	now time.Time,
) (*Quote, error) {
	q := &Quote{
		id:        uuid.New(),
		requestID: requestID,
		agencyID:  agencyID,
		status:    StatusPending,
		createdAt: now,
	}
	if err := q.applyTerms(calc, terms, commissionRate, now); err != nil {
		return nil, err
	}
	return q, nil
}

func ReconstructQuote(
	id, requestID, agencyID uuid.UUID,
	amount, platformCommission, agencyEarnings decimal.Decimal,
	processingDays int,
	validUntil time.Time,
	status Status,
	createdAt, updatedAt time.Time,
	decidedAt *time.Time,
) *Quote {
	return &Quote{
		id:             id,
		requestID:      requestID,
		agencyID:       agencyID,
		amount:         amount,
		commission:     platformCommission,
		earnings:       agencyEarnings,
		processingDays: processingDays,
		validUntil:     validUntil,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		decidedAt:      decidedAt,
	}
}

// Revise replaces the terms of a pending quote, recomputing the split from scratch.
func (q *Quote) Revise(calc commission.Calculator, terms Terms, commissionRate decimal.Decimal, now time.Time) error {
	if q.status != StatusPending {
		return ErrNotPending
	}
	return q.applyTerms(calc, terms, commissionRate, now)
}

func (q *Quote) applyTerms(calc commission.Calculator, terms Terms, commissionRate decimal.Decimal, now time.Time) error {
	if err := terms.validate(now); err != nil {
		return err
	}
	split, err := calc.Compute(terms.Amount, commissionRate)
	if err != nil {
		return err
	}
	q.amount = split.QuotedAmount
	q.commission = split.PlatformCommission
	q.earnings = split.AgencyEarnings
	q.processingDays = terms.ProcessingDays
	q.validUntil = terms.ValidUntil
	q.updatedAt = now
	return nil
}

// IsExpiredAt reports a pending quote whose deadline has passed.
func (q *Quote) IsExpiredAt(now time.Time) bool {
	return q.status == StatusPending && !q.validUntil.After(now)
}

// MarkExpired moves a stale pending quote to expired. Any other state is left
// alone, so repeated calls are no-ops. Reports whether it changed.
func (q *Quote) MarkExpired(now time.Time) bool {
	if !q.IsExpiredAt(now) {
		return false
	}
	q.status = StatusExpired
	q.decidedAt = &now
	q.updatedAt = now
	return true
}

func (q *Quote) Accept(now time.Time) error {
	return q.decide(StatusAccepted, now)
}

func (q *Quote) Reject(now time.Time) error {
	return q.decide(StatusRejected, now)
}

func (q *Quote) decide(to Status, now time.Time) error {
	if q.status != StatusPending {
		return ErrNotPending
	}
	q.status = to
	q.decidedAt = &now
	q.updatedAt = now
	return nil
}

func (q *Quote) ID() uuid.UUID                       { return q.id }
func (q *Quote) RequestID() uuid.UUID                { return q.requestID }
func (q *Quote) AgencyID() uuid.UUID                 { return q.agencyID }
func (q *Quote) Amount() decimal.Decimal             { return q.amount }
func (q *Quote) PlatformCommission() decimal.Decimal { return q.commission }
func (q *Quote) AgencyEarnings() decimal.Decimal     { return q.earnings }
func (q *Quote) ProcessingDays() int                 { return q.processingDays }
func (q *Quote) ValidUntil() time.Time               { return q.validUntil }
func (q *Quote) Status() Status                      { return q.status }
func (q *Quote) CreatedAt() time.Time                { return q.createdAt }
func (q *Quote) UpdatedAt() time.Time                { return q.updatedAt }
func (q *Quote) DecidedAt() *time.Time               { return q.decidedAt }
