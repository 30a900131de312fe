package commands

import (
	"context"
	"time"

	"service-broker/internal/domain/acceptance"
	"service-broker/internal/domain/commission"
	"service-broker/internal/domain/eligibility"
	"service-broker/internal/domain/quote"
	"service-broker/internal/domain/request"
	"service-broker/internal/infra"
	"service-broker/internal/pkg/clock"
	"service-broker/internal/pkg/errs"
	"service-broker/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrConcurrentQuote = errs.Wrap(errs.ErrAlreadyDecided, "another quote from this agency was recorded concurrently")

type SubmitQuoteInput struct {
	Amount         decimal.Decimal
	ProcessingDays int
	ValidUntil     time.Time
}

type SubmitQuoteResult struct {
	QuoteID uuid.UUID
	Created bool
}

type AcceptQuoteResult struct {
	RequestID uuid.UUID
	QuoteID   uuid.UUID
}

type SweepResult struct {
	Expired      int64
	ExpiringSoon int
}

type QuoteCommands interface {
	SubmitQuote(ctx context.Context, actor shared.Actor, requestID uuid.UUID, in SubmitQuoteInput) (*SubmitQuoteResult, error)
	AcceptQuote(ctx context.Context, actor shared.Actor, quoteID uuid.UUID) (*AcceptQuoteResult, error)
	RejectQuote(ctx context.Context, actor shared.Actor, quoteID uuid.UUID) error
	SweepQuotes(ctx context.Context, actor shared.Actor, window time.Duration) (*SweepResult, error)
}

type quoteCommandsImpl struct {
	uow        shared.UnitOfWork
	calculator commission.Calculator
	notifier   shared.Notifier
	clock      clock.Clock
}

func NewQuoteCommands(uow shared.UnitOfWork, calculator commission.Calculator, notifier shared.Notifier, clk clock.Clock) QuoteCommands {
	return &quoteCommandsImpl{
		uow:        uow,
		calculator: calculator,
		notifier:   notifier,
		clock:      clk,
	}
}

// SubmitQuote records a bid, or revises the agency's pending bid in place.
// Eligibility is re-resolved inside the transaction from live assignments.
func (c *quoteCommandsImpl) SubmitQuote(ctx context.Context, actor shared.Actor, requestID uuid.UUID, in SubmitQuoteInput) (*SubmitQuoteResult, error) {
	agencyID, err := actor.Agency()
	if err != nil {
		return nil, err
	}
	terms := quote.Terms{
		Amount:         in.Amount,
		ProcessingDays: in.ProcessingDays,
		ValidUntil:     in.ValidUntil,
	}

	var (
		result    SubmitQuoteResult
		applicant uuid.UUID
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		req, derr := tx.Requests().LockForQuoting(ctx, requestID)
		if derr != nil {
			return translateNotFound(derr, ErrRequestNotFound)
		}
		if derr = req.EnsureQuotable(agencyID); derr != nil {
			return derr
		}
		category, derr := tx.Categories().FindByID(ctx, req.CategoryID())
		if derr != nil {
			return translateNotFound(derr, ErrCategoryNotFound)
		}
		subject := eligibility.Subject{
			Category:   category,
			Country:    req.Country(),
			ResourceID: req.Payload().ResourceID(),
		}
		if derr = eligibility.NewResolver(tx.Candidates()).Authorize(ctx, subject, agencyID); derr != nil {
			return derr
		}

		existing, derr := tx.Quotes().FindPendingForAgency(ctx, requestID, agencyID)
		if derr != nil && !infra.IsKind(derr, infra.KindNotFound) {
			return derr
		}
		if existing != nil && existing.MarkExpired(now) {
			if derr = tx.Quotes().UpdateStatus(ctx, existing); derr != nil {
				return derr
			}
			existing = nil
		}

		if existing != nil {
			if derr = existing.Revise(c.calculator, terms, category.CommissionRate(), now); derr != nil {
				return derr
			}
			if derr = tx.Quotes().UpdateTerms(ctx, existing); derr != nil {
				return derr
			}
			result = SubmitQuoteResult{QuoteID: existing.ID()}
		} else {
			q, derr := quote.NewQuote(c.calculator, requestID, agencyID, terms, category.CommissionRate(), now)
			if derr != nil {
				return derr
			}
			if derr = tx.Quotes().Create(ctx, q); derr != nil {
				if infra.IsKind(derr, infra.KindDuplicateKey) {
					return ErrConcurrentQuote
				}
				return derr
			}
			result = SubmitQuoteResult{QuoteID: q.ID(), Created: true}
		}

		changed, derr := req.MarkQuoted(now)
		if derr != nil {
			return derr
		}
		if changed {
			if derr = tx.Requests().Update(ctx, req); derr != nil {
				return derr
			}
		}
		applicant = req.ApplicantID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	shared.Dispatch(ctx, c.notifier, shared.Notification{
		Kind:          shared.NotifyQuoteSubmitted,
		RecipientType: shared.RecipientApplicant,
		RecipientID:   applicant,
		RequestID:     requestID,
		QuoteID:       &result.QuoteID,
		OccurredAt:    c.clock.Now(),
	})
	return &result, nil
}

// AcceptQuote picks the winning quote. The request row and every quote on it
// are locked before the decision, and the winner write is additionally
// guarded on an empty winning agency, so concurrent accepts on one request
// produce exactly one winner. An expired target is persisted as expired
// before QuoteExpired is returned.
func (c *quoteCommandsImpl) AcceptQuote(ctx context.Context, actor shared.Actor, quoteID uuid.UUID) (*AcceptQuoteResult, error) {
	if err := actor.RequireApplicant(); err != nil {
		return nil, err
	}

	var (
		outcome    acceptance.Outcome
		decideErr  error
		resultedIn *AcceptQuoteResult
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, target, siblings, derr := c.lockDecision(ctx, tx, quoteID)
		if derr != nil {
			return derr
		}

		outcome, decideErr = acceptance.Accept(req, target, siblings, actor.UserID, c.clock.Now())
		if decideErr != nil && !errs.Is(decideErr, errs.ErrQuoteExpired) {
			return decideErr
		}
		if outcome.RequestChanged {
			if derr = tx.Requests().AssignWinner(ctx, outcome.Request); derr != nil {
				return derr
			}
		}
		for _, q := range outcome.Changed {
			if derr = tx.Quotes().UpdateStatus(ctx, q); derr != nil {
				return derr
			}
		}
		resultedIn = &AcceptQuoteResult{RequestID: req.ID(), QuoteID: target.ID()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if decideErr != nil {
		return nil, decideErr
	}

	shared.Dispatch(ctx, c.notifier, decisionNotifications(outcome)...)
	return resultedIn, nil
}

func (c *quoteCommandsImpl) RejectQuote(ctx context.Context, actor shared.Actor, quoteID uuid.UUID) error {
	if err := actor.RequireApplicant(); err != nil {
		return err
	}

	var (
		outcome   acceptance.Outcome
		decideErr error
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, target, _, derr := c.lockDecision(ctx, tx, quoteID)
		if derr != nil {
			return derr
		}

		outcome, decideErr = acceptance.Reject(req, target, actor.UserID, c.clock.Now())
		if decideErr != nil && !errs.Is(decideErr, errs.ErrQuoteExpired) {
			return decideErr
		}
		for _, q := range outcome.Changed {
			if derr = tx.Quotes().UpdateStatus(ctx, q); derr != nil {
				return derr
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if decideErr != nil {
		return decideErr
	}

	shared.Dispatch(ctx, c.notifier, decisionNotifications(outcome)...)
	return nil
}

// lockDecision locks the request, then all of its quotes, and returns the
// target as re-read under the lock.
func (c *quoteCommandsImpl) lockDecision(ctx context.Context, tx shared.Tx, quoteID uuid.UUID) (*request.Request, *quote.Quote, []*quote.Quote, error) {
	unlocked, err := tx.Quotes().FindByID(ctx, quoteID)
	if err != nil {
		return nil, nil, nil, translateNotFound(err, ErrQuoteNotFound)
	}
	req, err := tx.Requests().LockForDecision(ctx, unlocked.RequestID())
	if err != nil {
		return nil, nil, nil, translateNotFound(err, ErrRequestNotFound)
	}
	siblings, err := tx.Quotes().LockByRequest(ctx, req.ID())
	if err != nil {
		return nil, nil, nil, err
	}
	for _, q := range siblings {
		if q.ID() == quoteID {
			return req, q, siblings, nil
		}
	}
	return nil, nil, nil, ErrQuoteNotFound
}

func decisionNotifications(outcome acceptance.Outcome) []shared.Notification {
	var out []shared.Notification
	for _, q := range outcome.Changed {
		var kind shared.NotificationKind
		switch q.Status() {
		case quote.StatusAccepted:
			kind = shared.NotifyQuoteAccepted
		case quote.StatusRejected:
			kind = shared.NotifyQuoteRejected
		default:
			continue
		}
		id := q.ID()
		out = append(out, shared.Notification{
			Kind:          kind,
			RecipientType: shared.RecipientAgency,
			RecipientID:   q.AgencyID(),
			RequestID:     q.RequestID(),
			QuoteID:       &id,
			OccurredAt:    q.UpdatedAt(),
		})
	}
	return out
}

// SweepQuotes expires every overdue pending quote and warns agencies and
// applicants about quotes whose deadline falls inside window.
func (c *quoteCommandsImpl) SweepQuotes(ctx context.Context, actor shared.Actor, window time.Duration) (*SweepResult, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	if window <= 0 {
		return nil, errs.Wrap(errs.ErrValidation, "expiring-soon window must be positive")
	}
	now := c.clock.Now()

	var expired int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Quotes().ExpireOverdue(ctx, now)
		expired = n
		return derr
	})
	if err != nil {
		return nil, err
	}

	soon, err := c.uow.CommandReads().QuotesExpiringBetween(ctx, now, now.Add(window))
	if err != nil {
		return nil, err
	}
	notifications := make([]shared.Notification, 0, 2*len(soon))
	for _, s := range soon {
		id := s.QuoteID
		notifications = append(notifications,
			shared.Notification{
				Kind:          shared.NotifyQuoteExpiringSoon,
				RecipientType: shared.RecipientAgency,
				RecipientID:   s.AgencyID,
				RequestID:     s.RequestID,
				QuoteID:       &id,
				OccurredAt:    now,
			},
			shared.Notification{
				Kind:          shared.NotifyQuoteExpiringSoon,
				RecipientType: shared.RecipientApplicant,
				RecipientID:   s.ApplicantID,
				RequestID:     s.RequestID,
				QuoteID:       &id,
				OccurredAt:    now,
			},
		)
	}
	shared.Dispatch(ctx, c.notifier, notifications...)

	return &SweepResult{Expired: expired, ExpiringSoon: len(soon)}, nil
}
