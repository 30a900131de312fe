package commands

import (
	"context"
	"log/slog"
	"time"

	"service-broker/internal/domain/eligibility"
	"service-broker/internal/domain/quote"
	"service-broker/internal/domain/request"
	"service-broker/internal/pkg/clock"
	"service-broker/internal/pkg/errs"
	"service-broker/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNotRequestOwner = errs.Wrap(errs.ErrForbidden, "request belongs to another applicant")

type CreateRequestInput struct {
	CategoryID uuid.UUID
	Payload    map[string]any
}

type CreateRequestResult struct {
	RequestID uuid.UUID
}

type RequestCommands interface {
	CreateRequest(ctx context.Context, actor shared.Actor, in CreateRequestInput) (*CreateRequestResult, error)
	CancelRequest(ctx context.Context, actor shared.Actor, requestID uuid.UUID, reason string) error
	StartWork(ctx context.Context, actor shared.Actor, requestID uuid.UUID) error
	CompleteRequest(ctx context.Context, actor shared.Actor, requestID uuid.UUID) error
}

type requestCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	clock    clock.Clock
}

func NewRequestCommands(uow shared.UnitOfWork, notifier shared.Notifier, clk clock.Clock) RequestCommands {
	return &requestCommandsImpl{uow: uow, notifier: notifier, clock: clk}
}

func (c *requestCommandsImpl) CreateRequest(ctx context.Context, actor shared.Actor, in CreateRequestInput) (*CreateRequestResult, error) {
	if err := actor.RequireApplicant(); err != nil {
		return nil, err
	}
	payload, err := request.NewPayload(in.Payload)
	if err != nil {
		return nil, err
	}

	var created *request.Request
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		category, derr := tx.Categories().FindByID(ctx, in.CategoryID)
		if derr != nil {
			return translateNotFound(derr, ErrCategoryNotFound)
		}
		req, derr := request.NewRequest(actor.UserID, category, payload, c.clock.Now())
		if derr != nil {
			return derr
		}
		if derr = tx.Requests().Create(ctx, req); derr != nil {
			return derr
		}
		created = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.notifyEligibleAgencies(ctx, created)
	return &CreateRequestResult{RequestID: created.ID()}, nil
}

// notifyEligibleAgencies resolves against committed state; a resolution
// failure is logged and never undoes the creation.
func (c *requestCommandsImpl) notifyEligibleAgencies(ctx context.Context, req *request.Request) {
	reads := c.uow.CommandReads()
	category, err := reads.CategoryByID(ctx, req.CategoryID())
	if err != nil {
		slog.WarnContext(ctx, "skipping request_created notifications", "request_id", req.ID(), "error", err.Error())
		return
	}
	agencies, err := eligibility.NewResolver(reads.Candidates()).Resolve(ctx, eligibility.Subject{
		Category:   category,
		Country:    req.Country(),
		ResourceID: req.Payload().ResourceID(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "eligibility resolution failed", "request_id", req.ID(), "category_id", category.ID(), "error", err.Error())
		return
	}

	notifications := make([]shared.Notification, 0, len(agencies))
	for _, a := range agencies {
		notifications = append(notifications, shared.Notification{
			Kind:          shared.NotifyRequestCreated,
			RecipientType: shared.RecipientAgency,
			RecipientID:   a.ID(),
			RequestID:     req.ID(),
			OccurredAt:    req.CreatedAt(),
		})
	}
	shared.Dispatch(ctx, c.notifier, notifications...)
}

func (c *requestCommandsImpl) CancelRequest(ctx context.Context, actor shared.Actor, requestID uuid.UUID, reason string) error {
	var (
		cancelled *request.Request
		notify    []uuid.UUID
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, derr := tx.Requests().LockForDecision(ctx, requestID)
		if derr != nil {
			return translateNotFound(derr, ErrRequestNotFound)
		}
		if !actor.IsAdmin() && !req.IsOwnedBy(actor.UserID) {
			return ErrNotRequestOwner
		}
		winner := req.WinningAgencyID()

		if derr = req.Cancel(reason, c.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.Requests().Update(ctx, req); derr != nil {
			return derr
		}

		quotes, derr := tx.Quotes().LockByRequest(ctx, requestID)
		if derr != nil {
			return derr
		}
		notify = cancellationRecipients(winner, quotes)
		cancelled = req
		return nil
	})
	if err != nil {
		return err
	}

	notifications := make([]shared.Notification, 0, len(notify))
	for _, agencyID := range notify {
		notifications = append(notifications, shared.Notification{
			Kind:          shared.NotifyRequestCancelled,
			RecipientType: shared.RecipientAgency,
			RecipientID:   agencyID,
			RequestID:     cancelled.ID(),
			OccurredAt:    *cancelled.CancelledAt(),
		})
	}
	shared.Dispatch(ctx, c.notifier, notifications...)
	return nil
}

// cancellationRecipients is the former winner plus every agency still holding a pending quote.
func cancellationRecipients(winner *uuid.UUID, quotes []*quote.Quote) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var out []uuid.UUID
	if winner != nil {
		seen[*winner] = true
		out = append(out, *winner)
	}
	for _, q := range quotes {
		if q.Status() == quote.StatusPending && !seen[q.AgencyID()] {
			seen[q.AgencyID()] = true
			out = append(out, q.AgencyID())
		}
	}
	return out
}

func (c *requestCommandsImpl) StartWork(ctx context.Context, actor shared.Actor, requestID uuid.UUID) error {
	return c.progress(ctx, actor, requestID, (*request.Request).StartWork)
}

func (c *requestCommandsImpl) CompleteRequest(ctx context.Context, actor shared.Actor, requestID uuid.UUID) error {
	return c.progress(ctx, actor, requestID, (*request.Request).Complete)
}

func (c *requestCommandsImpl) progress(
	ctx context.Context,
	actor shared.Actor,
	requestID uuid.UUID,
	step func(*request.Request, uuid.UUID, time.Time) error,
) error {
	agencyID, err := actor.Agency()
	if err != nil {
		return err
	}
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, derr := tx.Requests().LockForDecision(ctx, requestID)
		if derr != nil {
			return translateNotFound(derr, ErrRequestNotFound)
		}
		if derr = step(req, agencyID, c.clock.Now()); derr != nil {
			return derr
		}
		return tx.Requests().Update(ctx, req)
	})
}
