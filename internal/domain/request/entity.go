package request

import (
	"strings"
	"time"

	"service-broker/internal/domain/catalog"
	"service-broker/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrTerminalState        = errs.Wrap(errs.ErrInvalidTransition, "request is in a terminal state")
	ErrNotQuotable          = errs.Wrap(errs.ErrInvalidTransition, "request can no longer receive quotes")
	ErrNotAcceptable        = errs.Wrap(errs.ErrInvalidTransition, "request is not awaiting a decision")
	ErrNotStartable         = errs.Wrap(errs.ErrInvalidTransition, "request must be accepted before work starts")
	ErrNotCompletable       = errs.Wrap(errs.ErrInvalidTransition, "request must be in progress to complete")
	ErrWinnerAlreadySet     = errs.Wrap(errs.ErrAlreadyAssigned, "request already has a winning agency")
	ErrNotWinningAgency     = errs.Wrap(errs.ErrForbidden, "caller is not the winning agency")
	ErrCancelReasonRequired = errs.Wrap(errs.ErrValidation, "a reason is required to cancel an accepted request")
)

// Request is an applicant's service application.
// winningAgencyID is set exactly when status is accepted, in_progress or completed.
type Request struct {
	id              uuid.UUID
	applicantID     uuid.UUID
	categoryID      uuid.UUID
	status          Status
	winningAgencyID *uuid.UUID
	payload         Payload
	cancelReason    *string
	createdAt       time.Time
	acceptedAt      *time.Time
	completedAt     *time.Time
	cancelledAt     *time.Time
	updatedAt       time.Time
}

func NewRequest(applicantID uuid.UUID, category *catalog.ServiceCategory, payload Payload, now time.Time) (*Request, error) {
	if err := category.EnsureAcceptingRequests(); err != nil {
		return nil, err
	}
	if category.Policy().CountryScoped() && payload.Country() == "" {
		return nil, ErrCountryRequired
	}
	return &Request{
		id:          uuid.New(),
		applicantID: applicantID,
		categoryID:  category.ID(),
		status:      StatusPending,
		payload:     payload,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructRequest(
	id, applicantID, categoryID uuid.UUID,
	status Status,
	winningAgencyID *uuid.UUID,
	payload Payload,
	cancelReason *string,
	createdAt time.Time,
	acceptedAt, completedAt, cancelledAt *time.Time,
	updatedAt time.Time,
) *Request {
	return &Request{
		id:              id,
		applicantID:     applicantID,
		categoryID:      categoryID,
		status:          status,
		winningAgencyID: winningAgencyID,
		payload:         payload,
		cancelReason:    cancelReason,
		createdAt:       createdAt,
		acceptedAt:      acceptedAt,
		completedAt:     completedAt,
		cancelledAt:     cancelledAt,
		updatedAt:       updatedAt,
	}
}

// EnsureQuotable checks the request can take a bid from agencyID.
func (r *Request) EnsureQuotable(agencyID uuid.UUID) error {
	if r.winningAgencyID != nil && *r.winningAgencyID != agencyID {
		return errs.Wrap(errs.ErrNotEligible, "request already has a winning agency")
	}
	if r.status != StatusPending && r.status != StatusQuoted {
		return ErrNotQuotable
	}
	return nil
}

// MarkQuoted moves pending to quoted on the first bid. Reports whether it changed.
func (r *Request) MarkQuoted(now time.Time) (bool, error) {
	switch r.status {
	case StatusPending:
		r.status = StatusQuoted
		r.updatedAt = now
		return true, nil
	case StatusQuoted:
		return false, nil
	default:
		return false, ErrNotQuotable
	}
}

func (r *Request) Accept(agencyID uuid.UUID, now time.Time) error {
	if r.status.IsTerminal() {
		return ErrTerminalState
	}
	if r.winningAgencyID != nil {
		return ErrWinnerAlreadySet
	}
	if r.status != StatusQuoted {
		return ErrNotAcceptable
	}
	r.status = StatusAccepted
	r.winningAgencyID = &agencyID
	r.acceptedAt = &now
	r.updatedAt = now
	return nil
}

func (r *Request) StartWork(agencyID uuid.UUID, now time.Time) error {
	if r.status.IsTerminal() {
		return ErrTerminalState
	}
	if err := r.ensureWinner(agencyID); err != nil {
		return err
	}
	if r.status != StatusAccepted {
		return ErrNotStartable
	}
	r.status = StatusInProgress
	r.updatedAt = now
	return nil
}

func (r *Request) Complete(agencyID uuid.UUID, now time.Time) error {
	if r.status.IsTerminal() {
		return ErrTerminalState
	}
	if err := r.ensureWinner(agencyID); err != nil {
		return err
	}
	if r.status != StatusInProgress {
		return ErrNotCompletable
	}
	r.status = StatusCompleted
	r.completedAt = &now
	r.updatedAt = now
	return nil
}

// Cancel is a terminal side-exit. After acceptance it needs a reason and
// releases the winning agency; the accepted quote keeps the audit trail.
func (r *Request) Cancel(reason string, now time.Time) error {
	if r.status.IsTerminal() {
		return ErrTerminalState
	}
	reason = strings.TrimSpace(reason)
	if r.status == StatusAccepted || r.status == StatusInProgress {
		if reason == "" {
			return ErrCancelReasonRequired
		}
		r.winningAgencyID = nil
	}
	if reason != "" {
		r.cancelReason = &reason
	}
	r.status = StatusCancelled
	r.cancelledAt = &now
	r.updatedAt = now
	return nil
}

func (r *Request) ensureWinner(agencyID uuid.UUID) error {
	if r.winningAgencyID == nil || *r.winningAgencyID != agencyID {
		return ErrNotWinningAgency
	}
	return nil
}

func (r *Request) IsOwnedBy(applicantID uuid.UUID) bool {
	return r.applicantID == applicantID
}

func (r *Request) ID() uuid.UUID               { return r.id }
func (r *Request) ApplicantID() uuid.UUID      { return r.applicantID }
func (r *Request) CategoryID() uuid.UUID       { return r.categoryID }
func (r *Request) Status() Status              { return r.status }
func (r *Request) WinningAgencyID() *uuid.UUID { return r.winningAgencyID }
func (r *Request) Payload() Payload            { return r.payload }
func (r *Request) Country() string             { return r.payload.Country() }
func (r *Request) CancelReason() *string       { return r.cancelReason }
func (r *Request) CreatedAt() time.Time        { return r.createdAt }
func (r *Request) AcceptedAt() *time.Time      { return r.acceptedAt }
func (r *Request) CompletedAt() *time.Time     { return r.completedAt }
func (r *Request) CancelledAt() *time.Time     { return r.cancelledAt }
func (r *Request) UpdatedAt() time.Time        { return r.updatedAt }
