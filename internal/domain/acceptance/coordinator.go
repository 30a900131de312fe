package acceptance

import (
	"time"

	"service-broker/internal/domain/quote"
	"service-broker/internal/domain/request"
	"service-broker/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotOnRequest = errs.Wrap(errs.ErrAlreadyDecided, "quote does not belong to the request")
	ErrNotApplicant      = errs.Wrap(errs.ErrForbidden, "only the applicant may decide on quotes")
)

// Outcome lists everything a decision mutated. Callers persist Request (when
// RequestChanged) and every quote in Changed inside the same transaction.
type Outcome struct {
	Request        *request.Request
	RequestChanged bool
	Target         *quote.Quote
	Changed        []*quote.Quote
}

// Accept decides target as the winner of req. siblings are the other quotes
// on req, loaded under lock by the caller.
//
// When target has passed its deadline, Outcome still carries the expiry so the
// caller can commit it before surfacing the error.
func Accept(req *request.Request, target *quote.Quote, siblings []*quote.Quote, applicantID uuid.UUID, now time.Time) (Outcome, error) {
	out := Outcome{Request: req, Target: target}
	if err := ensureDecidable(req, target, applicantID); err != nil {
		return out, err
	}
	if target.MarkExpired(now) {
		out.Changed = append(out.Changed, target)
		return out, quote.ErrExpired
	}
	if target.Status() == quote.StatusExpired {
		return out, quote.ErrExpired
	}
	if target.Status() != quote.StatusPending {
		if lostTo(req, target) {
			return out, request.ErrWinnerAlreadySet
		}
		return out, quote.ErrNotPending
	}
	if req.Status().IsTerminal() {
		return out, request.ErrTerminalState
	}
	if req.WinningAgencyID() != nil {
		return out, request.ErrWinnerAlreadySet
	}

	if err := req.Accept(target.AgencyID(), now); err != nil {
		return out, err
	}
	if err := target.Accept(now); err != nil {
		return out, err
	}
	out.RequestChanged = true
	out.Changed = append(out.Changed, target)

	for _, q := range siblings {
		if q.ID() == target.ID() || q.Status() != quote.StatusPending {
			continue
		}
		if err := q.Reject(now); err != nil {
			return out, err
		}
		out.Changed = append(out.Changed, q)
	}
	return out, nil
}

// Reject declines one pending quote. The request is never touched.
func Reject(req *request.Request, target *quote.Quote, applicantID uuid.UUID, now time.Time) (Outcome, error) {
	out := Outcome{Request: req, Target: target}
	if err := ensureDecidable(req, target, applicantID); err != nil {
		return out, err
	}
	if target.MarkExpired(now) {
		out.Changed = append(out.Changed, target)
		return out, quote.ErrExpired
	}
	if target.Status() == quote.StatusExpired {
		return out, quote.ErrExpired
	}
	if target.Status() != quote.StatusPending {
		return out, quote.ErrNotPending
	}
	if req.Status().IsTerminal() {
		return out, request.ErrTerminalState
	}
	if req.WinningAgencyID() != nil {
		return out, request.ErrWinnerAlreadySet
	}
	if err := target.Reject(now); err != nil {
		return out, err
	}
	out.Changed = append(out.Changed, target)
	return out, nil
}

// lostTo reports a quote that was rejected because another agency won.
func lostTo(req *request.Request, q *quote.Quote) bool {
	winner := req.WinningAgencyID()
	return q.Status() == quote.StatusRejected && winner != nil && *winner != q.AgencyID()
}

func ensureDecidable(req *request.Request, target *quote.Quote, applicantID uuid.UUID) error {
	if target.RequestID() != req.ID() {
		return ErrQuoteNotOnRequest
	}
	if !req.IsOwnedBy(applicantID) {
		return ErrNotApplicant
	}
	return nil
}
