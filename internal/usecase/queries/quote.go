package queries

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"service-broker/internal/domain/quote"
	"service-broker/internal/domain/user"
	"service-broker/internal/infra"
	"service-broker/internal/pkg/clock"
	"service-broker/internal/pkg/errs"
	"service-broker/internal/usecase/shared"
)

var ErrInvalidSort = errs.Wrap(errs.ErrValidation, "sort must be one of amount, processing_days, created_at")

type QuoteSort string

const (
	SortByAmount         QuoteSort = "amount"
	SortByProcessingDays QuoteSort = "processing_days"
	SortByCreatedAt      QuoteSort = "created_at"
)

// ParseQuoteSort defaults to amount.
func ParseQuoteSort(s string) (QuoteSort, error) {
	switch QuoteSort(s) {
	case "":
		return SortByAmount, nil
	case SortByAmount, SortByProcessingDays, SortByCreatedAt:
		return QuoteSort(s), nil
	default:
		return "", ErrInvalidSort
	}
}

var (
	ErrQuoteNotFound = errs.Wrap(errs.ErrNotFound, "quote not found")
	ErrQuoteAccess   = errs.Wrap(errs.ErrForbidden, "quote access denied")
)

type QuoteReadStore interface {
	// FindByID also returns the applicant who owns the quoted request.
	FindByID(ctx context.Context, id uuid.UUID) (*QuoteView, uuid.UUID, error)
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*QuoteView, error)
	ListByAgency(ctx context.Context, agencyID uuid.UUID) ([]*AgencyQuoteView, error)
}

// QuoteExpirer persists lazy expiry before a listing is served.
type QuoteExpirer interface {
	ExpireOverdueForRequest(ctx context.Context, requestID uuid.UUID, now time.Time) (int64, error)
}

type QuoteQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*QuoteView, error)
	ListByRequest(ctx context.Context, actor shared.Actor, requestID uuid.UUID, sort QuoteSort) ([]*QuoteView, error)
	ListForAgency(ctx context.Context, actor shared.Actor) ([]*AgencyQuoteView, error)
}

type quoteQueriesImpl struct {
	gate    requestGate
	quotes  QuoteReadStore
	expirer QuoteExpirer
	clock   clock.Clock
}

func NewQuoteQueries(
	requests RequestReadStore,
	catalogStore CatalogReadStore,
	quotes QuoteReadStore,
	expirer QuoteExpirer,
	clk clock.Clock,
) QuoteQueries {
	return &quoteQueriesImpl{
		gate:    requestGate{requests: requests, catalog: catalogStore},
		quotes:  quotes,
		expirer: expirer,
		clock:   clk,
	}
}

func (q *quoteQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*QuoteView, error) {
	view, applicantID, err := q.quotes.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrQuoteNotFound
		}
		return nil, err
	}

	if !actor.IsAdmin() && applicantID != actor.UserID {
		agencyID, aerr := actor.Agency()
		if aerr != nil || agencyID != view.AgencyID {
			return nil, ErrQuoteAccess
		}
	}

	now := q.clock.Now()
	if view.Status == quote.StatusPending.String() && !now.Before(view.ValidUntil) {
		if _, err := q.expirer.ExpireOverdueForRequest(ctx, view.RequestID, now); err != nil {
			return nil, err
		}
		view.Status = quote.StatusExpired.String()
		view.DecidedAt = &now
	}
	return view, nil
}

func (q *quoteQueriesImpl) ListByRequest(ctx context.Context, actor shared.Actor, requestID uuid.UUID, sort QuoteSort) ([]*QuoteView, error) {
	if _, err := q.gate.open(ctx, actor, requestID); err != nil {
		return nil, err
	}

	if _, err := q.expirer.ExpireOverdueForRequest(ctx, requestID, q.clock.Now()); err != nil {
		return nil, err
	}

	views, err := q.quotes.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	SortQuotes(views, sort)
	AssignBadges(views)

	if actor.Role != user.RoleAgency {
		return views, nil
	}
	// competitors' quotes stay hidden, and so do badges that would leak them
	agencyID, err := actor.Agency()
	if err != nil {
		return nil, err
	}
	own := make([]*QuoteView, 0, 1)
	for _, v := range views {
		if v.AgencyID == agencyID {
			v.Cheapest, v.Fastest = false, false
			own = append(own, v)
		}
	}
	return own, nil
}

func (q *quoteQueriesImpl) ListForAgency(ctx context.Context, actor shared.Actor) ([]*AgencyQuoteView, error) {
	agencyID, err := actor.Agency()
	if err != nil {
		return nil, err
	}
	views, err := q.quotes.ListByAgency(ctx, agencyID)
	if err != nil {
		return nil, err
	}
	now := q.clock.Now()
	for _, v := range views {
		// not yet swept; report what a read of the quote would record
		if v.Status == quote.StatusPending.String() && !now.Before(v.ValidUntil) {
			v.Status = quote.StatusExpired.String()
		}
	}
	return views, nil
}

// SortQuotes orders ascending by the given key, breaking ties by creation
// time then id so the order is stable across calls.
func SortQuotes(views []*QuoteView, sort QuoteSort) {
	slices.SortStableFunc(views, func(a, b *QuoteView) int {
		var c int
		switch sort {
		case SortByProcessingDays:
			c = cmp.Compare(a.ProcessingDays, b.ProcessingDays)
		case SortByCreatedAt:
			c = 0
		default:
			c = a.Amount.Cmp(b.Amount)
		}
		if c != 0 {
			return c
		}
		if c = a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
}

// AssignBadges marks the pending quotes with the lowest amount and the fewest
// processing days. Ties share the badge.
func AssignBadges(views []*QuoteView) {
	var cheapest, fastest *QuoteView
	for _, v := range views {
		v.Cheapest, v.Fastest = false, false
		if v.Status != quote.StatusPending.String() {
			continue
		}
		if cheapest == nil || v.Amount.LessThan(cheapest.Amount) {
			cheapest = v
		}
		if fastest == nil || v.ProcessingDays < fastest.ProcessingDays {
			fastest = v
		}
	}
	if cheapest == nil {
		return
	}
	for _, v := range views {
		if v.Status != quote.StatusPending.String() {
			continue
		}
		v.Cheapest = v.Amount.Equal(cheapest.Amount)
		v.Fastest = v.ProcessingDays == fastest.ProcessingDays
	}
}
