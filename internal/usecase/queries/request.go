package queries

import (
	"context"

	"github.com/google/uuid"

	"service-broker/internal/domain/catalog"
	"service-broker/internal/domain/eligibility"
	"service-broker/internal/domain/request"
	"service-broker/internal/infra"
	"service-broker/internal/pkg/errs"
	"service-broker/internal/usecase/shared"
)

var (
	ErrRequestNotFound = errs.Wrap(errs.ErrNotFound, "request not found")
	ErrRequestAccess   = errs.Wrap(errs.ErrForbidden, "request access denied")
)

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]*RequestSummaryView, error)
	HasQuoteFrom(ctx context.Context, requestID, agencyID uuid.UUID) (bool, error)
}

// CatalogReadStore feeds eligibility resolution on the read side.
type CatalogReadStore interface {
	eligibility.CandidateSource
	FindCategory(ctx context.Context, id uuid.UUID) (*catalog.ServiceCategory, error)
}

type RequestQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*RequestView, error)
	ListMine(ctx context.Context, actor shared.Actor) ([]*RequestSummaryView, error)
	ListEligibleAgencies(ctx context.Context, actor shared.Actor, id uuid.UUID) ([]AgencyView, error)
}

type requestQueriesImpl struct {
	gate requestGate
}

func NewRequestQueries(requests RequestReadStore, catalogStore CatalogReadStore) RequestQueries {
	return &requestQueriesImpl{gate: requestGate{requests: requests, catalog: catalogStore}}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*RequestView, error) {
	return q.gate.open(ctx, actor, id)
}

func (q *requestQueriesImpl) ListMine(ctx context.Context, actor shared.Actor) ([]*RequestSummaryView, error) {
	if err := actor.RequireApplicant(); err != nil {
		return nil, err
	}
	return q.gate.requests.ListByApplicant(ctx, actor.UserID)
}

// ListEligibleAgencies is advisory: submission re-resolves at write time.
func (q *requestQueriesImpl) ListEligibleAgencies(ctx context.Context, actor shared.Actor, id uuid.UUID) ([]AgencyView, error) {
	view, err := q.gate.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && view.ApplicantID != actor.UserID {
		return nil, ErrRequestAccess
	}

	subject, err := q.gate.subject(ctx, view)
	if err != nil {
		return nil, err
	}
	agencies, err := eligibility.NewResolver(q.gate.catalog).Resolve(ctx, subject)
	if err != nil {
		return nil, err
	}

	out := make([]AgencyView, 0, len(agencies))
	for _, a := range agencies {
		out = append(out, AgencyView{ID: a.ID(), Name: a.Name()})
	}
	return out, nil
}

// requestGate decides who may see a request: its applicant, admins, the
// winning agency, agencies that quoted on it and agencies currently eligible.
type requestGate struct {
	requests RequestReadStore
	catalog  CatalogReadStore
}

func (g requestGate) load(ctx context.Context, id uuid.UUID) (*RequestView, error) {
	view, err := g.requests.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return view, nil
}

func (g requestGate) open(ctx context.Context, actor shared.Actor, id uuid.UUID) (*RequestView, error) {
	view, err := g.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.IsAdmin() || view.ApplicantID == actor.UserID {
		return view, nil
	}

	agencyID, err := actor.Agency()
	if err != nil {
		return nil, ErrRequestAccess
	}
	if view.WinningAgencyID != nil && *view.WinningAgencyID == agencyID {
		return view, nil
	}
	quoted, err := g.requests.HasQuoteFrom(ctx, view.ID, agencyID)
	if err != nil {
		return nil, err
	}
	if quoted {
		return view, nil
	}

	subject, err := g.subject(ctx, view)
	if err != nil {
		return nil, err
	}
	if err := eligibility.NewResolver(g.catalog).Authorize(ctx, subject, agencyID); err != nil {
		if errs.Is(err, eligibility.ErrNotEligible) {
			return nil, ErrRequestAccess
		}
		return nil, err
	}
	return view, nil
}

func (g requestGate) subject(ctx context.Context, view *RequestView) (eligibility.Subject, error) {
	category, err := g.catalog.FindCategory(ctx, view.CategoryID)
	if err != nil {
		return eligibility.Subject{}, err
	}
	payload, err := request.NewPayload(view.Payload)
	if err != nil {
		return eligibility.Subject{}, err
	}
	return eligibility.Subject{
		Category:   category,
		Country:    payload.Country(),
		ResourceID: payload.ResourceID(),
	}, nil
}
