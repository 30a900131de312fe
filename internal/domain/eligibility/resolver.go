package eligibility

import (
	"context"
	"slices"
	"strings"

	"service-broker/internal/domain/agency"
	"service-broker/internal/domain/catalog"
	"service-broker/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAmbiguousGlobalAssignment = errs.Wrap(errs.ErrConfiguration, "more than one active global assignment for a global_single category")
	ErrAmbiguousPrimaryResource  = errs.Wrap(errs.ErrConfiguration, "more than one primary resource for an exclusive_resource category")
	ErrNotEligible               = errs.Wrap(errs.ErrNotEligible, "agency is not eligible to quote on this request")
)

// Subject is what eligibility depends on: the category and the request's
// country and optional named resource.
type Subject struct {
	Category   *catalog.ServiceCategory
	Country    string
	ResourceID *uuid.UUID
}

// Candidates is everything configured for one category.
type Candidates struct {
	Agencies    map[uuid.UUID]agency.Agency
	Assignments []agency.Assignment
	Resources   []agency.ExternalResource
}

// CandidateSource loads the live configuration of a category. Implementations
// must read current state; results are never cached across calls.
type CandidateSource interface {
	CandidatesForCategory(ctx context.Context, categoryID uuid.UUID) (*Candidates, error)
}

// Strategy resolves one assignment policy.
type Strategy interface {
	Resolve(subject Subject, candidates *Candidates) ([]agency.Agency, error)
}

type Resolver struct {
	source CandidateSource
}

func NewResolver(source CandidateSource) *Resolver {
	return &Resolver{source: source}
}

// Resolve returns the agencies allowed to quote, ordered by name.
func (r *Resolver) Resolve(ctx context.Context, subject Subject) ([]agency.Agency, error) {
	strategy, err := StrategyFor(subject.Category.Policy())
	if err != nil {
		return nil, err
	}
	candidates, err := r.source.CandidatesForCategory(ctx, subject.Category.ID())
	if err != nil {
		return nil, err
	}
	agencies, err := strategy.Resolve(subject, candidates)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(agencies, func(a, b agency.Agency) int {
		if c := strings.Compare(a.Name(), b.Name()); c != 0 {
			return c
		}
		return strings.Compare(a.ID().String(), b.ID().String())
	})
	return agencies, nil
}

// Authorize re-resolves eligibility and fails with ErrNotEligible when
// agencyID is not in the live set.
func (r *Resolver) Authorize(ctx context.Context, subject Subject, agencyID uuid.UUID) error {
	agencies, err := r.Resolve(ctx, subject)
	if err != nil {
		return err
	}
	for _, a := range agencies {
		if a.ID() == agencyID {
			return nil
		}
	}
	return ErrNotEligible
}

// StrategyFor maps every policy to exactly one strategy. Unknown values are a
// configuration error, never an empty set.
func StrategyFor(policy catalog.AssignmentPolicy) (Strategy, error) {
	switch policy {
	case catalog.PolicyCompetitive:
		return competitive{}, nil
	case catalog.PolicyMultiCountry:
		return multiCountry{}, nil
	case catalog.PolicyExclusiveResource:
		return exclusiveResource{}, nil
	case catalog.PolicyGlobalSingle:
		return globalSingle{}, nil
	default:
		return nil, errs.Wrapf(catalog.ErrUnknownPolicy, "policy %q", policy)
	}
}
