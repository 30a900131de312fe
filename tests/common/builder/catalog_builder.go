//go:build unit || e2e

package builder

import (
	"time"

	"service-broker/internal/domain/agency"
	"service-broker/internal/domain/catalog"
	"service-broker/internal/domain/eligibility"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogBuilder assembles a category together with the agencies,
// assignments and resources eligibility is resolved from.
type CatalogBuilder struct {
	CategoryID  uuid.UUID
	Name        string
	Rate        decimal.Decimal
	Policy      catalog.AssignmentPolicy
	Active      bool
	Agencies    map[uuid.UUID]agency.Agency
	Assignments []agency.Assignment
	Resources   []agency.ExternalResource
}

func NewCatalogBuilder() *CatalogBuilder {
	return &CatalogBuilder{
		CategoryID: uuid.New(),
		Name:       "Visa processing",
		Rate:       decimal.NewFromInt(10),
		Policy:     catalog.PolicyCompetitive,
		Active:     true,
		Agencies:   make(map[uuid.UUID]agency.Agency),
	}
}

func (b *CatalogBuilder) WithPolicy(p catalog.AssignmentPolicy) *CatalogBuilder {
	b.Policy = p
	return b
}

func (b *CatalogBuilder) WithRate(rate string) *CatalogBuilder {
	b.Rate = decimal.RequireFromString(rate)
	return b
}

func (b *CatalogBuilder) Inactive() *CatalogBuilder {
	b.Active = false
	return b
}

// AddAgency registers an active agency with one active assignment covering
// countries (none means global) and returns its id.
func (b *CatalogBuilder) AddAgency(name string, countries ...string) uuid.UUID {
	id := uuid.New()
	b.Agencies[id] = agency.NewAgency(id, name, true, time.Now())
	b.Assignments = append(b.Assignments, agency.NewAssignment(uuid.New(), id, b.CategoryID, countries, true))
	return id
}

// AddInactiveAssignment registers an agency whose only assignment is switched off.
func (b *CatalogBuilder) AddInactiveAssignment(name string) uuid.UUID {
	id := uuid.New()
	b.Agencies[id] = agency.NewAgency(id, name, true, time.Now())
	b.Assignments = append(b.Assignments, agency.NewAssignment(uuid.New(), id, b.CategoryID, nil, false))
	return id
}

func (b *CatalogBuilder) AddResource(owner uuid.UUID, primary bool) uuid.UUID {
	id := uuid.New()
	b.Resources = append(b.Resources, agency.NewExternalResource(id, "resource-"+id.String()[:8], b.CategoryID, owner, primary))
	return id
}

func (b *CatalogBuilder) BuildCategory() (*catalog.ServiceCategory, error) {
	return catalog.NewServiceCategory(b.CategoryID, b.Name, b.Rate, b.Policy, b.Active)
}

func (b *CatalogBuilder) BuildCandidates() *eligibility.Candidates {
	agencies := make(map[uuid.UUID]agency.Agency, len(b.Agencies))
	for id, a := range b.Agencies {
		agencies[id] = a
	}
	return &eligibility.Candidates{
		Agencies:    agencies,
		Assignments: append([]agency.Assignment(nil), b.Assignments...),
		Resources:   append([]agency.ExternalResource(nil), b.Resources...),
	}
}
