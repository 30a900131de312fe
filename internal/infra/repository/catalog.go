package repository

import (
	"context"

	"github.com/google/uuid"

	"service-broker/internal/domain/agency"
	"service-broker/internal/domain/catalog"
	"service-broker/internal/domain/eligibility"
	"service-broker/internal/infra"
	"service-broker/internal/infra/repository/converter"
	sqlc "service-broker/internal/infra/sqlc/generated"
)

type CatalogQueries interface {
	GetServiceCategory(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ServiceCategories, error)
	ListAgenciesByCategory(ctx context.Context, db sqlc.DBTX, categoryID uuid.UUID) ([]sqlc.Agencies, error)
	ListAssignmentsByCategory(ctx context.Context, db sqlc.DBTX, categoryID uuid.UUID) ([]sqlc.AgencyAssignments, error)
	ListResourcesByCategory(ctx context.Context, db sqlc.DBTX, categoryID uuid.UUID) ([]sqlc.ExternalResources, error)
}

// CatalogRepository serves categories and the eligibility candidate set.
// Bound to a transaction it sees the same snapshot as the write it guards.
type CatalogRepository struct {
	queries CatalogQueries
	db      sqlc.DBTX
}

func NewCatalogRepository(queries CatalogQueries, db sqlc.DBTX) *CatalogRepository {
	return &CatalogRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ServiceCategory, error) {
	row, err := r.queries.GetServiceCategory(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load service category", err)
	}
	category, err := converter.CategoryToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored category is corrupt", err, infra.KindDBFailure)
	}
	return category, nil
}

func (r *CatalogRepository) CandidatesForCategory(ctx context.Context, categoryID uuid.UUID) (*eligibility.Candidates, error) {
	agencyRows, err := r.queries.ListAgenciesByCategory(ctx, r.db, categoryID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list agencies for category", err)
	}
	assignmentRows, err := r.queries.ListAssignmentsByCategory(ctx, r.db, categoryID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list assignments for category", err)
	}
	resourceRows, err := r.queries.ListResourcesByCategory(ctx, r.db, categoryID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list external resources for category", err)
	}

	c := &eligibility.Candidates{
		Agencies:    make(map[uuid.UUID]agency.Agency, len(agencyRows)),
		Assignments: make([]agency.Assignment, 0, len(assignmentRows)),
		Resources:   make([]agency.ExternalResource, 0, len(resourceRows)),
	}
	for _, row := range agencyRows {
		c.Agencies[row.ID] = converter.AgencyToDomain(row)
	}
	for _, row := range assignmentRows {
		c.Assignments = append(c.Assignments, converter.AssignmentToDomain(row))
	}
	for _, row := range resourceRows {
		c.Resources = append(c.Resources, converter.ResourceToDomain(row))
	}
	return c, nil
}
