package readstore

import (
	"context"

	"github.com/google/uuid"

	"service-broker/internal/domain/catalog"
	"service-broker/internal/domain/eligibility"
	"service-broker/internal/infra/repository"
	sqlc "service-broker/internal/infra/sqlc/generated"
)

// CatalogReadStore is the catalog repository bound to the pool, outside any
// transaction.
type CatalogReadStore struct {
	repo *repository.CatalogRepository
}

func NewCatalogReadStore(queries repository.CatalogQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{repo: repository.NewCatalogRepository(queries, db)}
}

func (r *CatalogReadStore) FindCategory(ctx context.Context, id uuid.UUID) (*catalog.ServiceCategory, error) {
	return r.repo.FindByID(ctx, id)
}

func (r *CatalogReadStore) CandidatesForCategory(ctx context.Context, categoryID uuid.UUID) (*eligibility.Candidates, error) {
	return r.repo.CandidatesForCategory(ctx, categoryID)
}
