package readstore

import (
	"context"

	"github.com/google/uuid"

	"service-broker/internal/infra"
	sqlc "service-broker/internal/infra/sqlc/generated"
	"service-broker/internal/pkg/pgconv"
	"service-broker/internal/usecase/queries"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindUserByIDRow, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.AuthorizedUserView{
		ID:       row.ID,
		Email:    row.Email,
		Role:     row.Role,
		AgencyID: pgconv.UUIDPtrFromPgtype(row.AgencyID),
		IsActive: row.IsActive,
	}, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	view := &queries.AuthorizedUserView{
		ID:       row.ID,
		Email:    row.Email,
		Role:     row.Role,
		AgencyID: pgconv.UUIDPtrFromPgtype(row.AgencyID),
		IsActive: row.IsActive,
	}
	return view, row.PasswordHash, nil
}
