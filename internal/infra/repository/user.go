package repository

import (
	"context"

	"github.com/google/uuid"

	"service-broker/internal/domain/user"
	"service-broker/internal/infra"
	sqlc "service-broker/internal/infra/sqlc/generated"
	"service-broker/internal/pkg/pgconv"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (uuid.UUID, error)
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	id, err := r.queries.CreateUser(ctx, r.db, sqlc.CreateUserParams{
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		AgencyID:     pgconv.UUIDPtrToPgtype(u.AgencyID()),
		IsActive:     u.IsActive(),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	err := r.queries.UpdateUserLastLogin(ctx, r.db, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
