package repository

import (
	"context"

	"github.com/google/uuid"

	"service-broker/internal/domain/request"
	"service-broker/internal/infra"
	"service-broker/internal/infra/repository/converter"
	sqlc "service-broker/internal/infra/sqlc/generated"
	"service-broker/internal/pkg/errs"
	"service-broker/internal/pkg/pgconv"
)

type RequestWriteQueries interface {
	CreateRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRequestParams) error
	GetRequest(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Requests, error)
	GetRequestForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Requests, error)
	GetRequestForKeyShare(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Requests, error)
	UpdateRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRequestParams) (int64, error)
	AssignWinningAgency(ctx context.Context, db sqlc.DBTX, arg sqlc.AssignWinningAgencyParams) (int64, error)
}

type RequestRepository struct {
	queries RequestWriteQueries
	db      sqlc.DBTX
}

func NewRequestRepository(queries RequestWriteQueries, db sqlc.DBTX) *RequestRepository {
	return &RequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RequestRepository) Create(ctx context.Context, req *request.Request) error {
	params, err := converter.RequestToCreateParams(req)
	if err != nil {
		return infra.WrapRepoErr("failed to encode request payload", err, infra.KindDBFailure)
	}
	if err := r.queries.CreateRequest(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create request", err)
	}
	return nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*request.Request, error) {
	return r.load(ctx, id, r.queries.GetRequest)
}

// SELECT ... FOR UPDATE
func (r *RequestRepository) LockForDecision(ctx context.Context, id uuid.UUID) (*request.Request, error) {
	return r.load(ctx, id, r.queries.GetRequestForUpdate)
}

// SELECT ... FOR KEY SHARE
func (r *RequestRepository) LockForQuoting(ctx context.Context, id uuid.UUID) (*request.Request, error) {
	return r.load(ctx, id, r.queries.GetRequestForKeyShare)
}

func (r *RequestRepository) load(
	ctx context.Context,
	id uuid.UUID,
	get func(context.Context, sqlc.DBTX, uuid.UUID) (sqlc.Requests, error),
) (*request.Request, error) {
	row, err := get(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load request", err)
	}
	req, err := converter.RequestToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored request is corrupt", err, infra.KindDBFailure)
	}
	return req, nil
}

func (r *RequestRepository) Update(ctx context.Context, req *request.Request) error {
	n, err := r.queries.UpdateRequest(ctx, r.db, converter.RequestToUpdateParams(req))
	if err != nil {
		return infra.WrapRepoErr("failed to update request", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RequestRepository) AssignWinner(ctx context.Context, req *request.Request) error {
	winner := req.WinningAgencyID()
	if winner == nil {
		return errs.Wrap(errs.ErrInvalidTransition, "request has no winning agency to store")
	}
	n, err := r.queries.AssignWinningAgency(ctx, r.db, sqlc.AssignWinningAgencyParams{
		ID:              req.ID(),
		Status:          req.Status().String(),
		WinningAgencyID: pgconv.UUIDToPgtype(*winner),
		AcceptedAt:      pgconv.TimePtrToPgtype(req.AcceptedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to assign winning agency", err)
	}
	if n == 0 {
		// another transaction stored a winner first
		return request.ErrWinnerAlreadySet
	}
	return nil
}
