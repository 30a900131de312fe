package converter

import (
	"encoding/json"

	"service-broker/internal/domain/request"
	sqlc "service-broker/internal/infra/sqlc/generated"
	"service-broker/internal/pkg/pgconv"
)

func RequestToCreateParams(r *request.Request) (sqlc.CreateRequestParams, error) {
	payload, err := json.Marshal(r.Payload())
	if err != nil {
		return sqlc.CreateRequestParams{}, err
	}
	return sqlc.CreateRequestParams{
		ID:              r.ID(),
		ApplicantID:     r.ApplicantID(),
		CategoryID:      r.CategoryID(),
		Status:          r.Status().String(),
		WinningAgencyID: pgconv.UUIDPtrToPgtype(r.WinningAgencyID()),
		Payload:         payload,
		CancelReason:    pgconv.StringPtrToPgtype(r.CancelReason()),
		CreatedAt:       pgconv.TimeToPgtype(r.CreatedAt()),
		AcceptedAt:      pgconv.TimePtrToPgtype(r.AcceptedAt()),
		CompletedAt:     pgconv.TimePtrToPgtype(r.CompletedAt()),
		CancelledAt:     pgconv.TimePtrToPgtype(r.CancelledAt()),
		UpdatedAt:       pgconv.TimeToPgtype(r.UpdatedAt()),
	}, nil
}

func RequestToUpdateParams(r *request.Request) sqlc.UpdateRequestParams {
	return sqlc.UpdateRequestParams{
		ID:              r.ID(),
		Status:          r.Status().String(),
		WinningAgencyID: pgconv.UUIDPtrToPgtype(r.WinningAgencyID()),
		CancelReason:    pgconv.StringPtrToPgtype(r.CancelReason()),
		AcceptedAt:      pgconv.TimePtrToPgtype(r.AcceptedAt()),
		CompletedAt:     pgconv.TimePtrToPgtype(r.CompletedAt()),
		CancelledAt:     pgconv.TimePtrToPgtype(r.CancelledAt()),
		UpdatedAt:       pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RequestToDomain(row sqlc.Requests) (*request.Request, error) {
	payload, err := request.PayloadFromJSON(row.Payload)
	if err != nil {
		return nil, err
	}
	return request.ReconstructRequest(
		row.ID, row.ApplicantID, row.CategoryID,
		request.Status(row.Status),
		pgconv.UUIDPtrFromPgtype(row.WinningAgencyID),
		payload,
		pgconv.StringPtrFromPgtype(row.CancelReason),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.AcceptedAt),
		pgconv.TimePtrFromPgtype(row.CompletedAt),
		pgconv.TimePtrFromPgtype(row.CancelledAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
