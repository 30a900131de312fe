package request

import (
	"strings"

	"service-broker/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRequestRequest struct {
	CategoryID uuid.UUID      `json:"category_id" binding:"required"`
	Payload    map[string]any `json:"payload"`
}

func (r *CreateRequestRequest) ToInput() commands.CreateRequestInput {
	payload := r.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	return commands.CreateRequestInput{CategoryID: r.CategoryID, Payload: payload}
}

type CancelRequestRequest struct {
	Reason string `json:"reason" binding:"max=1000"`
}

func (r *CancelRequestRequest) TrimmedReason() string {
	return strings.TrimSpace(r.Reason)
}
