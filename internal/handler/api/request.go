package api

import (
	"context"
	"net/http"

	reqdto "service-broker/internal/handler/dto/request"
	resdto "service-broker/internal/handler/dto/response"
	"service-broker/internal/handler/httperr"
	"service-broker/internal/usecase/commands"
	"service-broker/internal/usecase/queries"
	"service-broker/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RequestHandler struct {
	cmds commands.RequestCommands
	q    queries.RequestQueries
}

func NewRequestHandler(cmds commands.RequestCommands, q queries.RequestQueries) *RequestHandler {
	return &RequestHandler{cmds: cmds, q: q}
}

// @Summary Create service request
// @Description Applicant opens a request in a service category; eligible agencies are notified
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRequestRequest true "Create request"
// @Success 201 {object} resdto.RequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.CreateRequest(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusCreated, actor, result.RequestID)
}

// @Summary List own requests
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RequestListItemResponse
// @Failure 403 {object} httperr.Response
// @Router /requests [get]
func (h *RequestHandler) ListMine(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	views, err := h.q.ListMine(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	items, err := resdto.FromRequestSummaries(views)
	render(c, http.StatusOK, items, err)
}

// @Summary Get request
// @Description Visible to the owner, admins, the winning agency and agencies that may quote
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests/{id} [get]
func (h *RequestHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respond(c, http.StatusOK, actor, id)
}

// @Summary List eligible agencies
// @Description Agencies currently allowed to quote on the request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {array} resdto.AgencyResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /requests/{id}/eligible-agencies [get]
func (h *RequestHandler) EligibleAgencies(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	agencies, err := h.q.ListEligibleAgencies(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	items, err := resdto.FromAgencyViews(agencies)
	render(c, http.StatusOK, items, err)
}

// @Summary Cancel request
// @Description A reason is required once a quote has been accepted
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.CancelRequestRequest false "Cancellation"
// @Success 200 {object} resdto.RequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /requests/{id}/cancel [post]
func (h *RequestHandler) Cancel(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CancelRequestRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}
	if err := h.cmds.CancelRequest(c.Request.Context(), actor, id, req.TrimmedReason()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, actor, id)
}

// @Summary Start work
// @Description Winning agency moves an accepted request to in_progress
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /requests/{id}/start [post]
func (h *RequestHandler) Start(c *gin.Context) {
	h.transition(c, h.cmds.StartWork)
}

// @Summary Complete request
// @Description Winning agency marks in-progress work completed
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /requests/{id}/complete [post]
func (h *RequestHandler) Complete(c *gin.Context) {
	h.transition(c, h.cmds.CompleteRequest)
}

type lifecycleStep func(ctx context.Context, actor shared.Actor, requestID uuid.UUID) error

func (h *RequestHandler) transition(c *gin.Context, step lifecycleStep) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := step(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, actor, id)
}

func (h *RequestHandler) respond(c *gin.Context, status int, actor shared.Actor, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	body, err := resdto.FromRequestView(view)
	render(c, status, body, err)
}
