package api

import (
	"net/http"

	reqdto "service-broker/internal/handler/dto/request"
	resdto "service-broker/internal/handler/dto/response"
	"service-broker/internal/handler/httperr"
	"service-broker/internal/pkg/config"
	"service-broker/internal/usecase/commands"
	"service-broker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	cmds     commands.QuoteCommands
	q        queries.QuoteQueries
	requests queries.RequestQueries
	cfg      config.QuoteConfig
}

func NewQuoteHandler(cmds commands.QuoteCommands, q queries.QuoteQueries, requests queries.RequestQueries, cfg config.QuoteConfig) *QuoteHandler {
	return &QuoteHandler{cmds: cmds, q: q, requests: requests, cfg: cfg}
}

// @Summary List quotes for a request
// @Description Sorted quotes with cheapest/fastest badges among pending ones; agencies only see their own quote
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param sort query string false "amount | processing_days | created_at"
// @Success 200 {array} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests/{id}/quotes [get]
func (h *QuoteHandler) ListByRequest(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	sort, err := queries.ParseQuoteSort(c.DefaultQuery("sort", h.cfg.DefaultSort))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	views, err := h.q.ListByRequest(c.Request.Context(), actor, requestID, sort)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	items, err := resdto.FromQuoteViews(views)
	render(c, http.StatusOK, items, err)
}

// @Summary Submit or revise a quote
// @Description Creates the agency's quote, or updates its pending quote in place
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.SubmitQuoteRequest true "Quote terms"
// @Success 200 {object} resdto.SubmitQuoteResponse "revised"
// @Success 201 {object} resdto.SubmitQuoteResponse "created"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /requests/{id}/quotes [post]
func (h *QuoteHandler) Submit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.SubmitQuote(c.Request.Context(), actor, requestID, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, result.QuoteID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	body, err := resdto.FromQuoteView(view)
	render(c, status, resdto.SubmitQuoteResponse{Quote: body, Created: result.Created}, err)
}

// @Summary Get quote
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /quotes/{id} [get]
func (h *QuoteHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	body, err := resdto.FromQuoteView(view)
	render(c, http.StatusOK, body, err)
}

// @Summary Accept quote
// @Description Exactly one quote per request can win; siblings are rejected atomically
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /quotes/{id}/accept [post]
func (h *QuoteHandler) Accept(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	result, err := h.cmds.AcceptQuote(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.requests.GetByID(c.Request.Context(), actor, result.RequestID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	body, err := resdto.FromRequestView(view)
	render(c, http.StatusOK, body, err)
}

// @Summary Reject quote
// @Tags quotes
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /quotes/{id}/reject [post]
func (h *QuoteHandler) Reject(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.RejectQuote(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List own quotes
// @Description Every quote the caller's agency has submitted, newest first
// @Tags agency
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AgencyQuoteResponse
// @Failure 403 {object} httperr.Response
// @Router /agency/quotes [get]
func (h *QuoteHandler) ListForAgency(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	views, err := h.q.ListForAgency(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	items, err := resdto.FromAgencyQuoteViews(views)
	render(c, http.StatusOK, items, err)
}

// @Summary Sweep quotes
// @Description Expires overdue pending quotes and notifies about those expiring soon
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SweepResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/quotes/sweep [post]
func (h *QuoteHandler) Sweep(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	result, err := h.cmds.SweepQuotes(c.Request.Context(), actor, h.cfg.ExpiringSoonWindow)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SweepResponse{Expired: result.Expired, ExpiringSoon: result.ExpiringSoon})
}
