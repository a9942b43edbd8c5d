package api

import (
	"net/http"

	reqdto "runesse/internal/handler/dto/request"
	resdto "runesse/internal/handler/dto/response"
	"runesse/internal/handler/httperr"
	"runesse/internal/handler/middleware"
	"runesse/internal/pkg/config"
	"runesse/internal/usecase/commands"
	"runesse/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	cmds         commands.RequestCommands
	q            queries.RequestQueries
	defaultBuyer string
}

func NewRequestHandler(cmds commands.RequestCommands, q queries.RequestQueries, cfg config.Config) *RequestHandler {
	return &RequestHandler{cmds: cmds, q: q, defaultBuyer: cfg.Buyer.DefaultEmail}
}

// @Summary Create request
// @Description Submit a purchase request; it starts in PENDING
// @Tags requests
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRequestRequest true "Create request"
// @Success 201 {object} resdto.CreateRequestResponse
// @Failure 400 {object} resdto.ErrorResponse
// @Failure 429 {object} resdto.ErrorResponse
// @Failure 500 {object} resdto.ErrorResponse
// @Router /api/requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	var req reqdto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid request body")
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateRequestResponse{OK: true, RequestID: id})
}

// @Summary List requests
// @Description Public listing, newest first, delivery details removed
// @Tags requests
// @Produce json
// @Success 200 {object} resdto.RequestListResponse
// @Failure 500 {object} resdto.ErrorResponse
// @Router /api/requests [get]
func (h *RequestHandler) ListPublic(c *gin.Context) {
	views, err := h.q.ListPublic(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromRequestViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.RequestListResponse{OK: true, Requests: res})
}

// @Summary List my requests
// @Description Requests of the session buyer; empty when the buyer is unknown
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RequestListResponse
// @Failure 500 {object} resdto.ErrorResponse
// @Router /api/requests/mine [get]
func (h *RequestHandler) ListMine(c *gin.Context) {
	email, ok := middleware.GetSessionEmail(c)
	if !ok {
		email = h.defaultBuyer
	}
	if email == "" {
		c.JSON(http.StatusOK, resdto.RequestListResponse{OK: true, Requests: []*resdto.RequestResponse{}})
		return
	}

	views, err := h.q.ListByBuyerEmail(c.Request.Context(), email)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromRequestViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.RequestListResponse{OK: true, Requests: res})
}

// @Summary Take request
// @Description Cardholder claims a PENDING request
// @Tags requests
// @Accept json
// @Produce json
// @Param request body reqdto.RequestIDRequest true "Request id"
// @Success 200 {object} resdto.RequestEnvelope
// @Failure 400 {object} resdto.ErrorResponse
// @Failure 404 {object} resdto.ErrorResponse
// @Failure 409 {object} resdto.ErrorResponse
// @Router /api/requests/take [post]
func (h *RequestHandler) Take(c *gin.Context) {
	var req reqdto.RequestIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "requestId is required and must be a UUID")
		return
	}

	var cardholder *string
	if email, ok := middleware.GetSessionEmail(c); ok {
		cardholder = &email
	}

	r, err := h.cmds.Take(c.Request.Context(), req.RequestID, cardholder)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view := resdto.ViewFromDomain(r).Redacted()
	res, err := resdto.FromRequestView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.RequestEnvelope{OK: true, Request: res})
}

// @Summary Set request status
// @Description Close a request as COMPLETED or CANCELLED (case-insensitive)
// @Tags requests
// @Accept json
// @Produce json
// @Param request body reqdto.SetStatusRequest true "Status change"
// @Success 200 {object} resdto.RequestEnvelope
// @Failure 400 {object} resdto.ErrorResponse
// @Failure 404 {object} resdto.ErrorResponse
// @Failure 409 {object} resdto.ErrorResponse
// @Router /api/requests/status [post]
func (h *RequestHandler) SetStatus(c *gin.Context) {
	var req reqdto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "requestId and newStatus are required")
		return
	}

	r, err := h.cmds.SetStatus(c.Request.Context(), req.RequestID, req.NewStatus)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view := resdto.ViewFromDomain(r).Redacted()
	res, err := resdto.FromRequestView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.RequestEnvelope{OK: true, Request: res})
}
