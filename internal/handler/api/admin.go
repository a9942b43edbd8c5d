package api

import (
	"net/http"
	"time"

	reqdto "runesse/internal/handler/dto/request"
	resdto "runesse/internal/handler/dto/response"
	"runesse/internal/handler/httperr"
	"runesse/internal/pkg/config"
	"runesse/internal/pkg/cookie"
	"runesse/internal/usecase"
	"runesse/internal/usecase/commands"
	"runesse/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	trust      usecase.AdminDeviceTrust
	cmds       commands.RequestCommands
	q          queries.RequestQueries
	cookieName string
	loc        *time.Location
}

func NewAdminHandler(trust usecase.AdminDeviceTrust, cmds commands.RequestCommands, q queries.RequestQueries, cfg config.Config) *AdminHandler {
	return &AdminHandler{
		trust:      trust,
		cmds:       cmds,
		q:          q,
		cookieName: cfg.Admin.CookieName,
		loc:        cfg.Admin.Location(),
	}
}

// @Summary Check admin device
// @Description Reports whether the device cookie belongs to a trusted admin device
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.OKResponse
// @Failure 429 {object} resdto.ErrorResponse
// @Failure 500 {object} resdto.ErrorResponse
// @Router /api/admin/device [get]
func (h *AdminHandler) CheckDevice(c *gin.Context) {
	result, err := h.trust.Check(c.Request.Context(), cookie.GetAdminDevice(c, h.cookieName))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OKResponse{OK: result.Trusted})
}

// @Summary List requests (admin)
// @Description Every request with all fields, timestamps in the admin timezone
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.AdminRequestListResponse
// @Failure 403 {object} resdto.ErrorResponse
// @Failure 500 {object} resdto.ErrorResponse
// @Router /api/admin/requests [get]
func (h *AdminHandler) ListRequests(c *gin.Context) {
	views, err := h.q.ListAdmin(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromAdminRequestViews(views, h.loc)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.AdminRequestListResponse{OK: true, Requests: res})
}

// @Summary Match request
// @Description Admin moves a PENDING request to MATCHED
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.RequestIDRequest true "Request id"
// @Success 200 {object} resdto.AdminRequestEnvelope
// @Failure 400 {object} resdto.ErrorResponse
// @Failure 403 {object} resdto.ErrorResponse
// @Failure 404 {object} resdto.ErrorResponse
// @Failure 409 {object} resdto.ErrorResponse
// @Router /api/admin/requests/match [post]
func (h *AdminHandler) Match(c *gin.Context) {
	var req reqdto.RequestIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "requestId is required and must be a UUID")
		return
	}

	r, err := h.cmds.Match(c.Request.Context(), req.RequestID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromAdminRequestView(resdto.ViewFromDomain(r), h.loc)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.AdminRequestEnvelope{OK: true, Request: res})
}
