package api

import (
	"net/http"

	resdto "runesse/internal/handler/dto/response"
	"runesse/internal/handler/httperr"
	"runesse/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	q queries.CardQueries
}

func NewCardHandler(q queries.CardQueries) *CardHandler {
	return &CardHandler{q: q}
}

// @Summary List cards
// @Description Active saved cards without account numbers
// @Tags cards
// @Produce json
// @Success 200 {object} resdto.CardListResponse
// @Failure 500 {object} resdto.ErrorResponse
// @Router /api/cards [get]
func (h *CardHandler) ListActive(c *gin.Context) {
	views, err := h.q.ListActive(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	cards, err := resdto.FromCardViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CardListResponse{OK: true, Cards: cards})
}
