//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"runesse/internal/handler/api"
	resdto "runesse/internal/handler/dto/response"
	"runesse/internal/pkg/errs"
	"runesse/internal/usecase/queries"
	"runesse/tests/common/builder"
	"runesse/tests/common/httptest"
	queriesmock "runesse/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"
)

func TestCardHandler_ListActive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		q := queriesmock.NewMockCardQueries(gomock.NewController(t))
		router := gin.New()
		router.GET("/cards", api.NewCardHandler(q).ListActive)

		b := builder.NewCardBuilder()
		q.EXPECT().ListActive(gomock.Any()).Return([]*queries.CardView{b.BuildView()}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/cards", nil, "")
		var body resdto.CardListResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)

		want := resdto.CardListResponse{OK: true, Cards: []*resdto.CardResponse{{
			ID: b.ID, Label: b.Label, Issuer: b.Issuer, Brand: b.Brand,
			Network: b.Network, Country: b.Country, Last4: b.Last4, CreatedAt: b.CreatedAt,
		}}}
		if diff := cmp.Diff(want, body); diff != "" {
			t.Errorf("card listing mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		q := queriesmock.NewMockCardQueries(gomock.NewController(t))
		router := gin.New()
		router.GET("/cards", api.NewCardHandler(q).ListActive)
		q.EXPECT().ListActive(gomock.Any()).Return(nil, errs.Mark(errs.New("db"), errs.ErrStore))

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/cards", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "internal server error")
	})

	t.Run("unconvertible view", func(t *testing.T) {
		q := queriesmock.NewMockCardQueries(gomock.NewController(t))
		router := gin.New()
		router.GET("/cards", api.NewCardHandler(q).ListActive)
		q.EXPECT().ListActive(gomock.Any()).Return([]*queries.CardView{nil}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/cards", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "internal server error")
	})
}
