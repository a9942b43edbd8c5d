//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"runesse/internal/domain/request"
	"runesse/internal/handler/api"
	resdto "runesse/internal/handler/dto/response"
	"runesse/internal/handler/middleware"
	"runesse/internal/pkg/config"
	"runesse/internal/pkg/errs"
	"runesse/internal/usecase"
	"runesse/internal/usecase/commands"
	"runesse/internal/usecase/queries"
	"runesse/tests/common/builder"
	"runesse/tests/common/httptest"
	commandsmock "runesse/tests/mock/commands"
	queriesmock "runesse/tests/mock/queries"
	usecasemock "runesse/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockTrust    *usecasemock.MockAdminDeviceTrust
	mockCommands *commandsmock.MockRequestCommands
	mockQueries  *queriesmock.MockRequestQueries
	cfg          config.Config
	cookie       *http.Cookie
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockTrust = usecasemock.NewMockAdminDeviceTrust(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockRequestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRequestQueries(s.mockCtrl)

	s.cfg = config.NewTestConfig()
	s.cfg.Admin.TimeZone = "Asia/Bangkok"
	s.cookie = &http.Cookie{Name: s.cfg.Admin.CookieName, Value: "device-1"}

	handler := api.NewAdminHandler(s.mockTrust, s.mockCommands, s.mockQueries, s.cfg)
	guard := middleware.NewAdminDeviceMiddleware(s.mockTrust, s.cfg.Admin).RequireTrustedDevice()

	s.router.GET("/admin/device", handler.CheckDevice)
	s.router.GET("/admin/requests", guard, handler.ListRequests)
	s.router.POST("/admin/requests/match", guard, handler.Match)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) trusted() {
	s.mockTrust.EXPECT().Check(gomock.Any(), "device-1").
		Return(&usecase.TrustResult{Trusted: true, Device: builder.NewAdminDeviceBuilder().BuildDomain()}, nil)
}

// ================================================================================
// TestCheckDevice
// ================================================================================

func (s *AdminHandlerTestSuite) TestCheckDevice() {
	s.Run("trusted", func() {
		s.trusted()
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/admin/device", nil, []*http.Cookie{s.cookie}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq(`{"ok":true}`, rec.Body.String())
	})

	s.Run("no cookie is untrusted, not an error", func() {
		s.mockTrust.EXPECT().Check(gomock.Any(), "").Return(&usecase.TrustResult{}, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/device", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq(`{"ok":false}`, rec.Body.String())
	})

	s.Run("store failure", func() {
		s.mockTrust.EXPECT().Check(gomock.Any(), "device-1").Return(nil, errs.Mark(errs.New("db"), errs.ErrStore))
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/admin/device", nil, []*http.Cookie{s.cookie}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "internal server error")
	})
}

// ================================================================================
// TestListRequests
// ================================================================================

func (s *AdminHandlerTestSuite) TestListRequests() {
	s.Run("full rows with local timestamps", func() {
		s.trusted()
		view := builder.NewRequestBuilder().WithDelivery("1 Main St", "+1555").WithStatus(request.StatusMatched).BuildView()
		s.mockQueries.EXPECT().ListAdmin(gomock.Any()).Return([]*queries.RequestView{view}, nil)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/admin/requests", nil, []*http.Cookie{s.cookie}, "")
		var body resdto.AdminRequestListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Requests, 1)
		got := body.Requests[0]
		s.Equal("1 Main St", *got.DeliveryAddressText)
		s.Equal("+1555", *got.DeliveryMobile)
		// 09:30 UTC is 16:30 in Bangkok
		s.Equal("2026-01-15 16:30:00", got.CreatedAt)
		s.Require().NotNil(got.MatchedAt)
		s.Equal("2026-01-15 17:30:00", *got.MatchedAt)
	})

	s.Run("untrusted device is 403", func() {
		s.mockTrust.EXPECT().Check(gomock.Any(), gomock.Any()).Return(&usecase.TrustResult{}, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/requests", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "device not trusted")
	})
}

// ================================================================================
// TestMatch
// ================================================================================

func (s *AdminHandlerTestSuite) TestMatch() {
	url := "/admin/requests/match"
	id := uuid.New()

	s.Run("success returns the admin shape", func() {
		s.trusted()
		buyerID := uuid.New()
		matched := builder.NewRequestBuilder().WithBuyerID(buyerID).WithDelivery("1 Main St", "+1555").BuildReconstructed()
		s.Require().NoError(matched.Claim(request.ActorAdmin, nil, time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC)))
		s.mockCommands.EXPECT().Match(gomock.Any(), id).Return(matched, nil)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, map[string]any{"requestId": id}, []*http.Cookie{s.cookie}, "")
		var body resdto.AdminRequestEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("MATCHED", body.Request.Status)
		s.Equal(request.UnassignedCardholder, *body.Request.MatchedCardholderEmail)
		s.Equal("1 Main St", *body.Request.DeliveryAddressText)
		s.Equal("2026-01-16 07:00:00", *body.Request.MatchedAt)
		s.Require().NotNil(body.Request.BuyerID)
		s.Equal(buyerID, *body.Request.BuyerID)
	})

	s.Run("error mapping", func() {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{name: "not found", err: commands.ErrRequestNotFound, status: http.StatusNotFound},
			{name: "already matched", err: request.ErrNotAvailable, status: http.StatusBadRequest},
			{name: "conflict", err: commands.ErrRequestConflict, status: http.StatusConflict},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.trusted()
				s.mockCommands.EXPECT().Match(gomock.Any(), id).Return(nil, tc.err)
				rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, map[string]any{"requestId": id}, []*http.Cookie{s.cookie}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})

	s.Run("malformed id", func() {
		s.trusted()
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, map[string]any{"requestId": "nope"}, []*http.Cookie{s.cookie}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "requestId")
	})
}
