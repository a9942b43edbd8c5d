//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"runesse/internal/domain/request"
	"runesse/internal/domain/user"
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
	"runesse/tests/common/testutil"
	commandsmock "runesse/tests/mock/commands"
	queriesmock "runesse/tests/mock/queries"
	usecasemock "runesse/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const sessionToken = "session-token"

type RequestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRequestCommands
	mockQueries  *queriesmock.MockRequestQueries
	mockResolver *usecasemock.MockSessionResolver
	cfg          config.Config
}

func (s *RequestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRequestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRequestQueries(s.mockCtrl)
	s.mockResolver = usecasemock.NewMockSessionResolver(s.mockCtrl)

	s.cfg = config.NewTestConfig()
	s.cfg.Buyer.DefaultEmail = "default@x.com"
	handler := api.NewRequestHandler(s.mockCommands, s.mockQueries, s.cfg)

	s.router.Use(middleware.NewSessionMiddleware(s.mockResolver).OptionalSession())
	s.router.POST("/requests", handler.Create)
	s.router.GET("/requests", handler.ListPublic)
	s.router.GET("/requests/mine", handler.ListMine)
	s.router.POST("/requests/take", handler.Take)
	s.router.POST("/requests/status", handler.SetStatus)
}

func (s *RequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(RequestHandlerTestSuite))
}

func (s *RequestHandlerTestSuite) expectSession(email string, role user.Role) {
	parsed, err := user.NewEmail(email)
	s.Require().NoError(err)
	s.mockResolver.EXPECT().Resolve(sessionToken).Return(&usecase.Identity{Email: parsed, Role: role}, nil)
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *RequestHandlerTestSuite) TestCreate() {
	url := "/requests"
	reqBody := builder.NewRequestBuilder().WithCheckoutPrice("129.99").BuildCreateRequestDTO()
	id := uuid.New()

	s.Run("success: returns 201 with the new id", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.CreateRequestInput) (uuid.UUID, error) {
				s.Equal("b@x.com", in.BuyerEmail)
				s.Require().NotNil(in.CheckoutPrice)
				s.Equal("129.99", in.CheckoutPrice.String())
				return id, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		var body resdto.CreateRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.True(body.OK)
		s.Equal(id, body.RequestID)
	})

	s.Run("price as string is accepted", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(id, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("checkoutPrice", "15.00")), "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 on malformed body", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing buyerEmail", mutate: testutil.Field("buyerEmail", nil)},
			{name: "missing productLink", mutate: testutil.Field("productLink", nil)},
			{name: "numeric productLink", mutate: testutil.Field("productLink", 12)},
			{name: "non-numeric price", mutate: testutil.Field("checkoutPrice", "abc")},
			{name: "boolean price", mutate: testutil.Field("checkoutPrice", true)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{name: "validation", err: request.ErrNegativePrice, status: http.StatusBadRequest, msg: "checkoutPrice"},
			{name: "price out of range", err: request.ErrPriceOutOfRange, status: http.StatusBadRequest, msg: "at most 2 decimal places"},
			{name: "store", err: errs.Mark(errs.New("pool closed"), errs.ErrStore), status: http.StatusInternalServerError, msg: "internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})
}

// ================================================================================
// TestListPublic / TestListMine
// ================================================================================

func (s *RequestHandlerTestSuite) TestListPublic() {
	s.Run("success", func() {
		view := builder.NewRequestBuilder().WithCheckoutPrice("10").BuildView()
		s.mockQueries.EXPECT().ListPublic(gomock.Any()).Return([]*queries.RequestView{view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests", nil, "")
		var body resdto.RequestListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.OK)
		s.Require().Len(body.Requests, 1)
		s.Equal(view.ID, body.Requests[0].ID)
		s.Equal("PENDING", body.Requests[0].Status)
		s.True(view.CheckoutPrice.Equal(*body.Requests[0].CheckoutPrice))
	})

	s.Run("empty list is an array", func() {
		s.mockQueries.EXPECT().ListPublic(gomock.Any()).Return([]*queries.RequestView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq(`{"ok":true,"requests":[]}`, rec.Body.String())
	})

	s.Run("store failure", func() {
		s.mockQueries.EXPECT().ListPublic(gomock.Any()).Return(nil, errs.Mark(errs.New("db"), errs.ErrStore))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "internal server error")
	})
}

func (s *RequestHandlerTestSuite) TestListMine() {
	url := "/requests/mine"

	s.Run("session email wins", func() {
		s.expectSession("buyer@x.com", user.RoleBuyer)
		s.mockQueries.EXPECT().ListByBuyerEmail(gomock.Any(), "buyer@x.com").Return([]*queries.RequestView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, sessionToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("anonymous falls back to the configured buyer", func() {
		s.mockQueries.EXPECT().ListByBuyerEmail(gomock.Any(), "default@x.com").Return([]*queries.RequestView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("invalid token is treated as anonymous", func() {
		s.mockResolver.EXPECT().Resolve("bad").Return(nil, errs.New("invalid token"))
		s.mockQueries.EXPECT().ListByBuyerEmail(gomock.Any(), "default@x.com").Return([]*queries.RequestView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bad")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

// ================================================================================
// TestTake / TestSetStatus
// ================================================================================

func (s *RequestHandlerTestSuite) TestTake() {
	url := "/requests/take"
	id := uuid.New()

	s.Run("success: redacted request with session cardholder", func() {
		s.expectSession("holder@example.com", user.RoleCardholder)
		taken := builder.NewRequestBuilder().WithDelivery("1 Main St", "+1555").WithStatus(request.StatusMatched).BuildReconstructed()
		s.mockCommands.EXPECT().Take(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, email *string) (*request.Request, error) {
				s.Require().NotNil(email)
				s.Equal("holder@example.com", *email)
				return taken, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"requestId": id}, sessionToken)
		var body resdto.RequestEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("MATCHED", body.Request.Status)
		s.Nil(body.Request.DeliveryAddressText)
		s.Nil(body.Request.DeliveryMobile)
	})

	s.Run("anonymous take passes no email", func() {
		s.mockCommands.EXPECT().Take(gomock.Any(), id, nil).
			Return(builder.NewRequestBuilder().WithStatus(request.StatusMatched).BuildReconstructed(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"requestId": id}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: bad ids are 400", func() {
		for _, body := range []map[string]any{{}, {"requestId": "R1"}, {"requestId": uuid.Nil}} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "requestId")
		}
	})

	s.Run("error: maps usecase errors", func() {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{name: "not found", err: commands.ErrRequestNotFound, status: http.StatusNotFound},
			{name: "not available", err: request.ErrNotAvailable, status: http.StatusBadRequest},
			{name: "conflict", err: commands.ErrRequestConflict, status: http.StatusConflict},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Take(gomock.Any(), id, gomock.Any()).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"requestId": id}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.err.Error())
			})
		}
	})
}

func (s *RequestHandlerTestSuite) TestSetStatus() {
	url := "/requests/status"
	id := uuid.New()

	s.Run("success", func() {
		done := builder.NewRequestBuilder().WithDelivery("a", "m").WithStatus(request.StatusCompleted).BuildReconstructed()
		s.mockCommands.EXPECT().SetStatus(gomock.Any(), id, "completed").Return(done, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"requestId": id, "newStatus": "completed"}, "")
		var body resdto.RequestEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("COMPLETED", body.Request.Status)
		s.Nil(body.Request.DeliveryAddressText)
	})

	s.Run("error: missing fields", func() {
		for _, body := range []map[string]any{{"requestId": id}, {"newStatus": "completed"}} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: invalid target", func() {
		s.mockCommands.EXPECT().SetStatus(gomock.Any(), id, "matched").Return(nil, request.ErrInvalidTargetStatus)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"requestId": id, "newStatus": "matched"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "COMPLETED or CANCELLED")
	})
}
