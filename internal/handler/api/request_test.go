//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"service-broker/internal/domain/eligibility"
	"service-broker/internal/domain/request"
	"service-broker/internal/handler/api"
	resdto "service-broker/internal/handler/dto/response"
	"service-broker/internal/handler/middleware"
	"service-broker/internal/usecase/commands"
	"service-broker/internal/usecase/queries"
	"service-broker/internal/usecase/shared"
	"service-broker/tests/common/builder"
	"service-broker/tests/common/httptest"
	commandsmock "service-broker/tests/mock/commands"
	queriesmock "service-broker/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// asActor stands in for RequireAuth.
func asActor(actor *shared.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetActor(c, *actor)
		c.Next()
	}
}

type RequestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRequestCommands
	mockQueries  *queriesmock.MockRequestQueries
	actor        shared.Actor
}

func (s *RequestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRequestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRequestQueries(s.mockCtrl)
	s.actor = builder.NewUserBuilder().AsApplicant().BuildActor()
	h := api.NewRequestHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("/requests", asActor(&s.actor))
	g.POST("", h.Create)
	g.GET("", h.ListMine)
	g.GET("/:id", h.Get)
	g.GET("/:id/eligible-agencies", h.EligibleAgencies)
	g.POST("/:id/cancel", h.Cancel)
	g.POST("/:id/start", h.Start)
	g.POST("/:id/complete", h.Complete)
}

func (s *RequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(RequestHandlerTestSuite))
}

func (s *RequestHandlerTestSuite) requestView(id uuid.UUID, status string) *queries.RequestView {
	return &queries.RequestView{
		ID:               id,
		ApplicantID:      s.actor.UserID,
		CategoryID:       uuid.New(),
		CategoryName:     "Visa processing",
		AssignmentPolicy: "competitive",
		Status:           status,
		Payload:          map[string]any{"destination_country": "JP"},
		CreatedAt:        time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		UpdatedAt:        time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	}
}

func (s *RequestHandlerTestSuite) TestCreate() {
	categoryID := uuid.New()
	requestID := uuid.New()

	s.Run("success: returns 201 with the stored request", func() {
		input := commands.CreateRequestInput{CategoryID: categoryID, Payload: map[string]any{"destination_country": "JP"}}
		s.mockCommands.EXPECT().CreateRequest(gomock.Any(), s.actor, input).
			Return(&commands.CreateRequestResult{RequestID: requestID}, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, requestID).Return(s.requestView(requestID, "pending"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/requests",
			map[string]any{"category_id": categoryID, "payload": map[string]any{"destination_country": "JP"}}, "")

		var res resdto.RequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(requestID, res.ID)
		s.Equal("pending", res.Status)
		s.Equal("JP", res.Payload["destination_country"])
	})

	s.Run("success: missing payload becomes an empty object", func() {
		s.mockCommands.EXPECT().CreateRequest(gomock.Any(), s.actor, commands.CreateRequestInput{CategoryID: categoryID, Payload: map[string]any{}}).
			Return(&commands.CreateRequestResult{RequestID: requestID}, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, requestID).Return(s.requestView(requestID, "pending"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/requests", map[string]any{"category_id": categoryID}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 on a malformed body", func() {
		cases := map[string]any{
			"missing category":      map[string]any{"payload": map[string]any{}},
			"category not a uuid":   map[string]any{"category_id": "visa"},
			"payload not an object": map[string]any{"category_id": categoryID, "payload": "JP"},
			"truncated json":        `{"category_id":`,
		}
		for name, body := range cases {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/requests", body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: use case errors map to statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{name: "validation", err: request.ErrCountryRequired, status: http.StatusBadRequest},
			{name: "unknown category", err: commands.ErrCategoryNotFound, status: http.StatusNotFound},
			{name: "wrong role", err: shared.ErrApplicantActorRequired, status: http.StatusForbidden},
			{name: "database", err: errors.New("connection reset"), status: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateRequest(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/requests", map[string]any{"category_id": categoryID}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})
}

func (s *RequestHandlerTestSuite) TestGet() {
	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 403 when the gate refuses", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, id).Return(nil, queries.ErrRequestAccess)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "request access denied")
	})

	s.Run("success: winner name is exposed", func() {
		id := uuid.New()
		view := s.requestView(id, "accepted")
		winner, name := uuid.New(), "Tokyo Visas"
		view.WinningAgencyID, view.WinningAgencyName = &winner, &name
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, id).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/"+id.String(), nil, "")
		var res resdto.RequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().NotNil(res.WinningAgencyName)
		s.Equal(name, *res.WinningAgencyName)
	})
}

func (s *RequestHandlerTestSuite) TestListMineAndEligible() {
	s.Run("list mine", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.actor).
			Return([]*queries.RequestSummaryView{{ID: uuid.New(), Status: "quoted", PendingQuotes: 3}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests", nil, "")
		var res []resdto.RequestListItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res, 1)
		s.Equal(3, res[0].PendingQuotes)
	})

	s.Run("eligible agencies", func() {
		id := uuid.New()
		agencies := []queries.AgencyView{{ID: uuid.New(), Name: "Osaka Visas"}, {ID: uuid.New(), Name: "Tokyo Visas"}}
		s.mockQueries.EXPECT().ListEligibleAgencies(gomock.Any(), s.actor, id).Return(agencies, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/"+id.String()+"/eligible-agencies", nil, "")
		var res []resdto.AgencyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res, 2)
		s.Equal("Osaka Visas", res[0].Name)
	})

	s.Run("misconfigured category is a server error", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().ListEligibleAgencies(gomock.Any(), s.actor, id).
			Return(nil, eligibility.ErrAmbiguousPrimaryResource)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/"+id.String()+"/eligible-agencies", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *RequestHandlerTestSuite) TestCancel() {
	id := uuid.New()

	s.Run("success: reason is trimmed", func() {
		s.mockCommands.EXPECT().CancelRequest(gomock.Any(), s.actor, id, "trip postponed").Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, id).Return(s.requestView(id, "cancelled"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/requests/"+id.String()+"/cancel",
			map[string]string{"reason": "  trip postponed "}, "")
		var res resdto.RequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("cancelled", res.Status)
	})

	s.Run("success: body is optional", func() {
		s.mockCommands.EXPECT().CancelRequest(gomock.Any(), s.actor, id, "").Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, id).Return(s.requestView(id, "cancelled"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/requests/"+id.String()+"/cancel", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: already terminal", func() {
		s.mockCommands.EXPECT().CancelRequest(gomock.Any(), s.actor, id, "").Return(request.ErrTerminalState)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/requests/"+id.String()+"/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *RequestHandlerTestSuite) TestLifecycle() {
	id := uuid.New()

	s.Run("start", func() {
		s.mockCommands.EXPECT().StartWork(gomock.Any(), s.actor, id).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, id).Return(s.requestView(id, "in_progress"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/requests/"+id.String()+"/start", nil, "")
		var res resdto.RequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("in_progress", res.Status)
	})

	s.Run("complete out of order", func() {
		s.mockCommands.EXPECT().CompleteRequest(gomock.Any(), s.actor, id).Return(request.ErrTerminalState)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/requests/"+id.String()+"/complete", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}
