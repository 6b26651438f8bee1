//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"loca-api/internal/domain/reservation"
	"loca-api/internal/domain/user"
	"loca-api/internal/handler/api"
	"loca-api/internal/pkg/config"
	"loca-api/internal/pkg/errs"
	"loca-api/internal/usecase/commands"
	"loca-api/internal/usecase/queries"
	"loca-api/tests/common/httptest"
	commandsmock "loca-api/tests/mock/commands"
	queriesmock "loca-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockReservationCommands
	mockQueries   *queriesmock.MockReservationQueries
	mockMessaging *commandsmock.MockConversationCommands
	handler       *api.ReservationHandler
	actorID       uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.actorID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.mockMessaging = commandsmock.NewMockConversationCommands(s.mockCtrl)
	s.handler = api.NewReservationHandler(
		s.mockCommands, s.mockQueries, s.mockMessaging, config.NewTestConfig().Billing)

	// Stand-in for RequireAuth: inject the caller identity directly.
	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleUser)
	})
	s.router.POST("/reservations", s.handler.Create)
	s.router.GET("/reservations", s.handler.ListMine)
	s.router.GET("/reservations/:id", s.handler.Get)
	s.router.PATCH("/reservations/:id", s.handler.HostConfirm)
	s.router.PATCH("/reservations/:id/cancel", s.handler.Cancel)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) validCreateBody() map[string]any {
	return map[string]any{
		"listingId":        uuid.New().String(),
		"startDate":        "2024-07-01",
		"endDate":          "2024-07-05",
		"totalPrice":       int64(120000),
		"type_transaction": "mobile_money",
	}
}

func (s *ReservationHandlerTestSuite) viewFor(result *commands.CreateReservationResult) *queries.ReservationView {
	return &queries.ReservationView{
		ID:         result.ReservationID,
		Code:       result.ReservationCode,
		UserID:     s.actorID,
		HostID:     result.HostID,
		StartDate:  "2024-07-01",
		EndDate:    "2024-07-05",
		TotalPrice: 120000,
		Status:     "pending",
		Etat:       "non_payer",
		Transactions: []queries.TransactionView{
			{
				ID:              result.TransactionID,
				ReservationID:   result.ReservationID,
				Type:            "mobile_money",
				Reference:       result.TransactionRef,
				Montant:         120000,
				Devise:          "XOF",
				Statut:          "en_attente",
				Etat:            "non_payer",
				DateTransaction: time.Date(2024, 6, 20, 10, 0, 0, 0, time.UTC),
			},
		},
		CreatedAt: time.Date(2024, 6, 20, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 6, 20, 10, 0, 0, 0, time.UTC),
	}
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"

	s.Run("success: 201 with booking references and initial transaction", func() {
		result := &commands.CreateReservationResult{
			ReservationID:   uuid.New(),
			TransactionID:   uuid.New(),
			HostID:          uuid.New(),
			ReservationCode: "RSV-A1B2C3",
			TransactionRef:  "TX-D4E5F6",
		}
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), result.ReservationID).
			Return(s.viewFor(result), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.validCreateBody(), "")

		var response struct {
			Success              bool   `json:"success"`
			CodeReservation      string `json:"code_reservation"`
			ReferenceTransaction string `json:"reference_transaction"`
			Transaction          *struct {
				Reference string `json:"reference_transaction"`
				Statut    string `json:"statut"`
			} `json:"transaction"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.True(response.Success)
		s.Equal("RSV-A1B2C3", response.CodeReservation)
		s.Equal("TX-D4E5F6", response.ReferenceTransaction)
		s.Require().NotNil(response.Transaction)
		s.Equal("en_attente", response.Transaction.Statut)
	})

	s.Run("success: optional message is forwarded to the host", func() {
		result := &commands.CreateReservationResult{
			ReservationID:   uuid.New(),
			TransactionID:   uuid.New(),
			HostID:          uuid.New(),
			ReservationCode: "RSV-G7H8I9",
			TransactionRef:  "TX-J1K2L3",
		}
		body := s.validCreateBody()
		body["message"] = "Bonjour, nous arrivons vers 18h."

		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)
		s.mockMessaging.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.New(), nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), result.ReservationID).
			Return(s.viewFor(result), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("success: message delivery failure does not fail the booking", func() {
		result := &commands.CreateReservationResult{
			ReservationID:   uuid.New(),
			TransactionID:   uuid.New(),
			HostID:          uuid.New(),
			ReservationCode: "RSV-M4N5O6",
			TransactionRef:  "TX-P7Q8R9",
		}
		body := s.validCreateBody()
		body["message"] = "On se voit bientôt."

		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)
		s.mockMessaging.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.ErrConversationNotFound).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), result.ReservationID).
			Return(s.viewFor(result), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 409 Conflict when the dates are taken", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDatesUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.validCreateBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no longer available")
	})

	s.Run("error: 400 Bad Request on malformed date", func() {
		body := s.validCreateBody()
		body["startDate"] = "01/07/2024"

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
	})

	s.Run("error: 400 Bad Request when required fields are missing", func() {
		body := s.validCreateBody()
		delete(body, "type_transaction")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 404 Not Found for unknown listing", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrListingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.validCreateBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

func (s *ReservationHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/cancel"

	s.Run("success: 200 with French confirmation message", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), id, "changement de plan").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"motif": "changement de plan"}, "")

		var response struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Equal("Réservation annulée", response.Message)
	})

	s.Run("success: body is optional", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), id, "").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 403 Forbidden for a stranger", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), id, "").
			Return(errs.ErrReservationNotOwned).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not allowed")
	})
}

func (s *ReservationHandlerTestSuite) TestHostConfirm() {
	id := uuid.New()
	url := "/reservations/" + id.String()

	s.Run("success: 200 with affected count", func() {
		s.mockCommands.EXPECT().HostConfirm(gomock.Any(), gomock.Any(), id).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "")

		var response struct {
			Count int `json:"count"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(1, response.Count)
	})

	s.Run("error: 400 Bad Request when already cancelled", func() {
		s.mockCommands.EXPECT().HostConfirm(gomock.Any(), gomock.Any(), id).
			Return(errs.Mark(reservation.ErrReservationCancelled, errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	s.Run("error: 404 Not Found for unknown reservation", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), id).
			Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ID format")
	})
}

func (s *ReservationHandlerTestSuite) TestListMine() {
	s.Run("success: returns the caller's reservations", func() {
		items := []*queries.ReservationListItem{
			{
				ID:         uuid.New(),
				Code:       "RSV-S1T2U3",
				StartDate:  "2024-07-01",
				EndDate:    "2024-07-05",
				TotalPrice: 120000,
				Status:     "confirmed",
				Etat:       "payer",
			},
		}
		s.mockQueries.EXPECT().ListByGuest(gomock.Any(), s.actorID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "")

		var response []struct {
			Code   string `json:"code_reservation"`
			Status string `json:"status"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("RSV-S1T2U3", response[0].Code)
		s.Equal("confirmed", response[0].Status)
	})
}
