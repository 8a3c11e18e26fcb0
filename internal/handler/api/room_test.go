//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/handler/api"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/commands"
	"travel-booking/tests/common/builder"
	"travel-booking/tests/common/httptest"
	commandsmock "travel-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRoomCommands
	actor        user.Actor
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoomCommands(s.mockCtrl)
	s.actor = builder.NewUserBuilder().AsAdmin().BuildActor()
	h := api.NewRoomHandler(s.mockCommands)

	auth := mockAuth(&s.actor)
	s.router.PUT("/bookings/:id/room", auth, h.AssignRoom)
	s.router.PUT("/rooms/:id/maintenance", auth, h.SetMaintenance)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) TestAssignRoom() {
	hotelID, rtID := uuid.New(), uuid.New()
	previous := uuid.New()
	room := builder.NewRoomBuilder(hotelID, rtID).WithNumber("305")
	bb := builder.NewHotelBookingBuilder(hotelID, rtID).WithStatus(booking.StatusCheckedIn)
	room.OccupiedBy(bb.ID)
	bb.WithRoom(room.ID)
	url := "/bookings/" + bb.ID.String() + "/room"

	s.Run("success: room assigned and previous room reported", func() {
		s.mockCommands.EXPECT().AssignRoom(gomock.Any(), s.actor, bb.ID, room.ID).Return(&commands.RoomAssignmentResult{
			Booking:        bb.BuildDomain(),
			Room:           room.BuildDomain(),
			PreviousRoomID: &previous,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"roomId": room.ID.String()}, "bearer-token")

		var body resdto.RoomAssignmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.Booking)
		s.Equal("checkedIn", body.Booking.Status)
		s.Require().NotNil(body.Booking.AssignedRoomID)
		s.Equal(room.ID, *body.Booking.AssignedRoomID)
		s.Require().NotNil(body.Room)
		s.Equal("occupied", body.Room.Status)
		s.Equal("305", body.Room.Number)
		s.Require().NotNil(body.PreviousRoomID)
		s.Equal(previous, *body.PreviousRoomID)
	})

	s.Run("error: missing roomId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "not an admin", commandsError: commands.ErrForbidden, expectedStatus: http.StatusForbidden, expectedMsg: "Forbidden"},
			{name: "booking missing", commandsError: commands.ErrNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Not found"},
			{name: "tour booking", commandsError: booking.ErrNotHotelBooking, expectedStatus: http.StatusConflict, expectedMsg: "Booking is not a hotel booking"},
			{name: "final booking", commandsError: booking.ErrBookingFinal, expectedStatus: http.StatusConflict, expectedMsg: "Booking is already final"},
			{name: "room held by another booking", commandsError: catalog.ErrRoomOccupied, expectedStatus: http.StatusConflict, expectedMsg: "Room is occupied"},
			{name: "room in maintenance", commandsError: catalog.ErrRoomUnavailable, expectedStatus: http.StatusConflict, expectedMsg: "Room is under maintenance"},
			{name: "wrong room type", commandsError: catalog.ErrRoomNotInRoomType, expectedStatus: http.StatusBadRequest, expectedMsg: "Room does not match"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().AssignRoom(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"roomId": room.ID.String()}, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *RoomHandlerTestSuite) TestSetMaintenance() {
	room := builder.NewRoomBuilder(uuid.New(), uuid.New()).InMaintenance()
	url := "/rooms/" + room.ID.String() + "/maintenance"

	s.Run("success: room taken out of service", func() {
		s.mockCommands.EXPECT().SetRoomMaintenance(gomock.Any(), s.actor, room.ID, true).Return(room.BuildDomain(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"enabled": true}, "bearer-token")

		var body resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(room.ID, body.ID)
		s.Equal("maintenance", body.Status)
	})

	s.Run("success: false is a valid flag", func() {
		s.mockCommands.EXPECT().SetRoomMaintenance(gomock.Any(), s.actor, room.ID, false).
			Return(builder.NewRoomBuilder(room.HotelID, room.RoomTypeID).BuildDomain(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"enabled": false}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: flag missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: occupied room", func() {
		s.mockCommands.EXPECT().SetRoomMaintenance(gomock.Any(), gomock.Any(), gomock.Any(), true).Return(nil, catalog.ErrRoomOccupied)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"enabled": true}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Room is occupied")
	})

	s.Run("error: room still needed by active stays", func() {
		s.mockCommands.EXPECT().SetRoomMaintenance(gomock.Any(), gomock.Any(), gomock.Any(), true).
			Return(nil, errs.Wrap(catalog.ErrRoomInDemand, "2 stays overlap, 1 rooms would remain"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"enabled": true}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Room is needed by active bookings")
	})

	s.Run("error: malformed room id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/rooms/abc/maintenance", map[string]any{"enabled": true}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
