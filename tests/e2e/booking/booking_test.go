//go:build e2e

package booking_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/handler/dto/response"
	"travel-booking/internal/usecase/shared"
	"travel-booking/tests/common/authtest"
	"travel-booking/tests/common/dbtest"
	"travel-booking/tests/common/httptest"
	"travel-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	tourBookingURL  = "/api/bookings/tours/%s"
	hotelBookingURL = "/api/bookings/hotels/%s"
	bookingURL      = "/api/bookings/%s"
	bookingsURL     = "/api/bookings"
	tourAvailURL    = "/api/availability/tours/%s?date=%s"
)

type BookingSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func decodeBooking(t *testing.T, w interface{ Bytes() []byte }) response.BookingResponse {
	t.Helper()
	var b response.BookingResponse
	require.NoError(t, json.Unmarshal(w.Bytes(), &b))
	return b
}

// =============================================================================
// Tour capacity
// =============================================================================

func (s *BookingSuite) TestTourCapacity() {
	s.Run("Normal case: guests admitted until the departure is full", func() {
		t := s.T()

		_, token := s.jwt.CreateAndSignIn(t, s.DB, "traveler@example.com", user.RoleUser)
		tourID := dbtest.CreateTestTour(t, s.DB, 5, 10000, 0.2, 10)
		url := fmt.Sprintf(tourBookingURL, tourID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			map[string]any{"startDate": "2025-08-10", "numGuests": 3}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		actual := decodeBooking(t, w.Body)
		guests, perPerson := 3, int64(8000)
		expected := response.BookingResponse{
			Type:                "Tour",
			ItemID:              tourID,
			Status:              "pending",
			NumGuests:           &guests,
			PricePerPersonCents: &perPerson,
			TotalPriceCents:     24000,
			CommissionRate:      10,
			CommissionCents:     2400,
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "UserID", "StartDate", "EndDate", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, actual, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, "2025-08-10", actual.StartDate.Format("2006-01-02"))

		// 3 of 5 seats taken: another party of 3 is refused with the remaining count
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			map[string]any{"startDate": "2025-08-10", "numGuests": 3}, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Capacity exceeded")
		var refused struct {
			Detail struct {
				Available int `json:"available"`
			} `json:"detail"`
		}
		httptest.DecodeResponseBody(t, w.Body, &refused)
		require.Equal(t, 2, refused.Detail.Available)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			map[string]any{"startDate": "2025-08-10", "numGuests": 2, "status": "booked"}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// a different departure date has its own capacity
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			map[string]any{"startDate": "2025-08-11", "numGuests": 5}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(tourAvailURL, tourID, "2025-08-10"), nil, "")
		var avail response.TourAvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &avail)
		require.Equal(t, 0, avail.Available)
		require.Equal(t, 5, avail.Booked)
		require.False(t, avail.Admitted)

		require.Equal(t, 3, dbtest.CountNotificationJobs(t, s.DB, shared.TopicBookingCreated))
	})

	s.Run("Normal case: cancelled bookings free their seats", func() {
		t := s.T()

		_, token := s.jwt.CreateAndSignIn(t, s.DB, "canceller@example.com", user.RoleUser)
		tourID := dbtest.CreateTestTour(t, s.DB, 2, 5000, 0, 0)
		url := fmt.Sprintf(tourBookingURL, tourID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, map[string]any{"startDate": "2025-08-10", "numGuests": 2}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		created := decodeBooking(t, w.Body)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookingURL, created.ID)+"/cancel", nil, token)
		var change response.StatusChangeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &change)
		require.True(t, change.Changed)
		require.Equal(t, "cancel", change.To)

		// second cancel is a no-op
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookingURL, created.ID)+"/cancel", nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &change)
		require.False(t, change.Changed)
		require.True(t, change.AlreadyFinal)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url, map[string]any{"startDate": "2025-08-10", "numGuests": 2}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Concurrency: simultaneous requests never overbook", func() {
		t := s.T()

		_, token := s.jwt.CreateAndSignIn(t, s.DB, "rush@example.com", user.RoleUser)
		tourID := dbtest.CreateTestTour(t, s.DB, 4, 1000, 0, 0)
		url := fmt.Sprintf(tourBookingURL, tourID)

		const workers = 8
		codes := make([]int, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, map[string]any{"startDate": "2025-08-10", "numGuests": 1}, token)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		admitted := 0
		for _, c := range codes {
			if c == http.StatusCreated {
				admitted++
				continue
			}
			require.Equal(t, http.StatusConflict, c)
		}
		require.Equal(t, 4, admitted)
	})

	s.Run("Error case: unknown tour and unauthenticated", func() {
		t := s.T()

		_, token := s.jwt.CreateAndSignIn(t, s.DB, "lost@example.com", user.RoleUser)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(tourBookingURL, uuid.New()), map[string]any{"startDate": "2025-08-10"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Not found")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(tourBookingURL, uuid.New()), map[string]any{"startDate": "2025-08-10"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")

		expired := s.jwt.CreateExpiredToken(t, uuid.New(), user.RoleUser)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, expired)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

// =============================================================================
// Hotel inventory and room lifecycle
// =============================================================================

func (s *BookingSuite) TestHotelLifecycle() {
	s.Run("Normal case: book, assign, check out, release", func() {
		t := s.T()

		_, guestToken := s.jwt.CreateAndSignIn(t, s.DB, "guest@example.com", user.RoleUser)
		_, adminToken := s.jwt.CreateAndSignIn(t, s.DB, "frontdesk@example.com", user.RoleAdmin)
		hotelID := dbtest.CreateTestHotel(t, s.DB, "Seaside Inn", 15)
		rtID := dbtest.CreateTestRoomType(t, s.DB, hotelID, "Twin", 20000)
		roomID := dbtest.CreateTestRoom(t, s.DB, hotelID, rtID, "101")
		url := fmt.Sprintf(hotelBookingURL, hotelID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			map[string]any{"startDate": "2025-07-01", "endDate": "2025-07-04", "roomTypeId": rtID}, guestToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		stay := decodeBooking(t, w.Body)
		require.Equal(t, "Hotel", stay.Type)
		require.Equal(t, int64(20000), stay.TotalPriceCents)
		require.Equal(t, int64(3000), stay.CommissionCents)

		// single room: overlapping and touching windows are both refused
		for _, window := range [][2]string{{"2025-07-03", "2025-07-06"}, {"2025-07-04", "2025-07-06"}} {
			w = httptest.PerformRequest(t, s.Router, http.MethodPost, url,
				map[string]any{"startDate": window[0], "endDate": window[1], "roomTypeId": rtID}, guestToken)
			httptest.AssertErrorResponse(t, w, http.StatusConflict, "Capacity exceeded")
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			map[string]any{"startDate": "2025-07-05", "endDate": "2025-07-07", "roomTypeId": rtID}, guestToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// only admins assign rooms
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(bookingURL, stay.ID)+"/room", map[string]any{"roomId": roomID}, guestToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(bookingURL, stay.ID)+"/room", map[string]any{"roomId": roomID}, adminToken)
		var assigned response.RoomAssignmentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &assigned)
		require.Equal(t, "checkedIn", assigned.Booking.Status)
		require.Equal(t, "occupied", assigned.Room.Status)
		status, current := dbtest.RoomStatus(t, s.DB, roomID)
		require.Equal(t, "occupied", status)
		require.NotNil(t, current)
		require.Equal(t, stay.ID, *current)

		// an occupied room cannot go into maintenance
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf("/api/rooms/%s/maintenance", roomID), map[string]any{"enabled": true}, adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Room is occupied")

		// legacy spelling accepted at the boundary
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(bookingURL, stay.ID)+"/status", map[string]any{"status": "completed"}, adminToken)
		var done response.StatusChangeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &done)
		require.Equal(t, "complete", done.To)
		require.NotNil(t, done.ReleasedRoomID)
		require.Equal(t, roomID, *done.ReleasedRoomID)

		status, current = dbtest.RoomStatus(t, s.DB, roomID)
		require.Equal(t, "available", status)
		require.Nil(t, current)

		// terminal bookings do not move backwards
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(bookingURL, stay.ID)+"/status", map[string]any{"status": "booked"}, adminToken)
		var again response.StatusChangeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &again)
		require.True(t, again.AlreadyFinal)
		require.False(t, again.Changed)
		require.Equal(t, "complete", again.To)

		require.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, shared.TopicRoomAssigned))
	})

	s.Run("Error case: room type from another hotel", func() {
		t := s.T()

		_, token := s.jwt.CreateAndSignIn(t, s.DB, "mixup@example.com", user.RoleUser)
		hotelA := dbtest.CreateTestHotel(t, s.DB, "A", 10)
		hotelB := dbtest.CreateTestHotel(t, s.DB, "B", 10)
		rtB := dbtest.CreateTestRoomType(t, s.DB, hotelB, "Suite", 50000)
		dbtest.CreateTestRoom(t, s.DB, hotelB, rtB, "1")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(hotelBookingURL, hotelA),
			map[string]any{"startDate": "2025-07-01", "endDate": "2025-07-02", "roomTypeId": rtB}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Room type does not belong to hotel")
	})

	s.Run("Error case: room type without rooms", func() {
		t := s.T()

		_, token := s.jwt.CreateAndSignIn(t, s.DB, "empty@example.com", user.RoleUser)
		hotelID := dbtest.CreateTestHotel(t, s.DB, "Empty", 10)
		rtID := dbtest.CreateTestRoomType(t, s.DB, hotelID, "Ghost", 1000)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(hotelBookingURL, hotelID),
			map[string]any{"startDate": "2025-07-01", "endDate": "2025-07-02", "roomTypeId": rtID}, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "No rooms of this type are available")
	})
}

// =============================================================================
// Reading bookings
// =============================================================================

func (s *BookingSuite) TestReadBookings() {
	s.Run("Normal case: paginated listing of own bookings only", func() {
		t := s.T()

		_, token := s.jwt.CreateAndSignIn(t, s.DB, "pager@example.com", user.RoleUser)
		_, otherToken := s.jwt.CreateAndSignIn(t, s.DB, "other@example.com", user.RoleUser)
		tourID := dbtest.CreateTestTour(t, s.DB, 50, 1000, 0, 0)
		url := fmt.Sprintf(tourBookingURL, tourID)

		created := map[uuid.UUID]bool{}
		for range 3 {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, map[string]any{"startDate": "2025-08-10"}, token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
			created[decodeBooking(t, w.Body).ID] = true
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, map[string]any{"startDate": "2025-08-10"}, otherToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		foreign := decodeBooking(t, w.Body)

		seen := map[uuid.UUID]bool{}
		cursor := ""
		for page := 0; ; page++ {
			require.Less(t, page, 3, "pagination did not terminate")
			w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?limit=2&cursor="+cursor, nil, token)
			var list response.BookingListResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
			for _, b := range list.Items {
				require.False(t, seen[b.ID], "booking listed twice")
				seen[b.ID] = true
			}
			if list.NextCursor == "" {
				break
			}
			cursor = list.NextCursor
		}
		require.Equal(t, created, seen)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, foreign.ID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Forbidden")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?cursor=garbage", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid cursor")
	})
}
