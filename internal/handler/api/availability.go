package api

import (
	"net/http"
	"strconv"

	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Tour availability
// @Description Remaining seats on a departure date. Advisory only; booking re-checks under lock.
// @Tags availability
// @Produce json
// @Param tourId path string true "Tour ID"
// @Param date query string true "Departure date (YYYY-MM-DD)"
// @Param guests query int false "Requested guests (default 1)"
// @Success 200 {object} resdto.TourAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/availability/tours/{tourId} [get]
func (h *AvailabilityHandler) TourAvailability(c *gin.Context) {
	tourID, ok := pathUUID(c, "tourId")
	if !ok {
		return
	}
	date, err := reqdto.ParseDate(c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	guests := 1
	if raw := c.Query("guests"); raw != "" {
		if guests, err = strconv.Atoi(raw); err != nil {
			badRequest(c, err, "Invalid guests")
			return
		}
	}

	view, err := h.q.TourAvailability(c.Request.Context(), tourID, date.Time, guests)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromTourAvailability(view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Hotel availability
// @Description Free rooms of a room type over a stay window. Advisory only.
// @Tags availability
// @Produce json
// @Param hotelId path string true "Hotel ID"
// @Param roomTypeId query string true "Room type ID"
// @Param start query string true "Check-in date (YYYY-MM-DD)"
// @Param end query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.HotelAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/availability/hotels/{hotelId} [get]
func (h *AvailabilityHandler) HotelAvailability(c *gin.Context) {
	hotelID, ok := pathUUID(c, "hotelId")
	if !ok {
		return
	}
	roomTypeID, err := uuid.Parse(c.Query("roomTypeId"))
	if err != nil {
		badRequest(c, err, "Invalid roomTypeId")
		return
	}
	start, err := reqdto.ParseDate(c.Query("start"))
	if err != nil {
		respondError(c, err)
		return
	}
	end, err := reqdto.ParseDate(c.Query("end"))
	if err != nil {
		respondError(c, err)
		return
	}

	view, err := h.q.HotelAvailability(c.Request.Context(), hotelID, roomTypeID, start.Time, end.Time)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromHotelAvailability(view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
