package api

import (
	"net/http"

	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Book a tour
// @Description Admit guests onto a tour departure date if capacity allows
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tourId path string true "Tour ID"
// @Param request body reqdto.CreateTourBookingRequest true "Tour booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/tours/{tourId} [post]
func (h *BookingHandler) CreateTourBooking(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	tourID, ok := pathUUID(c, "tourId")
	if !ok {
		return
	}

	var req reqdto.CreateTourBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}
	in, err := req.ToDomain()
	if err != nil {
		respondError(c, err)
		return
	}

	b, err := h.cmds.CreateTourBooking(c.Request.Context(), actor.ID, tourID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	h.writeBooking(c, http.StatusCreated, queries.NewBookingView(b))
}

// @Summary Book a hotel room type
// @Description Admit a stay on a room type if a room is free for the whole window
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param hotelId path string true "Hotel ID"
// @Param request body reqdto.CreateHotelBookingRequest true "Hotel booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/hotels/{hotelId} [post]
func (h *BookingHandler) CreateHotelBooking(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	hotelID, ok := pathUUID(c, "hotelId")
	if !ok {
		return
	}

	var req reqdto.CreateHotelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}
	in, err := req.ToDomain()
	if err != nil {
		respondError(c, err)
		return
	}

	b, err := h.cmds.CreateHotelBooking(c.Request.Context(), actor.ID, hotelID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	h.writeBooking(c, http.StatusCreated, queries.NewBookingView(b))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	h.writeBooking(c, http.StatusOK, *view)
}

// @Summary List my bookings
// @Description Newest first, keyset paginated
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Cursor from the previous page"
// @Param limit query int false "Page size (default 20, max 200)"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err, "Invalid query")
		return
	}

	page, err := h.q.ListMine(c.Request.Context(), actor, queries.Cursor{After: q.Cursor}, q.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromBookingPage(page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Cancel booking
// @Description Owner or admin. Cancelling a final booking is a no-op reported as alreadyFinal.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.StatusChangeResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	result, err := h.cmds.CancelBooking(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	h.writeStatusChange(c, result)
}

// @Summary Update booking status
// @Description Admin only. Accepts legacy spellings such as "cancelled" and "completed".
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Target status"
// @Success 200 {object} resdto.StatusChangeResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}
	target, err := req.ToDomain()
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.cmds.UpdateBookingStatus(c.Request.Context(), actor, id, target)
	if err != nil {
		respondError(c, err)
		return
	}
	h.writeStatusChange(c, result)
}

func (h *BookingHandler) writeBooking(c *gin.Context, status int, view queries.BookingView) {
	res, err := resdto.FromBookingView(&view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, res)
}

func (h *BookingHandler) writeStatusChange(c *gin.Context, result *commands.StatusChangeResult) {
	res, err := resdto.FromStatusChange(result)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
