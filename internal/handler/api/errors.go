package api

import (
	"log/slog"
	"net/http"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/customtour"
	"travel-booking/internal/handler/dto/request"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

// first match wins
var errorMappings = []errorMapping{
	{booking.ErrCapacityExceeded, http.StatusConflict, "Capacity exceeded"},
	{booking.ErrNoInventory, http.StatusConflict, "No rooms of this type are available"},

	{commands.ErrNotFound, http.StatusNotFound, "Not found"},
	{queries.ErrNotFound, http.StatusNotFound, "Not found"},
	{customtour.ErrQuoteNotFound, http.StatusNotFound, "Quote not found"},

	{commands.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{queries.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{customtour.ErrForbidden, http.StatusForbidden, "Forbidden"},

	{booking.ErrMissingFields, http.StatusBadRequest, "Missing required fields"},
	{booking.ErrInvalidStatus, http.StatusBadRequest, "Invalid status"},
	{booking.ErrInvalidDateRange, http.StatusBadRequest, "Invalid date range"},
	{booking.ErrInvalidGuests, http.StatusBadRequest, "Invalid number of guests"},
	{booking.ErrNegativePrice, http.StatusBadRequest, "Price cannot be negative"},
	{catalog.ErrRoomTypeNotInHotel, http.StatusBadRequest, "Room type does not belong to hotel"},
	{catalog.ErrRoomNotInRoomType, http.StatusBadRequest, "Room does not match the booked room type"},
	{customtour.ErrMissingFields, http.StatusBadRequest, "Missing required fields"},
	{customtour.ErrInvalidDateRange, http.StatusBadRequest, "Invalid date range"},
	{customtour.ErrInvalidGroupSize, http.StatusBadRequest, "Invalid group size"},
	{customtour.ErrNegativeAmount, http.StatusBadRequest, "Amount cannot be negative"},
	{customtour.ErrNotAGuide, http.StatusBadRequest, "Assignee is not a guide"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{request.ErrInvalidDate, http.StatusBadRequest, "Invalid date"},

	{booking.ErrInvalidTransition, http.StatusConflict, "Status transition not allowed"},
	{booking.ErrBookingFinal, http.StatusConflict, "Booking is already final"},
	{booking.ErrNotHotelBooking, http.StatusConflict, "Booking is not a hotel booking"},
	{catalog.ErrRoomOccupied, http.StatusConflict, "Room is occupied"},
	{catalog.ErrRoomUnavailable, http.StatusConflict, "Room is under maintenance"},
	{catalog.ErrRoomInDemand, http.StatusConflict, "Room is needed by active bookings"},
	{customtour.ErrInvalidTransition, http.StatusConflict, "Status transition not allowed"},
	{customtour.ErrDuplicateQuote, http.StatusConflict, "Quote already submitted"},
}

// respondError maps use case errors onto the JSON error envelope. Unknown errors are 500.
func respondError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if !errs.Is(err, m.target) {
			continue
		}
		var detail any
		var capErr *booking.CapacityError
		if errs.As(err, &capErr) {
			detail = gin.H{"available": capErr.Available}
		}
		httperr.AbortWithError(c, m.status, err, m.msg, detail)
		return
	}

	slog.Error("unhandled error", "error", err, "path", c.FullPath())
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func badRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}
