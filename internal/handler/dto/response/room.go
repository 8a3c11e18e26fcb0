package response

import (
	"time"

	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID               uuid.UUID  `json:"id"`
	HotelID          uuid.UUID  `json:"hotelId"`
	RoomTypeID       uuid.UUID  `json:"roomTypeId"`
	Number           string     `json:"number"`
	Status           string     `json:"status"`
	CurrentBookingID *uuid.UUID `json:"currentBookingId,omitempty"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func FromRoomView(v *queries.RoomView) (*RoomResponse, error) {
	var res RoomResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

type RoomAssignmentResponse struct {
	Booking        *BookingResponse `json:"booking"`
	Room           *RoomResponse    `json:"room"`
	PreviousRoomID *uuid.UUID       `json:"previousRoomId,omitempty"`
}

func FromRoomAssignment(r *commands.RoomAssignmentResult) (*RoomAssignmentResponse, error) {
	bookingView := queries.NewBookingView(r.Booking)
	b, err := FromBookingView(&bookingView)
	if err != nil {
		return nil, err
	}
	roomView := queries.NewRoomView(r.Room)
	room, err := FromRoomView(&roomView)
	if err != nil {
		return nil, err
	}
	return &RoomAssignmentResponse{
		Booking:        b,
		Room:           room,
		PreviousRoomID: r.PreviousRoomID,
	}, nil
}
