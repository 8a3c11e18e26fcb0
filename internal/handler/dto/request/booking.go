package request

import (
	"travel-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateTourBookingRequest struct {
	StartDate *Date   `json:"startDate" binding:"required"`
	EndDate   *Date   `json:"endDate"`
	NumGuests *int    `json:"numGuests" binding:"omitempty,min=1,max=2147483647"`
	Status    *string `json:"status"`
}

func (r *CreateTourBookingRequest) ToDomain() (booking.TourRequest, error) {
	status, err := parseStatus(r.Status)
	if err != nil {
		return booking.TourRequest{}, err
	}
	return booking.TourRequest{
		StartDate: r.StartDate.timePtr(),
		EndDate:   r.EndDate.timePtr(),
		NumGuests: r.NumGuests,
		Status:    status,
	}, nil
}

type CreateHotelBookingRequest struct {
	StartDate  *Date     `json:"startDate" binding:"required"`
	EndDate    *Date     `json:"endDate" binding:"required"`
	RoomTypeID uuid.UUID `json:"roomTypeId" binding:"required"`
	PriceCents *int64    `json:"priceCents" binding:"omitempty,min=0"`
	Status     *string   `json:"status"`
}

func (r *CreateHotelBookingRequest) ToDomain() (booking.HotelRequest, error) {
	status, err := parseStatus(r.Status)
	if err != nil {
		return booking.HotelRequest{}, err
	}
	roomTypeID := r.RoomTypeID
	return booking.HotelRequest{
		StartDate:  r.StartDate.timePtr(),
		EndDate:    r.EndDate.timePtr(),
		RoomTypeID: &roomTypeID,
		PriceCents: r.PriceCents,
		Status:     status,
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ToDomain accepts the legacy spellings (cancelled, checkedin, completed).
func (r *UpdateBookingStatusRequest) ToDomain() (booking.Status, error) {
	return booking.ParseStatus(r.Status)
}

type AssignRoomRequest struct {
	RoomID uuid.UUID `json:"roomId" binding:"required"`
}

type SetMaintenanceRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type ListBookingsQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

func parseStatus(s *string) (*booking.Status, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	status, err := booking.ParseStatus(*s)
	if err != nil {
		return nil, err
	}
	return &status, nil
}
