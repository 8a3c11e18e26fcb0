package response

import (
	"time"

	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TourAvailabilityResponse struct {
	TourID    uuid.UUID `json:"tourId"`
	Date      time.Time `json:"date"`
	MaxPeople int       `json:"maxPeople"`
	Booked    int       `json:"booked"`
	Available int       `json:"available"`
	Requested int       `json:"requested"`
	Admitted  bool      `json:"admitted"`
}

func FromTourAvailability(v *queries.TourAvailabilityView) (*TourAvailabilityResponse, error) {
	var res TourAvailabilityResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

type HotelAvailabilityResponse struct {
	HotelID     uuid.UUID `json:"hotelId"`
	RoomTypeID  uuid.UUID `json:"roomTypeId"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	TotalRooms  int       `json:"totalRooms"`
	Overlapping int       `json:"overlapping"`
	Available   int       `json:"available"`
	Admitted    bool      `json:"admitted"`
	Reason      string    `json:"reason,omitempty"`
}

func FromHotelAvailability(v *queries.HotelAvailabilityView) (*HotelAvailabilityResponse, error) {
	var res HotelAvailabilityResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}
