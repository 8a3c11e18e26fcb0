package response

import (
	"time"

	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID                  uuid.UUID  `json:"id"`
	UserID              uuid.UUID  `json:"userId"`
	Type                string     `json:"type"`
	ItemID              uuid.UUID  `json:"itemId"`
	Status              string     `json:"status"`
	StartDate           time.Time  `json:"startDate"`
	EndDate             time.Time  `json:"endDate"`
	NumGuests           *int       `json:"numGuests,omitempty"`
	PricePerPersonCents *int64     `json:"pricePerPersonCents,omitempty"`
	RoomTypeID          *uuid.UUID `json:"roomTypeId,omitempty"`
	AssignedRoomID      *uuid.UUID `json:"assignedRoomId,omitempty"`
	TotalPriceCents     int64      `json:"totalPriceCents"`
	CommissionRate      float64    `json:"commissionRate"`
	CommissionCents     int64      `json:"commissionCents"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

type BookingListResponse struct {
	Items      []BookingResponse `json:"items"`
	NextCursor string            `json:"nextCursor,omitempty"`
}

func FromBookingPage(p *queries.BookingPage) (*BookingListResponse, error) {
	res := BookingListResponse{
		Items:      make([]BookingResponse, 0, len(p.Items)),
		NextCursor: p.NextCursor,
	}
	if err := copier.Copy(&res.Items, &p.Items); err != nil {
		return nil, err
	}
	return &res, nil
}

// StatusChangeResponse reports a cancel or status update. alreadyFinal marks a no-op on a
// terminal booking.
type StatusChangeResponse struct {
	Booking        *BookingResponse `json:"booking"`
	From           string           `json:"from"`
	To             string           `json:"to"`
	Changed        bool             `json:"changed"`
	AlreadyFinal   bool             `json:"alreadyFinal"`
	ReleasedRoomID *uuid.UUID       `json:"releasedRoomId,omitempty"`
}

func FromStatusChange(r *commands.StatusChangeResult) (*StatusChangeResponse, error) {
	view := queries.NewBookingView(r.Booking)
	b, err := FromBookingView(&view)
	if err != nil {
		return nil, err
	}
	return &StatusChangeResponse{
		Booking:        b,
		From:           r.Transition.From.String(),
		To:             r.Transition.To.String(),
		Changed:        r.Transition.Changed,
		AlreadyFinal:   r.Transition.AlreadyFinal,
		ReleasedRoomID: r.Transition.ReleasedRoomID,
	}, nil
}
