package queries

import (
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/customtour"

	"github.com/google/uuid"
)

// BookingView is the read model of a booking. Tour-only and hotel-only fields are nil for the
// other type.
type BookingView struct {
	ID                  uuid.UUID  `json:"id"`
	UserID              uuid.UUID  `json:"user_id"`
	Type                string     `json:"type"`
	ItemID              uuid.UUID  `json:"item_id"`
	Status              string     `json:"status"`
	StartDate           time.Time  `json:"start_date"`
	EndDate             time.Time  `json:"end_date"`
	NumGuests           *int       `json:"num_guests,omitempty"`
	PricePerPersonCents *int64     `json:"price_per_person_cents,omitempty"`
	RoomTypeID          *uuid.UUID `json:"room_type_id,omitempty"`
	AssignedRoomID      *uuid.UUID `json:"assigned_room_id,omitempty"`
	TotalPriceCents     int64      `json:"total_price_cents"`
	CommissionRate      float64    `json:"commission_rate"`
	CommissionCents     int64      `json:"commission_cents"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func NewBookingView(b *booking.Booking) BookingView {
	v := BookingView{
		ID:              b.ID(),
		UserID:          b.UserID(),
		Type:            b.Type().String(),
		ItemID:          b.ItemID(),
		Status:          b.Status().String(),
		AssignedRoomID:  b.AssignedRoomID(),
		TotalPriceCents: b.TotalPrice().Cents(),
		CommissionRate:  b.CommissionRate(),
		CommissionCents: b.Commission().Cents(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}

	switch d := b.Details().(type) {
	case booking.TourDetails:
		guests := d.NumGuests
		perPerson := d.PricePerPerson.Cents()
		v.StartDate = d.StartDate
		v.EndDate = d.EndDate
		v.NumGuests = &guests
		v.PricePerPersonCents = &perPerson
	case booking.HotelDetails:
		roomType := d.RoomTypeID
		v.StartDate = d.Window.Start()
		v.EndDate = d.Window.End()
		v.RoomTypeID = &roomType
	}
	return v
}

type BookingPage struct {
	Items      []BookingView `json:"items"`
	NextCursor string        `json:"next_cursor,omitempty"`
}

type RoomView struct {
	ID               uuid.UUID  `json:"id"`
	HotelID          uuid.UUID  `json:"hotel_id"`
	RoomTypeID       uuid.UUID  `json:"room_type_id"`
	Number           string     `json:"number"`
	Status           string     `json:"status"`
	CurrentBookingID *uuid.UUID `json:"current_booking_id,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func NewRoomView(r *catalog.PhysicalRoom) RoomView {
	return RoomView{
		ID:               r.ID(),
		HotelID:          r.HotelID(),
		RoomTypeID:       r.RoomTypeID(),
		Number:           r.Number(),
		Status:           r.Status().String(),
		CurrentBookingID: r.CurrentBookingID(),
		UpdatedAt:        r.UpdatedAt(),
	}
}

type TourAvailabilityView struct {
	TourID    uuid.UUID `json:"tour_id"`
	Date      time.Time `json:"date"`
	MaxPeople int       `json:"max_people"`
	Booked    int       `json:"booked"`
	Available int       `json:"available"`
	Requested int       `json:"requested"`
	Admitted  bool      `json:"admitted"`
}

type HotelAvailabilityView struct {
	HotelID     uuid.UUID `json:"hotel_id"`
	RoomTypeID  uuid.UUID `json:"room_type_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	TotalRooms  int       `json:"total_rooms"`
	Overlapping int       `json:"overlapping"`
	Available   int       `json:"available"`
	Admitted    bool      `json:"admitted"`
	Reason      string    `json:"reason,omitempty"`
}

type QuoteView struct {
	ID          uuid.UUID `json:"id"`
	GuideID     uuid.UUID `json:"guide_id"`
	AmountCents int64     `json:"amount_cents"`
	Message     string    `json:"message,omitempty"`
	Itinerary   string    `json:"itinerary,omitempty"`
	Accepted    bool      `json:"accepted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BargainView struct {
	ID          uuid.UUID `json:"id"`
	FromUserID  uuid.UUID `json:"from_user_id"`
	AmountCents int64     `json:"amount_cents"`
	Message     string    `json:"message,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CustomTourView struct {
	ID              uuid.UUID     `json:"id"`
	UserID          uuid.UUID     `json:"user_id"`
	Destination     string        `json:"destination"`
	StartDate       time.Time     `json:"start_date"`
	EndDate         time.Time     `json:"end_date"`
	GroupSize       int           `json:"group_size"`
	BudgetCents     int64         `json:"budget_cents"`
	Preferences     string        `json:"preferences,omitempty"`
	Status          string        `json:"status"`
	AssignedGuideID *uuid.UUID    `json:"assigned_guide_id,omitempty"`
	AcceptedQuoteID *uuid.UUID    `json:"accepted_quote_id,omitempty"`
	Quotes          []QuoteView   `json:"quotes"`
	Bargains        []BargainView `json:"bargains"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func NewCustomTourView(r *customtour.Request) CustomTourView {
	d := r.Details()
	v := CustomTourView{
		ID:              r.ID(),
		UserID:          r.UserID(),
		Destination:     d.Destination,
		StartDate:       d.StartDate,
		EndDate:         d.EndDate,
		GroupSize:       d.GroupSize,
		BudgetCents:     d.BudgetCents,
		Preferences:     d.Preferences,
		Status:          r.Status().String(),
		AssignedGuideID: r.AssignedGuideID(),
		AcceptedQuoteID: r.AcceptedQuoteID(),
		Quotes:          make([]QuoteView, 0, len(r.Quotes())),
		Bargains:        make([]BargainView, 0, len(r.Bargains())),
		CreatedAt:       r.CreatedAt(),
		UpdatedAt:       r.UpdatedAt(),
	}

	accepted := r.AcceptedQuoteID()
	for _, q := range r.Quotes() {
		v.Quotes = append(v.Quotes, QuoteView{
			ID:          q.ID,
			GuideID:     q.GuideID,
			AmountCents: q.AmountCents,
			Message:     q.Message,
			Itinerary:   q.Itinerary,
			Accepted:    accepted != nil && *accepted == q.ID,
			CreatedAt:   q.CreatedAt,
			UpdatedAt:   q.UpdatedAt,
		})
	}
	for _, b := range r.Bargains() {
		v.Bargains = append(v.Bargains, BargainView{
			ID:          b.ID,
			FromUserID:  b.FromUserID,
			AmountCents: b.AmountCents,
			Message:     b.Message,
			CreatedAt:   b.CreatedAt,
		})
	}
	return v
}
