package sqlstore

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Users struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type Tours struct {
	ID             uuid.UUID
	Title          string
	MaxPeople      int32
	AmountCents    int64
	Discount       pgtype.Numeric
	CommissionRate pgtype.Numeric
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

type Hotels struct {
	ID             uuid.UUID
	Name           string
	CommissionRate pgtype.Numeric
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

type RoomTypes struct {
	ID         uuid.UUID
	HotelID    uuid.UUID
	Name       string
	PriceCents int64
	Features   []string
}

type Rooms struct {
	ID               uuid.UUID
	HotelID          uuid.UUID
	RoomTypeID       uuid.UUID
	Number           string
	Status           string
	CurrentBookingID pgtype.UUID
	UpdatedAt        pgtype.Timestamptz
}

type Bookings struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Type                string
	ItemID              uuid.UUID
	RoomTypeID          pgtype.UUID
	StartDate           pgtype.Date
	EndDate             pgtype.Date
	NumGuests           int32
	PricePerPersonCents pgtype.Int8
	TotalPriceCents     int64
	CommissionRate      pgtype.Numeric
	CommissionCents     int64
	Status              string
	AssignedRoomID      pgtype.UUID
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
}

type CustomTourRequests struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Destination     string
	StartDate       pgtype.Date
	EndDate         pgtype.Date
	GroupSize       int32
	BudgetCents     int64
	Preferences     string
	Status          string
	AssignedGuideID pgtype.UUID
	AcceptedQuoteID pgtype.UUID
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

type CustomTourQuotes struct {
	ID          uuid.UUID
	RequestID   uuid.UUID
	GuideID     uuid.UUID
	AmountCents int64
	Message     string
	Itinerary   string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type CustomTourBargains struct {
	ID          uuid.UUID
	RequestID   uuid.UUID
	FromUserID  uuid.UUID
	AmountCents int64
	Message     string
	CreatedAt   pgtype.Timestamptz
}

type NotificationJobs struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     pgtype.Timestamptz
	Attempts  int32
	Status    string
	LastError pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}
