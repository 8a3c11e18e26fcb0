//go:build unit || e2e

package builder

import (
	"strconv"
	"time"

	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/infra/sqlstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TourBuilder struct {
	ID             uuid.UUID
	Title          string
	MaxPeople      int
	AmountCents    int64
	Discount       float64
	CommissionRate float64
}

func NewTourBuilder() *TourBuilder {
	return &TourBuilder{
		ID:             uuid.New(),
		Title:          "Kyoto Temples Day Tour",
		MaxPeople:      10,
		AmountCents:    10000,
		Discount:       0,
		CommissionRate: 10,
	}
}

func (b *TourBuilder) With(mutate func(*TourBuilder)) *TourBuilder {
	mutate(b)
	return b
}

func (b *TourBuilder) WithMaxPeople(n int) *TourBuilder {
	b.MaxPeople = n
	return b
}

func (b *TourBuilder) WithPrice(amountCents int64, discount float64) *TourBuilder {
	b.AmountCents = amountCents
	b.Discount = discount
	return b
}

func (b *TourBuilder) WithCommissionRate(rate float64) *TourBuilder {
	b.CommissionRate = rate
	return b
}

func (b *TourBuilder) BuildDomain() (*catalog.Tour, error) {
	return catalog.NewTour(b.ID, b.Title, b.MaxPeople, b.AmountCents, b.Discount, b.CommissionRate)
}

// MustBuild panics on invalid input; only for fixtures that are valid by construction.
func (b *TourBuilder) MustBuild() *catalog.Tour {
	t, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return t
}

func (b *TourBuilder) BuildInfra() sqlstore.Tours {
	now := time.Now()
	return sqlstore.Tours{
		ID:             b.ID,
		Title:          b.Title,
		MaxPeople:      int32(b.MaxPeople),
		AmountCents:    b.AmountCents,
		Discount:       Numeric(b.Discount),
		CommissionRate: Numeric(b.CommissionRate),
		CreatedAt:      pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: now, Valid: true},
	}
}

type HotelBuilder struct {
	ID             uuid.UUID
	Name           string
	CommissionRate float64
	RoomTypes      []catalog.RoomType
}

// NewHotelBuilder starts with a single "Standard" room type at 200.00 per stay.
func NewHotelBuilder() *HotelBuilder {
	id := uuid.New()
	return &HotelBuilder{
		ID:             id,
		Name:           "Harbour View Hotel",
		CommissionRate: 15,
		RoomTypes: []catalog.RoomType{{
			ID:         uuid.New(),
			HotelID:    id,
			Name:       "Standard",
			PriceCents: 20000,
			Features:   []string{"wifi"},
		}},
	}
}

func (b *HotelBuilder) With(mutate func(*HotelBuilder)) *HotelBuilder {
	mutate(b)
	return b
}

func (b *HotelBuilder) WithRoomType(name string, priceCents int64) *HotelBuilder {
	b.RoomTypes = append(b.RoomTypes, catalog.RoomType{
		ID:         uuid.New(),
		HotelID:    b.ID,
		Name:       name,
		PriceCents: priceCents,
	})
	return b
}

func (b *HotelBuilder) WithCommissionRate(rate float64) *HotelBuilder {
	b.CommissionRate = rate
	return b
}

// RoomTypeID returns the id of the i-th room type.
func (b *HotelBuilder) RoomTypeID(i int) uuid.UUID {
	return b.RoomTypes[i].ID
}

func (b *HotelBuilder) BuildDomain() (*catalog.Hotel, error) {
	return catalog.NewHotel(b.ID, b.Name, b.CommissionRate, b.RoomTypes)
}

func (b *HotelBuilder) MustBuild() *catalog.Hotel {
	h, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return h
}

func (b *HotelBuilder) BuildInfra() (sqlstore.Hotels, []sqlstore.RoomTypes) {
	now := time.Now()
	row := sqlstore.Hotels{
		ID:             b.ID,
		Name:           b.Name,
		CommissionRate: Numeric(b.CommissionRate),
		CreatedAt:      pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: now, Valid: true},
	}
	types := make([]sqlstore.RoomTypes, 0, len(b.RoomTypes))
	for _, rt := range b.RoomTypes {
		types = append(types, sqlstore.RoomTypes{
			ID:         rt.ID,
			HotelID:    rt.HotelID,
			Name:       rt.Name,
			PriceCents: rt.PriceCents,
			Features:   rt.Features,
		})
	}
	return row, types
}

type RoomBuilder struct {
	ID               uuid.UUID
	HotelID          uuid.UUID
	RoomTypeID       uuid.UUID
	Number           string
	Status           catalog.RoomStatus
	CurrentBookingID *uuid.UUID
	UpdatedAt        time.Time
}

func NewRoomBuilder(hotelID, roomTypeID uuid.UUID) *RoomBuilder {
	return &RoomBuilder{
		ID:         uuid.New(),
		HotelID:    hotelID,
		RoomTypeID: roomTypeID,
		Number:     "101",
		Status:     catalog.RoomAvailable,
		UpdatedAt:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *RoomBuilder) WithNumber(number string) *RoomBuilder {
	b.Number = number
	return b
}

func (b *RoomBuilder) InMaintenance() *RoomBuilder {
	b.Status = catalog.RoomMaintenance
	b.CurrentBookingID = nil
	return b
}

func (b *RoomBuilder) OccupiedBy(bookingID uuid.UUID) *RoomBuilder {
	id := bookingID
	b.Status = catalog.RoomOccupied
	b.CurrentBookingID = &id
	return b
}

func (b *RoomBuilder) BuildDomain() *catalog.PhysicalRoom {
	return catalog.ReconstructPhysicalRoom(b.ID, b.HotelID, b.RoomTypeID, b.Number, b.Status, b.CurrentBookingID, b.UpdatedAt)
}

func (b *RoomBuilder) BuildInfra() sqlstore.Rooms {
	var current pgtype.UUID
	if b.CurrentBookingID != nil {
		current = pgtype.UUID{Bytes: *b.CurrentBookingID, Valid: true}
	}
	return sqlstore.Rooms{
		ID:               b.ID,
		HotelID:          b.HotelID,
		RoomTypeID:       b.RoomTypeID,
		Number:           b.Number,
		Status:           b.Status.String(),
		CurrentBookingID: current,
		UpdatedAt:        pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func Numeric(f float64) pgtype.Numeric {
	var n pgtype.Numeric
	if err := n.Scan(strconv.FormatFloat(f, 'f', -1, 64)); err != nil {
		panic(err)
	}
	return n
}
