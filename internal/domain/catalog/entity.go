package catalog

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle            = errors.New("title cannot be empty")
	ErrTitleTooLong          = errors.New("title is too long (max 255 characters)")
	ErrInvalidMaxPeople      = errors.New("max people must be positive")
	ErrNegativeAmount        = errors.New("amount cannot be negative")
	ErrInvalidDiscount       = errors.New("discount must be between 0 and 1")
	ErrInvalidCommissionRate = errors.New("commission rate must be between 0 and 100")
	ErrRoomTypeNotInHotel    = errors.New("room type does not belong to hotel")
	ErrRoomNotInRoomType     = errors.New("room does not belong to the booked room type")
	ErrRoomOccupied          = errors.New("room is occupied by another booking")
	ErrRoomUnavailable       = errors.New("room is under maintenance")
	ErrRoomInDemand          = errors.New("active bookings need every remaining room of this type")
	ErrRoomNotHeldByBooking  = errors.New("room is not held by booking")
	ErrInvalidRoomStatus     = errors.New("invalid room status")
)

const (
	MaxTitleLength = 255
)

// Tour is a bookable departure product. Capacity is maxPeople per departure date.
type Tour struct {
	id             uuid.UUID
	title          string
	maxPeople      int
	amountCents    int64
	discount       float64
	commissionRate float64
}

func NewTour(id uuid.UUID, title string, maxPeople int, amountCents int64, discount, commissionRate float64) (*Tour, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if maxPeople <= 0 {
		return nil, ErrInvalidMaxPeople
	}
	if amountCents < 0 {
		return nil, ErrNegativeAmount
	}
	if discount < 0 || discount > 1 {
		return nil, ErrInvalidDiscount
	}
	if err := validateCommissionRate(commissionRate); err != nil {
		return nil, err
	}

	return &Tour{
		id:             id,
		title:          strings.TrimSpace(title),
		maxPeople:      maxPeople,
		amountCents:    amountCents,
		discount:       discount,
		commissionRate: commissionRate,
	}, nil
}

func (t *Tour) ID() uuid.UUID           { return t.id }
func (t *Tour) Title() string           { return t.title }
func (t *Tour) MaxPeople() int          { return t.maxPeople }
func (t *Tour) AmountCents() int64      { return t.amountCents }
func (t *Tour) Discount() float64       { return t.discount }
func (t *Tour) CommissionRate() float64 { return t.commissionRate }

// Hotel groups room types. Its capacity is the roster of physical rooms per room type.
type Hotel struct {
	id             uuid.UUID
	name           string
	commissionRate float64
	roomTypes      []RoomType
}

type RoomType struct {
	ID         uuid.UUID
	HotelID    uuid.UUID
	Name       string
	PriceCents int64
	Features   []string
}

func NewHotel(id uuid.UUID, name string, commissionRate float64, roomTypes []RoomType) (*Hotel, error) {
	if err := validateTitle(name); err != nil {
		return nil, err
	}
	if err := validateCommissionRate(commissionRate); err != nil {
		return nil, err
	}
	for _, rt := range roomTypes {
		if rt.HotelID != id {
			return nil, ErrRoomTypeNotInHotel
		}
	}

	return &Hotel{
		id:             id,
		name:           strings.TrimSpace(name),
		commissionRate: commissionRate,
		roomTypes:      roomTypes,
	}, nil
}

func (h *Hotel) ID() uuid.UUID           { return h.id }
func (h *Hotel) Name() string            { return h.name }
func (h *Hotel) CommissionRate() float64 { return h.commissionRate }
func (h *Hotel) RoomTypes() []RoomType   { return h.roomTypes }

func (h *Hotel) RoomType(id uuid.UUID) (RoomType, bool) {
	for _, rt := range h.roomTypes {
		if rt.ID == id {
			return rt, true
		}
	}
	return RoomType{}, false
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func validateCommissionRate(rate float64) error {
	if rate < 0 || rate > 100 {
		return ErrInvalidCommissionRate
	}
	return nil
}
