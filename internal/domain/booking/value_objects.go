package booking

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

// Percent returns rate% of m rounded to the nearest cent.
func (m Money) Percent(rate float64) Money {
	return Money{cents: int64(math.Round(float64(m.cents) * rate / 100.0))}
}

// LessFraction returns m - fraction*m rounded to the nearest cent.
func (m Money) LessFraction(fraction float64) Money {
	return Money{cents: int64(math.Round(float64(m.cents) - fraction*float64(m.cents)))}
}

// NormalizeDate truncates t to its UTC calendar day.
func NormalizeDate(t time.Time) time.Time {
	y, mo, d := t.UTC().Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

// DateRange is a half-open window [start, end) of calendar days.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	s, e := NormalizeDate(start), NormalizeDate(end)
	if !e.After(s) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: s, end: e}, nil
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

func (r DateRange) Nights() int {
	return int(r.end.Sub(r.start).Hours() / 24)
}

// Overlaps uses the inventory predicate s1 <= e2 && e1 >= s2. Touching windows count as overlapping.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !r.end.Before(other.start)
}

// Details is the type-specific part of a booking: TourDetails or HotelDetails.
type Details interface {
	Type() Type
	isDetails()
}

type TourDetails struct {
	StartDate      time.Time
	EndDate        time.Time
	NumGuests      int
	PricePerPerson Money
	Price          Money
}

func (TourDetails) Type() Type { return TypeTour }
func (TourDetails) isDetails() {}

type HotelDetails struct {
	Window     DateRange
	RoomTypeID uuid.UUID
	Price      Money
}

func (HotelDetails) Type() Type { return TypeHotel }
func (HotelDetails) isDetails() {}
