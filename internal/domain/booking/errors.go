package booking

import (
	"errors"
	"fmt"
)

var (
	ErrMissingFields     = errors.New("missing required booking fields")
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("booking status transition not allowed")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrNoInventory       = errors.New("no rooms of this type are available for booking")
	ErrNotHotelBooking   = errors.New("booking is not a hotel booking")
	ErrBookingFinal      = errors.New("booking is already in a final state")
	ErrInvalidDateRange  = errors.New("end date must be after start date")
	ErrInvalidGuests     = errors.New("number of guests must be between 1 and the tour capacity")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrInvalidType       = errors.New("invalid booking type")
)

// CapacityError is an admission refusal carrying the remaining capacity.
type CapacityError struct {
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("capacity exceeded: %d remaining", e.Available)
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

func NewCapacityError(available int) error {
	if available < 0 {
		available = 0
	}
	return &CapacityError{Available: available}
}

func missing(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingFields, field)
}
