package customtour

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingFields     = errors.New("missing required custom tour fields")
	ErrInvalidDateRange  = errors.New("end date must not be before start date")
	ErrInvalidGroupSize  = errors.New("group size must be at least 1")
	ErrNegativeAmount    = errors.New("amount cannot be negative")
	ErrForbidden         = errors.New("not allowed to act on this custom tour request")
	ErrInvalidTransition = errors.New("custom tour status transition not allowed")
	ErrDuplicateQuote    = errors.New("guide has already quoted this request")
	ErrQuoteNotFound     = errors.New("quote not found")
	ErrInvalidStatus     = errors.New("invalid custom tour status")
	ErrNotAGuide         = errors.New("assignee does not have the guide role")
)

// Quote is a guide's offer. Each guide holds at most one quote per request and revises it in place.
type Quote struct {
	ID          uuid.UUID
	GuideID     uuid.UUID
	AmountCents int64
	Message     string
	Itinerary   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Bargain is a counter-offer from the requester. Bargains are append-only.
type Bargain struct {
	ID          uuid.UUID
	FromUserID  uuid.UUID
	AmountCents int64
	Message     string
	CreatedAt   time.Time
}

type Details struct {
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	GroupSize   int
	BudgetCents int64
	Preferences string
}

func (d Details) validate() error {
	switch {
	case d.Destination == "":
		return ErrMissingFields
	case d.StartDate.IsZero() || d.EndDate.IsZero():
		return ErrMissingFields
	case d.EndDate.Before(d.StartDate):
		return ErrInvalidDateRange
	case d.GroupSize < 1:
		return ErrInvalidGroupSize
	case d.BudgetCents < 0:
		return ErrNegativeAmount
	}
	return nil
}

// Outcome reports whether a terminal request made the call a no-op.
type Outcome struct {
	From         Status
	To           Status
	AlreadyFinal bool
}
