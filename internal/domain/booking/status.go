package booking

import "strings"

type Status string

const (
	StatusPending   Status = "pending"
	StatusBooked    Status = "booked"
	StatusCheckedIn Status = "checkedIn"
	StatusComplete  Status = "complete"
	StatusCancel    Status = "cancel"
)

// position along pending -> booked -> checkedIn -> complete; cancel sits outside the chain.
var statusRank = map[Status]int{
	StatusPending:   0,
	StatusBooked:    1,
	StatusCheckedIn: 2,
	StatusComplete:  3,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusBooked, StatusCheckedIn, StatusComplete, StatusCancel:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusComplete || s == StatusCancel
}

// IsActive reports whether the booking still holds hotel inventory.
func (s Status) IsActive() bool {
	switch s {
	case StatusPending, StatusBooked, StatusCheckedIn:
		return true
	default:
		return false
	}
}

// CanTransitionTo allows forward moves along the chain and cancel from any non-terminal state.
func (s Status) CanTransitionTo(target Status) bool {
	if s.IsTerminal() || !target.IsValid() || s == target {
		return false
	}
	if target == StatusCancel {
		return true
	}
	return statusRank[target] > statusRank[s]
}

// Cancellable is the narrower set accepted by a user-initiated cancel.
func (s Status) Cancellable() bool {
	return s == StatusPending || s == StatusBooked
}

// legacy spellings accepted at the API boundary only
var legacyStatus = map[string]Status{
	"cancelled": StatusCancel,
	"canceled":  StatusCancel,
	"checkedin": StatusCheckedIn,
	"completed": StatusComplete,
}

// ParseStatus maps external input, including legacy spellings, onto the canonical enumeration.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.TrimSpace(s))
	if status.IsValid() {
		return status, nil
	}
	if canonical, ok := legacyStatus[strings.ToLower(strings.TrimSpace(s))]; ok {
		return canonical, nil
	}
	return "", ErrInvalidStatus
}

type Type string

const (
	TypeTour  Type = "Tour"
	TypeHotel Type = "Hotel"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	return t == TypeTour || t == TypeHotel
}
