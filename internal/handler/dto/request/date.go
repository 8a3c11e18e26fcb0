package request

import (
	"encoding/json"
	"strings"
	"time"

	"travel-booking/internal/pkg/errs"
)

var ErrInvalidDate = errs.New("invalid date, expected YYYY-MM-DD or RFC3339")

// Date accepts a calendar day ("2025-06-01") or a full RFC3339 timestamp.
type Date struct {
	time.Time
}

func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return Date{Time: t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrInvalidDate
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d *Date) timePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
