package availability

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TourBucket names the admission lock for one tour departure date.
func TourBucket(tourID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("tour:%s:%s", tourID, date.UTC().Format(time.DateOnly))
}

// HotelBucket names the admission lock for one room type. Stays of any dates share it,
// since overlap can't be partitioned by day without splitting a stay across locks.
func HotelBucket(hotelID, roomTypeID uuid.UUID) string {
	return fmt.Sprintf("hotel:%s:%s", hotelID, roomTypeID)
}
