package shared

import (
	"context"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/customtour"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra/sqlstore"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads CommandReads) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Locks() AdmissionLocker
	Bookings() BookingRepository
	Rooms() RoomRepository
	CustomTours() CustomTourRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlstore.DBTX
}

// CommandReads are plain (non-locking) reads used to validate commands.
type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	TourByID(ctx context.Context, id uuid.UUID) (*catalog.Tour, error)
	HotelByID(ctx context.Context, id uuid.UUID) (*catalog.Hotel, error)
	RoomByID(ctx context.Context, id uuid.UUID) (*catalog.PhysicalRoom, error)
	RoomsByType(ctx context.Context, hotelID, roomTypeID uuid.UUID) ([]*catalog.PhysicalRoom, error)
	TourBookingsOn(ctx context.Context, tourID uuid.UUID, date time.Time) ([]*booking.Booking, error)
	OverlappingHotelBookings(ctx context.Context, hotelID, roomTypeID uuid.UUID, window booking.DateRange) ([]*booking.Booking, error)
	ActiveHotelBookings(ctx context.Context, hotelID, roomTypeID uuid.UUID) ([]*booking.Booking, error)
}

// AdmissionLocker serialises capacity admission per bucket for the rest of the transaction.
type AdmissionLocker interface {
	Acquire(ctx context.Context, tx sqlstore.DBTX, key string) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlstore.DBTX, b *booking.Booking) error
	FindForUpdate(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) (*booking.Booking, error)
	UpdateState(ctx context.Context, tx sqlstore.DBTX, b *booking.Booking) error
}

type RoomRepository interface {
	// LockByIDs returns the rooms found, keyed by id, row-locked until the transaction ends.
	LockByIDs(ctx context.Context, tx sqlstore.DBTX, ids ...uuid.UUID) (map[uuid.UUID]*catalog.PhysicalRoom, error)
	UpdateState(ctx context.Context, tx sqlstore.DBTX, room *catalog.PhysicalRoom) error
}

type CustomTourRepository interface {
	Create(ctx context.Context, tx sqlstore.DBTX, req *customtour.Request) error
	FindForUpdate(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) (*customtour.Request, error)
	Save(ctx context.Context, tx sqlstore.DBTX, req *customtour.Request) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlstore.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
