package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, user_id, type, item_id, room_type_id, start_date, end_date, num_guests,
	price_per_person_cents, total_price_cents, commission_rate, commission_cents, status,
	assigned_room_id, created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }) (Bookings, error) {
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Type,
		&i.ItemID,
		&i.RoomTypeID,
		&i.StartDate,
		&i.EndDate,
		&i.NumGuests,
		&i.PricePerPersonCents,
		&i.TotalPriceCents,
		&i.CommissionRate,
		&i.CommissionCents,
		&i.Status,
		&i.AssignedRoomID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func collectBookings(ctx context.Context, db DBTX, query string, args ...any) ([]Bookings, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Bookings
	for rows.Next() {
		i, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createBooking = `-- name: CreateBooking :one
INSERT INTO bookings (
	id, user_id, type, item_id, room_type_id, start_date, end_date, num_guests,
	price_per_person_cents, total_price_cents, commission_rate, commission_cents, status,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
RETURNING ` + bookingColumns

type CreateBookingParams struct {
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
	CommissionRate      float64
	CommissionCents     int64
	Status              string
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) (Bookings, error) {
	row := db.QueryRow(ctx, createBooking,
		arg.ID,
		arg.UserID,
		arg.Type,
		arg.ItemID,
		arg.RoomTypeID,
		arg.StartDate,
		arg.EndDate,
		arg.NumGuests,
		arg.PricePerPersonCents,
		arg.TotalPriceCents,
		arg.CommissionRate,
		arg.CommissionCents,
		arg.Status,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return scanBooking(row)
}

const getBooking = `-- name: GetBooking :one
SELECT ` + bookingColumns + `
FROM bookings
WHERE id = $1
`

func (q *Queries) GetBooking(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	return scanBooking(db.QueryRow(ctx, getBooking, id))
}

const getBookingForUpdate = `-- name: GetBookingForUpdate :one
SELECT ` + bookingColumns + `
FROM bookings
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetBookingForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	return scanBooking(db.QueryRow(ctx, getBookingForUpdate, id))
}

const updateBookingState = `-- name: UpdateBookingState :execrows
UPDATE bookings
SET status = $2, assigned_room_id = $3, updated_at = $4
WHERE id = $1
`

type UpdateBookingStateParams struct {
	ID             uuid.UUID
	Status         string
	AssignedRoomID pgtype.UUID
	UpdatedAt      pgtype.Timestamptz
}

func (q *Queries) UpdateBookingState(ctx context.Context, db DBTX, arg UpdateBookingStateParams) (int64, error) {
	result, err := db.Exec(ctx, updateBookingState, arg.ID, arg.Status, arg.AssignedRoomID, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listTourBookingsOnDate = `-- name: ListTourBookingsOnDate :many
SELECT ` + bookingColumns + `
FROM bookings
WHERE type = 'Tour' AND item_id = $1 AND start_date = $2 AND status <> 'cancel'
`

type ListTourBookingsOnDateParams struct {
	TourID    uuid.UUID
	StartDate pgtype.Date
}

func (q *Queries) ListTourBookingsOnDate(ctx context.Context, db DBTX, arg ListTourBookingsOnDateParams) ([]Bookings, error) {
	return collectBookings(ctx, db, listTourBookingsOnDate, arg.TourID, arg.StartDate)
}

const listOverlappingHotelBookings = `-- name: ListOverlappingHotelBookings :many
SELECT ` + bookingColumns + `
FROM bookings
WHERE type = 'Hotel'
  AND item_id = $1
  AND room_type_id = $2
  AND status IN ('pending', 'booked', 'checkedIn')
  AND start_date <= $4
  AND end_date >= $3
`

type ListOverlappingHotelBookingsParams struct {
	HotelID    uuid.UUID
	RoomTypeID uuid.UUID
	StartDate  pgtype.Date
	EndDate    pgtype.Date
}

func (q *Queries) ListOverlappingHotelBookings(ctx context.Context, db DBTX, arg ListOverlappingHotelBookingsParams) ([]Bookings, error) {
	return collectBookings(ctx, db, listOverlappingHotelBookings, arg.HotelID, arg.RoomTypeID, arg.StartDate, arg.EndDate)
}

const listActiveHotelBookings = `-- name: ListActiveHotelBookings :many
SELECT ` + bookingColumns + `
FROM bookings
WHERE type = 'Hotel'
  AND item_id = $1
  AND room_type_id = $2
  AND status IN ('pending', 'booked', 'checkedIn')
`

type ListActiveHotelBookingsParams struct {
	HotelID    uuid.UUID
	RoomTypeID uuid.UUID
}

func (q *Queries) ListActiveHotelBookings(ctx context.Context, db DBTX, arg ListActiveHotelBookingsParams) ([]Bookings, error) {
	return collectBookings(ctx, db, listActiveHotelBookings, arg.HotelID, arg.RoomTypeID)
}

const listBookingsByUser = `-- name: ListBookingsByUser :many
SELECT ` + bookingColumns + `
FROM bookings
WHERE user_id = $1
  AND ($2::timestamptz IS NULL OR (created_at, id) < ($2::timestamptz, $3::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $4
`

type ListBookingsByUserParams struct {
	UserID         uuid.UUID
	AfterCreatedAt pgtype.Timestamptz
	AfterID        pgtype.UUID
	Limit          int32
}

func (q *Queries) ListBookingsByUser(ctx context.Context, db DBTX, arg ListBookingsByUserParams) ([]Bookings, error) {
	return collectBookings(ctx, db, listBookingsByUser, arg.UserID, arg.AfterCreatedAt, arg.AfterID, arg.Limit)
}
