package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getTour = `-- name: GetTour :one
SELECT id, title, max_people, amount_cents, discount, commission_rate, created_at, updated_at
FROM tours
WHERE id = $1
`

func (q *Queries) GetTour(ctx context.Context, db DBTX, id uuid.UUID) (Tours, error) {
	row := db.QueryRow(ctx, getTour, id)
	var i Tours
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.MaxPeople,
		&i.AmountCents,
		&i.Discount,
		&i.CommissionRate,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getHotel = `-- name: GetHotel :one
SELECT id, name, commission_rate, created_at, updated_at
FROM hotels
WHERE id = $1
`

func (q *Queries) GetHotel(ctx context.Context, db DBTX, id uuid.UUID) (Hotels, error) {
	row := db.QueryRow(ctx, getHotel, id)
	var i Hotels
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.CommissionRate,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listRoomTypesByHotel = `-- name: ListRoomTypesByHotel :many
SELECT id, hotel_id, name, price_cents, features
FROM room_types
WHERE hotel_id = $1
ORDER BY name, id
`

func (q *Queries) ListRoomTypesByHotel(ctx context.Context, db DBTX, hotelID uuid.UUID) ([]RoomTypes, error) {
	rows, err := db.Query(ctx, listRoomTypesByHotel, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RoomTypes
	for rows.Next() {
		var i RoomTypes
		if err := rows.Scan(
			&i.ID,
			&i.HotelID,
			&i.Name,
			&i.PriceCents,
			&i.Features,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const roomColumns = `id, hotel_id, room_type_id, number, status, current_booking_id, updated_at`

func scanRoom(row interface{ Scan(...any) error }) (Rooms, error) {
	var i Rooms
	err := row.Scan(
		&i.ID,
		&i.HotelID,
		&i.RoomTypeID,
		&i.Number,
		&i.Status,
		&i.CurrentBookingID,
		&i.UpdatedAt,
	)
	return i, err
}

const listRoomsByRoomType = `-- name: ListRoomsByRoomType :many
SELECT ` + roomColumns + `
FROM rooms
WHERE hotel_id = $1 AND room_type_id = $2
ORDER BY number, id
`

type ListRoomsByRoomTypeParams struct {
	HotelID    uuid.UUID
	RoomTypeID uuid.UUID
}

func (q *Queries) ListRoomsByRoomType(ctx context.Context, db DBTX, arg ListRoomsByRoomTypeParams) ([]Rooms, error) {
	rows, err := db.Query(ctx, listRoomsByRoomType, arg.HotelID, arg.RoomTypeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Rooms
	for rows.Next() {
		i, err := scanRoom(rows)
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

const getRoom = `-- name: GetRoom :one
SELECT ` + roomColumns + `
FROM rooms
WHERE id = $1
`

func (q *Queries) GetRoom(ctx context.Context, db DBTX, id uuid.UUID) (Rooms, error) {
	return scanRoom(db.QueryRow(ctx, getRoom, id))
}

const lockRooms = `-- name: LockRooms :many
SELECT ` + roomColumns + `
FROM rooms
WHERE id = ANY($1::uuid[])
ORDER BY id
FOR UPDATE
`

// LockRooms row-locks the given rooms in id order so concurrent callers cannot deadlock
// on each other.
func (q *Queries) LockRooms(ctx context.Context, db DBTX, ids []uuid.UUID) ([]Rooms, error) {
	rows, err := db.Query(ctx, lockRooms, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Rooms
	for rows.Next() {
		i, err := scanRoom(rows)
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

const updateRoomState = `-- name: UpdateRoomState :execrows
UPDATE rooms
SET status = $2, current_booking_id = $3, updated_at = $4
WHERE id = $1
`

type UpdateRoomStateParams struct {
	ID               uuid.UUID
	Status           string
	CurrentBookingID pgtype.UUID
	UpdatedAt        pgtype.Timestamptz
}

func (q *Queries) UpdateRoomState(ctx context.Context, db DBTX, arg UpdateRoomStateParams) (int64, error) {
	result, err := db.Exec(ctx, updateRoomState, arg.ID, arg.Status, arg.CurrentBookingID, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
